package mailer

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

type templateSet struct {
	subject *texttpl.Template
	text    *texttpl.Template
	html    *htmpl.Template
}

var templates = map[string]templateSet{
	TemplateWelcome: {
		subject: texttpl.Must(texttpl.New("welcome.subject").Parse("Welcome to {{.AppName}}")),
		text: texttpl.Must(texttpl.New("welcome.txt").Parse(
			"Hi {{if .Name}}{{.Name}}{{else}}there{{end}},\n\n" +
				"Your {{.AppName}} account for {{.Email}} is ready.\n")),
		html: htmpl.Must(htmpl.New("welcome.html").Parse(
			"<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>" +
				"<p>Your {{.AppName}} account for <b>{{.Email}}</b> is ready.</p>")),
	},
}

// Render resolves a job into subject, text and html bodies. Jobs without a
// template are returned as-is.
func Render(job EmailJob) (subject, text, html string, err error) {
	if job.Template == "" {
		return job.Subject, job.Text, job.HTML, nil
	}
	set, ok := templates[job.Template]
	if !ok {
		return "", "", "", fmt.Errorf("unknown template %q", job.Template)
	}

	var sb bytes.Buffer
	if err := set.subject.Execute(&sb, job.Data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	var tb bytes.Buffer
	if err := set.text.Execute(&tb, job.Data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	var hb bytes.Buffer
	if err := set.html.Execute(&hb, job.Data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	return sb.String(), tb.String(), hb.String(), nil
}
