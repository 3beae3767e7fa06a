package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (with Data) or Subject with Text/HTML must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

const TemplateWelcome = "welcome"

// NewWelcomeJob builds the job sent after a user registers.
func NewWelcomeJob(appName, email, name string) EmailJob {
	return EmailJob{
		To:       email,
		Template: TemplateWelcome,
		Data: map[string]any{
			"AppName": appName,
			"Email":   email,
			"Name":    name,
		},
	}
}
