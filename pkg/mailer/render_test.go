package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Welcome(t *testing.T) {
	job := NewWelcomeJob("Acme", "test@test.com", "Test <name>")

	subject, text, html, err := Render(job)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Acme", subject)
	assert.Contains(t, text, "Hi Test <name>,")
	assert.Contains(t, text, "test@test.com")
	assert.Contains(t, html, "Test &lt;name&gt;")
}

func TestRender_WelcomeWithoutName(t *testing.T) {
	_, text, _, err := Render(NewWelcomeJob("Acme", "test@test.com", ""))
	require.NoError(t, err)
	assert.Contains(t, text, "Hi there,")
}

func TestRender_Raw(t *testing.T) {
	job := EmailJob{To: "a@b.c", Subject: "s", Text: "t", HTML: "<p>h</p>"}

	subject, text, html, err := Render(job)
	require.NoError(t, err)
	assert.Equal(t, "s", subject)
	assert.Equal(t, "t", text)
	assert.Equal(t, "<p>h</p>", html)
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render(EmailJob{To: "a@b.c", Template: "nope"})
	assert.Error(t, err)
}
