package mail

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, origin string) *Mailer {
	m, err := NewMailer("localhost", 1025, "", "", "noreply@example.com", origin)
	require.NoError(t, err)
	return m
}

func render(t *testing.T, m *Mailer, templateName string, data map[string]string) string {
	buf := new(bytes.Buffer)
	err := m.templates.ExecuteTemplate(buf, templateName, data)
	require.NoError(t, err)
	return buf.String()
}

func TestMailer_TemplatesParse(t *testing.T) {
	m := newTestMailer(t, "")

	// Все три шаблона должны присутствовать
	for _, name := range []string{
		"verification_email.html",
		"already_registered_email.html",
		"password_reset_email.html",
	} {
		assert.NotNil(t, m.templates.Lookup(name), name)
	}
}

func TestMailer_VerificationTemplate(t *testing.T) {
	m := newTestMailer(t, "")

	body := render(t, m, "verification_email.html", map[string]string{
		"Username": "alice",
		"Token":    "token-123",
	})

	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "token-123")
}

func TestMailer_VerificationTemplate_WithOrigin(t *testing.T) {
	m := newTestMailer(t, "https://accounts.example.com")

	body := render(t, m, "verification_email.html", map[string]string{
		"Username":  "alice",
		"Token":     "token-123",
		"VerifyURL": "https://accounts.example.com/verify-email?token=token-123",
	})

	assert.Contains(t, body, "https://accounts.example.com/verify-email?token=token-123")
}

func TestMailer_PasswordResetTemplate(t *testing.T) {
	m := newTestMailer(t, "")

	body := render(t, m, "password_reset_email.html", map[string]string{
		"Username": "bob",
		"Token":    "reset-456",
	})

	assert.Contains(t, body, "bob")
	assert.Contains(t, body, "reset-456")
}

func TestMailer_AlreadyRegisteredTemplate(t *testing.T) {
	m := newTestMailer(t, "")

	body := render(t, m, "already_registered_email.html", map[string]string{
		"Email": "carol@example.com",
	})

	assert.Contains(t, body, "carol@example.com")
}
