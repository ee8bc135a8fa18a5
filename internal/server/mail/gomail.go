package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mailer отправляет письма через SMTP (gomail)
type Mailer struct {
	dialer    *gomail.Dialer
	templates *template.Template
	from      string
	origin    string
}

// NewMailer создает SMTP отправитель.
// origin — публичный адрес фронтенда; если задан, письма содержат
// кликабельные ссылки, иначе — голый токен для API маршрутов.
func NewMailer(host string, port int, username, password, from, origin string) (*Mailer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &Mailer{
		dialer:    gomail.NewDialer(host, port, username, password),
		templates: templates,
		from:      from,
		origin:    origin,
	}, nil
}

// SendVerificationEmail delivers the email-verification token
func (m *Mailer) SendVerificationEmail(to, username, token string) error {
	data := map[string]string{
		"Username": username,
		"Token":    token,
	}
	if m.origin != "" {
		data["VerifyURL"] = fmt.Sprintf("%s/verify-email?token=%s", m.origin, token)
	}

	return m.send(to, "Verify Email", "verification_email.html", data)
}

// SendAlreadyRegisteredEmail tells an existing user that someone tried
// to register with their address
func (m *Mailer) SendAlreadyRegisteredEmail(to string) error {
	data := map[string]string{
		"Email": to,
	}
	if m.origin != "" {
		data["ForgotPasswordURL"] = m.origin + "/forgot-password"
	}

	return m.send(to, "Email Already Registered", "already_registered_email.html", data)
}

// SendPasswordResetEmail delivers the password-reset token
func (m *Mailer) SendPasswordResetEmail(to, username, token string) error {
	data := map[string]string{
		"Username": username,
		"Token":    token,
	}
	if m.origin != "" {
		data["ResetURL"] = fmt.Sprintf("%s/reset-password?token=%s", m.origin, token)
	}

	return m.send(to, "Reset Password", "password_reset_email.html", data)
}

// send рендерит шаблон и отправляет письмо
func (m *Mailer) send(to, subject, templateName string, data map[string]string) error {
	buf := new(bytes.Buffer)
	if err := m.templates.ExecuteTemplate(buf, templateName, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", buf.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
