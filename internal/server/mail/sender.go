package mail

//go:generate moq -out sender_mock.go . Sender

// Sender defines interface for outbound account notifications.
// Content generation lives behind it: callers pass the token, the
// implementation decides between a clickable link and a bare token.
type Sender interface {
	// SendVerificationEmail delivers the email-verification token
	SendVerificationEmail(to, username, token string) error

	// SendAlreadyRegisteredEmail tells an existing user that someone
	// tried to register with their address
	SendAlreadyRegisteredEmail(to string) error

	// SendPasswordResetEmail delivers the password-reset token
	SendPasswordResetEmail(to, username, token string) error
}
