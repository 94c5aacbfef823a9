package mailer

import "errors"

var (
	ErrInvalidConfig = errors.New("mailer.errors.invalid_config")
	ErrFailedToSend  = errors.New("mailer.errors.failed_to_send")

	// ErrNotConfigured is returned by the SMTP backend when no relay has
	// been set up for the application.
	ErrNotConfigured = errors.New("mailer.errors.smtp_not_configured: set MAIL_SERVER, or disable USER_SEND_PASSWORD_CHANGED_EMAIL, USER_SEND_REGISTERED_EMAIL and USER_SEND_USERNAME_CHANGED_EMAIL so no relay is needed")

	ErrConnectionFailed = errors.New("mailer.errors.smtp_connection: check your MAIL_SERVER and MAIL_PORT settings")
	ErrAuthFailed       = errors.New("mailer.errors.smtp_auth: check your MAIL_USERNAME and MAIL_PASSWORD settings")
)
