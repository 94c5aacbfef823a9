package mailer

// Config holds mail delivery configuration.
//
// Backend selects the delivery path: the value "sendgrid" routes through the
// SendGrid API, any other value falls through to the SMTP relay. The SMTP
// settings are optional so applications that never send relay mail can run
// without one; the relay reports ErrNotConfigured on first use instead.
type Config struct {
	Backend string `env:"MAIL_BACKEND"`

	FromAddr     string `env:"MAIL_FROM_ADDR,required"`
	FriendlyFrom string `env:"MAIL_FRIENDLY_FROM"`

	SMTPHost     string `env:"MAIL_SERVER"`
	SMTPPort     int    `env:"MAIL_PORT" envDefault:"587"`
	SMTPUsername string `env:"MAIL_USERNAME"`
	SMTPPassword string `env:"MAIL_PASSWORD"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}
