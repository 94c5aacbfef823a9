package mailer

// Backend selector values recognized by New.
const (
	BackendSendGrid = "sendgrid"
)

// New builds the Sender selected by cfg.Backend. The value "sendgrid"
// routes through the SendGrid API; any other value, including an empty or
// unrecognized one, falls through to the SMTP relay. Selector values are
// deliberately not validated, matching the default-to-relay behavior the
// host application relies on.
//
// The token source is only consulted on the SendGrid path; relay messages
// carry no send token.
func New(cfg Config, tokens TokenSource) (Sender, error) {
	if cfg.Backend == BackendSendGrid {
		return NewSendGridSender(cfg, tokens)
	}
	return NewSMTPSender(cfg), nil
}
