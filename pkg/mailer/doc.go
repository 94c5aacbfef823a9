// Package mailer delivers rendered account-lifecycle emails through a
// configurable backend.
//
// Two backends participate in selector-based dispatch: the SendGrid API and
// a generic SMTP relay. The MAIL_BACKEND setting value "sendgrid" picks the
// API path; any other value falls through to the relay. The selection
// happens once, when New constructs the Sender.
//
//	tokens := token.MustNewManager(secret)
//	sender, err := mailer.New(cfg, tokens)
//	if err != nil {
//		// Handle configuration error
//	}
//
//	err = sender.Send(ctx, mailer.Message{
//		To:       "user@example.com",
//		Subject:  "Welcome!",
//		HTML:     htmlBody,
//		Text:     textBody,
//		Category: "registered",
//	})
//
// # Backend behavior
//
// The SendGrid path attaches three custom arguments to every message:
// "from_addr" (so the delivery webhook can recover the sending domain),
// "token" (a fresh send token) and "meta" (a JSON object with the category
// and friendly from name). Token markers in the bodies - [[ TOKEN ]],
// [[TOKEN]], [[ token ]] and [[token]] - are replaced with the same token.
// Upstream API errors propagate unmodified.
//
// The SMTP path performs no token substitution. It translates connection
// failures to ErrConnectionFailed and authentication rejections to
// ErrAuthFailed, each carrying a hint naming the settings to check; other
// failures propagate unmodified.
//
// Two more Sender implementations are available outside the selector:
// PostmarkSender for applications on Postmark, and DevSender, which writes
// messages to disk for local development.
//
// # Error handling
//
// Sentinel errors support errors.Is checks:
//   - ErrInvalidConfig: backend construction failed
//   - ErrNotConfigured: SMTP path used without a configured relay
//   - ErrConnectionFailed, ErrAuthFailed: SMTP transport failures
//   - ErrFailedToSend: provider rejected the message
package mailer
