package mailer

import (
	"context"
	"errors"
	"net"
	"net/textproto"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers messages through a generic SMTP relay. It applies no
// token substitution; only the SendGrid path embeds send tokens.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	name   string
}

// NewSMTPSender wraps the relay described by cfg. A missing MAIL_SERVER is
// not an immediate error: the sender is still constructed and reports
// ErrNotConfigured on first use, so applications that never send mail can
// run without a relay.
func NewSMTPSender(cfg Config) *SMTPSender {
	s := &SMTPSender{from: cfg.FromAddr, name: cfg.FriendlyFrom}
	if cfg.SMTPHost != "" {
		s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return s
}

// Send constructs the message and submits it synchronously through the
// relay. Connection and authentication failures are translated into
// sentinel errors carrying remediation hints; anything else propagates
// unmodified.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.dialer == nil {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.name)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return classifySMTPError(err)
	}
	return nil
}

// classifySMTPError maps DNS and connection failures to ErrConnectionFailed
// and SMTP authentication rejections to ErrAuthFailed.
func classifySMTPError(err error) error {
	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) {
		return errors.Join(ErrConnectionFailed, err)
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return errors.Join(ErrAuthFailed, err)
		}
	}

	return err
}
