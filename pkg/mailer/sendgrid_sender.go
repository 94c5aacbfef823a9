package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// tokenMarkers are the literal spellings replaced with a fresh send token in
// outgoing message bodies.
var tokenMarkers = []string{"[[ TOKEN ]]", "[[TOKEN]]", "[[ token ]]", "[[token]]"}

// SendGridAPI is the part of the SendGrid client used by SendGridSender.
type SendGridAPI interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender delivers messages through the SendGrid v3 mail API. Each
// message carries a fresh send token and a JSON meta custom argument so the
// delivery event webhook can attribute activity back to the lifecycle event
// that produced it.
type SendGridSender struct {
	api    SendGridAPI
	tokens TokenSource
	config Config
}

// SendGridOption configures a SendGridSender.
type SendGridOption func(*SendGridSender)

// WithSendGridAPI replaces the underlying API client. This is the injection
// point the host application uses to supply a pre-configured client.
func WithSendGridAPI(api SendGridAPI) SendGridOption {
	return func(s *SendGridSender) {
		s.api = api
	}
}

// NewSendGridSender creates a SendGrid-backed sender.
func NewSendGridSender(cfg Config, tokens TokenSource, opts ...SendGridOption) (*SendGridSender, error) {
	if cfg.FromAddr == "" {
		return nil, fmt.Errorf("%w: MAIL_FROM_ADDR is required", ErrInvalidConfig)
	}
	if tokens == nil {
		return nil, fmt.Errorf("%w: token source is required", ErrInvalidConfig)
	}

	s := &SendGridSender{tokens: tokens, config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.api == nil {
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("%w: SENDGRID_API_KEY is required", ErrInvalidConfig)
		}
		s.api = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	}
	return s, nil
}

// Send assembles the provider message and posts it synchronously. Client and
// transport errors are returned as-is.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewV3Mail()

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	m.AddPersonalizations(p)

	m.Subject = msg.Subject

	// from_addr rides along as a custom arg so the event webhook can
	// recover the sending domain.
	m.SetFrom(mail.NewEmail(s.config.FriendlyFrom, s.config.FromAddr))
	setCustomArg(m, "from_addr", s.config.FromAddr)

	tok := s.tokens.Next()
	setCustomArg(m, "token", tok)

	m.AddContent(mail.NewContent("text/plain", substituteToken(msg.Text, tok)))
	m.AddContent(mail.NewContent("text/html", substituteToken(msg.HTML, tok)))

	meta, err := json.Marshal(map[string]string{
		"type":          msg.Category,
		"friendly_from": s.config.FriendlyFrom,
	})
	if err != nil {
		return err
	}
	setCustomArg(m, "meta", string(meta))

	resp, err := s.api.Send(m)
	if err != nil {
		return err
	}
	if resp != nil && resp.StatusCode >= 400 {
		return fmt.Errorf("%w: sendgrid responded %d: %s", ErrFailedToSend, resp.StatusCode, resp.Body)
	}
	return nil
}

// substituteToken replaces every recognized marker spelling in body with the
// token value. The value is inserted verbatim, without escaping.
func substituteToken(body, tok string) string {
	for _, marker := range tokenMarkers {
		body = strings.ReplaceAll(body, marker, tok)
	}
	return body
}

func setCustomArg(m *mail.SGMailV3, key, value string) {
	if m.CustomArgs == nil {
		m.CustomArgs = make(map[string]string)
	}
	m.CustomArgs[key] = value
}
