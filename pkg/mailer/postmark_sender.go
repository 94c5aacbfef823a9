package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkAPI is the part of the Postmark client used by PostmarkSender.
type PostmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkSender delivers messages through the Postmark transactional API.
// It is not reachable through the MAIL_BACKEND selector; applications opt in
// by constructing it directly and injecting it wherever a Sender is
// accepted. The message category becomes the Postmark tag.
type PostmarkSender struct {
	api    PostmarkAPI
	config Config
}

// PostmarkOption configures a PostmarkSender.
type PostmarkOption func(*PostmarkSender)

// WithPostmarkAPI replaces the underlying API client.
func WithPostmarkAPI(api PostmarkAPI) PostmarkOption {
	return func(s *PostmarkSender) {
		s.api = api
	}
}

// NewPostmarkSender creates a Postmark-backed sender. Both tokens are
// required for runtime operation unless a client is injected.
func NewPostmarkSender(cfg Config, opts ...PostmarkOption) (*PostmarkSender, error) {
	if cfg.FromAddr == "" {
		return nil, fmt.Errorf("%w: MAIL_FROM_ADDR is required", ErrInvalidConfig)
	}

	s := &PostmarkSender{config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.api == nil {
		if cfg.PostmarkServerToken == "" {
			return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
		}
		if cfg.PostmarkAccountToken == "" {
			return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
		}
		s.api = postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	}
	return s, nil
}

// Send submits the message synchronously. Tracking is enabled for opens and
// HTML link clicks only, to avoid mangling plain-text URLs.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	resp, err := s.api.SendEmail(ctx, postmark.Email{
		From:       s.config.FromAddr,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Category,
		HTMLBody:   msg.HTML,
		TextBody:   msg.Text,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSend,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
