package mailer

import "context"

// Message is a fully rendered email ready for delivery.
type Message struct {
	To       string // recipient email address
	Subject  string // single line, newline-collapsed by the renderer
	HTML     string // HTML body
	Text     string // plain-text body
	Category string // lifecycle tag attached as provider metadata
}

// Sender delivers rendered messages through a configured backend.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// TokenSource mints opaque single-use send tokens. Implementations must be
// safe for concurrent use; a token is requested per outgoing message.
type TokenSource interface {
	Next() string
}
