package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// Manager mints opaque single-use send tokens that are embedded into
// outgoing emails and echoed back by delivery webhooks. A token is a random
// UUID payload followed by an 8-byte truncated HMAC-SHA256 signature, both
// base64url encoded.
//
// Manager is stateless and safe for concurrent use.
type Manager struct {
	secret []byte
}

// NewManager creates a Manager signing tokens with the given secret.
func NewManager(secret string) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Manager{secret: []byte(secret)}, nil
}

// MustNewManager creates a Manager that panics on invalid configuration.
func MustNewManager(secret string) *Manager {
	m, err := NewManager(secret)
	if err != nil {
		panic(err)
	}
	return m
}

// Next returns a fresh token. Every call produces a unique value.
func (m *Manager) Next() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:]) + "." +
		base64.RawURLEncoding.EncodeToString(m.sign(id[:]))
}

// Verify reports whether tok was minted by a Manager holding the same
// secret. It returns ErrInvalidToken for malformed input and
// ErrSignatureInvalid when the signature does not match.
func (m *Manager) Verify(tok string) error {
	parts := strings.Split(tok, ".")
	if len(parts) != 2 {
		return ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return ErrInvalidToken
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ErrInvalidToken
	}

	if subtle.ConstantTimeCompare(sig, m.sign(payload)) != 1 {
		return ErrSignatureInvalid
	}
	return nil
}

func (m *Manager) sign(data []byte) []byte {
	h := hmac.New(sha256.New, m.secret)
	h.Write(data)
	return h.Sum(nil)[:8]
}
