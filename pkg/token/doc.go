// Package token mints opaque send tokens for outgoing emails.
//
// A token is generated per message, substituted into the message bodies and
// attached as provider metadata, so a downstream webhook can correlate
// delivery events with the send that produced them. Tokens are signed with
// HMAC-SHA256 so the webhook side can reject values it never issued.
//
// Usage:
//
//	tokens := token.MustNewManager(secret)
//	tok := tokens.Next()
//	// later, on the webhook side:
//	if err := tokens.Verify(tok); err != nil {
//		// not one of ours
//	}
package token
