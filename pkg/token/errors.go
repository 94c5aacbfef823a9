package token

import "errors"

var (
	ErrEmptySecret      = errors.New("token secret must not be empty")
	ErrInvalidToken     = errors.New("invalid token format")
	ErrSignatureInvalid = errors.New("signature mismatch")
)
