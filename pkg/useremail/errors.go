package useremail

import "errors"

var (
	// ErrMissingEmail indicates a user reached a send path without any
	// resolvable address. That points at a data-integrity bug upstream
	// rather than a condition the caller can recover from.
	ErrMissingEmail = errors.New("useremail.errors.missing_email_address")

	// ErrMissingPrimaryEmail indicates the primary-email lookup found no
	// association for the user.
	ErrMissingPrimaryEmail = errors.New("useremail.errors.missing_primary_email")
)
