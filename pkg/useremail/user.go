package useremail

import "context"

// User is the minimal view of an account holder needed to address mail.
type User interface {
	ID() string
	Email() string
}

// UserEmail associates an address with a user for applications that support
// multiple addresses per account. At most one address per user is primary;
// the data store enforces that invariant.
type UserEmail struct {
	UserID    string
	Address   string
	IsPrimary bool
}

// PrimaryEmailStore looks up the primary address association for a user.
// A nil result with a nil error means the user has no primary address.
type PrimaryEmailStore interface {
	FindPrimaryEmail(ctx context.Context, userID string) (*UserEmail, error)
}
