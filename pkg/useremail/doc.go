// Package useremail orchestrates the transactional emails of the account
// lifecycle: email confirmation, password reset, password-changed notice,
// registration welcome, username-changed notice and invitations.
//
// Each event follows the same linear shape: check the global and per-event
// feature flags, resolve the recipient address, render the subject and body
// variants, and hand the message to the configured mailer.Sender. There is
// no queuing, retrying or persistence of send attempts; every failure
// surfaces synchronously to the caller.
//
// Usage:
//
//	var cfg useremail.Config
//	config.MustLoad(&cfg)
//
//	emailer := useremail.New(cfg, templates.Default(), sender,
//		useremail.WithPrimaryEmailStore(store),
//	)
//
//	err := emailer.SendConfirmEmail(ctx, user, nil, confirmLink)
//
// # Recipient resolution
//
// Events that accept an explicit *UserEmail argument use its address when
// present and fall back to the address on the user record otherwise. The
// password-changed and username-changed notices instead consult the
// PrimaryEmailStore, since the triggering request may not carry an address.
// A user with no resolvable address yields ErrMissingEmail - that signals a
// data-integrity problem upstream, not a recoverable send failure.
package useremail
