package useremail

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/userkit/pkg/logger"
	"github.com/dmitrymomot/userkit/pkg/mailer"
	"github.com/dmitrymomot/userkit/pkg/mailer/templates"
)

// Categories attached to outgoing messages. Downstream analytics and the
// delivery webhook use them to identify which lifecycle event produced an
// email.
const (
	CategoryConfirmEmail    = "confirm email"
	CategoryForgotPassword  = "forgot password"
	CategoryPasswordChanged = "password changed"
	CategoryRegistered      = "registered"
	CategoryUsernameChanged = "username changed"
	CategoryInvite          = "invite"
)

// Renderer produces the subject and body variants for a named email.
type Renderer interface {
	Render(name string, data map[string]any) (templates.Email, error)
}

// Emailer sends the account-lifecycle emails: confirmation, password reset,
// password-changed, registration, username-changed and invite. Every send is
// a single synchronous pass: guard flags, resolve the recipient, render,
// deliver. There is no retrying or queuing; failures surface to the caller.
type Emailer struct {
	cfg      Config
	renderer Renderer
	sender   mailer.Sender
	store    PrimaryEmailStore
	logger   *slog.Logger
}

// Option configures an Emailer.
type Option func(*Emailer)

// WithPrimaryEmailStore wires the multi-address lookup used by the
// password-changed and username-changed emails. Without it those emails fall
// back to the address on the user record.
func WithPrimaryEmailStore(store PrimaryEmailStore) Option {
	return func(e *Emailer) {
		e.store = store
	}
}

// WithLogger sets the logger for the Emailer.
func WithLogger(log *slog.Logger) Option {
	return func(e *Emailer) {
		e.logger = log
	}
}

// New creates an Emailer delivering through sender with content from
// renderer.
func New(cfg Config, renderer Renderer, sender mailer.Sender, opts ...Option) *Emailer {
	e := &Emailer{
		cfg:      cfg,
		renderer: renderer,
		sender:   sender,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SendConfirmEmail emails a confirmation link. The userEmail argument may be
// nil, in which case the address on the user record is used. Sending is
// skipped unless registration or confirm-email mails are enabled.
func (e *Emailer) SendConfirmEmail(ctx context.Context, user User, userEmail *UserEmail, confirmEmailLink string) error {
	if !e.cfg.Enabled {
		return nil
	}
	if !e.cfg.SendRegisteredEmail && !e.cfg.EnableConfirmEmail {
		e.logSkip(ctx, user, CategoryConfirmEmail)
		return nil
	}

	to, err := e.resolveAddress(user, userEmail)
	if err != nil {
		return err
	}

	return e.send(ctx, user, to, e.cfg.ConfirmEmailTemplate, CategoryConfirmEmail, map[string]any{
		"ConfirmEmailLink": confirmEmailLink,
	})
}

// SendForgotPassword emails a password reset link.
func (e *Emailer) SendForgotPassword(ctx context.Context, user User, userEmail *UserEmail, resetPasswordLink string) error {
	if !e.cfg.Enabled {
		return nil
	}
	if !e.cfg.EnableForgotPassword {
		e.logSkip(ctx, user, CategoryForgotPassword)
		return nil
	}

	to, err := e.resolveAddress(user, userEmail)
	if err != nil {
		return err
	}

	return e.send(ctx, user, to, e.cfg.ForgotPasswordTemplate, CategoryForgotPassword, map[string]any{
		"ResetPasswordLink": resetPasswordLink,
	})
}

// SendPasswordChanged notifies the user's primary address that their
// password changed.
func (e *Emailer) SendPasswordChanged(ctx context.Context, user User) error {
	if !e.cfg.Enabled {
		return nil
	}
	if !e.cfg.SendPasswordChangedEmail {
		e.logSkip(ctx, user, CategoryPasswordChanged)
		return nil
	}

	to, err := e.resolvePrimaryAddress(ctx, user)
	if err != nil {
		return err
	}

	return e.send(ctx, user, to, e.cfg.PasswordChangedTemplate, CategoryPasswordChanged, nil)
}

// SendRegistered emails a welcome message after registration. The link may
// be empty when email confirmation is not part of the flow.
func (e *Emailer) SendRegistered(ctx context.Context, user User, userEmail *UserEmail, confirmEmailLink string) error {
	if !e.cfg.Enabled {
		return nil
	}
	if !e.cfg.SendRegisteredEmail {
		e.logSkip(ctx, user, CategoryRegistered)
		return nil
	}

	to, err := e.resolveAddress(user, userEmail)
	if err != nil {
		return err
	}

	return e.send(ctx, user, to, e.cfg.RegisteredTemplate, CategoryRegistered, map[string]any{
		"ConfirmEmailLink": confirmEmailLink,
	})
}

// SendUsernameChanged notifies the user's primary address that their
// username changed.
func (e *Emailer) SendUsernameChanged(ctx context.Context, user User) error {
	if !e.cfg.Enabled {
		return nil
	}
	if !e.cfg.SendUsernameChangedEmail {
		e.logSkip(ctx, user, CategoryUsernameChanged)
		return nil
	}

	to, err := e.resolvePrimaryAddress(ctx, user)
	if err != nil {
		return err
	}

	return e.send(ctx, user, to, e.cfg.UsernameChangedTemplate, CategoryUsernameChanged, nil)
}

// SendInvite emails an invitation link. Only the global email switch gates
// this event.
func (e *Emailer) SendInvite(ctx context.Context, user User, acceptInviteLink string) error {
	if !e.cfg.Enabled {
		return nil
	}

	to, err := e.resolveAddress(user, nil)
	if err != nil {
		return err
	}

	return e.send(ctx, user, to, e.cfg.InviteTemplate, CategoryInvite, map[string]any{
		"AcceptInviteLink": acceptInviteLink,
	})
}

// resolveAddress prefers the explicit UserEmail association over the address
// on the user record.
func (e *Emailer) resolveAddress(user User, userEmail *UserEmail) (string, error) {
	if userEmail != nil && userEmail.Address != "" {
		return userEmail.Address, nil
	}
	if addr := user.Email(); addr != "" {
		return addr, nil
	}
	return "", ErrMissingEmail
}

// resolvePrimaryAddress looks up the primary association when a store is
// configured. Without one, the user record itself holds the only address.
func (e *Emailer) resolvePrimaryAddress(ctx context.Context, user User) (string, error) {
	if e.store == nil {
		if addr := user.Email(); addr != "" {
			return addr, nil
		}
		return "", ErrMissingEmail
	}

	userEmail, err := e.store.FindPrimaryEmail(ctx, user.ID())
	if err != nil {
		return "", err
	}
	if userEmail == nil {
		return "", ErrMissingPrimaryEmail
	}
	if userEmail.Address == "" {
		return "", ErrMissingEmail
	}
	return userEmail.Address, nil
}

func (e *Emailer) send(ctx context.Context, user User, to, template, category string, extra map[string]any) error {
	data := map[string]any{
		"User":    user,
		"AppName": e.cfg.AppName,
	}
	for k, v := range extra {
		data[k] = v
	}

	rendered, err := e.renderer.Render(template, data)
	if err != nil {
		return err
	}

	if err := e.sender.Send(ctx, mailer.Message{
		To:       to,
		Subject:  rendered.Subject,
		HTML:     rendered.HTML,
		Text:     rendered.Text,
		Category: category,
	}); err != nil {
		e.logger.LogAttrs(ctx, slog.LevelError, "Failed to send lifecycle email",
			logger.Component("useremail"),
			logger.UserID(user.ID()),
			logger.Category(category),
			logger.Error(err),
		)
		return err
	}

	e.logger.LogAttrs(ctx, slog.LevelInfo, "Sent lifecycle email",
		logger.Component("useremail"),
		logger.UserID(user.ID()),
		logger.Category(category),
	)
	return nil
}

func (e *Emailer) logSkip(ctx context.Context, user User, category string) {
	e.logger.LogAttrs(ctx, slog.LevelDebug, "Lifecycle email disabled, skipping",
		logger.Component("useremail"),
		logger.UserID(user.ID()),
		logger.Category(category),
	)
}
