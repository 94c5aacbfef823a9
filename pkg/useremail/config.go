package useremail

// Config holds the feature flags and template names driving the lifecycle
// emails. Enabled gates all sending; each event additionally checks its own
// flag, except invites which only honor the global switch.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"Application"`

	Enabled                  bool `env:"USER_ENABLE_EMAIL" envDefault:"true"`
	EnableConfirmEmail       bool `env:"USER_ENABLE_CONFIRM_EMAIL" envDefault:"true"`
	EnableForgotPassword     bool `env:"USER_ENABLE_FORGOT_PASSWORD" envDefault:"true"`
	SendRegisteredEmail      bool `env:"USER_SEND_REGISTERED_EMAIL" envDefault:"true"`
	SendPasswordChangedEmail bool `env:"USER_SEND_PASSWORD_CHANGED_EMAIL" envDefault:"true"`
	SendUsernameChangedEmail bool `env:"USER_SEND_USERNAME_CHANGED_EMAIL" envDefault:"true"`

	ConfirmEmailTemplate    string `env:"USER_CONFIRM_EMAIL_TEMPLATE" envDefault:"confirm_email"`
	ForgotPasswordTemplate  string `env:"USER_FORGOT_PASSWORD_TEMPLATE" envDefault:"forgot_password"`
	PasswordChangedTemplate string `env:"USER_PASSWORD_CHANGED_TEMPLATE" envDefault:"password_changed"`
	RegisteredTemplate      string `env:"USER_REGISTERED_TEMPLATE" envDefault:"registered"`
	UsernameChangedTemplate string `env:"USER_USERNAME_CHANGED_TEMPLATE" envDefault:"username_changed"`
	InviteTemplate          string `env:"USER_INVITE_TEMPLATE" envDefault:"invite"`
}
