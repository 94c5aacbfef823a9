package templates_test

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userkit/pkg/mailer/templates"
)

func testFS(subject, html, text string) fs.FS {
	return fstest.MapFS{
		"welcome_subject.txt":  {Data: []byte(subject)},
		"welcome_message.html": {Data: []byte(html)},
		"welcome_message.txt":  {Data: []byte(text)},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(testFS(
		"Welcome to {{.AppName}}",
		"<p>Hello from {{.AppName}}</p>",
		"Hello from {{.AppName}}",
	))

	email, err := r.Render("welcome", map[string]any{"AppName": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Acme", email.Subject)
	assert.Equal(t, "<p>Hello from Acme</p>", email.HTML)
	assert.Equal(t, "Hello from Acme", email.Text)
}

func TestRender_SubjectNewlinesCollapsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{"newline", "Hi\nThere", "Hi There"},
		{"carriage return", "Hi\rThere", "Hi There"},
		{"crlf", "Hi\r\nThere", "Hi  There"},
		{"no newlines", "Hi There", "Hi There"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := templates.NewRenderer(testFS(tt.subject, "html", "text"))
			email, err := r.Render("welcome", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Subject)
			assert.NotContains(t, email.Subject, "\n")
			assert.NotContains(t, email.Subject, "\r")
		})
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(fstest.MapFS{})
	_, err := r.Render("welcome", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRender_SyntaxError(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(testFS("{{.AppName", "html", "text"))
	_, err := r.Render("welcome", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestRender_SprigFunctions(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(testFS(
		`{{upper "hello"}} {{.AppName}}`,
		`<p>{{trim "  spaced  "}}</p>`,
		`{{repeat 2 "ab"}}`,
	))

	email, err := r.Render("welcome", map[string]any{"AppName": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "HELLO Acme", email.Subject)
	assert.Equal(t, "<p>spaced</p>", email.HTML)
	assert.Equal(t, "abab", email.Text)
}

func TestRender_HTMLEscaping(t *testing.T) {
	t.Parallel()

	r := templates.NewRenderer(testFS("subject", "<p>{{.Name}}</p>", "{{.Name}}"))
	email, err := r.Render("welcome", map[string]any{"Name": "<script>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>&lt;script&gt;</p>", email.HTML)
	assert.Equal(t, "<script>", email.Text)
}

func TestDefault_AllLifecycleEmails(t *testing.T) {
	t.Parallel()

	r := templates.Default()

	tests := []struct {
		name    string
		data    map[string]any
		wantIn  string
		linkKey string
	}{
		{"confirm_email", map[string]any{"ConfirmEmailLink": "https://app.test/confirm?t=1"}, "complete your registration", "ConfirmEmailLink"},
		{"forgot_password", map[string]any{"ResetPasswordLink": "https://app.test/reset?t=1"}, "reset", "ResetPasswordLink"},
		{"password_changed", nil, "password", ""},
		{"registered", map[string]any{"ConfirmEmailLink": "https://app.test/confirm?t=1"}, "account has been created", "ConfirmEmailLink"},
		{"username_changed", nil, "username", ""},
		{"invite", map[string]any{"AcceptInviteLink": "https://app.test/invite?t=1"}, "invited", "AcceptInviteLink"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := map[string]any{"AppName": "Acme"}
			for k, v := range tt.data {
				data[k] = v
			}

			email, err := r.Render(tt.name, data)
			require.NoError(t, err)

			assert.NotEmpty(t, email.Subject)
			assert.NotContains(t, email.Subject, "\n")
			assert.NotContains(t, email.Subject, "\r")
			assert.Contains(t, email.Subject, "Acme")
			assert.Contains(t, strings.ToLower(email.Text), tt.wantIn)
			assert.Contains(t, email.HTML, "Acme")

			if tt.linkKey != "" {
				link := tt.data[tt.linkKey].(string)
				assert.Contains(t, email.Text, link)
				assert.Contains(t, email.HTML, link)
			}
		})
	}
}
