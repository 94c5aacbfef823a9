package templates

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"strings"
	texttemplate "text/template"

	"github.com/Masterminds/sprig/v3"
)

// Email holds the three rendered parts of a lifecycle message.
type Email struct {
	Subject string
	HTML    string
	Text    string
}

// Renderer resolves the three template files backing a logical email name:
// {name}_subject.txt, {name}_message.html and {name}_message.txt. The sprig
// function map is available to all three.
type Renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer reading templates from fsys.
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{fsys: fsys}
}

//go:embed defaults
var defaultFS embed.FS

// Default returns a Renderer over the embedded default templates. One set is
// shipped for each lifecycle email: confirm_email, forgot_password,
// password_changed, registered, username_changed and invite.
func Default() *Renderer {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		panic(err) // embedded directory name is fixed at compile time
	}
	return NewRenderer(sub)
}

// Render evaluates the three templates for name against data. Newlines and
// carriage returns rendered into the subject are each replaced with a single
// space, keeping the header on one line. Template resolution and syntax
// errors are returned wrapped, without recovery.
func (r *Renderer) Render(name string, data map[string]any) (Email, error) {
	subject, err := r.renderText(name+"_subject.txt", data)
	if err != nil {
		return Email{}, err
	}
	subject = strings.NewReplacer("\n", " ", "\r", " ").Replace(subject)

	html, err := r.renderHTML(name+"_message.html", data)
	if err != nil {
		return Email{}, err
	}

	text, err := r.renderText(name+"_message.txt", data)
	if err != nil {
		return Email{}, err
	}

	return Email{Subject: subject, HTML: html, Text: text}, nil
}

func (r *Renderer) renderText(file string, data map[string]any) (string, error) {
	raw, err := fs.ReadFile(r.fsys, file)
	if err != nil {
		return "", fmt.Errorf("templates: read %s: %w", file, err)
	}

	tpl, err := texttemplate.New(file).Funcs(sprig.TxtFuncMap()).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("templates: parse %s: %w", file, err)
	}

	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("templates: execute %s: %w", file, err)
	}
	return sb.String(), nil
}

func (r *Renderer) renderHTML(file string, data map[string]any) (string, error) {
	raw, err := fs.ReadFile(r.fsys, file)
	if err != nil {
		return "", fmt.Errorf("templates: read %s: %w", file, err)
	}

	tpl, err := htmltemplate.New(file).Funcs(sprig.HtmlFuncMap()).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("templates: parse %s: %w", file, err)
	}

	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("templates: execute %s: %w", file, err)
	}
	return sb.String(), nil
}
