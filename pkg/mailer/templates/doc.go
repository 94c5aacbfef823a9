// Package templates renders the subject, HTML and plain-text parts of a
// lifecycle email from a filesystem of template files.
//
// A logical email name maps to three files: {name}_subject.txt,
// {name}_message.html and {name}_message.txt. Applications can bring their
// own fs.FS (including an os.DirFS over a templates directory) or use the
// embedded defaults via Default().
package templates
