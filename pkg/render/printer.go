// Package render draws rflaunch's user-facing console output.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acarl005/stripansi"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RuleWidth matches the 80-column separators of the console banner.
const RuleWidth = 80

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsTTYReader reports whether r is a terminal.
func IsTTYReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TitleCase turns a domain name like "products" into "Products".
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Printer writes themed status lines. Without color, every escape sequence
// is stripped so logs and pipes stay plain.
type Printer struct {
	w     io.Writer
	theme Theme
	color bool
}

// NewPrinter creates a printer. Color is only honoured when w is a terminal.
func NewPrinter(w io.Writer, theme Theme, color bool) *Printer {
	return &Printer{w: w, theme: theme, color: color && IsTTY(w)}
}

// Theme returns the printer's theme.
func (p *Printer) Theme() Theme {
	return p.theme
}

func (p *Printer) write(s string) {
	if !p.color {
		s = stripansi.Strip(s)
	}
	_, _ = io.WriteString(p.w, s+"\n")
}

// Rule prints a full-width separator.
func (p *Printer) Rule() {
	p.write(p.theme.Muted.Render(strings.Repeat(p.theme.Rule, RuleWidth)))
}

// Banner prints the framed heading shown before a run.
func (p *Printer) Banner(title, subtitle string) {
	p.Rule()
	p.write(p.theme.Bold.Render(p.theme.Primary.Render(title)))
	if subtitle != "" {
		p.write(p.theme.Muted.Render(subtitle))
	}
	p.Rule()
}

// Field prints an aligned "Label: value" line.
func (p *Printer) Field(label, value string) {
	p.write(p.theme.Muted.Render(label+":") + " " + value)
}

// Line prints plain text.
func (p *Printer) Line(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}

// Success prints a passing status line.
func (p *Printer) Success(msg string) {
	p.write(p.theme.Success.Render(p.theme.Icons.Pass + " " + msg))
}

// Failure prints a failing status line.
func (p *Printer) Failure(msg string) {
	p.write(p.theme.Error.Render(p.theme.Icons.Fail + " " + msg))
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	p.write(p.theme.Warning.Render(p.theme.Icons.Warn + " " + msg))
}

// Results prints where reports were written and which files to look for.
func (p *Printer) Results(dir string, reports []string) {
	p.write(p.theme.Icons.Results + " Results location: " + p.theme.Bold.Render(dir))
	if len(reports) > 0 {
		p.write(p.theme.Icons.Reports + " Report files: " + strings.Join(reports, ", "))
	}
}
