// Package ui renders CLI output with lipgloss styles.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer writes styled output. With color disabled every helper degrades
// to plain text, which keeps output pipeable.
type Renderer struct {
	out     io.Writer
	noColor bool
	quiet   bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNoColor disables all styling.
func WithNoColor(v bool) Option { return func(r *Renderer) { r.noColor = v } }

// WithQuiet suppresses status messages.
func WithQuiet(v bool) Option { return func(r *Renderer) { r.quiet = v } }

// NewRenderer builds a renderer writing to out.
func NewRenderer(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{out: out}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Renderer) render(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}

// Status prints a transient status line (suppressed in quiet mode).
func (r *Renderer) Status(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.out, r.render(StatusStyle, fmt.Sprintf(format, args...)))
}

// Success prints a confirmation line.
func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintln(r.out, r.render(SuccessStyle, "✓ "+fmt.Sprintf(format, args...)))
}

// Error prints an error line.
func (r *Renderer) Error(format string, args ...any) {
	fmt.Fprintln(r.out, r.render(ErrorStyle, "✗ "+fmt.Sprintf(format, args...)))
}

// Row is one label/value line inside a results box.
type Row struct {
	Label string
	Value string
}

// Box prints a titled, bordered results section with aligned rows.
func (r *Renderer) Box(title string, rows []Row) {
	width := 0
	for _, row := range rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := fmt.Sprintf("%-*s", width, row.Label)
		b.WriteString(r.render(LabelStyle, label))
		b.WriteString("  ")
		b.WriteString(row.Value)
	}

	fmt.Fprintln(r.out, r.render(TitleStyle, title))
	if r.noColor {
		fmt.Fprintln(r.out, b.String())
		return
	}
	fmt.Fprintln(r.out, ResultBoxStyle.Render(b.String()))
}

// Number styles a numeric highlight for use inside a Row value.
func (r *Renderer) Number(text string) string {
	return r.render(NumberStyle, text)
}
