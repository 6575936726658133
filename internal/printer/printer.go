// Package printer writes styled, human facing CLI messages.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/practica/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status messages to an output stream.
type Printer struct {
	out    io.Writer
	styles styles.Styles
}

// New returns a Printer writing to w. Colors are only emitted when w is a
// terminal.
func New(w io.Writer) *Printer {
	return &Printer{
		out:    w,
		styles: styles.New(lipgloss.NewRenderer(w)),
	}
}

// WithContext returns a copy of ctx carrying p.
func WithContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the Printer stored in ctx, if any.
func FromContext(ctx context.Context) (*Printer, bool) {
	p, ok := ctx.Value(ctxKey{}).(*Printer)
	return p, ok
}

// Ctx returns the Printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := FromContext(ctx); ok {
		return p
	}
	return New(os.Stdout)
}

// Styles exposes the styles bound to the printer's writer.
func (p *Printer) Styles() styles.Styles { return p.styles }

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.out }

func (p *Printer) Successf(format string, args ...any) {
	p.line(p.styles.Success.Render("✔"), format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(p.styles.Muted.Render("•"), format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.styles.Warning.Render("!"), format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.styles.Error.Render("✘"), format, args...)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Header writes a bold section title.
func (p *Printer) Header(title string) {
	_, _ = fmt.Fprintln(p.out, p.styles.Header.Render(title))
}

func (p *Printer) line(icon, format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", icon, fmt.Sprintf(format, args...))
}
