// Package printer writes human-facing command output. Logs go to the log
// file; anything the user is meant to read goes through a Printer.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/waypoint/internal/core/styles"
)

type ctxKey struct{}

// Printer formats status lines with the active theme.
type Printer struct {
	out io.Writer
}

func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryStyle.Render("•") + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle.Render("!") + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle.Render("✗") + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.TextSuccessStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// Section prints a bold header preceded by a blank line.
func (p *Printer) Section(title string) {
	p.line("")
	p.line(styles.CommandHeaderStyle.Render(title))
}

// CheckItem, WarnItem and FailItem print an indented result row.
func (p *Printer) CheckItem(label, detail string) { p.item(styles.TextSuccessStyle.Render("✓"), label, detail) }

func (p *Printer) WarnItem(label, detail string) { p.item(styles.TextWarningStyle.Render("!"), label, detail) }

func (p *Printer) FailItem(label, detail string) { p.item(styles.TextErrorStyle.Render("✗"), label, detail) }

func (p *Printer) item(icon, label, detail string) {
	s := "  " + icon + " " + label
	if detail != "" {
		s += styles.TextMutedStyle.Render(" (" + detail + ")")
	}
	p.line(s)
}
