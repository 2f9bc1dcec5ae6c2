package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"schema-typegen/internal/build"
	"schema-typegen/internal/config"
)

// printer writes the human-readable run summary.
type printer struct {
	w     io.Writer
	ok    func(string, ...any) string
	warn  func(string, ...any) string
	fail  func(string, ...any) string
	faint func(string, ...any) string
}

func newPrinter(w io.Writer, force bool) *printer {
	p := &printer{
		w:     w,
		ok:    fmt.Sprintf,
		warn:  fmt.Sprintf,
		fail:  fmt.Sprintf,
		faint: fmt.Sprintf,
	}

	if !force && !isTerminal(w) {
		return p
	}

	colorize := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		c.EnableColor()

		return c.Sprintf
	}

	p.ok = colorize(color.FgGreen)
	p.warn = colorize(color.FgYellow)
	p.fail = colorize(color.FgRed, color.Bold)
	p.faint = colorize(color.Faint)

	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) summary(r *build.Report, cfg config.Config) {
	for _, e := range r.Diagnostics.Errors {
		fmt.Fprintln(p.w, p.fail("✗ %s", e.String()))
	}

	for _, d := range r.Drifts {
		fmt.Fprintln(p.w, p.warn("~ %s (%s)", d.Path, d.Status))

		if d.Diff != "" {
			fmt.Fprint(p.w, p.faint("%s", d.Diff))
		}
	}

	verb := "written to"
	if cfg.Check {
		verb = "checked against"
	}

	line := fmt.Sprintf("%d generated, %d skipped, %d failed; %s %s",
		r.Generated, r.Skipped, r.Failed, verb, cfg.Out)

	switch {
	case r.OK():
		fmt.Fprintln(p.w, p.ok("✓ %s", line))
	case len(r.Drifts) > 0 && r.Diagnostics.IsValid():
		fmt.Fprintln(p.w, p.warn("! %s, %d out of date", line, len(r.Drifts)))
	default:
		fmt.Fprintln(p.w, p.fail("! %s", line))
	}
}
