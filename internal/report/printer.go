// Package report renders results as plain or styled lines, or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"pathshadow/internal/config"
	"pathshadow/internal/diag"
	"pathshadow/internal/locate"
	"pathshadow/internal/model"
	"pathshadow/internal/validate"
)

// Printer writes the result of one command to out.
type Printer struct {
	out     io.Writer
	format  string
	profile termenv.Profile
	styles  styles
	diags   diag.Collector
}

type style struct {
	color string
	bold  bool
}

type styles struct {
	winner   style
	shadowed style
	delim    style
	issue    style
}

// NewPrinter builds a Printer. color is auto, always or never; auto styles only terminals.
func NewPrinter(out io.Writer, format, color string) *Printer {
	r := lipgloss.NewRenderer(out)
	switch color {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return &Printer{
		out:     out,
		format:  format,
		profile: r.ColorProfile(),
		styles: styles{
			winner:   style{color: "81", bold: true}, // Sky Blue/Cyan
			shadowed: style{color: "240"},            // Grey
			delim:    style{color: "238"},
			issue:    style{color: "208"}, // Orange
		},
	}
}

// paint wraps text in escape sequences only. Paths keep their exact bytes, tabs included.
func (p *Printer) paint(s style, text string) string {
	if p.profile == termenv.Ascii {
		return text
	}
	out := p.profile.String(text).Foreground(p.profile.Color(s.color))
	if s.bold {
		out = out.Bold()
	}
	return out.String()
}

// Diagnostics is the sink whose reports are counted in JSON documents.
func (p *Printer) Diagnostics() diag.Sink {
	return &p.diags
}

// JSON reports whether output is a single JSON document.
func (p *Printer) JSON() bool {
	return p.format == config.FormatJSON
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Shadows prints one "<shadowing><delim><shadowed>" line per event, or a JSON document.
func (p *Printer) Shadows(events iter.Seq[model.ShadowEvent], delim string) (int, error) {
	if p.JSON() {
		list := []model.ShadowEvent{}
		for ev := range events {
			list = append(list, ev)
		}
		return len(list), p.encode(struct {
			Events      []model.ShadowEvent `json:"events"`
			Diagnostics int                 `json:"diagnostics"`
		}{list, p.diags.Len()})
	}

	n := 0
	for ev := range events {
		line := p.paint(p.styles.winner, ev.Shadowing) + p.paint(p.styles.delim, delim) + p.paint(p.styles.shadowed, ev.Shadowed)
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Match prints one located path as soon as it is found. It is a no-op in JSON mode.
func (p *Printer) Match(m model.Match) error {
	if p.JSON() {
		return nil
	}
	_, err := fmt.Fprintln(p.out, p.paint(p.styles.winner, m.Path))
	return err
}

// Located finishes a where command. Text output was already streamed by Match.
func (p *Printer) Located(res locate.Result) error {
	if !p.JSON() {
		return nil
	}
	matches := res.Matches
	if matches == nil {
		matches = []model.Match{}
	}
	missing := res.Missing()
	if missing == nil {
		missing = []string{}
	}
	return p.encode(struct {
		Targets     []string      `json:"targets"`
		Matches     []model.Match `json:"matches"`
		Missing     []string      `json:"missing"`
		Diagnostics int           `json:"diagnostics"`
	}{res.Targets, matches, missing, p.diags.Len()})
}

type issueJSON struct {
	model.Issue
	Message string `json:"message"`
}

// Issues prints one warning line per issue, or a JSON document.
func (p *Printer) Issues(issues []model.Issue) error {
	if p.JSON() {
		list := make([]issueJSON, 0, len(issues))
		for _, is := range issues {
			list = append(list, issueJSON{Issue: is, Message: validate.Message(is)})
		}
		return p.encode(struct {
			Issues      []issueJSON `json:"issues"`
			Diagnostics int         `json:"diagnostics"`
		}{list, p.diags.Len()})
	}
	for _, is := range issues {
		if _, err := fmt.Fprintln(p.out, p.paint(p.styles.issue, validate.Message(is))); err != nil {
			return err
		}
	}
	return nil
}
