// Package report renders a runner.Report for a terminal or a machine.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/langtour/internal/console"
	"github.com/vk/langtour/internal/runner"
)

// Format selects how a report is written.
type Format string

const (
	// FormatPlain writes only what the lessons printed, as if each snippet
	// had been run by hand.
	FormatPlain  Format = "plain"
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// Formats lists every accepted format.
var Formats = []Format{FormatPlain, FormatPretty, FormatJSON}

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (expected plain|pretty|json)", s)
}

// Write renders rep to w in the given format.
func Write(w io.Writer, rep *runner.Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatPretty:
		return writePretty(w, rep)
	case FormatPlain, "":
		return writePlain(w, rep)
	default:
		return fmt.Errorf("unsupported format %q (expected plain|pretty|json)", format)
	}
}

func writePlain(w io.Writer, rep *runner.Report) error {
	for _, res := range rep.Results {
		for _, e := range res.Output {
			if _, err := fmt.Fprintln(w, e.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

type theme struct {
	Topic  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Faint  lipgloss.Style
	Stderr lipgloss.Style
	Diff   lipgloss.Style
}

// newTheme binds styles to w so that colours are dropped when w is not a
// terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		Topic:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Pass:   r.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Faint:  r.NewStyle().Faint(true),
		Stderr: r.NewStyle().Foreground(lipgloss.Color("208")),
		Diff: r.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("196")),
	}
}

func writePretty(w io.Writer, rep *runner.Report) error {
	t := newTheme(w)
	var b strings.Builder

	topic := ""
	for _, res := range rep.Results {
		if res.Topic != topic {
			topic = res.Topic
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(t.Topic.Render("== "+topic+" ==") + "\n")
		}

		fmt.Fprintf(&b, "%s %s %s %s\n",
			mark(t, res.Status),
			res.ID(),
			res.Title,
			t.Faint.Render(fmt.Sprintf("(%s)", res.Duration.Round(time.Microsecond))),
		)
		for _, e := range res.Output {
			line := "    " + e.Text
			if e.Stream == console.Stderr {
				line = t.Stderr.Render(line)
			}
			b.WriteString(line + "\n")
		}
		if res.Error != "" {
			b.WriteString(t.Fail.Render("    error: "+res.Error) + "\n")
		}
		if res.Diff != "" {
			b.WriteString(t.Diff.Render("-expect +got\n"+strings.TrimRight(res.Diff, "\n")) + "\n")
		}
	}

	b.WriteString("\n" + summary(rep) + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func mark(t theme, s runner.Status) string {
	switch s {
	case runner.StatusPassed:
		return t.Pass.Render("✓")
	case runner.StatusRan:
		return t.Faint.Render("•")
	default:
		return t.Fail.Render("✗")
	}
}

// summary is the one-line tally printed under a pretty report.
func summary(rep *runner.Report) string {
	total := len(rep.Results)
	d := rep.EndedAt.Sub(rep.StartedAt).Round(time.Microsecond)
	if !rep.Verified {
		return fmt.Sprintf("%d lessons run in %s (run %s)", total, d, rep.RunID)
	}
	return fmt.Sprintf("%d lessons, %d passed, %d failed in %s (run %s)",
		total, rep.Passed(), rep.Failed(), d, rep.RunID)
}
