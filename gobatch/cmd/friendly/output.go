package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/starius/hipattern/gobatch"
	"github.com/starius/hipattern/gopattern"
)

// Theme defines the color scheme for console output
type Theme struct {
	Summary lipgloss.Style
	Count   lipgloss.Style
	Pattern lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Summary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Count:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Pattern: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var theme = DefaultTheme

func printSummary(w io.Writer, rep *gobatch.Report) {
	fmt.Fprintln(w, theme.Summary.Render(fmt.Sprintf("Number of friendly strings: %d", rep.Friendly)))
	for _, e := range rep.Top {
		fmt.Fprintf(w, "  %s %s\n",
			theme.Count.Render(fmt.Sprintf("%6d", e.Count)),
			theme.Pattern.Render(gopattern.Pattern(e.Pattern).String()))
	}
	if len(rep.Skipped) != 0 {
		fmt.Fprintln(w, theme.Dim.Render(fmt.Sprintf("Skipped %d invalid lines", len(rep.Skipped))))
	}
	fmt.Fprintln(w, theme.Dim.Render(fmt.Sprintf("%d lines, %d distinct patterns, %d recurring, %s",
		rep.Lines, rep.Distinct, rep.RecurringPatterns, rep.Duration.Round(time.Millisecond))))
}

// JSON output structures

type JSONSkipped struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type JSONEntry struct {
	Pattern string `json:"pattern"`
	Count   uint64 `json:"count"`
}

type JSONReport struct {
	Friendly          uint64        `json:"friendly"`
	Lines             int           `json:"lines"`
	Patterns          int           `json:"patterns"`
	Distinct          int           `json:"distinct"`
	RecurringPatterns int           `json:"recurring_patterns"`
	Top               []JSONEntry   `json:"top,omitempty"`
	Skipped           []JSONSkipped `json:"skipped,omitempty"`
	DurationMS        int64         `json:"duration_ms"`
}

func toJSONReport(rep *gobatch.Report) JSONReport {
	out := JSONReport{
		Friendly:          rep.Friendly,
		Lines:             rep.Lines,
		Patterns:          rep.Patterns,
		Distinct:          rep.Distinct,
		RecurringPatterns: rep.RecurringPatterns,
		DurationMS:        rep.Duration.Milliseconds(),
	}
	for _, e := range rep.Top {
		out.Top = append(out.Top, JSONEntry{
			Pattern: gopattern.Pattern(e.Pattern).String(),
			Count:   e.Count,
		})
	}
	for _, le := range rep.Skipped {
		out.Skipped = append(out.Skipped, JSONSkipped{Line: le.Line, Error: le.Err.Error()})
	}
	return out
}

func printJSON(w io.Writer, rep *gobatch.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSONReport(rep))
}

func markdownReport(rep *gobatch.Report) string {
	var sb strings.Builder
	sb.WriteString("# Friendly strings\n\n")
	fmt.Fprintf(&sb, "**%d** of %d lines share their pattern with another line.\n\n", rep.Friendly, rep.Lines)
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Lines | %d |\n", rep.Lines)
	fmt.Fprintf(&sb, "| Patterns | %d |\n", rep.Patterns)
	fmt.Fprintf(&sb, "| Distinct patterns | %d |\n", rep.Distinct)
	fmt.Fprintf(&sb, "| Recurring patterns | %d |\n", rep.RecurringPatterns)
	fmt.Fprintf(&sb, "| Skipped lines | %d |\n", len(rep.Skipped))
	if len(rep.Top) != 0 {
		sb.WriteString("\n## Most frequent patterns\n\n| Count | Pattern |\n|---:|---|\n")
		for _, e := range rep.Top {
			fmt.Fprintf(&sb, "| %d | `%s` |\n", e.Count, gopattern.Pattern(e.Pattern))
		}
	}
	if len(rep.Skipped) != 0 {
		sb.WriteString("\n## Skipped lines\n\n")
		for _, le := range rep.Skipped {
			fmt.Fprintf(&sb, "- line %d: %s\n", le.Line, le.Err)
		}
	}
	return sb.String()
}

func printMarkdown(w io.Writer, rep *gobatch.Report) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(markdownReport(rep))
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
