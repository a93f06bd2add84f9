package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/msto63/datafilter/internal/filter/journal"
	"github.com/msto63/datafilter/internal/filter/service"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// renderSummary renders the end-of-run overview printed with --verbose
func renderSummary(opts service.Options, result *service.Result, warnings int) string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	c := result.Collections
	lines := []string{
		titleStyle.Render("datafilter run"),
		row("files", strconv.Itoa(len(opts.Files))),
		row("integers", fmt.Sprintf("%d -> %s", len(c.Integers), result.Targets.Integers.Path)),
		row("floats", fmt.Sprintf("%d -> %s", len(c.Floats), result.Targets.Floats.Path)),
		row("strings", fmt.Sprintf("%d -> %s", len(c.Strings), result.Targets.Strings.Path)),
		row("mode", opts.Mode().String()),
		row("duration", result.Duration.Round(time.Microsecond).String()),
	}

	warnText := strconv.Itoa(warnings)
	if warnings > 0 {
		warnText = warningStyle.Render(warnText)
	} else {
		warnText = valueStyle.Render(warnText)
	}
	lines = append(lines, labelStyle.Render("warnings")+warnText)

	return boxStyle.Render(strings.Join(lines, "\n"))
}

// renderHistory renders recorded runs as a table, newest first
func renderHistory(runs []*journal.RunRecord) string {
	if len(runs) == 0 {
		return "No runs recorded."
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("STARTED", "FILES", "INT", "FLOAT", "STR", "WARN", "MODE", "OUTPUT").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, run := range runs {
		output := run.OutputDir
		if output == "" {
			output = "."
		}
		t.Row(
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			strconv.Itoa(len(run.Files)),
			strconv.Itoa(run.Integers),
			strconv.Itoa(run.Floats),
			strconv.Itoa(run.Strings),
			strconv.Itoa(run.Warnings),
			run.Mode,
			output+"/"+run.Prefix+"*",
		)
	}

	return t.Render()
}
