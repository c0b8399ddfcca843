package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/muesli/termenv"
	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/ui/output"
	"go.trai.ch/fclean/internal/ui/style"
	"go.trai.ch/zerr"
)

// kindWidth fits the longest kind name.
const kindWidth = 28

func writeScanText(w io.Writer, result *domain.ScanResult) error {
	out := output.New(w)
	var b strings.Builder

	if result.ProjectCount() == 0 && len(result.GlobalTargets) == 0 {
		b.WriteString(out.String("No Flutter caches found.").Faint().String() + "\n")
		return writeText(w, b.String())
	}

	writeProjectSection(&b, out, "Priority projects", result.PriorityProjects)
	writeProjectSection(&b, out, "Default projects", result.DefaultProjects)

	if len(result.GlobalTargets) > 0 {
		b.WriteString(heading(out, "Global caches") + "\n")
		for _, t := range result.GlobalTargets {
			b.WriteString(targetRow(out, t) + "\n")
		}
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("Total: %s, %s, %s reclaimable",
		english.Plural(result.ProjectCount(), "project", ""),
		english.Plural(result.TargetCount(), "target", ""),
		formatBytes(result.TotalBytes()),
	)
	b.WriteString(out.String(summary).Bold().String() + "\n")

	return writeText(w, b.String())
}

func writeProjectSection(b *strings.Builder, out *termenv.Output, title string, projects []domain.ProjectInfo) {
	if len(projects) == 0 {
		return
	}

	b.WriteString(heading(out, title) + "\n")
	for _, p := range projects {
		root := out.String(p.RootPath).Foreground(out.Color(string(style.Sky))).String()
		b.WriteString("  " + root + "  " + sizeString(out, p.TotalBytes(), formatBytes(p.TotalBytes())) + "\n")
		for _, t := range p.Targets {
			b.WriteString(targetRow(out, t) + "\n")
		}
	}
	b.WriteString("\n")
}

func targetRow(out *termenv.Output, t domain.CacheTarget) string {
	kind := fmt.Sprintf("%-*s", kindWidth, t.Kind)
	size := sizeString(out, t.SizeBytes, fmt.Sprintf("%10s", formatBytes(t.SizeBytes)))
	path := out.String(t.Path).Faint().String()
	return "    " + kind + " " + size + "  " + path
}

func sizeString(out *termenv.Output, n int64, text string) string {
	return out.String(text).Foreground(out.Color(string(style.SizeColor(n)))).String()
}

func heading(out *termenv.Output, title string) string {
	return out.String(title).Bold().Foreground(out.Color(string(style.Iris))).String()
}

func writeCleanText(w io.Writer, outcome *domain.CleanOutcome) error {
	out := output.New(w)
	var b strings.Builder

	failed := outcome.FailedPathsSorted()
	if len(outcome.DeletedPaths) == 0 && len(failed) == 0 {
		b.WriteString(out.String("Nothing to clean.").Faint().String() + "\n")
		return writeText(w, b.String())
	}

	check := out.String(style.Check).Foreground(out.Color(string(style.Green))).String()
	for _, p := range outcome.DeletedPaths {
		b.WriteString(check + " " + p + "\n")
	}

	cross := out.String(style.Cross).Foreground(out.Color(string(style.Red))).String()
	for _, p := range failed {
		b.WriteString(cross + " " + p + ": " + outcome.FailedPaths[p] + "\n")
	}

	summary := fmt.Sprintf("Reclaimed %s from %s",
		formatBytes(outcome.ReclaimedBytes),
		english.Plural(len(outcome.DeletedPaths), "target", ""),
	)
	if len(failed) > 0 {
		summary += ", " + english.Plural(len(failed), "failure", "")
	}
	b.WriteString("\n" + out.String(summary).Bold().String() + "\n")

	return writeText(w, b.String())
}

func writeCatalogText(w io.Writer, entries []domain.CatalogEntry) error {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(output.ProfileFor(w))

	headerStyle := renderer.NewStyle().Bold(true).Foreground(style.Iris)
	cellStyle := renderer.NewStyle().PaddingRight(2)
	faintStyle := cellStyle.Foreground(style.Slate)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		location := e.Location
		if !e.Available {
			location = "-"
		}
		rows = append(rows, []string{e.Kind.String(), e.Tier, location})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.PaddingRight(2)
			case row >= 0 && row < len(rows) && col == 2 && rows[row][2] == "-":
				return faintStyle
			default:
				return cellStyle
			}
		}).
		Headers("KIND", "TIER", "LOCATION").
		Rows(rows...)

	return writeText(w, t.Render()+"\n")
}

func formatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

func writeText(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}
