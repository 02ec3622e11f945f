package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"valuation/internal/generate"
	"valuation/internal/types"
	"valuation/internal/valuation"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#003366"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Width(22)
	valueStyle = lipgloss.NewStyle().Bold(true)
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

// styled reports whether w is a terminal that gets colour.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	enableVT()
	return true
}

type printer struct {
	w      io.Writer
	styled bool
}

func (p printer) title(s string) {
	if p.styled {
		s = titleStyle.Render(s)
	}
	fmt.Fprintln(p.w, s)
}

func (p printer) field(label, value string) {
	if p.styled {
		fmt.Fprintln(p.w, labelStyle.Render(label)+valueStyle.Render(value))
		return
	}
	fmt.Fprintf(p.w, "%-22s%s\n", label, value)
}

func (p printer) path(s string) string {
	if p.styled {
		return pathStyle.Render(s)
	}
	return s
}

func printSummary(w io.Writer, res *generate.Result, styled bool) {
	p := printer{w: w, styled: styled}
	f := res.Figures

	p.title("Valuation report generated")
	p.field("Report ID", res.Issue.ReportID)
	p.field("File No", res.Issue.FileNo)
	p.field("Owner", res.Issue.OwnerName)
	p.field("Fair market value", valuation.Rs(f.MarketValue))
	p.field("Realizable value", valuation.Rs(f.Realizable))
	p.field("Distress value", valuation.Rs(f.Distress))
	p.field("Insurable value", valuation.Rs(f.Insurable))
	p.field("Jantri value", valuation.Rs(f.JantriValue))
	if res.Location != nil {
		zoning := res.Location.Zoning
		if zoning == "" {
			zoning = "Not available"
		}
		p.field("Location", fmt.Sprintf("%.6f, %.6f", res.Location.Lat, res.Location.Lon))
		p.field("Zoning", zoning)
	}

	fmt.Fprintln(w)
	for _, a := range res.Artifacts {
		detail := strings.ToUpper(a.Format)
		if a.Pages > 0 {
			detail += fmt.Sprintf(", %d pages", a.Pages)
		}
		fmt.Fprintf(w, "  %s (%s)\n", p.path(a.Path), detail)
	}
}

func printIssued(w io.Writer, issues []types.Issue, styled bool) {
	p := printer{w: w, styled: styled}
	for i, issue := range issues {
		if i > 0 {
			fmt.Fprintln(w)
		}
		p.title(issue.FileNo + "  " + issue.OwnerName)
		p.field("Report ID", issue.ReportID)
		p.field("Report date", valuation.ShortDate(issue.ReportDate))
		p.field("Fair market value", valuation.Rs(issue.MarketValue))
		p.field("Layouts", strings.Join(issue.Layouts, ", "))
		p.field("Generated", issue.GeneratedAt.Local().Format("02-Jan-2006 15:04"))
		for _, a := range issue.Artifacts {
			fmt.Fprintf(w, "  %s\n", p.path(a))
		}
	}
}
