// Package report formats the moments of an analyzed attribute into a
// human-readable summary. Pure formatting; no numeric logic lives here.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trendlens/trendlens/pkg/moments"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

// Text renders the deterministic plain-text report for one attribute.
//
// The layout is fixed: a header naming the attribute, one line with the four
// moments to two decimals, and one sentence with the qualitative shape.
func Text(col string, m moments.Moments, s moments.Shape) string {
	var b strings.Builder
	fmt.Fprintf(&b, "For the attribute %s:\n", col)
	fmt.Fprintf(&b, "Mean = %.2f, Standard Deviation = %.2f, Skewness = %.2f, and Excess Kurtosis = %.2f.\n",
		m.Mean, m.StdDev, m.Skewness, m.ExcessKurtosis)
	fmt.Fprintf(&b, "The data is %s and %s.", s.Skew, s.Kurtosis)
	return b.String()
}

// Styled renders the report with terminal styling for console output. The
// wording is identical to Text; only presentation differs.
func Styled(col string, m moments.Moments, s moments.Shape) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("For the attribute %s:", col)))
	b.WriteString("\n")
	b.WriteString(styleLabel.Render("Mean = "))
	b.WriteString(styleNumber.Render(fmt.Sprintf("%.2f", m.Mean)))
	b.WriteString(styleLabel.Render(", Standard Deviation = "))
	b.WriteString(styleNumber.Render(fmt.Sprintf("%.2f", m.StdDev)))
	b.WriteString(styleLabel.Render(", Skewness = "))
	b.WriteString(styleNumber.Render(fmt.Sprintf("%.2f", m.Skewness)))
	b.WriteString(styleLabel.Render(", and Excess Kurtosis = "))
	b.WriteString(styleNumber.Render(fmt.Sprintf("%.2f", m.ExcessKurtosis)))
	b.WriteString(styleLabel.Render("."))
	b.WriteString("\n")
	b.WriteString(styleLabel.Render(fmt.Sprintf("The data is %s and %s.", s.Skew, s.Kurtosis)))
	return b.String()
}
