package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/montanaflynn/stats"
	"github.com/uyouii/chisquare-gof/model"
)

var tableHeaders = []string{"Interval", "Upper Limit", "Observed", "Expected", "(O-E)²/E"}

// WriteTable writes the per-bin breakdown followed by the verdict. Numbers are
// rounded here for display only.
func WriteTable(w io.Writer, result model.TestResult) error {
	rows := make([][]string, 0, len(result.Contributions))
	for _, c := range result.Contributions {
		rows = append(rows, []string{
			c.Bin.Interval(),
			formatNumber(c.Bin.Upper, 1),
			formatNumber(c.Bin.Observed, -1),
			formatNumber(c.Bin.Expected, -1),
			formatNumber(c.Contribution, 2),
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	writeRow(&sb, tableHeaders, widths)
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	writeRow(&sb, sep, widths)
	for _, row := range rows {
		writeRow(&sb, row, widths)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Chi-Square Statistic: χ² = %v\n", formatNumber(result.Statistic, 2))
	fmt.Fprintf(&sb, "Critical Value: %v (α = %v, degrees of freedom = %v)\n",
		formatNumber(result.CriticalValue, 3), result.Alpha, result.DegreesOfFreedom)
	fmt.Fprintf(&sb, "Conclusion: %v.\n", Conclusion(result.Decision))

	_, err := io.WriteString(w, sb.String())
	return err
}

// Conclusion is the decision sentence shown to the user.
func Conclusion(d model.Decision) string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeRow(sb *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		if i == 0 {
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
		} else {
			sb.WriteString(runewidth.FillLeft(cell, widths[i]))
		}
	}
	sb.WriteString("\n")
}

// formatNumber rounds to places decimals, a negative places keeps full precision.
func formatNumber(v float64, places int) string {
	if places < 0 {
		return fmt.Sprintf("%v", v)
	}
	rounded, err := stats.Round(v, places)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%.*f", places, rounded)
}
