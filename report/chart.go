package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/montanaflynn/stats"
	"github.com/uyouii/chisquare-gof/model"
	"github.com/uyouii/chisquare-gof/utils"
)

const (
	DefaultChartWidth = 40

	observedBar = "█"
	expectedBar = "░"
)

// WriteChart draws a grouped horizontal bar chart, one observed and one expected bar
// per interval, scaled so the largest frequency spans width cells.
func WriteChart(w io.Writer, result model.TestResult, width int) error {
	if width <= 0 {
		width = DefaultChartWidth
	}
	if len(result.Contributions) == 0 {
		return nil
	}

	freqs := make([]float64, 0, 2*len(result.Contributions))
	labelWidth := 0
	for _, c := range result.Contributions {
		freqs = append(freqs, c.Bin.Observed, c.Bin.Expected)
		labelWidth = max(labelWidth, runewidth.StringWidth(c.Bin.Interval()))
	}
	top, err := stats.Max(freqs)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Observed Frequency  %s Expected Frequency\n\n", observedBar, expectedBar)
	for _, c := range result.Contributions {
		label := runewidth.FillRight(c.Bin.Interval(), labelWidth)
		blank := strings.Repeat(" ", labelWidth)
		fmt.Fprintf(&sb, "%s │%s %v\n", label, bar(observedBar, c.Bin.Observed, top, width), c.Bin.Observed)
		fmt.Fprintf(&sb, "%s │%s %v\n", blank, bar(expectedBar, c.Bin.Expected, top, width), c.Bin.Expected)
	}

	_, err = io.WriteString(w, sb.String())
	return err
}

func bar(unit string, v, top float64, width int) string {
	if top <= 0 || v <= 0 {
		return ""
	}
	n := utils.FormatFloat(v/top*float64(width), 0)
	return strings.Repeat(unit, int(n))
}
