package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Prince-05/SVM-Optimazation/pkg/search"
)

// Column headers shared by the console table and the CSV export.
const (
	HeaderSample     = "Sample"
	HeaderAccuracy   = "Best Accuracy"
	HeaderParameters = "Optimal Parameters"
)

// WriteTable renders one row per outcome in partition order.
func WriteTable(w io.Writer, s *search.Summary) error {
	rows := [][]string{{HeaderSample, HeaderAccuracy, HeaderParameters}}
	for _, o := range s.Outcomes {
		rows = append(rows, []string{o.Label(), fmt.Sprintf("%.4f", o.BestAccuracy), o.Best.String()})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j, cell := range row {
			widths[j] = max(widths[j], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			if j == len(row)-1 {
				b.WriteString(cell)
			} else {
				b.WriteString(padRight(cell, widths[j]))
			}
		}
		b.WriteString("\n")
		if i == 0 {
			total := 2 * (len(widths) - 1)
			for _, wd := range widths {
				total += wd
			}
			b.WriteString(strings.Repeat("-", total))
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WritePartitionLine prints the best result of one partition.
func WritePartitionLine(w io.Writer, o search.Outcome) error {
	_, err := fmt.Fprintf(w, "\nSample %d - Best Accuracy: %.4f\nOptimal Parameters: Kernel=%s, C=%.4f, Gamma=%.4f\n",
		o.Partition+1, o.BestAccuracy, o.Best.Kernel, o.Best.C, o.Best.Gamma)
	return err
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
