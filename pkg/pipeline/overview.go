package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/Prince-05/SVM-Optimazation/pkg/data"
	"github.com/Prince-05/SVM-Optimazation/pkg/stats"
)

// writeOverview prints the shape, leading rows, class distribution and
// per-column statistics of ds.
func writeOverview(w io.Writer, ds *data.Dataset, previewRows int) error {
	var b strings.Builder
	schema := ds.Schema

	fmt.Fprintf(&b, "Dataset: %s (version %d)\n", ds.Name, ds.Version)
	fmt.Fprintf(&b, "Shape: %d rows x %d features, target %q\n", ds.Len(), schema.NumFeatures(), schema.Target)

	fmt.Fprintf(&b, "\nFirst %d rows:\n", min(previewRows, ds.Len()))
	for _, name := range schema.FeatureNames {
		fmt.Fprintf(&b, "%12s", name)
	}
	fmt.Fprintf(&b, "  %s\n", schema.Target)
	for i := 0; i < previewRows && i < ds.Len(); i++ {
		for _, v := range ds.X[i] {
			fmt.Fprintf(&b, "%12.2f", v)
		}
		fmt.Fprintf(&b, "  %s\n", schema.ClassNames[ds.Y[i]])
	}

	b.WriteString("\nClass distribution:\n")
	for code, count := range ds.ClassCounts() {
		fmt.Fprintf(&b, "  %-20s %d\n", schema.ClassNames[code], count)
	}

	b.WriteString("\nSummary statistics:\n")
	fmt.Fprintf(&b, "%-14s", "")
	for _, stat := range []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"} {
		fmt.Fprintf(&b, "%10s", stat)
	}
	b.WriteString("\n")
	for j, s := range stats.Describe(ds.X) {
		fmt.Fprintf(&b, "%-14s%10d%10.4f%10.4f%10.4f%10.4f%10.4f%10.4f%10.4f\n",
			schema.FeatureNames[j], s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Q2, s.Q3, s.Max)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
