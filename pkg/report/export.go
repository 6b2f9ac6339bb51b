package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/Prince-05/SVM-Optimazation/pkg/search"
)

// CSVFile is the name of the exported summary.
const CSVFile = "Optimized_SVM_Performance.csv"

// FormatAccuracy renders an accuracy in the shortest form that parses back to
// the same float64.
func FormatAccuracy(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportCSV writes the summary to path, replacing any existing file. Every
// failure is an *errs.ExportError.
func ExportCSV(path string, s *search.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return &errs.ExportError{Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	records := [][]string{{HeaderSample, HeaderAccuracy, HeaderParameters}}
	for _, o := range s.Outcomes {
		records = append(records, []string{o.Label(), FormatAccuracy(o.BestAccuracy), o.Best.String()})
	}
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		return &errs.ExportError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &errs.ExportError{Path: path, Err: err}
	}
	return nil
}
