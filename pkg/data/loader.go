package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Prince-05/SVM-Optimazation/pkg/dataprep"
	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
)

// Dataset is a feature matrix paired with encoded class labels.
type Dataset struct {
	Name    string
	Version int
	Schema  Schema
	X       [][]float64
	Y       []int
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.X) }

// ClassCounts returns the number of samples per label code.
func (d *Dataset) ClassCounts() []int {
	return dataprep.ValueCounts(d.Y, d.Schema.NumClasses())
}

// Load resolves a bundled dataset by name and version. Every failure is a
// *errs.DataLoadError.
func Load(name string, version int) (*Dataset, error) {
	entry, err := lookup(name, version)
	if err != nil {
		return nil, &errs.DataLoadError{Dataset: name, Version: version, Err: err}
	}
	f, err := bundled.Open("datasets/" + entry.File)
	if err != nil {
		return nil, &errs.DataLoadError{Dataset: name, Version: version, Err: err}
	}
	defer f.Close()

	ds, err := ReadCSV(f, entry.Target)
	if err != nil {
		return nil, &errs.DataLoadError{Dataset: name, Version: version, Err: err}
	}
	ds.Name, ds.Version = entry.Name, entry.Version
	return ds, nil
}

// ReadCSV parses a headed CSV whose target column holds class names and whose
// other columns are numeric features.
func ReadCSV(r io.Reader, target string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("csv: empty input (no header row)")
	}

	headers := records[0]
	labelCol := -1
	features := make([]string, 0, len(headers))
	for i, h := range headers {
		if strings.TrimSpace(h) == target {
			labelCol = i
			continue
		}
		features = append(features, h)
	}
	if labelCol < 0 {
		return nil, fmt.Errorf("csv: target column %q not found", target)
	}
	if len(features) == 0 {
		return nil, errors.New("csv: no feature columns")
	}

	rows := records[1:]
	if len(rows) == 0 {
		return nil, errors.New("csv: no data rows")
	}

	X := make([][]float64, 0, len(rows))
	labels := make([]string, 0, len(rows))
	for i, rec := range rows {
		line := i + 2
		x := make([]float64, 0, len(features))
		for j, s := range rec {
			if dataprep.IsMissing(s) {
				return nil, fmt.Errorf("csv: row %d column %q: missing value", line, headers[j])
			}
			if j == labelCol {
				labels = append(labels, strings.TrimSpace(s))
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("csv: row %d column %q: %w", line, headers[j], err)
			}
			x = append(x, v)
		}
		X = append(X, x)
	}

	y, mapping := dataprep.LabelEncode(labels)
	return &Dataset{
		Schema: Schema{
			FeatureNames: features,
			Target:       target,
			ClassNames:   dataprep.ClassNames(mapping),
		},
		X: X,
		Y: y,
	}, nil
}
