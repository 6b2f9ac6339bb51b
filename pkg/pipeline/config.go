package pipeline

import (
	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/Prince-05/SVM-Optimazation/pkg/report"
	"github.com/Prince-05/SVM-Optimazation/pkg/search"
)

// Config holds every setting of a run. The reference run uses DefaultConfig
// unchanged.
type Config struct {
	// Dataset and DatasetVersion identify the bundled dataset to load.
	Dataset        string
	DatasetVersion int

	// TestRatio is the held-out fraction of every partition.
	TestRatio float64

	// Partitions is the number of seed-keyed partitions to search.
	Partitions int

	Search search.Config

	// OutputDir receives the plot and CSV. Empty means the working directory.
	OutputDir string
	CSVName   string
	PlotName  string

	// PreviewRows is the number of leading rows shown in the dataset overview.
	PreviewRows int
}

func DefaultConfig() Config {
	return Config{
		Dataset:        "iris",
		DatasetVersion: 1,
		TestRatio:      0.3,
		Partitions:     10,
		Search:         search.DefaultConfig(),
		CSVName:        report.CSVFile,
		PlotName:       report.PlotFile,
		PreviewRows:    5,
	}
}

// Validate checks the run settings, returning a ConfigurationError.
func (c Config) Validate() error {
	if c.Dataset == "" {
		return errs.Configf("dataset", "must not be empty")
	}
	if !(c.TestRatio > 0 && c.TestRatio < 1) {
		return errs.Configf("testRatio", "must be in (0, 1), got %v", c.TestRatio)
	}
	if c.Partitions <= 0 {
		return errs.Configf("partitions", "must be positive, got %d", c.Partitions)
	}
	if c.CSVName == "" {
		return errs.Configf("csvName", "must not be empty")
	}
	if c.PlotName == "" {
		return errs.Configf("plotName", "must not be empty")
	}
	return c.Search.Validate()
}
