package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Prince-05/SVM-Optimazation/pkg/data"
	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/Prince-05/SVM-Optimazation/pkg/loader"
	"github.com/Prince-05/SVM-Optimazation/pkg/report"
	"github.com/Prince-05/SVM-Optimazation/pkg/search"
	"github.com/Prince-05/SVM-Optimazation/pkg/stats"
)

// Run executes the whole optimization: load, normalize, split, search every
// partition, aggregate and report. Console output goes to out.
//
// The first error aborts the run. Nothing is written to OutputDir unless every
// partition has been searched.
func Run(cfg Config, out io.Writer) (*search.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ds, err := data.Load(cfg.Dataset, cfg.DatasetVersion)
	if err != nil {
		return nil, err
	}
	slog.Info("dataset loaded", "dataset", ds.Name, "version", ds.Version, "rows", ds.Len())
	if err := writeOverview(out, ds, cfg.PreviewRows); err != nil {
		return nil, err
	}

	X, err := NewPipeline(stats.NewStandardScaler()).FitTransform(ds.X)
	if err != nil {
		return nil, &errs.DataLoadError{Dataset: ds.Name, Version: ds.Version, Err: err}
	}

	parts, err := loader.Split(X, ds.Y, cfg.TestRatio, cfg.Partitions)
	if err != nil {
		return nil, err
	}
	slog.Info("partitions created",
		"count", len(parts),
		"train", len(parts[0].XTrain),
		"test", len(parts[0].XTest))

	searchCfg := cfg.Search
	if searchCfg.ProgressChan == nil {
		updates := make(chan search.ProgressUpdate, searchCfg.Trials)
		done := make(chan struct{})
		go func() {
			defer close(done)
			logProgress(slog.Default(), updates)
		}()
		defer func() {
			close(updates)
			<-done
		}()
		searchCfg.ProgressChan = updates
	}

	searcher, err := search.NewSearcher(searchCfg, search.SVMEvaluator{Seed: searchCfg.ModelSeed})
	if err != nil {
		return nil, err
	}
	outcomes := make([]search.Outcome, 0, len(parts))
	for _, p := range parts {
		o, err := searcher.Search(p)
		if err != nil {
			return nil, err
		}
		slog.Info("partition searched", "partition", p.Index+1, "best_accuracy", o.BestAccuracy, "best", o.Best.String())
		if err := report.WritePartitionLine(out, o); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}

	summary, err := search.Aggregate(outcomes)
	if err != nil {
		return nil, err
	}
	best := summary.Best()
	slog.Info("search complete", "best_partition", summary.BestIndex()+1, "best_accuracy", best.BestAccuracy)

	if _, err := fmt.Fprintln(out, "\nPerformance Summary:"); err != nil {
		return nil, err
	}
	if err := report.WriteTable(out, summary); err != nil {
		return nil, err
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, &errs.ExportError{Path: cfg.OutputDir, Err: err}
		}
	}
	plotPath := filepath.Join(cfg.OutputDir, cfg.PlotName)
	if err := report.PlotConvergence(best, plotPath); err != nil {
		return nil, err
	}
	slog.Info("convergence plot saved", "path", plotPath)

	csvPath := filepath.Join(cfg.OutputDir, cfg.CSVName)
	if err := report.ExportCSV(csvPath, summary); err != nil {
		return nil, err
	}
	slog.Info("results exported", "path", csvPath)

	if _, err := fmt.Fprintf(out, "\nResults exported to %s\n", csvPath); err != nil {
		return nil, err
	}
	return summary, nil
}
