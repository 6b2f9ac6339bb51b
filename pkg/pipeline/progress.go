package pipeline

import (
	"log/slog"

	"github.com/Prince-05/SVM-Optimazation/pkg/search"
)

// logProgress writes one debug record per trial until updates is closed.
func logProgress(logger *slog.Logger, updates <-chan search.ProgressUpdate) {
	for u := range updates {
		logger.Debug("trial evaluated",
			"partition", u.Partition+1,
			"trial", u.Trial,
			"of", u.TotalTrials,
			"kernel", u.Config.Kernel,
			"C", u.Config.C,
			"gamma", u.Config.Gamma,
			"accuracy", u.Accuracy,
			"best_accuracy", u.BestAccuracy)
	}
}
