package pipeline

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/Prince-05/SVM-Optimazation/pkg/model"
	"github.com/Prince-05/SVM-Optimazation/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	updates := make(chan search.ProgressUpdate, 2)
	updates <- search.ProgressUpdate{
		Partition: 0, Trial: 1, TotalTrials: 2,
		Config:   search.Configuration{Kernel: model.RBF, C: 0.5, Gamma: 0.05},
		Accuracy: 0.9, BestAccuracy: 0.9,
	}
	updates <- search.ProgressUpdate{
		Partition: 0, Trial: 2, TotalTrials: 2,
		Config:   search.Configuration{Kernel: model.Linear, C: 0.2, Gamma: 0.01},
		Accuracy: 0.8, BestAccuracy: 0.9,
	}
	close(updates)

	logProgress(logger, updates)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "trial=1")
	assert.Contains(t, lines[0], "kernel=rbf")
	assert.Contains(t, lines[1], "partition=1")
	assert.Contains(t, lines[1], "best_accuracy=0.9")
}

func TestRunSendsProgressToCallerChannel(t *testing.T) {
	if testing.Short() {
		t.Skip("search in short mode")
	}
	cfg := DefaultConfig()
	cfg.Partitions = 2
	cfg.Search.Trials = 5
	cfg.OutputDir = t.TempDir()
	updates := make(chan search.ProgressUpdate, 10)
	cfg.Search.ProgressChan = updates

	_, err := Run(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	close(updates)

	var got []search.ProgressUpdate
	for u := range updates {
		got = append(got, u)
	}
	require.Len(t, got, 10)
	assert.Equal(t, 1, got[9].Partition)
	assert.Equal(t, 5, got[9].Trial)
}
