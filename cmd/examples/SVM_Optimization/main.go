// Command SVM_Optimization tunes an SVM on the iris dataset with random search
// over ten seeded train/test partitions, then writes a convergence graph and a
// CSV summary to the working directory.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/Prince-05/SVM-Optimazation/pkg/pipeline"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0
	ExitFailed  = 1 // The optimization aborted
	ExitUsage   = 2 // Invalid invocation
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "SVM_Optimization",
		Short: "Random-search SVM hyperparameters over seeded iris partitions",
		Long: `SVM_Optimization loads the bundled iris dataset, standardizes it and draws
ten 70/30 partitions. Each partition gets 100 randomly sampled SVM
configurations (kernel, C, gamma).

The best configuration of every partition is printed and exported to
Optimized_SVM_Performance.csv, and the accuracy trace of the overall best
partition is plotted to Convergence_Best_SVM.png.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := pipeline.Run(pipeline.DefaultConfig(), cmd.OutOrStdout())
			return err
		},
	}
}

func execute() error {
	return newRootCommand().Execute()
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps pipeline failures to ExitFailed. Anything else came from
// argument parsing.
func exitCode(err error) int {
	var (
		loadErr   *errs.DataLoadError
		cfgErr    *errs.ConfigurationError
		fitErr    *errs.FitError
		exportErr *errs.ExportError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &loadErr), errors.As(err, &cfgErr),
		errors.As(err, &fitErr), errors.As(err, &exportErr):
		return ExitFailed
	default:
		return ExitUsage
	}
}
