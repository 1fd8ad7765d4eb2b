package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spboyer/rainfall/internal/measurements"
	"github.com/spboyer/rainfall/internal/metrics"
	"github.com/spboyer/rainfall/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rainfall",
		Short: "Summarize rainfall measurements read from standard input",
		Long: `Rainfall reads rainfall measurements from standard input, one per line,
and prints their mean along with how many fall within 5 cm below and above it.

Lines that are not a single non-negative number are ignored. Input ends at
end of file or at a line containing exactly "999".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRainfall,
	}

	return cmd
}

func runRainfall(cmd *cobra.Command, _ []string) error {
	in := cmd.InOrStdin()
	if isTerminal(in) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Enter one measurement per line; finish with %q or end of file.\n", measurements.Terminator)
	}

	return summarize(in, cmd.OutOrStdout())
}

// summarize reads all of r before computing, and computes before writing.
func summarize(r io.Reader, w io.Writer) error {
	values, err := measurements.Read(r)
	if err != nil {
		return &IOError{Op: "read", Err: err}
	}

	results := metrics.Calculate(values)
	if mean, ok := results.Mean.Value(); ok {
		slog.Debug("Results calculated", "mean", mean, "below", results.Below, "above", results.Above)
	}

	if err := report.Write(w, results); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Check TTY from the command's input stream, not os.Stdin directly.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
