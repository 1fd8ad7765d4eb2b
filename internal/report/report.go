package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spboyer/rainfall/internal/metrics"
)

//go:generate go tool mockgen -destination=mock_writer_test.go -package=report io Writer

// NoMeasurements is printed instead of the summary when nothing was averaged.
const NoMeasurements = "No measurements provided."

// Format renders r as the summary report. Each line ends with a newline.
func Format(r metrics.Results) string {
	mean, ok := r.Mean.Value()
	if !ok {
		return NoMeasurements + "\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Mean rainfall: %s cm\n", formatMean(mean))
	fmt.Fprintf(&sb, "Below count:   %d\n", r.Below)
	fmt.Fprintf(&sb, "Above count:   %d\n", r.Above)
	return sb.String()
}

// Write renders r and writes it to w in a single call.
func Write(w io.Writer, r metrics.Results) error {
	if _, err := io.WriteString(w, Format(r)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// formatMean uses the shortest decimal that round-trips, without an exponent.
// A sum past the float64 range leaves an infinite mean, printed as inf.
func formatMean(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
