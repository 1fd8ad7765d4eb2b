package measurements

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Terminator is the line that ends input early. It is matched as text, so
// "9.99e2" is an ordinary measurement.
const Terminator = "999"

// decimalLiteral is a signed decimal number with an optional exponent.
// Hex forms, digit separators and inf/nan spellings do not match.
var decimalLiteral = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// ParseLine reports whether line is a single real-number literal and returns
// its value. The whole line must be the literal: surrounding whitespace or a
// second token makes it invalid. Negative values are valid here.
func ParseLine(line string) (float64, bool) {
	if !decimalLiteral.MatchString(line) {
		return 0, false
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Read collects the non-negative measurements from r, one per line, in input
// order. Lines that do not parse or that hold a negative value are skipped.
// Reading stops at the Terminator line or at end of stream. Only a failure of
// r itself is returned as an error.
func Read(r io.Reader) ([]float64, error) {
	var (
		values     []float64
		terminated bool
	)
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading measurements: %w", err)
		}
		eof := err != nil
		if eof && line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if line == Terminator {
			terminated = true
			break
		}

		// -0 is not below zero and is kept.
		if v, ok := ParseLine(line); ok && v >= 0 {
			values = append(values, v)
		}

		if eof {
			break
		}
	}

	slog.Debug("Measurements read", "count", len(values), "terminated", terminated)
	return values, nil
}
