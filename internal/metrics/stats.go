package metrics

import "math"

// BandWidth is the distance from the mean that still counts as "near" it.
const BandWidth = 5.0

// MeanValue is the arithmetic mean of a measurement set, or undefined when
// the set is empty. The zero value is undefined.
type MeanValue struct {
	value   float64
	defined bool
}

// DefinedMean returns a mean holding v.
func DefinedMean(v float64) MeanValue {
	return MeanValue{value: v, defined: true}
}

// UndefinedMean returns the mean of an empty set.
func UndefinedMean() MeanValue {
	return MeanValue{}
}

// IsDefined reports whether at least one value went into the mean.
func (m MeanValue) IsDefined() bool {
	return m.defined
}

// Value returns the mean and whether it is defined. An undefined mean
// yields NaN.
func (m MeanValue) Value() (float64, bool) {
	if !m.defined {
		return math.NaN(), false
	}
	return m.value, true
}

// Results is the summary of one set of measurements.
type Results struct {
	Mean  MeanValue
	Below int // count in [mean-BandWidth, mean)
	Above int // count in (mean, mean+BandWidth]
}

// Sum adds up values. Returns 0 for empty input.
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// Mean computes the arithmetic mean of values.
// Returns an undefined mean for empty input.
func Mean(values []float64) MeanValue {
	if len(values) == 0 {
		return UndefinedMean()
	}
	return DefinedMean(Sum(values) / float64(len(values)))
}

// Calculate computes the mean of values and counts how many fall just below
// and just above it. The below band is closed at mean-BandWidth and open at
// the mean; the above band is open at the mean and closed at
// mean+BandWidth. A value equal to the mean is in neither band.
func Calculate(values []float64) Results {
	mean := Mean(values)
	m, ok := mean.Value()
	if !ok {
		return Results{Mean: mean}
	}

	r := Results{Mean: mean}
	for _, v := range values {
		switch {
		case m-BandWidth <= v && v < m:
			r.Below++
		case m < v && v <= m+BandWidth:
			r.Above++
		}
	}
	return r
}
