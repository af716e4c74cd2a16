// Package accuracy measures how well the closed-form solvers recover the
// roots of random polynomials built from known, well-separated real roots.
package accuracy

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/montanaflynn/stats"

	"github.com/gogpu/polyroot"
	"github.com/gogpu/polyroot/internal/parallel"
	"github.com/gogpu/polyroot/internal/sampling"
)

var (
	// ErrDegree is returned for degrees other than 2, 3 and 4.
	ErrDegree = errors.New("accuracy: unsupported degree")

	// ErrConfig is returned for option values that cannot produce samples.
	ErrConfig = errors.New("accuracy: invalid configuration")
)

// batchSize is the number of samples handed to a worker at a time.
const batchSize = 64

// Summary holds statistics of one per-sample measurement.
type Summary struct {
	Mean   float64
	Median float64
	P99    float64
	Max    float64
}

// Report is the outcome of one Run.
type Report struct {
	Degree    int
	Precision int // bits: 32 or 64
	Samples   int

	// Mismatches counts samples where the solver did not return exactly
	// Degree roots.
	Mismatches int

	// Residual is the largest relative residual among a sample's roots.
	Residual Summary

	// RootError is the largest distance from a returned root to the
	// nearest generated root.
	RootError Summary
}

type sample struct {
	count     int
	residual  float64
	rootError float64
	err       error
}

// Run solves opts' number of random polynomials of the given degree in
// precision T and summarizes the results.
func Run[T polyroot.Float](degree int, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if degree < 2 || degree > 4 {
		return Report{}, fmt.Errorf("%w: %d", ErrDegree, degree)
	}
	if o.samples <= 0 || !(o.span > 0) || o.gap < 0 || float64(degree-1)*o.gap >= 2*o.span {
		return Report{}, fmt.Errorf("%w: samples=%d span=%g gap=%g", ErrConfig, o.samples, o.span, o.gap)
	}

	precision := polyroot.Precision[T]()

	pool := parallel.NewPool(o.workers)
	defer pool.Close()

	root := sampling.New([]byte(o.seed))
	results := make([]sample, o.samples)

	pool.Run(o.samples, batchSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			src := root.Derive(uint64(degree)<<32 | uint64(i))
			results[i] = measure[T](degree, src, o)
		}
		polyroot.Logger().Debug("accuracy: batch done",
			"degree", degree, "precision", precision, "lo", lo, "hi", hi)
	})

	report := Report{Degree: degree, Precision: precision, Samples: o.samples}
	residuals := make([]float64, 0, o.samples)
	rootErrors := make([]float64, 0, o.samples)
	for _, s := range results {
		if s.err != nil {
			return Report{}, fmt.Errorf("accuracy: degree %d: %w", degree, s.err)
		}
		if s.count != degree {
			report.Mismatches++
		}
		if s.count > 0 {
			residuals = append(residuals, s.residual)
			rootErrors = append(rootErrors, s.rootError)
		}
	}
	report.Residual = summarize(residuals)
	report.RootError = summarize(rootErrors)

	if report.Mismatches > 0 {
		polyroot.Logger().Warn("accuracy: root count mismatches",
			"degree", degree, "precision", precision, "mismatches", report.Mismatches)
	}
	return report, nil
}

// measure generates and solves one polynomial.
func measure[T polyroot.Float](degree int, src *sampling.Source, o options) sample {
	want, err := src.Separated(degree, -o.span, o.span, o.gap)
	if err != nil {
		return sample{err: err}
	}
	lead := src.Sign() * src.Range(0.5, 4)

	wide := polyroot.FromRoots(lead, want...)
	coeffs := make([]T, len(wide))
	for i, c := range wide {
		coeffs[i] = T(c)
	}

	var buf [polyroot.MaxRoots]T
	var n int
	switch degree {
	case 2:
		n, err = polyroot.SolveQuadratic(coeffs, buf[:])
	case 3:
		n, err = polyroot.SolveCubic(coeffs, buf[:])
	default:
		n, err = polyroot.SolveQuartic(coeffs, buf[:])
	}
	if err != nil {
		return sample{err: err}
	}

	s := sample{count: n}
	for _, r := range buf[:n] {
		s.residual = math.Max(s.residual, float64(polyroot.Residual(coeffs, r)))

		nearest := math.Inf(1)
		for _, w := range want {
			nearest = math.Min(nearest, math.Abs(float64(r)-w))
		}
		s.rootError = math.Max(s.rootError, nearest)
	}
	return s
}

// summarize ignores the errors of package stats; they only occur on empty
// input, which yields a zero Summary.
func summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	p99, _ := stats.Percentile(data, 99)
	maxVal, _ := stats.Max(data)
	return Summary{Mean: mean, Median: median, P99: p99, Max: maxVal}
}

// WriteReports prints reports as an aligned table.
func WriteReports(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "degree\tbits\tsamples\tmismatch\tresidual mean\tresidual p99\tresidual max\troot err p99\troot err max")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.3g\t%.3g\t%.3g\t%.3g\t%.3g\n",
			r.Degree, r.Precision, r.Samples, r.Mismatches,
			r.Residual.Mean, r.Residual.P99, r.Residual.Max,
			r.RootError.P99, r.RootError.Max)
	}
	return tw.Flush()
}
