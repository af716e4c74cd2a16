// Command rootcheck measures the accuracy of the closed-form solvers on random
// polynomials built from known roots.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/polyroot"
	"github.com/gogpu/polyroot/internal/accuracy"
)

func main() {
	var (
		degree    = flag.Int("degree", 0, "polynomial degree: 2, 3, 4 or 0 for all")
		samples   = flag.Int("samples", 1000, "polynomials per degree")
		seed      = flag.String("seed", "polyroot", "sampling key")
		precision = flag.Int("precision", 64, "float precision: 32 or 64")
		gap       = flag.Float64("gap", 0.5, "minimum distance between sampled roots")
		span      = flag.Float64("range", 8, "roots are drawn from [-range, range]")
		workers   = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		verbose   = flag.Bool("v", false, "log per-batch diagnostics to stderr")
		strict    = flag.Bool("strict", false, "exit with status 1 on count mismatches")
	)
	flag.Parse()

	if *verbose {
		polyroot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	degrees := []int{2, 3, 4}
	if *degree != 0 {
		degrees = []int{*degree}
	}

	opts := []accuracy.Option{
		accuracy.WithSamples(*samples),
		accuracy.WithSeed(*seed),
		accuracy.WithGap(*gap),
		accuracy.WithRange(*span),
		accuracy.WithWorkers(*workers),
	}

	reports := make([]accuracy.Report, 0, len(degrees))
	for _, d := range degrees {
		r, err := run(d, *precision, opts)
		if err != nil {
			log.Fatalf("Degree %d: %v", d, err)
		}
		reports = append(reports, r)
	}

	if err := accuracy.WriteReports(os.Stdout, reports); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	if *strict {
		for _, r := range reports {
			if r.Mismatches > 0 {
				os.Exit(1)
			}
		}
	}
}

func run(degree, precision int, opts []accuracy.Option) (accuracy.Report, error) {
	switch precision {
	case 32:
		return accuracy.Run[float32](degree, opts...)
	case 64:
		return accuracy.Run[float64](degree, opts...)
	default:
		return accuracy.Report{}, fmt.Errorf("unsupported precision %d", precision)
	}
}
