// Package main provides the mdarray CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/mdarray-ml/mdarray/tensor"
)

const version = "v0.1.0"

var (
	benchShape = flag.String("shape", "1024,1024", "Tensor shape for bench, comma-separated (e.g. 4,16)")
	benchOp    = flag.String("op", "fill", "Factory operation to bench (fill, zeros, ones)")
	benchValue = flag.Float64("value", 5.0, "Fill value used when -op=fill")
	benchIters = flag.Int("iters", 100, "Number of bench iterations")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	flag.Parse()

	switch flag.Arg(0) {
	case "version":
		fmt.Printf("mdarray %s\n", version)
	case "bench":
		shape, err := parseShape(*benchShape)
		if err != nil {
			log.Fatal().Err(err).Str("shape", *benchShape).Msg("invalid -shape")
		}
		runBench(shape)
	default:
		fmt.Println("mdarray - dense multi-dimensional arrays for Go")
		fmt.Printf("Version: %s\n\n", version)
		fmt.Println("Commands:")
		fmt.Println("  version    Show version")
		fmt.Println("  bench      Benchmark factory allocations (-shape, -op, -value, -iters)")
	}
}

// parseShape parses "4,16" into a tensor.Shape.
func parseShape(s string) (tensor.Shape, error) {
	if s == "" {
		return tensor.Shape{}, nil
	}

	parts := strings.Split(s, ",")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad extent %q: %w", p, err)
		}
		if dim < 0 {
			return nil, fmt.Errorf("bad extent %d: must be >= 0", dim)
		}
		shape = append(shape, dim)
	}
	return shape, nil
}

// sink defeats dead-code elimination of the benched allocations.
var sink *tensor.FloatTensor

func runBench(shape tensor.Shape) {
	alloc, ok := map[string]func() *tensor.FloatTensor{
		"fill":  func() *tensor.FloatTensor { return tensor.Fill(float32(*benchValue), shape) },
		"zeros": func() *tensor.FloatTensor { return tensor.Zeros[float32](shape) },
		"ones":  func() *tensor.FloatTensor { return tensor.Ones[float32](shape) },
	}[*benchOp]
	if !ok {
		log.Fatal().Str("op", *benchOp).Msg("unknown -op, want fill, zeros or ones")
	}

	probe := alloc()
	log.Info().
		Str("op", *benchOp).
		Stringer("shape", probe.Shape()).
		Int("numel", probe.Numel()).
		Int("size_bytes", probe.Size()).
		Int("iters", *benchIters).
		Msg("starting bench")

	samples := make([]float64, *benchIters)
	for i := range samples {
		start := time.Now()
		sink = alloc()
		samples[i] = float64(time.Since(start).Nanoseconds())
	}

	mean := stat.Mean(samples, nil)
	sigma := stat.StdDev(samples, nil)
	log.Info().
		Str("op", *benchOp).
		Float64("mean_ns", mean).
		Float64("stddev_ns", sigma).
		Msg("bench complete")
}
