// Command mpgemm multiplies random arbitrary-precision matrices and checks
// the result against a float64 BLAS reference.
//
// Usage:
//
//	mpgemm [flags]
//
// Examples:
//
//	mpgemm -n 64 -prec 256
//	mpgemm -n 200 -prec 113 -workers 4 -alpha 0.5
//	mpgemm -v -kc 32 -nc 16
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/big"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/mpmatrix/matrix"
	"github.com/katalvlaran/mpmatrix/mpreal"
)

// config holds the parsed command line.
type config struct {
	prec    uint
	n       int
	seed    int64
	workers int
	kc, nc  int
	alpha   string
	verbose bool
}

func main() {
	var cfg config
	flag.UintVar(&cfg.prec, "prec", mpreal.DefaultPrecision, "mantissa precision in bits")
	flag.IntVar(&cfg.n, "n", 64, "matrix order (n×n operands)")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed for the operands")
	flag.IntVar(&cfg.workers, "workers", 0, "concurrent column blocks (0 = GOMAXPROCS)")
	flag.IntVar(&cfg.kc, "kc", matrix.DefaultDepthBlock, "depth block size")
	flag.IntVar(&cfg.nc, "nc", matrix.DefaultColBlock, "column block size")
	flag.StringVar(&cfg.alpha, "alpha", "1", "scale factor applied to the product (decimal)")
	flag.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mpgemm [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Multiplies random matrices at arbitrary precision and compares with float64 BLAS.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := newLogger(os.Stderr, cfg.verbose)
	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("mpgemm failed")
		os.Exit(1)
	}
}

// newLogger returns a console logger at info level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}

// run validates cfg, performs one multiplication and logs the comparison.
func run(cfg config, logger zerolog.Logger) error {
	if cfg.prec == 0 || cfg.prec > big.MaxPrec {
		return fmt.Errorf("prec must be in [1, %d], got %d", uint64(big.MaxPrec), cfg.prec)
	}
	if cfg.n < 1 {
		return fmt.Errorf("n must be >= 1, got %d", cfg.n)
	}
	if cfg.workers < 0 || cfg.kc < 1 || cfg.nc < 1 {
		return fmt.Errorf("workers must be >= 0 and block sizes >= 1")
	}

	ctx := mpreal.NewContext(mpreal.WithPrecision(cfg.prec))
	alpha, _, err := big.ParseFloat(cfg.alpha, 10, cfg.prec, ctx.Mode())
	if err != nil {
		return fmt.Errorf("alpha: %w", err)
	}

	logger.Debug().
		Uint("prec", ctx.Prec()).
		Str("pi", ctx.Pi().Text('g', 30)).
		Str("epsilon", ctx.Epsilon().Text('g', 6)).
		Str("dummy_precision", ctx.DummyPrecision().Text('g', 6)).
		Msg("context")

	opts := []matrix.Option{matrix.WithContext(ctx), matrix.WithBlockSize(cfg.kc, cfg.nc)}
	if cfg.workers > 0 {
		opts = append(opts, matrix.WithWorkers(cfg.workers))
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	a, err := matrix.Random(cfg.n, cfg.n, rng, opts...)
	if err != nil {
		return err
	}
	b, err := matrix.Random(cfg.n, cfg.n, rng, opts...)
	if err != nil {
		return err
	}
	c, err := matrix.NewDense(cfg.n, cfg.n, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	if err = matrix.MulAdd(c, alpha, a, b, opts...); err != nil {
		return err
	}
	elapsed := time.Since(start)

	maxDiff := compareBLAS(cfg.n, mpreal.ToFloat64(alpha), a, b, c)
	flops := 2 * float64(cfg.n) * float64(cfg.n) * float64(cfg.n)
	logger.Info().
		Int("n", cfg.n).
		Uint("prec", cfg.prec).
		Dur("elapsed", elapsed).
		Float64("mflops", flops/elapsed.Seconds()/1e6).
		Float64("max_abs_diff_vs_blas", maxDiff).
		Msg("gemm done")

	return nil
}

// compareBLAS recomputes alpha·a·b in float64 with gonum and returns the
// largest absolute deviation from c's float64 projection.
func compareBLAS(n int, alpha float64, a, b, c *matrix.Dense) float64 {
	ref := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, alpha,
		blas64.General{Rows: n, Cols: n, Stride: n, Data: a.ToFloat64s()},
		blas64.General{Rows: n, Cols: n, Stride: n, Data: b.ToFloat64s()},
		0, ref)

	var worst float64
	for i, v := range c.ToFloat64s() {
		worst = math.Max(worst, math.Abs(v-ref.Data[i]))
	}

	return worst
}
