// Package sweep measures how closely an arcsine engine tracks math.Asin over
// evenly spaced targets.
package sweep

import (
	"context"
	"math"
	"runtime"
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/qcordic/cordic"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("sweep")

// Config controls a sweep.
type Config struct {
	// InputBits is the fixed point precision of the targets.
	InputBits uint

	// Points is the number of targets spread over [-2^b, 2^b].
	Points int

	// Workers bounds parallel evaluation. Values <= 0 use GOMAXPROCS.
	Workers int
}

// Sample is one evaluated target.
type Sample struct {
	Target    int64
	Expected  float64
	Angle     float64
	Error     float64
	Decisions []bool
	Residual  int64
}

// Stats summarizes the absolute error of a sweep.
type Stats struct {
	Points int
	Max    float64
	ArgMax int64
	Mean   float64
	Median float64

	// MaxResidual is the largest dirty ancilla magnitude observed.
	MaxResidual int64
}

// Report is the outcome of Run. Samples are ordered by target.
type Report struct {
	Stats   Stats
	Samples []Sample
}

// Targets returns points values evenly spaced over [-2^inputBits,
// 2^inputBits], truncated toward zero. Both ends are included.
func Targets(inputBits uint, points int) []int64 {
	if points <= 0 {
		return nil
	}

	limit := math.Ldexp(1, int(inputBits))
	if points == 1 {
		return []int64{int64(-limit)}
	}

	step := 2 * limit / float64(points-1)

	ts := make([]int64, points)
	for k := range ts {
		ts[k] = int64(-limit + float64(k)*step)
	}
	ts[points-1] = int64(limit)

	return ts
}

// Run evaluates every target of the sweep with engine. Progress is logged to
// the zerolog logger attached to ctx, if any.
func Run(ctx context.Context, engine cordic.Engine, cfg Config) (rep Report, err error) {
	defer Error.WrapP(&err)

	if cfg.Points <= 0 {
		return Report{}, Error.New("invalid points: %d", cfg.Points)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log := zerolog.Ctx(ctx).With().
		Uint("input_bits", cfg.InputBits).
		Int("points", cfg.Points).
		Logger()

	log.Debug().Int("workers", workers).Msg("sweep started")

	targets := Targets(cfg.InputBits, cfg.Points)
	samples := make([]Sample, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, t := range targets {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := engine.Arcsin(t, cfg.InputBits)
			if err != nil {
				return err
			}

			want := math.Asin(math.Ldexp(float64(t), -int(cfg.InputBits)))

			samples[i] = Sample{
				Target:    t,
				Expected:  want,
				Angle:     res.Angle,
				Error:     math.Abs(res.Angle - want),
				Decisions: res.Decisions,
				Residual:  res.Residual,
			}

			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return Report{}, err
	}

	rep = Report{
		Stats:   Summarize(samples),
		Samples: samples,
	}

	log.Info().
		Float64("max", rep.Stats.Max).
		Int64("argmax", rep.Stats.ArgMax).
		Float64("mean", rep.Stats.Mean).
		Float64("median", rep.Stats.Median).
		Int64("max_residual", rep.Stats.MaxResidual).
		Msg("sweep finished")

	return rep, nil
}

// Summarize computes error statistics. On ties ArgMax is the first target
// with the largest error.
func Summarize(samples []Sample) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	errors := lo.Map(samples, func(s Sample, _ int) float64 {
		return s.Error
	})

	worst := lo.MaxBy(samples, func(a, b Sample) bool {
		return a.Error > b.Error
	})

	residuals := lo.Map(samples, func(s Sample, _ int) int64 {
		if s.Residual < 0 {
			return -s.Residual
		}

		return s.Residual
	})

	return Stats{
		Points:      len(samples),
		Max:         worst.Error,
		ArgMax:      worst.Target,
		Mean:        lo.Sum(errors) / float64(len(errors)),
		Median:      median(errors),
		MaxResidual: lo.Max(residuals),
	}
}

// median returns the middle value, averaging the two middle values for even
// lengths. vs is sorted in place.
func median(vs []float64) float64 {
	slices.Sort(vs)

	mid := len(vs) / 2
	if len(vs)%2 == 1 {
		return vs[mid]
	}

	return (vs[mid-1] + vs[mid]) / 2
}
