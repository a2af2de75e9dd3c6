package sweep

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/qcordic/cordic"
)

func TestTargets(t *testing.T) {
	type TC struct {
		inputBits uint
		points    int
		targets   []int64
	}

	tcs := []TC{
		{inputBits: 10, points: 5, targets: []int64{-1024, -512, 0, 512, 1024}},
		{inputBits: 3, points: 4, targets: []int64{-8, -2, 2, 8}},
		{inputBits: 3, points: 2, targets: []int64{-8, 8}},
		{inputBits: 3, points: 1, targets: []int64{-8}},
		{inputBits: 3, points: 0, targets: nil},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]b=%d,p=%d", i, tc.inputBits, tc.points), func(t *testing.T) {
			require.Equal(t, tc.targets, Targets(tc.inputBits, tc.points))
		})
	}

	ts := Targets(12, 256)
	require.Len(t, ts, 256)
	require.Equal(t, int64(-4096), ts[0])
	require.Equal(t, int64(4096), ts[255])
	require.IsIncreasing(t, ts)
}

func TestSummarize(t *testing.T) {
	require.Equal(t, Stats{}, Summarize(nil))

	samples := []Sample{
		{Target: -2, Error: 0.1, Residual: 3},
		{Target: -1, Error: 0.4, Residual: -7},
		{Target: 0, Error: 0.2, Residual: 0},
		{Target: 1, Error: 0.4, Residual: 5},
	}

	stats := Summarize(samples)
	require.Equal(t, 4, stats.Points)
	require.Equal(t, 0.4, stats.Max)
	require.Equal(t, int64(-1), stats.ArgMax)
	require.InDelta(t, 0.275, stats.Mean, 1e-12)
	require.InDelta(t, 0.3, stats.Median, 1e-12)
	require.Equal(t, int64(7), stats.MaxResidual)

	// Summarize does not reorder the samples.
	require.Equal(t, int64(-2), samples[0].Target)
	require.Equal(t, 0.1, samples[0].Error)

	stats = Summarize(samples[:3])
	require.InDelta(t, 0.2, stats.Median, 1e-12)
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	engines := map[string]cordic.Engine{
		"reversible": cordic.NewReversible(),
		"classical":  cordic.NewClassical(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			rep, err := Run(ctx, engine, Config{
				InputBits: 10,
				Points:    257,
				Workers:   4,
			})
			require.NoError(t, err)
			require.Equal(t, 257, rep.Stats.Points)
			require.Len(t, rep.Samples, 257)

			for i, s := range rep.Samples {
				if i > 0 {
					require.Less(t, rep.Samples[i-1].Target, s.Target)
				}

				require.Len(t, s.Decisions, 10)
				require.Equal(t, math.Asin(float64(s.Target)/1024), s.Expected)
				require.Equal(t, math.Abs(s.Angle-s.Expected), s.Error)
			}

			first, last := rep.Samples[0], rep.Samples[256]
			require.Equal(t, int64(-1024), first.Target)
			require.Equal(t, int64(1024), last.Target)

			require.LessOrEqual(t, rep.Stats.Mean, rep.Stats.Max)
			require.LessOrEqual(t, rep.Stats.Median, rep.Stats.Max)
			require.Less(t, rep.Stats.Max, 4*math.Pow(2, -5))
		})
	}
}

func TestRunMatchesSequential(t *testing.T) {
	engine := cordic.NewReversible()

	rep, err := Run(context.Background(), engine, Config{
		InputBits: 8,
		Points:    64,
		Workers:   8,
	})
	require.NoError(t, err)

	for _, s := range rep.Samples {
		res, err := engine.Arcsin(s.Target, 8)
		require.NoError(t, err)

		if res.Angle != s.Angle {
			t.Logf("Sample: %s\n", spew.Sdump(s))
		}

		require.Equal(t, res.Angle, s.Angle)
		require.Equal(t, res.Decisions, s.Decisions)
		require.Equal(t, res.Residual, s.Residual)
	}
}

func TestRunImprovesWithPrecision(t *testing.T) {
	engine := cordic.NewReversible()

	means := make(map[uint]float64)

	for _, inputBits := range []uint{8, 10, 12} {
		rep, err := Run(context.Background(), engine, Config{
			InputBits: inputBits,
			Points:    256,
		})
		require.NoError(t, err)

		t.Logf("b=%d max=%.6f argmax=%d mean=%.6f median=%.6f residual=%d",
			inputBits,
			rep.Stats.Max,
			rep.Stats.ArgMax,
			rep.Stats.Mean,
			rep.Stats.Median,
			rep.Stats.MaxResidual,
		)

		require.Less(t, rep.Stats.Mean, 8*math.Ldexp(1, -int(inputBits)))
		require.Less(t, rep.Stats.Max, 4*math.Pow(2, -float64(inputBits)/2))

		means[inputBits] = rep.Stats.Mean
	}

	require.Less(t, means[10], means[8])
	require.Less(t, means[12], means[10])
}

func TestRunInvalid(t *testing.T) {
	engine := cordic.NewReversible()

	_, err := Run(context.Background(), engine, Config{InputBits: 10, Points: 0})
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = Run(context.Background(), engine, Config{InputBits: 2, Points: 8})
	require.Error(t, err)
	require.True(t, cordic.Error.Has(err))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := Run(ctx, cordic.NewReversible(), Config{InputBits: 10, Points: 128})
	require.Error(t, err)
	require.Equal(t, Report{}, rep)
}

func TestRunLogsToContextLogger(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)

	ctx := logger.WithContext(context.Background())

	_, err := Run(ctx, cordic.NewClassical(), Config{InputBits: 4, Points: 9, Workers: 1})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"message":"sweep started"`)
	require.Contains(t, out, `"message":"sweep finished"`)
	require.Contains(t, out, `"input_bits":4`)
	require.Contains(t, out, `"points":9`)
}
