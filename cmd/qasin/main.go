// Command qasin evaluates the reversible CORDIC arcsine and reports its error
// against math.Asin.
//
// Usage:
//
//	qasin eval --bits 10 512
//	qasin sweep --config sweep.toml --points 256
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/qcordic/sweep"
)

type options struct {
	configPath string
	bits       uint
	points     int
	workers    int
	engine     string
	logLevel   string
}

// load resolves the config file and then applies flags set on the command
// line.
func (o *options) load(cmd *cobra.Command) (config, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("bits") {
		cfg.Sweep.InputBits = o.bits
	}

	if flags.Changed("points") {
		cfg.Sweep.Points = o.points
	}

	if flags.Changed("workers") {
		cfg.Sweep.Workers = o.workers
	}

	if flags.Changed("engine") {
		cfg.Engine = strings.ToLower(strings.TrimSpace(o.engine))
	}

	if flags.Changed("log-level") {
		lvl, err := parseLevel(o.logLevel)
		if err != nil {
			return config{}, err
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}

func main() {
	err := newRootCommand().ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "qasin",
		Short:        "Reversible fixed point CORDIC arcsine",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "TOML config file")
	pf.UintVar(&opts.bits, "bits", 10, "input bits b; targets span [-2^b, 2^b]")
	pf.StringVar(&opts.engine, "engine", engineReversible, "engine: reversible or classical")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level")

	root.AddCommand(
		newEvalCommand(opts),
		newSweepCommand(opts),
	)

	return root
}

func newEvalCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <target>",
		Short: "Approximate asin(target / 2^b)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			t, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse target: %w", err)
			}

			engine, err := newEngine(cfg.Engine)
			if err != nil {
				return err
			}

			bits := cfg.Sweep.InputBits

			res, err := engine.Arcsin(t, bits)
			if err != nil {
				return err
			}

			want := math.Asin(math.Ldexp(float64(t), -int(bits)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "angle     %.9f\n", res.Angle)
			fmt.Fprintf(out, "expected  %.9f\n", want)
			fmt.Fprintf(out, "error     %.3e\n", math.Abs(res.Angle-want))
			fmt.Fprintf(out, "decisions %s\n", formatDecisions(res.Decisions))
			fmt.Fprintf(out, "residual  %d\n", res.Residual)

			return nil
		},
	}
}

func newSweepCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure the error over evenly spaced targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			engine, err := newEngine(cfg.Engine)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel).With().
				Str("engine", cfg.Engine).
				Logger()

			ctx := logger.WithContext(cmd.Context())

			rep, err := sweep.Run(ctx, engine, cfg.Sweep)
			if err != nil {
				logger.Error().Err(err).Msg("sweep failed")

				return err
			}

			s := rep.Stats

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "points        %d\n", s.Points)
			fmt.Fprintf(out, "max error     %.6f\n", s.Max)
			fmt.Fprintf(out, "argmax        %d\n", s.ArgMax)
			fmt.Fprintf(out, "mean error    %.6f\n", s.Mean)
			fmt.Fprintf(out, "median error  %.6f\n", s.Median)
			fmt.Fprintf(out, "max residual  %d\n", s.MaxResidual)

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.points, "points", 2048, "number of targets")
	f.IntVar(&opts.workers, "workers", 0, "parallel workers (0 uses GOMAXPROCS)")

	return cmd
}

func formatDecisions(ds []bool) string {
	var sb strings.Builder
	for _, d := range ds {
		if d {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
