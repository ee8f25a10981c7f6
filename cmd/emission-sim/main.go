// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/emission/internal/logging"
	"gitlab.com/accumulatenetwork/emission/internal/report"
	cmdutil "gitlab.com/accumulatenetwork/emission/internal/util/cmd"
	"gitlab.com/accumulatenetwork/emission/pkg/emission"
	"golang.org/x/exp/slog"
)

func main() {
	_ = cmd.Execute()
}

var cmd = &cobra.Command{
	Use:   "emission-sim",
	Short: "Simulate the block reward emission schedule and analyze its curve",
	Args:  cobra.NoArgs,
	Run:   run,
}

func run(cmd *cobra.Command, _ []string) {
	h, err := logging.NewHandler(cmdutil.Stderr, logging.Config{
		Format: "text",
		Levels: "info",
		Color:  cmdutil.IsTerminal(cmdutil.Stderr),
	})
	cmdutil.Check(err)

	out := cmd.OutOrStdout()
	err = runReports(cmd.Context(), out, slog.New(h), emission.DefaultParameters(), emission.DefaultCurveParameters(), cmdutil.IsTerminal(out))
	cmdutil.Checkf(err, "emission report")
}

func runReports(ctx context.Context, w io.Writer, logger *slog.Logger, params emission.Parameters, curve emission.CurveParameters, colored bool) error {
	sim, err := emission.NewSimulator(params)
	if err != nil {
		return err
	}
	err = curve.Validate()
	if err != nil {
		return err
	}

	simLog := logging.Module(logger, "simulator")
	simLog.InfoContext(ctx, "Starting simulation",
		"max-supply", params.MaxSupply,
		"initial-supply", params.InitialSupply,
		"divisor", params.EmissionDivisor,
		"max-blocks", params.MaxBlocks)

	res := sim.Run()
	simLog.InfoContext(ctx, "Simulation complete",
		"blocks", res.Blocks,
		"stop-reason", res.StopReason.String(),
		"final-supply", res.FinalSupply)

	r := report.New(w, colored)
	r.Simulation(res)

	err = res.Audit()
	simLog.InfoContext(ctx, "Audit complete", "passed", err == nil)
	if err != nil {
		cmdutil.Warnf("%v", err)
	}

	points := emission.AnalyzeCurve(curve)
	r.Curve(points)
	logging.Module(logger, "curve").InfoContext(ctx, "Curve analysis complete",
		"initial-supply", curve.InitialSupply,
		"checkpoints", len(points))

	return r.Err()
}
