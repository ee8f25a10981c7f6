// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package report renders simulation results and curve analyses as plain
// text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"gitlab.com/accumulatenetwork/emission/pkg/emission"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const separatorWidth = 100

// Writer writes report sections to an underlying writer. The first write
// error is retained and all later writes are skipped; check it with Err.
type Writer struct {
	w      io.Writer
	num    *message.Printer
	title  cases.Caser
	header *color.Color
	err    error
}

// New returns a Writer. Section headers are colored only if colored is set.
func New(w io.Writer, colored bool) *Writer {
	r := new(Writer)
	r.w = w
	r.num = message.NewPrinter(language.English)
	r.title = cases.Title(language.English)
	r.header = color.New(color.FgCyan, color.Bold)
	if colored {
		r.header.EnableColor()
	} else {
		r.header.DisableColor()
	}
	return r
}

// Err returns the first error encountered while writing.
func (r *Writer) Err() error { return r.err }

func (r *Writer) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Writer) section(title string) {
	r.printf("%s\n", r.header.Sprintf("=== %s ===", title))
}

// grouped formats v with thousands separators and a fixed precision.
func (r *Writer) grouped(v float64, prec int) string {
	return r.num.Sprintf(fmt.Sprintf("%%.%df", prec), v)
}

// Banner writes the simulation parameters.
func (r *Writer) Banner(p emission.Parameters) {
	r.section("Blockchain Emission Simulation")
	r.printf("Max Supply: %s tokens\n", humanize.Commaf(p.MaxSupply))
	r.printf("Emission Divisor: %s\n", humanize.Commaf(p.EmissionDivisor))
	r.printf("Treasury Portion: %.1f%%\n", p.TreasuryPortion*100)
	r.printf("Initial Supply: %s tokens\n", humanize.Commaf(p.InitialSupply))
	r.printf("Available for Emission: %s tokens\n", humanize.Commaf(p.Available()))
	r.printf("\n")
}

// Table writes the progress table, starting with the initial state.
func (r *Writer) Table(res *emission.Result) {
	r.printf("%-12s %-15s %-12s %-12s %-12s %-12s %-15s\n",
		"Block", "Supply", "%MaxSupply", "BlockReward", "ToTreasury", "ToMiner", "Remaining")
	r.printf("%s\n", strings.Repeat("-", separatorWidth))
	r.row(res.Initial)
	for _, row := range res.Rows {
		r.row(row)
	}
	r.printf("%s\n\n", strings.Repeat("-", separatorWidth))
}

func (r *Writer) row(row emission.Row) {
	r.printf("%-12s %-15s %-11s %-12.6f %-12.6f %-12.6f %-15s\n",
		humanize.Comma(int64(row.Block)),
		r.grouped(row.Supply, 0),
		fmt.Sprintf("%.2f%%", row.Percent),
		row.Reward.Total,
		row.Reward.Treasury,
		row.Reward.Miner,
		r.grouped(row.Remaining, 0))
}

// Summary writes the final totals and the reason the simulation stopped.
func (r *Writer) Summary(res *emission.Result) {
	r.section("Final Summary")
	r.printf("Total Blocks Processed: %s\n", humanize.Comma(int64(res.Blocks)))
	r.printf("Final Supply: %s tokens\n", r.grouped(res.FinalSupply, 6))
	r.printf("Percentage of Max Supply: %.4f%%\n", res.PercentOfMax())
	r.printf("Remaining Supply: %s tokens\n", r.grouped(res.Remaining(), 6))
	r.printf("Stop Reason: %s\n", r.title.String(res.StopReason.String()))
	r.printf("\n")
	r.printf("Total Miner Rewards: %s tokens\n", r.grouped(res.MinerTotal, 6))
	r.printf("Total Treasury Rewards: %s tokens\n", r.grouped(res.TreasuryTotal, 6))
	r.printf("Total Rewards Distributed: %s tokens\n", r.grouped(res.TotalDistributed(), 6))
	r.printf("\n")
	r.printf("Miner Share: %.1f%%\n", res.MinerShare())
	r.printf("Treasury Share: %.1f%%\n", res.TreasuryShare())
}

// TimeEstimates writes how long the processed blocks take in wall-clock time.
func (r *Writer) TimeEstimates(res *emission.Result) {
	t := res.TimeEstimate()
	r.printf("\n")
	r.section(fmt.Sprintf("Time Estimates (%ss blocks)", humanize.Ftoa(res.Params.SecondsPerBlock)))
	r.printf("Total Time: %s days (%.1f years)\n", r.grouped(t.Days, 1), t.Years)
	r.printf("Time to 99%% of max supply: ~%s days (%.1f years)\n", r.grouped(t.DaysTo99, 1), t.YearsTo99)
}

// Curve writes the reward at each checkpoint.
func (r *Writer) Curve(points []emission.CurvePoint) {
	r.printf("\n")
	r.section("Emission Curve Analysis")
	for _, pt := range points {
		r.printf("At %s tokens (%.1f%% emission): reward = %.8f tokens/block\n",
			r.grouped(pt.TargetSupply, 0), pt.Fraction*100, pt.Reward)
	}
}

// Simulation writes every section for a simulation result.
func (r *Writer) Simulation(res *emission.Result) {
	r.Banner(res.Params)
	r.Table(res)
	r.Summary(res)
	r.TimeEstimates(res)
}
