/*
 * main.go, part of gobalance.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

// Command chembal balances chemical equations from the command line.
//
//	chembal "H2 + O2" "H2O"
//	chembal -e "CH4 + O2 -> CO2 + H2O" -omit-ones -mass
//	chembal -batch equations.txt.gz -o balanced.txt.zst
//	chembal -json < requests.jsonl
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	balance "github.com/rmera/gobalance"
	"github.com/rmera/gobalance/batch"
	"github.com/rmera/gobalance/chemjson"
	"github.com/rmera/gobalance/chemplot"
	"github.com/rmera/gobalance/internal/config"
	"github.com/rmera/gobalance/internal/logging"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Load()
	fs := flag.NewFlagSet("chembal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		line      = fs.String("e", "", "whole equation, sides separated by ->, =>, → or =")
		omitOnes  = fs.Bool("omit-ones", cfg.OmitOnes, "don't print coefficients equal to 1")
		arrow     = fs.String("arrow", cfg.Arrow, "separator printed between reactants and products")
		strict    = fs.Bool("strict", cfg.Strict, "reject formulas with characters outside element tokens")
		mass      = fs.Bool("mass", false, "print molar masses and the mass balance")
		plotFile  = fs.String("plot", "", "save a bar chart of the coefficients to this file (png, svg, pdf)")
		plotAtoms = fs.String("plot-elements", "", "save a bar chart of the atoms of each element on both sides to this file")
		jsonMode  = fs.Bool("json", false, "read JSON requests from stdin, one per line, and write JSON responses")
		batchIn   = fs.String("batch", "", "balance every equation in this file (.gz, .zst and .lzw are decompressed)")
		batchOut  = fs.String("o", "-", "output file for -batch, - for stdout")
		workers   = fs.Int("workers", cfg.Workers, "concurrent balancers for -batch")
		logLevel  = fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	log, err := logging.New(*logLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer log.Sync() //nolint:errcheck
	style := balance.Style{OmitOnes: *omitOnes, Arrow: *arrow}

	switch {
	case *jsonMode:
		if err := chemjson.Serve(stdin, stdout); err != nil {
			log.Error("json session failed", zap.Error(err))
			return exitFailed
		}
		return exitOK
	case *batchIn != "":
		return runBatch(ctx, log, *batchIn, *batchOut, stdout, batch.Options{
			Workers: *workers,
			Strict:  *strict,
			Style:   style,
			Level:   cfg.GzipLevel,
			Logger:  log,
		})
	}

	var opts []balance.Option
	if *strict {
		opts = append(opts, balance.Strict())
	}
	var eq *balance.Equation
	switch {
	case *line != "" && fs.NArg() == 0:
		eq, err = balance.BalanceLine(*line, opts...)
	case *line == "" && fs.NArg() == 2:
		eq, err = balance.Balance(fs.Arg(0), fs.Arg(1), opts...)
	default:
		fmt.Fprintln(stderr, "usage: chembal [flags] REACTANTS PRODUCTS | chembal [flags] -e EQUATION | -batch FILE | -json")
		fs.PrintDefaults()
		return exitUsage
	}
	fmt.Fprintln(stdout, style.Result(eq, err))
	if err != nil {
		log.Debug("balance failed", zap.Error(err), zap.Stringer("kind", balance.KindOf(err)))
		return exitFailed
	}
	if *strict {
		for i := 0; i < eq.Len(); i++ {
			if u := eq.System().Compound(i).Unknown(); len(u) > 0 {
				log.Warn("unknown element symbols", zap.String("compound", eq.Term(i)), zap.Strings("symbols", u))
			}
		}
	}
	if *mass {
		printMasses(stdout, log, eq)
	}
	if *plotFile != "" {
		if err := chemplot.Coefficients(eq, style.Format(eq), *plotFile); err != nil {
			log.Error("plot failed", zap.String("file", *plotFile), zap.Error(err))
			return exitFailed
		}
		log.Info("plot saved", zap.String("file", *plotFile))
	}
	if *plotAtoms != "" {
		if err := chemplot.ElementTotals(eq, style.Format(eq), *plotAtoms); err != nil {
			log.Error("plot failed", zap.String("file", *plotAtoms), zap.Error(err))
			return exitFailed
		}
		log.Info("plot saved", zap.String("file", *plotAtoms))
	}
	return exitOK
}

func printMasses(out io.Writer, log *zap.Logger, eq *balance.Equation) {
	for i := 0; i < eq.Len(); i++ {
		m, err := eq.System().Compound(i).MolarMass()
		if err != nil {
			log.Warn("no molar mass", zap.String("compound", eq.Term(i)), zap.Error(err))
			continue
		}
		fmt.Fprintf(out, "%s\t%s g/mol\n", eq.Term(i), m.StringFixed(3))
	}
	r, p, err := eq.MassBalance()
	if err != nil {
		return
	}
	fmt.Fprintf(out, "reactants\t%s g\nproducts\t%s g\n", r.StringFixed(3), p.StringFixed(3))
}

func runBatch(ctx context.Context, log *zap.Logger, in, out string, stdout io.Writer, O batch.Options) int {
	if out != "-" {
		sum, err := batch.File(ctx, in, out, O)
		if err != nil {
			log.Error("batch failed", zap.String("batch", sum.ID), zap.Error(err))
			return exitFailed
		}
		return exitOK
	}
	r, err := batch.Open(in)
	if err != nil {
		log.Error("can't open batch", zap.Error(err))
		return exitFailed
	}
	defer r.Close()
	jobs, err := batch.Read(r)
	if err != nil {
		log.Error("can't read batch", zap.Error(err))
		return exitFailed
	}
	if err := batch.Write(stdout, batch.Run(ctx, jobs, O), O.Style); err != nil {
		log.Error("can't write results", zap.Error(err))
		return exitFailed
	}
	return exitOK
}
