/*
 * batch.go, part of gobalance.
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

package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	balance "github.com/rmera/gobalance"
)

//Job is one equation read from a batch file.
type Job struct {
	Line int    //1-based line number in the input
	Text string //the equation, e.g. "H2 + O2 -> H2O"
}

//Result is the outcome of one Job.
type Result struct {
	Job
	Equation *balance.Equation
	Err      error
}

//Options for Run and File.
type Options struct {
	Workers int //concurrent balancers. <= 0 means runtime.NumCPU()
	Strict  bool
	Style   balance.Style
	Level   int //gzip level for compressed output
	Logger  *zap.Logger
}

func (O Options) workers() int {
	if O.Workers <= 0 {
		return runtime.NumCPU()
	}
	return O.Workers
}

func (O Options) logger() *zap.Logger {
	if O.Logger == nil {
		return zap.NewNop()
	}
	return O.Logger
}

//Summary describes a finished batch.
type Summary struct {
	ID       string
	Total    int
	Balanced int
	Failed   int
}

//Read collects the equations in r, one per line. Blank lines and lines
//starting with '#' are skipped.
func Read(r io.Reader) ([]Job, error) {
	var ret []Job
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		t := strings.TrimSpace(s.Text())
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		ret = append(ret, Job{Line: n, Text: t})
	}
	if err := s.Err(); err != nil {
		return ret, fmt.Errorf("reading line %d: %w", n+1, err)
	}
	return ret, nil
}

//Run balances the jobs concurrently and returns the results in the same order as jobs.
//If ctx is cancelled, the jobs not yet processed get ctx.Err() as their error.
func Run(ctx context.Context, jobs []Job, O Options) []Result {
	results := make([]Result, len(jobs))
	var opts []balance.Option
	if O.Strict {
		opts = append(opts, balance.Strict())
	}
	queue := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < O.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i].Job = jobs[i]
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				results[i].Equation, results[i].Err = balance.BalanceLine(jobs[i].Text, opts...)
			}
		}()
	}
	for i := range jobs {
		queue <- i
	}
	close(queue)
	wg.Wait()
	return results
}

//Write writes one line per result to w: the line number of the job, a tab, and the
//message that the style gives for the result.
func Write(w io.Writer, results []Result, style balance.Style) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", r.Line, style.Result(r.Equation, r.Err)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

//File balances every equation in the file in and writes the results to out.
//Both files can be compressed (see Open and Create).
func File(ctx context.Context, in, out string, O Options) (Summary, error) {
	sum := Summary{ID: uuid.NewString()}
	log := O.logger().With(zap.String("batch", sum.ID), zap.String("input", in))
	r, err := Open(in)
	if err != nil {
		return sum, err
	}
	defer r.Close()
	jobs, err := Read(r)
	if err != nil {
		return sum, Error{err.Error(), in, []string{"Read", "File"}}
	}
	log.Info("balancing", zap.Int("equations", len(jobs)), zap.Int("workers", O.workers()))
	results := Run(ctx, jobs, O)
	sum.Total = len(results)
	for _, res := range results {
		if res.Err != nil {
			sum.Failed++
			log.Debug("equation failed", zap.Int("line", res.Line), zap.String("equation", res.Text), zap.Error(res.Err))
			continue
		}
		sum.Balanced++
	}
	w, err := Create(out, O.Level, log)
	if err != nil {
		return sum, err
	}
	if err := Write(w, results, O.Style); err != nil {
		w.Close()
		return sum, Error{err.Error(), out, []string{"Write", "File"}}
	}
	if err := w.Close(); err != nil {
		return sum, Error{err.Error(), out, []string{"Close", "File"}}
	}
	log.Info("batch done", zap.Int("balanced", sum.Balanced), zap.Int("failed", sum.Failed))
	return sum, ctx.Err()
}
