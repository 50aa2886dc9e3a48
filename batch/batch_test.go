/*
 * batch_test.go, part of gobalance.
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
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	balance "github.com/rmera/gobalance"
)

const input = `# combustion
CH4 + O2 -> CO2 + H2O

H2 + O2 = H2O
H2 -> O2
123 -> H2O
Fe + O2 → Fe2O3
`

func TestRead(Te *testing.T) {
	jobs, err := Read(strings.NewReader(input))
	require.NoError(Te, err)
	require.Len(Te, jobs, 5)
	assert.Equal(Te, Job{Line: 2, Text: "CH4 + O2 -> CO2 + H2O"}, jobs[0])
	assert.Equal(Te, 7, jobs[4].Line)
}

func TestRunOrdered(Te *testing.T) {
	jobs, err := Read(strings.NewReader(input))
	require.NoError(Te, err)
	res := Run(context.Background(), jobs, Options{Workers: 3})
	require.Len(Te, res, len(jobs))
	for i := range res {
		assert.Equal(Te, jobs[i], res[i].Job)
	}
	assert.Equal(Te, []int64{1, 2, 1, 2}, res[0].Equation.Coefficients)
	assert.Equal(Te, []int64{2, 1, 2}, res[1].Equation.Coefficients)
	assert.ErrorIs(Te, res[2].Err, balance.ErrNoSolution)
	assert.ErrorIs(Te, res[3].Err, balance.ErrParse)
	assert.Equal(Te, []int64{4, 3, 2}, res[4].Equation.Coefficients)
}

func TestRunCancelled(Te *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := Run(ctx, []Job{{Line: 1, Text: "H2 + O2 -> H2O"}}, Options{})
	require.Len(Te, res, 1)
	assert.ErrorIs(Te, res[0].Err, context.Canceled)
}

func TestCompressedRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"eq.txt", "eq.gz", "eq.zst", "eq.lzw"} {
		path := filepath.Join(dir, name)
		w, err := Create(path, 9, zaptest.NewLogger(Te))
		require.NoError(Te, err, name)
		_, err = io.WriteString(w, input)
		require.NoError(Te, err, name)
		require.NoError(Te, w.Close(), name)

		r, err := Open(path)
		require.NoError(Te, err, name)
		back, err := io.ReadAll(r)
		require.NoError(Te, err, name)
		require.NoError(Te, r.Close(), name)
		assert.Equal(Te, input, string(back), name)
	}
	assert.Equal(Te, "zst", Format("a.ZSTD"))
	assert.Equal(Te, "plain", Format("a.eq"))
}

func TestFile(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "in.txt.gz")
	out := filepath.Join(dir, "out.txt.zst")
	w, err := Create(in, -1, nil)
	require.NoError(Te, err)
	_, err = io.WriteString(w, input)
	require.NoError(Te, err)
	require.NoError(Te, w.Close())

	sum, err := File(context.Background(), in, out, Options{Workers: 2, Style: balance.Style{OmitOnes: true}, Logger: zaptest.NewLogger(Te)})
	require.NoError(Te, err)
	assert.NotEmpty(Te, sum.ID)
	assert.Equal(Te, 5, sum.Total)
	assert.Equal(Te, 3, sum.Balanced)
	assert.Equal(Te, 2, sum.Failed)

	r, err := Open(out)
	require.NoError(Te, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(Te, lines, 5)
	assert.Equal(Te, "2\tBalanced Equation: CH4 + 2O2 → CO2 + 2H2O", lines[0])
	assert.Equal(Te, "5\tNo solution found! Check the equation.", lines[2])
	assert.True(Te, strings.HasPrefix(lines[3], "6\tError: parse error"))
}

func TestOpenMissing(Te *testing.T) {
	_, err := Open(filepath.Join(Te.TempDir(), "nope.gz"))
	require.Error(Te, err)
	var berr Error
	require.ErrorAs(Te, err, &berr)
	assert.Contains(Te, berr.FileName(), "nope.gz")
	_, statErr := os.Stat(berr.FileName())
	assert.True(Te, os.IsNotExist(statErr))
}
