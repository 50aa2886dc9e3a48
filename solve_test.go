/*
 * solve_test.go, part of gobalance.
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

package balance

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compounds(Te *testing.T, formulas ...string) []Compound {
	Te.Helper()
	ret := make([]Compound, len(formulas))
	for i, f := range formulas {
		c, err := ParseFormula(f)
		require.NoError(Te, err)
		ret[i] = c
	}
	return ret
}

func TestBuild(Te *testing.T) {
	S := Build(compounds(Te, "H2", "O2"), compounds(Te, "H2O"))
	assert.Equal(Te, []string{"H", "O"}, S.Elements)
	assert.Equal(Te, 3, S.Vars())
	assert.Equal(Te, 2, S.NReactants)
	assert.Equal(Te, 1, S.NProducts())
	require.Len(Te, S.Equations, 2)
	assert.Equal(Te, Conservation{Element: "H", Coeffs: []int64{-2, 0, 2}}, S.Equations[0])
	assert.Equal(Te, Conservation{Element: "O", Coeffs: []int64{0, -2, 1}}, S.Equations[1])
	assert.Equal(Te, []int64{0, 0}, S.Residual([]int64{2, 1, 2}))
	assert.Equal(Te, []int64{0, -1}, S.Residual([]int64{1, 1, 1}))
}

func TestSolve(Te *testing.T) {
	cases := []struct {
		r, p []string
		want []int64
	}{
		{[]string{"H2", "O2"}, []string{"H2O"}, []int64{2, 1, 2}},
		{[]string{"CH4", "O2"}, []string{"CO2", "H2O"}, []int64{1, 2, 1, 2}},
		{[]string{"Fe", "O2"}, []string{"Fe2O3"}, []int64{4, 3, 2}},
		{[]string{"C3H8", "O2"}, []string{"CO2", "H2O"}, []int64{1, 5, 3, 4}},
		{[]string{"Al", "HCl"}, []string{"AlCl3", "H2"}, []int64{2, 6, 2, 3}},
		{[]string{"KMnO4", "HCl"}, []string{"KCl", "MnCl2", "H2O", "Cl2"}, []int64{2, 16, 2, 2, 8, 5}},
		{[]string{"C6H12O6", "O2"}, []string{"CO2", "H2O"}, []int64{1, 6, 6, 6}},
		{[]string{"NaCl"}, []string{"Na", "Cl2"}, []int64{2, 2, 1}},
		{[]string{"CO"}, []string{"C", "CO2"}, []int64{2, 1, 1}},
		{[]string{"H2O"}, []string{"H2O"}, []int64{1, 1}},
	}
	for _, c := range cases {
		S := Build(compounds(Te, c.r...), compounds(Te, c.p...))
		got, err := S.Solve()
		require.NoError(Te, err, "%v -> %v", c.r, c.p)
		assert.Equal(Te, c.want, got, "%v -> %v", c.r, c.p)
		assert.NoError(Te, S.Check(got))
	}
}

func TestSolveNoSolution(Te *testing.T) {
	cases := []struct {
		r, p []Compound
	}{
		{compounds(Te, "H2"), compounds(Te, "O2")},
		{compounds(Te, "H2", "O2"), nil},
		{nil, compounds(Te, "H2O")},
		{[]Compound{{}}, compounds(Te, "H2")},
		{compounds(Te, "H2", "O2", "N2", "Cl2"), compounds(Te, "H2O", "NCl3")},
		{compounds(Te, "H2", "H"), compounds(Te, "H2")},
	}
	for i, c := range cases {
		_, err := Build(c.r, c.p).Solve()
		assert.ErrorIs(Te, err, ErrNoSolution, "case %d", i)
		assert.Equal(Te, KindNoSolution, KindOf(err), "case %d", i)
	}
}

func TestSolveIndependentReactions(Te *testing.T) {
	S := Build(compounds(Te, "H2", "O2", "N2", "Cl2"), compounds(Te, "H2O", "NCl3"))
	assert.Equal(Te, [][]int{{0, 1, 4}, {2, 3, 5}}, S.Components())
	_, err := S.Solve()
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "2 independent reactions")
	assert.Contains(Te, err.Error(), "[x0, x1, x4] [x2, x3, x5]")
}

func TestSolveScaling(Te *testing.T) {
	//O2 appears only on one side, so its coefficient is forced to 0.
	_, err := Build(compounds(Te, "H2"), compounds(Te, "H2", "O2")).Solve()
	assert.ErrorIs(Te, err, ErrScaling)
	assert.Equal(Te, KindScaling, KindOf(err))
}

func TestNormalize(Te *testing.T) {
	got, err := Normalize([]*big.Rat{big.NewRat(1, 2), big.NewRat(1, 1), big.NewRat(3, 4)})
	require.NoError(Te, err)
	assert.Equal(Te, []int64{2, 4, 3}, got)

	got, err = Normalize([]*big.Rat{big.NewRat(4, 1), big.NewRat(6, 1)})
	require.NoError(Te, err)
	assert.Equal(Te, []int64{2, 3}, got)

	_, err = Normalize([]*big.Rat{big.NewRat(1, 2), big.NewRat(-1, 1)})
	assert.ErrorIs(Te, err, ErrScaling)

	_, err = Normalize([]*big.Rat{big.NewRat(1, 2), new(big.Rat)})
	assert.ErrorIs(Te, err, ErrScaling)

	_, err = Normalize([]*big.Rat{big.NewRat(1, 2), nil})
	assert.ErrorIs(Te, err, ErrNoSolution)

	huge, _ := new(big.Rat).SetString("1/100000000000000000000")
	_, err = Normalize([]*big.Rat{big.NewRat(1, 1), huge})
	assert.ErrorIs(Te, err, ErrScaling)
}

func TestComposition(Te *testing.T) {
	S := Build(compounds(Te, "CH4", "O2"), compounds(Te, "CO2", "H2O"))
	A := S.Composition()
	require.NotNil(Te, A)
	r, c := A.Dims()
	assert.Equal(Te, 3, r)
	assert.Equal(Te, 4, c)
	assert.Equal(Te, -4.0, A.At(1, 0)) //H in CH4
	assert.NoError(Te, S.Check([]int64{1, 2, 1, 2}))
	assert.Error(Te, S.Check([]int64{1, 1, 1, 1}))
	assert.Error(Te, S.Check([]int64{1, 2}))
	assert.Nil(Te, Build(nil, nil).Composition())

	re, pr := S.Totals([]int64{1, 2, 1, 2})
	assert.Equal(Te, []float64{1, 4, 4}, re)
	assert.Equal(Te, re, pr)
}
