/*
 * formula_test.go, part of gobalance.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(Te *testing.T) {
	cases := []struct {
		in   string
		want Compound
	}{
		{"H2O", Compound{"H": 2, "O": 1}},
		{"Fe2O3", Compound{"Fe": 2, "O": 3}},
		{"NaCl", Compound{"Na": 1, "Cl": 1}},
		{"O2", Compound{"O": 2}},
		{"C6H12O6", Compound{"C": 6, "H": 12, "O": 6}},
		{"HH", Compound{"H": 2}},
		{"CH3COOH", Compound{"C": 2, "H": 4, "O": 2}},
		{"2H2O", Compound{"H": 2, "O": 1}}, //leading digits are not a token
		{"Uuo", Compound{"Uuo": 1}},
	}
	for _, c := range cases {
		got, err := ParseFormula(c.in)
		require.NoError(Te, err, c.in)
		assert.Equal(Te, c.want, got, c.in)
	}
}

func TestParseFormulaErrors(Te *testing.T) {
	for _, in := range []string{"123", "", "h2o", "H0", "+"} {
		_, err := ParseFormula(in)
		require.Error(Te, err, in)
		assert.True(Te, errors.Is(err, ErrParse), in)
		assert.Equal(Te, KindParse, KindOf(err), in)
	}
}

func TestParseFormulaStrict(Te *testing.T) {
	_, err := ParseFormula("H2O!")
	assert.NoError(Te, err)
	_, err = ParseFormulaStrict("H2O!")
	assert.ErrorIs(Te, err, ErrParse)
	_, err = ParseFormulaStrict("2H2O")
	assert.ErrorIs(Te, err, ErrParse)
	c, err := ParseFormulaStrict("Ca3P2O8")
	require.NoError(Te, err)
	assert.Equal(Te, Compound{"Ca": 3, "P": 2, "O": 8}, c)
}

func TestCompoundString(Te *testing.T) {
	assert.Equal(Te, "H2O", Compound{"O": 1, "H": 2}.String())
	assert.Equal(Te, "C6H12O6", Compound{"O": 6, "H": 12, "C": 6}.String())
	assert.Equal(Te, "CH4", Compound{"H": 4, "C": 1}.String())
	assert.Equal(Te, "ClNa", Compound{"Na": 1, "Cl": 1}.String())
	assert.Equal(Te, []string{"C", "H", "Br", "N"}, Compound{"N": 1, "Br": 1, "H": 1, "C": 1}.Symbols())
}

func TestParseSide(Te *testing.T) {
	terms, comps, err := ParseSide("  H2 +O2  ", false)
	require.NoError(Te, err)
	assert.Equal(Te, []string{"H2", "O2"}, terms)
	assert.Equal(Te, []Compound{{"H": 2}, {"O": 2}}, comps)

	for _, in := range []string{"", "H2 +", "+ O2", "H2 + + O2", "H2 + 123"} {
		_, _, err := ParseSide(in, false)
		assert.ErrorIs(Te, err, ErrParse, in)
	}
}

func TestSplitEquation(Te *testing.T) {
	for _, in := range []string{"H2 + O2 -> H2O", "H2 + O2 = H2O", "H2 + O2 => H2O", "H2 + O2 → H2O"} {
		r, p, err := SplitEquation(in)
		require.NoError(Te, err, in)
		assert.Equal(Te, "H2 + O2", r, in)
		assert.Equal(Te, "H2O", p, in)
	}
	_, _, err := SplitEquation("H2 + O2 H2O")
	assert.ErrorIs(Te, err, ErrParse)
	_, _, err = SplitEquation("H2 -> O2 -> H2O")
	assert.ErrorIs(Te, err, ErrParse)
}

func TestErrorDecorate(Te *testing.T) {
	_, err := Balance("H2 + 1", "H2O")
	require.Error(Te, err)
	var berr *BalanceError
	require.True(Te, errors.As(err, &berr))
	deco := berr.Decorate("")
	assert.Equal(Te, []string{"ParseFormula", "ParseSide", "Balance: reactants"}, deco)
	assert.Contains(Te, berr.Error(), "parse error")
	assert.Contains(Te, berr.Message(), `"1"`)
}
