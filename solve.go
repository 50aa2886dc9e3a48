/*
 * solve.go, part of gobalance.
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
	"fmt"
	"math/big"
	"strings"
)

// Solve finds the smallest strictly positive integer coefficients satisfying every
// conservation equation in the system. The system is solved exactly, over the rationals.
// It returns a NoSolution error if only the trivial solution exists or if more than
// one coefficient is left free, and a Scaling error if the solution found can't be
// made strictly positive.
func (S *System) Solve() ([]int64, error) {
	const funcname = "System.Solve"
	n := S.Vars()
	if S.NReactants == 0 || S.NProducts() == 0 {
		return nil, newError(KindNoSolution, funcname, "both reactants and products are needed (got %d and %d)", S.NReactants, S.NProducts())
	}
	for i, c := range S.compounds {
		if len(c) == 0 {
			return nil, newError(KindNoSolution, funcname, "compound %d contains no elements, its coefficient is undetermined", i+1)
		}
	}
	m := S.ratMatrix()
	pivots := rref(m, n)
	free := freeColumns(pivots, n)
	switch {
	case len(free) == 0:
		return nil, newError(KindNoSolution, funcname, "only the trivial (all zero) solution conserves every element")
	case len(free) > 1:
		msg := fmt.Sprintf("the coefficients %s can't be determined from each other", varNames(free))
		if groups := S.Components(); len(groups) > 1 {
			msg += fmt.Sprintf(", the equation splits into %d independent reactions: %s", len(groups), groupNames(groups))
		}
		return nil, newError(KindNoSolution, funcname, "%s", msg)
	}
	f := free[0]
	sol := make([]*big.Rat, n)
	sol[f] = big.NewRat(1, 1)
	//each row of the reduced matrix reads x_pivot + m[r][f]*x_f = 0
	for r, pc := range pivots {
		sol[pc] = new(big.Rat).Neg(m[r][f])
	}
	ret, err := Normalize(sol)
	if err != nil {
		return nil, errDecorate(err, funcname)
	}
	return ret, nil
}

// ratMatrix returns the system as a matrix of rationals, one row per element.
func (S *System) ratMatrix() [][]*big.Rat {
	m := make([][]*big.Rat, len(S.Equations))
	for i, eq := range S.Equations {
		m[i] = make([]*big.Rat, len(eq.Coeffs))
		for j, c := range eq.Coeffs {
			m[i][j] = new(big.Rat).SetInt64(c)
		}
	}
	return m
}

// rref reduces m, in place, to reduced row-echelon form using exact arithmetic
// and returns the pivot column of each non-zero row, in row order.
func rref(m [][]*big.Rat, cols int) []int {
	pivots := make([]int, 0, len(m))
	row := 0
	tmp := new(big.Rat)
	for col := 0; col < cols && row < len(m); col++ {
		p := -1
		for r := row; r < len(m); r++ {
			if m[r][col].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			continue
		}
		m[row], m[p] = m[p], m[row]
		inv := new(big.Rat).Inv(m[row][col])
		for c := col; c < cols; c++ {
			m[row][c].Mul(m[row][c], inv)
		}
		for r := range m {
			if r == row || m[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(m[r][col])
			for c := col; c < cols; c++ {
				tmp.Mul(factor, m[row][c])
				m[r][c].Sub(m[r][c], tmp)
			}
		}
		pivots = append(pivots, col)
		row++
	}
	return pivots
}

func freeColumns(pivots []int, cols int) []int {
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}
	var free []int
	for c := 0; c < cols; c++ {
		if !isPivot[c] {
			free = append(free, c)
		}
	}
	return free
}

// Normalize scales a rational solution vector to the smallest vector of integers with
// the same ratios. The denominators are cleared with their least common multiple and the
// result is divided by the greatest common divisor of its entries. Any entry <= 0, or
// too large for an int64, is a Scaling error. A nil entry (undetermined value) is a
// NoSolution error.
func Normalize(sol []*big.Rat) ([]int64, error) {
	const funcname = "Normalize"
	if len(sol) == 0 {
		return nil, newError(KindNoSolution, funcname, "empty solution")
	}
	l := big.NewInt(1)
	for i, v := range sol {
		if v == nil {
			return nil, newError(KindNoSolution, funcname, "coefficient x%d is undetermined", i)
		}
		l = lcm(l, v.Denom())
	}
	ints := make([]*big.Int, len(sol))
	g := new(big.Int)
	for i, v := range sol {
		k := new(big.Int).Mul(v.Num(), new(big.Int).Quo(l, v.Denom()))
		if k.Sign() <= 0 {
			return nil, newError(KindScaling, funcname, "coefficient x%d would be %s, all coefficients must be positive", i, k)
		}
		ints[i] = k
		g.GCD(nil, nil, g, k)
	}
	ret := make([]int64, len(ints))
	for i, k := range ints {
		k.Quo(k, g)
		if !k.IsInt64() {
			return nil, newError(KindScaling, funcname, "coefficient x%d (%s) is too large", i, k)
		}
		ret[i] = k.Int64()
	}
	return ret, nil
}

func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	ret := new(big.Int).Quo(a, g)
	return ret.Mul(ret, b)
}

func varNames(idx []int) string {
	s := make([]string, len(idx))
	for i, v := range idx {
		s[i] = fmt.Sprintf("x%d", v)
	}
	return strings.Join(s, ", ")
}

func groupNames(groups [][]int) string {
	s := make([]string, len(groups))
	for i, g := range groups {
		s[i] = "[" + varNames(g) + "]"
	}
	return strings.Join(s, " ")
}
