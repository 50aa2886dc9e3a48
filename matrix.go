/*
 * matrix.go, part of gobalance.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//appzero is the tolerance for considering a float64 residual zero.
//Atom counts and coefficients are integers, so the products are exact
//as long as they stay below 2^53.
const appzero = 1e-9

// Composition returns the signed composition matrix of the system, with one row per
// element (in the order of S.Elements) and one column per compound. Product counts are
// positive, reactant counts negative. It returns nil if the system has no elements or compounds.
func (S *System) Composition() *mat.Dense {
	r, c := len(S.Equations), S.Vars()
	if r == 0 || c == 0 {
		return nil
	}
	A := mat.NewDense(r, c, nil)
	for i, eq := range S.Equations {
		for j, v := range eq.Coeffs {
			A.Set(i, j, float64(v))
		}
	}
	return A
}

// Check verifies that coefs conserve every element of the system, that is,
// that Composition()*coefs is the zero vector.
func (S *System) Check(coefs []int64) error {
	if len(coefs) != S.Vars() {
		return fmt.Errorf("%d coefficients given for %d compounds", len(coefs), S.Vars())
	}
	A := S.Composition()
	if A == nil {
		return fmt.Errorf("empty system")
	}
	c := mat.NewVecDense(len(coefs), intsToFloats(coefs))
	res := new(mat.VecDense)
	res.MulVec(A, c)
	for i := 0; i < res.Len(); i++ {
		if math.Abs(res.AtVec(i)) > appzero {
			return fmt.Errorf("element %s is not conserved (%g atoms of difference)", S.Elements[i], res.AtVec(i))
		}
	}
	return nil
}

// Totals returns, for each element (in the order of S.Elements), the number of atoms
// on the reactant side and on the product side given the coefficients coefs.
func (S *System) Totals(coefs []int64) (reactants, products []float64) {
	c := intsToFloats(coefs)
	reactants = make([]float64, len(S.Elements))
	products = make([]float64, len(S.Elements))
	rc := c[:S.NReactants]
	pc := c[S.NReactants:]
	for i, e := range S.Elements {
		counts := make([]float64, len(c))
		for j, comp := range S.compounds {
			counts[j] = float64(comp.Count(e))
		}
		reactants[i] = floats.Dot(counts[:S.NReactants], rc)
		products[i] = floats.Dot(counts[S.NReactants:], pc)
	}
	return reactants, products
}

func intsToFloats(in []int64) []float64 {
	ret := make([]float64, len(in))
	for i, v := range in {
		ret[i] = float64(v)
	}
	return ret
}
