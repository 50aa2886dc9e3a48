/*
 * system.go, part of gobalance.
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

import "sort"

// Conservation is the linear constraint for one element: the sum over all
// compounds of Coeffs[i]*x_i must be zero. Product counts enter with a positive
// sign, reactant counts with a negative one.
type Conservation struct {
	Element string
	Coeffs  []int64
}

// System is the set of element conservation equations for a reaction.
// Variable i corresponds to reactant i for i < NReactants, and to product
// i-NReactants otherwise.
type System struct {
	Elements   []string
	Equations  []Conservation
	NReactants int
	compounds  []Compound
}

var _ Solver = (*System)(nil)

// Build collects every element present in reactants and products, allocates one
// variable per compound (reactants first) and builds one Conservation per element.
// Degenerate inputs (no reactants, no products, empty compounds) are accepted here,
// Solve reports them.
func Build(reactants, products []Compound) *System {
	S := new(System)
	S.NReactants = len(reactants)
	S.compounds = make([]Compound, 0, len(reactants)+len(products))
	S.compounds = append(S.compounds, reactants...)
	S.compounds = append(S.compounds, products...)
	seen := make(map[string]bool)
	for _, c := range S.compounds {
		for k := range c {
			if !seen[k] {
				seen[k] = true
				S.Elements = append(S.Elements, k)
			}
		}
	}
	sort.Strings(S.Elements) //map iteration is random, the equation order shouldn't be.
	S.Equations = make([]Conservation, 0, len(S.Elements))
	for _, e := range S.Elements {
		eq := Conservation{Element: e, Coeffs: make([]int64, len(S.compounds))}
		for i, c := range S.compounds {
			n := int64(c.Count(e))
			if i < S.NReactants {
				n = -n
			}
			eq.Coeffs[i] = n
		}
		S.Equations = append(S.Equations, eq)
	}
	return S
}

// Vars returns the number of unknown coefficients in the system.
func (S *System) Vars() int {
	return len(S.compounds)
}

// NProducts returns the number of products in the system.
func (S *System) NProducts() int {
	return len(S.compounds) - S.NReactants
}

// Compound returns the compound associated to variable i.
func (S *System) Compound(i int) Compound {
	return S.compounds[i]
}

// Residual returns, for each element (in the order of S.Elements), the atoms on the
// product side minus those on the reactant side for the given coefficients.
// A balanced set of coefficients gives all zeros.
func (S *System) Residual(coefs []int64) []int64 {
	ret := make([]int64, len(S.Equations))
	for i, eq := range S.Equations {
		for j, c := range eq.Coeffs {
			ret[i] += c * coefs[j]
		}
	}
	return ret
}
