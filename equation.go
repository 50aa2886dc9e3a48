/*
 * equation.go, part of gobalance.
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

// Equation is a balanced chemical equation.
type Equation struct {
	//The terms as given by the user, trimmed of whitespace.
	Reactants []string
	Products  []string
	//One coefficient per term, reactants first.
	Coefficients []int64
	system       *System
}

type options struct {
	strict bool
}

// Option modifies the behavior of Balance.
type Option func(*options)

// Strict makes Balance reject formulas containing characters that are not part
// of an element token.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// Balance parses the '+'-separated reactant and product lists and returns the balanced
// equation. The returned error, if any, is a *BalanceError of kind KindParse, KindNoSolution
// or KindScaling. Balance has no state, so it can be called concurrently.
func Balance(reactants, products string, opts ...Option) (*Equation, error) {
	const funcname = "Balance"
	o := new(options)
	for _, f := range opts {
		f(o)
	}
	rterms, rcomps, err := ParseSide(reactants, o.strict)
	if err != nil {
		return nil, errDecorate(err, funcname+": reactants")
	}
	pterms, pcomps, err := ParseSide(products, o.strict)
	if err != nil {
		return nil, errDecorate(err, funcname+": products")
	}
	S := Build(rcomps, pcomps)
	coefs, err := S.Solve()
	if err != nil {
		return nil, errDecorate(err, funcname)
	}
	return &Equation{Reactants: rterms, Products: pterms, Coefficients: coefs, system: S}, nil
}

// BalanceLine is like Balance, but takes the whole equation in one string,
// with the sides separated by an arrow or an equal sign (see SplitEquation).
func BalanceLine(line string, opts ...Option) (*Equation, error) {
	r, p, err := SplitEquation(line)
	if err != nil {
		return nil, errDecorate(err, "BalanceLine")
	}
	return Balance(r, p, opts...)
}

// Term returns the i-th term of the equation, counting reactants first.
func (E *Equation) Term(i int) string {
	if i < len(E.Reactants) {
		return E.Reactants[i]
	}
	return E.Products[i-len(E.Reactants)]
}

// Len returns the number of compounds in the equation.
func (E *Equation) Len() int {
	return len(E.Coefficients)
}

// System returns the conservation system the equation was solved from.
func (E *Equation) System() *System {
	return E.system
}

// Verify checks again that the coefficients conserve every element.
func (E *Equation) Verify() error {
	return E.system.Check(E.Coefficients)
}

// Ratio reports whether E and other have the same compounds, in the same order,
// and coefficients that differ only by a constant factor.
func (E *Equation) Ratio(other *Equation) bool {
	if E.Len() != other.Len() || len(E.Reactants) != len(other.Reactants) {
		return false
	}
	for i := range E.Coefficients {
		if E.system.Compound(i).String() != other.system.Compound(i).String() {
			return false
		}
		//a/b == c/d <=> a*d == c*b, all of them positive.
		if E.Coefficients[i]*other.Coefficients[0] != other.Coefficients[i]*E.Coefficients[0] {
			return false
		}
	}
	return true
}
