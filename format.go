/*
 * format.go, part of gobalance.
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
	"strconv"
	"strings"
)

// Arrow is the default separator between reactants and products.
const Arrow = "→"

// NoSolutionMessage is what Result returns for equations that can't be balanced.
const NoSolutionMessage = "No solution found! Check the equation."

// Style controls how equations are printed.
type Style struct {
	//OmitOnes drops coefficients equal to 1, as usual in chemical notation.
	//By default they are printed ("2H2 + 1O2 → 2H2O").
	OmitOnes bool
	//Arrow separates both sides. If empty, the package's Arrow is used.
	Arrow string
}

// DefaultStyle prints every coefficient and uses Arrow.
var DefaultStyle = Style{}

func (S Style) term(c int64, formula string) string {
	if S.OmitOnes && c == 1 {
		return formula
	}
	return strconv.FormatInt(c, 10) + formula
}

// Format returns the equation as "c0f0 + c1f1 + ... → cnfn + ...".
func (S Style) Format(E *Equation) string {
	arrow := S.Arrow
	if arrow == "" {
		arrow = Arrow
	}
	r := make([]string, len(E.Reactants))
	for i, f := range E.Reactants {
		r[i] = S.term(E.Coefficients[i], f)
	}
	p := make([]string, len(E.Products))
	for i, f := range E.Products {
		p[i] = S.term(E.Coefficients[len(E.Reactants)+i], f)
	}
	return strings.Join(r, " + ") + " " + arrow + " " + strings.Join(p, " + ")
}

// Result turns the outcome of a balance request into the message for the user:
// "Balanced Equation: ..." on success, NoSolutionMessage for equations without a valid
// solution and "Error: ..." for anything else.
func (S Style) Result(E *Equation, err error) string {
	switch {
	case err == nil:
		return "Balanced Equation: " + S.Format(E)
	case errors.Is(err, ErrNoSolution):
		return NoSolutionMessage
	default:
		return "Error: " + err.Error()
	}
}

// String returns the equation in the default style.
func (E *Equation) String() string {
	return DefaultStyle.Format(E)
}

// Result is DefaultStyle.Result.
func Result(E *Equation, err error) string {
	return DefaultStyle.Result(E, err)
}
