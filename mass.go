/*
 * mass.go, part of gobalance.
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

	"github.com/shopspring/decimal"
)

// MolarMass returns the molar mass of the compound in g/mol. The sum is carried out in
// decimal arithmetic, so masses of balanced equations compare exactly.
func (C Compound) MolarMass() (decimal.Decimal, error) {
	ret := decimal.Zero
	for _, s := range C.Symbols() {
		m, ok := symbolMass[s]
		if !ok {
			return decimal.Zero, fmt.Errorf("no atomic mass for element %q", s)
		}
		ret = ret.Add(decimal.NewFromFloat(m).Mul(decimal.NewFromInt(int64(C[s]))))
	}
	return ret, nil
}

// MassBalance returns the total mass of reactants and products, in g, for the balanced
// coefficients (i.e. for coefficient-many moles of each compound).
// For a balanced equation both values are equal.
func (E *Equation) MassBalance() (reactants, products decimal.Decimal, err error) {
	reactants, products = decimal.Zero, decimal.Zero
	for i, c := range E.Coefficients {
		m, err := E.system.Compound(i).MolarMass()
		if err != nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("compound %s: %w", E.Term(i), err)
		}
		m = m.Mul(decimal.NewFromInt(c))
		if i < len(E.Reactants) {
			reactants = reactants.Add(m)
		} else {
			products = products.Add(m)
		}
	}
	return reactants, products, nil
}
