/*
 * doc.go, part of gobalance.
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

/*Package balance is the main package of the goBalance library. It balances chemical equations:
given reactant and product formulas, it finds the smallest strictly positive integer
coefficients that conserve every element.



	**goBalance Capabilities**


    Parses flat chemical formulas ("Fe2O3", "NaCl") into element counts.

    Builds one conservation equation per element and solves the system with exact
    rational arithmetic, so no rounding can turn a solvable equation into an unsolvable one.

    Scales the solution to the minimal set of positive integers, and tells apart
    parse errors, equations without a (unique) solution, and solutions that can't be
    made positive.

    Explains under-determined equations by finding the groups of compounds that
    share no element (i.e. independent reactions), using gonum's graph package.

    Checks the result with gonum matrices, and reports molar masses and the mass balance.

    Balances many equations at once from plain, gzip or zstd compressed files (package batch),
    talks JSON with other programs (package chemjson), and plots the coefficients (package chemplot).


A typical use:

	eq, err := balance.Balance("H2 + O2", "H2O")
	fmt.Println(balance.Result(eq, err)) // Balanced Equation: 2H2 + 1O2 → 2H2O

The functions in this package keep no state between calls, and can be used from
many goroutines at the same time.*/
package balance
