/*
 * interfaces.go, part of gobalance.
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

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a function in the calling stack (optionally followed by ": extra info") to the error, and returns
	//the resulting slice. If passed an empty string, it just returns the current value.
	Decorate(string) []string
}

// KindError is an Error that also tells which of the balancer's failure kinds it belongs to.
type KindError interface {
	Error
	Kind() Kind
}

// Solver is anything that can produce the balanced coefficients for a set of compounds.
// *System implements it.
type Solver interface {
	Solve() ([]int64, error)
}
