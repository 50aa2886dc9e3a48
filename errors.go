/*
 * errors.go, part of gobalance.
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
	"fmt"
)

// Kind is the failure class of a balancing request.
type Kind int

const (
	//KindParse means a formula or a side of the equation could not be read.
	KindParse Kind = iota + 1
	//KindNoSolution means the conservation system is contradictory, or leaves coefficients undetermined.
	KindNoSolution
	//KindScaling means a rational solution exists but it can't be turned into strictly positive integers.
	KindScaling
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindNoSolution:
		return "no solution"
	case KindScaling:
		return "scaling error"
	default:
		return "unknown error"
	}
}

// BalanceError is the concrete error returned by this package. It fulfills Error and KindError.
type BalanceError struct {
	kind    Kind
	message string
	deco    []string
}

// Sentinels to be used with errors.Is. Only the kind is compared.
var (
	ErrParse      = &BalanceError{kind: KindParse, message: "invalid input"}
	ErrNoSolution = &BalanceError{kind: KindNoSolution, message: "the equation can't be balanced"}
	ErrScaling    = &BalanceError{kind: KindScaling, message: "the solution can't be scaled to positive integers"}
)

func (E *BalanceError) Error() string {
	return fmt.Sprintf("%s: %s", E.kind, E.message)
}

// Message returns the error message without the kind prefix.
func (E *BalanceError) Message() string { return E.message }

// Kind returns the failure class of the error.
func (E *BalanceError) Kind() Kind { return E.kind }

// Decorate adds new information to the error.
func (E *BalanceError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Is reports whether target is a *BalanceError of the same kind.
func (E *BalanceError) Is(target error) bool {
	t, ok := target.(*BalanceError)
	return ok && t.kind == E.kind
}

func newError(kind Kind, caller, format string, args ...interface{}) *BalanceError {
	return &BalanceError{kind: kind, message: fmt.Sprintf(format, args...), deco: []string{caller}}
}

//errDecorate decorates err with the caller's name if err implements Error,
//and returns it. Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// KindOf returns the Kind of err, or 0 if err is not (or doesn't wrap) a KindError.
func KindOf(err error) Kind {
	var e KindError
	if errors.As(err, &e) {
		return e.Kind()
	}
	return 0
}
