/*
 * formula.go, part of gobalance.
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
	"sort"
	"strconv"
	"strings"
)

// Compound is a chemical formula reduced to a map from element symbol
// to number of atoms. All counts are >= 1.
type Compound map[string]int

// Count returns the number of atoms of the element symbol in the compound,
// 0 if the element is not present.
func (C Compound) Count(symbol string) int {
	return C[symbol]
}

// Symbols returns the element symbols present in the compound, in Hill order
// (C, then H, then alphabetical, if carbon is present. Alphabetical otherwise).
func (C Compound) Symbols() []string {
	ret := make([]string, 0, len(C))
	for k := range C {
		ret = append(ret, k)
	}
	_, carbon := C["C"]
	sort.Slice(ret, func(i, j int) bool {
		if carbon {
			ri, rj := hillRank(ret[i]), hillRank(ret[j])
			if ri != rj {
				return ri < rj
			}
		}
		return ret[i] < ret[j]
	})
	return ret
}

func hillRank(symbol string) int {
	switch symbol {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}

// String returns the formula in Hill notation, omitting counts of 1.
func (C Compound) String() string {
	var b strings.Builder
	for _, s := range C.Symbols() {
		b.WriteString(s)
		if n := C[s]; n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// ParseFormula turns a flat formula (no parentheses, charges or hydrates) such as "Fe2O3"
// into a Compound. A token is an uppercase letter followed by any number of lowercase
// letters, followed by an optional count. Characters that are not part of a token are skipped,
// repeated symbols are summed. A formula without any element token is a parse error.
func ParseFormula(formula string) (Compound, error) {
	return parseFormula(formula, false)
}

// ParseFormulaStrict is like ParseFormula, but any character that is not part of an
// element token is a parse error.
func ParseFormulaStrict(formula string) (Compound, error) {
	return parseFormula(formula, true)
}

func parseFormula(formula string, strict bool) (Compound, error) {
	const funcname = "ParseFormula"
	ret := make(Compound)
	i := 0
	for i < len(formula) {
		if !isUpper(formula[i]) {
			if strict {
				return nil, newError(KindParse, funcname, "unexpected character %q at position %d in %q", formula[i], i, formula)
			}
			i++
			continue
		}
		j := i + 1
		for j < len(formula) && isLower(formula[j]) {
			j++
		}
		k := j
		for k < len(formula) && isDigit(formula[k]) {
			k++
		}
		count := 1
		if k > j {
			n, err := strconv.Atoi(formula[j:k])
			if err != nil {
				return nil, newError(KindParse, funcname, "invalid count %q for %s in %q", formula[j:k], formula[i:j], formula)
			}
			if n == 0 {
				return nil, newError(KindParse, funcname, "zero count for %s in %q", formula[i:j], formula)
			}
			count = n
		}
		ret[formula[i:j]] += count
		i = k
	}
	if len(ret) == 0 {
		return nil, newError(KindParse, funcname, "no element symbol found in %q", formula)
	}
	return ret, nil
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseSide splits one side of an equation ("H2 + O2") on '+' and parses each term.
// It returns the trimmed terms, as typed, and the corresponding compounds.
// An empty term is a parse error.
func ParseSide(side string, strict bool) ([]string, []Compound, error) {
	const funcname = "ParseSide"
	raw := strings.Split(strings.TrimSpace(side), "+")
	terms := make([]string, 0, len(raw))
	compounds := make([]Compound, 0, len(raw))
	for i, v := range raw {
		t := strings.TrimSpace(v)
		if t == "" {
			return nil, nil, newError(KindParse, funcname, "empty term %d in %q", i+1, side)
		}
		c, err := parseFormula(t, strict)
		if err != nil {
			return nil, nil, errDecorate(err, funcname)
		}
		terms = append(terms, t)
		compounds = append(compounds, c)
	}
	return terms, compounds, nil
}

// separators accepted between the two sides of a one-line equation.
// Longer ones go first so "=>" is not taken for "=".
var separators = []string{"->", "=>", "→", "⟶", "="}

// SplitEquation splits a one-line equation such as "H2 + O2 -> H2O" into its reactant
// and product sides. The sides can be separated by "->", "=>", "→" or "=".
func SplitEquation(line string) (reactants, products string, err error) {
	for _, sep := range separators {
		if strings.Count(line, sep) == 0 {
			continue
		}
		parts := strings.Split(line, sep)
		if len(parts) != 2 {
			return "", "", newError(KindParse, "SplitEquation", "more than one %q in %q", sep, line)
		}
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
	}
	return "", "", newError(KindParse, "SplitEquation", "no reaction arrow found in %q", line)
}
