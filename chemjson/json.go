/*
 * json.go, part of gobalance.
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

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	balance "github.com/rmera/gobalance"
)

//Request is one balancing job. Either Equation, or both Reactants and Products, must be given.
type Request struct {
	ID        string `json:"id,omitempty" query:"id"`
	Equation  string `json:"equation,omitempty" query:"equation"` //"H2 + O2 -> H2O"
	Reactants string `json:"reactants,omitempty" query:"reactants"`
	Products  string `json:"products,omitempty" query:"products"`
	OmitOnes  bool   `json:"omit_ones,omitempty" query:"omit_ones"`
	Arrow     string `json:"arrow,omitempty" query:"arrow"`
	Strict    bool   `json:"strict,omitempty" query:"strict"`
}

//Response is the result of one Request.
type Response struct {
	ID           string   `json:"id,omitempty"`
	Equation     string   `json:"equation,omitempty"`
	Coefficients []int64  `json:"coefficients,omitempty"`
	Reactants    []string `json:"reactants,omitempty"`
	Products     []string `json:"products,omitempty"`
	Message      string   `json:"message"` //what a user interface should show
	Error        *Error   `json:"error,omitempty"`
}

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool   `json:"is_error"` //If this is false (no error) all the other fields will be at their zero-values.
	InOptions     bool   `json:"in_options"` //If error, was it in reading the request?
	InProcess     bool   `json:"in_process"`
	InPostProcess bool   `json:"in_post_process"` //was it in preparing the output?
	Kind          string `json:"kind,omitempty"`  //"parse", "no_solution" or "scaling" for balancing errors
	Function      string `json:"function"`        //which go function gave the error
	Message       string `json:"message"`         //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "options":
		jerr.InOptions = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	switch balance.KindOf(err) {
	case balance.KindParse:
		jerr.Kind = "parse"
	case balance.KindNoSolution:
		jerr.Kind = "no_solution"
	case balance.KindScaling:
		jerr.Kind = "scaling"
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.deco = []string{function}
	return jerr
}

//DecodeRequest reads one line from stdin and unmarshals it into a Request. Blank lines are skipped.
//Read errors (including io.EOF when there is nothing more to read) are returned with InProcess set,
//malformed requests with InOptions set.
func DecodeRequest(stdin *bufio.Reader) (*Request, *Error) {
	const funcname = "DecodeRequest"
	for {
		line, err := stdin.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			if err != nil {
				return nil, NewError("input", funcname, err)
			}
			continue
		}
		ret := new(Request)
		if uerr := json.Unmarshal(line, ret); uerr != nil {
			return nil, NewError("options", funcname, uerr)
		}
		return ret, nil
	}
}

//Sides returns the reactant and product sides of the request.
func (R *Request) Sides() (string, string, error) {
	if R.Equation != "" {
		return balance.SplitEquation(R.Equation)
	}
	if R.Reactants == "" || R.Products == "" {
		return "", "", fmt.Errorf("the request needs either an equation or both reactants and products")
	}
	return R.Reactants, R.Products, nil
}

//Balance balances the equation in the request and returns the response. It never returns nil.
func (R *Request) Balance() *Response {
	const funcname = "Request.Balance"
	style := balance.Style{OmitOnes: R.OmitOnes, Arrow: R.Arrow}
	resp := &Response{ID: R.ID}
	r, p, err := R.Sides()
	if err != nil {
		resp.Error = NewError("options", funcname, err)
		resp.Message = style.Result(nil, err)
		return resp
	}
	var opts []balance.Option
	if R.Strict {
		opts = append(opts, balance.Strict())
	}
	eq, err := balance.Balance(r, p, opts...)
	resp.Message = style.Result(eq, err)
	if err != nil {
		resp.Error = NewError("process", funcname, err)
		return resp
	}
	resp.Equation = style.Format(eq)
	resp.Coefficients = eq.Coefficients
	resp.Reactants = eq.Reactants
	resp.Products = eq.Products
	return resp
}

//Send Marshals the response and writes it, followed by a newline, to out. Returns an error or nil
func (R *Response) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return NewError("postprocess", "Response.Send", err)
	}
	return nil
}

//Serve reads requests from in, one per line, and writes one response per request to out,
//until in is exhausted. A malformed request gets an error response and doesn't stop
//the loop, an error writing to out does.
func Serve(in io.Reader, out io.Writer) error {
	stream := bufio.NewReader(in)
	for {
		req, jerr := DecodeRequest(stream)
		if jerr != nil {
			if jerr.Message == io.EOF.Error() {
				return nil
			}
			if jerr.InOptions {
				resp := &Response{Message: "Error: " + jerr.Message, Error: jerr}
				if serr := resp.Send(out); serr != nil {
					serr.Decorate("Serve")
					return serr
				}
				continue
			}
			return jerr
		}
		if serr := req.Balance().Send(out); serr != nil {
			serr.Decorate("Serve")
			return serr
		}
	}
}
