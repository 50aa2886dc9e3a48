/*
 * main_test.go, part of gobalance.
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

package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rmera/gobalance/chemjson"
	"github.com/rmera/gobalance/internal/config"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	return newApp(&config.Config{Arrow: "→", Workers: 1, LogFormat: "console"}, zaptest.NewLogger(t))
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, *chemjson.Response) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := new(chemjson.Response)
	require.NoError(t, json.Unmarshal(body, out), string(body))
	return resp, out
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/balance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPostBalance(t *testing.T) {
	app := testApp(t)
	resp, out := do(t, app, postJSON(`{"reactants":"H2 + O2","products":"H2O"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{2, 1, 2}, out.Coefficients)
	assert.Equal(t, "Balanced Equation: 2H2 + 1O2 → 2H2O", out.Message)
	id := resp.Header.Get(requestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, out.ID)

	req := postJSON(`{"equation":"CH4 + O2 -> CO2 + H2O","omit_ones":true}`)
	req.Header.Set(requestIDHeader, "abc")
	resp, out = do(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc", resp.Header.Get(requestIDHeader))
	assert.Equal(t, "abc", out.ID)
	assert.Equal(t, "CH4 + 2O2 → CO2 + 2H2O", out.Equation)
}

func TestPostBalanceErrors(t *testing.T) {
	app := testApp(t)
	resp, out := do(t, app, postJSON(`{"reactants":"H2","products":"O2"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "No solution found! Check the equation.", out.Message)

	resp, out = do(t, app, postJSON(`{"reactants":"123","products":"H2O"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "parse", out.Error.Kind)

	resp, out = do(t, app, postJSON(`{"reactants":`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.True(t, out.Error.InOptions)

	resp, _ = do(t, app, postJSON(`{}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetBalance(t *testing.T) {
	app := testApp(t)
	q := url.Values{"equation": {"Fe + O2 -> Fe2O3"}}
	resp, out := do(t, app, httptest.NewRequest(http.MethodGet, "/balance?"+q.Encode(), nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{4, 3, 2}, out.Coefficients)
}

func TestHealth(t *testing.T) {
	resp, err := testApp(t).Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNotFound(t *testing.T) {
	resp, out := do(t, testApp(t), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.True(t, out.Error.IsError)
}
