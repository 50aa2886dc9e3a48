/*
 * main.go, part of gobalance.
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

// Command chembald serves the balancer over HTTP.
//
//	POST /balance   {"reactants":"H2 + O2","products":"H2O"} or {"equation":"H2 + O2 -> H2O"}
//	GET  /balance?equation=H2+%2B+O2+->+H2O
//	GET  /health
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rmera/gobalance/chemjson"
	"github.com/rmera/gobalance/internal/config"
	"github.com/rmera/gobalance/internal/logging"
)

const requestIDHeader = "X-Request-Id"

func main() {
	cfg := config.Load()
	log := logging.Must(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync() //nolint:errcheck
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(cfg, log)
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr))
		errc <- app.Listen(cfg.Addr)
	}()
	select {
	case err := <-errc:
		log.Fatal("server stopped", zap.Error(err))
	case <-ctx.Done():
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}
}

func newApp(cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chembald",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})
	app.Use(requestLogger(log))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	h := &handler{cfg: cfg}
	app.Post("/balance", h.post)
	app.Get("/balance", h.get)
	return app
}

// requestLogger tags every request with an id (taken from the X-Request-Id header, or a new uuid)
// and logs it once it's done.
func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Locals("requestid", id)
		start := time.Now()
		err := c.Next()
		log.Debug("request",
			zap.String("id", id),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
			zap.Error(err))
		return err
	}
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := http.StatusInternalServerError
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			code = ferr.Code
		} else {
			log.Error("unhandled error", zap.Error(err), zap.Any("id", c.Locals("requestid")))
		}
		return c.Status(code).JSON(&chemjson.Response{
			Message: "Error: " + err.Error(),
			Error:   chemjson.NewError("process", c.Path(), err),
		})
	}
}

type handler struct {
	cfg *config.Config
}

func (h *handler) post(c *fiber.Ctx) error {
	req := h.defaults()
	if err := c.BodyParser(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(&chemjson.Response{
			Message: "Error: " + err.Error(),
			Error:   chemjson.NewError("options", "BodyParser", err),
		})
	}
	return h.respond(c, req)
}

func (h *handler) get(c *fiber.Ctx) error {
	req := h.defaults()
	if err := c.QueryParser(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return h.respond(c, req)
}

//defaults returns a request with the server-wide formatting options. The client can override them.
func (h *handler) defaults() *chemjson.Request {
	return &chemjson.Request{OmitOnes: h.cfg.OmitOnes, Arrow: h.cfg.Arrow, Strict: h.cfg.Strict}
}

func (h *handler) respond(c *fiber.Ctx, req *chemjson.Request) error {
	if req.ID == "" {
		if id, ok := c.Locals("requestid").(string); ok {
			req.ID = id
		}
	}
	resp := req.Balance()
	return c.Status(statusFor(resp)).JSON(resp)
}

//statusFor maps the outcome of a request to an HTTP status: malformed input is a
//client error, a well-formed equation that can't be balanced is unprocessable.
func statusFor(resp *chemjson.Response) int {
	switch {
	case resp.Error == nil:
		return http.StatusOK
	case resp.Error.InOptions || resp.Error.Kind == "parse":
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}
