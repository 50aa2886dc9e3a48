/*
 * config.go, part of gobalance.
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

package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type Config struct {
	Env       Environment
	LogLevel  string
	LogFormat string //"console" or "json"
	OmitOnes  bool
	Arrow     string
	Strict    bool
	Workers   int
	GzipLevel int
	Addr      string
}

// Load reads the given .env files (".env" if none is given; missing files are fine)
// and then the GOBALANCE_* environment variables. Variables already set in the
// environment take precedence over the files.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...)

	env := parseEnvironment(getEnv("GOBALANCE_ENV", "development"))
	format := "console"
	level := "debug"
	if env == Production {
		format = "json"
		level = "info"
	}
	return &Config{
		Env:       env,
		LogLevel:  getEnv("GOBALANCE_LOG_LEVEL", level),
		LogFormat: getEnv("GOBALANCE_LOG_FORMAT", format),
		OmitOnes:  getEnvBool("GOBALANCE_OMIT_ONES", false),
		Arrow:     getEnv("GOBALANCE_ARROW", "→"),
		Strict:    getEnvBool("GOBALANCE_STRICT", false),
		Workers:   getEnvInt("GOBALANCE_WORKERS", runtime.NumCPU()),
		GzipLevel: getEnvInt("GOBALANCE_GZIP_LEVEL", -1),
		Addr:      getEnv("GOBALANCE_ADDR", ":8080"),
	}
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("GOBALANCE_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("GOBALANCE_LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if strings.TrimSpace(c.Arrow) == "" {
		return fmt.Errorf("GOBALANCE_ARROW can't be blank")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
