/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package env holds the environment and .env helpers shared by the API and
// browser test configurations.
package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPaths are the .env locations searched by LoadFile, relative to the
// working directory of a test binary.
//
//nolint:gochecknoglobals
var DefaultPaths = []string{
	"../../.env", // From test/{api,web}/suites directory
	"../.env",    // From test/{api,web} directory
	".env",
}

// LoadFile loads the first .env file found in paths.  Variables already set in
// the process environment take precedence over the file.
// It returns the absolute path of the file loaded, or the empty string.
func LoadFile(paths ...string) string {
	if len(paths) == 0 {
		paths = DefaultPaths
	}

	var envPath string

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return ""
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
		return ""
	}

	return envPath
}

// String gets a string from environment variable or returns default.
func String(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// Duration gets a duration from environment variable or returns default.
func Duration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// Bool gets a boolean from environment variable or returns default.
func Bool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// Int gets an integer from environment variable or returns default.
func Int(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}
