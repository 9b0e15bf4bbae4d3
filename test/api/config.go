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

package api

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/unikorn-cloud/demo-qa/test/internal/env"
)

const (
	// DefaultBaseURL is the public demo API exercised by the suites.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultTimeout bounds every request that does not specify its own timeout.
	DefaultTimeout = 10 * time.Second

	// FakeBaseURL selects the in-process fake API instead of a remote service.
	FakeBaseURL = "fake"
)

var ErrMissingConfiguration = errors.New("missing required configuration")

type TestConfig struct {
	BaseURL          string
	RequestTimeout   time.Duration
	SkipIntegration  bool
	ValidateContract bool
	LogRequests      bool
	LogResponses     bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing or invalid.
func LoadTestConfig() (*TestConfig, error) {
	env.LoadFile()

	config := &TestConfig{
		BaseURL:          env.String("API_BASE_URL", DefaultBaseURL),
		RequestTimeout:   env.Duration("REQUEST_TIMEOUT", DefaultTimeout),
		SkipIntegration:  env.Bool("SKIP_INTEGRATION", false),
		ValidateContract: env.Bool("VALIDATE_CONTRACT", true),
		LogRequests:      env.Bool("LOG_REQUESTS", false),
		LogResponses:     env.Bool("LOG_RESPONSES", false),
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// UsesFakeAPI reports whether the suites should start the in-process fake API
// and point BaseURL at it.
func (c *TestConfig) UsesFakeAPI() bool {
	return strings.EqualFold(c.BaseURL, FakeBaseURL)
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var problems []string

	if strings.TrimSpace(config.BaseURL) == "" {
		problems = append(problems, "API_BASE_URL")
	} else if !config.UsesFakeAPI() {
		if u, err := url.Parse(config.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("API_BASE_URL (%q is not an absolute URL)", config.BaseURL))
		}
	}

	if config.RequestTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("REQUEST_TIMEOUT (%s is not positive)", config.RequestTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(problems, ", "))
	}

	return nil
}
