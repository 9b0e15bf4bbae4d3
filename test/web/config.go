/*
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

package web

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/unikorn-cloud/demo-qa/test/internal/env"
)

const (
	// DefaultBaseURL is the public demo shop exercised by the suites.
	DefaultBaseURL = "https://www.saucedemo.com"

	// DefaultActionTimeout bounds clicks, fills and waits.
	DefaultActionTimeout = 30 * time.Second

	// DefaultScreenshotDir is where failure screenshots are written.
	DefaultScreenshotDir = "reports/screenshots"

	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080
)

var ErrMissingConfiguration = errors.New("missing required configuration")

// Config configures the browser, the shop under test and its credentials.
type Config struct {
	BaseURL           string
	Browser           string
	Headless          bool
	SlowMo            time.Duration
	ViewportWidth     int
	ViewportHeight    int
	IgnoreHTTPSErrors bool
	ActionTimeout     time.Duration
	ScreenshotDir     string
	Username          string
	Password          string
	SkipIntegration   bool
}

// LoadConfig loads configuration from environment variables and .env files.
func LoadConfig() (*Config, error) {
	env.LoadFile()

	config := &Config{
		BaseURL:           strings.TrimRight(env.String("WEB_BASE_URL", DefaultBaseURL), "/"),
		Browser:           strings.ToLower(env.String("BROWSER", BrowserChromium)),
		Headless:          env.Bool("HEADLESS", true),
		SlowMo:            env.Duration("SLOW_MO", 0),
		ViewportWidth:     env.Int("VIEWPORT_WIDTH", DefaultViewportWidth),
		ViewportHeight:    env.Int("VIEWPORT_HEIGHT", DefaultViewportHeight),
		IgnoreHTTPSErrors: env.Bool("IGNORE_HTTPS_ERRORS", true),
		ActionTimeout:     env.Duration("ACTION_TIMEOUT", DefaultActionTimeout),
		ScreenshotDir:     env.String("SCREENSHOT_DIR", DefaultScreenshotDir),
		Username:          env.String("STANDARD_USER", "standard_user"),
		Password:          env.String("STANDARD_PASSWORD", "secret_sauce"),
		SkipIntegration:   env.Bool("SKIP_INTEGRATION", false),
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validateRequiredFields(config *Config) error {
	var problems []string

	if u, err := url.Parse(config.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("WEB_BASE_URL (%q is not an absolute URL)", config.BaseURL))
	}

	switch config.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		problems = append(problems, fmt.Sprintf("BROWSER (%q is not one of chromium, firefox, webkit)", config.Browser))
	}

	if config.ViewportWidth <= 0 || config.ViewportHeight <= 0 {
		problems = append(problems, "VIEWPORT_WIDTH/VIEWPORT_HEIGHT")
	}

	if config.ActionTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("ACTION_TIMEOUT (%s is not positive)", config.ActionTimeout))
	}

	if config.Username == "" || config.Password == "" {
		problems = append(problems, "STANDARD_USER/STANDARD_PASSWORD")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(problems, ", "))
	}

	return nil
}
