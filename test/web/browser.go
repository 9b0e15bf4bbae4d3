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
	"sync"

	"github.com/onsi/ginkgo/v2"
	"github.com/playwright-community/playwright-go"
	"k8s.io/utils/ptr"
)

const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

var (
	ErrBrowserLaunch  = errors.New("browser launch failed")
	ErrUnknownBrowser = errors.New("unknown browser")
)

// Browser is the run scoped automation driver and browser process.  It is
// read only after launch and safe to share between specs.
type Browser struct {
	config  *Config
	pw      *playwright.Playwright
	browser playwright.Browser

	closeOnce sync.Once
	closeErr  error
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case BrowserChromium:
		return pw.Chromium, nil
	case BrowserFirefox:
		return pw.Firefox, nil
	case BrowserWebKit:
		return pw.WebKit, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBrowser, name)
}

// LaunchBrowser starts the automation driver and the configured browser.
func LaunchBrowser(config *Config) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: starting playwright: %w", ErrBrowserLaunch, err)
	}

	launcher, err := browserType(pw, config.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	browser, err := launcher.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: ptr.To(config.Headless),
		SlowMo:   ptr.To(float64(config.SlowMo.Milliseconds())),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("%w: launching %s: %w", ErrBrowserLaunch, config.Browser, err)
	}

	ginkgo.GinkgoWriter.Printf("Launched %s (headless=%t, version %s)\n", config.Browser, config.Headless, browser.Version())

	return &Browser{
		config:  config,
		pw:      pw,
		browser: browser,
	}, nil
}

// Close shuts down the browser then the driver.  It is safe to call more than
// once.
func (b *Browser) Close() error {
	b.closeOnce.Do(func() {
		b.closeErr = errors.Join(b.browser.Close(), b.pw.Stop())

		ginkgo.GinkgoWriter.Printf("Closed %s\n", b.config.Browser)
	})

	return b.closeErr
}

// PageSession is a test scoped browser context with a single page.  Contexts
// share nothing, so cookies and storage never leak between specs.
type PageSession struct {
	Page

	context playwright.BrowserContext
	page    playwright.Page

	closeOnce sync.Once
	closeErr  error
}

// NewPageSession creates an isolated context and page.
func (b *Browser) NewPageSession() (*PageSession, error) {
	context, err := b.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  b.config.ViewportWidth,
			Height: b.config.ViewportHeight,
		},
		IgnoreHttpsErrors: ptr.To(b.config.IgnoreHTTPSErrors),
	})
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}

	context.SetDefaultTimeout(float64(b.config.ActionTimeout.Milliseconds()))

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		return nil, fmt.Errorf("creating page: %w", err)
	}

	return &PageSession{
		Page:    NewPage(page),
		context: context,
		page:    page,
	}, nil
}

// Close closes the page then its context.  It is safe to call more than once.
func (s *PageSession) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = errors.Join(s.page.Close(), s.context.Close())
	})

	return s.closeErr
}
