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

//go:generate mockgen -source=driver.go -destination=mock/interfaces.go -package=mock

package web

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"k8s.io/utils/ptr"
)

// Page is the subset of a live browser page the page objects need.
type Page interface {
	// Locator returns a lazy handle, nothing is resolved until it is used.
	Locator(selector string) Locator
	// Goto navigates and waits for the DOM to load.
	Goto(url string) error
	// WaitForSelector blocks until an element matching selector is visible.
	WaitForSelector(selector string) error
	// Screenshot writes a full page PNG to path.
	Screenshot(path string) error
	URL() string
}

// Locator is a lazy element reference, re-resolved against the live page every
// time an operation is invoked.
//
// State queries never fail: anything that cannot be resolved is reported as
// absent.  Mutations wait for the element up to the action timeout and return
// the driver's error.
type Locator interface {
	IsVisible() bool
	Count() int
	TextContent() string
	Click() error
	Fill(value string) error
	Nth(index int) Locator
	Filter(hasText string) Locator
	Locator(selector string) Locator
}

type playwrightPage struct {
	page playwright.Page
}

// NewPage wraps a playwright page.
func NewPage(page playwright.Page) Page {
	return &playwrightPage{
		page: page,
	}
}

func (p *playwrightPage) Locator(selector string) Locator {
	return &playwrightLocator{
		locator:     p.page.Locator(selector),
		description: selector,
	}
}

func (p *playwrightPage) Goto(url string) error {
	if _, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}

	return nil
}

func (p *playwrightPage) WaitForSelector(selector string) error {
	if err := p.page.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}); err != nil {
		return fmt.Errorf("waiting for %s to be visible: %w", selector, err)
	}

	return nil
}

func (p *playwrightPage) Screenshot(path string) error {
	if _, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     ptr.To(path),
		FullPage: ptr.To(true),
	}); err != nil {
		return fmt.Errorf("capturing screenshot to %s: %w", path, err)
	}

	return nil
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

type playwrightLocator struct {
	locator playwright.Locator
	// description is used in errors, playwright's own are not very readable.
	description string
}

func (l *playwrightLocator) derive(locator playwright.Locator, description string) Locator {
	return &playwrightLocator{
		locator:     locator,
		description: l.description + " " + description,
	}
}

func (l *playwrightLocator) IsVisible() bool {
	visible, err := l.locator.IsVisible()
	if err != nil {
		return false
	}

	return visible
}

func (l *playwrightLocator) Count() int {
	count, err := l.locator.Count()
	if err != nil {
		return 0
	}

	return count
}

func (l *playwrightLocator) TextContent() string {
	// TextContent waits for an element to appear, so check first.
	if l.Count() == 0 {
		return ""
	}

	text, err := l.locator.First().TextContent()
	if err != nil {
		return ""
	}

	return text
}

func (l *playwrightLocator) Click() error {
	if err := l.locator.Click(); err != nil {
		return fmt.Errorf("clicking %s: %w", l.description, err)
	}

	return nil
}

func (l *playwrightLocator) Fill(value string) error {
	if err := l.locator.Fill(value); err != nil {
		return fmt.Errorf("filling %s: %w", l.description, err)
	}

	return nil
}

func (l *playwrightLocator) Nth(index int) Locator {
	return l.derive(l.locator.Nth(index), fmt.Sprintf(">> nth=%d", index))
}

func (l *playwrightLocator) Filter(hasText string) Locator {
	return l.derive(l.locator.Filter(playwright.LocatorFilterOptions{
		HasText: hasText,
	}), fmt.Sprintf(">> has-text=%q", hasText))
}

func (l *playwrightLocator) Locator(selector string) Locator {
	return l.derive(l.locator.Locator(selector), selector)
}
