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

// Package pages holds page objects for the demo shop.  Page objects keep no
// element handles: every method resolves its locators against the live page
// when called, so constructing one never touches the browser.
package pages

import (
	"fmt"
	"strings"

	"github.com/unikorn-cloud/demo-qa/test/web"
)

type LoginPage struct {
	page web.Page
}

func NewLoginPage(page web.Page) *LoginPage {
	return &LoginPage{
		page: page,
	}
}

// Navigate opens the login page at the root of baseURL.
func (p *LoginPage) Navigate(baseURL string) error {
	return p.page.Goto(strings.TrimRight(baseURL, "/") + "/")
}

func (p *LoginPage) FillUsername(username string) error {
	return p.page.Locator(SelectorUsername).Fill(username)
}

func (p *LoginPage) FillPassword(password string) error {
	return p.page.Locator(SelectorPassword).Fill(password)
}

func (p *LoginPage) ClickLogin() error {
	return p.page.Locator(SelectorLoginButton).Click()
}

// Login fills in the credentials and submits the form.  It does not check the
// outcome, use InventoryPage.IsLoaded or IsErrorVisible for that.
func (p *LoginPage) Login(username, password string) error {
	if err := p.FillUsername(username); err != nil {
		return err
	}

	if err := p.FillPassword(password); err != nil {
		return err
	}

	if err := p.ClickLogin(); err != nil {
		return fmt.Errorf("submitting login for %s: %w", username, err)
	}

	return nil
}

// ErrorMessage returns the login error, or "" when there is none.
func (p *LoginPage) ErrorMessage() string {
	return p.page.Locator(SelectorLoginError).TextContent()
}

func (p *LoginPage) IsErrorVisible() bool {
	return p.page.Locator(SelectorLoginError).IsVisible()
}

func (p *LoginPage) IsLoginButtonVisible() bool {
	return p.page.Locator(SelectorLoginButton).IsVisible()
}
