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

package pages

import (
	"github.com/unikorn-cloud/demo-qa/test/web"
)

// CheckoutPage covers both checkout steps, the information form and the
// order overview.
type CheckoutPage struct {
	page web.Page
}

func NewCheckoutPage(page web.Page) *CheckoutPage {
	return &CheckoutPage{
		page: page,
	}
}

func (p *CheckoutPage) IsInformationPageLoaded() bool {
	return p.page.Locator(SelectorFirstName).IsVisible()
}

func (p *CheckoutPage) IsOverviewPageLoaded() bool {
	return p.page.Locator(SelectorSummaryInfo).IsVisible()
}

// FillInformation completes the customer details form.
func (p *CheckoutPage) FillInformation(firstName, lastName, postalCode string) error {
	fields := []struct {
		selector string
		value    string
	}{
		{SelectorFirstName, firstName},
		{SelectorLastName, lastName},
		{SelectorPostalCode, postalCode},
	}

	for _, field := range fields {
		if err := p.page.Locator(field.selector).Fill(field.value); err != nil {
			return err
		}
	}

	return nil
}

func (p *CheckoutPage) ClickContinue() error {
	return p.page.Locator(SelectorContinue).Click()
}

// ClickCancel leaves checkout.  Both steps share the same cancel button.
func (p *CheckoutPage) ClickCancel() error {
	return p.page.Locator(SelectorCancel).Click()
}

func (p *CheckoutPage) ClickFinish() error {
	return p.page.Locator(SelectorFinish).Click()
}

// SummaryTotal returns the order total label, e.g. "Total: $32.39", or "" when
// the overview is not shown.
func (p *CheckoutPage) SummaryTotal() string {
	label := p.page.Locator(SelectorSummaryTotal)

	if !label.IsVisible() {
		return ""
	}

	return label.TextContent()
}

func (p *CheckoutPage) IsSummaryVisible() bool {
	return p.page.Locator(SelectorSummaryInfo).IsVisible()
}
