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

type CartPage struct {
	page web.Page
}

func NewCartPage(page web.Page) *CartPage {
	return &CartPage{
		page: page,
	}
}

func (p *CartPage) IsLoaded() bool {
	return p.page.Locator(SelectorCheckout).IsVisible()
}

func (p *CartPage) ItemCount() int {
	return p.page.Locator(SelectorCartItem).Count()
}

func (p *CartPage) ClickCheckout() error {
	return p.page.Locator(SelectorCheckout).Click()
}

func (p *CartPage) ClickContinueShopping() error {
	return p.page.Locator(SelectorContinueShop).Click()
}
