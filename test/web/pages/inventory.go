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
	"strconv"
	"strings"

	"github.com/unikorn-cloud/demo-qa/test/web"
)

// AddItemOptions selects a product.  Name takes precedence, otherwise the
// zero-based Index is used.
type AddItemOptions struct {
	Name  string
	Index int
}

type InventoryPage struct {
	page web.Page
}

func NewInventoryPage(page web.Page) *InventoryPage {
	return &InventoryPage{
		page: page,
	}
}

// IsLoaded reports whether the cart link is shown, which only happens once
// logged in.
func (p *InventoryPage) IsLoaded() bool {
	return p.page.Locator(SelectorCartLink).IsVisible()
}

// CartCount returns the number on the cart badge.  The badge is hidden when
// the cart is empty, and anything unreadable counts as empty too.
func (p *InventoryPage) CartCount() int {
	badge := p.page.Locator(SelectorCartBadge)

	if !badge.IsVisible() {
		return 0
	}

	count, err := strconv.Atoi(strings.TrimSpace(badge.TextContent()))
	if err != nil {
		return 0
	}

	return count
}

// AddItemToCart clicks the product's "Add to cart" button.  A product that
// cannot be found surfaces as the click timing out.
func (p *InventoryPage) AddItemToCart(options AddItemOptions) error {
	items := p.page.Locator(SelectorInventoryItem)

	var item web.Locator

	if options.Name != "" {
		item = items.Filter(options.Name)
	} else {
		item = items.Nth(options.Index)
	}

	return item.Locator(selectorButton).Filter(addToCartText).Click()
}

func (p *InventoryPage) ClickCartIcon() error {
	return p.page.Locator(SelectorCartLink).Click()
}

// Logout opens the side menu and clicks the logout link once the menu's slide
// in animation has made it visible.
func (p *InventoryPage) Logout() error {
	if err := p.page.Locator(SelectorMenuButton).Click(); err != nil {
		return err
	}

	if err := p.page.WaitForSelector(SelectorLogoutLink); err != nil {
		return err
	}

	return p.page.Locator(SelectorLogoutLink).Click()
}
