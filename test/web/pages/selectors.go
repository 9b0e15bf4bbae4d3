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

// Selectors for the demo shop's DOM.
const (
	SelectorUsername      = "#user-name"
	SelectorPassword      = "#password"
	SelectorLoginButton   = "#login-button"
	SelectorLoginError    = "h3[data-test='error']"
	SelectorCartLink      = ".shopping_cart_link"
	SelectorCartBadge     = ".shopping_cart_badge"
	SelectorMenuButton    = "#react-burger-menu-btn"
	SelectorLogoutLink    = "#logout_sidebar_link"
	SelectorInventoryItem = ".inventory_item"
	SelectorCartItem      = ".cart_item"
	SelectorCheckout      = "#checkout"
	SelectorContinueShop  = "#continue-shopping"
	SelectorFirstName     = "#first-name"
	SelectorLastName      = "#last-name"
	SelectorPostalCode    = "#postal-code"
	SelectorContinue      = "#continue"
	SelectorCancel        = "#cancel"
	SelectorSummaryInfo   = ".summary_info"
	SelectorSummaryTotal  = ".summary_total_label"
	SelectorFinish        = "#finish"

	// selectorButton and addToCartText pick an item's add button.
	selectorButton = "button"
	addToCartText  = "Add to cart"
)
