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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/demo-qa/test/web/pages"
)

var _ = Describe("Cart", func() {
	BeforeEach(func() {
		loginAsStandardUser()
	})

	Context("When adding an item by position", func() {
		It("should increase the cart count by one", func() {
			initial := inventoryPage.CartCount()

			Expect(inventoryPage.AddItemToCart(pages.AddItemOptions{Index: 0})).To(Succeed())

			Eventually(inventoryPage.CartCount).Should(Equal(initial+1),
				"Cart count should increase from %d to %d", initial, initial+1)
		})
	})

	Context("When adding an item by name", func() {
		It("should show the item in the cart", func() {
			Expect(inventoryPage.AddItemToCart(pages.AddItemOptions{Name: "Sauce Labs Backpack"})).To(Succeed())
			Eventually(inventoryPage.CartCount).Should(Equal(1))

			Expect(inventoryPage.ClickCartIcon()).To(Succeed())

			Eventually(cartPage.IsLoaded).Should(BeTrue(), "Cart page should be loaded")
			Expect(cartPage.ItemCount()).To(Equal(1))
		})
	})

	Context("When returning from the cart", func() {
		It("should show the inventory again", func() {
			Expect(inventoryPage.ClickCartIcon()).To(Succeed())
			Eventually(cartPage.IsLoaded).Should(BeTrue())

			Expect(cartPage.ClickContinueShopping()).To(Succeed())

			Eventually(inventoryPage.IsLoaded).Should(BeTrue())
			Expect(cartPage.IsLoaded()).To(BeFalse())
		})
	})
})
