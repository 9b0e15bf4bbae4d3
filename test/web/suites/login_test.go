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
)

var _ = Describe("Login", func() {
	Context("When logging in with valid credentials", func() {
		It("should show the inventory", func() {
			loginAsStandardUser()
		})
	})

	Context("When logging in with invalid credentials", func() {
		It("should show an error message", func() {
			Expect(loginPage.Navigate(config.BaseURL)).To(Succeed())
			Expect(loginPage.Login("invalid_user", "wrong_password")).To(Succeed())

			Eventually(loginPage.IsErrorVisible).Should(BeTrue(), "Error message should be visible for invalid login")
			Expect(loginPage.ErrorMessage()).To(Or(
				ContainSubstring("Epic sadface"),
				ContainSubstring("Username and password do not match"),
			))
			Expect(inventoryPage.IsLoaded()).To(BeFalse())
		})
	})

	Context("When logging out", func() {
		It("should return to the login page", func() {
			loginAsStandardUser()

			Expect(inventoryPage.Logout()).To(Succeed())

			Eventually(loginPage.IsLoginButtonVisible).Should(BeTrue(), "Login button should be visible after logout")
		})
	})
})
