/*
Copyright 2024-2025 the Unikorn Authors.
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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/demo-qa/test/api"
)

var _ = Describe("Users", func() {
	Context("When listing users", func() {
		It("should return users that satisfy the user contract", func() {
			resp, err := client.ListUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)
			api.ExpectContract(ctx, validator, resp)

			users := api.DecodeList(resp)
			Expect(users).NotTo(BeEmpty())

			for _, user := range users {
				Expect(api.ValidateUserSchema(user, true)).To(Succeed())
			}
		})
	})

	Context("When retrieving a specific user", func() {
		DescribeTable("should return the user with the requested ID",
			func(userID int) {
				resp, err := client.GetUser(ctx, userID)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.ExpectContract(ctx, validator, resp)

				user := api.DecodeObject(resp)
				Expect(api.ValidateUserSchema(user, true)).To(Succeed())
				Expect(resp.Get("id").Int()).To(BeNumerically("==", userID))
			},
			Entry("user 1", 1),
			Entry("user 2", 2),
			Entry("user 3", 3),
		)

		It("should return not found for a user that does not exist", func() {
			resp, err := client.GetUser(ctx, 999)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusNotFound)
			api.ExpectContract(ctx, validator, resp)
		})
	})

	Context("When creating a user", func() {
		It("should return the created user with an ID", func() {
			payload := api.NewUserPayload().Build()

			user, userID := api.CreateUserWithCleanup(client, ctx, payload)

			Expect(userID).To(BeNumerically(">", 0))
			Expect(api.ValidateUserSchema(user, true)).To(Succeed())
			api.VerifySubmittedFields(user, payload, "name", "username", "email")
		})
	})

	Context("When updating a user", func() {
		It("should replace the user and keep its ID", func() {
			payload := api.NewUserPayload().WithName("Updated Name").Build()

			resp, err := client.UpdateUser(ctx, 1, payload)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)
			api.ExpectContract(ctx, validator, resp)

			user := api.DecodeObject(resp)
			Expect(api.ValidateUserSchema(user, true)).To(Succeed())
			Expect(resp.Get("id").Int()).To(BeNumerically("==", 1))
			Expect(resp.Get("name").String()).To(Equal("Updated Name"))
		})
	})
})
