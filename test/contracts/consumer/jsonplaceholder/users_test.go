/*
Copyright 2025 the Unikorn Authors.
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

package jsonplaceholder_test

import (
	"context"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/pact-foundation/pact-go/v2/models"

	"github.com/unikorn-cloud/demo-qa/test/api"
)

var _ = Describe("Users Contract", func() {
	var (
		pact *consumer.V4HTTPMockProvider
		ctx  context.Context
	)

	BeforeEach(func() {
		pact = newPact()
		ctx = context.Background()
	})

	Describe("GetUser", func() {
		Context("when the user exists", func() {
			It("returns a user satisfying the user contract", func() {
				userID := 2

				pact.AddInteraction().
					GivenWithParameter(models.ProviderState{
						Name: "user exists",
						Parameters: map[string]interface{}{
							"userId": userID,
						},
					}).
					UponReceiving("a request for user 2").
					WithRequest("GET", fmt.Sprintf("/users/%d", userID)).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"id":       matchers.Integer(userID),
							"name":     matchers.String("Ervin Howell"),
							"username": matchers.String("Antonette"),
							"email":    matchers.String("Shanna@melissa.tv"),
						})
					})

				test := func(config consumer.MockServerConfig) error {
					client, closeSession, err := createClient(config)
					if err != nil {
						return err
					}

					defer closeSession()

					resp, err := client.GetUser(ctx, userID)
					if err != nil {
						return fmt.Errorf("getting user: %w", err)
					}

					var user api.User
					if err := resp.JSON(&user); err != nil {
						return err
					}

					Expect(resp.StatusCode).To(Equal(http.StatusOK))
					Expect(api.ValidateUserSchema(resp.Body, true)).To(Succeed())
					Expect(user.ID).To(Equal(userID))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("ListUsers", func() {
		It("returns a list of users", func() {
			pact.AddInteraction().
				Given("users exist").
				UponReceiving("a request for all users").
				WithRequest("GET", "/users").
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(matchers.EachLike(map[string]interface{}{
						"id":       matchers.Integer(1),
						"name":     matchers.String("Leanne Graham"),
						"username": matchers.String("Bret"),
						"email":    matchers.String("Sincere@april.biz"),
					}, 1))
				})

			test := func(config consumer.MockServerConfig) error {
				client, closeSession, err := createClient(config)
				if err != nil {
					return err
				}

				defer closeSession()

				resp, err := client.ListUsers(ctx)
				if err != nil {
					return fmt.Errorf("listing users: %w", err)
				}

				var users []api.User
				if err := resp.JSON(&users); err != nil {
					return err
				}

				Expect(users).NotTo(BeEmpty())
				Expect(users[0].Email).NotTo(BeEmpty())

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("UpdateUser", func() {
		It("returns the replaced user with its ID", func() {
			pact.AddInteraction().
				Given("user 1 exists").
				UponReceiving("a request to replace user 1").
				WithRequest("PUT", "/users/1", func(b *consumer.V4RequestBuilder) {
					b.JSONBody(map[string]interface{}{
						"name":     matchers.String("Updated Name"),
						"username": matchers.String("updated"),
						"email":    matchers.String("updated@example.com"),
					})
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{
						"id":       matchers.Integer(1),
						"name":     matchers.String("Updated Name"),
						"username": matchers.String("updated"),
						"email":    matchers.String("updated@example.com"),
					})
				})

			test := func(config consumer.MockServerConfig) error {
				client, closeSession, err := createClient(config)
				if err != nil {
					return err
				}

				defer closeSession()

				resp, err := client.UpdateUser(ctx, 1, api.User{
					Name:     "Updated Name",
					Username: "updated",
					Email:    "updated@example.com",
				})
				if err != nil {
					return fmt.Errorf("updating user: %w", err)
				}

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Get("id").Int()).To(BeNumerically("==", 1))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})
})
