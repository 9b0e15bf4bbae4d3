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

func postBody() map[string]interface{} {
	return map[string]interface{}{
		"id":     matchers.Integer(1),
		"userId": matchers.Integer(1),
		"title":  matchers.String("sunt aut facere"),
		"body":   matchers.String("quia et suscipit"),
	}
}

var _ = Describe("Posts Contract", func() {
	var (
		pact *consumer.V4HTTPMockProvider
		ctx  context.Context
	)

	BeforeEach(func() {
		pact = newPact()
		ctx = context.Background()
	})

	Describe("ListPosts", func() {
		Context("when posts exist for a user", func() {
			It("returns the user's posts", func() {
				pact.AddInteraction().
					GivenWithParameter(models.ProviderState{
						Name: "user has posts",
						Parameters: map[string]interface{}{
							"userId": 1,
						},
					}).
					UponReceiving("a request for posts filtered by user").
					WithRequest("GET", "/posts", func(b *consumer.V4RequestBuilder) {
						b.Query("userId", matchers.String("1"))
					}).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(matchers.EachLike(postBody(), 1))
					})

				test := func(config consumer.MockServerConfig) error {
					client, closeSession, err := createClient(config)
					if err != nil {
						return err
					}

					defer closeSession()

					resp, err := client.ListPosts(ctx, api.WithQuery(map[string][]string{"userId": {"1"}}))
					if err != nil {
						return fmt.Errorf("listing posts: %w", err)
					}

					var posts []api.Post
					if err := resp.JSON(&posts); err != nil {
						return err
					}

					Expect(resp.StatusCode).To(Equal(http.StatusOK))
					Expect(posts).NotTo(BeEmpty())
					Expect(posts[0].UserID).To(Equal(1))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("GetPost", func() {
		Context("when the post exists", func() {
			It("returns the post", func() {
				pact.AddInteraction().
					Given("post 1 exists").
					UponReceiving("a request for post 1").
					WithRequest("GET", "/posts/1").
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(postBody())
					})

				test := func(config consumer.MockServerConfig) error {
					client, closeSession, err := createClient(config)
					if err != nil {
						return err
					}

					defer closeSession()

					resp, err := client.GetPost(ctx, 1)
					if err != nil {
						return fmt.Errorf("getting post: %w", err)
					}

					Expect(resp.StatusCode).To(Equal(http.StatusOK))
					Expect(api.ValidatePostSchema(resp.Body, true)).To(Succeed())

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})

		Context("when the post does not exist", func() {
			It("returns not found with an empty object", func() {
				pact.AddInteraction().
					Given("post 999 does not exist").
					UponReceiving("a request for a missing post").
					WithRequest("GET", "/posts/999").
					WillRespondWith(404, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{})
					})

				test := func(config consumer.MockServerConfig) error {
					client, closeSession, err := createClient(config)
					if err != nil {
						return err
					}

					defer closeSession()

					resp, err := client.GetPost(ctx, 999)
					if err != nil {
						return fmt.Errorf("getting post: %w", err)
					}

					// The client never interprets status codes.
					Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("CreatePost", func() {
		Context("when the payload is valid", func() {
			It("returns the created post with an ID", func() {
				pact.AddInteraction().
					UponReceiving("a request to create a post").
					WithRequest("POST", "/posts", func(b *consumer.V4RequestBuilder) {
						b.JSONBody(map[string]interface{}{
							"userId": matchers.Integer(1),
							"title":  matchers.String("contract title"),
							"body":   matchers.String("contract body"),
						})
					}).
					WillRespondWith(201, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]interface{}{
							"id":     matchers.Integer(101),
							"userId": matchers.Integer(1),
							"title":  matchers.String("contract title"),
							"body":   matchers.String("contract body"),
						})
					})

				test := func(config consumer.MockServerConfig) error {
					client, closeSession, err := createClient(config)
					if err != nil {
						return err
					}

					defer closeSession()

					resp, err := client.CreatePost(ctx, api.Post{
						UserID: 1,
						Title:  "contract title",
						Body:   "contract body",
					})
					if err != nil {
						return fmt.Errorf("creating post: %w", err)
					}

					var post api.Post
					if err := resp.JSON(&post); err != nil {
						return err
					}

					Expect(resp.StatusCode).To(Equal(http.StatusCreated))
					Expect(post.ID).To(BeNumerically(">", 0))
					Expect(post.Title).To(Equal("contract title"))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("DeletePost", func() {
		It("returns an empty object", func() {
			pact.AddInteraction().
				Given("post 1 exists").
				UponReceiving("a request to delete post 1").
				WithRequest("DELETE", "/posts/1").
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]interface{}{})
				})

			test := func(config consumer.MockServerConfig) error {
				client, closeSession, err := createClient(config)
				if err != nil {
					return err
				}

				defer closeSession()

				resp, err := client.DeletePost(ctx, 1)
				if err != nil {
					return fmt.Errorf("deleting post: %w", err)
				}

				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})
})
