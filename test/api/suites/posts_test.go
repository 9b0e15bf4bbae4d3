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
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/demo-qa/test/api"
)

var _ = Describe("Posts", func() {
	Context("When listing posts", func() {
		It("should return a non-empty array of valid posts", func() {
			resp, err := client.ListPosts(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)
			api.ExpectContract(ctx, validator, resp)

			posts := api.DecodeList(resp)
			Expect(posts).NotTo(BeEmpty())

			for _, post := range posts {
				Expect(api.ValidatePostSchema(post, true)).To(Succeed())
			}
		})

		It("should filter posts by user", func() {
			resp, err := client.ListPosts(ctx, api.WithQuery(url.Values{"userId": {"1"}}))
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			posts := api.DecodeList(resp)
			Expect(posts).NotTo(BeEmpty())

			for _, post := range posts {
				Expect(post).To(HaveKeyWithValue("userId", BeNumerically("==", 1)))
			}
		})
	})

	Context("When retrieving a specific post", func() {
		DescribeTable("should return the post with the requested ID",
			func(postID int) {
				resp, err := client.GetPost(ctx, postID)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.ExpectContract(ctx, validator, resp)

				post := api.DecodeObject(resp)
				Expect(api.ValidatePostSchema(post, true)).To(Succeed())
				Expect(resp.Get("id").Int()).To(BeNumerically("==", postID))
			},
			Entry("first post", 1),
			Entry("second post", 2),
		)

		It("should return not found for a post that does not exist", func() {
			resp, err := client.GetPost(ctx, 999)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusNotFound)
			api.ExpectContract(ctx, validator, resp)
		})
	})

	Context("When creating a post", func() {
		It("should echo the submitted fields with a new ID", func() {
			payload := api.NewPostPayload(1).Build()

			resp, err := client.CreatePost(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusCreated)
			api.ExpectContract(ctx, validator, resp)

			post := api.DecodeObject(resp)
			Expect(api.ValidatePostSchema(post, true)).To(Succeed())
			api.VerifySubmittedFields(post, payload, "title", "body")
			Expect(resp.Get("userId").Int()).To(BeNumerically("==", 1))
		})
	})

	Context("When updating a post", func() {
		It("should replace the post and keep its ID", func() {
			payload := api.NewPostPayload(1).WithTitle("updated title").Build()

			resp, err := client.UpdatePost(ctx, 1, payload)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)
			api.ExpectContract(ctx, validator, resp)

			Expect(resp.Get("id").Int()).To(BeNumerically("==", 1))
			Expect(resp.Get("title").String()).To(Equal("updated title"))
		})
	})

	Context("When deleting a post", func() {
		It("should succeed with an empty body", func() {
			resp, err := client.DeletePost(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)
			api.ExpectContract(ctx, validator, resp)

			Expect(api.DecodeObject(resp)).To(BeEmpty())
		})
	})
})
