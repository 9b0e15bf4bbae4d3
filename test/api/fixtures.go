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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/demo-qa/test/api/fakeapi"
)

// StartFakeAPIIfRequested points config at an in-process fake API when the
// configuration asks for one.  The server lives until the enclosing node's
// cleanup runs, so call it from BeforeSuite for a run scoped server.
func StartFakeAPIIfRequested(config *TestConfig) {
	if !config.UsesFakeAPI() {
		return
	}

	server := httptest.NewServer(fakeapi.New())
	config.BaseURL = server.URL

	GinkgoWriter.Printf("Started fake API at %s\n", server.URL)

	DeferCleanup(server.Close)
}

// NewSessionWithCleanup acquires a test scoped session that is closed when the
// spec finishes, even if it fails.
func NewSessionWithCleanup(config *TestConfig) *Session {
	session, err := AcquireSession(config.BaseURL, DefaultHeaders())
	Expect(err).NotTo(HaveOccurred(), "Should acquire a session for %s", config.BaseURL)

	DeferCleanup(session.Close)

	return session
}

// NewAPIClientWithCleanup returns a client backed by a test scoped session.
func NewAPIClientWithCleanup(config *TestConfig) *APIClient {
	return NewAPIClientWithConfig(config, NewSessionWithCleanup(config))
}

// ExpectStatus asserts the response status, reporting the body on mismatch.
func ExpectStatus(resp *Response, expected int) {
	GinkgoHelper()

	Expect(resp).NotTo(BeNil())
	Expect(resp.StatusCode).To(Equal(expected), "Expected %d, got %d (trace ID: %s), body: %s", expected, resp.StatusCode, resp.TraceID, resp.String())
}

// ExpectContract asserts the response honours the OpenAPI contract.  A nil
// validator disables the check.
func ExpectContract(ctx context.Context, validator *ContractValidator, resp *Response) {
	GinkgoHelper()

	if validator == nil {
		return
	}

	Expect(validator.ValidateResponse(ctx, resp)).To(Succeed())
}

// DecodeObject decodes a JSON object response.
func DecodeObject(resp *Response) map[string]interface{} {
	GinkgoHelper()

	var object map[string]interface{}
	Expect(resp.JSON(&object)).To(Succeed(), "Response should be a JSON object, got: %s", resp.String())

	return object
}

// DecodeList decodes a JSON array response.
func DecodeList(resp *Response) []interface{} {
	GinkgoHelper()

	var list []interface{}
	Expect(resp.JSON(&list)).To(Succeed(), "Response should be a JSON array, got: %s", resp.String())

	return list
}

// CreateUserWithCleanup creates a user, asserts it was created and schedules
// its deletion.  The demo service does not persist writes, but the cleanup
// keeps the suite correct against one that does.
func CreateUserWithCleanup(client *APIClient, ctx context.Context, payload map[string]interface{}) (map[string]interface{}, int) {
	GinkgoHelper()

	resp, err := client.CreateUser(ctx, payload)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusCreated)

	user := DecodeObject(resp)
	Expect(user).To(HaveKey("id"))

	userID := int(user["id"].(float64)) //nolint:forcetypeassert // safe: API response structure

	GinkgoWriter.Printf("Created user with ID: %d\n", userID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func(ctx context.Context) {
		resp, err := client.DeleteUser(ctx, userID)
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete user %d: %v\n", userID, err)
			return
		}

		GinkgoWriter.Printf("Deleted user %d (status: %d)\n", userID, resp.StatusCode)
	})

	return user, userID
}

// VerifySubmittedFields verifies that every submitted field is echoed back unchanged.
func VerifySubmittedFields(actual, submitted map[string]interface{}, fields ...string) {
	GinkgoHelper()

	for _, field := range fields {
		Expect(actual).To(HaveKeyWithValue(field, submitted[field]), "Field %q should match input: %v", field, submitted[field])
	}
}
