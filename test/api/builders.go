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

package api

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func generateRandomName(prefix string) string {
	// 8 hex characters
	return fmt.Sprintf("%s-%s", prefix, strings.SplitN(uuid.NewString(), "-", 2)[0])
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	payload map[string]interface{}
}

// NewUserPayload creates a new user payload with unique username and email.
func NewUserPayload() *UserPayloadBuilder {
	username := generateRandomName("qa")

	return &UserPayloadBuilder{
		payload: map[string]interface{}{
			"name":     "John Doe",
			"username": username,
			"email":    username + "@example.com",
		},
	}
}

// WithName sets the display name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload["name"] = name
	return b
}

// WithUsername sets the username.
func (b *UserPayloadBuilder) WithUsername(username string) *UserPayloadBuilder {
	b.payload["username"] = username
	return b
}

// WithEmail sets the email address.
func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.payload["email"] = email
	return b
}

// Without removes a field, for negative tests.
func (b *UserPayloadBuilder) Without(field string) *UserPayloadBuilder {
	delete(b.payload, field)
	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// PostPayloadBuilder builds post payloads for testing.
type PostPayloadBuilder struct {
	payload map[string]interface{}
}

// NewPostPayload creates a new post payload authored by userID.
func NewPostPayload(userID int) *PostPayloadBuilder {
	return &PostPayloadBuilder{
		payload: map[string]interface{}{
			"userId": userID,
			"title":  generateRandomName("title"),
			"body":   "created by test automation",
		},
	}
}

// WithTitle sets the post title.
func (b *PostPayloadBuilder) WithTitle(title string) *PostPayloadBuilder {
	b.payload["title"] = title
	return b
}

// WithBody sets the post body.
func (b *PostPayloadBuilder) WithBody(body string) *PostPayloadBuilder {
	b.payload["body"] = body
	return b
}

// Build returns the completed post payload.
func (b *PostPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}
