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

package api

import (
	"fmt"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Post endpoints.
func (e *Endpoints) ListPosts() string {
	return "/posts"
}

func (e *Endpoints) GetPost(postID int) string {
	return fmt.Sprintf("/posts/%d", postID)
}

func (e *Endpoints) CreatePost() string {
	return "/posts"
}

func (e *Endpoints) UpdatePost(postID int) string {
	return fmt.Sprintf("/posts/%d", postID)
}

func (e *Endpoints) DeletePost(postID int) string {
	return fmt.Sprintf("/posts/%d", postID)
}

// User endpoints.
func (e *Endpoints) ListUsers() string {
	return "/users"
}

func (e *Endpoints) GetUser(userID int) string {
	return fmt.Sprintf("/users/%d", userID)
}

func (e *Endpoints) CreateUser() string {
	return "/users"
}

func (e *Endpoints) UpdateUser(userID int) string {
	return fmt.Sprintf("/users/%d", userID)
}

func (e *Endpoints) DeleteUser(userID int) string {
	return fmt.Sprintf("/users/%d", userID)
}
