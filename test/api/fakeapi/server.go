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

// Package fakeapi is an in-process stand in for the posts and users subset of
// JSONPlaceholder.  Like the real service, writes are simulated: creates and
// updates echo the request with an id, and nothing is ever persisted.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// PostCount is the number of seeded posts, ten per user.
	PostCount = 100

	// UserCount is the number of seeded users.
	UserCount = 10
)

type record map[string]any

type options struct {
	latency time.Duration
}

// Option customizes the fake server.
type Option func(*options)

// WithLatency delays every response, used to exercise client timeouts.
func WithLatency(latency time.Duration) Option {
	return func(o *options) {
		o.latency = latency
	}
}

type server struct {
	posts []record
	users []record
}

// New returns a handler serving /posts and /users.
func New(opts ...Option) http.Handler {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	s := &server{
		posts: seedPosts(),
		users: seedUsers(),
	}

	router := chi.NewRouter()
	router.Use(middleware.SetHeader("Content-Type", "application/json; charset=utf-8"))

	if o.latency > 0 {
		router.Use(latency(o.latency))
	}

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", s.list(s.posts))
		r.Post("/", s.create(len(s.posts)))
		r.Get("/{id}", s.get(s.posts))
		r.Put("/{id}", s.replace(s.posts))
		r.Patch("/{id}", s.update(s.posts))
		r.Delete("/{id}", s.delete)
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", s.list(s.users))
		r.Post("/", s.create(len(s.users)))
		r.Get("/{id}", s.get(s.users))
		r.Put("/{id}", s.replace(s.users))
		r.Patch("/{id}", s.update(s.users))
		r.Delete("/{id}", s.delete)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, record{})
	})

	return router
}

func latency(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(d):
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
			}
		})
	}
}

func seedPosts() []record {
	posts := make([]record, 0, PostCount)

	for i := 1; i <= PostCount; i++ {
		posts = append(posts, record{
			"id":     i,
			"userId": (i-1)/(PostCount/UserCount) + 1,
			"title":  fmt.Sprintf("post title %d", i),
			"body":   fmt.Sprintf("post body %d", i),
		})
	}

	return posts
}

func seedUsers() []record {
	users := make([]record, 0, UserCount)

	for i := 1; i <= UserCount; i++ {
		users = append(users, record{
			"id":       i,
			"name":     fmt.Sprintf("User %d", i),
			"username": fmt.Sprintf("user%d", i),
			"email":    fmt.Sprintf("user%d@example.com", i),
		})
	}

	return users
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

// lookup returns the record named by the id path parameter, or nil.
func lookup(records []record, r *http.Request) record {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 || id > len(records) {
		return nil
	}

	return records[id-1]
}

// matches applies JSONPlaceholder style equality filtering on query parameters.
func matches(rec record, r *http.Request) bool {
	for key, values := range r.URL.Query() {
		value, ok := rec[key]
		if !ok {
			continue
		}

		if fmt.Sprint(value) != values[0] {
			return false
		}
	}

	return true
}

func decodeBody(r *http.Request) (record, error) {
	body := record{}

	if r.Body == nil || r.ContentLength == 0 {
		return body, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}

	return body, nil
}

func (s *server) list(records []record) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := make([]record, 0, len(records))

		for _, rec := range records {
			if matches(rec, r) {
				result = append(result, rec)
			}
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func (s *server) get(records []record) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := lookup(records, r)
		if rec == nil {
			writeJSON(w, http.StatusNotFound, record{})
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

func (s *server) create(count int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeBody(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, record{"error": err.Error()})
			return
		}

		body["id"] = count + 1

		writeJSON(w, http.StatusCreated, body)
	}
}

func (s *server) replace(records []record) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := lookup(records, r)
		if rec == nil {
			writeJSON(w, http.StatusNotFound, record{})
			return
		}

		body, err := decodeBody(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, record{"error": err.Error()})
			return
		}

		body["id"] = rec["id"]

		writeJSON(w, http.StatusOK, body)
	}
}

func (s *server) update(records []record) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := lookup(records, r)
		if rec == nil {
			writeJSON(w, http.StatusNotFound, record{})
			return
		}

		body, err := decodeBody(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, record{"error": err.Error()})
			return
		}

		merged := record{}

		for key, value := range rec {
			merged[key] = value
		}

		for key, value := range body {
			merged[key] = value
		}

		merged["id"] = rec["id"]

		writeJSON(w, http.StatusOK, merged)
	}
}

func (s *server) delete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, record{})
}
