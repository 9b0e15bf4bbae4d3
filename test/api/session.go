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
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
)

var (
	ErrSessionInit   = errors.New("session initialization failed")
	ErrSessionClosed = errors.New("session closed")
)

// DefaultHeaders are applied to every request made through a session unless
// the request sets the header itself.
func DefaultHeaders() http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	return headers
}

// Session is a reusable connection context.  It owns a transport, a cookie jar
// and a set of default headers, and is owned by a single test for its lifetime.
type Session struct {
	baseURL   string
	client    *http.Client
	transport *http.Transport

	lock    sync.Mutex
	headers http.Header
	closed  bool
}

// AcquireSession returns a session for baseURL pre-configured with headers.
// The only failures are those that prevent the transport from initializing.
func AcquireSession(baseURL string, headers http.Header) (*Session, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing base URL: %w", ErrSessionInit, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q is not absolute", ErrSessionInit, baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating cookie jar: %w", ErrSessionInit, err)
	}

	defaultTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("%w: default transport is not an *http.Transport", ErrSessionInit)
	}

	transport := defaultTransport.Clone()

	if headers == nil {
		headers = http.Header{}
	}

	return &Session{
		baseURL: baseURL,
		client: &http.Client{
			Transport: transport,
			Jar:       jar,
		},
		transport: transport,
		headers:   headers.Clone(),
	}, nil
}

// BaseURL returns the base URL the session was acquired for.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// Headers returns a copy of the session's default headers.
func (s *Session) Headers() http.Header {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.headers.Clone()
}

// SetHeader sets a default header for all subsequent requests.
func (s *Session) SetHeader(key, value string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.headers.Set(key, value)
}

// Do sends the request with the session's default headers merged in.
// Headers already present on the request win.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	s.lock.Lock()

	if s.closed {
		s.lock.Unlock()
		return nil, ErrSessionClosed
	}

	for key, values := range s.headers {
		if _, ok := req.Header[key]; ok {
			continue
		}

		req.Header[key] = append([]string(nil), values...)
	}

	s.lock.Unlock()

	return s.client.Do(req)
}

// Close releases the session's idle connections.  It is safe to call more than
// once, and any request made afterwards fails with ErrSessionClosed.
func (s *Session) Close() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	s.transport.CloseIdleConnections()
}
