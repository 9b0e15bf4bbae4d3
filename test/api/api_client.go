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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/tidwall/gjson"
)

var ErrConflictingBody = errors.New("request has both a form and a JSON body")

// JoinURL joins an endpoint onto a base URL with exactly one separating slash,
// whatever slashes either side was given with.
func JoinURL(baseURL, endpoint string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// Response is the raw result of a request.  The client never interprets the
// status code, that is left to the caller.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Request    *http.Request
	Duration   time.Duration
	TraceID    string
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling response body: %w", err)
	}

	return nil
}

// Get returns the value at a gjson path within the response body.
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

func (r *Response) String() string {
	return string(r.Body)
}

type requestOptions struct {
	timeout time.Duration
	query   url.Values
	form    url.Values
	json    any
	hasJSON bool
	headers http.Header
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithQuery adds query parameters to the request URL.
func WithQuery(params url.Values) RequestOption {
	return func(o *requestOptions) {
		o.query = params
	}
}

// WithJSON sends v encoded as JSON.
func WithJSON(v any) RequestOption {
	return func(o *requestOptions) {
		o.json = v
		o.hasJSON = true
	}
}

// WithForm sends values form encoded.
func WithForm(values url.Values) RequestOption {
	return func(o *requestOptions) {
		o.form = values
	}
}

// WithTimeout bounds the request, including reading the body.
// Non-positive values select the client default.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.timeout = timeout
	}
}

// WithHeader sets a request header, overriding any session default.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}

		o.headers.Set(key, value)
	}
}

func (o *requestOptions) body() (io.Reader, string, error) {
	if o.form != nil && o.hasJSON {
		return nil, "", ErrConflictingBody
	}

	if o.form != nil {
		return strings.NewReader(o.form.Encode()), "application/x-www-form-urlencoded", nil
	}

	if o.hasJSON {
		data, err := json.Marshal(o.json)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling request body: %w", err)
		}

		return bytes.NewReader(data), "application/json", nil
	}

	return nil, "", nil
}

// ClientOption customizes an APIClient.
type ClientOption func(*APIClient)

// WithDefaultTimeout sets the timeout used by requests without WithTimeout.
func WithDefaultTimeout(timeout time.Duration) ClientOption {
	return func(c *APIClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRequestLogging logs the status and duration of every request.
func WithRequestLogging(enabled bool) ClientOption {
	return func(c *APIClient) {
		c.logRequests = enabled
	}
}

// WithResponseLogging logs every non-empty response body.
func WithResponseLogging(enabled bool) ClientOption {
	return func(c *APIClient) {
		c.logResponses = enabled
	}
}

type APIClient struct {
	baseURL      string
	session      *Session
	timeout      time.Duration
	logRequests  bool
	logResponses bool
	endpoints    *Endpoints
}

// NewAPIClient returns a client issuing requests through session against the
// session's base URL.
func NewAPIClient(session *Session, opts ...ClientOption) *APIClient {
	c := &APIClient{
		baseURL:   session.BaseURL(),
		session:   session,
		timeout:   DefaultTimeout,
		endpoints: NewEndpoints(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewAPIClientWithConfig returns a client configured from config.
func NewAPIClientWithConfig(config *TestConfig, session *Session) *APIClient {
	return NewAPIClient(session,
		WithDefaultTimeout(config.RequestTimeout),
		WithRequestLogging(config.LogRequests),
		WithResponseLogging(config.LogResponses),
	)
}

// Endpoints returns the endpoint builder used by the client.
func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

func (c *APIClient) Get(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, endpoint, opts)
}

func (c *APIClient) Post(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodPost, endpoint, opts)
}

func (c *APIClient) Put(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodPut, endpoint, opts)
}

func (c *APIClient) Patch(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodPatch, endpoint, opts)
}

func (c *APIClient) Delete(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, endpoint, opts)
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func (c *APIClient) requestURL(endpoint string, query url.Values) string {
	fullURL := JoinURL(c.baseURL, endpoint)

	if len(query) == 0 {
		return fullURL
	}

	separator := "?"
	if strings.Contains(fullURL, "?") {
		separator = "&"
	}

	return fullURL + separator + query.Encode()
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, endpoint string, opts []RequestOption) (*Response, error) {
	options := &requestOptions{
		timeout: c.timeout,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.timeout <= 0 {
		options.timeout = c.timeout
	}

	body, contentType, err := options.body()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(endpoint, options.query), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	path := req.URL.Path

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for key, values := range options.headers {
		req.Header[key] = values
	}

	start := time.Now()
	resp, err := c.session.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	duration = time.Since(start)

	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.logRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.logResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Request:    req,
		Duration:   duration,
		TraceID:    extractTraceID(traceParent),
	}, nil
}

// ListPosts lists all posts, optionally filtered with WithQuery.
func (c *APIClient) ListPosts(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, c.endpoints.ListPosts(), opts...)
}

// GetPost retrieves a single post.
func (c *APIClient) GetPost(ctx context.Context, postID int, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, c.endpoints.GetPost(postID), opts...)
}

// CreatePost creates a post from body.
func (c *APIClient) CreatePost(ctx context.Context, body any, opts ...RequestOption) (*Response, error) {
	return c.Post(ctx, c.endpoints.CreatePost(), withBody(body, opts)...)
}

// UpdatePost replaces a post with body.
func (c *APIClient) UpdatePost(ctx context.Context, postID int, body any, opts ...RequestOption) (*Response, error) {
	return c.Put(ctx, c.endpoints.UpdatePost(postID), withBody(body, opts)...)
}

func (c *APIClient) DeletePost(ctx context.Context, postID int, opts ...RequestOption) (*Response, error) {
	return c.Delete(ctx, c.endpoints.DeletePost(postID), opts...)
}

// ListUsers lists all users, optionally filtered with WithQuery.
func (c *APIClient) ListUsers(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, c.endpoints.ListUsers(), opts...)
}

// GetUser retrieves a single user.
func (c *APIClient) GetUser(ctx context.Context, userID int, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, c.endpoints.GetUser(userID), opts...)
}

// CreateUser creates a user from body.
func (c *APIClient) CreateUser(ctx context.Context, body any, opts ...RequestOption) (*Response, error) {
	return c.Post(ctx, c.endpoints.CreateUser(), withBody(body, opts)...)
}

// UpdateUser replaces a user with body.
func (c *APIClient) UpdateUser(ctx context.Context, userID int, body any, opts ...RequestOption) (*Response, error) {
	return c.Put(ctx, c.endpoints.UpdateUser(userID), withBody(body, opts)...)
}

func (c *APIClient) DeleteUser(ctx context.Context, userID int, opts ...RequestOption) (*Response, error) {
	return c.Delete(ctx, c.endpoints.DeleteUser(userID), opts...)
}

// withBody prepends a JSON body so that caller options can still override it.
func withBody(body any, opts []RequestOption) []RequestOption {
	return append([]RequestOption{WithJSON(body)}, opts...)
}
