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

// Package api provides integration test utilities for the JSONPlaceholder
// REST API.
//
// # Separate Client Implementation
//
// This package maintains its own HTTP client (APIClient) rather than a
// generated one.  The OpenAPI document under openapi/ is used to check
// responses, and an independent client triangulates on it: a legitimate
// change to the service contract needs a compensating change here, which
// makes API evolution explicit and reviewable.
//
// The client is intentionally thin:
//   - it never interprets status codes, every response is returned to the caller
//   - W3C trace context is propagated on every request for correlation
//   - failures are logged with trace IDs for debugging
//   - each request gets a timeout, defaulting to REQUEST_TIMEOUT
//
// # Sessions
//
// A Session owns the connection pool, cookie jar and default headers.  Suites
// acquire one per spec with NewSessionWithCleanup so it is released even when
// the spec fails.
//
// # Offline Runs
//
// Setting API_BASE_URL=fake runs the suites against the in-process server in
// the fakeapi package, which mimics the public demo service closely enough
// for the contract to hold.
//
// # Future Improvements
//
// * The scaffolding here and in the web package share configuration loading
// only.  Fixture helpers could be factored into a common location once a third
// suite needs them.
package api
