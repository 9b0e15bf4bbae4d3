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

// Package web provides the browser harness for the demo shop end to end
// suites.
//
// A Browser is launched once per run and shared.  Each spec gets its own
// PageSession, an isolated context with one page, via NewPageWithCleanup,
// which also screenshots the page if the spec fails.
//
// Page objects in the pages package talk to the Page and Locator interfaces
// rather than playwright directly, so they can be unit tested with the mocks
// in the mock package.
package web
