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
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

//go:embed openapi/jsonplaceholder.yaml
var jsonPlaceholderSpec []byte

var ErrNoRequest = errors.New("response has no originating request")

// ContractValidator checks responses against the OpenAPI description of the
// service under test.
type ContractValidator struct {
	router routers.Router
}

// NewContractValidator loads and validates the embedded OpenAPI document.
func NewContractValidator(ctx context.Context) (*ContractValidator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(jsonPlaceholderSpec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	// Routes are matched on path alone, the base URL is configurable.
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	return &ContractValidator{
		router: router,
	}, nil
}

// ValidateResponse checks the response status and body against the operation
// matching the request that produced it.  Undocumented statuses are errors.
func (v *ContractValidator) ValidateResponse(ctx context.Context, resp *Response) error {
	if resp.Request == nil {
		return ErrNoRequest
	}

	route, pathParams, err := v.router.FindRoute(resp.Request)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", resp.Request.Method, resp.Request.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    resp.Request,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(resp.Body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%s %s (status %d) violates contract: %w", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, err)
	}

	return nil
}
