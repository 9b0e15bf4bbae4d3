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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrSchemaValidation = errors.New("schema validation failed")

// ValidationError lists every way a document breaks a contract.
type ValidationError struct {
	Contract string
	Issues   []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Contract, ErrSchemaValidation, strings.Join(e.Issues, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrSchemaValidation
}

type schemaDocument map[string]any

func property(kind string) schemaDocument {
	return schemaDocument{"type": kind}
}

// objectSchema builds an object schema, properties map field names to JSON types.
func objectSchema(required []string, properties map[string]string) schemaDocument {
	props := schemaDocument{}

	for name, kind := range properties {
		props[name] = property(kind)
	}

	return schemaDocument{
		"type":       "object",
		"required":   required,
		"properties": props,
	}
}

func userContract(requireID bool) schemaDocument {
	required := []string{"email", "name", "username"}
	properties := map[string]string{
		"email":    "string",
		"name":     "string",
		"username": "string",
	}

	if requireID {
		required = append([]string{"id"}, required...)
		properties["id"] = "integer"
	}

	return objectSchema(required, properties)
}

func alternateNamesUserContract(requireID bool) schemaDocument {
	required := []string{"email"}
	properties := map[string]string{
		"email":      "string",
		"first_name": "string",
		"firstName":  "string",
		"last_name":  "string",
		"lastName":   "string",
	}

	if requireID {
		required = append([]string{"id"}, required...)
		properties["id"] = "integer"
	}

	schema := objectSchema(required, properties)
	schema["allOf"] = []schemaDocument{
		{"anyOf": []schemaDocument{{"required": []string{"first_name"}}, {"required": []string{"firstName"}}}},
		{"anyOf": []schemaDocument{{"required": []string{"last_name"}}, {"required": []string{"lastName"}}}},
	}

	return schema
}

func postContract(requireID bool) schemaDocument {
	required := []string{"title", "body", "userId"}
	properties := map[string]string{
		"title":  "string",
		"body":   "string",
		"userId": "integer",
	}

	if requireID {
		required = append([]string{"id"}, required...)
		properties["id"] = "integer"
	}

	return objectSchema(required, properties)
}

func listContract(dataKey string) schemaDocument {
	return objectSchema([]string{dataKey}, map[string]string{
		dataKey:    "array",
		"page":     "integer",
		"per_page": "integer",
		"total":    "integer",
	})
}

// documentLoader accepts either a decoded value or raw JSON bytes.
func documentLoader(data any) gojsonschema.JSONLoader {
	switch t := data.(type) {
	case []byte:
		return gojsonschema.NewBytesLoader(t)
	case json.RawMessage:
		return gojsonschema.NewBytesLoader(t)
	default:
		return gojsonschema.NewGoLoader(data)
	}
}

func validate(contract string, schema schemaDocument, data any) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), documentLoader(data))
	if err != nil {
		return &ValidationError{
			Contract: contract,
			Issues:   []string{fmt.Sprintf("document is not valid JSON: %v", err)},
		}
	}

	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))

	for _, resultError := range result.Errors() {
		issues = append(issues, fmt.Sprintf("%s: %s", resultError.Field(), resultError.Description()))
	}

	return &ValidationError{
		Contract: contract,
		Issues:   issues,
	}
}

// ValidateUserSchema checks a user has a string email, name and username, and
// an integer id when requireID is set.  This is the JSONPlaceholder contract.
func ValidateUserSchema(data any, requireID bool) error {
	return validate("user", userContract(requireID), data)
}

// ValidateUserSchemaAlternateNames checks a user has a string email and split
// names, first_name or firstName and last_name or lastName, plus an integer id
// when requireID is set.  It is a separate contract from ValidateUserSchema and
// does not accept name/username.
func ValidateUserSchemaAlternateNames(data any, requireID bool) error {
	return validate("user (first/last name)", alternateNamesUserContract(requireID), data)
}

// ValidatePostSchema checks a post has a string title and body and an integer
// userId, and an integer id when requireID is set.
func ValidatePostSchema(data any, requireID bool) error {
	return validate("post", postContract(requireID), data)
}

// ValidateListResponse checks a wrapped list response: dataKey must hold an
// array, and the optional pagination fields page, per_page and total must be
// integers when present.  An empty dataKey means "data".
func ValidateListResponse(data any, dataKey string) error {
	if dataKey == "" {
		dataKey = "data"
	}

	return validate("list response", listContract(dataKey), data)
}
