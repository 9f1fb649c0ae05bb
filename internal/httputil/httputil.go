// Package httputil provides HTTP-related constants and helpers for reading
// OpenAPI path items and media types.
package httputil

import (
	"mime"
	"strings"
)

// HTTP Method Constants, as they appear as path item keys
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// operationMethods is the set of path item keys that declare an operation.
var operationMethods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
}

// IsOperationMethod reports whether a path item key declares an operation.
// Keys are matched case-insensitively; "parameters", "$ref", "summary" and
// extension keys are not operations.
func IsOperationMethod(key string) bool {
	return operationMethods[strings.ToLower(key)]
}

// IsJSONMediaType reports whether mediaType is application/json or a
// structured-syntax JSON type such as application/problem+json.
func IsJSONMediaType(mediaType string) bool {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	if mt == "application/json" {
		return true
	}
	return strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json")
}
