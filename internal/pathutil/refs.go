package pathutil

import "strings"

// OAS 2.0 reference prefixes
const (
	RefPrefixDefinitions = "#/definitions/"
	RefPrefixParameters  = "#/parameters/"
)

// OAS 3.x reference prefixes
const (
	RefPrefixSchemas       = "#/components/schemas/"
	RefPrefixParameters3   = "#/components/parameters/"
	RefPrefixRequestBodies = "#/components/requestBodies/"
)

// ModelRef builds the model reference for name: "#/definitions/{name}" when
// oas2 is true, otherwise "#/components/schemas/{name}".
func ModelRef(name string, oas2 bool) string {
	if oas2 {
		return RefPrefixDefinitions + name
	}
	return RefPrefixSchemas + name
}

// ModelName strips a model reference prefix of either family. Anything else,
// including a bare name, is returned unchanged.
func ModelName(ref string) string {
	if name, ok := strings.CutPrefix(ref, RefPrefixDefinitions); ok {
		return name
	}
	if name, ok := strings.CutPrefix(ref, RefPrefixSchemas); ok {
		return name
	}
	return ref
}

// SplitPointer splits a local reference such as "#/paths/~1pets/get" into
// unescaped tokens ("paths", "/pets", "get"). It reports false for
// references into other documents.
func SplitPointer(ref string) ([]string, bool) {
	pointer, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return nil, false
	}
	tokens := strings.Split(pointer, "/")
	for i, token := range tokens {
		// ~1 first, so "~01" decodes to "~1" rather than "/".
		tokens[i] = strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
	}
	return tokens, true
}
