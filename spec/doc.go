// Package spec loads OpenAPI 2.0 (Swagger) and OpenAPI 3.x documents and
// answers the structural queries a documentation renderer needs.
//
// # Loading
//
// A document is loaded from a URL, a file path, bytes, a reader, or an
// in-memory value:
//
//	repo, err := spec.Load(ctx, "https://petstore.swagger.io/v2/swagger.json")
//	repo, err := spec.LoadWithOptions(ctx, spec.WithBytes(data), spec.WithLogger(logger))
//
// JSON and YAML are decoded through the same YAML decoder, which keeps
// mapping keys in the order they were declared. Operations and model
// properties are therefore returned in the author's order. Loading fails with
// *oaserrors.SpecLoadError when the source cannot be read or decoded, or when
// the document has no paths section or no model section (definitions for 2.0,
// components.schemas for 3.x).
//
// # Querying
//
// Operations selects operations by resource (tag, or first path segment for
// untagged operations) and by operation ID:
//
//	ops := repo.Operations(spec.OperationFilter{Resources: []string{"pet"}})
//
// ModelProperties flattens a named model and its allOf composition into one
// ordered property list, later declarations of a key replacing earlier ones.
// Lookups of missing models fail with *oaserrors.UnknownModelError, and allOf
// chains that loop fail with *oaserrors.CyclicModelReferenceError.
//
// # Values
//
// Documents are held as Value, a small sum type of missing, scalar, mapping
// and sequence nodes. Reads never fail: a missing key yields the missing
// Value, so callers read optional fields without checks.
//
// A Repository is immutable once loaded and safe for concurrent use.
package spec
