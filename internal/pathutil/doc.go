// Package pathutil handles local JSON references and pointers in
// Swagger/OpenAPI documents.
//
// Model references come in two shapes, one per spec family:
//
//	#/definitions/Pet           (Swagger 2.0)
//	#/components/schemas/Pet    (OpenAPI 3.x)
//
// [ModelName] strips either prefix and [ModelRef] builds the reference for
// a family. [SplitPointer] breaks a local reference into unescaped
// RFC 6901 tokens for lookup.
package pathutil
