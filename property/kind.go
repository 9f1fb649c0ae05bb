package property

import "github.com/erraggy/swaggerdoc/spec"

// Kind is the classification of a schema fragment.
type Kind uint8

const (
	// Unknown is a fragment with neither `type` nor `$ref`.
	Unknown Kind = iota
	// Primitive is a scalar type such as string, integer, or boolean.
	Primitive
	// Object is a reference to a named model.
	Object
	// ObjectsArray is an array of named model references.
	ObjectsArray
	// PrimitivesArray is an array whose items declare a type.
	PrimitivesArray
	// InlineObjectsArray is an array of inline objects.
	InlineObjectsArray
	// InlineObject is an object described inline.
	InlineObject
)

var kindNames = [...]string{
	Unknown:            "unknown",
	Primitive:          "primitive",
	Object:             "object",
	ObjectsArray:       "objects_array",
	PrimitivesArray:    "primitives_array",
	InlineObjectsArray: "inline_objects_array",
	InlineObject:       "inline_object",
}

// String returns the kind name, e.g. "objects_array".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[Unknown]
}

// NeedsFurtherDescription reports whether properties of this kind carry
// nested structure worth their own section.
func (k Kind) NeedsFurtherDescription() bool {
	switch k {
	case Object, ObjectsArray, InlineObjectsArray, InlineObject:
		return true
	default:
		return false
	}
}

// Classify decides the kind of a schema fragment:
//
//  1. A declared type of "array" is an ObjectsArray when its items carry a
//     $ref, a PrimitivesArray when its items declare a type, and an
//     InlineObjectsArray otherwise. A type of "object" is an InlineObject and
//     any other type a Primitive.
//  2. A $ref without a type is an Object.
//  3. Anything else is Unknown.
func Classify(fragment spec.Value) Kind {
	if fragment.Has("type") {
		switch spec.PrimaryType(fragment) {
		case "array":
			items := fragment.Get("items")
			switch {
			case items.Has("$ref"):
				return ObjectsArray
			case items.Has("type"):
				return PrimitivesArray
			default:
				return InlineObjectsArray
			}
		case "object":
			return InlineObject
		default:
			return Primitive
		}
	}
	if fragment.Has("$ref") {
		return Object
	}
	return Unknown
}
