// Package property classifies schema fragments into property kinds and
// resolves their nested structure.
//
// A schema fragment is classified once, by shape, into one of seven kinds:
//
//   - Primitive: a `type` other than array or object
//   - Object: a bare `$ref` to a named model
//   - ObjectsArray: an array whose items are a `$ref`
//   - PrimitivesArray: an array whose items declare a `type`
//   - InlineObjectsArray: an array of inline objects
//   - InlineObject: `type: object` with inline properties
//   - Unknown: anything else
//
// Classification never fails. Composite kinds resolve their children on every
// call to NestedProperties, going back to the ModelSource for referenced
// models. Each Property remembers the models expanded above it, so a model
// that contains itself, directly or through other models, is reported as
// *oaserrors.CyclicModelReferenceError instead of recursing forever.
//
// Example:
//
//	c := property.NewClassifier(repo)
//	body := c.BodyProperty(repo.BodyParameter(op))
//	children, err := body.NestedProperties()
package property
