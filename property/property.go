package property

import (
	"slices"

	"github.com/erraggy/swaggerdoc/oaserrors"
	"github.com/erraggy/swaggerdoc/spec"
)

// inlineObjectSubType is the sub type of inline objects and arrays of them.
const inlineObjectSubType = "Object"

// Property is a classified schema fragment.
type Property struct {
	// Key is the property name, or "body" for a body parameter's root.
	Key string
	// Description is the fragment's description, "" when absent.
	Description string

	kind     Kind
	fragment spec.Value
	// chain holds the model names expanded above this property.
	chain      []string
	classifier *Classifier
}

// Kind returns the classification, fixed when the property was built.
func (p *Property) Kind() Kind { return p.kind }

// Fragment returns the schema fragment the property was built from.
func (p *Property) Fragment() spec.Value { return p.fragment }

// Model returns the referenced model name for Object and ObjectsArray
// properties, "" otherwise.
func (p *Property) Model() string {
	switch p.kind {
	case Object:
		return spec.ResolveModelName(p.fragment.Get("$ref").Text())
	case ObjectsArray:
		return spec.ResolveModelName(p.fragment.Path("items", "$ref").Text())
	default:
		return ""
	}
}

// SubType refines the kind for display: the wire type of a primitive or of
// array items, the model name of a reference, or "Object" for inline objects.
// Unknown properties have no sub type.
func (p *Property) SubType() string {
	switch p.kind {
	case Primitive:
		return spec.PrimaryType(p.fragment)
	case Object, ObjectsArray:
		return p.Model()
	case PrimitivesArray:
		return spec.PrimaryType(p.fragment.Get("items"))
	case InlineObjectsArray, InlineObject:
		return inlineObjectSubType
	default:
		return ""
	}
}

// TypeDescription returns the human-facing type, e.g. "Array of Tag".
func (p *Property) TypeDescription() string {
	switch p.kind {
	case Primitive, Object:
		return p.SubType()
	case ObjectsArray, PrimitivesArray:
		return "Array of " + p.SubType()
	case InlineObjectsArray:
		return "Array of objects"
	case InlineObject:
		return inlineObjectSubType
	default:
		return Unknown.String()
	}
}

// NeedsFurtherDescription reports whether the property has nested structure
// worth its own section.
func (p *Property) NeedsFurtherDescription() bool {
	return p.kind.NeedsFurtherDescription()
}

// NestedProperties resolves the property's children. They are computed anew
// on each call. Primitive, PrimitivesArray, and Unknown properties have none.
//
// Fails with *oaserrors.UnknownModelError when a referenced model does not
// exist and with *oaserrors.CyclicModelReferenceError when the model is
// already being expanded above this property.
func (p *Property) NestedProperties() ([]*Property, error) {
	switch p.kind {
	case Object, ObjectsArray:
		return p.classifier.modelProperties(p.Model(), p.chain)
	case InlineObject:
		return p.classifier.inlineProperties(p.fragment, p.chain)
	case InlineObjectsArray:
		return p.classifier.inlineProperties(p.fragment.Get("items"), p.chain)
	default:
		return nil, nil
	}
}

// NestedPropertiesToDescribe returns the children that need their own section.
func (p *Property) NestedPropertiesToDescribe() ([]*Property, error) {
	nested, err := p.NestedProperties()
	if err != nil {
		return nil, err
	}
	var out []*Property
	for _, child := range nested {
		if child.NeedsFurtherDescription() {
			out = append(out, child)
		}
	}
	return out, nil
}

// FindByKey returns the first property with the given key, or nil.
func FindByKey(props []*Property, key string) *Property {
	for _, p := range props {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// ModelSource resolves named models and flattens composed fragments.
// *spec.Repository implements it.
type ModelSource interface {
	ModelProperties(name string) ([]spec.Field, error)
	CollapseProperties(fragment spec.Value) ([]spec.Field, error)
}

// Classifier builds properties whose nested structure resolves against a
// ModelSource.
type Classifier struct {
	source ModelSource
}

// NewClassifier returns a Classifier reading models from source.
func NewClassifier(source ModelSource) *Classifier {
	return &Classifier{source: source}
}

// Build classifies fragment as the property named key.
func (c *Classifier) Build(key string, fragment spec.Value) *Property {
	return c.build(key, fragment, nil)
}

// BodyProperty builds the root property of a body parameter, keyed "body".
// Returns nil when param is nil.
func (c *Classifier) BodyProperty(param *spec.Parameter) *Property {
	if param == nil {
		return nil
	}
	return c.Build(spec.BodyParameterName, param.Schema)
}

// ModelProperties classifies every property of the named model.
func (c *Classifier) ModelProperties(name string) ([]*Property, error) {
	return c.modelProperties(spec.ResolveModelName(name), nil)
}

func (c *Classifier) build(key string, fragment spec.Value, chain []string) *Property {
	return &Property{
		Key:         key,
		Description: fragment.Get("description").Text(),
		kind:        Classify(fragment),
		fragment:    fragment,
		chain:       chain,
		classifier:  c,
	}
}

func (c *Classifier) modelProperties(model string, chain []string) ([]*Property, error) {
	if slices.Contains(chain, model) {
		return nil, &oaserrors.CyclicModelReferenceError{Chain: append(slices.Clone(chain), model)}
	}
	fields, err := c.source.ModelProperties(model)
	if err != nil {
		return nil, err
	}
	return c.buildAll(fields, append(slices.Clip(chain), model)), nil
}

func (c *Classifier) inlineProperties(fragment spec.Value, chain []string) ([]*Property, error) {
	fields, err := c.source.CollapseProperties(fragment)
	if err != nil {
		return nil, err
	}
	return c.buildAll(fields, chain), nil
}

func (c *Classifier) buildAll(fields []spec.Field, chain []string) []*Property {
	props := make([]*Property, 0, len(fields))
	for _, f := range fields {
		props = append(props, c.build(f.Key, f.Value, chain))
	}
	return props
}
