package spec

import (
	"slices"

	"github.com/erraggy/swaggerdoc/oaserrors"
)

// ModelProperties returns the properties of the named model with its allOf
// composition flattened into one ordered list. The model's own properties
// come first, then each allOf sub-schema in order. A key declared again later
// replaces the earlier value but keeps the earlier position.
//
// Fails with *oaserrors.UnknownModelError when the model, or a model named by
// an allOf reference, does not exist, and with
// *oaserrors.CyclicModelReferenceError when allOf references loop.
func (r *Repository) ModelProperties(name string) ([]Field, error) {
	bare := ResolveModelName(name)
	def, ok := r.Model(bare)
	if !ok {
		return nil, &oaserrors.UnknownModelError{Model: bare, Ref: name}
	}
	r.logger.Debug("collapsing model", "model", bare)
	return r.collapse(def, []string{bare})
}

// CollapseProperties flattens an inline schema fragment the same way
// ModelProperties flattens a named model. A fragment that is only a $ref is
// followed to the model it names.
func (r *Repository) CollapseProperties(fragment Value) ([]Field, error) {
	return r.collapse(fragment, nil)
}

// collapse flattens fragment. chain holds the model names already being
// expanded above this fragment.
func (r *Repository) collapse(fragment Value, chain []string) ([]Field, error) {
	fragment, chain, err := r.deref(fragment, chain)
	if err != nil {
		return nil, err
	}

	fields := fragment.Get("properties").Fields()
	for _, sub := range fragment.Get("allOf").Items() {
		subFields, err := r.collapse(sub, chain)
		if err != nil {
			return nil, err
		}
		fields = append(fields, subFields...)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	// Mapping keeps first positions and last values.
	return Mapping(fields...).Fields(), nil
}

// deref follows $ref until it reaches a fragment that is not a reference,
// extending chain with every model name it passes through.
func (r *Repository) deref(fragment Value, chain []string) (Value, []string, error) {
	for {
		ref := fragment.Get("$ref").Text()
		if ref == "" {
			return fragment, chain, nil
		}
		name := ResolveModelName(ref)
		if slices.Contains(chain, name) {
			return Value{}, nil, &oaserrors.CyclicModelReferenceError{Chain: append(slices.Clone(chain), name)}
		}
		def, ok := r.Model(name)
		if !ok {
			return Value{}, nil, &oaserrors.UnknownModelError{Model: name, Ref: ref}
		}
		fragment = def
		chain = append(slices.Clip(chain), name)
	}
}
