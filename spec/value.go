package spec

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Kind identifies which variant of the Value sum type is held.
type Kind uint8

const (
	// MissingKind is an absent value: a key that is not present, or a read of
	// the wrong shape. It is the zero Value.
	MissingKind Kind = iota
	// ScalarKind is a string, number, boolean, or null.
	ScalarKind
	// MappingKind is an ordered set of key/value pairs.
	MappingKind
	// SequenceKind is an ordered list of values.
	SequenceKind
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case MappingKind:
		return "mapping"
	case SequenceKind:
		return "sequence"
	default:
		return "missing"
	}
}

// Value is one node of a decoded spec document. Mappings keep the order in
// which their keys were declared, so operations and properties come out in
// the author's order.
//
// Reads never fail: asking a scalar for a key, or a mapping for a key it does
// not have, yields the missing Value. Values are immutable once built and safe
// to share between goroutines.
type Value struct {
	kind   Kind
	text   string
	null   bool
	keys   []string
	fields map[string]Value
	items  []Value
}

// Field is one key/value pair of a mapping.
type Field struct {
	Key   string
	Value Value
}

// Scalar builds a scalar Value holding s.
func Scalar(s string) Value {
	return Value{kind: ScalarKind, text: s}
}

// Null builds a null scalar.
func Null() Value {
	return Value{kind: ScalarKind, null: true}
}

// Mapping builds a mapping from fields in order. A repeated key replaces the
// earlier value but keeps the earlier position.
func Mapping(fields ...Field) Value {
	v := Value{kind: MappingKind, fields: make(map[string]Value, len(fields))}
	for _, f := range fields {
		if _, exists := v.fields[f.Key]; !exists {
			v.keys = append(v.keys, f.Key)
		}
		v.fields[f.Key] = f.Value
	}
	return v
}

// Sequence builds a sequence from items in order.
func Sequence(items ...Value) Value {
	return Value{kind: SequenceKind, items: slices.Clone(items)}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is absent.
func (v Value) IsMissing() bool { return v.kind == MissingKind }

// IsScalar reports whether v is a scalar (including null).
func (v Value) IsScalar() bool { return v.kind == ScalarKind }

// IsMapping reports whether v is a mapping.
func (v Value) IsMapping() bool { return v.kind == MappingKind }

// IsSequence reports whether v is a sequence.
func (v Value) IsSequence() bool { return v.kind == SequenceKind }

// IsNull reports whether v is an explicit null scalar.
func (v Value) IsNull() bool { return v.kind == ScalarKind && v.null }

// Has reports whether v is a mapping declaring key. A key declared with a
// null value is still present.
func (v Value) Has(key string) bool {
	if v.kind != MappingKind {
		return false
	}
	_, ok := v.fields[key]
	return ok
}

// Get returns the value under key, or the missing Value.
func (v Value) Get(key string) Value {
	if v.kind != MappingKind {
		return Value{}
	}
	return v.fields[key]
}

// Path follows keys through nested mappings.
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, k := range keys {
		cur = cur.Get(k)
	}
	return cur
}

// Text returns the scalar text of v, or "" for nulls and non-scalars.
func (v Value) Text() string {
	if v.kind != ScalarKind || v.null {
		return ""
	}
	return v.text
}

// TextOr returns the scalar text of v, or def when v is not a non-null scalar.
func (v Value) TextOr(def string) string {
	if v.kind != ScalarKind || v.null {
		return def
	}
	return v.text
}

// Bool returns the boolean value of a scalar, false otherwise.
func (v Value) Bool() bool {
	b, err := strconv.ParseBool(v.Text())
	return err == nil && b
}

// Keys returns the mapping's keys in declaration order.
func (v Value) Keys() []string {
	return slices.Clone(v.keys)
}

// Fields returns the mapping's entries in declaration order.
func (v Value) Fields() []Field {
	if v.kind != MappingKind {
		return nil
	}
	out := make([]Field, 0, len(v.keys))
	for _, k := range v.keys {
		out = append(out, Field{Key: k, Value: v.fields[k]})
	}
	return out
}

// Items returns the elements of a sequence.
func (v Value) Items() []Value {
	if v.kind != SequenceKind {
		return nil
	}
	return slices.Clone(v.items)
}

// Len returns the number of entries of a mapping or sequence, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case MappingKind:
		return len(v.keys)
	case SequenceKind:
		return len(v.items)
	default:
		return 0
	}
}

// Strings returns the scalar texts of a sequence, skipping non-scalars. A
// single scalar is returned as a one-element list.
func (v Value) Strings() []string {
	switch v.kind {
	case ScalarKind:
		if v.null {
			return nil
		}
		return []string{v.text}
	case SequenceKind:
		out := make([]string, 0, len(v.items))
		for _, item := range v.items {
			if item.IsScalar() && !item.null {
				out = append(out, item.text)
			}
		}
		return out
	default:
		return nil
	}
}

// Interface converts v to plain Go values (map[string]any, []any, string,
// nil) for JSON or YAML encoding. Key order is not preserved.
func (v Value) Interface() any {
	switch v.kind {
	case ScalarKind:
		if v.null {
			return nil
		}
		return v.text
	case MappingKind:
		m := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			m[k] = v.fields[k].Interface()
		}
		return m
	case SequenceKind:
		s := make([]any, 0, len(v.items))
		for _, item := range v.items {
			s = append(s, item.Interface())
		}
		return s
	default:
		return nil
	}
}

// PrimaryType returns the schema type declared by a fragment. A type list
// (OAS 3.1 `type: [string, "null"]`) yields its first non-null entry.
// Returns "" when no type is declared.
func PrimaryType(fragment Value) string {
	t := fragment.Get("type")
	switch t.Kind() {
	case ScalarKind:
		return t.Text()
	case SequenceKind:
		types := t.Strings()
		for _, s := range types {
			if s != "null" {
				return s
			}
		}
		if len(types) > 0 {
			return types[0]
		}
	}
	return ""
}

// ParseValue decodes JSON or YAML bytes into a Value, keeping key order.
// Content that opens like JSON is read with a JSON decoder first, so JSON
// escapes YAML does not know (such as "\/") load; YAML flow documents fall
// back to the YAML decoder.
func ParseValue(data []byte) (Value, error) {
	if !looksLikeJSON(data) {
		return parseYAML(data)
	}
	v, jsonErr := parseJSON(data)
	if jsonErr == nil {
		return v, nil
	}
	if v, err := parseYAML(data); err == nil {
		return v, nil
	}
	return Value{}, jsonErr
}

func parseYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, err
	}
	if root.Kind == 0 {
		return Value{}, fmt.Errorf("spec: empty document")
	}
	return FromNode(&root), nil
}

// FromNode converts a decoded yaml.Node tree to a Value. Aliases are
// followed and merge keys ("<<") are expanded; a recursive alias becomes
// the missing Value.
func FromNode(node *yaml.Node) Value {
	c := nodeConverter{active: make(map[*yaml.Node]bool)}
	return c.convert(node)
}

type nodeConverter struct {
	active map[*yaml.Node]bool
}

func (c nodeConverter) convert(node *yaml.Node) Value {
	if node == nil {
		return Value{}
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Value{}
		}
		return c.convert(node.Content[0])

	case yaml.AliasNode:
		if node.Alias == nil || c.active[node.Alias] {
			return Value{}
		}
		c.active[node.Alias] = true
		defer delete(c.active, node.Alias)
		return c.convert(node.Alias)

	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return Null()
		}
		return Scalar(node.Value)

	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			items = append(items, c.convert(child))
		}
		return Value{kind: SequenceKind, items: items}

	case yaml.MappingNode:
		var merged, explicit []Field
		// Content alternates: key, value, key, value...
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Value == "<<" && keyNode.ShortTag() == "!!merge" {
				merged = append(merged, c.mergeFields(valNode)...)
				continue
			}
			explicit = append(explicit, Field{Key: keyNode.Value, Value: c.convert(valNode)})
		}
		return Mapping(append(merged, explicit...)...)
	}
	return Value{}
}

// mergeFields expands the value of a "<<" merge key: a mapping or a sequence
// of mappings.
func (c nodeConverter) mergeFields(node *yaml.Node) []Field {
	v := c.convert(node)
	if v.IsMapping() {
		return v.Fields()
	}
	var out []Field
	for _, item := range v.Items() {
		out = append(out, item.Fields()...)
	}
	return out
}

// FromAny converts plain Go data (as produced by encoding/json or a YAML
// decoder into `any`) to a Value. Go maps carry no order, so mapping keys
// are sorted.
func FromAny(data any) Value {
	switch d := data.(type) {
	case nil:
		return Null()
	case Value:
		return d
	case string:
		return Scalar(d)
	case bool:
		return Scalar(strconv.FormatBool(d))
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, Field{Key: k, Value: FromAny(d[k])})
		}
		return Mapping(fields...)
	case map[any]any:
		m := make(map[string]any, len(d))
		for k, val := range d {
			m[fmt.Sprint(k)] = val
		}
		return FromAny(m)
	case []any:
		items := make([]Value, 0, len(d))
		for _, item := range d {
			items = append(items, FromAny(item))
		}
		return Value{kind: SequenceKind, items: items}
	case []string:
		items := make([]Value, 0, len(d))
		for _, item := range d {
			items = append(items, Scalar(item))
		}
		return Value{kind: SequenceKind, items: items}
	default:
		return Scalar(fmt.Sprint(d))
	}
}
