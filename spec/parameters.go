package spec

import (
	"strconv"

	"github.com/erraggy/swaggerdoc/internal/httputil"
	"github.com/erraggy/swaggerdoc/internal/pathutil"
)

// Parameter locations
const (
	InQuery    = "query"
	InPath     = "path"
	InHeader   = "header"
	InBody     = "body"
	InFormData = "formData"
	InCookie   = "cookie"
)

// BodyParameterName is the name given to the parameter built from an
// OpenAPI 3.x requestBody.
const BodyParameterName = "body"

// maxRefHops bounds chains of $ref between parameters, path items, and
// request bodies.
const maxRefHops = 32

// Parameter is one operation parameter.
type Parameter struct {
	Name        string
	In          string
	Description string
	Required    bool
	// Schema is the schema fragment describing the parameter's type: the
	// `schema` of a body or OAS 3.x parameter, or the parameter itself for
	// Swagger 2.0 non-body parameters, which carry type and items inline.
	Schema Value
	// Raw is the parameter as declared, with references resolved.
	Raw Value
}

// IsBody reports whether the parameter is located in the request body.
func (p *Parameter) IsBody() bool { return p.In == InBody }

func (r *Repository) parameters(op *Operation, list Value) []*Parameter {
	var out []*Parameter
	for i, item := range list.Items() {
		raw := r.resolveRef(item)
		if raw.IsMissing() {
			r.logger.Warn("skipping unresolvable parameter",
				"operation", op.Title(),
				"index", i,
				"ref", item.Get("$ref").Text())
			continue
		}
		out = append(out, newParameter(raw))
	}
	return out
}

func newParameter(raw Value) *Parameter {
	p := &Parameter{
		Name:        raw.Get("name").Text(),
		In:          raw.Get("in").Text(),
		Description: raw.Get("description").Text(),
		Required:    raw.Get("required").Bool(),
		Raw:         raw,
	}
	switch {
	case raw.Has("schema"):
		p.Schema = raw.Get("schema")
	case raw.Has("content"):
		_, media := pickMediaType(raw.Get("content"))
		p.Schema = media.Get("schema")
	default:
		p.Schema = raw
	}
	return p
}

// requestBodyParameter turns an OAS 3.x requestBody into a body parameter.
func (r *Repository) requestBodyParameter(op *Operation, body Value) *Parameter {
	resolved := r.resolveRef(body)
	if resolved.IsMissing() {
		r.logger.Warn("skipping unresolvable request body",
			"operation", op.Title(),
			"ref", body.Get("$ref").Text())
		return nil
	}
	mediaType, media := pickMediaType(resolved.Get("content"))
	if mediaType == "" {
		return nil
	}

	fields := []Field{
		{Key: "name", Value: Scalar(BodyParameterName)},
		{Key: "in", Value: Scalar(InBody)},
	}
	if d := resolved.Get("description"); !d.IsMissing() {
		fields = append(fields, Field{Key: "description", Value: d})
	}
	if req := resolved.Get("required"); !req.IsMissing() {
		fields = append(fields, Field{Key: "required", Value: req})
	}
	fields = append(fields, Field{Key: "schema", Value: media.Get("schema")})
	return newParameter(Mapping(fields...))
}

// pickMediaType returns the first JSON media type of a content map, or the
// first declared one when none is JSON.
func pickMediaType(content Value) (string, Value) {
	fields := content.Fields()
	for _, f := range fields {
		if httputil.IsJSONMediaType(f.Key) {
			return f.Key, f.Value
		}
	}
	if len(fields) > 0 {
		return fields[0].Key, fields[0].Value
	}
	return "", Value{}
}

// resolveRef follows a local $ref ("#/parameters/limit") to its target.
// Fragments without $ref are returned as is; unresolvable references yield
// the missing Value.
func (r *Repository) resolveRef(v Value) Value {
	for range maxRefHops {
		ref := v.Get("$ref").Text()
		if ref == "" {
			return v
		}
		v = r.lookupPointer(ref)
	}
	return Value{}
}

// lookupPointer resolves a local JSON pointer against the document.
func (r *Repository) lookupPointer(ref string) Value {
	tokens, ok := pathutil.SplitPointer(ref)
	if !ok {
		return Value{}
	}
	cur := r.doc
	for _, token := range tokens {
		if cur.IsSequence() {
			i, err := strconv.Atoi(token)
			if err != nil || i < 0 || i >= cur.Len() {
				return Value{}
			}
			cur = cur.Items()[i]
			continue
		}
		cur = cur.Get(token)
	}
	return cur
}

// BodyParameter returns the operation's parameter located in the body, or nil.
func (r *Repository) BodyParameter(op *Operation) *Parameter {
	for _, p := range op.Parameters {
		if p.IsBody() {
			return p
		}
	}
	return nil
}

// ParameterTypeDescription returns a short display string for a parameter's
// type, such as "array of string", "Pet", or "inline object". It never fails;
// unrecognized shapes yield "unknown".
func (r *Repository) ParameterTypeDescription(p *Parameter) string {
	raw := p.Raw
	if raw.Has("type") {
		return describeTyped(raw)
	}
	if !raw.Has("schema") && raw.Has("content") {
		raw = Mapping(Field{Key: "schema", Value: p.Schema})
	}
	if raw.Has("schema") {
		schema := raw.Get("schema")
		if !p.IsBody() {
			if t := PrimaryType(schema); t != "" && t != "object" {
				return describeTyped(schema)
			}
		}
		if ref := schema.Get("$ref").Text(); ref != "" {
			return ResolveModelName(ref)
		}
		return "inline object"
	}
	return "unknown"
}

// describeTyped describes a fragment that declares a type.
func describeTyped(fragment Value) string {
	t := PrimaryType(fragment)
	if t != "array" {
		return t
	}
	if !fragment.Has("items") {
		return "array of unknown"
	}
	items := fragment.Get("items")
	if items.Has("type") {
		return "array of " + PrimaryType(items)
	}
	if ref := items.Get("$ref").Text(); ref != "" {
		return "array of " + ResolveModelName(ref)
	}
	return "array of unknown objects"
}
