package spec

import (
	"strings"

	"github.com/erraggy/swaggerdoc/internal/httputil"
	"github.com/erraggy/swaggerdoc/internal/stringutil"
)

// DefaultResource names the resource of an untagged operation on "/".
const DefaultResource = "default"

// Operation is one HTTP method on one path.
type Operation struct {
	// Method is the lowercase HTTP verb as declared in the path item
	Method string
	// Path is the templated path, e.g. "/pet/{petId}"
	Path        string
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool
	// Parameters holds path-level parameters not overridden by the
	// operation, then the operation's own, with references resolved.
	Parameters []*Parameter
}

// Title returns "METHOD /path".
func (o *Operation) Title() string {
	return strings.ToUpper(o.Method) + " " + o.Path
}

// Resources returns the resource names the operation belongs to: its tags,
// or the first path segment when it has none.
func (o *Operation) Resources() []string {
	if len(o.Tags) > 0 {
		return o.Tags
	}
	return []string{pathResource(o.Path)}
}

func pathResource(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			return seg
		}
	}
	return DefaultResource
}

// OperationFilter narrows Operations. A nil or empty axis places no
// constraint on it; both axes must match when both are set.
type OperationFilter struct {
	// Resources keeps operations having any of these resources
	Resources []string
	// OperationIDs keeps operations with one of these operation IDs
	OperationIDs []string
}

// ParseOperationFilter builds a filter from comma-separated lists such as
// "pet, store". Empty strings mean no filter.
func ParseOperationFilter(resources, operationIDs string) OperationFilter {
	return OperationFilter{
		Resources:    stringutil.SplitList(resources),
		OperationIDs: stringutil.SplitList(operationIDs),
	}
}

// Operations returns the operations matching filter in declaration order:
// path order, then method order within each path item.
func (r *Repository) Operations(filter OperationFilter) []*Operation {
	resources := stringutil.Set(filter.Resources)
	ids := stringutil.Set(filter.OperationIDs)

	var out []*Operation
	for _, pathField := range r.doc.Get("paths").Fields() {
		item := r.resolveRef(pathField.Value)
		shared := item.Get("parameters")
		for _, f := range item.Fields() {
			if !httputil.IsOperationMethod(f.Key) || !f.Value.IsMapping() {
				continue
			}
			op := r.buildOperation(pathField.Key, strings.ToLower(f.Key), f.Value, shared)
			if resources != nil && !anyIn(op.Resources(), resources) {
				continue
			}
			if ids != nil && !ids[op.OperationID] {
				continue
			}
			r.logger.Debug("selected operation", "operation_id", op.OperationID, "method", op.Method, "path", op.Path)
			out = append(out, op)
		}
	}
	return out
}

// Operation returns the first operation with the given operation ID.
func (r *Repository) Operation(operationID string) (*Operation, bool) {
	ops := r.Operations(OperationFilter{OperationIDs: []string{operationID}})
	if len(ops) == 0 {
		return nil, false
	}
	return ops[0], true
}

func anyIn(values []string, set map[string]bool) bool {
	for _, v := range values {
		if set[v] {
			return true
		}
	}
	return false
}

func (r *Repository) buildOperation(path, method string, raw, shared Value) *Operation {
	op := &Operation{
		Method:      method,
		Path:        path,
		OperationID: raw.Get("operationId").Text(),
		Summary:     raw.Get("summary").Text(),
		Description: raw.Get("description").Text(),
		Tags:        raw.Get("tags").Strings(),
		Deprecated:  raw.Get("deprecated").Bool(),
	}

	own := r.parameters(op, raw.Get("parameters"))
	for _, p := range r.parameters(op, shared) {
		if !overridden(p, own) {
			op.Parameters = append(op.Parameters, p)
		}
	}
	op.Parameters = append(op.Parameters, own...)

	if body := raw.Get("requestBody"); !body.IsMissing() {
		if p := r.requestBodyParameter(op, body); p != nil {
			op.Parameters = append(op.Parameters, p)
		}
	}
	return op
}

func overridden(p *Parameter, own []*Parameter) bool {
	for _, o := range own {
		if o.Name == p.Name && o.In == p.In {
			return true
		}
	}
	return false
}
