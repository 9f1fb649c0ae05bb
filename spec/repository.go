package spec

import (
	"github.com/erraggy/swaggerdoc/internal/pathutil"
	"github.com/erraggy/swaggerdoc/oaserrors"
)

// Repository wraps a loaded spec document and answers structural queries
// against it. It is immutable after construction and safe for concurrent use.
type Repository struct {
	doc     Value
	source  string
	version string
	oas3    bool
	logger  Logger
}

func newRepository(doc Value, source string, log Logger) (*Repository, error) {
	if !doc.IsMapping() {
		return nil, &oaserrors.SpecLoadError{
			Source:  source,
			Message: "document root must be a mapping, got " + doc.Kind().String(),
		}
	}

	repo := &Repository{doc: doc, source: source, logger: log}
	if v := doc.Get("openapi").Text(); v != "" {
		repo.version = v
		repo.oas3 = true
	} else {
		repo.version = doc.Get("swagger").Text()
		// A components section without any version marker is read as 3.x.
		repo.oas3 = repo.version == "" && doc.Has("components")
	}

	if !doc.Has("paths") {
		return nil, &oaserrors.SpecLoadError{Source: source, Message: "missing paths section"}
	}
	if repo.modelSection().IsMissing() {
		section := "definitions"
		if repo.oas3 {
			section = "components.schemas"
		}
		return nil, &oaserrors.SpecLoadError{Source: source, Message: "missing " + section + " section"}
	}
	return repo, nil
}

// Source returns the URL, path, or name the document was loaded from.
func (r *Repository) Source() string { return r.source }

// Version returns the declared `swagger` or `openapi` version, or "".
func (r *Repository) Version() string { return r.version }

// IsOAS3 reports whether the document is OpenAPI 3.x.
func (r *Repository) IsOAS3() bool { return r.oas3 }

// Document returns the underlying document.
func (r *Repository) Document() Value { return r.doc }

// Logger returns the logger the repository was loaded with.
func (r *Repository) Logger() Logger { return r.logger }

// modelSection returns the mapping of named models.
func (r *Repository) modelSection() Value {
	if r.oas3 {
		return r.doc.Path("components", "schemas")
	}
	return r.doc.Get("definitions")
}

// Models returns the model names in declaration order.
func (r *Repository) Models() []string {
	return r.modelSection().Keys()
}

// Model returns the raw definition of the named model. The name may also be
// a model reference.
func (r *Repository) Model(name string) (Value, bool) {
	section := r.modelSection()
	bare := ResolveModelName(name)
	if !section.Has(bare) {
		return Value{}, false
	}
	return section.Get(bare), true
}

// ResolveModelName turns "#/definitions/Pet" or "#/components/schemas/Pet"
// into "Pet". Anything else is returned unchanged.
func ResolveModelName(ref string) string {
	return pathutil.ModelName(ref)
}

// ResolveModelName is the method form of the package-level ResolveModelName.
func (r *Repository) ResolveModelName(ref string) string {
	return ResolveModelName(ref)
}

// ModelRef returns the local reference to the named model in this spec's
// family, e.g. "#/components/schemas/Pet".
func (r *Repository) ModelRef(name string) string {
	return pathutil.ModelRef(ResolveModelName(name), !r.oas3)
}
