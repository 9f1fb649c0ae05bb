package render

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/erraggy/swaggerdoc/property"
	"github.com/erraggy/swaggerdoc/spec"
)

// Options configures a rendering pass.
type Options struct {
	// Resources keeps operations tagged with any of these resources
	Resources []string
	// OperationIDs keeps operations with one of these operation IDs
	OperationIDs []string
	// Timeout bounds fetching the spec; zero uses spec.DefaultTimeout
	Timeout time.Duration
	// MaxDepth bounds how many levels of nested property sections are
	// generated below the body parameter; zero means no bound
	MaxDepth int
	// Logger receives progress and failures; nil discards them
	Logger spec.Logger
}

func (o Options) logger() spec.Logger {
	if o.Logger == nil {
		return spec.NopLogger{}
	}
	return o.Logger
}

// Build loads the spec at source (a URL or a file path) and renders the
// selected operations. It never fails: load failures are returned as a
// document holding one error block.
func Build(ctx context.Context, source string, opts Options) *Document {
	return BuildFrom(ctx, source, opts, spec.WithSource(source))
}

// BuildFrom loads a spec with loadOpts, which must name exactly one input
// source, and renders it. name identifies the source in error blocks.
func BuildFrom(ctx context.Context, name string, opts Options, loadOpts ...spec.Option) *Document {
	log := opts.logger()
	log.Info("rendering spec",
		"source", name,
		"resources", opts.Resources,
		"operation_ids", opts.OperationIDs)

	loadOpts = append(loadOpts, spec.WithLogger(log), spec.WithSourceName(name))
	if opts.Timeout > 0 {
		loadOpts = append(loadOpts, spec.WithTimeout(opts.Timeout))
	}

	repo, err := spec.LoadWithOptions(ctx, loadOpts...)
	if err != nil {
		log.Error("unable to process spec", "source", name, "error", err)
		log.Debug("load failure stack", "stack", string(debug.Stack()))
		return LoadFailure(name, err)
	}
	return BuildFromRepository(repo, opts)
}

// BuildFromRepository renders the selected operations of a loaded spec.
// Timeout is ignored.
func BuildFromRepository(repo *spec.Repository, opts Options) *Document {
	b := newBuilder(repo, opts)
	doc := &Document{
		Source:  repo.Source(),
		Title:   repo.Document().Path("info", "title").Text(),
		Version: repo.Version(),
	}

	ops := repo.Operations(spec.OperationFilter{
		Resources:    opts.Resources,
		OperationIDs: opts.OperationIDs,
	})
	b.log.Info("building operations", "count", len(ops))
	for _, op := range ops {
		doc.Sections = append(doc.Sections, b.operationSection(op))
	}
	return doc
}

// DescribeModel renders a named model: a table of its properties followed,
// depth first, by a section per property with nested structure. maxDepth
// bounds the nesting as Options.MaxDepth does.
func DescribeModel(repo *spec.Repository, model string, maxDepth int, log spec.Logger) (*Section, error) {
	b := newBuilder(repo, Options{MaxDepth: maxDepth, Logger: log})
	name := spec.ResolveModelName(model)

	props, err := b.classifier.ModelProperties(name)
	if err != nil {
		return nil, fmt.Errorf("render: describing model %s: %w", name, err)
	}
	sec := b.section(name + " model")
	sec.Table = nestedTable(props)
	if desc := modelDescription(repo, name); desc != "" {
		sec.Paragraphs = []string{desc}
	}
	for _, child := range props {
		if !child.NeedsFurtherDescription() {
			continue
		}
		if err := b.describe(child, 1, "property", &sec.Sections); err != nil {
			return nil, fmt.Errorf("render: describing model %s: %w", name, err)
		}
	}
	return sec, nil
}

func modelDescription(repo *spec.Repository, name string) string {
	def, _ := repo.Model(name)
	return def.Get("description").Text()
}

type builder struct {
	repo       *spec.Repository
	classifier *property.Classifier
	log        spec.Logger
	maxDepth   int
	ids        idRegistry
}

func newBuilder(repo *spec.Repository, opts Options) *builder {
	return &builder{
		repo:       repo,
		classifier: property.NewClassifier(repo),
		log:        opts.logger(),
		maxDepth:   opts.MaxDepth,
		ids:        make(idRegistry),
	}
}

func (b *builder) section(title string) *Section {
	return &Section{ID: b.ids.next(title), Title: title}
}

func (b *builder) operationSection(op *spec.Operation) *Section {
	title := op.Title()
	b.log.Debug("building operation", "title", title, "operation_id", op.OperationID)

	sec := b.section(title)
	sec.Sections = append(sec.Sections, b.descriptionSection(op))

	req, err := b.requestSection(op)
	if err != nil {
		b.log.Error("unable to document operation",
			"title", title,
			"operation_id", op.OperationID,
			"error", err)
		sec.Error = &ErrorBlock{
			Message: "Unable to document operation " + title,
			Cause:   err.Error(),
		}
		return sec
	}
	sec.Sections = append(sec.Sections, req)
	return sec
}

func (b *builder) descriptionSection(op *spec.Operation) *Section {
	sec := b.section(DescriptionTitle)
	text := op.Description
	if text == "" {
		text = op.Summary
	}
	if text != "" {
		sec.Paragraphs = append(sec.Paragraphs, text)
	}
	if op.Deprecated {
		sec.Paragraphs = append(sec.Paragraphs, "Deprecated.")
	}
	return sec
}

func (b *builder) requestSection(op *spec.Operation) (*Section, error) {
	sec := b.section(RequestParametersTitle)

	call := b.section(CallParametersTitle)
	call.Table = &Table{Columns: CallParameterColumns, Rows: [][]string{}}
	for _, p := range op.Parameters {
		call.Table.Rows = append(call.Table.Rows, []string{
			p.Name,
			p.In,
			p.Description,
			b.repo.ParameterTypeDescription(p),
		})
	}
	sec.Sections = append(sec.Sections, call)

	if body := b.classifier.BodyProperty(b.repo.BodyParameter(op)); body != nil {
		if err := b.describe(body, 0, "parameter", &sec.Sections); err != nil {
			return nil, err
		}
	}
	return sec, nil
}

// describe appends a section for prop and then, depth first, one for each
// nested property that needs further description.
func (b *builder) describe(prop *property.Property, depth int, noun string, out *[]*Section) error {
	b.log.Debug("describing property", "key", prop.Key, "kind", prop.Kind().String(), "depth", depth)

	nested, err := prop.NestedProperties()
	if err != nil {
		return err
	}
	sec := b.section(fmt.Sprintf("%s %s (%s)", prop.Key, noun, prop.SubType()))
	sec.Table = nestedTable(nested)
	*out = append(*out, sec)

	if b.maxDepth > 0 && depth >= b.maxDepth {
		return nil
	}
	for _, child := range nested {
		if !child.NeedsFurtherDescription() {
			continue
		}
		if err := b.describe(child, depth+1, noun, out); err != nil {
			return err
		}
	}
	return nil
}

func nestedTable(props []*property.Property) *Table {
	t := &Table{Columns: NestedPropertyColumns, Rows: make([][]string, 0, len(props))}
	for _, p := range props {
		t.Rows = append(t.Rows, []string{p.Key, p.Description, p.TypeDescription()})
	}
	return t
}
