package render

// Messages of the error block produced when a spec cannot be loaded.
const (
	LoadFailureMessage = "Unable to process OpenApi file: "
	LoadFailureAdvice  = "Please check that the URL is a valid Swagger api-docs URL and it is accessible"
)

// Section titles
const (
	DescriptionTitle       = "Description"
	RequestParametersTitle = "Request parameters"
	CallParametersTitle    = "Call parameters"
)

// Column sets of the generated tables.
var (
	CallParameterColumns = []Column{
		{Header: "Name", Width: 10},
		{Header: "Position", Width: 10},
		{Header: "Description", Width: 60},
		{Header: "Type", Width: 20},
	}
	NestedPropertyColumns = []Column{
		{Header: "Name", Width: 20},
		{Header: "Description", Width: 60},
		{Header: "Type", Width: 20},
	}
)

// Document is the root of a rendered documentation tree.
type Document struct {
	// Source is the URL, path, or name of the spec
	Source string `json:"source" yaml:"source"`
	// Title is the spec's info.title, if any
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Version is the declared swagger/openapi version
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Error is set when the spec could not be loaded; Sections is then empty
	Error    *ErrorBlock `json:"error,omitempty" yaml:"error,omitempty"`
	Sections []*Section  `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Failed reports whether the document, or any section in it, carries an error.
func (d *Document) Failed() bool {
	if d.Error != nil {
		return true
	}
	for _, s := range d.Sections {
		if s.failed() {
			return true
		}
	}
	return false
}

// Section is a titled node holding text, at most one table, an optional
// error, and child sections.
type Section struct {
	// ID is a slug of the title, unique within the document
	ID         string      `json:"id" yaml:"id"`
	Title      string      `json:"title" yaml:"title"`
	Paragraphs []string    `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Table      *Table      `json:"table,omitempty" yaml:"table,omitempty"`
	Error      *ErrorBlock `json:"error,omitempty" yaml:"error,omitempty"`
	Sections   []*Section  `json:"sections,omitempty" yaml:"sections,omitempty"`
}

func (s *Section) failed() bool {
	if s.Error != nil {
		return true
	}
	for _, child := range s.Sections {
		if child.failed() {
			return true
		}
	}
	return false
}

// Find returns the first section, depth first, with the given title.
func (s *Section) Find(title string) *Section {
	if s.Title == title {
		return s
	}
	return findSection(s.Sections, title)
}

// Find returns the first section, depth first, with the given title.
func (d *Document) Find(title string) *Section {
	return findSection(d.Sections, title)
}

func findSection(sections []*Section, title string) *Section {
	for _, s := range sections {
		if found := s.Find(title); found != nil {
			return found
		}
	}
	return nil
}

// Table is a header row plus body rows. Column widths are relative.
type Table struct {
	Columns []Column   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Column is one table column.
type Column struct {
	Header string `json:"header" yaml:"header"`
	Width  int    `json:"width" yaml:"width"`
}

// ErrorBlock is a user-facing error in place of content.
type ErrorBlock struct {
	Message string `json:"message" yaml:"message"`
	Advice  string `json:"advice,omitempty" yaml:"advice,omitempty"`
	// Cause is the underlying error text, for diagnostics
	Cause string `json:"cause,omitempty" yaml:"cause,omitempty"`
}

// LoadFailure returns the document reported when source cannot be loaded.
func LoadFailure(source string, cause error) *Document {
	block := &ErrorBlock{
		Message: LoadFailureMessage + source,
		Advice:  LoadFailureAdvice,
	}
	if cause != nil {
		block.Cause = cause.Error()
	}
	return &Document{Source: source, Error: block}
}
