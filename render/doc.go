// Package render builds documentation trees from OpenAPI documents and
// writes them as Markdown, plain text, JSON, or YAML.
//
// Each selected operation becomes a section titled "METHOD /path" holding a
// Description section and a Request parameters section. The latter starts
// with a Call parameters table and continues, depth first, with one section
// per body property that has nested structure, titled
// "{key} parameter ({sub type})".
//
// Failures never escape Build. A spec that cannot be loaded yields a document
// holding a single error block; an operation whose models cannot be resolved
// gets an error block in place of its request parameters while the other
// operations render normally.
//
// Example:
//
//	doc := render.Build(ctx, "https://petstore.swagger.io/v2/swagger.json", render.Options{
//	    Resources: []string{"pet"},
//	})
//	err := render.Write(os.Stdout, doc, render.FormatMarkdown)
package render
