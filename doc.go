// Package swaggerdoc generates request documentation from Swagger 2.0 and
// OpenAPI 3.x specifications.
//
// For each selected operation it produces a description, a table of call
// parameters, and one nested table per model or inline object reachable
// from the body parameter, walking the model graph depth first. Output is
// a tree of titled sections that can be written as Markdown, fixed-width
// text, JSON, or YAML.
//
// # Overview
//
// The library consists of three packages:
//
//   - spec: Load a spec from a URL, a file, bytes, or a decoded document and
//     answer structural queries: operations, parameters, models, and
//     collapsed model properties (allOf merged in declaration order)
//   - property: Classify schema fragments into property kinds (primitive,
//     object reference, arrays, inline objects) and resolve nested
//     properties with cyclic reference detection
//   - render: Build the documentation tree for selected operations or a
//     single model, and write it in one of the supported formats
//
// Typed errors live in oaserrors and support errors.Is and errors.As.
//
// # Quick Start
//
// Render the pet operations of the public petstore:
//
//	import "github.com/erraggy/swaggerdoc/render"
//
//	doc := render.Build(ctx, "https://petstore.swagger.io/v2/swagger.json", render.Options{
//		Resources: []string{"pet"},
//	})
//	if err := render.Write(os.Stdout, doc, render.FormatMarkdown); err != nil {
//		log.Fatal(err)
//	}
//
// Build never fails. A spec that cannot be fetched or parsed yields a
// document holding a single error block, and an operation whose models are
// missing or cyclic gets an error block in place of its parameter tables
// while the other operations render normally.
//
// Query a spec directly:
//
//	import (
//		"github.com/erraggy/swaggerdoc/property"
//		"github.com/erraggy/swaggerdoc/spec"
//	)
//
//	repo, err := spec.Load(ctx, "swagger.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, op := range repo.Operations(spec.ParseOperationFilter("pet, store", "")) {
//		body := property.NewClassifier(repo).BodyProperty(repo.BodyParameter(op))
//		if body != nil {
//			fmt.Println(op.Title(), body.TypeDescription())
//		}
//	}
//
// # Command-Line Tool
//
// The swaggerdoc command wraps the library:
//
//	go install github.com/erraggy/swaggerdoc/cmd/swaggerdoc@latest
//
//	swaggerdoc render --resources pet swagger.json
//	swaggerdoc operations -f json openapi.yaml
//	swaggerdoc model swagger.json Pet
//	swaggerdoc mcp --env-file .env
//
// The mcp command serves the list_operations, render_docs, and
// describe_model tools over the Model Context Protocol.
package swaggerdoc
