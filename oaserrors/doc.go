// Package oaserrors provides structured error types for the swaggerdoc library.
//
// Import path: github.com/erraggy/swaggerdoc/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a spec that could not be loaded apart from a single
// operation whose models could not be described.
//
// # Error Types
//
//   - [SpecLoadError]: the spec source was unreachable, not JSON/YAML, or not
//     shaped like an OpenAPI document
//   - [UnknownModelError]: a model name or $ref did not resolve to a definition
//   - [CyclicModelReferenceError]: a chain of model references revisited a model
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrSpecLoad]: Matches any [SpecLoadError]
//   - [ErrUnknownModel]: Matches any [UnknownModelError]
//   - [ErrCyclicModelReference]: Matches any [CyclicModelReferenceError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Load failures are terminal for one source:
//
//	repo, err := spec.Load(ctx, "https://petstore.swagger.io/v2/swagger.json")
//	if errors.Is(err, oaserrors.ErrSpecLoad) {
//	    // render a single error block for this source
//	}
//
// Model lookup failures are scoped to the operation being described:
//
//	props, err := body.NestedProperties()
//	var unknown *oaserrors.UnknownModelError
//	if errors.As(err, &unknown) {
//	    fmt.Println("missing model:", unknown.Model)
//	}
package oaserrors
