// Package domain defines the core business entities for Tome.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Source: A normalized, text-bearing unit of grounding material
//   - Notebook: An ordered collection of sources
//   - IngestionRequest: A tagged union over the supported input kinds
//
// Notebook mutations are pure value transformations: every operation
// returns a new Notebook and leaves the receiver untouched. The caller
// is responsible for applying the returned value exactly once.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
