// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ContentFetcher: Retrieves and strips remote web content
//   - FileTranscriber: Extracts text from uploaded files
//   - NotebookStore: Notebook state for the current session
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - MetadataResolver: Best-effort title lookup for video references.
//     Without it, references keep their per-type default title.
//
// ContentFetcher and FileTranscriber carry a total contract: they never
// surface errors past their boundary. Recoverable failures (network,
// decode, unsupported format) become placeholder text so that ingestion
// degrades instead of failing.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or transcriber package
package driven
