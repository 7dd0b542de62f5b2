// Package driving defines the interfaces through which the outside world
// drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement these interfaces, and driving adapters
// (CLI, MCP) call them.
//
//   - IngestionService: Turns raw user inputs into validated sources
//   - NotebookService: Manages notebooks and their sources
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
