// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The ingestion pipeline lives here: it dispatches a typed request to
// the fetch/transcribe/resolve capabilities, validates the result and
// assembles the Source record. The notebook service applies the pure
// notebook transformations through the store's single-writer Update.
package services
