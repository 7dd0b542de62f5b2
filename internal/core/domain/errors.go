package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates a malformed URL or reference.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingInput indicates a required file was not provided.
	ErrMissingInput = errors.New("missing input")

	// ErrEmptyContent indicates ingestion produced no groundable text.
	// This is the pipeline's terminal guard: no source with empty
	// content is ever accepted into a notebook.
	ErrEmptyContent = errors.New("empty content")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)
