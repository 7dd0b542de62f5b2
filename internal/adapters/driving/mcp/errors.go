// Package mcp provides an MCP (Model Context Protocol) server adapter for Tome.
// It is the surface through which AI assistants consume notebook source
// content for grounding generated artifacts.
package mcp

import "errors"

// ErrMissingNotebookService is returned when the notebook service is not provided.
var ErrMissingNotebookService = errors.New("mcp: notebook service is required")
