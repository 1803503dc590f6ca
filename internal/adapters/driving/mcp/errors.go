// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Wayfarer. It lets AI assistants converse with the engine and
// query the local fact base.
package mcp

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("mcp: assistant service is required")
