// Package server implements the MCP (Model Context Protocol) server for the
// text overlay tools.
//
// This package provides a JSON-RPC 2.0 server that exposes text recognition
// and overlay building through the MCP protocol, for use with Claude and
// other MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Recognition:
//   - text_recognize: Run OCR on an image, replacing held observations
//   - text_observations: Snapshot of the currently held observations
//
// Overlay Building:
//   - overlay_shapes: Build closed pixel-space paths around observations
//   - overlay_annotate: Draw the shapes onto the image, returned as base64 PNG
//
// # Session State
//
// The server holds one recognition session. text_recognize fully replaces
// the session's observation list; the overlay tools and text_observations
// read whatever generation is currently held. A failed recognition leaves
// the list empty, so overlay calls after a failure produce zero shapes.
//
// # Image Caching
//
// Images are cached by path (decoded pixels plus the original encoded
// bytes) and reused across tool calls for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
