// Package server implements the MCP (Model Context Protocol) server for the
// colour tools.
//
// This package provides a JSON-RPC 2.0 server that exposes colour parsing,
// transformation, mixing, swatch rendering and image sampling through the MCP protocol.
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
//   - colour_parse: Describe a colour in every notation
//   - colour_transform: Apply a chain of operations (lighten, adjust_hue, ...)
//   - colour_edit: Adjust, scale or change several channels at once
//   - colour_mix: Alpha-aware blend of two colours
//   - colour_swatch: Render colours as a PNG swatch
//   - image_sample_colour: Read the colour of one pixel of an image file
//   - image_palette: List the most common colours of an image or region
//
// # Argument Validation
//
// Tool arguments are decoded into structs carrying go-playground/validator
// tags. Validation messages use the JSON field names.
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
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
