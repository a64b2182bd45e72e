package server

import "sort"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colourProperty is the schema of a colour string argument.
func colourProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + ". Accepts #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(), hsla() or a CSS colour keyword",
	}
}

// operationNames lists the colour_transform ops in a stable order.
func operationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "colour_parse",
			Description: "Parse a colour and return it as hex, rgb(), hsl(), its keyword if it has one, and raw channel values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour": colourProperty("The colour to describe"),
				},
				"required": []string{"colour"},
			},
		},
		{
			Name:        "colour_transform",
			Description: "Apply a sequence of operations to a colour, in order. Lightness and saturation amounts are on a 0-100 scale, *_percent amounts are relative to the current value, adjust_hue takes degrees, opacify/transparentize take 0-1.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour": colourProperty("The starting colour"),
					"operations": map[string]interface{}{
						"type":        "array",
						"description": "Operations to apply",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"op": map[string]interface{}{
									"type": "string",
									"enum": operationNames(),
								},
								"amount": map[string]interface{}{
									"type":        "number",
									"description": "Operation amount. Ignored by grayscale, complement and invert",
								},
							},
							"required": []string{"op"},
						},
					},
				},
				"required": []string{"colour", "operations"},
			},
		},
		{
			Name:        "colour_edit",
			Description: "Edit several channels of a colour at once. adjust adds to each channel, scale moves each channel by a percentage of itself, change sets absolute values. RGB channels (red, green, blue) and HSL channels (hue, saturation, lightness) cannot be mixed in one edit; alpha combines with either. Unknown channel names are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour": colourProperty("The colour to edit"),
					"mode": map[string]interface{}{
						"type": "string",
						"enum": []string{"adjust", "scale", "change"},
					},
					"channels": map[string]interface{}{
						"type":                 "object",
						"description":          "Channel name to value, e.g. {\"saturation\": 15, \"lightness\": -12}",
						"additionalProperties": map[string]interface{}{"type": "number"},
					},
				},
				"required": []string{"colour", "mode", "channels"},
			},
		},
		{
			Name:        "colour_mix",
			Description: "Blend two colours. The more opaque colour contributes more to the RGB result; alpha is interpolated by weight.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour": colourProperty("The base colour"),
					"other":  colourProperty("The colour mixed in"),
					"weight": map[string]interface{}{
						"type":        "number",
						"description": "Percentage (0-100) contributed by 'other'. Default 50",
						"minimum":     0,
						"maximum":     100,
					},
				},
				"required": []string{"colour", "other"},
			},
		},
		{
			Name:        "colour_swatch",
			Description: "Render colours side by side as a base64-encoded PNG. Translucent colours are drawn over a checkerboard.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colours": map[string]interface{}{
						"type":        "array",
						"description": "Colours to render, left to right (1-32)",
						"items":       colourProperty("A colour"),
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge length of each cell in pixels. Default 64",
					},
				},
				"required": []string{"colours"},
			},
		},
		{
			Name:        "image_sample_colour",
			Description: "Read the colour of a single pixel of a PNG, JPEG or GIF file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_palette",
			Description: "Extract the most common colours of an image or a region of it. Channels are quantized to multiples of 16 before counting; results are sorted by share, most common first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colours to return (1-64). Default 5",
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region; (x1, y1) inclusive, (x2, y2) exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
