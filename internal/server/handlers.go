package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/colour-mcp/internal/colour"
	"github.com/ironsheep/colour-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "colour_parse", "colour_mix").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Decodes and validates its arguments
//  2. Applies configured defaults for optional parameters
//  3. Parses the colour strings it was given
//  4. Calls into the colour or imaging package
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "colour_parse":
		return s.handleColourParse(args)
	case "colour_transform":
		return s.handleColourTransform(args)
	case "colour_edit":
		return s.handleColourEdit(args)
	case "colour_mix":
		return s.handleColourMix(args)
	case "colour_swatch":
		return s.handleColourSwatch(args)
	case "image_sample_colour":
		return s.handleImageSampleColour(args)
	case "image_palette":
		return s.handleImagePalette(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ChannelValues holds the raw channel values of a colour.
type ChannelValues struct {
	Red        float64 `json:"red"`
	Green      float64 `json:"green"`
	Blue       float64 `json:"blue"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Alpha      float64 `json:"alpha"`
}

// ColourResult describes one colour in every supported notation.
type ColourResult struct {
	Hex      string        `json:"hex"`
	HexAlpha string        `json:"hex_alpha"`
	RGB      string        `json:"rgb"`
	HSL      string        `json:"hsl"`
	Name     string        `json:"name,omitempty"`
	Channels ChannelValues `json:"channels"`
}

func describe(c colour.Colour) *ColourResult {
	name, _ := c.Name()
	return &ColourResult{
		Hex:      c.Hex(),
		HexAlpha: c.HexAlpha(),
		RGB:      c.RGB(),
		HSL:      c.HSL(),
		Name:     name,
		Channels: ChannelValues{
			Red:        c.Red(),
			Green:      c.Green(),
			Blue:       c.Blue(),
			Hue:        c.Hue(),
			Saturation: c.Saturation(),
			Lightness:  c.Lightness(),
			Alpha:      c.Alpha(),
		},
	}
}

// === Colour Handlers ===

type colourParseArgs struct {
	Colour string `json:"colour" validate:"required"`
}

func (s *Server) handleColourParse(args json.RawMessage) (interface{}, error) {
	var a colourParseArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := colour.Parse(a.Colour)
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

// operations maps colour_transform op names to Colour methods. Ops without
// a parameter ignore the amount.
var operations = map[string]func(colour.Colour, float64) colour.Colour{
	"lighten":            colour.Colour.Lighten,
	"lighten_percent":    colour.Colour.LightenPercent,
	"darken":             colour.Colour.Darken,
	"darken_percent":     colour.Colour.DarkenPercent,
	"saturate":           colour.Colour.Saturate,
	"saturate_percent":   colour.Colour.SaturatePercent,
	"desaturate":         colour.Colour.Desaturate,
	"desaturate_percent": colour.Colour.DesaturatePercent,
	"adjust_hue":         colour.Colour.AdjustHue,
	"opacify":            colour.Colour.Opacify,
	"transparentize":     colour.Colour.Transparentize,
	"grayscale":          func(c colour.Colour, _ float64) colour.Colour { return c.Grayscale() },
	"complement":         func(c colour.Colour, _ float64) colour.Colour { return c.Complement() },
	"invert":             func(c colour.Colour, _ float64) colour.Colour { return c.Invert() },
}

type operationArgs struct {
	Op     string  `json:"op" validate:"required,oneof=lighten lighten_percent darken darken_percent saturate saturate_percent desaturate desaturate_percent adjust_hue opacify transparentize grayscale complement invert"`
	Amount float64 `json:"amount"`
}

type colourTransformArgs struct {
	Colour     string          `json:"colour" validate:"required"`
	Operations []operationArgs `json:"operations" validate:"required,min=1,dive"`
}

func (s *Server) handleColourTransform(args json.RawMessage) (interface{}, error) {
	var a colourTransformArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := colour.Parse(a.Colour)
	if err != nil {
		return nil, err
	}
	for _, op := range a.Operations {
		c = operations[op.Op](c, op.Amount)
	}
	return describe(c), nil
}

type colourEditArgs struct {
	Colour   string             `json:"colour" validate:"required"`
	Mode     string             `json:"mode" validate:"required,oneof=adjust scale change"`
	Channels map[string]float64 `json:"channels" validate:"required,min=1"`
}

func (s *Server) handleColourEdit(args json.RawMessage) (interface{}, error) {
	var a colourEditArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := colour.Parse(a.Colour)
	if err != nil {
		return nil, err
	}

	values := make(colour.Channels, len(a.Channels))
	for name, v := range a.Channels {
		// Unknown channel names are ignored, like unknown Channel values in Adjust.
		if ch, ok := colour.ParseChannel(name); ok {
			values[ch] = v
		}
	}

	switch a.Mode {
	case "adjust":
		c, err = c.Adjust(values)
	case "scale":
		c, err = c.Scale(values)
	default:
		c, err = c.Change(values)
	}
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

type colourMixArgs struct {
	Colour string   `json:"colour" validate:"required"`
	Other  string   `json:"other" validate:"required"`
	Weight *float64 `json:"weight" validate:"omitempty,gte=0,lte=100"`
}

func (s *Server) handleColourMix(args json.RawMessage) (interface{}, error) {
	var a colourMixArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	weight := s.config.DefaultWeight
	if a.Weight != nil {
		weight = *a.Weight
	}

	c, err := colour.Parse(a.Colour)
	if err != nil {
		return nil, err
	}
	mixed, err := c.MixWithString(a.Other, weight)
	if err != nil {
		return nil, err
	}
	return describe(mixed), nil
}

type colourSwatchArgs struct {
	Colours []string `json:"colours" validate:"required,min=1,max=32,dive,required"`
	Size    int      `json:"size" validate:"omitempty,gte=1,lte=512"`
}

func (s *Server) handleColourSwatch(args json.RawMessage) (interface{}, error) {
	var a colourSwatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = s.config.SwatchSize
	}

	colours := make([]colour.Colour, len(a.Colours))
	for i, str := range a.Colours {
		c, err := colour.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("colours[%d]: %w", i, err)
		}
		colours[i] = c
	}
	return imaging.Swatch(colours, a.Size)
}

// === Image Handlers ===

// defaultPaletteCount is the number of colours image_palette returns when
// count is omitted.
const defaultPaletteCount = 5

type imageSampleColourArgs struct {
	Path string `json:"path" validate:"required"`
	X    int    `json:"x" validate:"gte=0"`
	Y    int    `json:"y" validate:"gte=0"`
}

func (s *Server) handleImageSampleColour(args json.RawMessage) (interface{}, error) {
	var a imageSampleColourArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := imaging.SampleFile(s.cache, a.Path, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return describe(c), nil
}

// PaletteColour is one entry of an image_palette result.
type PaletteColour struct {
	*ColourResult
	Percentage float64 `json:"percentage"`
}

type imagePaletteArgs struct {
	Path   string          `json:"path" validate:"required"`
	Count  int             `json:"count" validate:"omitempty,gte=1,lte=64"`
	Region *imaging.Region `json:"region"`
}

func (s *Server) handleImagePalette(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = defaultPaletteCount
	}

	entries, err := imaging.PaletteFile(s.cache, a.Path, a.Count, a.Region)
	if err != nil {
		return nil, err
	}

	colours := make([]PaletteColour, len(entries))
	for i, e := range entries {
		colours[i] = PaletteColour{ColourResult: describe(e.Colour), Percentage: e.Percentage}
	}
	return map[string]interface{}{"colours": colours}, nil
}
