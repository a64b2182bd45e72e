// Package imaging connects colour values to raster images for the MCP server.
//
// It samples pixels of image files into colour.Colour values, extracts
// quantized palettes and renders colours back out as PNG swatches.
// Coordinates follow the image/draw convention: (0,0) is the top-left
// corner and Y increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless and can run concurrently.
//
// # Swatches
//
// Each colour is drawn as a square cell. Translucent colours are composited
// over a light/dark checkerboard so that their alpha stays visible once the
// PNG is displayed. The result is returned as base64-encoded PNG data.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates or regions outside image bounds
//   - File I/O and decode errors during image loading
//   - An empty colour list or non-positive swatch size
//   - Encoding errors during image output
package imaging
