package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// shapeProperty is the schema fragment shared by the overlay tools.
func shapeProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Overlay shape: 'box' (axis-aligned bounding box), 'quad' (straight quadrilateral), 'rounded' (quadrilateral with rounded corners), 'expanded' (quadrilateral grown outward from its centroid)",
		"enum":        []string{"box", "quad", "rounded", "expanded"},
		"default":     "quad",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The full-image overlay target rectangle is (0, 0, width, height).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Recognition
		{
			Name:        "text_recognize",
			Description: "Run text recognition on an image. Replaces any previously held observations with the new results; each observation carries the recognized text, a confidence score and its normalized bounding geometry.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (e.g., 'eng', 'deu', 'chi_sim')",
						"default":     "eng",
					},
					"preprocess": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply grayscale and contrast cleanup before recognition. Recommended for camera photos.",
						"default":     false,
					},
					"binarize": map[string]interface{}{
						"type":        "boolean",
						"description": "Additionally threshold the preprocessed image to black and white. Only used when preprocess is true.",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "text_observations",
			Description: "Return the observations held from the most recent text_recognize call, in recognition order. Empty if no recognition has run or the last one failed.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Overlay Building
		{
			Name:        "overlay_shapes",
			Description: "Build closed overlay paths (in pixel coordinates) around the currently held observations. Requires a prior text_recognize call. The target rectangle defaults to the full image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image the observations came from (used for the default target rectangle)",
					},
					"shape": shapeProperty(),
					"target": map[string]interface{}{
						"type":        "object",
						"description": "Pixel-space target rectangle {x, y, width, height} to project into. Defaults to (0, 0, image width, image height).",
						"properties": map[string]interface{}{
							"x":      map[string]interface{}{"type": "number"},
							"y":      map[string]interface{}{"type": "number"},
							"width":  map[string]interface{}{"type": "number"},
							"height": map[string]interface{}{"type": "number"},
						},
					},
					"corner_radius": map[string]interface{}{
						"type":        "number",
						"description": "Corner radius in pixels for the 'rounded' shape. Keep below half the shortest edge.",
						"default":     10,
					},
					"expansion_factor": map[string]interface{}{
						"type":        "number",
						"description": "Outward growth factor for the 'expanded' shape (1.1 = 10% outward).",
						"default":     1.1,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "overlay_annotate",
			Description: "Draw overlay shapes for the currently held observations onto the image and return it as base64-encoded PNG. Requires a prior text_recognize call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"shape": shapeProperty(),
					"stroke_color": map[string]interface{}{
						"type":        "string",
						"description": "Stroke color as '#RRGGBB' or '#RRGGBBAA'. Omit for one distinct color per observation.",
					},
					"stroke_width": map[string]interface{}{
						"type":        "integer",
						"description": "Stroke thickness in pixels",
						"default":     2,
					},
					"show_labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the recognized text next to each shape",
						"default":     false,
					},
					"corner_radius": map[string]interface{}{
						"type":        "number",
						"description": "Corner radius in pixels for the 'rounded' shape",
						"default":     10,
					},
					"expansion_factor": map[string]interface{}{
						"type":        "number",
						"description": "Outward growth factor for the 'expanded' shape",
						"default":     1.1,
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
