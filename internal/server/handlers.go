package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/text-overlay-mcp/internal/geometry"
	"github.com/ironsheep/text-overlay-mcp/internal/imaging"
	"github.com/ironsheep/text-overlay-mcp/internal/overlay"
	"github.com/ironsheep/text-overlay-mcp/internal/recognition"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "text_recognize", "overlay_shapes").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Recognition
	case "text_recognize":
		return s.handleTextRecognize(args)
	case "text_observations":
		return s.handleTextObservations(args)

	// Overlay Building
	case "overlay_shapes":
		return s.handleOverlayShapes(args)
	case "overlay_annotate":
		return s.handleOverlayAnnotate(args)

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

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Recognition Handlers ===

type textRecognizeArgs struct {
	Path       string `json:"path"`
	Language   string `json:"language"`
	Preprocess bool   `json:"preprocess"`
	Binarize   bool   `json:"binarize"`
}

// observationResult is the JSON shape of one observation in tool output.
type observationResult struct {
	Text       string         `json:"text,omitempty"`
	Confidence float64        `json:"confidence"`
	Box        geometry.Rect  `json:"box"`
	Quad       *geometry.Quad `json:"quad,omitempty"`
}

// RecognizeResult contains the observations held after a recognition call.
type RecognizeResult struct {
	Observations []observationResult `json:"observations"`
	Count        int                 `json:"count"`
}

func (s *Server) handleTextRecognize(args json.RawMessage) (interface{}, error) {
	var a textRecognizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}

	data, err := s.cache.LoadBytes(a.Path)
	if err != nil {
		return nil, err
	}

	// The stdio request loop is serial, so reconfiguring the engine
	// between Recognize calls is safe.
	if s.tess != nil {
		s.tess.Language = a.Language
		s.tess.Preprocess = a.Preprocess
		s.tess.Binarize = a.Binarize
	}

	observations, err := s.session.Recognize(data)
	if err != nil {
		return nil, err
	}
	return recognizeResult(observations), nil
}

func (s *Server) handleTextObservations(args json.RawMessage) (interface{}, error) {
	return recognizeResult(s.session.Observations()), nil
}

func recognizeResult(observations []recognition.Observation) *RecognizeResult {
	results := make([]observationResult, 0, len(observations))
	for _, o := range observations {
		r := observationResult{Box: o.BoundingBox()}
		if quad, ok := o.Quad(); ok {
			q := quad
			r.Quad = &q
		}
		if text, ok := o.(recognition.TextObservation); ok {
			r.Text = text.Text
			r.Confidence = text.Confidence
		}
		results = append(results, r)
	}
	return &RecognizeResult{
		Observations: results,
		Count:        len(results),
	}
}

// === Overlay Handlers ===

type targetArgs struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type overlayShapesArgs struct {
	Path            string      `json:"path"`
	Shape           string      `json:"shape"`
	Target          *targetArgs `json:"target"`
	CornerRadius    float64     `json:"corner_radius"`
	ExpansionFactor float64     `json:"expansion_factor"`
}

// ShapeResult pairs one observation's overlay path with its text.
type ShapeResult struct {
	Text string       `json:"text,omitempty"`
	Path overlay.Path `json:"path"`
}

// ShapesResult contains the overlay paths built for the held observations.
type ShapesResult struct {
	Shapes []ShapeResult      `json:"shapes"`
	Count  int                `json:"count"`
	Shape  string             `json:"shape"`
	Target geometry.PixelRect `json:"target"`
}

func (s *Server) handleOverlayShapes(args json.RawMessage) (interface{}, error) {
	var a overlayShapesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	applyOverlayDefaults(&a.Shape, &a.CornerRadius, &a.ExpansionFactor)

	target, err := s.resolveTarget(a.Path, a.Target)
	if err != nil {
		return nil, err
	}

	observations := s.session.Observations()
	shapes := make([]ShapeResult, 0, len(observations))
	for _, o := range observations {
		path, err := buildPath(o, a.Shape, target, a.CornerRadius, a.ExpansionFactor)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, ShapeResult{Text: observationText(o), Path: path})
	}

	return &ShapesResult{
		Shapes: shapes,
		Count:  len(shapes),
		Shape:  a.Shape,
		Target: target,
	}, nil
}

type overlayAnnotateArgs struct {
	Path            string  `json:"path"`
	Shape           string  `json:"shape"`
	StrokeColor     string  `json:"stroke_color"`
	StrokeWidth     int     `json:"stroke_width"`
	ShowLabels      bool    `json:"show_labels"`
	CornerRadius    float64 `json:"corner_radius"`
	ExpansionFactor float64 `json:"expansion_factor"`
}

func (s *Server) handleOverlayAnnotate(args json.RawMessage) (interface{}, error) {
	var a overlayAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	applyOverlayDefaults(&a.Shape, &a.CornerRadius, &a.ExpansionFactor)
	if a.StrokeWidth == 0 {
		a.StrokeWidth = 2
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	target := geometry.PixelRect{
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}

	observations := s.session.Observations()
	paths := make([]overlay.Path, 0, len(observations))
	var labels []string
	for _, o := range observations {
		path, err := buildPath(o, a.Shape, target, a.CornerRadius, a.ExpansionFactor)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
		if a.ShowLabels {
			labels = append(labels, observationText(o))
		}
	}

	return overlay.Annotate(img, paths, overlay.Style{
		StrokeHex:   a.StrokeColor,
		StrokeWidth: a.StrokeWidth,
		Labels:      labels,
	})
}

// applyOverlayDefaults fills the shared overlay parameters in place.
func applyOverlayDefaults(shape *string, cornerRadius, expansionFactor *float64) {
	if *shape == "" {
		*shape = "quad"
	}
	if *cornerRadius == 0 {
		*cornerRadius = overlay.DefaultCornerRadius
	}
	if *expansionFactor == 0 {
		*expansionFactor = overlay.DefaultExpansionFactor
	}
}

// resolveTarget returns the explicit target rectangle, or the image's
// full-pixel rectangle when none was given.
func (s *Server) resolveTarget(path string, t *targetArgs) (geometry.PixelRect, error) {
	if t != nil {
		return geometry.PixelRect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}, nil
	}
	dims, err := imaging.GetDimensions(s.cache, path)
	if err != nil {
		return geometry.PixelRect{}, err
	}
	return geometry.PixelRect{
		Width:  float64(dims.Width),
		Height: float64(dims.Height),
	}, nil
}

// buildPath builds the requested overlay shape for one observation.
// Observations without corner geometry fall back to their bounding box's
// corners for the quadrilateral shapes.
func buildPath(o recognition.Observation, shape string, target geometry.PixelRect, cornerRadius, expansionFactor float64) (overlay.Path, error) {
	switch shape {
	case "box":
		return overlay.BoundingBox(o.BoundingBox(), target), nil
	case "quad", "rounded", "expanded":
		quad, ok := o.Quad()
		if !ok {
			quad = o.BoundingBox().Quad()
		}
		switch shape {
		case "rounded":
			return overlay.RoundedQuad(quad, target, cornerRadius), nil
		case "expanded":
			return overlay.ExpandedQuad(quad, target, expansionFactor), nil
		default:
			return overlay.Quad(quad, target), nil
		}
	default:
		return nil, fmt.Errorf("unknown shape: %s", shape)
	}
}

func observationText(o recognition.Observation) string {
	if text, ok := o.(recognition.TextObservation); ok {
		return text.Text
	}
	return ""
}
