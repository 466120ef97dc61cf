package recognition

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/text-overlay-mcp/internal/geometry"
)

// TesseractEngine recognizes text with the Tesseract OCR engine via
// gosseract. Tesseract and the language data must be installed on the
// system (e.g. apt-get install tesseract-ocr tesseract-ocr-eng).
//
// Tesseract reports word boxes in y-down pixel coordinates. The engine
// converts them into the internal y-up normalized convention here, at the
// boundary, through geometry.Unproject; no other code touches engine
// coordinates. Tesseract only produces axis-aligned boxes, so the
// quadrilateral capability is synthesized from the box corners.
type TesseractEngine struct {
	// Language is the Tesseract language code ("eng", "deu", "chi_sim", ...).
	// Empty means "eng".
	Language string

	// Preprocess runs the bild-based photo cleanup (grayscale + contrast)
	// before recognition. Helps on camera captures; unnecessary for
	// screenshots.
	Preprocess bool

	// Binarize additionally thresholds the preprocessed image to pure
	// black and white. Only consulted when Preprocess is set.
	Binarize bool
}

// NewTesseractEngine returns an engine with the default English language
// and no preprocessing.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{Language: "eng"}
}

// Recognize runs Tesseract on the image bytes and returns one observation
// per recognized word, in Tesseract's reading order.
func (e *TesseractEngine) Recognize(imageData []byte) ([]Observation, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("image has zero dimensions (%dx%d)", cfg.Width, cfg.Height)
	}

	if e.Preprocess {
		imageData, err = Preprocess(imageData, e.Binarize)
		if err != nil {
			return nil, err
		}
	}

	client := gosseract.NewClient()
	defer client.Close()

	language := e.Language
	if language == "" {
		language = "eng"
	}
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	full := geometry.PixelRect{Width: float64(cfg.Width), Height: float64(cfg.Height)}

	observations := make([]Observation, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		observations = append(observations, boxObservation(box, full))
	}
	return observations, nil
}

// boxObservation converts one Tesseract word box into a normalized
// observation against the full-image pixel rectangle.
func boxObservation(box gosseract.BoundingBox, full geometry.PixelRect) TextObservation {
	x1 := float64(box.Box.Min.X)
	y1 := float64(box.Box.Min.Y)
	x2 := float64(box.Box.Max.X)
	y2 := float64(box.Box.Max.Y)

	topLeft := geometry.Unproject(geometry.PixelPoint{X: x1, Y: y1}, full)
	topRight := geometry.Unproject(geometry.PixelPoint{X: x2, Y: y1}, full)
	bottomLeft := geometry.Unproject(geometry.PixelPoint{X: x1, Y: y2}, full)
	bottomRight := geometry.Unproject(geometry.PixelPoint{X: x2, Y: y2}, full)

	quad := geometry.Quad{
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}

	return TextObservation{
		Text:       box.Word,
		Confidence: box.Confidence / 100.0,
		Box: geometry.Rect{
			X:      bottomLeft.X,
			Y:      bottomLeft.Y,
			Width:  topRight.X - bottomLeft.X,
			Height: topRight.Y - bottomLeft.Y,
		},
		Corners: &quad,
	}
}
