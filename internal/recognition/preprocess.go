package recognition

import (
	"bytes"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// contrastBoost is the contrast adjustment applied during preprocessing,
// in bild's (-1, 1) range. Mild on purpose: camera captures of printed
// text mostly need the color cast removed, not a hard stretch.
const contrastBoost = 0.2

// binarizeLevel is the grayscale threshold used when binarizing.
const binarizeLevel = 128

// Preprocess cleans up a photo for text recognition: grayscale conversion
// and a mild contrast boost, plus optional binarization to pure black and
// white. The result is re-encoded as PNG with the original dimensions.
//
// Binarization helps on evenly lit paper but destroys text on photos with
// shadows or gradients, which is why it is opt-in.
func Preprocess(imageData []byte, binarize bool) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image for preprocessing: %w", err)
	}

	var processed image.Image = adjust.Contrast(effect.Grayscale(img), contrastBoost)
	if binarize {
		processed = segment.Threshold(processed, binarizeLevel)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, processed, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode preprocessed image: %w", err)
	}
	return buf.Bytes(), nil
}
