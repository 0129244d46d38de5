package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	_ "image/gif"  // register decoders for the formats a photo may arrive in
	_ "image/jpeg" // (png's decoder comes with the encoder import above)
)

// Grayscale decodes a raster image, converts it to 8-bit grey and re-encodes
// it as PNG. Handwritten photos recognize noticeably better without color.
func Grayscale(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	grey := image.NewGray(bounds)
	draw.Draw(grey, bounds, src, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, grey); err != nil {
		return nil, fmt.Errorf("failed to encode greyscale image: %w", err)
	}
	return buf.Bytes(), nil
}

// detectImageMIME sniffs the image format and returns its MIME type,
// e.g. "image/png".
func detectImageMIME(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image config: %w", err)
	}
	return "image/" + format, nil
}
