// Package ocr is the boundary to the external text recognition capability.
//
// Two engines are provided: a local Tesseract engine that shells out to the
// tesseract binary, and a Google Document AI engine for photos the local
// engine cannot read. Both consume raw image bytes and return the
// recognized plain text; everything downstream works on that text alone.
//
// Images are expected to be preprocessed with Grayscale before recognition,
// which is the only image normalization this tool performs.
package ocr

import "context"

// Engine recognizes text in a raster image.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}
