// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"image"
	"os"

	// Register JPEG and PNG decoders for image.DecodeConfig.
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/pdiddy/webpify/pkg/types"
)

const (
	defaultMaxWidth  = 1600
	defaultMaxHeight = 1600
	defaultQuality   = 80
)

// WebPEncoder re-encodes JPEG and PNG images as lossy WebP, scaling images
// that exceed the configured bounding box down to fit it. Images already
// inside the box keep their pixel dimensions; nothing is ever enlarged.
type WebPEncoder struct {
	maxWidth  int
	maxHeight int
	quality   float32
}

// NewWebPEncoder creates an encoder from the conversion settings. Zero or
// negative limits fall back to the defaults (1600x1600 box, quality 80).
func NewWebPEncoder(cfg types.ConvertConfig) *WebPEncoder {
	maxWidth := cfg.MaxWidth
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}
	maxHeight := cfg.MaxHeight
	if maxHeight <= 0 {
		maxHeight = defaultMaxHeight
	}
	quality := cfg.Quality
	if quality <= 0 {
		quality = defaultQuality
	}
	return &WebPEncoder{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		quality:   float32(quality),
	}
}

// Convert decodes the image at srcPath, resizes it if either dimension
// exceeds the bounding box, and writes the WebP result to dstPath.
func (e *WebPEncoder) Convert(srcPath, dstPath string) error {
	width, height, err := imageSize(srcPath)
	if err != nil {
		return fmt.Errorf("reading dimensions of %s: %w", srcPath, err)
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", srcPath, err)
	}

	// Either dimension overflowing the box triggers a fit-inside resize.
	// imaging.Fit preserves aspect ratio and never upscales.
	if width > e.maxWidth || height > e.maxHeight {
		img = imaging.Fit(img, e.maxWidth, e.maxHeight, imaging.Lanczos)
	}

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dstPath, err)
	}
	if err := webp.Encode(out, img, &webp.Options{Quality: e.quality}); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", dstPath, err)
	}
	return out.Close()
}

// imageSize reads the pixel dimensions from the image header without
// decoding pixel data.
func imageSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
