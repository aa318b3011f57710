package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage is returned for uploads that are not a decodable PNG, JPEG or GIF
var ErrInvalidImage = errors.New("invalid image")

const (
	// Logos are shown small in cards and briefs
	maxLogoSize  = 512
	logoQuality  = 85
	maxLogoBytes = 5 << 20
)

// OptimizeLogo decodes a PNG, JPEG or GIF logo, fits it inside maxLogoSize x maxLogoSize
// keeping its aspect ratio, flattens transparency onto white and encodes it as JPEG.
func OptimizeLogo(imageData []byte) ([]byte, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidImage)
	}
	if len(imageData) > maxLogoBytes {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, maxLogoBytes)
	}

	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	log.Printf("📸 Logo decoded: format=%s, bounds=%v", format, img.Bounds())

	bounds := img.Bounds()
	if bounds.Dx() > maxLogoSize || bounds.Dy() > maxLogoSize {
		img = imaging.Fit(img, maxLogoSize, maxLogoSize, imaging.Lanczos)
		log.Printf("🔄 Logo resized: %dx%d -> %dx%d", bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	// JPEG has no alpha channel
	background := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), image.White.C)
	flattened := imaging.Overlay(background, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flattened, &jpeg.Options{Quality: logoQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Printf("✓ Logo optimized: output_size=%d bytes", buf.Len())
	return buf.Bytes(), nil
}
