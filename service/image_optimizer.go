package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityThumb   = 60
	qualityProduct = 80
	// Size settings (max dimension)
	maxSizeThumb   = 300
	maxSizeProduct = 1024
)

// ImageSize selects the output dimensions and quality of OptimizeImage
type ImageSize string

const (
	ImageSizeThumb   ImageSize = "thumb"
	ImageSizeProduct ImageSize = "product"
)

// OptimizeImage converts an uploaded image to JPEG, shrinking it to fit the
// size's max dimension while keeping the aspect ratio. Smaller images are not enlarged.
// Note: Using JPEG instead of WebP to avoid CGO dependency.
func OptimizeImage(imageData []byte, size ImageSize) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim int
	var quality int

	switch size {
	case ImageSizeThumb:
		maxDim = maxSizeThumb
		quality = qualityThumb
	case ImageSizeProduct:
		maxDim = maxSizeProduct
		quality = qualityProduct
	default:
		maxDim = maxSizeProduct
		quality = qualityProduct
		log.Printf("⚠️  Unknown size '%s', defaulting to product", size)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxDim || height > maxDim {
		log.Printf("🔄 Resizing image: %dx%d to fit %d", width, height, maxDim)
		resizedImg = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	// Transparent PNGs get a white background instead of black
	flattened := imaging.New(resizedImg.Bounds().Dx(), resizedImg.Bounds().Dy(), image.White)
	flattened = imaging.Overlay(flattened, resizedImg, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flattened, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	optimizedData := buf.Bytes()

	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, len(optimizedData))
	return optimizedData, nil
}
