package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDrive struct {
	name string
	data []byte
	err  error
}

func (d *fakeDrive) UploadImage(ctx context.Context, fileName string, data []byte) (string, string, error) {
	if d.err != nil {
		return "", "", d.err
	}
	d.name = fileName
	d.data = data
	return "file-1", "https://drive.google.com/uc?id=file-1", nil
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizeImageShrinksLargeImages(t *testing.T) {
	out, err := OptimizeImage(pngBytes(t, 2048, 1024), ImageSizeProduct)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1024, 512), img.Bounds())
}

func TestOptimizeImageKeepsSmallImages(t *testing.T) {
	out, err := OptimizeImage(pngBytes(t, 200, 100), ImageSizeProduct)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestOptimizeImageRejectsGarbage(t *testing.T) {
	_, err := OptimizeImage([]byte("not an image"), ImageSizeThumb)
	assert.Error(t, err)
}

func TestUploadProductImage(t *testing.T) {
	drive := &fakeDrive{}
	svc := NewUploadService(drive)
	svc.now = func() time.Time { return time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC) }

	resp, err := svc.UploadProductImage(context.Background(), "Pizza Calabresa.PNG", pngBytes(t, 50, 50))
	require.NoError(t, err)
	assert.Equal(t, "pizza-calabresa-20260105103000.jpg", drive.name)
	assert.Equal(t, "file-1", resp.FileID)
	assert.Equal(t, len(drive.data), resp.Size)
}

func TestUploadProductImageErrors(t *testing.T) {
	svc := NewUploadService(&fakeDrive{})
	_, err := svc.UploadProductImage(context.Background(), "notes.txt", pngBytes(t, 10, 10))
	assert.Error(t, err)

	failing := NewUploadService(&fakeDrive{err: errors.New("quota")})
	_, err = failing.UploadProductImage(context.Background(), "a.png", pngBytes(t, 10, 10))
	assert.ErrorContains(t, err, "quota")
}
