package controller

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"pizzaria-storefront/models"
)

// ImageUploader stores product images and returns their public URL
type ImageUploader interface {
	UploadProductImage(ctx context.Context, originalName string, data []byte) (*models.ImageUploadResponse, error)
}

// UploadController handles HTTP requests for admin image uploads
type UploadController struct {
	uploader ImageUploader
	maxBytes int64
}

// NewUploadController creates a new UploadController. A nil uploader answers 503.
func NewUploadController(uploader ImageUploader, maxBytes int64) *UploadController {
	return &UploadController{uploader: uploader, maxBytes: maxBytes}
}

// UploadImage handles POST /admin/uploads/image
// Expects a multipart form with the image in the "file" field
func (c *UploadController) UploadImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UploadImage: Received %s request to %s", r.Method, r.URL.Path)

	if c.uploader == nil {
		http.Error(w, "Image upload is not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, c.maxBytes)
	if err := r.ParseMultipartForm(c.maxBytes); err != nil {
		log.Printf("❌ UploadImage: Failed to parse form: %v", err)
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Printf("❌ UploadImage: Missing file field: %v", err)
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ UploadImage: Failed to read file: %v", err)
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	log.Printf("📋 UploadImage: file=%s, size=%d bytes", header.Filename, len(data))

	response, err := c.uploader.UploadProductImage(r.Context(), header.Filename, data)
	if err != nil {
		log.Printf("❌ UploadImage: %v", err)
		http.Error(w, fmt.Sprintf("Failed to upload image: %v", err), http.StatusBadRequest)
		return
	}

	log.Printf("✅ UploadImage: Stored %s as %s", header.Filename, response.FileID)
	writeJSON(w, http.StatusCreated, response, "UploadImage")
}
