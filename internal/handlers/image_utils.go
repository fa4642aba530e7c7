package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"clicktoeat/internal/models"
)

const maxUploadSize = 10 << 20

// parseForm accepts multipart bodies and falls back to url-encoded ones.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxUploadSize)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return &models.DefaultError{Status: http.StatusBadRequest, Message: "invalid form data"}
	}
	return nil
}

// imageFromForm reads the image part of a multipart form. A missing part is
// not an error.
func imageFromForm(form *multipart.Form, key string) (*models.ImageUpload, error) {
	if form == nil {
		return nil, nil
	}
	headers, ok := form.File[key]
	if !ok || len(headers) == 0 {
		return nil, nil
	}
	header := headers[0]
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxUploadSize {
		return nil, models.FieldErrors{{Field: key, Error: "Image is too large"}}
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &models.ImageUpload{FileName: header.Filename, ContentType: contentType, Data: data}, nil
}

// locationsFromValues decodes locations sent either as one JSON array or as
// one JSON object per form value.
func locationsFromValues(values []string) ([]models.Location, error) {
	var result []models.Location
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "null" || raw == "undefined" {
			continue
		}
		if strings.HasPrefix(raw, "[") {
			var arr []models.Location
			if err := json.Unmarshal([]byte(raw), &arr); err != nil {
				return nil, models.FieldErrors{{Field: "locations", Error: "Locations must be a JSON array"}}
			}
			result = append(result, arr...)
			continue
		}
		var item models.Location
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, models.FieldErrors{{Field: "locations", Error: "Location must be a JSON object"}}
		}
		result = append(result, item)
	}
	return result, nil
}
