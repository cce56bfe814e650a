package services

import (
	"Mediabox/internal/config"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Size labels the image worker understands.
var validSizes = map[string]bool{
	"preview": true,
	"xs":      true,
	"sm":      true,
	"md":      true,
	"lg":      true,
	"xl":      true,
}

func IsValidSize(size string) bool {
	return validSizes[size]
}

type ResizeResult struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// WorkerError carries the HTTP status the asset worker answered with, so
// handlers can forward it instead of collapsing everything into a 500.
type WorkerError struct {
	StatusCode int
	Body       string
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("image worker returned status %d: %s", e.StatusCode, e.Body)
}

// ResizeService is the boundary to the external asset-processing worker. The
// worker is a black box: given a source URL and a size label it either hands
// back a content URL with dimensions or fails with a status code.
type ResizeService interface {
	Resize(sourceURL, sizeLabel string) (*ResizeResult, error)
}

type resizeServiceImpl struct {
	configuration *config.Configuration
	client        *http.Client
	logService    LogService
}

func NewResizeService(configuration *config.Configuration, logService LogService) ResizeService {
	return &resizeServiceImpl{
		configuration: configuration,
		client:        &http.Client{Timeout: 30 * time.Second},
		logService:    logService,
	}
}

func (s *resizeServiceImpl) Resize(sourceURL, sizeLabel string) (*ResizeResult, error) {
	if !IsValidSize(sizeLabel) {
		return nil, fmt.Errorf("invalid size label %q", sizeLabel)
	}

	form := url.Values{}
	form.Set("url", sourceURL)
	form.Set("size", sizeLabel)

	resp, err := s.client.Post(
		s.configuration.Media.ImageWorkerURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("image worker unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logService.Log.WithField("status", resp.StatusCode).Error("image worker rejected resize request")
		return nil, &WorkerError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result ResizeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid image worker response: %w", err)
	}
	return &result, nil
}
