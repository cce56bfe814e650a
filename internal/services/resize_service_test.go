package services

import (
	"Mediabox/internal/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResizeTestService(workerURL string) ResizeService {
	cfg := &config.Configuration{}
	cfg.Media.ImageWorkerURL = workerURL
	return NewResizeService(cfg, NewLogService(cfg))
}

func TestResizeService_Resize(t *testing.T) {
	worker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://media/original/a.jpg", r.FormValue("url"))
		assert.Equal(t, "xs", r.FormValue("size"))
		_ = json.NewEncoder(w).Encode(ResizeResult{
			URL:    "https://media/resized/xs/a.jpg",
			Width:  320,
			Height: 213,
		})
	}))
	defer worker.Close()

	service := newResizeTestService(worker.URL)
	result, err := service.Resize("https://media/original/a.jpg", "xs")
	require.NoError(t, err)
	assert.Equal(t, "https://media/resized/xs/a.jpg", result.URL)
	assert.Equal(t, 320, result.Width)
	assert.Equal(t, 213, result.Height)
}

func TestResizeService_Resize_WorkerFailure(t *testing.T) {
	worker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such original", http.StatusNotFound)
	}))
	defer worker.Close()

	service := newResizeTestService(worker.URL)
	_, err := service.Resize("https://media/original/missing.jpg", "md")
	require.Error(t, err)

	var workerErr *WorkerError
	require.ErrorAs(t, err, &workerErr)
	assert.Equal(t, http.StatusNotFound, workerErr.StatusCode)
}

func TestResizeService_Resize_InvalidSize(t *testing.T) {
	service := newResizeTestService("http://127.0.0.1:0")
	_, err := service.Resize("https://media/original/a.jpg", "huge")
	assert.Error(t, err)
}

func TestIsValidSize(t *testing.T) {
	for _, size := range []string{"preview", "xs", "sm", "md", "lg", "xl"} {
		assert.True(t, IsValidSize(size), size)
	}
	assert.False(t, IsValidSize(""))
	assert.False(t, IsValidSize("xxl"))
}
