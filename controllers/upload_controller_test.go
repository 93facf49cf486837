package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRouter(dir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/uploads/:filename", NewUploadController(dir).GetUploadedImage)
	return router
}

func TestGetUploadedImage_Success(t *testing.T) {
	tmpDir := t.TempDir()
	testContent := []byte("fake PNG content")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "test_image.png"), testContent, 0644))

	req := httptest.NewRequest("GET", "/uploads/test_image.png", nil)
	w := httptest.NewRecorder()
	newUploadRouter(tmpDir).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
	assert.Equal(t, testContent, w.Body.Bytes())
}

func TestGetUploadedImage_JPEGContentType(t *testing.T) {
	tmpDir := t.TempDir()
	testContent := []byte("fake JPEG content")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "kitchen.JPG"), testContent, 0644))

	req := httptest.NewRequest("GET", "/uploads/kitchen.JPG", nil)
	w := httptest.NewRecorder()
	newUploadRouter(tmpDir).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, testContent, w.Body.Bytes())
}

func TestGetUploadedImage_FileNotFound(t *testing.T) {
	req := httptest.NewRequest("GET", "/uploads/nonexistent.png", nil)
	w := httptest.NewRecorder()
	newUploadRouter(t.TempDir()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "FILE_NOT_FOUND")
}

func TestGetUploadedImage_EmptyFilename(t *testing.T) {
	req := httptest.NewRequest("GET", "/uploads/", nil)
	w := httptest.NewRecorder()
	newUploadRouter(t.TempDir()).ServeHTTP(w, req)

	// The route does not match without a filename
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUploadedImage_DirectoryTraversal(t *testing.T) {
	router := newUploadRouter(t.TempDir())

	testCases := []struct {
		name           string
		filename       string
		expectedStatus int
		expectedError  string
	}{
		// Slashes split the path, so these never reach the handler
		{"Parent directory traversal", "../../../etc/passwd", http.StatusNotFound, ""},
		{"Forward slash in filename", "path/to/file.png", http.StatusNotFound, ""},

		{"Backslash in filename", "path\\to\\file.png", http.StatusBadRequest, "INVALID_FILENAME"},
		{"Dots in filename", "..file.png", http.StatusBadRequest, "INVALID_FILENAME"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/uploads/"+tc.filename, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedError != "" {
				assert.Contains(t, w.Body.String(), tc.expectedError)
			}
		})
	}
}

func TestGetUploadedImage_InvalidFileType(t *testing.T) {
	router := newUploadRouter(t.TempDir())

	for _, filename := range []string{"image", "document.txt", "plans.pdf"} {
		t.Run(filename, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/uploads/"+filename, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "INVALID_FILE_TYPE")
		})
	}
}
