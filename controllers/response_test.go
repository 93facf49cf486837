package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/kendall-kelly/renovation-manager-api/services"
	"github.com/kendall-kelly/renovation-manager-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
	Warning *struct {
		Code string `json:"code"`
	} `json:"warning"`
}

func serve(t *testing.T, handler gin.HandlerFunc, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", handler)

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", models.NewValidationError("title", "is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", models.NewNotFoundError("phase", "p9"), http.StatusNotFound, "PHASE_NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("lookup: %w", models.NewNotFoundError("project", "9")), http.StatusNotFound, "PROJECT_NOT_FOUND"},
		{"credentials", models.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"session", services.ErrNotAuthenticated, http.StatusUnauthorized, "NOT_AUTHENTICATED"},
		{"upload", &utils.FileUploadError{Code: "INVALID_FILE_FORMAT", Message: "bad"}, http.StatusBadRequest, "INVALID_FILE_FORMAT"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := serve(t, func(c *gin.Context) { respondError(c, tt.err) }, "")
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestRespondError_ValidationField(t *testing.T) {
	_, env := serve(t, func(c *gin.Context) {
		respondError(c, models.NewValidationError("endDate", "must not be before startDate"))
	}, "")
	require.NotNil(t, env.Error)
	assert.Equal(t, "endDate", env.Error.Field)
	assert.Equal(t, "endDate: must not be before startDate", env.Error.Message)
}

func TestRespondResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		w, env := serve(t, func(c *gin.Context) {
			respondResult(c, http.StatusCreated, gin.H{"id": "1"}, nil)
		}, "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.JSONEq(t, `{"id":"1"}`, string(env.Data))
		assert.Nil(t, env.Warning)
	})

	t.Run("persistence failure is a warning", func(t *testing.T) {
		err := &models.PersistenceError{Key: "projects", Op: "write", Err: errors.New("disk full")}
		w, env := serve(t, func(c *gin.Context) {
			respondResult(c, http.StatusOK, gin.H{"id": "1"}, err)
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		require.NotNil(t, env.Warning)
		assert.Equal(t, "PERSISTENCE_ERROR", env.Warning.Code)
	})

	t.Run("other errors fail the request", func(t *testing.T) {
		w, env := serve(t, func(c *gin.Context) {
			respondResult(c, http.StatusOK, gin.H{"id": "1"}, models.NewNotFoundError("task", "t1"))
		}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
	})
}

func TestBindJSON(t *testing.T) {
	handler := func(c *gin.Context) {
		var in models.SupplierInput
		if !bindJSON(c, &in) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": in.Name})
	}

	w, env := serve(t, handler, `{"name":"Tile Co"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Tile Co"`, string(env.Data))

	w, env = serve(t, handler, `{"name":"Tile Co","rating":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	w, _ = serve(t, handler, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
