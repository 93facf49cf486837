package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/routes"
	"github.com/kendall-kelly/renovation-manager-api/services"
	"github.com/stretchr/testify/require"
)

// Demo credentials present in the seeded user directory
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
	UserEmail     = "user@example.com"
	UserPassword  = "user123"
)

// Envelope is the common response shape of every API endpoint
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
	Warning *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"warning"`
}

// FixedMutator returns a mutator with sequential ids and a fixed clock so
// responses are predictable
func FixedMutator() *services.Mutator {
	n := 0
	return &services.Mutator{
		NewID: func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		},
		Now: func() time.Time {
			return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

// NewTestRouter hydrates a store over backend and builds the full API router
func NewTestRouter(t *testing.T, backend services.KVStore, images services.ImageService) (*gin.Engine, *services.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewStore(backend)
	store.Hydrate(context.Background())

	router := routes.NewRouter(routes.Dependencies{
		Store:     store,
		Images:    images,
		UploadDir: t.TempDir(),
		Mutator:   FixedMutator(),
	})
	return router, store
}

// DoJSON sends a request with an optional JSON body and returns the recorder
func DoJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Decode parses a response envelope and unmarshals its data into dst when dst is not nil
func Decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if dst != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, dst), string(env.Data))
	}
	return env
}

// Login signs in with the given demo credentials and fails the test otherwise
func Login(t *testing.T, router http.Handler, email, password string) {
	t.Helper()

	w := DoJSON(t, router, http.MethodPost, "/api/v1/session/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
