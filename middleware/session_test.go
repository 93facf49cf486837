package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	user *models.User
}

func (s stubSessions) Current() (models.User, error) {
	if s.user == nil {
		return models.User{}, errors.New("no user is logged in")
	}
	return *s.user, nil
}

func newTestRouter(sessions CurrentUserProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireCurrentUser(sessions), func(c *gin.Context) {
		user, err := GetCurrentUser(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return router
}

func TestRequireCurrentUser_LoggedIn(t *testing.T) {
	router := newTestRouter(stubSessions{user: &models.User{ID: "1", Name: "Admin User"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

func TestRequireCurrentUser_LoggedOut(t *testing.T) {
	router := newTestRouter(stubSessions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_AUTHENTICATED")
}

func TestGetCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		setup    func(*gin.Context)
		wantID   string
		wantCode string
	}{
		{
			name:   "successfully extracts user",
			setup:  func(c *gin.Context) { c.Set(currentUserKey, models.User{ID: "2"}) },
			wantID: "2",
		},
		{
			name:     "user not found in context",
			setup:    func(c *gin.Context) {},
			wantCode: "MISSING_USER",
		},
		{
			name:     "user has wrong type",
			setup:    func(c *gin.Context) { c.Set(currentUserKey, "2") },
			wantCode: "INVALID_USER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			tt.setup(c)

			user, err := GetCurrentUser(c)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, user.ID)
				return
			}
			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}

func TestAuthError_Error(t *testing.T) {
	err := &AuthError{Code: "TEST", Message: "test message"}
	assert.Equal(t, "test message", err.Error())
}
