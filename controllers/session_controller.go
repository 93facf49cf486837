package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

// SessionController handles login and the current user's profile
type SessionController struct {
	sessions *services.SessionService
	images   services.ImageService
}

// NewSessionController creates a session controller
func NewSessionController(sessions *services.SessionService, images services.ImageService) *SessionController {
	return &SessionController{sessions: sessions, images: images}
}

// LoginRequest is the body of POST /session/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePasswordRequest is the body of PUT /users/me/password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login handles POST /api/v1/session/login
func (sc *SessionController) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		badRequest(c, "VALIDATION_ERROR", "email and password are required")
		return
	}

	user, err := sc.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil && !models.IsPersistence(err) {
		respondError(c, err)
		return
	}
	log.Printf("User %s logged in", user.ID)
	respondResult(c, http.StatusOK, presentUser(c.Request.Context(), sc.images, user), err)
}

// Logout handles POST /api/v1/session/logout
func (sc *SessionController) Logout(c *gin.Context) {
	err := sc.sessions.Logout(c.Request.Context())
	respondResult(c, http.StatusOK, nil, err)
}

// GetMyProfile handles GET /api/v1/users/me
func (sc *SessionController) GetMyProfile(c *gin.Context) {
	user, err := sc.sessions.Current()
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, http.StatusOK, presentUser(c.Request.Context(), sc.images, user), nil)
}

// UpdateMyProfile handles PUT /api/v1/users/me
func (sc *SessionController) UpdateMyProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if !bindJSON(c, &patch) {
		return
	}

	user, err := sc.sessions.UpdateProfile(c.Request.Context(), patch)
	if err != nil && !models.IsPersistence(err) {
		respondError(c, err)
		return
	}
	respondResult(c, http.StatusOK, presentUser(c.Request.Context(), sc.images, user), err)
}

// UpdateMyPassword handles PUT /api/v1/users/me/password
func (sc *SessionController) UpdateMyPassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.NewPassword {
		badRequest(c, "VALIDATION_ERROR", "New passwords do not match")
		return
	}

	err := sc.sessions.UpdatePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword)
	respondResult(c, http.StatusOK, nil, err)
}

// UploadProfileImage handles POST /api/v1/users/me/profile-image with multipart field "image"
func (sc *SessionController) UploadProfileImage(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "NO_FILE", "An image must be uploaded in the \"image\" field")
		return
	}

	key, err := sc.images.UploadImage(ctx, fileHeader)
	if err != nil {
		respondError(c, err)
		return
	}

	user, previous, err := sc.sessions.UpdateProfileImage(ctx, key)
	if err != nil && !models.IsPersistence(err) {
		if delErr := sc.images.DeleteImage(ctx, key); delErr != nil {
			log.Printf("warning: failed to delete image %s: %v", key, delErr)
		}
		respondError(c, err)
		return
	}
	if previous != "" && previous != key {
		if delErr := sc.images.DeleteImage(ctx, previous); delErr != nil {
			log.Printf("warning: failed to delete previous profile image %s: %v", previous, delErr)
		}
	}
	respondResult(c, http.StatusOK, presentUser(ctx, sc.images, user), err)
}
