package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/kendall-kelly/renovation-manager-api/services"
	"github.com/kendall-kelly/renovation-manager-api/utils"
)

// respondError maps a service error onto the error envelope
func respondError(c *gin.Context, err error) {
	var (
		validation *models.ValidationError
		notFound   *models.NotFoundError
		upload     *utils.FileUploadError
		persist    *models.PersistenceError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": validation.Error(),
				"field":   validation.Field,
			},
		})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    strings.ToUpper(notFound.Entity) + "_NOT_FOUND",
				"message": capitalize(notFound.Error()),
			},
		})
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Email or password is incorrect",
			},
		})
	case errors.Is(err, services.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_AUTHENTICATED",
				"message": "Log in to access this resource",
			},
		})
	case errors.As(err, &upload):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    upload.Code,
				"message": upload.Message,
			},
		})
	case errors.As(err, &persist):
		log.Printf("Persistence failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PERSISTENCE_ERROR",
				"message": "Failed to save changes",
			},
		})
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "An unexpected error occurred",
			},
		})
	}
}

// respondResult writes a success envelope, or the error envelope when err is
// anything other than a write that only reached memory. In that case the
// change is reported as applied with a PERSISTENCE_ERROR warning.
func respondResult(c *gin.Context, status int, data interface{}, err error) {
	if err != nil && !models.IsPersistence(err) {
		respondError(c, err)
		return
	}

	body := gin.H{"success": true}
	if data != nil {
		body["data"] = data
	}
	if err != nil {
		body["warning"] = gin.H{
			"code":    "PERSISTENCE_ERROR",
			"message": "Changes were applied but could not be saved and will be lost on restart",
		}
	}
	c.JSON(status, body)
}

// bindJSON decodes the request body into dst, rejecting unknown fields
func bindJSON(c *gin.Context, dst interface{}) bool {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return false
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func badRequest(c *gin.Context, code, format string, args ...interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": fmt.Sprintf(format, args...),
		},
	})
}
