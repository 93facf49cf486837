package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

// PhotoController serves a project's photo gallery
type PhotoController struct {
	projects *services.ProjectService
	images   services.ImageService
}

// NewPhotoController creates a photo controller
func NewPhotoController(projects *services.ProjectService, images services.ImageService) *PhotoController {
	return &PhotoController{projects: projects, images: images}
}

// UpdateCaptionRequest is the body of PUT /projects/:id/photos/:photoId
type UpdateCaptionRequest struct {
	Caption string `json:"caption"`
}

// UploadPhotos handles POST /api/v1/projects/:id/photos with multipart field "files".
// An optional "caption" field applies to every photo in the batch.
func (pc *PhotoController) UploadPhotos(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := c.Param("id")
	if _, err := pc.projects.Get(projectID); err != nil {
		respondError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		badRequest(c, "NO_FILE", "At least one image must be uploaded in the \"files\" field")
		return
	}

	var caption *string
	if values := form.Value["caption"]; len(values) > 0 && values[0] != "" {
		caption = &values[0]
	}

	uploads := make([]models.PhotoUpload, 0, len(form.File["files"]))
	for _, fileHeader := range form.File["files"] {
		key, err := pc.images.UploadImage(ctx, fileHeader)
		if err != nil {
			pc.discard(c, uploads)
			respondError(c, err)
			return
		}
		uploads = append(uploads, models.PhotoUpload{URL: key, Caption: caption})
	}

	photos, err := pc.projects.AddPhotos(ctx, projectID, uploads)
	if err != nil && !models.IsPersistence(err) {
		pc.discard(c, uploads)
		respondError(c, err)
		return
	}
	respondResult(c, http.StatusCreated, presentPhotos(ctx, pc.images, photos), err)
}

// UpdatePhotoCaption handles PUT /api/v1/projects/:id/photos/:photoId
func (pc *PhotoController) UpdatePhotoCaption(c *gin.Context) {
	var req UpdateCaptionRequest
	if !bindJSON(c, &req) {
		return
	}

	photo, err := pc.projects.UpdatePhotoCaption(c.Request.Context(), c.Param("id"), c.Param("photoId"), req.Caption)
	if err != nil && !models.IsPersistence(err) {
		respondError(c, err)
		return
	}
	respondResult(c, http.StatusOK, presentPhoto(c.Request.Context(), pc.images, photo), err)
}

// DeletePhoto handles DELETE /api/v1/projects/:id/photos/:photoId and
// removes the stored image
func (pc *PhotoController) DeletePhoto(c *gin.Context) {
	ctx := c.Request.Context()
	removed, err := pc.projects.DeletePhoto(ctx, c.Param("id"), c.Param("photoId"))
	if err != nil && !models.IsPersistence(err) {
		respondError(c, err)
		return
	}
	if removed != nil {
		if delErr := pc.images.DeleteImage(ctx, removed.URL); delErr != nil {
			log.Printf("warning: failed to delete image %s: %v", removed.URL, delErr)
		}
	}
	respondResult(c, http.StatusOK, nil, err)
}

// discard removes images stored for a batch that was not recorded
func (pc *PhotoController) discard(c *gin.Context, uploads []models.PhotoUpload) {
	for _, upload := range uploads {
		if err := pc.images.DeleteImage(c.Request.Context(), upload.URL); err != nil {
			log.Printf("warning: failed to delete image %s: %v", upload.URL, err)
		}
	}
}
