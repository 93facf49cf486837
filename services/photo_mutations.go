package services

import (
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/models"
)

// AddPhotos appends one gallery entry per upload, each with its own id.
// All photos in a batch share the same uploadedAt instant.
func (m *Mutator) AddPhotos(p models.Project, uploads []models.PhotoUpload) (models.Project, []models.ProjectPhoto, error) {
	if len(uploads) == 0 {
		return p, nil, models.NewValidationError("files", "at least one photo is required")
	}

	uploadedAt := models.NewDate(m.Now())
	photos := make([]models.ProjectPhoto, 0, len(uploads))
	for _, upload := range uploads {
		if strings.TrimSpace(upload.URL) == "" {
			return p, nil, models.NewValidationError("url", "is required")
		}
		photos = append(photos, models.ProjectPhoto{
			ID:         m.NewID(),
			URL:        upload.URL,
			Caption:    upload.Caption,
			UploadedAt: uploadedAt,
		})
	}

	out := p
	out.Photos = appendCopy(p.Photos, photos...)
	return out, photos, nil
}

// DeletePhoto removes a photo from the gallery and returns the removed entry
// so its stored image can be cleaned up. Unknown ids are a no-op.
func (m *Mutator) DeletePhoto(p models.Project, photoID string) (models.Project, *models.ProjectPhoto) {
	i := p.FindPhoto(photoID)
	if i < 0 {
		return p, nil
	}
	removed := p.Photos[i].Clone()

	out := p
	out.Photos = removeAt(p.Photos, i)
	return out, &removed
}

// UpdatePhotoCaption sets a photo's caption. An empty caption clears it.
func (m *Mutator) UpdatePhotoCaption(p models.Project, photoID, caption string) (models.Project, models.ProjectPhoto, error) {
	i := p.FindPhoto(photoID)
	if i < 0 {
		return p, models.ProjectPhoto{}, models.NewNotFoundError("photo", photoID)
	}

	photo := p.Photos[i]
	if caption == "" {
		photo.Caption = nil
	} else {
		c := caption
		photo.Caption = &c
	}

	out := p
	out.Photos = replaceAt(p.Photos, i, photo)
	return out, photo, nil
}
