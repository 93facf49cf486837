package controllers

import (
	"context"
	"log"

	"github.com/kendall-kelly/renovation-manager-api/models"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

type photoResponse struct {
	models.ProjectPhoto
	ImageURL string `json:"imageUrl"`
}

type projectResponse struct {
	models.Project
	Photos  []photoResponse       `json:"photos"`
	Summary models.InvoiceSummary `json:"summary"`
}

type userResponse struct {
	models.User
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// imageURL resolves a stored image reference, logging rather than failing
// when the storage backend cannot produce a URL
func imageURL(ctx context.Context, images services.ImageService, key string) string {
	if images == nil || key == "" {
		return key
	}
	url, err := images.GetImageURL(ctx, key)
	if err != nil {
		log.Printf("warning: failed to resolve image %s: %v", key, err)
		return ""
	}
	return url
}

func presentPhoto(ctx context.Context, images services.ImageService, photo models.ProjectPhoto) photoResponse {
	return photoResponse{ProjectPhoto: photo, ImageURL: imageURL(ctx, images, photo.URL)}
}

func presentPhotos(ctx context.Context, images services.ImageService, photos []models.ProjectPhoto) []photoResponse {
	out := make([]photoResponse, len(photos))
	for i, photo := range photos {
		out[i] = presentPhoto(ctx, images, photo)
	}
	return out
}

func presentProject(ctx context.Context, images services.ImageService, project models.Project) projectResponse {
	return projectResponse{
		Project: project,
		Photos:  presentPhotos(ctx, images, project.Photos),
		Summary: services.SummarizeProject(project),
	}
}

func presentUser(ctx context.Context, images services.ImageService, user models.User) userResponse {
	resp := userResponse{User: user}
	if user.ProfileImage != nil {
		resp.ProfileImageURL = imageURL(ctx, images, *user.ProfileImage)
	}
	return resp
}
