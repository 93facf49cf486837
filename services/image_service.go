package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/utils"
)

// ImageService stores project photos and profile images
type ImageService interface {
	// UploadImage validates and stores an image file, returns the storage key
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)

	// GetImageURL resolves a storage key to a URL the client can load
	GetImageURL(ctx context.Context, imageKey string) (string, error)

	// DeleteImage removes an image from storage
	DeleteImage(ctx context.Context, imageKey string) error
}

// S3ImageService implements ImageService using AWS S3 for storage
type S3ImageService struct {
	s3Service S3Interface
}

// NewS3ImageService creates an image service storing objects through s3Service
func NewS3ImageService(s3Service S3Interface) *S3ImageService {
	return &S3ImageService{s3Service: s3Service}
}

// UploadImage validates and uploads an image file to S3
func (s *S3ImageService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	s3Key, err := s.s3Service.UploadFile(ctx, fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return s3Key, nil
}

// GetImageURL generates a presigned URL for accessing an image
func (s *S3ImageService) GetImageURL(ctx context.Context, imageKey string) (string, error) {
	if imageKey == "" || isExternalURL(imageKey) {
		return imageKey, nil
	}

	url, err := s.s3Service.GetPresignedURL(ctx, imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}
	return url, nil
}

// DeleteImage deletes an image from S3
func (s *S3ImageService) DeleteImage(ctx context.Context, imageKey string) error {
	if imageKey == "" || isExternalURL(imageKey) {
		return nil
	}

	if err := s.s3Service.DeleteFile(ctx, imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// LocalImageService stores images on local disk and serves them from
// /api/v1/uploads
type LocalImageService struct {
	uploadDir string
}

// NewLocalImageService creates an image service writing into uploadDir
func NewLocalImageService(uploadDir string) *LocalImageService {
	return &LocalImageService{uploadDir: uploadDir}
}

// UploadDir returns the directory images are written to
func (s *LocalImageService) UploadDir() string {
	return s.uploadDir
}

// UploadImage validates and saves an image file, returning its filename
func (s *LocalImageService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename, err := utils.SaveUploadedFile(fileHeader, s.uploadDir)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return filename, nil
}

// GetImageURL returns the relative URL the uploads route serves the file from
func (s *LocalImageService) GetImageURL(ctx context.Context, imageKey string) (string, error) {
	if isExternalURL(imageKey) {
		return imageKey, nil
	}
	return utils.GetImageURL(imageKey), nil
}

// DeleteImage removes the file from disk
func (s *LocalImageService) DeleteImage(ctx context.Context, imageKey string) error {
	if isExternalURL(imageKey) {
		return nil
	}
	return utils.RemoveUploadedFile(imageKey, s.uploadDir)
}

// isExternalURL reports whether an image reference already is a loadable URL
// (seed photos and data URLs stored before uploads were kept server side)
func isExternalURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:")
}
