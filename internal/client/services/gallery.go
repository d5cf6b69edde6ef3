package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophgallery/internal/client/api"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// GalleryService exposes image and category operations. Inputs are validated
// before any request is sent; everything else is delegated to the API.
type GalleryService interface {
	ListImages(ctx context.Context, filter models.ImageFilter) (*models.ImagePage, error)
	GetImage(ctx context.Context, id int64) (*models.Image, error)
	UploadImage(ctx context.Context, upload models.ImageUpload) (*models.Image, error)
	UpdateImage(ctx context.Context, id int64, upload models.ImageUpload) (*models.Image, error)
	DeleteImage(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
}

var (
	ErrInvalidID   = fmt.Errorf("%w: id must be positive", common.ErrorValidation)
	ErrNoImageFile = fmt.Errorf("%w: image file is required", common.ErrorValidation)
	ErrNoChanges   = fmt.Errorf("%w: nothing to update", common.ErrorValidation)
)

type galleryService struct {
	client api.Client
}

func NewGalleryService(client api.Client) GalleryService {
	return &galleryService{client: client}
}

func (s *galleryService) ListImages(ctx context.Context, filter models.ImageFilter) (*models.ImagePage, error) {
	if err := validateInput(filter); err != nil {
		return nil, err
	}
	return s.client.ListImages(ctx, filter)
}

func (s *galleryService) GetImage(ctx context.Context, id int64) (*models.Image, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.client.GetImage(ctx, id)
}

func (s *galleryService) UploadImage(ctx context.Context, upload models.ImageUpload) (*models.Image, error) {
	if upload.File == nil || upload.File.Content == nil {
		return nil, ErrNoImageFile
	}
	return s.client.UploadImage(ctx, upload)
}

func (s *galleryService) UpdateImage(ctx context.Context, id int64, upload models.ImageUpload) (*models.Image, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if upload.File == nil && upload.Category == nil && upload.IsPublic == nil && upload.Location == nil {
		return nil, ErrNoChanges
	}
	return s.client.UpdateImage(ctx, id, upload)
}

func (s *galleryService) DeleteImage(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.client.DeleteImage(ctx, id)
}

func (s *galleryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.client.ListCategories(ctx)
}

func (s *galleryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	nc := models.NewCategory{Name: name}
	if err := validateInput(nc); err != nil {
		return nil, err
	}
	return s.client.CreateCategory(ctx, nc)
}

// IsValidation reports whether err was produced by input validation.
func IsValidation(err error) bool {
	return errors.Is(err, common.ErrorValidation)
}
