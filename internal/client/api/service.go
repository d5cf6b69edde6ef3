package api

import (
	"context"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

// Client is the gallery backend contract used by the services.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.TokenPair, error)
	Register(ctx context.Context, reg models.Registration) (*models.Profile, error)
	Me(ctx context.Context) (*models.Profile, error)

	ListImages(ctx context.Context, filter models.ImageFilter) (*models.ImagePage, error)
	GetImage(ctx context.Context, id int64) (*models.Image, error)
	UploadImage(ctx context.Context, upload models.ImageUpload) (*models.Image, error)
	UpdateImage(ctx context.Context, id int64, upload models.ImageUpload) (*models.Image, error)
	DeleteImage(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c models.NewCategory) (*models.Category, error)
}
