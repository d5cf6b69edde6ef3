package api

import (
	"context"

	"github.com/dmitrijs2005/gophgallery/internal/client/httpclient"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

const pathCategories = "/categories/"

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	out := []models.Category{}
	if err := c.http.Get(ctx, pathCategories, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, nc models.NewCategory) (*models.Category, error) {
	var out models.Category
	if err := c.http.Post(ctx, pathCategories, httpclient.JSON(nc), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
