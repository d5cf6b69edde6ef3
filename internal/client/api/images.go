package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophgallery/internal/client/httpclient"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

const pathImages = "/images/"

// Multipart field names of the image serializer.
const (
	FieldImage    = "img_url"
	FieldCategory = "category"
	FieldIsPublic = "is_public"
	FieldLocation = "location"
)

// ListImages returns one page of images. The backend answers either with a
// bare array or with a paginated envelope; both are returned as a page.
func (c *HTTPClient) ListImages(ctx context.Context, filter models.ImageFilter) (*models.ImagePage, error) {
	var raw json.RawMessage
	if err := c.http.Get(ctx, pathImages, &raw, httpclient.WithQuery(filter.Values())); err != nil {
		return nil, err
	}
	return decodeImagePage(raw)
}

func decodeImagePage(raw json.RawMessage) (*models.ImagePage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &models.ImagePage{Results: []models.Image{}}, nil
	}

	if trimmed[0] == '[' {
		var list []models.Image
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode image list: %w", err)
		}
		return &models.ImagePage{Count: len(list), Results: list}, nil
	}

	var page models.ImagePage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, fmt.Errorf("decode image page: %w", err)
	}
	if page.Results == nil {
		page.Results = []models.Image{}
	}
	return &page, nil
}

func (c *HTTPClient) GetImage(ctx context.Context, id int64) (*models.Image, error) {
	var out models.Image
	if err := c.http.Get(ctx, imagePath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UploadImage(ctx context.Context, upload models.ImageUpload) (*models.Image, error) {
	var out models.Image
	if err := c.http.Post(ctx, pathImages, imageForm(upload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateImage sends only the fields set in upload.
func (c *HTTPClient) UpdateImage(ctx context.Context, id int64, upload models.ImageUpload) (*models.Image, error) {
	var out models.Image
	if err := c.http.Patch(ctx, imagePath(id), imageForm(upload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteImage(ctx context.Context, id int64) error {
	return c.http.Delete(ctx, imagePath(id))
}

func imageForm(u models.ImageUpload) *httpclient.Form {
	form := httpclient.NewForm()
	if u.Category != nil {
		form.Field(FieldCategory, strconv.FormatInt(*u.Category, 10))
	}
	if u.IsPublic != nil {
		form.Field(FieldIsPublic, strconv.FormatBool(*u.IsPublic))
	}
	if u.Location != nil {
		form.Field(FieldLocation, *u.Location)
	}
	if u.File != nil {
		form.File(FieldImage, u.File.Name, u.File.Content)
	}
	return form
}
