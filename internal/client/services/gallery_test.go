package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListImages(t *testing.T) {
	fc := &fakeClient{ListRet: &models.ImagePage{Count: 1, Results: []models.Image{{ID: 1}}}}
	svc := NewGalleryService(fc)

	page, err := svc.ListImages(context.Background(), models.ImageFilter{Query: "sea"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, "sea", fc.LastFilter.Query)

	_, err = svc.ListImages(context.Background(), models.ImageFilter{StartDate: "yesterday"})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, 1, fc.Calls)
}

func TestInvalidIDs(t *testing.T) {
	fc := &fakeClient{}
	svc := NewGalleryService(fc)
	ctx := context.Background()
	public := true

	_, err := svc.GetImage(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = svc.UpdateImage(ctx, -1, models.ImageUpload{IsPublic: &public})
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, svc.DeleteImage(ctx, 0), ErrInvalidID)
	assert.True(t, IsValidation(ErrInvalidID))
	assert.Zero(t, fc.Calls)
}

func TestUploadImage(t *testing.T) {
	fc := &fakeClient{ImageRet: &models.Image{ID: 9}}
	svc := NewGalleryService(fc)

	_, err := svc.UploadImage(context.Background(), models.ImageUpload{})
	require.ErrorIs(t, err, ErrNoImageFile)

	file := &models.ImageFile{Name: "a.png", Content: strings.NewReader("png")}
	img, err := svc.UploadImage(context.Background(), models.ImageUpload{File: file})
	require.NoError(t, err)
	assert.Equal(t, int64(9), img.ID)
	assert.Same(t, file, fc.LastUpload.File)
}

func TestUpdateImage(t *testing.T) {
	fc := &fakeClient{ImageRet: &models.Image{ID: 4}}
	svc := NewGalleryService(fc)

	_, err := svc.UpdateImage(context.Background(), 4, models.ImageUpload{})
	require.ErrorIs(t, err, ErrNoChanges)

	loc := "Rome"
	_, err = svc.UpdateImage(context.Background(), 4, models.ImageUpload{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, int64(4), fc.LastID)
	assert.Equal(t, "Rome", *fc.LastUpload.Location)
}

func TestDeleteImage(t *testing.T) {
	fc := &fakeClient{}
	require.NoError(t, NewGalleryService(fc).DeleteImage(context.Background(), 12))
	assert.Equal(t, int64(12), fc.LastID)
}

func TestCategories(t *testing.T) {
	fc := &fakeClient{
		Categories:  []models.Category{{ID: 1, Name: "travel"}},
		CategoryRet: &models.Category{ID: 2, Name: "food"},
	}
	svc := NewGalleryService(fc)

	list, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.CreateCategory(context.Background(), "")
	require.ErrorIs(t, err, common.ErrorValidation)
	_, err = svc.CreateCategory(context.Background(), strings.Repeat("x", 51))
	require.ErrorIs(t, err, common.ErrorValidation)

	c, err := svc.CreateCategory(context.Background(), "food")
	require.NoError(t, err)
	assert.Equal(t, "food", c.Name)
	assert.Equal(t, "food", fc.LastCategory.Name)
}
