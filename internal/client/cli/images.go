package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// parseFilter turns "list" arguments into a filter. key=value tokens set
// category, from, to and page; everything else forms the search query.
func parseFilter(args []string) (models.ImageFilter, error) {
	var (
		f     models.ImageFilter
		query []string
	)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			query = append(query, arg)
			continue
		}
		switch key {
		case "category":
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return f, fmt.Errorf("%w: category must be a number", ErrInvalidAnswer)
			}
			f.Category = id
		case "from":
			f.StartDate = value
		case "to":
			f.EndDate = value
		case "page":
			n, err := strconv.Atoi(value)
			if err != nil {
				return f, fmt.Errorf("%w: page must be a number", ErrInvalidAnswer)
			}
			f.Page = n
		default:
			query = append(query, arg)
		}
	}
	f.Query = strings.Join(query, " ")
	return f, nil
}

// List shows the home screen: one page of images matching the arguments.
func (a *App) List(ctx context.Context, args []string) error {
	filter, err := parseFilter(args)
	if err != nil {
		a.report(ctx, "list", err)
		return err
	}
	if _, ok := a.open(ctx, common.HomePath); !ok {
		return nil
	}

	page, err := a.galleryService.ListImages(ctx, filter)
	if err != nil {
		a.report(ctx, "list", err)
		return err
	}

	if len(page.Results) == 0 {
		a.printf("No images found.\n")
		return nil
	}
	for _, img := range page.Results {
		a.printf("%s\n", img)
	}
	a.printf("%d of %d image(s)", len(page.Results), page.Count)
	if page.Next != nil {
		next := filter.Page + 1
		if next < 2 {
			next = 2
		}
		a.printf(", more with page=%d", next)
	}
	a.printf("\n")
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		a.report(ctx, "show", err)
		return err
	}
	if _, ok := a.open(ctx, detailPath(id)); !ok {
		return nil
	}

	img, err := a.galleryService.GetImage(ctx, id)
	if err != nil {
		a.report(ctx, "show", err)
		return err
	}
	a.printImage(img)
	return nil
}

func (a *App) printImage(img *models.Image) {
	a.printf("%s\n", img)
	field := func(name, value string) {
		if value != "" {
			a.printf("  %-10s %s\n", name+":", value)
		}
	}
	if img.Category != nil {
		field("category", strconv.FormatInt(*img.Category, 10))
	}
	field("url", img.ImgURL)
	field("thumbnail", img.ThumbURL)
	if img.FileSize != nil {
		field("size", fmt.Sprintf("%d bytes", *img.FileSize))
	}
	field("camera", img.CameraModel)
	field("taken", img.ShootTime)
	field("location", img.Location)
	field("uploaded", img.UploadTime)
}

// Upload opens the upload screen and sends a new image.
func (a *App) Upload(ctx context.Context) error {
	if _, ok := a.open(ctx, "/upload"); !ok {
		return nil
	}

	path, err := GetSimpleText(a.reader, "Path to image file", a.out)
	if err != nil {
		return err
	}
	upload, closeFile, err := a.promptUpload(path, true)
	if err != nil {
		a.report(ctx, "upload", err)
		return err
	}
	defer closeFile()

	img, err := a.galleryService.UploadImage(ctx, upload)
	if err != nil {
		a.report(ctx, "upload", err)
		return err
	}
	a.printf("Uploaded image #%d.\n", img.ID)
	_, _ = a.router.Navigate(ctx, detailPath(img.ID))
	return nil
}

// Edit opens the edit screen of one image and sends the changed fields.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		a.report(ctx, "edit", err)
		return err
	}
	if _, ok := a.open(ctx, editPath(id)); !ok {
		return nil
	}

	path, err := GetSimpleText(a.reader, "Path to replacement file (empty to keep)", a.out)
	if err != nil {
		return err
	}
	upload, closeFile, err := a.promptUpload(path, false)
	if err != nil {
		a.report(ctx, "edit", err)
		return err
	}
	defer closeFile()

	img, err := a.galleryService.UpdateImage(ctx, id, upload)
	if err != nil {
		a.report(ctx, "edit", err)
		return err
	}
	a.printf("Updated image #%d.\n", img.ID)
	_, _ = a.router.Navigate(ctx, detailPath(id))
	return nil
}

// promptUpload collects the optional image fields. The returned func closes
// the opened file, if any.
func (a *App) promptUpload(path string, fileRequired bool) (models.ImageUpload, func(), error) {
	var upload models.ImageUpload
	closeFile := func() {}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return upload, closeFile, fmt.Errorf("open image: %w", err)
		}
		closeFile = func() { _ = f.Close() }
		upload.File = &models.ImageFile{Name: filepath.Base(path), Content: f}
	} else if fileRequired {
		return upload, closeFile, fmt.Errorf("%w: a file is required", ErrInvalidAnswer)
	}

	var err error
	fail := func(err error) (models.ImageUpload, func(), error) {
		closeFile()
		return models.ImageUpload{}, func() {}, err
	}
	if upload.Category, err = GetOptionalInt64(a.reader, "Category id", a.out); err != nil {
		return fail(err)
	}
	if upload.IsPublic, err = GetOptionalBool(a.reader, "Public?", a.out); err != nil {
		return fail(err)
	}
	if upload.Location, err = GetOptionalText(a.reader, "Location", a.out); err != nil {
		return fail(err)
	}
	return upload, closeFile, nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		a.report(ctx, "delete", err)
		return err
	}
	if _, ok := a.open(ctx, detailPath(id)); !ok {
		return nil
	}

	confirm, err := GetOptionalBool(a.reader, fmt.Sprintf("Delete image #%d?", id), a.out)
	if err != nil {
		a.report(ctx, "delete", err)
		return err
	}
	if confirm == nil || !*confirm {
		a.printf("Nothing deleted.\n")
		return nil
	}

	if err := a.galleryService.DeleteImage(ctx, id); err != nil {
		a.report(ctx, "delete", err)
		return err
	}
	a.printf("Deleted image #%d.\n", id)
	_, _ = a.router.Navigate(ctx, common.HomePath)
	return nil
}
