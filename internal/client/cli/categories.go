package cli

import (
	"context"

	"github.com/dmitrijs2005/gophgallery/internal/client/theme"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

func (a *App) Categories(ctx context.Context) error {
	if _, ok := a.open(ctx, common.HomePath); !ok {
		return nil
	}
	list, err := a.galleryService.ListCategories(ctx)
	if err != nil {
		a.report(ctx, "categories", err)
		return err
	}
	if len(list) == 0 {
		a.printf("No categories yet.\n")
		return nil
	}
	for _, c := range list {
		a.printf("%s\n", c)
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	if _, ok := a.open(ctx, common.HomePath); !ok {
		return nil
	}
	name, err := GetSimpleText(a.reader, "Category name", a.out)
	if err != nil {
		return err
	}
	c, err := a.galleryService.CreateCategory(ctx, name)
	if err != nil {
		a.report(ctx, "addcategory", err)
		return err
	}
	a.printf("Created category %s.\n", c)
	return nil
}

// Theme prints the current mode, or switches to the mode given as argument.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		effective := "light"
		if a.theme.IsDark() {
			effective = "dark"
		}
		a.printf("Theme: %s (%s)\n", a.theme.Mode(), effective)
		return nil
	}

	mode, err := theme.ParseMode(args[0])
	if err != nil {
		a.printf("Invalid input: %v\n", err)
		return err
	}
	if err := a.theme.SetTheme(ctx, mode); err != nil {
		a.report(ctx, "theme", err)
		return err
	}
	a.printf("Theme set to %s.\n", mode)
	return nil
}
