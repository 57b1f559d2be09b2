package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/estatehub/internal/client/authz"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/dmitrijs2005/estatehub/internal/client/output"
	"github.com/dmitrijs2005/estatehub/internal/filex"
)

// readImage is a test seam for filex.ReadImage.
var readImage = filex.ReadImage

// DashboardList shows the signed-in owner's listings with their review state.
func (a *App) DashboardList(ctx context.Context, _ []string) error {
	return a.protected(ctx, authz.DashboardRoles, func() error {
		a.printer.Loading("Loading your properties")
		listings, err := a.listings.MyListings(ctx)
		if err != nil {
			return err
		}

		a.printer.Header(fmt.Sprintf("My Properties (%d total)", len(listings)))
		if len(listings) == 0 {
			a.printer.Info("You have not listed any properties yet. Use 'add' to create one.")
			return nil
		}
		t := output.NewTable(a.printer.Out(), "ID", "Title", "Price", "City", "Status", "Images")
		for _, l := range listings {
			t.AddRow(l.ID, l.Title, output.FormatPrice(l.Price), l.Location.City(),
				a.printer.StatusBadge(string(l.Status)), strconv.Itoa(len(l.Images)))
		}
		return t.Render()
	})
}

func (a *App) DashboardAdd(ctx context.Context, _ []string) error {
	return a.protected(ctx, authz.DashboardRoles, func() error {
		form, err := a.promptListingForm(models.ListingForm{Type: models.TypeHouse})
		if err != nil {
			return err
		}

		a.printer.Loading("Submitting property")
		if _, err := a.listings.Create(ctx, form); err != nil {
			return err
		}
		a.printer.Success("Property submitted for approval! You'll be notified when the admin reviews it.")
		return nil
	})
}

func (a *App) DashboardEdit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("edit <id>")
	}
	return a.protected(ctx, authz.DashboardRoles, func() error {
		a.printer.Loading("Loading property")
		l, err := a.listings.Detail(ctx, args[0])
		if err != nil {
			return err
		}

		form, err := a.promptListingForm(models.FormFromListing(*l))
		if err != nil {
			return err
		}

		a.printer.Loading("Saving property")
		if _, err := a.listings.Update(ctx, l.ID, form); err != nil {
			return err
		}
		a.printer.Success("Property updated successfully")
		return nil
	})
}

func (a *App) DashboardDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <id>")
	}
	return a.protected(ctx, authz.DashboardRoles, func() error {
		ok, err := confirm(a.reader, fmt.Sprintf("Delete property %s?", args[0]), a.printer.Out())
		if err != nil {
			return err
		}
		if !ok {
			a.printer.Info("Cancelled")
			return nil
		}

		a.printer.Loading("Deleting property")
		if err := a.listings.Delete(ctx, args[0]); err != nil {
			return err
		}
		a.printer.Success("Property deleted successfully")
		return nil
	})
}

// promptListingForm asks for every form field, offering the values in f as
// defaults, then for images to remove and files to attach.
func (a *App) promptListingForm(f models.ListingForm) (models.ListingForm, error) {
	out := a.printer.Out()
	var err error

	text := func(prompt string, dst *string) {
		if err == nil {
			*dst, err = GetDefaultText(a.reader, prompt, *dst, out)
		}
	}
	number := func(prompt string, dst *float64) {
		if err == nil {
			*dst, err = GetNumber(a.reader, prompt, *dst, out)
		}
	}
	count := func(prompt string, dst *int) {
		if err == nil {
			*dst, err = GetCount(a.reader, prompt, *dst, out)
		}
	}

	text("Title", &f.Title)
	text("Description", &f.Description)
	number("Price", &f.Price)
	typ := string(f.Type)
	text("Type (house, apartment, condo, villa, land)", &typ)
	f.Type = models.PropertyType(strings.ToLower(typ))
	count("Bedrooms", &f.Bedrooms)
	count("Bathrooms", &f.Bathrooms)
	number("Area (sqft)", &f.Area)
	text("Street address", &f.Location.Address)
	text("City", &f.Location.City)
	text("State", &f.Location.State)
	text("Zip code", &f.Location.ZipCode)
	text("Country", &f.Location.Country)
	if err != nil {
		return f, err
	}

	if len(f.ExistingImages) > 0 {
		a.printer.Print("Current images (%d):", len(f.ExistingImages))
		for i, img := range f.ExistingImages {
			a.printer.Print("  %d. %s", i+1, img.URL)
		}
		picks, err := GetList(a.reader, "Numbers of images to remove, comma separated (empty keeps all)", out)
		if err != nil {
			return f, err
		}
		if f, err = removeImages(f, picks); err != nil {
			return f, err
		}
	}

	paths, err := GetList(a.reader, fmt.Sprintf("Image files to upload, comma separated (current %d/10)", f.ImageCount()), out)
	if err != nil {
		return f, err
	}
	for _, p := range paths {
		name, data, err := readImage(p, filex.MaxImageSize)
		if err != nil {
			return f, err
		}
		f.NewImages = append(f.NewImages, models.ImageFile{Name: name, Data: data})
	}
	return f, nil
}

// removeImages drops the 1-based picks from the existing images and records
// their delete keys.
func removeImages(f models.ListingForm, picks []string) (models.ListingForm, error) {
	drop := make([]int, 0, len(picks))
	for _, p := range picks {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > len(f.ExistingImages) {
			return f, fmt.Errorf("%q is not an image number", p)
		}
		drop = append(drop, n-1)
	}

	kept := make([]models.ImageRef, 0, len(f.ExistingImages))
	for i, img := range f.ExistingImages {
		if slices.Contains(drop, i) {
			f.ImagesToDelete = append(f.ImagesToDelete, img.DeleteKey())
			continue
		}
		kept = append(kept, img)
	}
	f.ExistingImages = kept
	return f, nil
}
