package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/dmitrijs2005/estatehub/internal/client/output"
)

func usage(s string) error {
	return fmt.Errorf("usage: %s", s)
}

// Home shows the featured listings.
func (a *App) Home(ctx context.Context, _ []string) error {
	a.printer.Loading("Loading featured properties")
	listings, err := a.listings.Featured(ctx)
	if err != nil {
		return err
	}
	a.printer.Header("Featured properties")
	return a.renderListings(ctx, listings, "No featured properties yet")
}

// Listings searches with filters given as key=value arguments: city, type,
// max (price) and sort.
func (a *App) Listings(ctx context.Context, args []string) error {
	filter, err := parseFilter(args)
	if err != nil {
		return err
	}
	return a.Search(ctx, filter)
}

func (a *App) Search(ctx context.Context, filter models.ListingFilter) error {
	a.printer.Loading("Loading properties")
	listings, err := a.listings.Search(ctx, filter)
	if err != nil {
		return err
	}
	a.printer.Header("Properties")
	return a.renderListings(ctx, listings, "No properties match your search")
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("show <id>")
	}
	a.printer.Loading("Loading property")
	l, err := a.listings.Detail(ctx, args[0])
	if err != nil {
		return err
	}
	a.printer.PrintListing(*l, a.listings.IsFavorite(ctx, l.ID), a.now())
	return nil
}

// Fav toggles a listing in the local favorite set.
func (a *App) Fav(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("fav <id>")
	}
	on, err := a.listings.ToggleFavorite(ctx, args[0])
	if err != nil {
		return err
	}
	if on {
		a.printer.Success("Added to favorites")
	} else {
		a.printer.Success("Removed from favorites")
	}
	return nil
}

func (a *App) Favorites(ctx context.Context, _ []string) error {
	a.printer.Loading("Loading favorites")
	listings, err := a.listings.FavoriteListings(ctx)
	if err != nil {
		return err
	}
	noun := "properties"
	if len(listings) == 1 {
		noun = "property"
	}
	a.printer.Header(fmt.Sprintf("My Favorites (%d %s saved)", len(listings), noun))
	return a.renderListings(ctx, listings, "No favorites yet. Use 'fav <id>' to save a property.")
}

func (a *App) renderListings(ctx context.Context, listings []models.Listing, empty string) error {
	if len(listings) == 0 {
		a.printer.Info("%s", empty)
		return nil
	}
	t := output.NewTable(a.printer.Out(), output.ListingHeaders...)
	for _, l := range listings {
		t.AddRow(output.ListingRow(l, a.listings.IsFavorite(ctx, l.ID))...)
	}
	return t.Render()
}

func parseFilter(args []string) (models.ListingFilter, error) {
	var f models.ListingFilter
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return f, usage("listings [city=<city>] [type=<type>] [max=<price>] [sort=-createdAt|price|-price]")
		}
		switch key {
		case "city":
			f.City = value
		case "type":
			f.Type = models.PropertyType(value)
		case "max", "maxPrice":
			n, err := strconv.Atoi(value)
			if err != nil {
				return f, fmt.Errorf("max price %q is not a whole number", value)
			}
			f.MaxPrice = n
		case "sort", "sortBy":
			f.SortBy = models.SortOrder(value)
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
	}
	return f, nil
}
