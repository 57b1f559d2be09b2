package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/dustin/go-humanize"
)

// FormatPrice renders a price in whole dollars with thousands separators.
func FormatPrice(p float64) string {
	return "$" + humanize.Comma(int64(math.Round(p)))
}

// FormatArea renders an area in square feet.
func FormatArea(a float64) string {
	return humanize.Commaf(a) + " sqft"
}

// ListingRow is the summary row used by every listing table.
func ListingRow(l models.Listing, favorite bool) []string {
	mark := ""
	if favorite {
		mark = "♥"
	}
	if l.Featured {
		mark += "★"
	}
	return []string{
		l.ID,
		mark,
		l.Title,
		string(l.Type),
		FormatPrice(l.Price),
		l.Location.City(),
		fmt.Sprintf("%d/%d", l.Bedrooms, l.Bathrooms),
	}
}

// ListingHeaders matches ListingRow.
var ListingHeaders = []string{"ID", "", "Title", "Type", "Price", "City", "Bed/Bath"}

// PrintListing writes the detail view of one listing.
func (p *Printer) PrintListing(l models.Listing, favorite bool, now time.Time) {
	p.Header(l.Title)

	fav := "no"
	if favorite {
		fav = "yes"
	}
	t := NewTable(p.out, "Field", "Value")
	t.AddRow("ID", l.ID)
	t.AddRow("Price", FormatPrice(l.Price))
	t.AddRow("Type", string(l.Type))
	t.AddRow("Location", l.Location.String())
	t.AddRow("Bedrooms", strconv.Itoa(l.Bedrooms))
	t.AddRow("Bathrooms", strconv.Itoa(l.Bathrooms))
	t.AddRow("Area", FormatArea(l.Area))
	if l.Status != "" {
		t.AddRow("Status", p.StatusBadge(string(l.Status)))
	}
	if l.RejectionReason != "" {
		t.AddRow("Rejection reason", l.RejectionReason)
	}
	if created := l.Created(); !created.IsZero() {
		t.AddRow("Listed", humanize.RelTime(created, now, "ago", "from now"))
	}
	t.AddRow("Favorite", fav)
	if err := t.Render(); err != nil {
		p.Error("render listing: %v", err)
	}

	if l.Description != "" {
		p.Print("")
		p.Print("%s", l.Description)
	}
	if len(l.Images) > 0 {
		urls := make([]string, 0, len(l.Images))
		for _, img := range l.Images {
			urls = append(urls, "  "+img.URL)
		}
		p.Print("")
		p.Print("Images (%d):\n%s", len(l.Images), strings.Join(urls, "\n"))
	}
}
