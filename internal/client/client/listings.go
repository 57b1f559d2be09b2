package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

// ListListings queries the public listing index.
func (c *HTTPClient) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	endpoint := "/properties"
	if q := filterQuery(filter).Encode(); q != "" {
		endpoint += "?" + q
	}
	raw, err := c.Do(ctx, endpoint, Request{})
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.Listing](raw, "properties")
}

func (c *HTTPClient) FeaturedListings(ctx context.Context) ([]models.Listing, error) {
	raw, err := c.Do(ctx, "/properties/featured", Request{})
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.Listing](raw, "properties")
}

func (c *HTTPClient) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	raw, err := c.Do(ctx, "/properties/"+url.PathEscape(id), Request{})
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Listing](raw, "property")
}

// CreateListing submits a new listing. New listings start in the pending
// state until an administrator reviews them.
func (c *HTTPClient) CreateListing(ctx context.Context, form models.ListingForm) (*models.Listing, error) {
	body, err := listingMultipart(form)
	if err != nil {
		return nil, err
	}
	raw, err := c.Do(ctx, "/properties", Request{Method: http.MethodPost, Body: body})
	if err != nil {
		return nil, err
	}
	if err := checkEnvelope(raw, "Failed to submit property"); err != nil {
		return nil, err
	}
	return decodeObject[models.Listing](raw, "property")
}

func (c *HTTPClient) UpdateListing(ctx context.Context, id string, form models.ListingForm) (*models.Listing, error) {
	body, err := listingMultipart(form)
	if err != nil {
		return nil, err
	}
	raw, err := c.Do(ctx, "/properties/"+url.PathEscape(id), Request{Method: http.MethodPut, Body: body})
	if err != nil {
		return nil, err
	}
	if err := checkEnvelope(raw, "Failed to update property"); err != nil {
		return nil, err
	}
	return decodeObject[models.Listing](raw, "property")
}

func (c *HTTPClient) DeleteListing(ctx context.Context, id string) error {
	raw, err := c.Do(ctx, "/properties/"+url.PathEscape(id), Request{Method: http.MethodDelete})
	if err != nil {
		return err
	}
	return checkEnvelope(raw, "Failed to delete property")
}

func filterQuery(f models.ListingFilter) url.Values {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.MaxPrice > 0 {
		q.Set("maxPrice", strconv.Itoa(f.MaxPrice))
	}
	if f.OwnerID != "" {
		q.Set("ownerId", f.OwnerID)
	}
	if f.SortBy != "" {
		q.Set("sortBy", string(f.SortBy))
	}
	return q
}

func listingMultipart(f models.ListingForm) (*Multipart, error) {
	location, err := json.Marshal(f.Location)
	if err != nil {
		return nil, fmt.Errorf("encode location: %w", err)
	}

	m := &Multipart{}
	m.AddField("title", f.Title)
	m.AddField("description", f.Description)
	m.AddField("price", strconv.FormatFloat(f.Price, 'f', -1, 64))
	m.AddField("type", string(f.Type))
	m.AddField("bedrooms", strconv.Itoa(f.Bedrooms))
	m.AddField("bathrooms", strconv.Itoa(f.Bathrooms))
	m.AddField("area", strconv.FormatFloat(f.Area, 'f', -1, 64))
	m.AddField("location", string(location))

	if len(f.ImagesToDelete) > 0 {
		del, err := json.Marshal(f.ImagesToDelete)
		if err != nil {
			return nil, fmt.Errorf("encode imagesToDelete: %w", err)
		}
		m.AddField("imagesToDelete", string(del))
	}

	for _, img := range f.NewImages {
		m.AddFile("images", img.Name, img.Data)
	}
	return m, nil
}
