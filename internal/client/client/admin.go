package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// PendingListings returns listings waiting for review.
func (c *HTTPClient) PendingListings(ctx context.Context, page, limit int) ([]models.Listing, error) {
	raw, err := c.Do(ctx, "/admin/properties/pending?"+pageQuery(page, limit).Encode(), Request{})
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.Listing](raw, "properties")
}

// AllListings returns listings in any state; an empty status means all.
func (c *HTTPClient) AllListings(ctx context.Context, status models.ListingStatus, page, limit int) ([]models.Listing, error) {
	q := pageQuery(page, limit)
	if status != "" {
		q.Set("status", string(status))
	}
	raw, err := c.Do(ctx, "/admin/properties/all?"+q.Encode(), Request{})
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.Listing](raw, "properties")
}

func (c *HTTPClient) ApproveListing(ctx context.Context, id string) error {
	return c.adminAction(ctx, "/admin/properties/"+url.PathEscape(id)+"/approve", nil)
}

func (c *HTTPClient) RejectListing(ctx context.Context, id, reason string) error {
	return c.adminAction(ctx, "/admin/properties/"+url.PathEscape(id)+"/reject", map[string]string{"reason": reason})
}

func (c *HTTPClient) ToggleFeatured(ctx context.Context, id string) error {
	return c.adminAction(ctx, "/admin/properties/"+url.PathEscape(id)+"/featured", nil)
}

// Users lists accounts, optionally restricted to one role.
func (c *HTTPClient) Users(ctx context.Context, role models.Role, page, limit int) ([]models.User, error) {
	q := pageQuery(page, limit)
	if role != "" {
		q.Set("role", string(role))
	}
	raw, err := c.Do(ctx, "/admin/users?"+q.Encode(), Request{})
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.User](raw, "users")
}

func (c *HTTPClient) ChangeUserRole(ctx context.Context, id string, role models.Role) error {
	return c.adminAction(ctx, "/admin/users/"+url.PathEscape(id)+"/role", map[string]models.Role{"role": role})
}

func (c *HTTPClient) DeactivateUser(ctx context.Context, id string) error {
	return c.adminAction(ctx, "/admin/users/"+url.PathEscape(id)+"/deactivate", nil)
}

func (c *HTTPClient) ActivityLogs(ctx context.Context, page, limit int) ([]models.ActivityLog, error) {
	raw, err := c.Do(ctx, "/admin/logs?"+pageQuery(page, limit).Encode(), Request{})
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.ActivityLog](raw, "logs")
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.Stats, error) {
	raw, err := c.Do(ctx, "/admin/stats", Request{})
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Stats](raw, "stats")
}

func (c *HTTPClient) adminAction(ctx context.Context, endpoint string, body any) error {
	raw, err := c.Do(ctx, endpoint, Request{Method: http.MethodPut, Body: body})
	if err != nil {
		return err
	}
	return checkEnvelope(raw, "Action failed")
}
