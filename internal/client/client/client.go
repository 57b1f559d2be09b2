package client

import (
	"context"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

// TokenSource supplies the bearer token attached to outgoing requests. An
// empty string means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) string

func (f TokenFunc) Token(ctx context.Context) string { return f(ctx) }

// API is the full endpoint surface consumed by the application services.
type API interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Me(ctx context.Context) (*models.User, error)

	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	FeaturedListings(ctx context.Context) ([]models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	CreateListing(ctx context.Context, form models.ListingForm) (*models.Listing, error)
	UpdateListing(ctx context.Context, id string, form models.ListingForm) (*models.Listing, error)
	DeleteListing(ctx context.Context, id string) error

	PendingListings(ctx context.Context, page, limit int) ([]models.Listing, error)
	AllListings(ctx context.Context, status models.ListingStatus, page, limit int) ([]models.Listing, error)
	ApproveListing(ctx context.Context, id string) error
	RejectListing(ctx context.Context, id, reason string) error
	ToggleFeatured(ctx context.Context, id string) error
	Users(ctx context.Context, role models.Role, page, limit int) ([]models.User, error)
	ChangeUserRole(ctx context.Context, id string, role models.Role) error
	DeactivateUser(ctx context.Context, id string) error
	ActivityLogs(ctx context.Context, page, limit int) ([]models.ActivityLog, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

var _ API = (*HTTPClient)(nil)
