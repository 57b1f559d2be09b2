package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/estatehub/internal/client/client"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/dmitrijs2005/estatehub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/estatehub/internal/client/session"
)

// fakeAPI implements client.API for service tests. Every call is counted so
// tests can assert that validation failures never reach the network.
type fakeAPI struct {
	mu    sync.Mutex
	calls int

	LoginRet    *client.AuthResult
	LoginErr    error
	RegisterRet *client.AuthResult
	RegisterErr error
	MeRet       *models.User

	Listings    map[string]models.Listing
	ListRet     []models.Listing
	LastFilter  models.ListingFilter
	LastForm    models.ListingForm
	GetCalls    []string
	GetErr      error
	DeletedIDs  []string
	MutationErr error

	LastReason string
	LastRole   models.Role
	LastStatus models.ListingStatus
	LastPage   int
	LastLimit  int
}

var _ client.API = (*fakeAPI)(nil)

func (f *fakeAPI) Register(_ context.Context, _ client.RegisterRequest) (*client.AuthResult, error) {
	f.calls++
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAPI) Login(_ context.Context, _ client.Credentials) (*client.AuthResult, error) {
	f.calls++
	return f.LoginRet, f.LoginErr
}

func (f *fakeAPI) Me(context.Context) (*models.User, error) {
	f.calls++
	return f.MeRet, nil
}

func (f *fakeAPI) ListListings(_ context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	f.calls++
	f.LastFilter = filter
	return f.ListRet, nil
}

func (f *fakeAPI) FeaturedListings(context.Context) ([]models.Listing, error) {
	f.calls++
	return f.ListRet, nil
}

func (f *fakeAPI) GetListing(_ context.Context, id string) (*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.GetCalls = append(f.GetCalls, id)
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	l, ok := f.Listings[id]
	if !ok {
		return nil, &client.APIError{Status: http.StatusNotFound, Message: "Property not found"}
	}
	return &l, nil
}

func (f *fakeAPI) CreateListing(_ context.Context, form models.ListingForm) (*models.Listing, error) {
	f.calls++
	f.LastForm = form
	if f.MutationErr != nil {
		return nil, f.MutationErr
	}
	return &models.Listing{ID: "new", Title: form.Title, Status: models.StatusPending}, nil
}

func (f *fakeAPI) UpdateListing(_ context.Context, id string, form models.ListingForm) (*models.Listing, error) {
	f.calls++
	f.LastForm = form
	if f.MutationErr != nil {
		return nil, f.MutationErr
	}
	return &models.Listing{ID: id, Title: form.Title}, nil
}

func (f *fakeAPI) DeleteListing(_ context.Context, id string) error {
	f.calls++
	f.DeletedIDs = append(f.DeletedIDs, id)
	return f.MutationErr
}

func (f *fakeAPI) PendingListings(_ context.Context, page, limit int) ([]models.Listing, error) {
	f.calls++
	f.LastPage, f.LastLimit = page, limit
	return f.ListRet, nil
}

func (f *fakeAPI) AllListings(_ context.Context, status models.ListingStatus, page, limit int) ([]models.Listing, error) {
	f.calls++
	f.LastStatus, f.LastPage, f.LastLimit = status, page, limit
	return f.ListRet, nil
}

func (f *fakeAPI) ApproveListing(context.Context, string) error {
	f.calls++
	return f.MutationErr
}

func (f *fakeAPI) RejectListing(_ context.Context, _ string, reason string) error {
	f.calls++
	f.LastReason = reason
	return f.MutationErr
}

func (f *fakeAPI) ToggleFeatured(context.Context, string) error {
	f.calls++
	return f.MutationErr
}

func (f *fakeAPI) Users(_ context.Context, role models.Role, page, limit int) ([]models.User, error) {
	f.calls++
	f.LastRole, f.LastPage, f.LastLimit = role, page, limit
	return []models.User{{ID: "u1", Role: models.RoleOwner}}, nil
}

func (f *fakeAPI) ChangeUserRole(_ context.Context, _ string, role models.Role) error {
	f.calls++
	f.LastRole = role
	return f.MutationErr
}

func (f *fakeAPI) DeactivateUser(context.Context, string) error {
	f.calls++
	return f.MutationErr
}

func (f *fakeAPI) ActivityLogs(_ context.Context, page, limit int) ([]models.ActivityLog, error) {
	f.calls++
	f.LastPage, f.LastLimit = page, limit
	return nil, nil
}

func (f *fakeAPI) Stats(context.Context) (*models.Stats, error) {
	f.calls++
	return &models.Stats{TotalUsers: 3}, nil
}

func newStore() *session.Store {
	return session.New(metadata.NewMemoryRepository(), nil)
}
