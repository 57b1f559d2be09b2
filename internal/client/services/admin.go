package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

// Page sizes used by the admin console.
const (
	DefaultListingPageSize = 50
	DefaultUserPageSize    = 100
	DefaultLogPageSize     = 50
)

// AdminAPI is the admin endpoint group.
type AdminAPI interface {
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

// AdminService backs the admin console. Arguments arrive as typed by the
// user and are checked before any request.
type AdminService interface {
	Pending(ctx context.Context, page int) ([]models.Listing, error)
	All(ctx context.Context, status string, page int) ([]models.Listing, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id, reason string) error
	ToggleFeatured(ctx context.Context, id string) error
	Users(ctx context.Context, role string, page int) ([]models.User, error)
	ChangeRole(ctx context.Context, id, role string) error
	Deactivate(ctx context.Context, id string) error
	Logs(ctx context.Context, page int) ([]models.ActivityLog, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

type adminService struct {
	api AdminAPI
}

func NewAdminService(api AdminAPI) AdminService {
	return &adminService{api: api}
}

func firstPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func (s *adminService) Pending(ctx context.Context, page int) ([]models.Listing, error) {
	return s.api.PendingListings(ctx, firstPage(page), DefaultListingPageSize)
}

// All lists listings in the given status; an empty status lists every one.
func (s *adminService) All(ctx context.Context, status string, page int) ([]models.Listing, error) {
	st := models.ListingStatus(status)
	if st != "" && !st.Valid() {
		return nil, invalid("Status must be pending, approved or rejected")
	}
	return s.api.AllListings(ctx, st, firstPage(page), DefaultListingPageSize)
}

func (s *adminService) Approve(ctx context.Context, id string) error {
	return s.api.ApproveListing(ctx, id)
}

func (s *adminService) Reject(ctx context.Context, id, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return invalid(MsgRejectReason)
	}
	return s.api.RejectListing(ctx, id, reason)
}

func (s *adminService) ToggleFeatured(ctx context.Context, id string) error {
	return s.api.ToggleFeatured(ctx, id)
}

func (s *adminService) Users(ctx context.Context, role string, page int) ([]models.User, error) {
	var r models.Role
	if role != "" {
		parsed, err := models.ParseRole(role)
		if err != nil {
			return nil, invalid(err.Error())
		}
		r = parsed
	}
	return s.api.Users(ctx, r, firstPage(page), DefaultUserPageSize)
}

func (s *adminService) ChangeRole(ctx context.Context, id, role string) error {
	r, err := models.ParseRole(role)
	if err != nil {
		return invalid(err.Error())
	}
	return s.api.ChangeUserRole(ctx, id, r)
}

func (s *adminService) Deactivate(ctx context.Context, id string) error {
	return s.api.DeactivateUser(ctx, id)
}

func (s *adminService) Logs(ctx context.Context, page int) ([]models.ActivityLog, error) {
	return s.api.ActivityLogs(ctx, firstPage(page), DefaultLogPageSize)
}

func (s *adminService) Stats(ctx context.Context) (*models.Stats, error) {
	return s.api.Stats(ctx)
}
