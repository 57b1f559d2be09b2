package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/estatehub/internal/client/client"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/dmitrijs2005/estatehub/internal/logging"
	"golang.org/x/sync/errgroup"
)

// ListingsAPI is the part of the API that serves listings.
type ListingsAPI interface {
	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	FeaturedListings(ctx context.Context) ([]models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	CreateListing(ctx context.Context, form models.ListingForm) (*models.Listing, error)
	UpdateListing(ctx context.Context, id string, form models.ListingForm) (*models.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}

// ListingStore is the local state the listing service reads and updates.
type ListingStore interface {
	GetSession(ctx context.Context) (*models.Session, bool)
	Favorites(ctx context.Context) []string
	ToggleFavorite(ctx context.Context, id string) ([]string, error)
	IsFavorite(ctx context.Context, id string) bool
	CacheListings(ctx context.Context, listings []models.Listing) error
	CachedListings(ctx context.Context) []models.Listing
}

// ListingService covers browsing, favorites and the owner dashboard.
type ListingService interface {
	Search(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	Featured(ctx context.Context) ([]models.Listing, error)
	Detail(ctx context.Context, id string) (*models.Listing, error)

	ToggleFavorite(ctx context.Context, id string) (bool, error)
	IsFavorite(ctx context.Context, id string) bool
	FavoriteListings(ctx context.Context) ([]models.Listing, error)

	MyListings(ctx context.Context) ([]models.Listing, error)
	Create(ctx context.Context, form models.ListingForm) (*models.Listing, error)
	Update(ctx context.Context, id string, form models.ListingForm) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
}

type listingService struct {
	api    ListingsAPI
	store  ListingStore
	logger logging.Logger
}

func NewListingService(api ListingsAPI, store ListingStore, logger logging.Logger) ListingService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &listingService{api: api, store: store, logger: logger}
}

func (s *listingService) Search(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	listings, err := s.api.ListListings(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, listings...)
	return listings, nil
}

func (s *listingService) Featured(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.api.FeaturedListings(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, listings...)
	return listings, nil
}

func (s *listingService) Detail(ctx context.Context, id string) (*models.Listing, error) {
	l, err := s.api.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, *l)
	return l, nil
}

// ToggleFavorite flips id in the local favorite set and reports whether it
// is now a favorite. No request is sent.
func (s *listingService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	ids, err := s.store.ToggleFavorite(ctx, id)
	if err != nil {
		return false, err
	}
	for _, v := range ids {
		if v == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *listingService) IsFavorite(ctx context.Context, id string) bool {
	return s.store.IsFavorite(ctx, id)
}

// favoriteFetchLimit caps concurrent requests for favorites missing from the
// cache.
const favoriteFetchLimit = 4

// FavoriteListings resolves the favorite IDs against the listings cache and
// fetches the ones it does not hold. The result keeps favorite order.
// Favorites that no longer exist on the server are skipped.
func (s *listingService) FavoriteListings(ctx context.Context) ([]models.Listing, error) {
	ids := s.store.Favorites(ctx)
	if len(ids) == 0 {
		return []models.Listing{}, nil
	}

	cached := make(map[string]models.Listing)
	for _, l := range s.store.CachedListings(ctx) {
		cached[l.ID] = l
	}

	found := make([]*models.Listing, len(ids))
	remote := make([]bool, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(favoriteFetchLimit)
	for i, id := range ids {
		if l, ok := cached[id]; ok {
			found[i] = &l
			continue
		}
		remote[i] = true
		g.Go(func() error {
			l, err := s.api.GetListing(gctx, id)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
					s.logger.Warn(ctx, "favorite listing no longer exists", "id", id)
					return nil
				}
				return err
			}
			found[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.Listing, 0, len(ids))
	var fetched []models.Listing
	for i, l := range found {
		if l == nil {
			continue
		}
		out = append(out, *l)
		if remote[i] {
			fetched = append(fetched, *l)
		}
	}

	s.remember(ctx, fetched...)
	return out, nil
}

// MyListings returns the listings owned by the signed-in user.
func (s *listingService) MyListings(ctx context.Context) ([]models.Listing, error) {
	sess, ok := s.store.GetSession(ctx)
	if !ok {
		return nil, ErrNotSignedIn
	}
	return s.api.ListListings(ctx, models.ListingFilter{OwnerID: sess.ID})
}

func (s *listingService) Create(ctx context.Context, form models.ListingForm) (*models.Listing, error) {
	if err := ValidateListingForm(form); err != nil {
		return nil, err
	}
	return s.api.CreateListing(ctx, form)
}

func (s *listingService) Update(ctx context.Context, id string, form models.ListingForm) (*models.Listing, error) {
	if err := ValidateListingForm(form); err != nil {
		return nil, err
	}
	l, err := s.api.UpdateListing(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, *l)
	return l, nil
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteListing(ctx, id); err != nil {
		return err
	}

	cached := s.store.CachedListings(ctx)
	kept := cached[:0]
	for _, l := range cached {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if err := s.store.CacheListings(ctx, kept); err != nil {
		s.logger.Warn(ctx, "listings cache update failed", "error", err)
	}
	return nil
}

// remember upserts listings into the local cache by ID. Cache failures are
// logged and otherwise ignored.
func (s *listingService) remember(ctx context.Context, listings ...models.Listing) {
	if len(listings) == 0 {
		return
	}

	cached := s.store.CachedListings(ctx)
	index := make(map[string]int, len(cached))
	for i, l := range cached {
		index[l.ID] = i
	}
	for _, l := range listings {
		if i, ok := index[l.ID]; ok {
			cached[i] = l
			continue
		}
		index[l.ID] = len(cached)
		cached = append(cached, l)
	}

	if err := s.store.CacheListings(ctx, cached); err != nil {
		s.logger.Warn(ctx, "listings cache update failed", "error", err)
	}
}
