package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/estatehub/internal/client/client"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.ListingForm {
	return models.ListingForm{
		Title: "Loft", Description: "Bright", Price: 250000, Area: 80,
		Type: models.TypeApartment, Location: models.Address{City: "Austin"},
	}
}

func TestSearch_CachesResults(t *testing.T) {
	api := &fakeAPI{ListRet: []models.Listing{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}}}
	store := newStore()
	svc := NewListingService(api, store, nil)
	ctx := context.Background()

	got, err := svc.Search(ctx, models.ListingFilter{City: "Austin", SortBy: models.SortPriceDesc})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Austin", api.LastFilter.City)
	assert.Len(t, store.CachedListings(ctx), 2)

	api.ListRet = []models.Listing{{ID: "2", Title: "B2"}, {ID: "3", Title: "C"}}
	_, err = svc.Featured(ctx)
	require.NoError(t, err)

	cached := store.CachedListings(ctx)
	require.Len(t, cached, 3)
	assert.Equal(t, "B2", cached[1].Title)
}

func TestSearch_RejectsBadFilter(t *testing.T) {
	api := &fakeAPI{}
	svc := NewListingService(api, newStore(), nil)

	_, err := svc.Search(context.Background(), models.ListingFilter{Type: "castle"})
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.Search(context.Background(), models.ListingFilter{SortBy: "title"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, api.calls)
}

func TestToggleFavorite_IsLocalOnly(t *testing.T) {
	api := &fakeAPI{}
	svc := NewListingService(api, newStore(), nil)
	ctx := context.Background()

	on, err := svc.ToggleFavorite(ctx, "3")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, svc.IsFavorite(ctx, "3"))

	on, err = svc.ToggleFavorite(ctx, "3")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Zero(t, api.calls)
}

func TestFavoriteListings_UsesCacheAndFetchesMissing(t *testing.T) {
	api := &fakeAPI{Listings: map[string]models.Listing{"2": {ID: "2", Title: "Remote"}}}
	store := newStore()
	ctx := context.Background()
	require.NoError(t, store.CacheListings(ctx, []models.Listing{{ID: "1", Title: "Cached"}}))
	for _, id := range []string{"2", "1", "gone"} {
		_, err := store.ToggleFavorite(ctx, id)
		require.NoError(t, err)
	}

	svc := NewListingService(api, store, nil)
	got, err := svc.FavoriteListings(ctx)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Remote", got[0].Title)
	assert.Equal(t, "Cached", got[1].Title)
	assert.ElementsMatch(t, []string{"2", "gone"}, api.GetCalls)
	assert.Len(t, store.CachedListings(ctx), 2)
}

func TestFavoriteListings_FetchErrorFails(t *testing.T) {
	api := &fakeAPI{GetErr: client.ErrUnavailable}
	store := newStore()
	ctx := context.Background()
	_, err := store.ToggleFavorite(ctx, "7")
	require.NoError(t, err)

	_, err = NewListingService(api, store, nil).FavoriteListings(ctx)
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestFavoriteListings_Empty(t *testing.T) {
	api := &fakeAPI{}
	got, err := NewListingService(api, newStore(), nil).FavoriteListings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, api.calls)
}

func TestMyListings_FiltersByOwner(t *testing.T) {
	api := &fakeAPI{}
	store := newStore()
	svc := NewListingService(api, store, nil)
	ctx := context.Background()

	_, err := svc.MyListings(ctx)
	require.ErrorIs(t, err, ErrNotSignedIn)

	require.NoError(t, store.SaveSession(ctx, models.Session{ID: "u1", Role: models.RoleOwner}))
	_, err = svc.MyListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", api.LastFilter.OwnerID)
}

func TestValidateListingForm(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.ListingForm)
		msg    string
	}{
		{name: "valid", mutate: func(*models.ListingForm) {}},
		{name: "no title", mutate: func(f *models.ListingForm) { f.Title = " " }, msg: MsgFillRequiredFields},
		{name: "no city", mutate: func(f *models.ListingForm) { f.Location.City = "" }, msg: MsgFillRequiredFields},
		{name: "no price", mutate: func(f *models.ListingForm) { f.Price = 0 }, msg: MsgFillRequiredFields},
		{name: "no area", mutate: func(f *models.ListingForm) { f.Area = 0 }, msg: MsgFillRequiredFields},
		{name: "bad type", mutate: func(f *models.ListingForm) { f.Type = "castle" }, msg: MsgInvalidPropertyType},
		{name: "negative bedrooms", mutate: func(f *models.ListingForm) { f.Bedrooms = -1 }, msg: MsgNegativeRooms},
		{name: "negative bathrooms", mutate: func(f *models.ListingForm) { f.Bathrooms = -2 }, msg: MsgNegativeRooms},
		{name: "eleven new images", mutate: func(f *models.ListingForm) {
			f.NewImages = make([]models.ImageFile, 11)
		}, msg: MsgTooManyImages},
		{name: "deletions make room", mutate: func(f *models.ListingForm) {
			f.ExistingImages = []models.ImageRef{{URL: "u1", PublicID: "p1"}, {URL: "u2", PublicID: "p2"}}
			f.ImagesToDelete = []string{"p1"}
			f.NewImages = make([]models.ImageFile, 9)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := ValidateListingForm(f)
			if tt.msg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestCreateUpdateDelete(t *testing.T) {
	api := &fakeAPI{}
	store := newStore()
	svc := NewListingService(api, store, nil)
	ctx := context.Background()

	bad := validForm()
	bad.Title = ""
	_, err := svc.Create(ctx, bad)
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, api.calls)

	l, err := svc.Create(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, l.Status)

	l, err = svc.Update(ctx, "p9", validForm())
	require.NoError(t, err)
	assert.Equal(t, "p9", l.ID)
	assert.Len(t, store.CachedListings(ctx), 1)

	require.NoError(t, svc.Delete(ctx, "p9"))
	assert.Equal(t, []string{"p9"}, api.DeletedIDs)
	assert.Empty(t, store.CachedListings(ctx))
}

func TestDelete_ErrorKeepsCache(t *testing.T) {
	api := &fakeAPI{MutationErr: &client.APIError{Status: 403, Message: "Not authorized"}}
	store := newStore()
	ctx := context.Background()
	require.NoError(t, store.CacheListings(ctx, []models.Listing{{ID: "p1"}}))

	err := NewListingService(api, store, nil).Delete(ctx, "p1")
	require.True(t, errors.Is(err, client.ErrUnauthorized))
	assert.Len(t, store.CachedListings(ctx), 1)
}
