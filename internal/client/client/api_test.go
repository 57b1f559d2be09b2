package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_DecodesAuthResult(t *testing.T) {
	var creds Credentials
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&creds)
		writeJSON(w, http.StatusOK, `{"success":true,"token":"abc","user":{"_id":"u1","name":"Sarah","role":"owner"}}`)
	})

	res, err := c.Login(context.Background(), Credentials{Email: "agent@estate.com", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, "agent@estate.com", creds.Email)
	assert.True(t, res.Success)
	assert.Equal(t, "abc", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, models.RoleOwner, res.User.Role)
}

func TestRegister_SendsConfirmPassword(t *testing.T) {
	var body map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusCreated, `{"success":true}`)
	})

	_, err := c.Register(context.Background(), RegisterRequest{
		Name: "Ann", Email: "ann@x.io", Password: "secret1", ConfirmPassword: "secret1", Role: models.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "secret1", body["confirmPassword"])
	assert.Equal(t, "customer", body["role"])
}

func TestMe_UnwrapsUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"user":{"id":"u2","name":"Bob","role":"admin"}}`)
	}, WithTokenSource(staticToken("t")))

	u, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestListListings_EncodesFilter(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, `{"success":true,"properties":[{"_id":"p1","title":"Loft","location":"Downtown"}]}`)
	})

	got, err := c.ListListings(context.Background(), models.ListingFilter{
		City: "Austin", Type: models.TypeCondo, MaxPrice: 500000, SortBy: models.SortPriceAsc,
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "Downtown", got[0].Location.City())
	assert.Equal(t, []string{"Austin"}, query["city"])
	assert.Equal(t, []string{"condo"}, query["type"])
	assert.Equal(t, []string{"500000"}, query["maxPrice"])
	assert.Equal(t, []string{"price"}, query["sortBy"])
	assert.NotContains(t, query, "ownerId")
}

func TestFeaturedListings_BareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties/featured", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id":"1","featured":true},{"id":"2","featured":true}]`)
	})

	got, err := c.FeaturedListings(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCreateListing_Multipart(t *testing.T) {
	var fields map[string][]string
	var files int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			fields = r.MultipartForm.Value
			files = len(r.MultipartForm.File["images"])
		}
		writeJSON(w, http.StatusCreated, `{"success":true,"property":{"_id":"new1","status":"pending"}}`)
	})

	form := models.ListingForm{
		Title: "Villa", Description: "Sea view", Price: 1250000.5, Type: models.TypeVilla,
		Bedrooms: 4, Bathrooms: 3, Area: 320,
		Location:       models.Address{City: "Nice", Country: "FR"},
		ImagesToDelete: []string{"old1"},
		NewImages:      []models.ImageFile{{Name: "a.jpg", Data: []byte("x")}},
	}
	l, err := c.CreateListing(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, "new1", l.ID)
	assert.Equal(t, models.StatusPending, l.Status)
	assert.Equal(t, []string{"1250000.5"}, fields["price"])
	assert.Equal(t, []string{"villa"}, fields["type"])
	assert.JSONEq(t, `{"city":"Nice","country":"FR"}`, fields["location"][0])
	assert.JSONEq(t, `["old1"]`, fields["imagesToDelete"][0])
	assert.Equal(t, 1, files)
}

func TestCreateListing_OmitsEmptyDeletions(t *testing.T) {
	var fields map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			fields = r.MultipartForm.Value
		}
		writeJSON(w, http.StatusOK, `{"success":true,"property":{"id":"p"}}`)
	})

	_, err := c.UpdateListing(context.Background(), "p", models.ListingForm{Title: "t"})
	require.NoError(t, err)
	assert.NotContains(t, fields, "imagesToDelete")
}

func TestDeleteListing_ReportsFailureEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(w, http.StatusOK, `{"success":false,"message":"Not authorized to delete this property"}`)
	})

	err := c.DeleteListing(context.Background(), "p1")
	require.EqualError(t, err, "Not authorized to delete this property")
}

func TestAdminEndpoints(t *testing.T) {
	type call struct{ method, path, query, body string }
	var calls []call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, call{r.Method, r.URL.Path, r.URL.RawQuery, string(body)})
		switch r.URL.Path {
		case "/api/admin/stats":
			writeJSON(w, http.StatusOK, `{"success":true,"stats":{"totalUsers":5,"pendingProperties":2}}`)
		case "/api/admin/users":
			writeJSON(w, http.StatusOK, `{"success":true,"users":[{"_id":"u1","role":"owner"}]}`)
		case "/api/admin/logs":
			writeJSON(w, http.StatusOK, `{"success":true,"logs":[{"_id":"l1","actionType":"approve_property"}]}`)
		default:
			writeJSON(w, http.StatusOK, `{"success":true,"properties":[]}`)
		}
	}, WithTokenSource(staticToken("admin")))
	ctx := context.Background()

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalUsers)
	assert.Equal(t, 2, stats.PendingProperties)

	users, err := c.Users(ctx, models.RoleOwner, 1, 20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)

	logs, err := c.ActivityLogs(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "approve_property", logs[0].ActionType)

	_, err = c.PendingListings(ctx, 1, 10)
	require.NoError(t, err)
	_, err = c.AllListings(ctx, models.StatusRejected, 1, 10)
	require.NoError(t, err)
	require.NoError(t, c.ApproveListing(ctx, "p1"))
	require.NoError(t, c.RejectListing(ctx, "p2", "Blurry photos"))
	require.NoError(t, c.ToggleFeatured(ctx, "p3"))
	require.NoError(t, c.ChangeUserRole(ctx, "u1", models.RoleAdmin))
	require.NoError(t, c.DeactivateUser(ctx, "u1"))

	require.Len(t, calls, 10)
	assert.Equal(t, "limit=20&page=1&role=owner", calls[1].query)
	assert.Equal(t, "limit=10&page=2", calls[2].query)
	assert.Equal(t, "/api/admin/properties/pending", calls[3].path)
	assert.Contains(t, calls[4].query, "status=rejected")
	assert.Equal(t, call{http.MethodPut, "/api/admin/properties/p1/approve", "", ""}, calls[5])
	assert.JSONEq(t, `{"reason":"Blurry photos"}`, calls[6].body)
	assert.Equal(t, "/api/admin/properties/p3/featured", calls[7].path)
	assert.JSONEq(t, `{"role":"admin"}`, calls[8].body)
	assert.Equal(t, "/api/admin/users/u1/deactivate", calls[9].path)
}
