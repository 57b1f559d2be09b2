package models

import (
	"encoding/json"
	"time"
)

// PropertyType tags the kind of property a listing describes.
type PropertyType string

const (
	TypeHouse     PropertyType = "house"
	TypeApartment PropertyType = "apartment"
	TypeCondo     PropertyType = "condo"
	TypeVilla     PropertyType = "villa"
	TypeLand      PropertyType = "land"
)

// PropertyTypes lists every valid property type.
var PropertyTypes = []PropertyType{TypeHouse, TypeApartment, TypeCondo, TypeVilla, TypeLand}

func (t PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ListingStatus is the approval state of a listing.
type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"
	StatusApproved ListingStatus = "approved"
	StatusRejected ListingStatus = "rejected"
)

func (s ListingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Listing is a real-estate property record.
type Listing struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Price           float64       `json:"price"`
	Location        Location      `json:"location"`
	Type            PropertyType  `json:"type"`
	Bedrooms        int           `json:"bedrooms"`
	Bathrooms       int           `json:"bathrooms"`
	Area            float64       `json:"area"`
	Images          []ImageRef    `json:"images"`
	Featured        bool          `json:"featured"`
	Status          ListingStatus `json:"status,omitempty"`
	OwnerID         string        `json:"ownerId,omitempty"`
	AgentID         string        `json:"agentId,omitempty"`
	ApprovedBy      string        `json:"approvedBy,omitempty"`
	RejectionReason string        `json:"rejectionReason,omitempty"`
	Views           int           `json:"views,omitempty"`
	CreatedAt       string        `json:"createdAt,omitempty"`
}

// UnmarshalJSON accepts "_id" as an alias for "id". An owner reference may
// arrive populated as an object; only its identifier is kept.
func (l *Listing) UnmarshalJSON(data []byte) error {
	type alias Listing
	var raw struct {
		alias
		MongoID string          `json:"_id"`
		OwnerID json.RawMessage `json:"ownerId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = Listing(raw.alias)
	if l.ID == "" {
		l.ID = raw.MongoID
	}
	if len(raw.OwnerID) > 0 {
		var owner User
		var id string
		if err := json.Unmarshal(raw.OwnerID, &id); err == nil {
			l.OwnerID = id
		} else if err := json.Unmarshal(raw.OwnerID, &owner); err == nil {
			l.OwnerID = owner.ID
		}
	}
	return nil
}

// Created parses CreatedAt, which the API sends either as a date or as an
// RFC 3339 timestamp. The zero time is returned when it cannot be parsed.
func (l Listing) Created() time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, l.CreatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortOrder selects the listing order on the browse endpoint.
type SortOrder string

const (
	SortNewest    SortOrder = "-createdAt"
	SortPriceAsc  SortOrder = "price"
	SortPriceDesc SortOrder = "-price"
)

func (s SortOrder) Valid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// ListingFilter holds the browse query parameters. Zero values are omitted.
type ListingFilter struct {
	City     string
	Type     PropertyType
	MaxPrice int
	OwnerID  string
	SortBy   SortOrder
}

// ImageFile is a new image attached to a listing form.
type ImageFile struct {
	Name string
	Data []byte
}

// ListingForm is the owner-submitted payload for creating or updating a
// listing.
type ListingForm struct {
	Title          string
	Description    string
	Price          float64
	Type           PropertyType
	Bedrooms       int
	Bathrooms      int
	Area           float64
	Location       Address
	ExistingImages []ImageRef
	ImagesToDelete []string
	NewImages      []ImageFile
}

// FormFromListing prefills a form for editing l.
func FormFromListing(l Listing) ListingForm {
	f := ListingForm{
		Title:          l.Title,
		Description:    l.Description,
		Price:          l.Price,
		Type:           l.Type,
		Bedrooms:       l.Bedrooms,
		Bathrooms:      l.Bathrooms,
		Area:           l.Area,
		ExistingImages: append([]ImageRef(nil), l.Images...),
	}
	if l.Location.Address != nil {
		f.Location = *l.Location.Address
	} else {
		f.Location = Address{City: l.Location.Label}
	}
	return f
}

// ImageCount is the number of images the listing will hold once the form is
// saved.
func (f ListingForm) ImageCount() int {
	deleted := make(map[string]struct{}, len(f.ImagesToDelete))
	for _, k := range f.ImagesToDelete {
		deleted[k] = struct{}{}
	}
	n := len(f.NewImages)
	for _, img := range f.ExistingImages {
		if _, ok := deleted[img.DeleteKey()]; !ok {
			n++
		}
	}
	return n
}
