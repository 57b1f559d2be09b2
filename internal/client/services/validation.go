package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/estatehub/internal/client/client"
	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

const (
	MinPasswordLength = 6
	MaxListingImages  = 10
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validateCredentials(c client.Credentials) error {
	if c.Email == "" || c.Password == "" {
		return invalid(MsgFillAllFields)
	}
	if !ValidEmail(c.Email) {
		return invalid(MsgInvalidEmail)
	}
	return nil
}

func validateRegistration(r client.RegisterRequest) error {
	if r.Name == "" || r.Email == "" || r.Password == "" || r.ConfirmPassword == "" {
		return invalid(MsgFillAllFields)
	}
	if !ValidEmail(r.Email) {
		return invalid(MsgInvalidEmail)
	}
	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		return invalid(MsgPasswordTooShort)
	}
	if r.Password != r.ConfirmPassword {
		return invalid(MsgPasswordMismatch)
	}
	if r.Role != models.RoleCustomer && r.Role != models.RoleOwner {
		return invalid("Please choose either customer or owner")
	}
	return nil
}

// ValidateListingForm checks an owner listing form before it is uploaded.
func ValidateListingForm(f models.ListingForm) error {
	if strings.TrimSpace(f.Title) == "" ||
		strings.TrimSpace(f.Description) == "" ||
		strings.TrimSpace(f.Location.City) == "" ||
		f.Price <= 0 ||
		f.Area <= 0 {
		return invalid(MsgFillRequiredFields)
	}
	if !f.Type.Valid() {
		return invalid(MsgInvalidPropertyType)
	}
	if f.Bedrooms < 0 || f.Bathrooms < 0 {
		return invalid(MsgNegativeRooms)
	}
	if f.ImageCount() > MaxListingImages {
		return invalid(MsgTooManyImages)
	}
	return nil
}

func validateFilter(f models.ListingFilter) error {
	if f.Type != "" && !f.Type.Valid() {
		return invalid(MsgInvalidPropertyType)
	}
	if f.SortBy != "" && !f.SortBy.Valid() {
		return invalid("Sort must be one of -createdAt, price, -price")
	}
	if f.MaxPrice < 0 {
		return invalid("Max price cannot be negative")
	}
	return nil
}
