package services

import (
	"fmt"
	"net/mail"
	"strings"

	"clicktoeat/internal/models"
)

const (
	minRating         = 1
	maxRating         = 5
	minPasswordLength = 6
)

// ValidateComment checks a comment before it is sent upstream.
func ValidateComment(input models.CommentInput) models.FieldErrors {
	var errs models.FieldErrors
	if strings.TrimSpace(input.Review) == "" {
		errs = append(errs, models.FieldError{Field: "review", Error: "Review cannot be empty"})
	}
	if input.Rating < minRating || input.Rating > maxRating {
		errs = append(errs, models.FieldError{Field: "rating", Error: fmt.Sprintf("Rating must be between %d and %d", minRating, maxRating)})
	}
	return errs
}

// ValidateRestaurant checks restaurant input. The image is only mandatory
// when a restaurant is created.
func ValidateRestaurant(input models.RestaurantInput, requireImage bool) models.FieldErrors {
	var errs models.FieldErrors
	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, models.FieldError{Field: "name", Error: "Name cannot be empty"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, models.FieldError{Field: "description", Error: "Description cannot be empty"})
	}
	if requireImage && (input.Image == nil || len(input.Image.Data) == 0) {
		errs = append(errs, models.FieldError{Field: "image", Error: "Image is required"})
	}
	for i, loc := range input.Locations {
		field := fmt.Sprintf("locations[%d]", i)
		if strings.TrimSpace(loc.Address) == "" {
			errs = append(errs, models.FieldError{Field: field + ".address", Error: "Address cannot be empty"})
		}
		if loc.Latitude < -90 || loc.Latitude > 90 {
			errs = append(errs, models.FieldError{Field: field + ".lat", Error: "Latitude must be between -90 and 90"})
		}
		if loc.Longitude < -180 || loc.Longitude > 180 {
			errs = append(errs, models.FieldError{Field: field + ".lng", Error: "Longitude must be between -180 and 180"})
		}
	}
	return errs
}

// ValidateCredentials checks a login attempt.
func ValidateCredentials(creds models.Credentials) models.FieldErrors {
	var errs models.FieldErrors
	if strings.TrimSpace(creds.Email) == "" {
		errs = append(errs, models.FieldError{Field: "email", Error: "Email cannot be empty"})
	}
	if creds.Password == "" {
		errs = append(errs, models.FieldError{Field: "password", Error: "Password cannot be empty"})
	}
	return errs
}

// ValidateAccount checks registration and profile input. An update may omit
// the password to keep the current one.
func ValidateAccount(input models.AccountInput, requirePassword bool) models.FieldErrors {
	var errs models.FieldErrors
	if strings.TrimSpace(input.Username) == "" {
		errs = append(errs, models.FieldError{Field: "username", Error: "Username cannot be empty"})
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		errs = append(errs, models.FieldError{Field: "email", Error: "Email cannot be empty"})
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs = append(errs, models.FieldError{Field: "email", Error: "Email is not valid"})
	}
	if requirePassword || input.Password != "" {
		if len(input.Password) < minPasswordLength {
			errs = append(errs, models.FieldError{Field: "password", Error: fmt.Sprintf("Password must be at least %d characters", minPasswordLength)})
		}
	}
	return errs
}
