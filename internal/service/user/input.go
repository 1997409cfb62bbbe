package user

import (
	"strings"

	"github.com/techconnect-india/backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	City   *string
	Skills *[]string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.City == nil && i.Skills == nil {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "at least one field is required"})
	}

	if i.City != nil {
		city := strings.TrimSpace(*i.City)
		if city == "" {
			errs = append(errs, domain.FieldError{Field: "city", Message: "required"})
		} else if len(city) > 100 {
			errs = append(errs, domain.FieldError{Field: "city", Message: "too long"})
		}
	}

	if i.Skills != nil {
		if len(*i.Skills) == 0 {
			errs = append(errs, domain.FieldError{Field: "skills", Message: "at least one skill is required"})
		} else if len(*i.Skills) > 50 {
			errs = append(errs, domain.FieldError{Field: "skills", Message: "too many entries"})
		}
		for _, skill := range *i.Skills {
			if strings.TrimSpace(skill) == "" {
				errs = append(errs, domain.FieldError{Field: "skills", Message: "blank entries are not allowed"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
