package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/guimove/pewfit/internal/model"
)

// SiteInfo holds the venue parameters submitted with an upload.
type SiteInfo struct {
	MaxCapacity     int     `json:"maxCapacity" validate:"min=1"`
	ReservedSeats   int     `json:"numReservedSeating" validate:"min=0,ltefield=MaxCapacity"`
	SeparationFeet  float64 `json:"sepRad" validate:"min=0"`
	SeatWidthInches float64 `json:"seatWidth" validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the parameters and reports every violated rule.
func (s SiteInfo) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating site info: %w", err)
	}

	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = describe(fe)
	}
	return fmt.Errorf("invalid site info: %s", strings.Join(msgs, "; "))
}

// Margin returns the spacing in seats implied by the separation distance.
func (s SiteInfo) Margin() int {
	return model.MarginForSeparation(s.SeparationFeet, s.SeatWidthInches)
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "MaxCapacity":
		return "must have at least one spot of capacity"
	case "ReservedSeats":
		if fe.Tag() == "ltefield" {
			return "reserved seating cannot exceed maximum capacity"
		}
		return "cannot have a negative number of reserved seats"
	case "SeparationFeet":
		return "separation radius cannot be negative"
	case "SeatWidthInches":
		return "seats must have a positive non-zero width"
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
