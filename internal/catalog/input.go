package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewTaxon is the user-supplied form for registering a taxon.
type NewTaxon struct {
	Name        string `validate:"required"`
	Order       string `validate:"required"`
	Description string
	Tolerance   int `validate:"min=1,max=10"`
}

// DefaultTolerance is the starting value offered by input forms.
const DefaultTolerance = 5

var inputValidate = validator.New()

// normalize trims free-text fields.
func (n NewTaxon) normalize() NewTaxon {
	n.Name = strings.TrimSpace(n.Name)
	n.Order = strings.TrimSpace(n.Order)
	n.Description = strings.TrimSpace(n.Description)
	return n
}

// Validate checks the submission and returns a *ValidationError for the
// first failing field, or nil.
func (n NewTaxon) Validate() error {
	err := inputValidate.Struct(n.normalize())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "input", Message: err.Error(), Err: err}
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "must not be empty"
	case "min", "max":
		msg = fmt.Sprintf("must be between %d and %d, got %v", MinTolerance, MaxTolerance, fe.Value())
	default:
		msg = fmt.Sprintf("failed %q check", fe.Tag())
	}
	return &ValidationError{Field: field, Message: msg, Err: fe}
}

// derive builds the catalog entry for a validated submission.
// Index scores are a fixed approximation from tolerance, not a real index lookup.
func (n NewTaxon) derive(id, color string) Taxon {
	return Taxon{
		ID:          id,
		Name:        n.Name,
		Order:       n.Order,
		Tolerance:   n.Tolerance,
		BMWP:        MaxTolerance - n.Tolerance,
		ABI:         MaxTolerance - n.Tolerance,
		IBF:         n.Tolerance,
		Habitat:     UserHabitat,
		Description: n.Description,
		UserAdded:   true,
		Color:       color,
		Image:       UserImage,
	}
}
