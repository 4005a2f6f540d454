package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/casedrop/casedrop/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("rarity", validateRarity)
	_ = v.RegisterValidation("sortkey", validateSortKey)
	_ = v.RegisterValidation("role", validateRole)
	_ = v.RegisterValidation("money", validateMoney)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "email":
			errs[field] = "Invalid email format"
		case "rarity":
			errs[field] = "Unknown rarity tier"
		case "sortkey":
			errs[field] = "Unknown sort key"
		case "role":
			errs[field] = "Unknown role"
		case "money":
			errs[field] = "Invalid money amount"
		case "uuid":
			errs[field] = "Must be a valid id"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateRarity(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return domain.RarityTier(strings.ToLower(s)).Valid()
}

func validateSortKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", domain.InventorySortName, domain.InventorySortPrice, domain.InventorySortRarity:
		return true
	}
	return false
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := domain.ParseRole(fl.Field().String())
	return err == nil
}

func validateMoney(fl validator.FieldLevel) bool {
	_, err := domain.ParseCents(fl.Field().String())
	return err == nil
}
