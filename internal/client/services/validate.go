package services

import (
	"fmt"

	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks v against its struct tags. Failures match
// common.ErrorValidation.
func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	return nil
}
