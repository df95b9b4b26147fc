package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// firstBindingError reduces a binding failure to the first failing field's
// message, Joi-style.
func firstBindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%q is required", fe.Field())
		case "email":
			return fmt.Sprintf("%q must be a valid email", fe.Field())
		default:
			return fmt.Sprintf("%q is invalid", fe.Field())
		}
	}
	return err.Error()
}
