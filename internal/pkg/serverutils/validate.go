package serverutils

import (
	"github.com/go-playground/validator/v10"

	"exposurelog-be/internal/pkg/apperror"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return apperror.BadRequest("invalid request: %v", err)
	}
	return nil
}
