package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ValidatorService rejects structurally invalid conversion requests.
type ValidatorService struct {
	validate *validator.Validate
}

// NewValidatorService creates a validator reporting fields by their JSON names.
func NewValidatorService() *ValidatorService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ValidatorService{validate: v}
}

// Validate checks body and returns the request the converter works on.
// Fields are checked in order from, to, amount; the first failure is returned.
func (svc *ValidatorService) Validate(body models.ConvertRequestBody) (models.ConversionRequest, error) {
	if err := svc.validate.Struct(body); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return models.ConversionRequest{}, fieldError(fieldErrs[0])
		}
		return models.ConversionRequest{}, models.NewInvalidRequestError("invalid conversion request: %v", err)
	}

	return models.ConversionRequest{
		From:   *body.From,
		To:     *body.To,
		Amount: *body.Amount,
	}, nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return models.NewInvalidRequestError("'%s' field is mandatory!", fe.Field())
	case "len":
		return models.NewInvalidRequestError("'%s' field should be a %s letter currency code", fe.Field(), fe.Param())
	default:
		return models.NewInvalidRequestError("'%s' field is invalid", fe.Field())
	}
}
