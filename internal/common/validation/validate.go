package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New()

func init() {
	registerNoSpecialCharacters()
	registerNoSpacesAtStartOrEnd()
	registerDate()
	registerDatetime()
	registerISO8601DateTime()
	registerDecimalGreaterThanOrEqual()
	registerAccountStatus()
	registerTransactionType()
}

func ValidateStruct(toValidate interface{}) error {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, ErrorValidateResponse{
					Field:   valErr.Field(),
					Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
				})
			}
		}
	}

	return errs.ErrorOrNil()
}

func registerDecimalGreaterThanOrEqual() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(models.Decimal); ok {
			return valuer.String()
		}
		return nil
	}, models.Decimal{})

	validate.RegisterValidation("decimalGte", func(fl validator.FieldLevel) bool {
		data, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		value, err := decimal.NewFromString(data)
		if err != nil {
			return false
		}

		threshold, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}

		return value.GreaterThanOrEqual(threshold)
	})
}

func registerNoSpecialCharacters() {
	validate.RegisterValidation("nospecial", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		pattern := "^[a-zA-Z0-9 -]*$"
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

func registerNoSpacesAtStartOrEnd() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}

func registerDate() {
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		pattern := `^\d{4}-\d{2}-\d{2}$`
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

func registerDatetime() {
	validate.RegisterValidation("datetime", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		pattern := `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

func registerISO8601DateTime() {
	validate.RegisterValidation("iso8601datetime", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		if input != "" {
			_, err := time.Parse(time.RFC3339, input)
			return err == nil
		}

		return true
	})
}

func registerAccountStatus() {
	validate.RegisterValidation("accountStatus", func(fl validator.FieldLevel) bool {
		return models.AccountStatus(fl.Field().String()).Valid()
	})
}

func registerTransactionType() {
	validate.RegisterValidation("transactionType", func(fl validator.FieldLevel) bool {
		return models.TransactionType(fl.Field().String()).Valid()
	})
}
