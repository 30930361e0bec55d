package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with decimal rules registered.
//
//	decimal_gt=0   value must be strictly greater than the parameter
//	decimal_gte=0  value must be greater than or equal to the parameter
func Validator() *validator.Validate {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New builds a validator that understands decimal.Decimal fields.
func New() *validator.Validate {
	v := validator.New()

	// decimal.Decimal is a struct; expose it to rules as its canonical string.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("decimal_gt", decimalCompare(func(value, limit decimal.Decimal) bool {
		return value.GreaterThan(limit)
	}))
	_ = v.RegisterValidation("decimal_gte", decimalCompare(func(value, limit decimal.Decimal) bool {
		return value.GreaterThanOrEqual(limit)
	}))

	return v
}

func decimalCompare(cmp func(value, limit decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		limit, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(value, limit)
	}
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return Validator().Struct(s)
}

// Describe renders validation failures as a single human readable line.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeField(fe))
	}
	return strings.Join(parts, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "decimal_gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "decimal_gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must not be negative", field)
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
