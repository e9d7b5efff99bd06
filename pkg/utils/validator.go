package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	looseEmailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)
	postalCodeRegex = regexp.MustCompile(`^\d{4,5}$`)
)

// Validator returns the shared validator with the storefront's custom tags registered:
//
//	looseemail    - matches \S+@\S+\.\S+ anywhere in the value
//	postalcode    - 4 or 5 digits once all whitespace is removed
//	paymentmethod - one of cash, card, bank
//	orderstatus   - one of pending, processing, shipped, delivered, cancelled
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
			return IsLooseEmail(fl.Field().String())
		})
		_ = v.RegisterValidation("postalcode", func(fl validator.FieldLevel) bool {
			return IsPostalCode(fl.Field().String())
		})
		_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "cash", "card", "bank":
				return true
			}
			return false
		})
		_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "pending", "processing", "shipped", "delivered", "cancelled":
				return true
			}
			return false
		})
		validate = v
	})
	return validate
}

func ValidateStruct(s any) error {
	return Validator().Struct(s)
}

// GetValidationErrors flattens validator errors into field -> message.
// Non-validator errors are reported under "_".
func GetValidationErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		field := fieldPath(fe)
		out[field] = messageFor(fe)
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace ("CreateOrderRequest.order.email" -> "order.email").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "looseemail", "email":
		return "must be a valid email address"
	case "postalcode":
		return "must be 4 or 5 digits"
	case "paymentmethod":
		return "must be one of cash, card, bank"
	case "orderstatus":
		return "must be one of pending, processing, shipped, delivered, cancelled"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "dive":
		return "is invalid"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func IsLooseEmail(s string) bool {
	return looseEmailRegex.MatchString(s)
}

func IsPostalCode(s string) bool {
	return postalCodeRegex.MatchString(StripSpaces(s))
}

func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
