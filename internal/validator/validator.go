// Package validator checks submitted checking account data against the
// structural opening rules. All rules are evaluated; violations are collected
// and reported together rather than short-circuiting on the first failure.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/emmanueldev/checking-account/internal/models"
)

// InputValidator validates a candidate checking account. It is pure and safe
// for concurrent use.
type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() *InputValidator {
	v := validator.New()

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// Report violations under the JSON field names, not the Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &InputValidator{validate: v}
}

// Validate returns nil when the candidate satisfies every rule, otherwise a
// *models.ViolationError carrying one violation per broken rule. The candidate
// is never normalized or mutated. Nested customer rules are only evaluated
// when a customer is present.
func (v *InputValidator) Validate(account *models.CheckingAccount) error {
	err := v.validate.Struct(account)
	if err == nil {
		return nil
	}

	var violations []models.Violation
	for _, fieldErr := range err.(validator.ValidationErrors) {
		property := propertyName(fieldErr)
		violations = append(violations, models.Violation{
			Property: property,
			Message:  violationMessage(property),
		})
	}

	return &models.ViolationError{
		Message:    "Invalid input",
		Violations: violations,
	}
}

// propertyName strips the root struct segment from the namespace, leaving
// "iban" or "customer.id" style paths.
func propertyName(err validator.FieldError) string {
	namespace := err.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func violationMessage(property string) string {
	switch property {
	case "iban":
		return "IBAN is required"
	case "currency":
		return "currency is required"
	case "customer":
		return "customer must not be null"
	case "customer.id":
		return "customer id is required"
	case "customer.name":
		return "customer name is required"
	default:
		return "Invalid value"
	}
}
