// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/inventory-service/internal/result"
	"github.com/canonical/inventory-service/internal/types"
)

// NewValidator returns a validator aware of the inventory enums, field names in
// messages follow the json tags.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("device_type", func(fl validator.FieldLevel) bool {
		return types.DeviceType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("connection_type", func(fl validator.FieldLevel) bool {
		return types.ConnectionType(fl.Field().String()).Valid()
	})

	return v
}

// Struct validates s and turns the failures into a ValidationError.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return result.NewInternalError("", err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, describe(fe))
	}

	return result.NewValidationError("Invalid data: " + strings.Join(messages, " "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long.", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", fe.Field())
	case "eqfield":
		return fmt.Sprintf("%s must match %s.", fe.Field(), fe.Param())
	case "device_type", "connection_type":
		return fmt.Sprintf("%s %q is not a known type.", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

// Optional trims s and treats a blank value as absent.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
