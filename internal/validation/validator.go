// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/types"
)

// Validator wraps go-playground/validator with the CRM specific tags:
// "role" accepts any known role, "event_status" any event status.
type Validator struct {
	validate *validator.Validate
}

// ValidationError maps JSON field names to human readable messages.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}

	return "validation failed: " + strings.Join(msgs, ", ")
}

func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}

	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "role":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(roles.All(), ", "))
	case "event_status":
		return fmt.Sprintf("%s must be a valid event status", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return roles.IsValid(fl.Field().String())
	})

	_ = validate.RegisterValidation("event_status", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case types.EventStatusPlanned, types.EventStatusConfirmed, types.EventStatusCancelled, types.EventStatusCompleted:
			return true
		default:
			return false
		}
	})

	return &Validator{validate: validate}
}
