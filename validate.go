// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

package ugcprompt

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// enumTag is the custom validator tag checking closed vocabularies.
const enumTag = "enum"

// FieldError is one violated constraint of a builder state.
type FieldError struct {
	// Kind is one of the validation sentinel errors (ErrRequired, ErrInvalidEnum, ...).
	Kind error
	// Path is the dotted JSON path of the offending field, e.g. "shots[1].actions".
	Path string
	// Allowed lists accepted values for ErrInvalidEnum.
	Allowed []string
	// Total and Min describe ErrDurationFloor.
	Total int
	Min   int
}

// Error implements error.
func (e FieldError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrInvalidEnum):
		return fmt.Sprintf("%s: %v (allowed: %s)", e.Path, e.Kind, strings.Join(e.Allowed, ", "))
	case errors.Is(e.Kind, ErrDurationFloor):
		return fmt.Sprintf("%s: %v (%ds < %ds)", e.Path, e.Kind, e.Total, e.Min)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
}

// Unwrap exposes the error kind to errors.Is.
func (e FieldError) Unwrap() error {
	return e.Kind
}

// ValidationResult collects every violated constraint of one state.
type ValidationResult struct {
	Errors []FieldError
}

// Valid reports whether no constraint was violated.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Has reports whether any error of the given kind is present.
func (r ValidationResult) Has(kind error) bool {
	for _, fieldErr := range r.Errors {
		if errors.Is(fieldErr.Kind, kind) {
			return true
		}
	}

	return false
}

// Err returns nil for valid states, otherwise an error wrapping ErrInvalidState
// and every field error.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}

	errs := make([]error, 0, len(r.Errors))
	for _, fieldErr := range r.Errors {
		errs = append(errs, fieldErr)
	}

	return fmt.Errorf("%w: %w", ErrInvalidState, errors.Join(errs...))
}

var (
	stateValidator     *validator.Validate
	stateValidatorOnce sync.Once
)

// Validate checks a candidate state against the builder schema. It never
// panics, even for zero values freshly decoded from untrusted snapshots.
func Validate(state State) ValidationResult {
	var result ValidationResult

	err := getStateValidator().Struct(state)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			result.Errors = append(result.Errors, mapFieldError(fe))
		}
	}

	if len(state.Shots) > 0 {
		if total := state.TotalDuration(); total < MinTotalDuration {
			result.Errors = append(result.Errors, FieldError{
				Kind:  ErrDurationFloor,
				Path:  "shots",
				Total: total,
				Min:   MinTotalDuration,
			})
		}
	}

	return result
}

// getStateValidator builds the shared validator once; validator.Validate is safe for concurrent use.
func getStateValidator() *validator.Validate {
	stateValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation(enumTag, validateEnum)
		stateValidator = v
	})

	return stateValidator
}

// validateEnum accepts members of closed vocabulary types only.
func validateEnum(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(enumerated)
	return ok && value.Known()
}

// jsonFieldName names fields by their JSON tag so paths match the snapshot wire format.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// mapFieldError converts one validator error into the builder error taxonomy.
func mapFieldError(fe validator.FieldError) FieldError {
	out := FieldError{Path: fieldPath(fe.Namespace())}

	switch fe.Tag() {
	case enumTag:
		out.Kind = ErrInvalidEnum
		if value, ok := fe.Value().(enumerated); ok {
			out.Allowed = value.Values()
		}
	case "min":
		switch fe.StructField() {
		case "PersonaTone":
			out.Kind = ErrTooFewTones
		case "Shots":
			out.Kind = ErrNoShots
		default:
			out.Kind = ErrShotTooShort
		}
	default:
		out.Kind = ErrRequired
	}

	return out
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}
