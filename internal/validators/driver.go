// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-fleet-drivers/models"
)

// Field name constants used to restrict validation of a [models.DriverInput]
// to a subset of its fields. They match the JSON keys of the request body.
const (
	FieldDriverName    = "driverName"
	FieldFleetID       = "fleetId"
	FieldLocation      = "location"
	FieldVehicleGroups = "vehicleGroups"
)

// Query parameter names of the driver list.
const (
	FieldSortBy    = "sort_by"
	FieldSortOrder = "sort_order"
)

var (
	sortByRule    = "oneof=" + joinValues(models.SortColumns)
	sortOrderRule = "oneof=" + strings.ToLower(joinValues(models.SortOrders))
)

// DriverValidator implements [Validator] for driver inputs, list orderings
// and driver ids.
type DriverValidator struct {
	validate *validator.Validate
}

// NewDriverValidator constructs a DriverValidator. Field errors are reported
// under their JSON names.
func NewDriverValidator() Validator {
	return newDriverValidator()
}

func newDriverValidator() *DriverValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &DriverValidator{validate: v}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - models.DriverInput / *models.DriverInput
//   - models.ListParams / *models.ListParams
//   - int64 (a driver id)
//
// Returns ErrUnsupportedType if obj does not match any known type. Fields
// only apply to DriverInput.
func (v *DriverValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DriverInput:
		return v.validateDriverInput(value, fields...)
	case *models.DriverInput:
		if value == nil {
			return newValidationError(`"value" is required`)
		}
		return v.validateDriverInput(*value, fields...)

	case models.ListParams:
		return v.validateListParams(value)
	case *models.ListParams:
		if value == nil {
			return nil
		}
		return v.validateListParams(*value)

	case int64:
		if value <= 0 {
			return ErrInvalidDriverID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// validateDriverInput runs the struct tag rules of in and reports the first
// violation in field declaration order.
func (v *DriverValidator) validateDriverInput(in models.DriverInput, fields ...string) error {
	scope := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		switch f {
		case FieldDriverName, FieldFleetID, FieldLocation, FieldVehicleGroups:
			scope[f] = struct{}{}
		default:
			return ErrUnknownField
		}
	}

	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	for _, fe := range fieldErrors {
		path := fieldPath(fe.Namespace())
		if len(scope) > 0 {
			top, _, _ := strings.Cut(path, ".")
			if _, ok := scope[top]; !ok {
				continue
			}
		}
		return &ValidationError{Message: message(path, fe.Tag(), fe.Param())}
	}

	return nil
}

func (v *DriverValidator) validateListParams(params models.ListParams) error {
	if err := v.validate.Var(string(params.SortBy), sortByRule); err != nil {
		return newValidationError(`"%s" must be one of [%s]`, FieldSortBy, joinValues(models.SortColumns, ", "))
	}

	if err := v.validate.Var(strings.ToLower(string(params.SortOrder)), sortOrderRule); err != nil {
		return newValidationError(`"%s" must be one of [%s]`, FieldSortOrder, strings.ToLower(joinValues(models.SortOrders, ", ")))
	}

	return nil
}

// fieldPath drops the root struct name: "DriverInput.location.City"
// becomes "location.City".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

// message renders a rule violation for field.
func message(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf(`"%s" is required`, field)
	case "max":
		return fmt.Sprintf(`"%s" length must be less than or equal to %s characters long`, field, param)
	case "oneof":
		return fmt.Sprintf(`"%s" must be one of [%s]`, field, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf(`"%s" is invalid`, field)
	}
}

func joinValues[T ~string](values []T, sep ...string) string {
	s := " "
	if len(sep) > 0 {
		s = sep[0]
	}

	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = string(value)
	}
	return strings.Join(parts, s)
}
