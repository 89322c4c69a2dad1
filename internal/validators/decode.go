package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fleet-drivers/models"
)

// Keys of the request body and of its location object. encoding/json maps
// keys case-insensitively, so exactness is checked on the raw object.
const (
	fieldCity    = "City"
	fieldPincode = "Pincode"
)

var (
	driverInputKeys = []string{FieldDriverName, FieldFleetID, FieldLocation, FieldVehicleGroups}
	locationKeys    = []string{fieldCity, fieldPincode}
)

// DecodeDriverInput decodes a create or update request body. Structural
// problems (malformed JSON, keys outside the schema, wrong JSON types, null or
// empty strings) are reported as [*ValidationError]; rule checks are left to
// [Validator]. An empty body decodes to the zero input. Read errors, such as
// [*http.MaxBytesError], are returned unchanged.
func DecodeDriverInput(r io.Reader) (models.DriverInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.DriverInput{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.DriverInput{}, nil
	}

	if err = checkDriverObject(data); err != nil {
		return models.DriverInput{}, err
	}

	var in models.DriverInput
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err = dec.Decode(&in); err != nil {
		return models.DriverInput{}, decodeError(err)
	}

	// a single JSON document only
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return models.DriverInput{}, &ValidationError{Message: msgInvalidJSONBody}
	}

	return in, nil
}

// checkDriverObject walks the raw body in schema order. Anything that is not
// a JSON object is left to the struct decode to report.
func checkDriverObject(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	if err := checkKeys("", fields, driverInputKeys); err != nil {
		return err
	}
	if err := checkString(FieldDriverName, fields[FieldDriverName]); err != nil {
		return err
	}
	if err := checkString(FieldFleetID, fields[FieldFleetID]); err != nil {
		return err
	}

	raw, ok := fields[FieldLocation]
	if !ok || isNull(raw) {
		return nil
	}

	var location map[string]json.RawMessage
	if err := json.Unmarshal(raw, &location); err != nil {
		return newValidationError(`"%s" must be of type object`, FieldLocation)
	}

	prefix := FieldLocation + "."
	if err := checkKeys(prefix, location, locationKeys); err != nil {
		return err
	}
	if err := checkString(prefix+fieldCity, location[fieldCity]); err != nil {
		return err
	}
	return checkString(prefix+fieldPincode, location[fieldPincode])
}

// checkKeys rejects the first key, in sorted order, that is not exactly one
// of allowed.
func checkKeys(prefix string, fields map[string]json.RawMessage, allowed []string) error {
	unknown := make([]string, 0)
	for key := range fields {
		if !slices.Contains(allowed, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)
	return newValidationError(`"%s%s" is not allowed`, prefix, unknown[0])
}

// checkString reports a present key whose value is null, not a string or
// empty. A missing key is left to the required rule.
func checkString(path string, raw json.RawMessage) error {
	if raw == nil {
		return nil
	}

	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return newValidationError(`"%s" must be a string`, path)
	}
	if *s == "" {
		return newValidationError(`"%s" is not allowed to be empty`, path)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "value"
		}

		// element of vehicleGroups
		if field == FieldVehicleGroups && typeErr.Type.Kind() == reflect.String {
			return newValidationError(`"%s" must contain only strings`, field)
		}

		return newValidationError(`"%s" must be %s`, field, describeKind(typeErr.Type))
	}

	if name, ok := unknownField(err); ok {
		return newValidationError(`"%s" is not allowed`, name)
	}

	return &ValidationError{Message: msgInvalidJSONBody}
}

// unknownField extracts the key of encoding/json's unknown field error.
func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "

	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}

	name, unquoteErr := strconv.Unquote(strings.TrimPrefix(msg, prefix))
	if unquoteErr != nil {
		return "", false
	}

	return name, true
}

func describeKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "of type object"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	default:
		return "valid"
	}
}
