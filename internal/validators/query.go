package validators

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fleet-drivers/models"
)

var defaultValidator = newDriverValidator()

// ParseDriverID parses a driver id from a path segment or query value. Only
// positive base 10 integers are accepted.
func ParseDriverID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidDriverID
	}

	return id, nil
}

// ParseListParams reads sort_by and sort_order from the driver list query.
//
// Each given parameter is validated, but the ordering only changes when both
// are present; otherwise [models.DefaultListParams] applies. sort_order is
// case-insensitive. Any other query key is rejected.
func ParseListParams(query url.Values) (models.ListParams, error) {
	requested := models.DefaultListParams()
	_, hasSortBy := query[FieldSortBy]
	_, hasSortOrder := query[FieldSortOrder]

	if hasSortBy {
		value, err := singleValue(FieldSortBy, query[FieldSortBy])
		if err != nil {
			return models.ListParams{}, err
		}
		requested.SortBy = models.SortColumn(value)
	}

	if hasSortOrder {
		value, err := singleValue(FieldSortOrder, query[FieldSortOrder])
		if err != nil {
			return models.ListParams{}, err
		}
		requested.SortOrder = models.SortOrder(value)
	}

	if err := defaultValidator.validateListParams(requested); err != nil {
		return models.ListParams{}, err
	}

	params := models.DefaultListParams()
	if hasSortBy && hasSortOrder {
		params.SortBy = requested.SortBy
		params.SortOrder = models.SortOrder(strings.ToUpper(string(requested.SortOrder)))
	}

	unknown := make([]string, 0, len(query))
	for key := range query {
		if key != FieldSortBy && key != FieldSortOrder {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return models.ListParams{}, newValidationError(`"%s" is not allowed`, unknown[0])
	}

	return params, nil
}

func singleValue(name string, values []string) (string, error) {
	if len(values) != 1 {
		return "", newValidationError(`"%s" must be a string`, name)
	}
	if values[0] == "" {
		return "", newValidationError(`"%s" is not allowed to be empty`, name)
	}
	return values[0], nil
}
