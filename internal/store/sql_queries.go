// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

const driversTable = "drivers"

// driverColumns is the column order every statement selects and returns,
// matching scanDriver.
var driverColumns = []string{
	"driver_id",
	"driver_name",
	"fleet_id",
	"location",
	"vehicle_groups",
}

// listKey identifies one precompiled ordering of the driver list.
type listKey struct {
	column models.SortColumn
	order  models.SortOrder
}

// statementBuilder returns a squirrel builder using the placeholder format
// of dialect.
func statementBuilder(dialect string) (sq.StatementBuilderType, error) {
	switch dialect {
	case config.DialectPostgres:
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar), nil
	case config.DialectSQLite:
		return sq.StatementBuilder.PlaceholderFormat(sq.Question), nil
	default:
		return sq.StatementBuilderType{}, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}

// buildListDriversQueries precompiles one SELECT per accepted
// (column, order) pair. Request input only ever selects a key of the
// returned map.
func buildListDriversQueries(b sq.StatementBuilderType) (map[listKey]string, error) {
	queries := make(map[listKey]string, len(models.SortColumns)*len(models.SortOrders))

	for _, column := range models.SortColumns {
		for _, order := range models.SortOrders {
			query, _, err := b.
				Select(driverColumns...).
				From(driversTable).
				OrderBy(fmt.Sprintf("%s %s", column, order), "driver_id ASC").
				ToSql()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			queries[listKey{column: column, order: order}] = query
		}
	}

	return queries, nil
}

func buildInsertDriverQuery(b sq.StatementBuilderType, in models.DriverInput) (string, []any, error) {
	query, args, err := b.
		Insert(driversTable).
		Columns(driverColumns[1:]...).
		Values(in.DriverName, in.FleetID, locationArg(in.Location), in.VehicleGroups).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateDriverQuery(b sq.StatementBuilderType, driverID int64, in models.DriverInput) (string, []any, error) {
	query, args, err := b.
		Update(driversTable).
		Set("driver_name", in.DriverName).
		Set("fleet_id", in.FleetID).
		Set("location", locationArg(in.Location)).
		Set("vehicle_groups", in.VehicleGroups).
		Where(sq.Eq{"driver_id": driverID}).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteDriverQuery(b sq.StatementBuilderType, driverID int64) (string, []any, error) {
	query, args, err := b.
		Delete(driversTable).
		Where(sq.Eq{"driver_id": driverID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindDriverByIDQuery(b sq.StatementBuilderType, driverID int64) (string, []any, error) {
	query, args, err := b.
		Select(driverColumns...).
		From(driversTable).
		Where(sq.Eq{"driver_id": driverID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func returningColumns() string {
	return strings.Join(driverColumns, ", ")
}

// locationArg passes an untyped nil for a missing location so every driver
// binds NULL instead of calling Value on a nil pointer.
func locationArg(l *models.Location) any {
	if l == nil {
		return nil
	}
	return *l
}
