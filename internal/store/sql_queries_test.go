// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

func postgresBuilder(t *testing.T) sq.StatementBuilderType {
	t.Helper()
	b, err := statementBuilder(config.DialectPostgres)
	require.NoError(t, err)
	return b
}

func sqliteBuilder(t *testing.T) sq.StatementBuilderType {
	t.Helper()
	b, err := statementBuilder(config.DialectSQLite)
	require.NoError(t, err)
	return b
}

func sampleInput() models.DriverInput {
	return models.DriverInput{
		DriverName:    "Alice",
		FleetID:       "F1",
		Location:      &models.Location{City: "Pune", Pincode: "411001"},
		VehicleGroups: models.VehicleGroups{"van"},
	}
}

func Test_statementBuilder_UnknownDialect(t *testing.T) {
	_, err := statementBuilder("mysql")
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func Test_buildInsertDriverQuery(t *testing.T) {
	tests := []struct {
		name      string
		builder   func(t *testing.T) sq.StatementBuilderType
		wantQuery string
	}{
		{
			name:    "postgres placeholders",
			builder: postgresBuilder,
			wantQuery: "INSERT INTO drivers (driver_name,fleet_id,location,vehicle_groups) VALUES ($1,$2,$3,$4) " +
				"RETURNING driver_id, driver_name, fleet_id, location, vehicle_groups",
		},
		{
			name:    "sqlite placeholders",
			builder: sqliteBuilder,
			wantQuery: "INSERT INTO drivers (driver_name,fleet_id,location,vehicle_groups) VALUES (?,?,?,?) " +
				"RETURNING driver_id, driver_name, fleet_id, location, vehicle_groups",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInput()

			query, args, err := buildInsertDriverQuery(tt.builder(t), in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, query)
			require.Len(t, args, 4)
			assert.Equal(t, "Alice", args[0])
			assert.Equal(t, "F1", args[1])
			assert.Equal(t, *in.Location, args[2])
			assert.Equal(t, in.VehicleGroups, args[3])
		})
	}
}

func Test_buildInsertDriverQuery_NilLocationBindsNull(t *testing.T) {
	in := sampleInput()
	in.Location = nil

	_, args, err := buildInsertDriverQuery(postgresBuilder(t), in)
	require.NoError(t, err)
	assert.Nil(t, args[2])
}

func Test_buildUpdateDriverQuery(t *testing.T) {
	in := sampleInput()

	query, args, err := buildUpdateDriverQuery(postgresBuilder(t), 7, in)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE drivers SET driver_name = $1, fleet_id = $2, location = $3, vehicle_groups = $4 "+
			"WHERE driver_id = $5 RETURNING driver_id, driver_name, fleet_id, location, vehicle_groups",
		query)
	require.Len(t, args, 5)
	assert.Equal(t, int64(7), args[4])
}

func Test_buildDeleteDriverQuery(t *testing.T) {
	query, args, err := buildDeleteDriverQuery(sqliteBuilder(t), 3)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM drivers WHERE driver_id = ?", query)
	assert.Equal(t, []any{int64(3)}, args)
}

func Test_buildFindDriverByIDQuery(t *testing.T) {
	query, args, err := buildFindDriverByIDQuery(postgresBuilder(t), 3)
	require.NoError(t, err)

	assert.Equal(t, "SELECT driver_id, driver_name, fleet_id, location, vehicle_groups FROM drivers WHERE driver_id = $1", query)
	assert.Equal(t, []any{int64(3)}, args)
}

func Test_buildListDriversQueries(t *testing.T) {
	queries, err := buildListDriversQueries(postgresBuilder(t))
	require.NoError(t, err)

	// one query per column and direction, nothing else
	require.Len(t, queries, len(models.SortColumns)*len(models.SortOrders))

	assert.Equal(t,
		"SELECT driver_id, driver_name, fleet_id, location, vehicle_groups FROM drivers ORDER BY driver_name ASC, driver_id ASC",
		queries[listKey{column: models.SortByDriverName, order: models.SortAsc}])
	assert.Equal(t,
		"SELECT driver_id, driver_name, fleet_id, location, vehicle_groups FROM drivers ORDER BY fleet_id DESC, driver_id ASC",
		queries[listKey{column: models.SortByFleetID, order: models.SortDesc}])

	for key, query := range queries {
		assert.Contains(t, query, string(key.column)+" "+string(key.order))
	}
}
