package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

var driverRowColumns = []string{"driver_id", "driver_name", "fleet_id", "location", "vehicle_groups"}

const (
	insertDriverSQL = "INSERT INTO drivers (driver_name,fleet_id,location,vehicle_groups) VALUES ($1,$2,$3,$4) RETURNING driver_id, driver_name, fleet_id, location, vehicle_groups"
	updateDriverSQL = "UPDATE drivers SET driver_name = $1, fleet_id = $2, location = $3, vehicle_groups = $4 WHERE driver_id = $5 RETURNING driver_id, driver_name, fleet_id, location, vehicle_groups"
	deleteDriverSQL = "DELETE FROM drivers WHERE driver_id = $1"
	findDriverSQL   = "SELECT driver_id, driver_name, fleet_id, location, vehicle_groups FROM drivers WHERE driver_id = $1"
	listByNameSQL   = "SELECT driver_id, driver_name, fleet_id, location, vehicle_groups FROM drivers ORDER BY driver_name ASC, driver_id ASC"
	listByFleetSQL  = "SELECT driver_id, driver_name, fleet_id, location, vehicle_groups FROM drivers ORDER BY fleet_id DESC, driver_id ASC"
)

func newTestDriverRepo(t *testing.T) (DriverRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	db := &DB{
		DB:                 conn,
		dialect:            config.DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}

	repo, err := NewDriverRepository(db, l)
	require.NoError(t, err)

	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestNewDriverRepository_UnsupportedDialect(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	_, err = NewDriverRepository(&DB{DB: conn, dialect: "oracle"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestDriverRepository_CreateDriver_Success(t *testing.T) {
	repo, mock := newTestDriverRepo(t)
	in := sampleInput()

	mock.ExpectQuery(regexp.QuoteMeta(insertDriverSQL)).
		WithArgs("Alice", "F1", *in.Location, in.VehicleGroups).
		WillReturnRows(sqlmock.NewRows(driverRowColumns).
			AddRow(int64(1), "Alice", "F1", []byte(`{"City":"Pune","Pincode":"411001"}`), []byte(`["van"]`)))

	driver, err := repo.CreateDriver(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, models.Driver{
		DriverID:      1,
		DriverName:    "Alice",
		FleetID:       "F1",
		Location:      &models.Location{City: "Pune", Pincode: "411001"},
		VehicleGroups: models.VehicleGroups{"van"},
	}, driver)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverRepository_CreateDriver_NullOptionalFields(t *testing.T) {
	repo, mock := newTestDriverRepo(t)
	in := models.DriverInput{DriverName: "Bob", FleetID: "F2"}

	mock.ExpectQuery(regexp.QuoteMeta(insertDriverSQL)).
		WithArgs("Bob", "F2", nil, nil).
		WillReturnRows(sqlmock.NewRows(driverRowColumns).AddRow(int64(2), "Bob", "F2", nil, nil))

	driver, err := repo.CreateDriver(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(2), driver.DriverID)
	assert.Nil(t, driver.Location)
	assert.Nil(t, driver.VehicleGroups)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverRepository_CreateDriver_ConstraintViolation(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertDriverSQL)).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateDriver(context.Background(), sampleInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestDriverRepository_CreateDriver_RetryableErrorIsNotRetried(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertDriverSQL)).
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := repo.CreateDriver(context.Background(), sampleInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrConstraintViolation)
	// a single expectation: any retry would fail with "all expectations were already fulfilled"
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverRepository_CreateDriver_ScanError(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertDriverSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).AddRow(int64(1))) // wrong shape

	_, err := repo.CreateDriver(context.Background(), sampleInput())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestDriverRepository_ListDrivers(t *testing.T) {
	tests := []struct {
		name   string
		params models.ListParams
		query  string
	}{
		{name: "default order", params: models.DefaultListParams(), query: listByNameSQL},
		{name: "fleet id descending", params: models.ListParams{SortBy: models.SortByFleetID, SortOrder: models.SortDesc}, query: listByFleetSQL},
		{name: "unknown ordering falls back to default", params: models.ListParams{SortBy: "driver_id; DROP TABLE drivers", SortOrder: models.SortAsc}, query: listByNameSQL},
		{name: "zero params falls back to default", params: models.ListParams{}, query: listByNameSQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestDriverRepo(t)

			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WillReturnRows(sqlmock.NewRows(driverRowColumns).
					AddRow(int64(1), "Alice", "F1", nil, []byte(`["van","truck"]`)).
					AddRow(int64(2), "Bob", "F2", `{"City":"Goa","Pincode":"403001"}`, nil))

			drivers, err := repo.ListDrivers(context.Background(), tt.params)
			require.NoError(t, err)
			require.Len(t, drivers, 2)

			assert.Equal(t, models.VehicleGroups{"van", "truck"}, drivers[0].VehicleGroups)
			assert.Equal(t, &models.Location{City: "Goa", Pincode: "403001"}, drivers[1].Location)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDriverRepository_ListDrivers_Empty(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listByNameSQL)).
		WillReturnRows(sqlmock.NewRows(driverRowColumns))

	drivers, err := repo.ListDrivers(context.Background(), models.DefaultListParams())
	require.NoError(t, err)
	assert.NotNil(t, drivers)
	assert.Empty(t, drivers)
}

func TestDriverRepository_ListDrivers_QueryError(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listByNameSQL)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListDrivers(context.Background(), models.DefaultListParams())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestDriverRepository_ListDrivers_ScanError(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listByNameSQL)).
		WillReturnRows(sqlmock.NewRows(driverRowColumns).
			AddRow(int64(1), "Alice", "F1", []byte(`not json`), nil))

	_, err := repo.ListDrivers(context.Background(), models.DefaultListParams())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestDriverRepository_ListDrivers_RowsError(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listByNameSQL)).
		WillReturnRows(sqlmock.NewRows(driverRowColumns).
			AddRow(int64(1), "Alice", "F1", nil, nil).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListDrivers(context.Background(), models.DefaultListParams())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestDriverRepository_UpdateDriver_Success(t *testing.T) {
	repo, mock := newTestDriverRepo(t)
	in := sampleInput()
	in.DriverName = "Alicia"

	mock.ExpectQuery(regexp.QuoteMeta(updateDriverSQL)).
		WithArgs("Alicia", "F1", *in.Location, in.VehicleGroups, int64(5)).
		WillReturnRows(sqlmock.NewRows(driverRowColumns).
			AddRow(int64(5), "Alicia", "F1", []byte(`{"City":"Pune","Pincode":"411001"}`), []byte(`["van"]`)))

	driver, err := repo.UpdateDriver(context.Background(), 5, in)
	require.NoError(t, err)
	assert.Equal(t, int64(5), driver.DriverID)
	assert.Equal(t, "Alicia", driver.DriverName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverRepository_UpdateDriver_NotFound(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(updateDriverSQL)).
		WillReturnRows(sqlmock.NewRows(driverRowColumns))

	_, err := repo.UpdateDriver(context.Background(), 99, sampleInput())
	assert.ErrorIs(t, err, ErrDriverNotFound)
}

func TestDriverRepository_UpdateDriver_DBError(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(updateDriverSQL)).
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.UpdateDriver(context.Background(), 1, sampleInput())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.NotErrorIs(t, err, ErrDriverNotFound)
}

func TestDriverRepository_DeleteDriver(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "row removed", affected: 1, want: true},
		{name: "no such driver", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestDriverRepo(t)

			mock.ExpectExec(regexp.QuoteMeta(deleteDriverSQL)).
				WithArgs(int64(4)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			deleted, err := repo.DeleteDriver(context.Background(), 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDriverRepository_DeleteDriver_ExecError(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteDriverSQL)).
		WillReturnError(errors.New("db down"))

	deleted, err := repo.DeleteDriver(context.Background(), 4)
	assert.False(t, deleted)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDriverRepository_DeleteDriver_RowsAffectedError(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteDriverSQL)).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("not supported")))

	_, err := repo.DeleteDriver(context.Background(), 4)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestDriverRepository_FindDriverByID(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findDriverSQL)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(driverRowColumns).AddRow(int64(3), "Carol", "F3", nil, nil))

	driver, err := repo.FindDriverByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Carol", driver.DriverName)
}

func TestDriverRepository_FindDriverByID_NotFound(t *testing.T) {
	repo, mock := newTestDriverRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findDriverSQL)).
		WillReturnRows(sqlmock.NewRows(driverRowColumns))

	_, err := repo.FindDriverByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrDriverNotFound)
}
