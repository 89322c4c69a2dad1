package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

func TestNewStorages_UnsupportedDialect(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Dialect: "mysql"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestNewStorages_UnsupportedBackend(t *testing.T) {
	cfg := config.Storage{DB: config.DB{
		DSN:     filepath.Join(t.TempDir(), "drivers.db"),
		Dialect: config.DialectSQLite,
		Backend: "nosql",
	}}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

// TestNewStorages_SQLiteRoundTrip runs every repository operation against
// a real SQLite file created by the embedded migrations.
func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{DB: config.DB{
		DSN:         filepath.Join(t.TempDir(), "drivers.db"),
		Dialect:     config.DialectSQLite,
		Backend:     config.BackendSQL,
		AutoMigrate: true,
	}}

	storages, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.DriverRepository

	alice, err := repo.CreateDriver(ctx, sampleInput())
	require.NoError(t, err)
	assert.Positive(t, alice.DriverID)
	assert.Equal(t, &models.Location{City: "Pune", Pincode: "411001"}, alice.Location)

	bob, err := repo.CreateDriver(ctx, models.DriverInput{DriverName: "Bob", FleetID: "F9"})
	require.NoError(t, err)
	assert.NotEqual(t, alice.DriverID, bob.DriverID)
	assert.Nil(t, bob.Location)

	byName, err := repo.ListDrivers(ctx, models.DefaultListParams())
	require.NoError(t, err)
	require.Len(t, byName, 2)
	assert.Equal(t, "Alice", byName[0].DriverName)

	byFleetDesc, err := repo.ListDrivers(ctx, models.ListParams{SortBy: models.SortByFleetID, SortOrder: models.SortDesc})
	require.NoError(t, err)
	require.Len(t, byFleetDesc, 2)
	assert.Equal(t, "F9", byFleetDesc[0].FleetID)

	updated, err := repo.UpdateDriver(ctx, bob.DriverID, models.DriverInput{
		DriverName:    "Robert",
		FleetID:       "F9",
		VehicleGroups: models.VehicleGroups{"truck"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.DriverName)
	assert.Equal(t, models.VehicleGroups{"truck"}, updated.VehicleGroups)

	_, err = repo.UpdateDriver(ctx, 9999, sampleInput())
	assert.ErrorIs(t, err, ErrDriverNotFound)

	found, err := repo.FindDriverByID(ctx, alice.DriverID)
	require.NoError(t, err)
	assert.Equal(t, alice, found)

	deleted, err := repo.DeleteDriver(ctx, alice.DriverID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteDriver(ctx, alice.DriverID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindDriverByID(ctx, alice.DriverID)
	assert.ErrorIs(t, err, ErrDriverNotFound)

	remaining, err := repo.ListDrivers(ctx, models.DefaultListParams())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, bob.DriverID, remaining[0].DriverID)
}
