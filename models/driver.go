// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Driver is a fleet driver record as stored in the "drivers" table and
// returned by the API.
type Driver struct {
	// DriverID is assigned by the database on insert and never changes.
	DriverID int64 `json:"driver_id" gorm:"column:driver_id;primaryKey;autoIncrement"`

	// DriverName is the human-readable driver name (max 255 characters).
	DriverName string `json:"driver_name" gorm:"column:driver_name;size:255;not null"`

	// FleetID references the fleet the driver belongs to. Fleet existence
	// is not checked.
	FleetID string `json:"fleet_id" gorm:"column:fleet_id;size:255;not null"`

	// Location is optional; nil is stored as NULL.
	Location *Location `json:"location" gorm:"column:location"`

	// VehicleGroups is an optional ordered list of group names.
	VehicleGroups VehicleGroups `json:"vehicle_groups" gorm:"column:vehicle_groups"`
}

// TableName binds Driver to the "drivers" table for gorm.
func (Driver) TableName() string {
	return "drivers"
}

// Location is the driver's city and postal code. It is persisted as a JSON
// document.
type Location struct {
	City    string `json:"City" validate:"required,max=255"`
	Pincode string `json:"Pincode" validate:"required,max=10"`
}

// Value implements driver.Valuer.
func (l Location) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("error encoding location: %w", err)
	}

	return string(b), nil
}

// GormDataType stores Location as a JSON column.
func (Location) GormDataType() string {
	return "json"
}

// Scan implements sql.Scanner.
func (l *Location) Scan(src any) error {
	return scanJSON(src, l)
}

// VehicleGroups is the ordered list of vehicle groups a driver is part of.
// It is persisted as a JSON array.
type VehicleGroups []string

// Value implements driver.Valuer. A nil slice is stored as NULL.
func (v VehicleGroups) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}

	b, err := json.Marshal([]string(v))
	if err != nil {
		return nil, fmt.Errorf("error encoding vehicle groups: %w", err)
	}

	return string(b), nil
}

// GormDataType stores VehicleGroups as a JSON column.
func (VehicleGroups) GormDataType() string {
	return "json"
}

// Scan implements sql.Scanner.
func (v *VehicleGroups) Scan(src any) error {
	if src == nil {
		*v = nil
		return nil
	}

	return scanJSON(src, (*[]string)(v))
}

var errUnsupportedJSONSource = errors.New("unsupported source type for JSON column")

func scanJSON(src any, dst any) error {
	var raw []byte
	switch value := src.(type) {
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	case nil:
		return nil
	default:
		return fmt.Errorf("%w: %T", errUnsupportedJSONSource, src)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("error decoding JSON column: %w", err)
	}

	return nil
}
