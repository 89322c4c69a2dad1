// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortColumn is a column the driver list can be ordered by.
type SortColumn string

const (
	SortByDriverName    SortColumn = "driver_name"
	SortByFleetID       SortColumn = "fleet_id"
	SortByLocation      SortColumn = "location"
	SortByVehicleGroups SortColumn = "vehicle_groups"
)

// SortColumns lists every accepted SortColumn in declaration order.
var SortColumns = []SortColumn{
	SortByDriverName,
	SortByFleetID,
	SortByLocation,
	SortByVehicleGroups,
}

// SortOrder is the normalized (upper case) sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// SortOrders lists every accepted SortOrder.
var SortOrders = []SortOrder{SortAsc, SortDesc}

// ListParams holds the validated ordering of a driver list request.
type ListParams struct {
	SortBy    SortColumn
	SortOrder SortOrder
}

// DefaultListParams orders drivers by name ascending.
func DefaultListParams() ListParams {
	return ListParams{SortBy: SortByDriverName, SortOrder: SortAsc}
}
