package models

// DriverInput is the request body accepted by the create and update
// operations. Update overwrites every field, it is not a partial patch.
type DriverInput struct {
	DriverName    string        `json:"driverName" validate:"required,max=255"`
	FleetID       string        `json:"fleetId" validate:"required,max=255"`
	Location      *Location     `json:"location" validate:"omitempty"`
	VehicleGroups VehicleGroups `json:"vehicleGroups"`
}

// ToDriver builds a Driver from the input. DriverID is left zero.
func (in DriverInput) ToDriver() Driver {
	return Driver{
		DriverName:    in.DriverName,
		FleetID:       in.FleetID,
		Location:      in.Location,
		VehicleGroups: in.VehicleGroups,
	}
}
