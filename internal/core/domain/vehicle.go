package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusInTransit VehicleStatus = "in_transit"
)

// Vehicle can be held by at most one active order at a time: booking
// moves it to in_transit, terminal order resolution returns it to available.
type Vehicle struct {
	ID           uint64
	OwnerID      uint64
	LicensePlate string
	LoadCapacity decimal.Decimal
	Status       VehicleStatus
	CreatedAt    time.Time
}
