package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type GoodsStatus string

const (
	GoodsStatusPending   GoodsStatus = "pending"
	GoodsStatusAccepted  GoodsStatus = "accepted"
	GoodsStatusInTransit GoodsStatus = "in_transit"
	GoodsStatusCompleted GoodsStatus = "completed"
	GoodsStatusCancelled GoodsStatus = "cancelled"
)

// Goods is a shipper's freight posting awaiting a vehicle match.
// Only a pending posting can be booked or cancelled; every later
// transition is driven by the order it is bound to.
type Goods struct {
	ID          uint64
	OwnerID     uint64
	Title       string
	Description string
	Weight      decimal.Decimal
	GoodsType   string

	FromLocation  string
	FromLongitude decimal.Decimal
	FromLatitude  decimal.Decimal
	ToLocation    string
	ToLongitude   decimal.Decimal
	ToLatitude    decimal.Decimal

	LoadingTime         time.Time
	ExpectedArrivalTime time.Time
	ExpectedPrice       decimal.Decimal

	Status    GoodsStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
