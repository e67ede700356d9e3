package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPendingLoading OrderStatus = "pending_loading"
	OrderStatusInTransit      OrderStatus = "in_transit"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusDisputed       OrderStatus = "disputed"
)

type OrderPaymentStatus string

const (
	OrderUnpaid      OrderPaymentStatus = "unpaid"
	OrderPartialPaid OrderPaymentStatus = "partial_paid"
	OrderPaid        OrderPaymentStatus = "paid"
	OrderRefunded    OrderPaymentStatus = "refunded"
)

// OrderRole is a party's role within a single order, not the account role.
type OrderRole string

const (
	OrderRoleShipper OrderRole = "shipper"
	OrderRoleDriver  OrderRole = "driver"
	// OrderRoleSystem drives transitions triggered by payment notifications.
	OrderRoleSystem OrderRole = "system"
)

// Order binds a goods posting, a vehicle, a shipper and a driver.
// Creation reserves the goods and the vehicle; terminal resolution
// releases them.
type Order struct {
	ID        uint64
	Number    string
	GoodsID   uint64
	VehicleID uint64
	ShipperID uint64
	DriverID  uint64

	FreightFee  decimal.Decimal
	Deposit     decimal.Decimal
	OtherFees   decimal.Decimal
	TotalAmount decimal.Decimal

	Status        OrderStatus
	PaymentStatus OrderPaymentStatus

	ExpectedLoadingTime  time.Time
	ActualLoadingTime    *time.Time
	ExpectedDeliveryTime time.Time
	ActualDeliveryTime   *time.Time

	ShipperNotes string
	DriverNotes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderStatusLog is an append-only audit record of a status change.
type OrderStatusLog struct {
	ID         uint64
	OrderID    uint64
	FromStatus OrderStatus
	ToStatus   OrderStatus
	OperatorID uint64
	Remark     string
	CreatedAt  time.Time
}

// Rating is one party's score of the counterparty on a completed order.
// At most one rating per (order, from, to).
type Rating struct {
	ID         uint64
	OrderID    uint64
	FromUserID uint64
	ToUserID   uint64
	Rating     decimal.Decimal
	Comment    string
	CreatedAt  time.Time
}

// orderTransitions lists the allowed status edges and the order roles
// permitted to drive each of them. Cancellation from non-terminal states
// is handled separately in CanTransition.
var orderTransitions = map[OrderStatus]map[OrderStatus][]OrderRole{
	OrderStatusPendingPayment: {
		OrderStatusPendingLoading: {OrderRoleShipper, OrderRoleSystem},
	},
	OrderStatusPendingLoading: {
		OrderStatusInTransit: {OrderRoleDriver},
	},
	OrderStatusInTransit: {
		OrderStatusDelivered: {OrderRoleDriver},
		OrderStatusDisputed:  {OrderRoleShipper, OrderRoleDriver},
	},
	OrderStatusDelivered: {
		OrderStatusCompleted: {OrderRoleShipper},
		OrderStatusDisputed:  {OrderRoleShipper, OrderRoleDriver},
	},
	OrderStatusDisputed: {
		OrderStatusCompleted: {OrderRoleShipper},
	},
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransition reports whether role may move an order from one status
// to another. Same-state and backward edges are rejected. Any party may
// cancel a non-terminal order.
func CanTransition(from, to OrderStatus, role OrderRole) bool {
	if to == OrderStatusCancelled {
		return !from.Terminal()
	}
	allowed, ok := orderTransitions[from]
	if !ok {
		return false
	}
	roles, ok := allowed[to]
	if !ok {
		return false
	}
	if role == OrderRoleSystem {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// ApplyTransition moves the order to the new status and stamps the
// actual loading/delivery times. Call only after CanTransition.
func (o *Order) ApplyTransition(to OrderStatus, now time.Time) {
	o.Status = to
	switch to {
	case OrderStatusInTransit:
		if o.ActualLoadingTime == nil {
			t := now
			o.ActualLoadingTime = &t
		}
	case OrderStatusDelivered:
		if o.ActualDeliveryTime == nil {
			t := now
			o.ActualDeliveryTime = &t
		}
	}
}

// GoodsOutcome maps a terminal order status to the final goods status.
func GoodsOutcome(s OrderStatus) GoodsStatus {
	if s == OrderStatusCompleted {
		return GoodsStatusCompleted
	}
	return GoodsStatusCancelled
}

// Role returns userID's role within the order, or false if the user is
// not a party of it.
func (o *Order) Role(userID uint64) (OrderRole, bool) {
	switch userID {
	case o.ShipperID:
		return OrderRoleShipper, true
	case o.DriverID:
		return OrderRoleDriver, true
	}
	return "", false
}

// Counterparty returns the other party of the order for userID.
func (o *Order) Counterparty(userID uint64) (uint64, bool) {
	role, ok := o.Role(userID)
	if !ok {
		return 0, false
	}
	if role == OrderRoleShipper {
		return o.DriverID, true
	}
	return o.ShipperID, true
}
