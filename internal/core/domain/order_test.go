package domain_test

import (
	"testing"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		role    domain.OrderRole
		allowed bool
	}{
		{"shipper confirms deposit", domain.OrderStatusPendingPayment, domain.OrderStatusPendingLoading, domain.OrderRoleShipper, true},
		{"system confirms deposit", domain.OrderStatusPendingPayment, domain.OrderStatusPendingLoading, domain.OrderRoleSystem, true},
		{"driver cannot confirm deposit", domain.OrderStatusPendingPayment, domain.OrderStatusPendingLoading, domain.OrderRoleDriver, false},

		{"driver starts transit", domain.OrderStatusPendingLoading, domain.OrderStatusInTransit, domain.OrderRoleDriver, true},
		{"shipper cannot start transit", domain.OrderStatusPendingLoading, domain.OrderStatusInTransit, domain.OrderRoleShipper, false},

		{"driver delivers", domain.OrderStatusInTransit, domain.OrderStatusDelivered, domain.OrderRoleDriver, true},
		{"shipper cannot deliver", domain.OrderStatusInTransit, domain.OrderStatusDelivered, domain.OrderRoleShipper, false},

		{"shipper completes", domain.OrderStatusDelivered, domain.OrderStatusCompleted, domain.OrderRoleShipper, true},
		{"driver cannot complete", domain.OrderStatusDelivered, domain.OrderStatusCompleted, domain.OrderRoleDriver, false},

		{"shipper disputes delivery", domain.OrderStatusDelivered, domain.OrderStatusDisputed, domain.OrderRoleShipper, true},
		{"driver disputes transit", domain.OrderStatusInTransit, domain.OrderStatusDisputed, domain.OrderRoleDriver, true},
		{"dispute resolves to completed", domain.OrderStatusDisputed, domain.OrderStatusCompleted, domain.OrderRoleShipper, true},

		{"no skipping to delivered", domain.OrderStatusPendingLoading, domain.OrderStatusDelivered, domain.OrderRoleDriver, false},
		{"no skipping to completed", domain.OrderStatusInTransit, domain.OrderStatusCompleted, domain.OrderRoleShipper, false},
		{"no backward move", domain.OrderStatusInTransit, domain.OrderStatusPendingLoading, domain.OrderRoleDriver, false},
		{"no same-state move", domain.OrderStatusInTransit, domain.OrderStatusInTransit, domain.OrderRoleDriver, false},

		{"cancel while pending payment", domain.OrderStatusPendingPayment, domain.OrderStatusCancelled, domain.OrderRoleShipper, true},
		{"cancel while in transit", domain.OrderStatusInTransit, domain.OrderStatusCancelled, domain.OrderRoleDriver, true},
		{"no cancel after completed", domain.OrderStatusCompleted, domain.OrderStatusCancelled, domain.OrderRoleShipper, false},
		{"no cancel after cancelled", domain.OrderStatusCancelled, domain.OrderStatusCancelled, domain.OrderRoleShipper, false},

		{"no exit from completed", domain.OrderStatusCompleted, domain.OrderStatusInTransit, domain.OrderRoleDriver, false},
		{"no exit from cancelled", domain.OrderStatusCancelled, domain.OrderStatusPendingLoading, domain.OrderRoleShipper, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.allowed, domain.CanTransition(test.from, test.to, test.role))
		})
	}
}

func TestApplyTransitionStampsTimes(t *testing.T) {
	now := time.Now()

	order := domain.Order{Status: domain.OrderStatusPendingLoading}
	order.ApplyTransition(domain.OrderStatusInTransit, now)
	assert.Equal(t, domain.OrderStatusInTransit, order.Status)
	if assert.NotNil(t, order.ActualLoadingTime) {
		assert.Equal(t, now, *order.ActualLoadingTime)
	}
	assert.Nil(t, order.ActualDeliveryTime)

	later := now.Add(time.Hour)
	order.ApplyTransition(domain.OrderStatusDelivered, later)
	assert.Equal(t, now, *order.ActualLoadingTime)
	if assert.NotNil(t, order.ActualDeliveryTime) {
		assert.Equal(t, later, *order.ActualDeliveryTime)
	}
}

func TestGoodsOutcome(t *testing.T) {
	assert.Equal(t, domain.GoodsStatusCompleted, domain.GoodsOutcome(domain.OrderStatusCompleted))
	assert.Equal(t, domain.GoodsStatusCancelled, domain.GoodsOutcome(domain.OrderStatusCancelled))
}

func TestOrderParties(t *testing.T) {
	order := domain.Order{ShipperID: 1, DriverID: 2}

	role, ok := order.Role(1)
	assert.True(t, ok)
	assert.Equal(t, domain.OrderRoleShipper, role)

	role, ok = order.Role(2)
	assert.True(t, ok)
	assert.Equal(t, domain.OrderRoleDriver, role)

	_, ok = order.Role(3)
	assert.False(t, ok)

	other, ok := order.Counterparty(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(2), other)

	other, ok = order.Counterparty(2)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), other)

	_, ok = order.Counterparty(3)
	assert.False(t, ok)
}
