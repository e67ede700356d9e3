package port

import (
	"context"

	"github.com/freightmart/freightmart/internal/core/domain"
)

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	// CreateCharge registers a pending payment with the gateway.
	CreateCharge(ctx context.Context, payment *domain.Payment) error
	// RequestPayout submits a pending withdrawal for settlement.
	RequestPayout(ctx context.Context, txn *domain.WalletTransaction) error
}
