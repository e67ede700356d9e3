package port

import (
	"context"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/govalues/decimal"
)

// UpdateOrderFn mutates the order under a row lock and returns the
// status log entry to append, or nil when nothing changed.
type UpdateOrderFn func(*domain.Order) (*domain.OrderStatusLog, error)

// PaymentEffects is what a payment mutation appends alongside the
// updated rows. A nil effects result means nothing changed and nothing
// is written.
type PaymentEffects struct {
	Log      *domain.PaymentLog
	OrderLog *domain.OrderStatusLog
}

// UpdatePaymentFn mutates the payment and, when needed, its order under
// row locks, returning the log entries to append.
type UpdatePaymentFn func(*domain.Payment, *domain.Order) (*PaymentEffects, error)

// UpdateWalletFn mutates the wallet under a row lock and returns the
// ledger entry to append.
type UpdateWalletFn func(*domain.Wallet) (*domain.WalletTransaction, error)

// SettleWalletFn mutates a wallet and one of its pending ledger entries
// under row locks when a settlement callback arrives.
type SettleWalletFn func(*domain.Wallet, *domain.WalletTransaction) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*domain.User, error)

	// Goods
	CreateGoods(ctx context.Context, goods *domain.Goods) (*domain.Goods, error)
	ReadGoods(ctx context.Context, goodsID uint64) (*domain.Goods, error)
	// ListGoodsByOwner filters by status when status is non-empty.
	ListGoodsByOwner(ctx context.Context, ownerID uint64, status domain.GoodsStatus) ([]*domain.Goods, error)
	ListGoodsByStatus(ctx context.Context, status domain.GoodsStatus) ([]*domain.Goods, error)
	// UpdateGoodsStatus is a compare-and-swap: it fails with
	// ErrGoodsNotAvailable when the posting is no longer in from.
	UpdateGoodsStatus(ctx context.Context, goodsID uint64, from, to domain.GoodsStatus) error

	// Vehicle
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	ReadVehicle(ctx context.Context, vehicleID uint64) (*domain.Vehicle, error)
	ListVehiclesByOwner(ctx context.Context, ownerID uint64) ([]*domain.Vehicle, error)

	// Order. CreateOrderBooking inserts the order and its first status
	// log and reserves the goods (pending->accepted) and the vehicle
	// (available->in_transit) in one transaction.
	CreateOrderBooking(ctx context.Context, order *domain.Order, log *domain.OrderStatusLog) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	// ListOrdersByUser returns orders where the user is either party,
	// filtered by status when status is non-empty.
	ListOrdersByUser(ctx context.Context, userID uint64, status domain.OrderStatus) ([]*domain.Order, error)
	// UpdateOrder applies fn under a row lock, appends the returned log
	// and, when the order reaches a terminal status, releases the goods
	// and the vehicle in the same transaction.
	UpdateOrder(ctx context.Context, orderID uint64, fn UpdateOrderFn) (*domain.Order, error)
	// CreateRating inserts the rating and recomputes the rated user's
	// credit score in one transaction, returning the new score.
	CreateRating(ctx context.Context, rating *domain.Rating) (decimal.Decimal, error)

	// Payment
	CreatePayment(ctx context.Context, payment *domain.Payment, log *domain.PaymentLog) (*domain.Payment, error)
	ReadPayment(ctx context.Context, paymentID uint64) (*domain.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID uint64) ([]*domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID uint64, fn UpdatePaymentFn) (*domain.Payment, error)

	// Wallet
	GetOrCreateWallet(ctx context.Context, userID uint64) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, userID uint64, fn UpdateWalletFn) (*domain.WalletTransaction, error)
	SettleWalletTransaction(ctx context.Context, number string, fn SettleWalletFn) (*domain.WalletTransaction, error)
	ListWalletTransactions(ctx context.Context, userID uint64) ([]*domain.WalletTransaction, error)
	// WalletStatistics aggregates the user's settled ledger entries by
	// type, plus the count of entries still pending.
	WalletStatistics(ctx context.Context, userID uint64) (*domain.WalletStatistics, error)
}
