package port

import (
	"context"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/govalues/decimal"
)

type CreateOrderInput struct {
	GoodsID              uint64
	VehicleID            uint64
	ActorID              uint64
	FreightFee           decimal.Decimal
	Deposit              decimal.Decimal
	OtherFees            decimal.Decimal
	ExpectedLoadingTime  time.Time
	ExpectedDeliveryTime time.Time
	ShipperNotes         string
	DriverNotes          string
}

type RateOrderInput struct {
	OrderID  uint64
	ActorID  uint64
	ToUserID uint64
	Rating   decimal.Decimal
	Comment  string
}

type CreatePaymentInput struct {
	OrderID uint64
	ActorID uint64
	PayeeID uint64
	Amount  decimal.Decimal
	Type    domain.PaymentType
	Method  domain.PaymentMethod
	Remark  string
}

// PaymentNotice is the payload delivered by the gateway callback.
type PaymentNotice struct {
	TransactionID string
	Status        string
	Raw           []byte
}

const (
	NoticeStatusSuccess = "SUCCESS"
	NoticeStatusFail    = "FAIL"
)

type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, phone string, password string) (string, error)
	GetUser(ctx context.Context, userID uint64) (*domain.User, error)

	CreateGoods(ctx context.Context, goods *domain.Goods) (*domain.Goods, error)
	GetGoods(ctx context.Context, goodsID uint64) (*domain.Goods, error)
	ListOpenGoods(ctx context.Context) ([]*domain.Goods, error)
	ListGoodsByOwner(ctx context.Context, ownerID uint64, status domain.GoodsStatus) ([]*domain.Goods, error)
	CancelGoods(ctx context.Context, goodsID uint64, actorID uint64) (*domain.Goods, error)

	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, vehicleID uint64) (*domain.Vehicle, error)
	ListVehiclesByOwner(ctx context.Context, ownerID uint64) ([]*domain.Vehicle, error)

	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64, actorID uint64) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64, status domain.OrderStatus) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, actorID uint64,
		to domain.OrderStatus, remark string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID uint64, actorID uint64, remark string) (*domain.Order, error)
	RateOrder(ctx context.Context, input RateOrderInput) (*domain.Rating, error)

	CreatePayment(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
	GetPayment(ctx context.Context, paymentID uint64, actorID uint64) (*domain.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID uint64) ([]*domain.Payment, error)
	NotifyPayment(ctx context.Context, paymentID uint64, notice PaymentNotice) (*domain.Payment, error)
	CancelPayment(ctx context.Context, paymentID uint64, actorID uint64) (*domain.Payment, error)

	GetWallet(ctx context.Context, userID uint64) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID uint64, amount decimal.Decimal,
		method domain.PaymentMethod) (*domain.WalletTransaction, error)
	Withdraw(ctx context.Context, userID uint64, amount decimal.Decimal) (*domain.WalletTransaction, error)
	SettleWalletTransaction(ctx context.Context, number string, success bool) (*domain.WalletTransaction, error)
	ListWalletTransactions(ctx context.Context, userID uint64) ([]*domain.WalletTransaction, error)
	WalletStatistics(ctx context.Context, userID uint64) (*domain.WalletStatistics, error)
}
