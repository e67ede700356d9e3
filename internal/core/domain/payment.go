package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeBalance PaymentType = "balance"
	PaymentTypeFull    PaymentType = "full"
	PaymentTypeRefund  PaymentType = "refund"
)

type PaymentMethod string

const (
	PaymentMethodWechat       PaymentMethod = "wechat"
	PaymentMethodAlipay       PaymentMethod = "alipay"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodOther        PaymentMethod = "other"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSuccess   PaymentStatus = "success"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Terminal reports whether the payment reached a final state. A terminal
// payment is never mutated again; repeated gateway notifications against
// it are either no-ops or rejected.
func (s PaymentStatus) Terminal() bool {
	return s != PaymentStatusPending
}

// Payment is created pending and moves to success/failed only through
// the gateway notification callback.
type Payment struct {
	ID      uint64
	OrderID uint64
	Number  string
	PayerID uint64
	PayeeID uint64

	Amount decimal.Decimal
	Type   PaymentType
	Method PaymentMethod
	Status PaymentStatus

	TransactionID   string
	TransactionData []byte

	Remark    string
	CreatedAt time.Time
	PaidAt    *time.Time
}

type PaymentLogType string

const (
	PaymentLogCreate PaymentLogType = "create"
	PaymentLogUpdate PaymentLogType = "update"
	PaymentLogNotify PaymentLogType = "notify"
	PaymentLogRefund PaymentLogType = "refund"
	PaymentLogError  PaymentLogType = "error"
)

// PaymentLog is an append-only audit record per payment.
type PaymentLog struct {
	ID        uint64
	PaymentID uint64
	Type      PaymentLogType
	Content   string
	Data      []byte
	CreatedAt time.Time
}
