package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// Wallet holds a user's balance and the amount reserved by withdrawals
// awaiting settlement. Available funds are balance - frozen and must
// never go negative.
type Wallet struct {
	ID           uint64
	UserID       uint64
	Balance      decimal.Decimal
	FrozenAmount decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Available returns the spendable part of the balance.
func (w *Wallet) Available() (decimal.Decimal, error) {
	return w.Balance.Sub(w.FrozenAmount)
}

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdraw   TransactionType = "withdraw"
	TransactionPayment    TransactionType = "payment"
	TransactionRefund     TransactionType = "refund"
	TransactionAdjustment TransactionType = "adjustment"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSuccess   TransactionStatus = "success"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// WalletStatistics sums the user's successful ledger entries per type
// and counts the ones still awaiting settlement.
type WalletStatistics struct {
	TotalDeposit  decimal.Decimal
	TotalWithdraw decimal.Decimal
	TotalPayment  decimal.Decimal
	TotalRefund   decimal.Decimal
	PendingCount  uint64
}

// WalletTransaction is an append-only ledger entry. The balance fields
// are snapshots taken when the entry is created: for a pending entry
// BalanceAfter is the balance expected after settlement, not the
// committed one.
type WalletTransaction struct {
	ID            uint64
	WalletID      uint64
	Number        string
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Type          TransactionType
	Status        TransactionStatus

	RelatedOrderID   *uint64
	RelatedPaymentID *uint64

	Remark    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
