package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/utils"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

func (s *Service) GetWallet(ctx context.Context, userID uint64) (*domain.Wallet, error) {
	return s.repo.GetOrCreateWallet(ctx, userID)
}

// Deposit opens a pending top-up. The balance is untouched until the
// gateway settles the transaction.
func (s *Service) Deposit(ctx context.Context, userID uint64, amount decimal.Decimal,
	method domain.PaymentMethod) (*domain.WalletTransaction, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrBadRequest
	}

	var txn *domain.WalletTransaction
	var err error
	for i := 0; i < numberRetries; i++ {
		number := utils.BusinessNumber(utils.DepositNumberPrefix, time.Now())
		txn, err = s.repo.UpdateWallet(ctx, userID,
			func(w *domain.Wallet) (*domain.WalletTransaction, error) {
				after, err := w.Balance.Add(amount)
				if err != nil {
					return nil, fmt.Errorf("math error:%w", err)
				}
				return &domain.WalletTransaction{
					WalletID:      w.ID,
					Number:        number,
					Amount:        amount,
					BalanceBefore: w.Balance,
					BalanceAfter:  after,
					Type:          domain.TransactionDeposit,
					Status:        domain.TransactionStatusPending,
					Remark:        string(method),
				}, nil
			})
		if err == nil || !errors.Is(err, domain.ErrConflictingData) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(userID, "wallet_deposit_created", txn.Number)

	return txn, nil
}

// Withdraw reserves the amount by freezing it; the balance itself moves
// at settlement.
func (s *Service) Withdraw(ctx context.Context, userID uint64, amount decimal.Decimal) (*domain.WalletTransaction, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrBadRequest
	}

	var txn *domain.WalletTransaction
	var err error
	for i := 0; i < numberRetries; i++ {
		number := utils.BusinessNumber(utils.WithdrawNumberPrefix, time.Now())
		txn, err = s.repo.UpdateWallet(ctx, userID,
			func(w *domain.Wallet) (*domain.WalletTransaction, error) {
				available, err := w.Available()
				if err != nil {
					return nil, fmt.Errorf("math error:%w", err)
				}
				if amount.Cmp(available) > 0 {
					return nil, domain.ErrInsufficientBalance
				}

				frozen, err := w.FrozenAmount.Add(amount)
				if err != nil {
					return nil, fmt.Errorf("math error:%w", err)
				}
				after, err := w.Balance.Sub(amount)
				if err != nil {
					return nil, fmt.Errorf("math error:%w", err)
				}
				w.FrozenAmount = frozen

				return &domain.WalletTransaction{
					WalletID:      w.ID,
					Number:        number,
					Amount:        amount,
					BalanceBefore: w.Balance,
					BalanceAfter:  after,
					Type:          domain.TransactionWithdraw,
					Status:        domain.TransactionStatusPending,
					Remark:        "withdrawal",
				}, nil
			})
		if err == nil || !errors.Is(err, domain.ErrConflictingData) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	if err := s.gateway.RequestPayout(ctx, txn); err != nil {
		s.logger.Warn("Gateway payout request failed",
			zap.String("transaction", txn.Number), zap.Error(err))
	}

	return txn, nil
}

// SettleWalletTransaction resolves a pending deposit or withdrawal when
// the gateway calls back. Deposits credit the balance on success;
// withdrawals consume the frozen reservation on success and release it
// on failure.
func (s *Service) SettleWalletTransaction(ctx context.Context, number string,
	success bool) (*domain.WalletTransaction, error) {
	var userID uint64
	txn, err := s.repo.SettleWalletTransaction(ctx, number,
		func(w *domain.Wallet, t *domain.WalletTransaction) error {
			userID = w.UserID
			if t.Status != domain.TransactionStatusPending {
				return domain.ErrTransactionProcessed
			}

			switch t.Type {
			case domain.TransactionDeposit:
				if !success {
					t.Status = domain.TransactionStatusFailed
					return nil
				}
				balance, err := w.Balance.Add(t.Amount)
				if err != nil {
					return fmt.Errorf("math error:%w", err)
				}
				w.Balance = balance
				t.Status = domain.TransactionStatusSuccess
			case domain.TransactionWithdraw:
				frozen, err := w.FrozenAmount.Sub(t.Amount)
				if err != nil {
					return fmt.Errorf("math error:%w", err)
				}
				w.FrozenAmount = frozen
				if !success {
					t.Status = domain.TransactionStatusFailed
					return nil
				}
				balance, err := w.Balance.Sub(t.Amount)
				if err != nil {
					return fmt.Errorf("math error:%w", err)
				}
				w.Balance = balance
				t.Status = domain.TransactionStatusSuccess
			default:
				return domain.ErrBadRequest
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(userID, "wallet_transaction_settled", txn.Number)

	return txn, nil
}

func (s *Service) ListWalletTransactions(ctx context.Context, userID uint64) ([]*domain.WalletTransaction, error) {
	return s.repo.ListWalletTransactions(ctx, userID)
}

func (s *Service) WalletStatistics(ctx context.Context, userID uint64) (*domain.WalletStatistics, error) {
	return s.repo.WalletStatistics(ctx, userID)
}
