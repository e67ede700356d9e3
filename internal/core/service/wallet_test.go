package service_test

import (
	"context"
	"testing"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

const walletUserID = uint64(7)

func walletFixture(balance, frozen string) *domain.Wallet {
	return &domain.Wallet{
		ID:           3,
		UserID:       walletUserID,
		Balance:      decimal.MustParse(balance),
		FrozenAmount: decimal.MustParse(frozen),
	}
}

func mockUpdateWallet(env *testEnv, wallet *domain.Wallet) {
	env.repo.EXPECT().UpdateWallet(gomock.Any(), walletUserID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, userID uint64, fn port.UpdateWalletFn) (*domain.WalletTransaction, error) {
			return fn(wallet)
		})
}

func TestService_Deposit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("pending deposit leaves balance untouched", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "0")
		mockUpdateWallet(env, wallet)
		env.notifier.EXPECT().Notify(walletUserID, "wallet_deposit_created", gomock.Any())

		txn, err := env.svc.Deposit(context.Background(), walletUserID,
			decimal.MustParse("50"), domain.PaymentMethodAlipay)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPending, txn.Status)
		assert.Equal(t, domain.TransactionDeposit, txn.Type)
		assert.Equal(t, decimal.MustParse("100"), txn.BalanceBefore)
		assert.Equal(t, decimal.MustParse("150"), txn.BalanceAfter)
		assert.Equal(t, decimal.MustParse("100"), wallet.Balance)
		assert.NotEmpty(t, txn.Number)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		_, err := env.svc.Deposit(context.Background(), walletUserID,
			decimal.Zero, domain.PaymentMethodAlipay)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestService_Withdraw(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("withdrawal freezes the amount", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "20")
		mockUpdateWallet(env, wallet)
		env.gateway.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).Return(nil)

		txn, err := env.svc.Withdraw(context.Background(), walletUserID, decimal.MustParse("50"))
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPending, txn.Status)
		assert.Equal(t, domain.TransactionWithdraw, txn.Type)
		assert.Equal(t, decimal.MustParse("70"), wallet.FrozenAmount)
		assert.Equal(t, decimal.MustParse("100"), wallet.Balance)
	})

	t.Run("overdraft rejected against available balance", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "30")
		mockUpdateWallet(env, wallet)

		_, err := env.svc.Withdraw(context.Background(), walletUserID, decimal.MustParse("80"))
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.Equal(t, decimal.MustParse("30"), wallet.FrozenAmount)
	})

	t.Run("payout outage is not fatal", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "0")
		mockUpdateWallet(env, wallet)
		env.gateway.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).Return(domain.ErrGatewayUnavailable)

		_, err := env.svc.Withdraw(context.Background(), walletUserID, decimal.MustParse("10"))
		assert.NoError(t, err)
	})
}

func mockSettle(env *testEnv, wallet *domain.Wallet, txn *domain.WalletTransaction) {
	env.repo.EXPECT().SettleWalletTransaction(gomock.Any(), txn.Number, gomock.Any()).DoAndReturn(
		func(ctx context.Context, number string, fn port.SettleWalletFn) (*domain.WalletTransaction, error) {
			if err := fn(wallet, txn); err != nil {
				return nil, err
			}
			return txn, nil
		})
}

func TestService_SettleWalletTransaction(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pendingTxn := func(tType domain.TransactionType, amount string) *domain.WalletTransaction {
		return &domain.WalletTransaction{
			ID: 11, WalletID: 3, Number: "DEPX",
			Amount: decimal.MustParse(amount),
			Type:   tType,
			Status: domain.TransactionStatusPending,
		}
	}

	t.Run("deposit success credits balance", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "0")
		txn := pendingTxn(domain.TransactionDeposit, "50")
		mockSettle(env, wallet, txn)
		env.notifier.EXPECT().Notify(walletUserID, "wallet_transaction_settled", "DEPX")

		result, err := env.svc.SettleWalletTransaction(context.Background(), "DEPX", true)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusSuccess, result.Status)
		assert.Equal(t, decimal.MustParse("150"), wallet.Balance)
	})

	t.Run("deposit failure leaves balance untouched", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "0")
		txn := pendingTxn(domain.TransactionDeposit, "50")
		mockSettle(env, wallet, txn)
		env.notifier.EXPECT().Notify(walletUserID, "wallet_transaction_settled", "DEPX")

		result, err := env.svc.SettleWalletTransaction(context.Background(), "DEPX", false)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusFailed, result.Status)
		assert.Equal(t, decimal.MustParse("100"), wallet.Balance)
	})

	t.Run("withdrawal success consumes the frozen amount", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "50")
		txn := pendingTxn(domain.TransactionWithdraw, "50")
		mockSettle(env, wallet, txn)
		env.notifier.EXPECT().Notify(walletUserID, "wallet_transaction_settled", "DEPX")

		result, err := env.svc.SettleWalletTransaction(context.Background(), "DEPX", true)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusSuccess, result.Status)
		assert.Equal(t, decimal.MustParse("50"), wallet.Balance)
		assert.Equal(t, decimal.Zero, wallet.FrozenAmount)
	})

	t.Run("withdrawal failure releases the reservation", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "50")
		txn := pendingTxn(domain.TransactionWithdraw, "50")
		mockSettle(env, wallet, txn)
		env.notifier.EXPECT().Notify(walletUserID, "wallet_transaction_settled", "DEPX")

		result, err := env.svc.SettleWalletTransaction(context.Background(), "DEPX", false)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusFailed, result.Status)
		assert.Equal(t, decimal.MustParse("100"), wallet.Balance)
		assert.Equal(t, decimal.Zero, wallet.FrozenAmount)
	})

	t.Run("already settled", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		wallet := walletFixture("100", "0")
		txn := pendingTxn(domain.TransactionDeposit, "50")
		txn.Status = domain.TransactionStatusSuccess
		mockSettle(env, wallet, txn)

		_, err := env.svc.SettleWalletTransaction(context.Background(), "DEPX", true)
		assert.ErrorIs(t, err, domain.ErrTransactionProcessed)
	})
}

func TestService_WalletStatistics(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	env := newTestEnv(t, mockCtrl)

	env.repo.EXPECT().WalletStatistics(gomock.Any(), walletUserID).Return(&domain.WalletStatistics{
		TotalDeposit:  decimal.MustParse("150"),
		TotalWithdraw: decimal.MustParse("70"),
		PendingCount:  2,
	}, nil)

	stats, err := env.svc.WalletStatistics(context.Background(), walletUserID)
	assert.NoError(t, err)
	assert.Equal(t, decimal.MustParse("150"), stats.TotalDeposit)
	assert.Equal(t, decimal.MustParse("70"), stats.TotalWithdraw)
	assert.Equal(t, uint64(2), stats.PendingCount)
}
