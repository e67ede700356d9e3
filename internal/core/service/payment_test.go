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

func paymentInput() port.CreatePaymentInput {
	return port.CreatePaymentInput{
		OrderID: 100,
		ActorID: shipperID,
		PayeeID: driverID,
		Amount:  decimal.MustParse("200"),
		Type:    domain.PaymentTypeDeposit,
		Method:  domain.PaymentMethodWechat,
	}
}

func paymentOrder() *domain.Order {
	return &domain.Order{
		ID: 100, Number: "ORDX", ShipperID: shipperID, DriverID: driverID,
		Status:        domain.OrderStatusPendingPayment,
		PaymentStatus: domain.OrderUnpaid,
	}
}

func TestService_CreatePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("payment created pending", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadOrder(gomock.Any(), uint64(100)).Return(paymentOrder(), nil)
		env.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, payment *domain.Payment, log *domain.PaymentLog) (*domain.Payment, error) {
				assert.Equal(t, domain.PaymentStatusPending, payment.Status)
				assert.Equal(t, shipperID, payment.PayerID)
				assert.Equal(t, driverID, payment.PayeeID)
				assert.NotEmpty(t, payment.Number)
				assert.Equal(t, domain.PaymentLogCreate, log.Type)
				payment.ID = 7
				return payment, nil
			})
		env.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(nil)
		env.notifier.EXPECT().Notify(driverID, "payment_created", gomock.Any())

		payment, err := env.svc.CreatePayment(context.Background(), paymentInput())
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	})

	t.Run("gateway outage is not fatal", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadOrder(gomock.Any(), uint64(100)).Return(paymentOrder(), nil)
		env.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, payment *domain.Payment, log *domain.PaymentLog) (*domain.Payment, error) {
				return payment, nil
			})
		env.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(domain.ErrGatewayUnavailable)
		env.notifier.EXPECT().Notify(driverID, "payment_created", gomock.Any())

		_, err := env.svc.CreatePayment(context.Background(), paymentInput())
		assert.NoError(t, err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		in := paymentInput()
		in.Amount = decimal.Zero
		_, err := env.svc.CreatePayment(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("actor not a party", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadOrder(gomock.Any(), uint64(100)).Return(paymentOrder(), nil)

		in := paymentInput()
		in.ActorID = strangerID
		_, err := env.svc.CreatePayment(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("payee must be the counterparty", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		env.repo.EXPECT().ReadOrder(gomock.Any(), uint64(100)).Return(paymentOrder(), nil)

		in := paymentInput()
		in.PayeeID = shipperID
		_, err := env.svc.CreatePayment(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func mockUpdatePayment(env *testEnv, payment *domain.Payment, order *domain.Order) {
	env.repo.EXPECT().UpdatePayment(gomock.Any(), payment.ID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, paymentID uint64, fn port.UpdatePaymentFn) (*domain.Payment, error) {
			if _, err := fn(payment, order); err != nil {
				return nil, err
			}
			return payment, nil
		})
}

func TestService_NotifyPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pendingPayment := func(pType domain.PaymentType) *domain.Payment {
		return &domain.Payment{
			ID: 7, OrderID: 100, Number: "PAYX",
			PayerID: shipperID, PayeeID: driverID,
			Amount: decimal.MustParse("200"),
			Type:   pType,
			Status: domain.PaymentStatusPending,
		}
	}

	notice := port.PaymentNotice{
		TransactionID: "tx-1",
		Status:        port.NoticeStatusSuccess,
		Raw:           []byte(`{"transaction_id":"tx-1","status":"SUCCESS"}`),
	}

	t.Run("deposit success unlocks loading", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pendingPayment(domain.PaymentTypeDeposit)
		order := paymentOrder()
		mockUpdatePayment(env, payment, order)
		env.notifier.EXPECT().Notify(shipperID, "payment_succeeded", "PAYX")
		env.notifier.EXPECT().Notify(driverID, "payment_succeeded", "PAYX")

		result, err := env.svc.NotifyPayment(context.Background(), payment.ID, notice)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusSuccess, result.Status)
		assert.Equal(t, "tx-1", result.TransactionID)
		assert.NotNil(t, result.PaidAt)
		assert.Equal(t, domain.OrderPartialPaid, order.PaymentStatus)
		assert.Equal(t, domain.OrderStatusPendingLoading, order.Status)
	})

	t.Run("full payment marks order paid", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pendingPayment(domain.PaymentTypeFull)
		order := paymentOrder()
		order.Status = domain.OrderStatusDelivered
		mockUpdatePayment(env, payment, order)
		env.notifier.EXPECT().Notify(gomock.Any(), "payment_succeeded", "PAYX").Times(2)

		_, err := env.svc.NotifyPayment(context.Background(), payment.ID, notice)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderPaid, order.PaymentStatus)
		assert.Equal(t, domain.OrderStatusDelivered, order.Status)
	})

	t.Run("failure keeps order untouched", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pendingPayment(domain.PaymentTypeDeposit)
		order := paymentOrder()
		mockUpdatePayment(env, payment, order)

		failNotice := notice
		failNotice.Status = port.NoticeStatusFail
		result, err := env.svc.NotifyPayment(context.Background(), payment.ID, failNotice)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, result.Status)
		assert.Equal(t, domain.OrderUnpaid, order.PaymentStatus)
		assert.Equal(t, domain.OrderStatusPendingPayment, order.Status)
	})

	t.Run("redelivery of the same confirmation is a no-op", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pendingPayment(domain.PaymentTypeDeposit)
		payment.Status = domain.PaymentStatusSuccess
		payment.TransactionID = "tx-1"
		order := paymentOrder()
		order.Status = domain.OrderStatusPendingLoading
		order.PaymentStatus = domain.OrderPartialPaid
		mockUpdatePayment(env, payment, order)
		// no Notify expectations: the parties were told on first delivery

		result, err := env.svc.NotifyPayment(context.Background(), payment.ID, notice)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusSuccess, result.Status)
		assert.Equal(t, domain.OrderPartialPaid, order.PaymentStatus)
	})

	t.Run("conflicting transaction id is rejected", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pendingPayment(domain.PaymentTypeDeposit)
		payment.Status = domain.PaymentStatusSuccess
		payment.TransactionID = "tx-other"
		mockUpdatePayment(env, payment, paymentOrder())

		_, err := env.svc.NotifyPayment(context.Background(), payment.ID, notice)
		assert.ErrorIs(t, err, domain.ErrPaymentProcessed)
	})

	t.Run("unknown notice status", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pendingPayment(domain.PaymentTypeDeposit)
		mockUpdatePayment(env, payment, paymentOrder())

		badNotice := notice
		badNotice.Status = "MAYBE"
		_, err := env.svc.NotifyPayment(context.Background(), payment.ID, badNotice)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestService_CancelPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pending := func() *domain.Payment {
		return &domain.Payment{
			ID: 7, Number: "PAYX", PayerID: shipperID, PayeeID: driverID,
			Status: domain.PaymentStatusPending,
		}
	}

	t.Run("payer cancels pending payment", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pending()
		mockUpdatePayment(env, payment, paymentOrder())

		result, err := env.svc.CancelPayment(context.Background(), payment.ID, shipperID)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCancelled, result.Status)
	})

	t.Run("payee cannot cancel", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pending()
		mockUpdatePayment(env, payment, paymentOrder())

		_, err := env.svc.CancelPayment(context.Background(), payment.ID, driverID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("terminal payment cannot be cancelled", func(t *testing.T) {
		env := newTestEnv(t, mockCtrl)

		payment := pending()
		payment.Status = domain.PaymentStatusSuccess
		mockUpdatePayment(env, payment, paymentOrder())

		_, err := env.svc.CancelPayment(context.Background(), payment.ID, shipperID)
		assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
	})
}
