package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/freightmart/freightmart/internal/core/utils"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// CreatePayment opens a pending payment between the two parties of an
// order. The money only moves when the gateway notification arrives.
func (s *Service) CreatePayment(ctx context.Context, input port.CreatePaymentInput) (*domain.Payment, error) {
	if input.Amount.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrBadRequest
	}

	order, err := s.repo.ReadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if _, ok := order.Role(input.ActorID); !ok {
		return nil, domain.ErrForbidden
	}
	counterparty, _ := order.Counterparty(input.ActorID)
	if input.PayeeID != counterparty {
		return nil, domain.ErrBadRequest
	}

	payment := &domain.Payment{
		OrderID:   order.ID,
		PayerID:   input.ActorID,
		PayeeID:   input.PayeeID,
		Amount:    input.Amount,
		Type:      input.Type,
		Method:    input.Method,
		Status:    domain.PaymentStatusPending,
		Remark:    input.Remark,
		CreatedAt: time.Now(),
	}

	var newPayment *domain.Payment
	for i := 0; i < numberRetries; i++ {
		payment.Number = utils.BusinessNumber(utils.PaymentNumberPrefix, time.Now())
		log := &domain.PaymentLog{
			Type:    domain.PaymentLogCreate,
			Content: fmt.Sprintf("payment %s created", payment.Number),
		}
		newPayment, err = s.repo.CreatePayment(ctx, payment, log)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
	}
	if err != nil {
		s.logger.Error("Create payment", zap.Error(err))
		return nil, err
	}

	// Charge registration is best effort: the payment stays pending until
	// the gateway calls back either way.
	if err := s.gateway.CreateCharge(ctx, newPayment); err != nil {
		s.logger.Warn("Gateway charge request failed",
			zap.String("payment", newPayment.Number), zap.Error(err))
	}

	s.notifier.Notify(newPayment.PayeeID, "payment_created", newPayment.Number)

	return newPayment, nil
}

func (s *Service) GetPayment(ctx context.Context, paymentID uint64, actorID uint64) (*domain.Payment, error) {
	payment, err := s.repo.ReadPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.PayerID != actorID && payment.PayeeID != actorID {
		return nil, domain.ErrForbidden
	}
	return payment, nil
}

func (s *Service) ListPaymentsByUser(ctx context.Context, userID uint64) ([]*domain.Payment, error) {
	return s.repo.ListPaymentsByUser(ctx, userID)
}

// NotifyPayment applies a gateway callback. Redelivery of a notification
// already applied is a no-op; a terminal payment rejects any other
// transaction id.
func (s *Service) NotifyPayment(ctx context.Context, paymentID uint64,
	notice port.PaymentNotice) (*domain.Payment, error) {
	var applied bool
	payment, err := s.repo.UpdatePayment(ctx, paymentID,
		func(p *domain.Payment, o *domain.Order) (*port.PaymentEffects, error) {
			if p.Status.Terminal() {
				if p.TransactionID == notice.TransactionID {
					return nil, nil
				}
				return nil, domain.ErrPaymentProcessed
			}
			applied = true

			effects := &port.PaymentEffects{
				Log: &domain.PaymentLog{
					Type: domain.PaymentLogNotify,
					Content: fmt.Sprintf("notification for transaction %s: %s",
						notice.TransactionID, notice.Status),
					Data: notice.Raw,
				},
			}

			switch notice.Status {
			case port.NoticeStatusSuccess:
				now := time.Now()
				p.Status = domain.PaymentStatusSuccess
				p.TransactionID = notice.TransactionID
				p.TransactionData = notice.Raw
				p.PaidAt = &now

				switch p.Type {
				case domain.PaymentTypeDeposit:
					o.PaymentStatus = domain.OrderPartialPaid
					if o.Status == domain.OrderStatusPendingPayment {
						from := o.Status
						o.ApplyTransition(domain.OrderStatusPendingLoading, now)
						effects.OrderLog = &domain.OrderStatusLog{
							FromStatus: from,
							ToStatus:   domain.OrderStatusPendingLoading,
							Remark:     "deposit paid",
						}
					}
				case domain.PaymentTypeBalance, domain.PaymentTypeFull:
					o.PaymentStatus = domain.OrderPaid
				}
			case port.NoticeStatusFail:
				p.Status = domain.PaymentStatusFailed
				p.TransactionID = notice.TransactionID
				p.TransactionData = notice.Raw
			default:
				return nil, domain.ErrBadRequest
			}

			return effects, nil
		})
	if err != nil {
		return nil, err
	}

	// a redelivered confirmation changes nothing and must not notify again
	if applied && payment.Status == domain.PaymentStatusSuccess {
		s.notifier.Notify(payment.PayerID, "payment_succeeded", payment.Number)
		s.notifier.Notify(payment.PayeeID, "payment_succeeded", payment.Number)
	}

	return payment, nil
}

func (s *Service) CancelPayment(ctx context.Context, paymentID uint64, actorID uint64) (*domain.Payment, error) {
	return s.repo.UpdatePayment(ctx, paymentID,
		func(p *domain.Payment, o *domain.Order) (*port.PaymentEffects, error) {
			if p.PayerID != actorID {
				return nil, domain.ErrForbidden
			}
			if p.Status != domain.PaymentStatusPending {
				return nil, domain.ErrPaymentNotPending
			}

			p.Status = domain.PaymentStatusCancelled

			return &port.PaymentEffects{
				Log: &domain.PaymentLog{
					Type:    domain.PaymentLogUpdate,
					Content: fmt.Sprintf("payment %s cancelled", p.Number),
				},
			}, nil
		})
}
