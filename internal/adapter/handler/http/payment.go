package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type CreatePaymentRequest struct {
	OrderID uint64 `json:"order_id" binding:"required"`
	PayeeID uint64 `json:"payee_id" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Method  string `json:"method" binding:"required"`
	Remark  string `json:"remark"`
}

// NotifyPaymentRequest is the gateway's asynchronous confirmation. Raw
// is stored verbatim for reconciliation.
type NotifyPaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

type PaymentResponse struct {
	ID      uint64 `json:"id"`
	OrderID uint64 `json:"order_id"`
	Number  string `json:"number"`
	PayerID uint64 `json:"payer_id"`
	PayeeID uint64 `json:"payee_id"`

	Amount string `json:"amount"`
	Type   string `json:"type"`
	Method string `json:"method"`
	Status string `json:"status"`

	TransactionID string     `json:"transaction_id,omitempty"`
	Remark        string     `json:"remark"`
	CreatedAt     time.Time  `json:"created_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

func newPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Number:        payment.Number,
		PayerID:       payment.PayerID,
		PayeeID:       payment.PayeeID,
		Amount:        payment.Amount.String(),
		Type:          string(payment.Type),
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		Remark:        payment.Remark,
		CreatedAt:     payment.CreatedAt,
		PaidAt:        payment.PaidAt,
	}
}

func (ph *PaymentHandler) CreatePayment(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := CreatePaymentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	payment, err := ph.service.CreatePayment(ctx, port.CreatePaymentInput{
		OrderID: req.OrderID,
		ActorID: userID,
		PayeeID: req.PayeeID,
		Amount:  amount,
		Type:    domain.PaymentType(req.Type),
		Method:  domain.PaymentMethod(req.Method),
		Remark:  req.Remark,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPaymentResponse(payment), http.StatusCreated)
}

func (ph *PaymentHandler) GetPayment(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	paymentID, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	payment, err := ph.service.GetPayment(ctx, paymentID, userID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

func (ph *PaymentHandler) ListMyPayments(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := ph.service.ListPaymentsByUser(ctx, userID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		result = append(result, newPaymentResponse(p))
	}

	ph.handleSuccess(ctx, result)
}

// NotifyPayment is the unauthenticated gateway callback. It must answer
// 200 on repeated deliveries of the same confirmation.
func (ph *PaymentHandler) NotifyPayment(ctx *gin.Context) {
	paymentID, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	raw, err := ctx.GetRawData()
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	req := NotifyPaymentRequest{}
	if err := json.Unmarshal(raw, &req); err != nil || req.TransactionID == "" || req.Status == "" {
		handleValidationError(ctx, err)
		return
	}

	payment, err := ph.service.NotifyPayment(ctx, paymentID, port.PaymentNotice{
		TransactionID: req.TransactionID,
		Status:        req.Status,
		Raw:           raw,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

func (ph *PaymentHandler) CancelPayment(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	paymentID, err := paramID(ctx, "id")
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	payment, err := ph.service.CancelPayment(ctx, paymentID, userID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}
