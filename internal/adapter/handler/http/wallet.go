package http

import (
	"net/http"
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WalletHandler struct {
	Handler
	service port.Service
}

func NewWalletHandler(service port.Service, logger *zap.Logger) (*WalletHandler, error) {
	return &WalletHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type DepositRequest struct {
	Amount string `json:"amount" binding:"required"`
	Method string `json:"method" binding:"required"`
}

type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type SettleRequest struct {
	Status string `json:"status" binding:"required"`
}

type WalletResponse struct {
	UserID       uint64 `json:"user_id"`
	Balance      string `json:"balance"`
	FrozenAmount string `json:"frozen_amount"`
	Available    string `json:"available"`
}

type WalletTransactionResponse struct {
	ID            uint64    `json:"id"`
	Number        string    `json:"number"`
	Amount        string    `json:"amount"`
	BalanceBefore string    `json:"balance_before"`
	BalanceAfter  string    `json:"balance_after"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Remark        string    `json:"remark"`
	CreatedAt     time.Time `json:"created_at"`
}

func newWalletTransactionResponse(txn *domain.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:            txn.ID,
		Number:        txn.Number,
		Amount:        txn.Amount.String(),
		BalanceBefore: txn.BalanceBefore.String(),
		BalanceAfter:  txn.BalanceAfter.String(),
		Type:          string(txn.Type),
		Status:        string(txn.Status),
		Remark:        txn.Remark,
		CreatedAt:     txn.CreatedAt,
	}
}

func (wh *WalletHandler) GetWallet(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	wallet, err := wh.service.GetWallet(ctx, userID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	available, err := wallet.Available()
	if err != nil {
		wh.handleError(ctx, domain.ErrInternal)
		return
	}

	wh.handleSuccess(ctx, WalletResponse{
		UserID:       wallet.UserID,
		Balance:      wallet.Balance.String(),
		FrozenAmount: wallet.FrozenAmount.String(),
		Available:    available.String(),
	})
}

func (wh *WalletHandler) Deposit(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := DepositRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	txn, err := wh.service.Deposit(ctx, userID, amount, domain.PaymentMethod(req.Method))
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccessWithStatus(ctx, newWalletTransactionResponse(txn), http.StatusCreated)
}

func (wh *WalletHandler) Withdraw(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := WithdrawRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	txn, err := wh.service.Withdraw(ctx, userID, amount)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccessWithStatus(ctx, newWalletTransactionResponse(txn), http.StatusCreated)
}

// SettleTransaction is the unauthenticated gateway callback resolving a
// pending deposit or withdrawal.
func (wh *WalletHandler) SettleTransaction(ctx *gin.Context) {
	number := ctx.Param("number")
	if number == "" {
		wh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	req := SettleRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	var success bool
	switch req.Status {
	case port.NoticeStatusSuccess:
		success = true
	case port.NoticeStatusFail:
		success = false
	default:
		wh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	txn, err := wh.service.SettleWalletTransaction(ctx, number, success)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, newWalletTransactionResponse(txn))
}

type WalletStatisticsResponse struct {
	TotalDeposit  string `json:"total_deposit"`
	TotalWithdraw string `json:"total_withdraw"`
	TotalPayment  string `json:"total_payment"`
	TotalRefund   string `json:"total_refund"`
	PendingCount  uint64 `json:"pending_count"`
}

func (wh *WalletHandler) Statistics(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	stats, err := wh.service.WalletStatistics(ctx, userID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, WalletStatisticsResponse{
		TotalDeposit:  stats.TotalDeposit.String(),
		TotalWithdraw: stats.TotalWithdraw.String(),
		TotalPayment:  stats.TotalPayment.String(),
		TotalRefund:   stats.TotalRefund.String(),
		PendingCount:  stats.PendingCount,
	})
}

func (wh *WalletHandler) ListTransactions(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := wh.service.ListWalletTransactions(ctx, userID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	result := make([]WalletTransactionResponse, 0, len(list))
	for _, t := range list {
		result = append(result, newWalletTransactionResponse(t))
	}

	wh.handleSuccess(ctx, result)
}
