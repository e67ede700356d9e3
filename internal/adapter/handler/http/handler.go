package http

import (
	"net/http"
	"strconv"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrGoodsNotAvailable:    http.StatusConflict,
	domain.ErrVehicleNotAvailable:  http.StatusConflict,
	domain.ErrOrderTransition:      http.StatusUnprocessableEntity,
	domain.ErrOrderNotCancellable:  http.StatusUnprocessableEntity,
	domain.ErrOrderNotCompleted:    http.StatusUnprocessableEntity,
	domain.ErrRatingExists:         http.StatusConflict,
	domain.ErrRatingWrongUser:      http.StatusBadRequest,
	domain.ErrPaymentNotPending:    http.StatusUnprocessableEntity,
	domain.ErrPaymentProcessed:     http.StatusConflict,
	domain.ErrTransactionProcessed: http.StatusConflict,
	domain.ErrInsufficientBalance:  http.StatusPaymentRequired,
	domain.ErrGatewayUnavailable:   http.StatusBadGateway,
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for a request that failed binding
func handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    domain.ErrorCode(domain.ErrBadRequest),
		Message: domain.ErrBadRequest.Error(),
	})
}

// handleAbort sends an error response and aborts the request
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{
		Code:    domain.ErrorCode(err),
		Message: err.Error(),
	})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.JSON(statusCode, errorResponse{
		Code:    domain.ErrorCode(err),
		Message: err.Error(),
	})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

func paramID(ctx *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, domain.ErrBadRequest
	}
	return id, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, domain.ErrBadRequest
	}
	return d, nil
}
