package http

import (
	"time"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/freightmart/freightmart/internal/core/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID          uint64    `json:"id"`
	Phone       string    `json:"phone"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CreditScore string    `json:"credit_score"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Phone:       user.Phone,
		Name:        user.Name,
		Role:        string(user.Role),
		CreditScore: user.CreditScore.String(),
		CreatedAt:   user.CreatedAt,
	}
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := RegisterRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	role := domain.UserRole(req.Role)
	if role != domain.UserRoleShipper && role != domain.UserRoleDriver {
		uh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	user := &domain.User{
		Phone:    req.Phone,
		Password: hashed,
		Name:     req.Name,
		Role:     role,
	}

	if _, err = uh.service.RegisterUser(ctx, user); err != nil {
		uh.handleError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Phone, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := LoginRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Phone, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

func (uh *UserHandler) GetMe(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	user, err := uh.service.GetUser(ctx, userID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, newUserResponse(user))
}
