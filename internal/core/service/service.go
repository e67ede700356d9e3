package service

import (
	"context"
	"errors"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/freightmart/freightmart/internal/core/utils"
	"go.uber.org/zap"
)

// numberRetries bounds regeneration attempts when a generated business
// number hits the unique constraint.
const numberRetries = 3

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	gateway      port.PaymentGateway
	notifier     port.Notifier
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	gateway port.PaymentGateway, notifier port.Notifier, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		gateway:      gateway,
		notifier:     notifier,
		logger:       logger,
	}, nil
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByPhone(ctx, user.Phone)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, phone string, password string) (string, error) {
	user, err := s.repo.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) GetUser(ctx context.Context, userID uint64) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}
