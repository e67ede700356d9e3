package service

import (
	"context"

	"github.com/freightmart/freightmart/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateGoods(ctx context.Context, goods *domain.Goods) (*domain.Goods, error) {
	goods.Status = domain.GoodsStatusPending

	newGoods, err := s.repo.CreateGoods(ctx, goods)
	if err != nil {
		s.logger.Error("Create goods", zap.Error(err))
		return nil, err
	}
	return newGoods, nil
}

func (s *Service) GetGoods(ctx context.Context, goodsID uint64) (*domain.Goods, error) {
	return s.repo.ReadGoods(ctx, goodsID)
}

func (s *Service) ListOpenGoods(ctx context.Context) ([]*domain.Goods, error) {
	return s.repo.ListGoodsByStatus(ctx, domain.GoodsStatusPending)
}

func (s *Service) ListGoodsByOwner(ctx context.Context, ownerID uint64, status domain.GoodsStatus) ([]*domain.Goods, error) {
	return s.repo.ListGoodsByOwner(ctx, ownerID, status)
}

// CancelGoods withdraws a posting before any order claims it.
func (s *Service) CancelGoods(ctx context.Context, goodsID uint64, actorID uint64) (*domain.Goods, error) {
	goods, err := s.repo.ReadGoods(ctx, goodsID)
	if err != nil {
		return nil, err
	}

	if goods.OwnerID != actorID {
		return nil, domain.ErrForbidden
	}
	if goods.Status != domain.GoodsStatusPending {
		return nil, domain.ErrGoodsNotAvailable
	}

	err = s.repo.UpdateGoodsStatus(ctx, goodsID, domain.GoodsStatusPending, domain.GoodsStatusCancelled)
	if err != nil {
		return nil, err
	}

	goods.Status = domain.GoodsStatusCancelled
	return goods, nil
}
