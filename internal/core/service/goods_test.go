package service_test

import (
	"context"
	"testing"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestService_CreateGoods(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	env := newTestEnv(t, mockCtrl)

	env.repo.EXPECT().CreateGoods(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, goods *domain.Goods) (*domain.Goods, error) {
			assert.Equal(t, domain.GoodsStatusPending, goods.Status)
			goods.ID = 10
			return goods, nil
		})

	// posting always opens pending, whatever the client sent
	goods, err := env.svc.CreateGoods(context.Background(), &domain.Goods{
		OwnerID: shipperID,
		Title:   "bitumen 30t",
		Status:  domain.GoodsStatusCompleted,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.GoodsStatusPending, goods.Status)
}

func TestService_ListGoodsByOwner(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	env := newTestEnv(t, mockCtrl)

	// the status filter travels down to the repository untouched
	env.repo.EXPECT().ListGoodsByOwner(gomock.Any(), shipperID, domain.GoodsStatusPending).
		Return([]*domain.Goods{goodsFixture()}, nil)

	list, err := env.svc.ListGoodsByOwner(context.Background(), shipperID, domain.GoodsStatusPending)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestService_CancelGoods(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name     string
		actorID  uint64
		status   domain.GoodsStatus
		mock     func(env *testEnv)
		expError error
	}{
		{
			name:    "owner cancels pending posting",
			actorID: shipperID,
			status:  domain.GoodsStatusPending,
			mock: func(env *testEnv) {
				env.repo.EXPECT().UpdateGoodsStatus(gomock.Any(), uint64(10),
					domain.GoodsStatusPending, domain.GoodsStatusCancelled).Return(nil)
			},
		},
		{
			name:     "only the owner may cancel",
			actorID:  strangerID,
			status:   domain.GoodsStatusPending,
			expError: domain.ErrForbidden,
		},
		{
			name:     "booked posting cannot be cancelled",
			actorID:  shipperID,
			status:   domain.GoodsStatusAccepted,
			expError: domain.ErrGoodsNotAvailable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env := newTestEnv(t, mockCtrl)

			goods := goodsFixture()
			goods.Status = test.status
			env.repo.EXPECT().ReadGoods(gomock.Any(), uint64(10)).Return(goods, nil)
			if test.mock != nil {
				test.mock(env)
			}

			result, err := env.svc.CancelGoods(context.Background(), 10, test.actorID)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.GoodsStatusCancelled, result.Status)
		})
	}
}
