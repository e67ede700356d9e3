package service_test

import (
	"context"
	"testing"

	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/freightmart/freightmart/internal/core/port/mock"
	"github.com/freightmart/freightmart/internal/core/service"
	"github.com/freightmart/freightmart/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testEnv struct {
	repo     *mock.MockRepository
	token    *mock.MockTokenService
	gateway  *mock.MockPaymentGateway
	notifier *mock.MockNotifier
	svc      *service.Service
}

func newTestEnv(t *testing.T, mockCtrl *gomock.Controller) *testEnv {
	t.Helper()

	env := &testEnv{
		repo:     mock.NewMockRepository(mockCtrl),
		token:    mock.NewMockTokenService(mockCtrl),
		gateway:  mock.NewMockPaymentGateway(mockCtrl),
		notifier: mock.NewMockNotifier(mockCtrl),
	}

	svc, err := service.NewService(env.repo, env.token, env.gateway, env.notifier, zap.NewNop())
	assert.NoError(t, err)
	env.svc = svc

	return env
}

func TestService_RegisterUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Phone:    "13800000001",
		Password: hashedPass,
		Role:     domain.UserRoleShipper,
	}

	tests := []struct {
		name      string
		user      domain.User
		mock      func(env *testEnv)
		expError  error
		expResult *domain.User
	}{
		{
			name: "Register good",
			user: domain.User{Phone: user.Phone, Password: "test", Role: domain.UserRoleShipper},
			mock: func(env *testEnv) {
				env.repo.EXPECT().GetUserByPhone(gomock.Any(), user.Phone).Return(nil, domain.ErrDataNotFound)
				env.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			expError:  nil,
			expResult: &user,
		},
		{
			name: "Register already exists",
			user: domain.User{Phone: user.Phone, Password: "test", Role: domain.UserRoleShipper},
			mock: func(env *testEnv) {
				env.repo.EXPECT().GetUserByPhone(gomock.Any(), user.Phone).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env := newTestEnv(t, mockCtrl)
			test.mock(env)

			result, err := env.svc.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Phone:    "13800000001",
		Password: hashedPass,
		Role:     domain.UserRoleDriver,
	}

	tests := []struct {
		name     string
		phone    string
		password string
		mock     func(env *testEnv)
		expError error
		expToken string
	}{
		{
			name:     "Login good",
			phone:    user.Phone,
			password: "test",
			mock: func(env *testEnv) {
				env.repo.EXPECT().GetUserByPhone(gomock.Any(), user.Phone).Return(&user, nil)
				env.token.EXPECT().CreateToken(&user).Return("token", nil)
			},
			expError: nil,
			expToken: "token",
		},
		{
			name:     "Login wrong password",
			phone:    user.Phone,
			password: "wrong",
			mock: func(env *testEnv) {
				env.repo.EXPECT().GetUserByPhone(gomock.Any(), user.Phone).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login unknown phone",
			phone:    "13800000002",
			password: "test",
			mock: func(env *testEnv) {
				env.repo.EXPECT().GetUserByPhone(gomock.Any(), "13800000002").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env := newTestEnv(t, mockCtrl)
			test.mock(env)

			token, err := env.svc.LoginUser(context.Background(), test.phone, test.password)

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expToken, token)
		})
	}
}
