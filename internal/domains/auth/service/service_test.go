package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/jwt"
	jwtMocks "resort/infras/jwt/mocks"
	"resort/infras/otel/mocks"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/auth/service"
	userMocks "resort/internal/domains/user/mocks"
	userModel "resort/internal/domains/user/model"
	userDto "resort/internal/domains/user/model/dto"
	userServiceMocks "resort/internal/domains/user/service/mocks"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/password"
)

type fixture struct {
	repo  *userMocks.MockUser
	users *userServiceMocks.MockUser
	jwt   *jwtMocks.MockJWT
	cache *cacheMocks.MockRedisCache
	svc   service.Auth
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  userMocks.NewMockUser(ctrl),
		users: userServiceMocks.NewMockUser(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.users, f.jwt, &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

func hashed(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return hash
}

func TestAuthService_Register(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().
		Create(gomock.Any(), userDto.CreateUserRequest{Email: "guest@resort.test", Password: "s3cretpass", FullName: "Guest"}).
		DoAndReturn(func(ctx context.Context, _ userDto.CreateUserRequest) (userDto.UserResponse, error) {
			assert.Equal(t, "guest@resort.test", ctx.Value(constant.ContextKeyUserID))

			return userDto.UserResponse{ID: "u1", Email: "guest@resort.test", Role: constant.RoleUser}, nil
		})

	res, err := f.svc.Register(context.Background(), dto.RegisterRequest{Email: "guest@resort.test", Password: "s3cretpass", FullName: "Guest"})
	require.NoError(t, err)
	assert.Equal(t, constant.RoleUser, res.Role)
}

func TestAuthService_Login(t *testing.T) {
	active := userModel.User{ID: "u1", Email: "staff@resort.test", Password: hashed(t, "password"), Role: constant.RoleAdmin, Active: true}

	tests := []struct {
		name     string
		req      dto.LoginRequest
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "success",
			req:  dto.LoginRequest{Email: "Staff@resort.test", Password: "password"},
			setup: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (userModel.User, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "staff@resort.test", args[userModel.FieldEmail])

						return active, nil
					})
				f.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), "u1", "staff@resort.test", constant.RoleAdmin).
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Increment(gomock.Any(), "version:user").Return(int64(1), nil)
			},
		},
		{
			name: "last login failure does not block",
			req:  dto.LoginRequest{Email: "staff@resort.test", Password: "password"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&jwt.TokenPair{AccessToken: "access"}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@resort.test", Password: "password"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "staff@resort.test", Password: "nope"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "deactivated",
			req:  dto.LoginRequest{Email: "staff@resort.test", Password: "password"},
			setup: func(f fixture) {
				inactive := active
				inactive.Active = false
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Login(context.Background(), tt.req)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "u1", res.User.ID)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().RefreshTokens(gomock.Any(), "refresh").Return(&jwt.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
		require.NoError(t, err)
		assert.Equal(t, "access-2", res.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().RefreshTokens(gomock.Any(), "bad").Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u1")
	current := userModel.User{ID: "u1", Password: hashed(t, "old-password")}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				hash, ok := fields[userModel.FieldPassword].(string)
				require.True(t, ok)
				assert.NoError(t, password.Verify("new-password", hash))

				return nil
			})

		assert.NoError(t, f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"}))
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "guess", NewPassword: "new-password"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestAuthService_Me(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Me(context.Background())
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("signed in", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), "u1").Return(userDto.UserResponse{ID: "u1"}, nil)

		res, err := f.svc.Me(context.WithValue(context.Background(), constant.ContextKeyUserID, "u1"))
		require.NoError(t, err)
		assert.Equal(t, "u1", res.ID)
	})
}
