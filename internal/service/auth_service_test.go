package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"psisite/internal/auth"
	apperrors "psisite/internal/errors"
	"psisite/internal/model"
)

// MockAdminUserRepository is a mock implementation of AdminUserRepository.
type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminUserRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, adminID uint, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, adminID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func hashedAdmin(t *testing.T, password string) *model.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.AdminUser{ID: 1, Username: "admin", PasswordHash: string(hash)}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockAdminUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "s3cret",
			setupMock: func(r *MockAdminUserRepository, s *MockTokenStore) {
				r.On("FindByUsername", mock.Anything, "admin").Return(hashedAdmin(t, "s3cret"), nil)
				s.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"), uint(1), "admin", auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "guess",
			setupMock: func(r *MockAdminUserRepository, s *MockTokenStore) {
				r.On("FindByUsername", mock.Anything, "admin").Return(hashedAdmin(t, "s3cret"), nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "s3cret",
			setupMock: func(r *MockAdminUserRepository, s *MockTokenStore) {
				r.On("FindByUsername", mock.Anything, "ghost").Return(nil, fmt.Errorf("admin ghost: %w", apperrors.ErrNotFound))
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAdminUserRepository)
			store := new(MockTokenStore)
			tt.setupMock(repo, store)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(repo, jwtService, store, zap.NewNop())

			result, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "admin", result.Admin.Username)
				claims, err := jwtService.ValidateToken(result.AccessToken, auth.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, uint(1), claims.AdminID)
				_, err = jwtService.ValidateToken(result.RefreshToken, auth.RefreshToken)
				assert.NoError(t, err)
			}

			repo.AssertExpectations(t)
			store.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refresh, err := jwtService.GenerateRefreshToken(1, "admin")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		store := new(MockTokenStore)
		store.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "admin", nil)
		svc := NewAuthService(new(MockAdminUserRepository), jwtService, store, zap.NewNop())

		access, err := svc.RefreshToken(context.Background(), refresh)
		require.NoError(t, err)
		_, err = jwtService.ValidateToken(access, auth.AccessToken)
		assert.NoError(t, err)
	})

	t.Run("revoked", func(t *testing.T) {
		store := new(MockTokenStore)
		store.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", auth.ErrRefreshTokenNotFound)
		svc := NewAuthService(new(MockAdminUserRepository), jwtService, store, zap.NewNop())

		_, err := svc.RefreshToken(context.Background(), refresh)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("access token rejected", func(t *testing.T) {
		access, err := jwtService.GenerateAccessToken(1, "admin")
		require.NoError(t, err)
		svc := NewAuthService(new(MockAdminUserRepository), jwtService, new(MockTokenStore), zap.NewNop())

		_, err = svc.RefreshToken(context.Background(), access)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refresh, err := jwtService.GenerateRefreshToken(1, "admin")
	require.NoError(t, err)
	access, err := jwtService.GenerateAccessToken(1, "admin")
	require.NoError(t, err)
	accessClaims, err := jwtService.ValidateToken(access, auth.AccessToken)
	require.NoError(t, err)

	store := new(MockTokenStore)
	store.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)
	store.On("BlacklistAccessToken", mock.Anything, accessClaims.ID, mock.AnythingOfType("time.Duration")).Return(nil)
	svc := NewAuthService(new(MockAdminUserRepository), jwtService, store, zap.NewNop())

	require.NoError(t, svc.Logout(context.Background(), refresh, access))
	store.AssertExpectations(t)

	assert.ErrorIs(t, svc.Logout(context.Background(), "garbage", ""), apperrors.ErrInvalidRefreshToken)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	t.Run("creates missing admin with hashed password", func(t *testing.T) {
		repo := new(MockAdminUserRepository)
		repo.On("FindByUsername", mock.Anything, "admin").Return(nil, apperrors.ErrNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.AdminUser) bool {
			return u.Username == "admin" &&
				u.PasswordHash != "s3cret" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
		})).Return(nil)
		svc := NewAuthService(repo, auth.NewJWTService("x"), new(MockTokenStore), zap.NewNop())

		created, err := svc.EnsureAdmin(context.Background(), "admin", "s3cret")
		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("keeps existing admin", func(t *testing.T) {
		repo := new(MockAdminUserRepository)
		repo.On("FindByUsername", mock.Anything, "admin").Return(&model.AdminUser{ID: 1, Username: "admin"}, nil)
		svc := NewAuthService(repo, auth.NewJWTService("x"), new(MockTokenStore), zap.NewNop())

		created, err := svc.EnsureAdmin(context.Background(), "admin", "s3cret")
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("skips without password", func(t *testing.T) {
		repo := new(MockAdminUserRepository)
		repo.On("FindByUsername", mock.Anything, "admin").Return(nil, apperrors.ErrNotFound)
		svc := NewAuthService(repo, auth.NewJWTService("x"), new(MockTokenStore), zap.NewNop())

		created, err := svc.EnsureAdmin(context.Background(), "admin", "")
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("database failure", func(t *testing.T) {
		repo := new(MockAdminUserRepository)
		repo.On("FindByUsername", mock.Anything, "admin").Return(nil, errors.New("connection refused"))
		svc := NewAuthService(repo, auth.NewJWTService("x"), new(MockTokenStore), zap.NewNop())

		_, err := svc.EnsureAdmin(context.Background(), "admin", "s3cret")
		assert.Error(t, err)
	})
}
