package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"psisite/internal/auth"
	apperrors "psisite/internal/errors"
	"psisite/internal/model"
	"psisite/internal/repository"
)

const bcryptCost = 10

// dummyHash is compared against when the username is unknown so both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)

// LoginResult carries the authenticated admin and its tokens.
type LoginResult struct {
	Admin        *model.AdminUser
	AccessToken  string
	RefreshToken string
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken, accessToken string) error
	EnsureAdmin(ctx context.Context, username, password string) (created bool, err error)
}

type authService struct {
	adminRepo  repository.AdminUserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminUserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, logger *zap.Logger) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		logger:     logger,
	}
}

// Login authenticates the admin and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("find admin: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("admin login rejected", zap.String("username", username))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, admin.ID, admin.Username, auth.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	s.logger.Info("admin logged in", zap.Uint("admin_id", admin.ID))
	return &LoginResult{
		Admin:        admin,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken, auth.RefreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	storedID, storedUsername, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}
	if storedID != claims.AdminID || storedUsername != claims.Username {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.AdminID, claims.Username)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes the refresh token and, when given, blacklists the access
// token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken, auth.RefreshToken)
	if err != nil {
		return apperrors.ErrInvalidRefreshToken
	}
	if err := s.tokenStore.DeleteRefreshToken(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}

	if accessToken == "" {
		return nil
	}
	access, err := s.jwtService.ValidateToken(accessToken, auth.AccessToken)
	if err != nil {
		// already unusable
		return nil
	}
	if err := s.tokenStore.BlacklistAccessToken(ctx, access.ID, s.jwtService.RemainingTTL(access)); err != nil {
		return fmt.Errorf("blacklist access token: %w", err)
	}
	return nil
}

// EnsureAdmin creates the admin account when it does not exist yet. An empty
// password skips creation.
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := s.adminRepo.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("check admin existence: %w", err)
	}
	if password == "" {
		s.logger.Warn("admin account missing and ADMIN_PASSWORD unset", zap.String("username", username))
		return false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if err := s.adminRepo.Create(ctx, &model.AdminUser{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info("admin account created", zap.String("username", username))
	return true, nil
}
