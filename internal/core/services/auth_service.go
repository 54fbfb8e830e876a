package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"pawsitter/internal/adapters/persistence/models"
	"pawsitter/internal/adapters/persistence/repositories"
	"pawsitter/internal/core/domain"
	"pawsitter/internal/pkg/jwt"
	"pawsitter/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles registration, login, token refresh and profile lookup
type AuthService struct {
	userRepo repositories.UserRepository
	codec    *jwt.Codec
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, codec *jwt.Codec) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a login or refresh result
type AuthResponse struct {
	ID           uint     `json:"id"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

// Register registers a new user with the OWNER role
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.UserResponse, error) {
	// 1. Check if email already registered (case-insensitive)
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	// 2. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create user
	user := &models.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		City:         input.City,
		Country:      input.Country,
		Roles:        []string{domain.RoleOwner},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Email)

	return user.ToResponse(), nil
}

// Login authenticates a user and issues a token pair
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	// 1. Find user by email
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Issue tokens
	resp, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return resp, nil
}

// Refresh redeems a refresh token for a fresh token pair. The new
// access token carries the user's current role set, so this is the
// point where a role grant or revocation takes effect.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	// 1. Validate refresh token JWT
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	// 2. Get user and make sure the token subject still matches
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || !strings.EqualFold(user.Email, claims.Subject) {
		return nil, domain.ErrUserNotFound
	}

	// 3. Issue new tokens
	resp, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Token refreshed for user: %s", user.Email)

	return resp, nil
}

// Profile returns the stored profile for an authenticated user
func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return user.ToResponse(), nil
}

// issueTokens generates an access and refresh token pair
func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := s.codec.IssueAccess(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.codec.IssueRefresh(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:           user.ID,
		Email:        user.Email,
		Roles:        user.Roles,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.codec.AccessTTLSeconds(),
	}, nil
}
