package services

import (
	"strings"

	"pawsitter/internal/core/domain"
	"pawsitter/internal/pkg/jwt"
)

const bearerPrefix = "Bearer "

// IdentityService turns a presented Authorization header into a
// resolved principal. Every protected operation passes through here.
type IdentityService struct {
	codec *jwt.Codec
}

// NewIdentityService creates a new identity service
func NewIdentityService(codec *jwt.Codec) *IdentityService {
	return &IdentityService{codec: codec}
}

// Resolve verifies the bearer token in an Authorization header value
// and returns the principal it encodes. A missing header or a prefix
// other than "Bearer " fails before any token parsing is attempted.
// The role set is taken from the token as issued; no store lookup
// happens here.
func (s *IdentityService) Resolve(authorization string) (*domain.Principal, error) {
	if authorization == "" || !strings.HasPrefix(authorization, bearerPrefix) {
		return nil, domain.ErrUnauthorized
	}

	claims, err := s.codec.VerifyAccess(strings.TrimPrefix(authorization, bearerPrefix))
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return &domain.Principal{
		UserID: claims.UserID,
		Email:  claims.Subject,
		Roles:  claims.Roles,
	}, nil
}
