package service

import (
	"context"
	"fmt"

	"dsa_tracker/internal/common"
	"dsa_tracker/internal/common/security"
)

// AuthService issues tokens for the single owner of the dashboard.
type AuthService struct {
	ownerName    string
	passwordHash string
	issuer       *security.TokenIssuer
}

func NewAuthService(ownerName, passwordHash string, issuer *security.TokenIssuer) *AuthService {
	return &AuthService{ownerName: ownerName, passwordHash: passwordHash, issuer: issuer}
}

type LoginRequest struct {
	Password string `json:"password"`
}

type AuthResponse struct {
	Owner string `json:"owner"`
	Token string `json:"token"`
}

// Enabled reports whether an owner password is configured.
func (s *AuthService) Enabled() bool {
	return s.passwordHash != ""
}

func (s *AuthService) Login(_ context.Context, req LoginRequest) (*AuthResponse, error) {
	if !s.Enabled() {
		return nil, common.Errorf("owner login is not configured: %w", common.ErrServiceUnavailable)
	}
	if req.Password == "" {
		return nil, common.Errorf("password is required: %w", common.ErrBadRequest)
	}
	if !security.CheckPasswordHash(req.Password, s.passwordHash) {
		return nil, common.ErrUnauthorized
	}

	token, err := s.issuer.GenerateToken(s.ownerName, security.RoleOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Owner: s.ownerName, Token: token}, nil
}
