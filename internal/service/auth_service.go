package service

import (
	"creator_insight_backend/internal/config"
	"creator_insight_backend/internal/util"
	"time"
)

type AuthService struct {
	Tokens util.TokenManager
}

func NewAuthService(tokens util.TokenManager) *AuthService {
	return &AuthService{Tokens: tokens}
}

// NewTokenManager 按配置选择令牌实现
func NewTokenManager(cfg config.AuthConfig) util.TokenManager {
	ttl := time.Duration(cfg.ExpireSeconds) * time.Second
	if cfg.Scheme == config.AuthSchemeJWT {
		return util.NewJWTTokenManager(cfg.Secret, cfg.Issuer, ttl)
	}
	return util.NewPlaceholderTokenManager(cfg.Secret, ttl)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login 接受任意非空的邮箱和密码
func (s *AuthService) Login(req LoginRequest) (*TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, util.ErrMissingCredentials
	}

	token, ttl, err := s.Tokens.IssueToken(req.Email)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}

func (s *AuthService) CurrentUser(token string) (string, error) {
	if token == "" {
		return "", util.ErrInvalidToken
	}
	return s.Tokens.ValidateToken(token)
}
