package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TokenManager 签发与校验访问令牌
type TokenManager interface {
	IssueToken(email string) (token string, expiresIn time.Duration, err error)
	ValidateToken(token string) (email string, err error)
}

const (
	placeholderPrefix = "token"
	placeholderSep    = "::"
)

// PlaceholderTokenManager 演示用令牌 token::<email>::<exp>::<secret>，未签名，不构成安全边界
type PlaceholderTokenManager struct {
	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func NewPlaceholderTokenManager(secret string, ttl time.Duration) *PlaceholderTokenManager {
	return &PlaceholderTokenManager{Secret: secret, TTL: ttl, Now: time.Now}
}

func (m *PlaceholderTokenManager) IssueToken(email string) (string, time.Duration, error) {
	exp := m.Now().Add(m.TTL).Unix()
	token := strings.Join([]string{placeholderPrefix, email, strconv.FormatInt(exp, 10), m.Secret}, placeholderSep)
	return token, m.TTL, nil
}

func (m *PlaceholderTokenManager) ValidateToken(token string) (string, error) {
	parts := strings.Split(token, placeholderSep)
	if len(parts) != 4 {
		return "", fmt.Errorf("%w: expected 4 fields, got %d", ErrInvalidToken, len(parts))
	}
	email, expStr, secret := parts[1], parts[2], parts[3]
	if secret != m.Secret {
		return "", fmt.Errorf("%w: secret mismatch", ErrInvalidToken)
	}
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: bad expiry", ErrInvalidToken)
	}
	if exp < m.Now().Unix() {
		return "", ErrTokenExpired
	}
	return email, nil
}
