package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTTokenManager HS256 签名令牌，校验签名算法、签发者和过期时间
type JWTTokenManager struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

func NewJWTTokenManager(secret, issuer string, ttl time.Duration) *JWTTokenManager {
	return &JWTTokenManager{Secret: secret, Issuer: issuer, TTL: ttl, Now: time.Now}
}

func (m *JWTTokenManager) IssueToken(email string) (string, time.Duration, error) {
	now := m.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.Secret))
	if err != nil {
		return "", 0, err
	}
	return signed, m.TTL, nil
}

func (m *JWTTokenManager) ValidateToken(tokenString string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(m.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Email == "" {
		return "", fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}
	return claims.Email, nil
}

const userContextKey = "user"

func SetUserEmail(c *gin.Context, email string) {
	c.Set(userContextKey, email)
}

// GetUserFromContext 返回令牌中的邮箱，未登录时为空
func GetUserFromContext(c *gin.Context) string {
	v, exists := c.Get(userContextKey)
	if !exists {
		return ""
	}
	email, _ := v.(string)
	return email
}
