package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the registered claims plus the user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"uid"`
}

// TokenManager issues and verifies HS256 tokens.
type TokenManager struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a TokenManager with the given signing key and
// token lifetimes.
func NewTokenManager(secretKey []byte, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken issues a short-lived token for API requests.
func (m *TokenManager) GenerateAccessToken(userID uint64) (string, error) {
	return m.generate(userID, m.accessTTL)
}

// GenerateRefreshToken issues a long-lived token that is also persisted on
// the user row so it can be revoked.
func (m *TokenManager) GenerateRefreshToken(userID uint64) (string, error) {
	return m.generate(userID, m.refreshTTL)
}

func (m *TokenManager) generate(userID uint64, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(m.secretKey)
}

// UserIDFromToken verifies the token signature and expiry and returns the
// embedded user ID.
func (m *TokenManager) UserIDFromToken(tokenString string) (uint64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil {
		return 0, err
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
