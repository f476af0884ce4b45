package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/giftflow-app/backend/internal/models"
)

// TokenMinter produces a new opaque token for a user. Resolution always goes
// through the server-side token table, so the minted value only needs to be
// unique per user (mock mode) or per mint (JWT mode).
type TokenMinter interface {
	Mint(user models.User) (string, error)
}

// MockMinter mints the deterministic mocktoken_<userId> value the frontend
// fixtures rely on.
type MockMinter struct{}

func (MockMinter) Mint(user models.User) (string, error) {
	return "mocktoken_" + user.ID, nil
}

// Claims is the JWT payload used outside mock mode.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// JWTMinter signs HS256 tokens. A uuid jti keeps independently minted tokens
// distinct even within the same second.
type JWTMinter struct {
	Secret []byte
	TTL    time.Duration
}

func (m JWTMinter) Mint(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
}

// ParseToken validates a JWT minted by JWTMinter and returns its claims.
func ParseToken(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := token.Claims.(*Claims); ok && token.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
