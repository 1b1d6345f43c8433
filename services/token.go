package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/config"
)

// TokenClaims is the payload embedded in both credential kinds.
type TokenClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the short-lived access credential and the
// long-lived refresh credential. Persistence of refresh tokens lives in
// AuthService; this type only covers the signing primitive.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}
}

func (s *TokenService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *TokenService) sign(userID uint, email, role string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GenerateAccessToken issues a short-lived, self-verifying credential.
func (s *TokenService) GenerateAccessToken(userID uint, email, role string) (string, error) {
	return s.sign(userID, email, role, s.accessTTL, s.accessSecret)
}

// GenerateRefreshToken issues a long-lived credential. Callers persist it so
// it can be revoked.
func (s *TokenService) GenerateRefreshToken(userID uint, email, role string) (string, error) {
	return s.sign(userID, email, role, s.refreshTTL, s.refreshSecret)
}

func (s *TokenService) verify(tokenString string, secret []byte) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthenticated("INVALID_TOKEN", "Invalid or expired token")
	}
	return claims, nil
}

// VerifyAccessToken validates an access credential and returns its claims.
func (s *TokenService) VerifyAccessToken(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, s.accessSecret)
}

// VerifyRefreshToken validates a refresh credential's signature and expiry.
// The persisted row is checked separately by AuthService.
func (s *TokenService) VerifyRefreshToken(tokenString string) (*TokenClaims, error) {
	return s.verify(tokenString, s.refreshSecret)
}
