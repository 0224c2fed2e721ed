package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tasmimahana/cse470/internal/domain/access"
)

var ErrInvalidToken = errors.New("invalid token")

type accessClaims struct {
	User access.Principal `json:"user"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	User         access.Principal `json:"user"`
	RefreshToken string           `json:"refreshToken"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the access and refresh credentials.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *TokenService) AccessTTL() time.Duration  { return s.accessTTL }
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *TokenService) IssueAccess(p access.Principal) (string, error) {
	now := s.now()
	claims := accessClaims{
		User: p,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) IssueRefresh(p access.Principal, refreshToken string) (string, error) {
	now := s.now()
	claims := refreshClaims{
		User:         p,
		RefreshToken: refreshToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) ParseAccess(raw string) (access.Principal, error) {
	var claims accessClaims
	if err := s.parse(raw, &claims); err != nil {
		return access.Principal{}, err
	}
	if claims.User.UserID == "" {
		return access.Principal{}, ErrInvalidToken
	}
	return claims.User, nil
}

// ParseRefresh returns the principal and the opaque refresh token it carries.
func (s *TokenService) ParseRefresh(raw string) (access.Principal, string, error) {
	var claims refreshClaims
	if err := s.parse(raw, &claims); err != nil {
		return access.Principal{}, "", err
	}
	if claims.User.UserID == "" || claims.RefreshToken == "" {
		return access.Principal{}, "", ErrInvalidToken
	}
	return claims.User, claims.RefreshToken, nil
}

func (s *TokenService) parse(raw string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// RandomToken returns n random bytes hex-encoded.
func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
