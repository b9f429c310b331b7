package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Masa berlaku token akses, mengikuti kontrak lama: 7 hari sejak terbit.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken melebur tanda tangan salah, payload diubah, dan exp lewat
// jadi satu kategori; caller memang tidak boleh bisa membedakannya.
var ErrInvalidToken = errors.New("invalid or expired token")

// AccessClaims adalah isi token akses.
type AccessClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService menandatangani dan memverifikasi token akses HS256.
// Secret di-inject sekali saat startup dan tidak pernah dirotasi runtime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue menerbitkan token berisi user_id dengan exp = sekarang + 7 hari.
func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := AccessClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify memeriksa tanda tangan dan expiry, lalu mengembalikan claims.
func (s *TokenService) Verify(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
