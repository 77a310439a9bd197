// Package auth реализует выпуск и проверку JWT-токенов и хэширование паролей.
package auth

import (
	"errors"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/cfg"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/golang-jwt/jwt/v5"
)

// Claims — полезная нагрузка токена доступа.
type Claims struct {
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWTManager выпускает и разбирает HMAC-подписанные токены.
type JWTManager struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTManager(cfg *cfg.JWTCfg) *JWTManager {
	return &JWTManager{
		secret:   []byte(cfg.Secret),
		tokenTTL: cfg.TokenTTL,
	}
}

// Issue выпускает подписанный токен с идентификатором пользователя и флагом администратора.
func (m *JWTManager) Issue(userID int64, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", e.Wrap("failed to sign token", err)
	}

	return signed, nil
}

// Parse проверяет подпись и срок действия токена и возвращает его claims.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, e.ErrTokenExpired
		}
		return nil, e.ErrInvalidToken
	}

	if !token.Valid {
		return nil, e.ErrInvalidToken
	}

	return claims, nil
}
