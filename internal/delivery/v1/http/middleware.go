package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/DRSN-tech/eshop-backend/internal/auth"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
)

// TokenParser проверяет токен и возвращает его claims.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type ctxKey string

const userIDKey ctxKey = "user_id"

// UserIDFromCtx возвращает идентификатор пользователя, положенный middleware.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// AuthMiddleware закрывает не-публичные маршруты bearer-токеном.
// Действительный токен без административных прав считается отозванным.
type AuthMiddleware struct {
	parser TokenParser
	prefix string
	logger logger.Logger
}

func NewAuthMiddleware(parser TokenParser, prefix string, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{parser: parser, prefix: prefix, logger: logger}
}

func (m *AuthMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.isPublic(r) {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			WriteError(w, e.ErrMissingToken)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			WriteError(w, e.ErrInvalidToken)
			return
		}

		claims, err := m.parser.Parse(parts[1])
		if err != nil {
			m.logger.Debugf("%s %s: %s", r.Method, r.URL.Path, err.Error())
			WriteError(w, err)
			return
		}

		if !claims.IsAdmin {
			m.logger.Debugf("%s %s: non-admin token for user %d", r.Method, r.URL.Path, claims.UserID)
			WriteError(w, e.ErrTokenRevoked)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isPublic разрешает без токена чтение каталога, вход и регистрацию.
func (m *AuthMiddleware) isPublic(r *http.Request) bool {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)

	switch r.Method {
	case http.MethodGet:
		return strings.HasPrefix(path, "/products") || strings.HasPrefix(path, "/categories")
	case http.MethodPost:
		return path == "/users/login" || path == "/users/register"
	default:
		return false
	}
}
