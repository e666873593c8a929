package auth

import (
	"context"
	"net/http"
	"strings"

	"safiridocs/internal/entities"
	"safiridocs/pkg/logger"
)

type contextKey struct{}

var userContextKey = contextKey{}

// Middleware проверяет Bearer-токен и кладет актуального пользователя в
// контекст запроса. Пользователь перечитывается из базы на каждый запрос:
// токен мог пережить бан аккаунта.
func Middleware(log handlerLogger, tokens TokenVerifier, users UserProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				unauthorized(w)
				return
			}

			userEntity, err := users.GetUser(r.Context(), claims.UserID)
			if err != nil {
				log.With(
					logger.NewField("user_id", claims.UserID),
					logger.NewField("error", err),
				).Warn("token valid but user lookup failed")
				unauthorized(w)
				return
			}

			if !userEntity.IsActive() {
				http.Error(w, `{"error":"account is suspended"}`, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, userEntity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext достает аутентифицированного пользователя, положенного
// Middleware.
func UserFromContext(ctx context.Context) (*entities.User, bool) {
	userEntity, ok := ctx.Value(userContextKey).(*entities.User)
	return userEntity, ok
}

// ContextWithUser кладет пользователя в контекст так же, как Middleware.
func ContextWithUser(ctx context.Context, userEntity *entities.User) context.Context {
	return context.WithValue(ctx, userContextKey, userEntity)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
}
