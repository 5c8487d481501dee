package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
)

type contextKey string

const userContextKey contextKey = "user"

// Session resolves the acting user and stores it in the request context.
// There is no authentication: the X-User-ID header selects a seeded user
// and an absent header falls back to the default demo account.
func Session(users repositories.UserRepository, defaultUserID int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := defaultUserID
			if raw := r.Header.Get("X-User-ID"); raw != "" {
				parsed, err := strconv.Atoi(raw)
				if err != nil || parsed <= 0 {
					http.Error(w, "invalid X-User-ID header", http.StatusBadRequest)
					return
				}
				id = parsed
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil {
				http.Error(w, "unknown user", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, *user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the session user placed by Session.
func UserFromContext(ctx context.Context) (models.User, error) {
	user, ok := ctx.Value(userContextKey).(models.User)
	if !ok {
		return models.User{}, errors.New("session user not found in context")
	}
	return user, nil
}

// WithUser injects a session user directly, used by handler tests.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
