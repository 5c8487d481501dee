package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
)

func newSessionFixture(t *testing.T) func(http.Handler) http.Handler {
	t.Helper()
	users := repositories.NewMemoryUserRepository(repositories.NewIDGenerator())
	require.NoError(t, users.Create(context.Background(), &models.User{ID: 1, Name: "YUV-X"}))
	require.NoError(t, users.Create(context.Background(), &models.User{ID: 2, Name: "PixelPioneer"}))
	return Session(users, 1)
}

func echoUserName() (http.Handler, *string) {
	var name string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := UserFromContext(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		name = user.Name
		w.WriteHeader(http.StatusOK)
	})
	return handler, &name
}

func TestSessionFallsBackToDefaultUser(t *testing.T) {
	session := newSessionFixture(t)
	handler, name := echoUserName()

	rec := httptest.NewRecorder()
	session(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "YUV-X", *name)
}

func TestSessionSelectsUserFromHeader(t *testing.T) {
	session := newSessionFixture(t)
	handler, name := echoUserName()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "2")
	rec := httptest.NewRecorder()
	session(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PixelPioneer", *name)
}

func TestSessionRejectsBadHeader(t *testing.T) {
	session := newSessionFixture(t)
	handler, _ := echoUserName()

	for _, raw := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", raw)
		rec := httptest.NewRecorder()
		session(handler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "header %q", raw)
	}
}

func TestSessionRejectsUnknownUser(t *testing.T) {
	session := newSessionFixture(t)
	handler, _ := echoUserName()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "999")
	rec := httptest.NewRecorder()
	session(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
