package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vort-x/platform/middleware"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
	"github.com/vort-x/platform/services"
	"github.com/vort-x/platform/storage"
)

var (
	testHost     = models.User{ID: 11, Name: "HostUser"}
	testStranger = models.User{ID: 99, Name: "Stranger"}
)

// injectUser stands in for the session middleware so each test controls
// the acting user directly.
func injectUser(user models.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUser(r.Context(), user)))
		})
	}
}

type tournamentRouterFixture struct {
	service services.TournamentService
	user    models.User
	router  *chi.Mux
}

func newTournamentRouter(t *testing.T) *tournamentRouterFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ids := repositories.NewIDGenerator()
	communities := services.NewCommunityService(repositories.NewMemoryCommunityRepository(ids), ids)
	service := services.NewTournamentService(
		repositories.NewMemoryTournamentRepository(ids),
		communities,
		services.NewMockPaymentProcessor(time.Millisecond, logger),
		storage.NewMemoryUploader("http://localhost:8080/media"),
		ids,
		logger,
	)
	handler := NewTournamentHandler(service)

	f := &tournamentRouterFixture{service: service, user: testHost}
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			injectUser(f.user)(next).ServeHTTP(w, r)
		})
	})
	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", handler.ListHandler)
		r.Post("/", handler.CreateHandler)
		r.Route("/{tournamentID}", func(r chi.Router) {
			r.Get("/", handler.GetByIDHandler)
			r.Delete("/", handler.DeleteHandler)
			r.Post("/registrations", handler.RegisterHandler)
			r.Post("/feedback", handler.FeedbackHandler)
			r.Post("/kick-requests", handler.CreateKickRequestHandler)
			r.Patch("/kick-requests/{requestID}", handler.ResolveKickRequestHandler)
			r.Put("/media", handler.UpdateMediaHandler)
			r.Post("/announcements", handler.AnnouncementHandler)
			r.Post("/credentials", handler.CredentialsHandler)
			r.Post("/notices", handler.NoticeHandler)
		})
	})
	f.router = router
	return f
}

func (f *tournamentRouterFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *tournamentRouterFixture) createTournament(t *testing.T, name string) int {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/tournaments", map[string]any{
		"name":             name,
		"game":             "Valorant",
		"max_participants": 16,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Tournament models.Tournament `json:"tournament"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Tournament.ID
}

func TestCreateAndGetTournament(t *testing.T) {
	f := newTournamentRouter(t)
	id := f.createTournament(t, "Summer Skirmish")

	rec := f.do(t, http.MethodGet, fmt.Sprintf("/tournaments/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Tournament models.Tournament `json:"tournament"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Summer Skirmish", envelope.Tournament.Name)
	assert.Equal(t, models.StatusOpen, envelope.Tournament.Status)
	assert.Equal(t, testHost.ID, envelope.Tournament.HostID)
}

func TestCreateTournamentRejectsUnknownFields(t *testing.T) {
	f := newTournamentRouter(t)

	rec := f.do(t, http.MethodPost, "/tournaments", map[string]any{
		"name":             "Cup",
		"game":             "Valorant",
		"max_participants": 16,
		"bogus":            true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown key")
}

func TestGetTournamentNotFound(t *testing.T) {
	f := newTournamentRouter(t)

	rec := f.do(t, http.MethodGet, "/tournaments/424242", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/tournaments/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTournamentsWithFilters(t *testing.T) {
	f := newTournamentRouter(t)
	f.createTournament(t, "Valorant Open")

	rec := f.do(t, http.MethodGet, "/tournaments?game=Valorant", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Tournaments []models.Tournament `json:"tournaments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Tournaments, 1)

	rec = f.do(t, http.MethodGet, "/tournaments?game=Chess", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	envelope.Tournaments = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Tournaments)

	rec = f.do(t, http.MethodGet, "/tournaments?status=Cancelled", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpoint(t *testing.T) {
	f := newTournamentRouter(t)
	id := f.createTournament(t, "Summer Skirmish")

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/tournaments/%d/registrations", id), map[string]any{
		"team_name":     "The Warlocks",
		"contact_email": "pro@gamer.com",
		"members":       []map[string]any{{"user_id": testHost.ID, "name": testHost.Name}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Registration models.Registration `json:"registration"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "The Warlocks", envelope.Registration.TeamName)
	assert.NotZero(t, envelope.Registration.ID)

	// Missing team name maps to 400.
	rec = f.do(t, http.MethodPost, fmt.Sprintf("/tournaments/%d/registrations", id), map[string]any{
		"contact_email": "pro@gamer.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKickRequestEndpoints(t *testing.T) {
	f := newTournamentRouter(t)
	id := f.createTournament(t, "Summer Skirmish")

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/tournaments/%d/kick-requests", id), map[string]any{
		"player_to_kick": "ToxicPlayer123",
		"reason":         "Abusive language.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		KickRequest models.KickRequest `json:"kick_request"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.KickPending, created.KickRequest.Status)

	rec = f.do(t, http.MethodPatch,
		fmt.Sprintf("/tournaments/%d/kick-requests/%d", id, created.KickRequest.ID),
		map[string]any{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resolved struct {
		KickRequest models.KickRequest `json:"kick_request"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	assert.Equal(t, models.KickApproved, resolved.KickRequest.Status)
	assert.NotNil(t, resolved.KickRequest.ResolvedAt)

	// Re-resolving conflicts.
	rec = f.do(t, http.MethodPatch,
		fmt.Sprintf("/tournaments/%d/kick-requests/%d", id, created.KickRequest.ID),
		map[string]any{"status": "rejected"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHostOnlyEndpointsForbiddenForStranger(t *testing.T) {
	f := newTournamentRouter(t)
	id := f.createTournament(t, "Summer Skirmish")

	f.user = testStranger

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/tournaments/%d/announcements", id), map[string]any{
		"content": "Brackets are live.",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/tournaments/%d", id), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/tournaments/%d/credentials", id), map[string]any{
		"game_id":       "LOBBY-1",
		"game_password": "pw",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAnnouncementEndpoint(t *testing.T) {
	f := newTournamentRouter(t)
	id := f.createTournament(t, "Summer Skirmish")

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/tournaments/%d/announcements", id), map[string]any{
		"content": "Check-in opens at noon.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Announcement models.Announcement `json:"announcement"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Check-in opens at noon.", envelope.Announcement.Content)
	assert.False(t, envelope.Announcement.Timestamp.IsZero())
}

func TestUpdateMediaEndpoint(t *testing.T) {
	f := newTournamentRouter(t)
	id := f.createTournament(t, "Summer Skirmish")

	rec := f.do(t, http.MethodPut, fmt.Sprintf("/tournaments/%d/media", id), map[string]any{
		"logo": "https://cdn.example.com/logo.png",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Tournament models.Tournament `json:"tournament"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Tournament.LogoImage)
	assert.Equal(t, "https://cdn.example.com/logo.png", *envelope.Tournament.LogoImage)
	assert.Nil(t, envelope.Tournament.BannerImage)
}

func TestDeleteTournamentEndpoint(t *testing.T) {
	f := newTournamentRouter(t)
	id := f.createTournament(t, "Summer Skirmish")

	rec := f.do(t, http.MethodDelete, fmt.Sprintf("/tournaments/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/tournaments/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoticeEndpoint(t *testing.T) {
	f := newTournamentRouter(t)
	id := f.createTournament(t, "Summer Skirmish")

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/tournaments/%d/notices", id), map[string]any{
		"notice": "Match delayed by 15 minutes.",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/tournaments/%d/notices", id), map[string]any{
		"notice": "  ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
