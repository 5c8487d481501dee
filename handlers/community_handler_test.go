package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
	"github.com/vort-x/platform/services"
)

func newCommunityRouter(t *testing.T) *tournamentRouterFixture {
	t.Helper()
	ids := repositories.NewIDGenerator()
	service := services.NewCommunityService(repositories.NewMemoryCommunityRepository(ids), ids)
	handler := NewCommunityHandler(service)

	f := &tournamentRouterFixture{user: testHost}
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			injectUser(f.user)(next).ServeHTTP(w, r)
		})
	})
	router.Route("/communities", func(r chi.Router) {
		r.Get("/", handler.ListHandler)
		r.Post("/", handler.CreateHandler)
		r.Get("/{communityName}", handler.GetByNameHandler)
		r.Get("/{communityName}/channels/{channelName}/messages", handler.GetMessagesHandler)
		r.Post("/{communityName}/channels/{channelName}/messages", handler.PostMessageHandler)
	})
	f.router = router
	return f
}

func TestCreateCommunityEndpoint(t *testing.T) {
	f := newCommunityRouter(t)

	rec := f.do(t, http.MethodPost, "/communities", map[string]any{
		"name":        "Valorant",
		"description": "Tactical shooter community.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Community models.Community `json:"community"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Valorant", envelope.Community.Name)
	assert.Equal(t, models.CommunityPermanent, envelope.Community.Type)

	// Duplicate name maps to 409.
	rec = f.do(t, http.MethodPost, "/communities", map[string]any{"name": "Valorant"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetCommunityByNameEndpoint(t *testing.T) {
	f := newCommunityRouter(t)
	f.do(t, http.MethodPost, "/communities", map[string]any{"name": "Valorant"})

	rec := f.do(t, http.MethodGet, "/communities/Valorant", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/communities/Unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChannelMessagesEndpoints(t *testing.T) {
	f := newCommunityRouter(t)
	f.do(t, http.MethodPost, "/communities", map[string]any{"name": "Valorant"})

	// Absent channel reads as empty, not 404.
	rec := f.do(t, http.MethodGet, "/communities/Valorant/channels/strategy/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Messages []models.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Empty(t, listing.Messages)

	rec = f.do(t, http.MethodPost, "/communities/Valorant/channels/strategy/messages", map[string]any{
		"content": "Rush B every round",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var posted struct {
		Message models.Message `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))
	assert.Equal(t, testHost.Name, posted.Message.Author)
	assert.True(t, posted.Message.IsCurrentUser)

	rec = f.do(t, http.MethodGet, "/communities/Valorant/channels/strategy/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listing.Messages = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Messages, 1)
	assert.Equal(t, "Rush B every round", listing.Messages[0].Content)

	// Posting into an unknown community is a 404.
	rec = f.do(t, http.MethodPost, "/communities/Unknown/channels/strategy/messages", map[string]any{
		"content": "hello",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
