package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
	"github.com/vort-x/platform/services"
)

func newFeedRouter(t *testing.T) (*tournamentRouterFixture, repositories.FeedRepository) {
	t.Helper()
	ids := repositories.NewIDGenerator()
	repo := repositories.NewMemoryFeedRepository(ids)
	handler := NewFeedHandler(services.NewFeedService(repo, ids))

	f := &tournamentRouterFixture{user: testHost}
	router := chi.NewRouter()
	router.Use(injectUser(f.user))
	router.Route("/feed", func(r chi.Router) {
		r.Get("/", handler.ListHandler)
		r.Post("/posts", handler.CreatePostHandler)
		r.Get("/posts/{postID}", handler.GetPostHandler)
		r.Post("/posts/{postID}/like", handler.ToggleLikeHandler)
		r.Post("/posts/{postID}/save", handler.ToggleSaveHandler)
		r.Post("/posts/{postID}/comments", handler.AddCommentHandler)
	})
	f.router = router
	return f, repo
}

func TestFeedListAndCreatePost(t *testing.T) {
	f, _ := newFeedRouter(t)

	rec := f.do(t, http.MethodPost, "/feed/posts", map[string]any{
		"caption": "Anyone up for ranked tonight?",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Post models.FeedItem `json:"post"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.GeneralPostTitle, created.Post.Tournament.Title)
	assert.Equal(t, testHost.Name, created.Post.User.Username)

	rec = f.do(t, http.MethodGet, "/feed", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Posts   []models.FeedItem `json:"posts"`
		Stories []models.Story    `json:"stories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Posts, 1)
	assert.NotNil(t, listing.Stories)
}

func TestFeedLikeSaveCommentEndpoints(t *testing.T) {
	f, repo := newFeedRouter(t)

	post := &models.FeedItem{
		User:       models.FeedUser{Username: "ESL_CSGO"},
		Tournament: models.TournamentPromo{Title: "IEM Katowice Playoffs", Game: "Counter-Strike 2", Status: models.PromoUpcoming},
		Engagement: models.Engagement{Likes: 10},
	}
	require.NoError(t, repo.CreatePost(context.Background(), post))

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/feed/posts/%d/like", post.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var liked struct {
		Post models.FeedItem `json:"post"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liked))
	assert.True(t, liked.Post.Social.Liked)
	assert.Equal(t, 11, liked.Post.Engagement.Likes)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/feed/posts/%d/save", post.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/feed/posts/%d/comments", post.ID), map[string]any{
		"content": "Hype!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var commented struct {
		Comment models.Comment `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &commented))
	assert.Equal(t, testHost.Name, commented.Comment.Author)

	rec = f.do(t, http.MethodPost, "/feed/posts/424242/like", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func newDMRouter(t *testing.T) (*tournamentRouterFixture, *models.Conversation) {
	t.Helper()
	ids := repositories.NewIDGenerator()
	repo := repositories.NewMemoryConversationRepository(ids)
	handler := NewDMHandler(services.NewDMService(repo, ids))

	conversation := &models.Conversation{
		Participant: models.User{ID: 2, Name: "PixelPioneer"},
		Messages: []models.DirectMessage{
			{ID: 1, SenderID: 2, Sender: "PixelPioneer", Content: "Hey!", SentAt: time.Now().Add(-time.Hour)},
		},
		LastMessage: "Hey!",
		UnreadCount: 2,
	}
	require.NoError(t, repo.Create(context.Background(), conversation))

	f := &tournamentRouterFixture{user: testHost}
	router := chi.NewRouter()
	router.Use(injectUser(f.user))
	router.Route("/dms", func(r chi.Router) {
		r.Get("/", handler.ListHandler)
		r.Get("/{conversationID}", handler.GetHandler)
		r.Post("/{conversationID}/messages", handler.SendMessageHandler)
	})
	f.router = router
	return f, conversation
}

func TestDMEndpoints(t *testing.T) {
	f, conversation := newDMRouter(t)

	rec := f.do(t, http.MethodGet, "/dms", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Opening the thread clears the unread counter.
	rec = f.do(t, http.MethodGet, fmt.Sprintf("/dms/%d", conversation.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var opened struct {
		Conversation models.Conversation `json:"conversation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opened))
	assert.Zero(t, opened.Conversation.UnreadCount)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/dms/%d/messages", conversation.ID), map[string]any{
		"content": "On my way!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var sent struct {
		Message models.DirectMessage `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sent))
	assert.Equal(t, testHost.Name, sent.Message.Sender)

	rec = f.do(t, http.MethodGet, "/dms/424242", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
