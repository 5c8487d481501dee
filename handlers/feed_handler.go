package handlers

import (
	"net/http"

	"github.com/vort-x/platform/middleware"
	"github.com/vort-x/platform/services"
)

type FeedHandler struct {
	feedService services.FeedService
}

func NewFeedHandler(fs services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: fs}
}

// ListHandler handles GET /feed
func (h *FeedHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feedService.ListPosts(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	stories, err := h.feedService.ListStories(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"posts": posts, "stories": stories}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPostHandler handles GET /feed/posts/{postID}
func (h *FeedHandler) GetPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "postID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	post, err := h.feedService.GetPost(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"post": post}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreatePostHandler handles POST /feed/posts
func (h *FeedHandler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.UserFromContext(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	var input struct {
		Caption string `json:"caption"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	post, err := h.feedService.AddPost(r.Context(), actor, input.Caption)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"post": post}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ToggleLikeHandler handles POST /feed/posts/{postID}/like
func (h *FeedHandler) ToggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "postID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	post, err := h.feedService.ToggleLike(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"post": post}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ToggleSaveHandler handles POST /feed/posts/{postID}/save
func (h *FeedHandler) ToggleSaveHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "postID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	post, err := h.feedService.ToggleSave(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"post": post}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AddCommentHandler handles POST /feed/posts/{postID}/comments
func (h *FeedHandler) AddCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "postID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	actor, err := middleware.UserFromContext(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	comment, err := h.feedService.AddComment(r.Context(), actor, id, input.Content)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"comment": comment}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
