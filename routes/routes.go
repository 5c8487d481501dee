package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vort-x/platform/handlers"
)

type Handlers struct {
	Tournament *handlers.TournamentHandler
	Community  *handlers.CommunityHandler
	Feed       *handlers.FeedHandler
	DM         *handlers.DMHandler
	Search     *handlers.SearchHandler
	Dashboard  *handlers.DashboardHandler
	Settings   *handlers.SettingsHandler
}

// SetupRoutes mounts all API routes. The session middleware is applied by
// the caller so tests can inject users directly.
func SetupRoutes(router chi.Router, h Handlers, session func(http.Handler) http.Handler) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-ID"},
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Group(func(r chi.Router) {
		r.Use(session)

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.ListHandler)
			r.Post("/", h.Tournament.CreateHandler)
			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/", h.Tournament.GetByIDHandler)
				r.Delete("/", h.Tournament.DeleteHandler)
				r.Post("/registrations", h.Tournament.RegisterHandler)
				r.Post("/feedback", h.Tournament.FeedbackHandler)
				r.Post("/kick-requests", h.Tournament.CreateKickRequestHandler)
				r.Patch("/kick-requests/{requestID}", h.Tournament.ResolveKickRequestHandler)
				r.Put("/media", h.Tournament.UpdateMediaHandler)
				r.Post("/media/upload", h.Tournament.UploadMediaHandler)
				r.Post("/announcements", h.Tournament.AnnouncementHandler)
				r.Post("/credentials", h.Tournament.CredentialsHandler)
				r.Post("/notices", h.Tournament.NoticeHandler)
			})
		})

		r.Route("/communities", func(r chi.Router) {
			r.Get("/", h.Community.ListHandler)
			r.Post("/", h.Community.CreateHandler)
			r.Get("/{communityName}", h.Community.GetByNameHandler)
			r.Get("/{communityName}/channels/{channelName}/messages", h.Community.GetMessagesHandler)
			r.Post("/{communityName}/channels/{channelName}/messages", h.Community.PostMessageHandler)
		})

		r.Route("/feed", func(r chi.Router) {
			r.Get("/", h.Feed.ListHandler)
			r.Post("/posts", h.Feed.CreatePostHandler)
			r.Get("/posts/{postID}", h.Feed.GetPostHandler)
			r.Post("/posts/{postID}/like", h.Feed.ToggleLikeHandler)
			r.Post("/posts/{postID}/save", h.Feed.ToggleSaveHandler)
			r.Post("/posts/{postID}/comments", h.Feed.AddCommentHandler)
		})

		r.Route("/dms", func(r chi.Router) {
			r.Get("/", h.DM.ListHandler)
			r.Get("/{conversationID}", h.DM.GetHandler)
			r.Post("/{conversationID}/messages", h.DM.SendMessageHandler)
		})

		r.Get("/search", h.Search.SearchHandler)
		r.Get("/dashboard", h.Dashboard.SummaryHandler)
		r.Get("/settings/theme", h.Settings.GetThemeHandler)
		r.Put("/settings/theme", h.Settings.SetThemeHandler)
	})
}
