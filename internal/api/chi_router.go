// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/bundlerelay/internal/config"
	"github.com/tomtom215/bundlerelay/internal/middleware"
)

// Router wires the handlers into a chi route tree.
type Router struct {
	handler       *Handler
	webhook       http.Handler
	chiMiddleware *ChiMiddleware
	cfg           *config.Config
}

// NewRouter creates a router. webhook serves POST /api/webhook; when nil
// the route answers 503.
func NewRouter(handler *Handler, webhook http.Handler, cfg *config.Config) *Router {
	if webhook == nil {
		webhook = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeErrorStatus(w, r, http.StatusServiceUnavailable)
		})
	}
	return &Router{
		handler:       handler,
		webhook:       webhook,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFrom(cfg.Security)),
		cfg:           cfg,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(router.cfg.Server.SlowRequestThreshold))
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorStatus(w, r, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorStatus(w, r, http.StatusMethodNotAllowed)
	})

	r.Get("/", h.Root)

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.With(router.chiMiddleware.RateLimitHealth()).Get("/api/v1/health/live", h.HealthLive)

	// ========================
	// bundle.social API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)

		r.Get("/health", h.Health)
		r.Get("/organization", h.Organization)

		r.Route("/team", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.With(router.chiMiddleware.RateLimitWrite()).Post("/", h.CreateTeam)
			r.Get("/{id}", h.GetTeam)
			r.Patch("/{id}", h.UpdateTeam)
			r.Delete("/{id}", h.DeleteTeam)
		})

		r.Route("/social-account", func(r chi.Router) {
			r.Post("/create-portal-link", h.CreatePortalLink)
			r.Post("/connect", h.ConnectSocialAccount)
			r.Get("/{id}", h.GetSocialAccount)
			r.Patch("/{id}", h.UpdateSocialAccount)
			r.Delete("/{id}", h.DeleteSocialAccount)
		})

		r.Route("/upload", func(r chi.Router) {
			r.Get("/", h.ListUploads)
			r.Get("/{id}", h.GetUpload)
			r.Post("/init", h.InitLargeUpload)
			r.With(router.chiMiddleware.RateLimitWrite()).Post("/create", h.CreateUpload)
			r.Post("/finalize", h.FinalizeLargeUpload)
		})

		r.Route("/post", func(r chi.Router) {
			r.Get("/", h.ListPosts)
			r.With(router.chiMiddleware.RateLimitWrite()).Post("/", h.CreatePost)
			r.Get("/{id}", h.GetPost)
			r.Patch("/{id}", h.UpdatePost)
			r.Delete("/{id}", h.DeletePost)
			r.Post("/{id}/retry", h.RetryPost)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/team/{teamId}", h.TeamAnalytics)
			r.Post("/team/{teamId}/force-refresh", h.ForceTeamAnalytics)
			r.Get("/social-account/{id}", h.SocialAccountAnalytics)
			r.Get("/post/{postId}", h.PostAnalytics)
			r.Post("/post/{postId}/force-refresh", h.ForcePostAnalytics)
		})

		r.Route("/comment", func(r chi.Router) {
			r.Get("/", h.ListComments)
			r.Post("/", h.CreateComment)
			r.Get("/{id}", h.GetComment)
			r.Patch("/{id}", h.UpdateComment)
			r.Delete("/{id}", h.DeleteComment)
		})

		r.Route("/misc", func(r chi.Router) {
			r.Get("/timezones", h.Timezones)
			r.Get("/platforms", h.Platforms)
			r.Get("/server", h.Server)
		})
	})

	// ========================
	// Instagram shortcuts
	// ========================
	r.Route("/api/instagram", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.Compression)

		r.Get("/health", h.Health)
		r.Get("/organization", h.Organization)

		r.Post("/teams", h.InstagramCreateTeam)
		r.Get("/teams/{teamId}", h.InstagramGetTeam)

		r.Post("/accounts/portal-link", h.InstagramPortalLink)
		r.Post("/accounts/channel", h.InstagramSetChannel)

		r.With(router.chiMiddleware.RateLimitWrite()).Post("/uploads/simple", h.CreateUpload)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitWrite())
			r.Post("/posts", h.InstagramCreatePost)
			r.Post("/posts/feed", h.InstagramCreateFeedPost)
			r.Post("/posts/reel", h.InstagramCreateReel)
			r.Post("/posts/story", h.InstagramCreateStory)
		})
		r.Get("/posts/{postId}", h.InstagramGetPost)
		r.Post("/posts/{postId}/retry", h.InstagramRetryPost)
	})

	// ========================
	// Webhooks & Events
	// ========================
	r.With(router.chiMiddleware.RateLimitWebhook()).Post("/api/webhook", router.webhook.ServeHTTP)
	r.With(router.chiMiddleware.RateLimitWebSocket()).Get("/api/events", h.Events)

	return r
}
