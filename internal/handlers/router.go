package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adrirubim/laserpack/internal/config"
	"github.com/adrirubim/laserpack/internal/database"
	"github.com/adrirubim/laserpack/internal/i18n"
	"github.com/adrirubim/laserpack/internal/middleware"
	"github.com/adrirubim/laserpack/internal/view"
	"github.com/adrirubim/laserpack/internal/websocket"
	"github.com/gorilla/mux"
)

// Router wraps the mux router with the handler dependencies
type Router struct {
	*mux.Router
	db    *database.DB
	store ArticleStore
	cfg   *config.Config
	hub   *websocket.Hub
	urls  view.APIURLs
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, hub *websocket.Hub) *Router {
	r := newRouter(NewGormStore(db.DB), cfg, hub)
	r.db = db

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")

	// Operator event stream
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		websocket.ServeWs(hub, w, req)
	})

	// Article routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))
	r.registerArticleRoutes(api)

	return r
}

// newRouter builds the bare router; tests swap in a fake store and mount
// the article routes without the auth middleware.
func newRouter(store ArticleStore, cfg *config.Config, hub *websocket.Hub) *Router {
	return &Router{
		Router: mux.NewRouter(),
		store:  store,
		cfg:    cfg,
		hub:    hub,
		urls:   view.APIURLs{Base: cfg.BaseURL},
	}
}

func (r *Router) registerArticleRoutes(api *mux.Router) {
	api.HandleFunc("/articles", r.listArticles).Methods("GET")
	api.HandleFunc("/articles/new", r.newArticleTemplate).Methods("GET")
	api.HandleFunc("/articles/{id}", r.getArticleDetail).Methods("GET")
	api.HandleFunc("/articles/{id}", r.deleteArticle).Methods("DELETE")
	api.HandleFunc("/articles/{id}/edit", r.getArticleForEdit).Methods("GET")
	api.HandleFunc("/articles/{id}/line-layout", r.downloadLineLayout).Methods("GET")
	api.HandleFunc("/articles/{id}/instructions/{kind}/{instructionId}", r.getInstruction).Methods("GET")
	api.HandleFunc("/articles/{id}/instructions/{kind}/{instructionId}/attachment", r.downloadInstructionAttachment).Methods("GET")
	api.HandleFunc("/offers/{id:[0-9]+}", r.getOffer).Methods("GET")
}

// translator picks the catalog for the request: explicit ?lang= wins,
// otherwise the configured default.
func (r *Router) translator(req *http.Request) i18n.Translator {
	lang := req.URL.Query().Get("lang")
	if lang == "" {
		lang = r.cfg.DefaultLanguage
	}
	return i18n.NewTranslator(lang)
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
