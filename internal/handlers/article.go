package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/adrirubim/laserpack/internal/models"
	"github.com/adrirubim/laserpack/internal/view"
	"github.com/adrirubim/laserpack/internal/websocket"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// listArticles returns the article listing projection
func (r *Router) listArticles(w http.ResponseWriter, req *http.Request) {
	articles, err := r.store.ListArticles(req.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	respondJSON(w, http.StatusOK, articles)
}

// getArticleDetail renders the read-only detail page view model
func (r *Router) getArticleDetail(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	article, err := r.store.FindArticle(req.Context(), vars["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}

	presenter := view.NewPresenter(
		article,
		r.translator(req),
		r.urls,
		func(ctx context.Context, uuid string) error {
			return r.store.DeleteArticle(ctx, uuid)
		},
		func(string) {}, // navigation is client-side over HTTP
	)
	respondJSON(w, http.StatusOK, presenter.Render())
}

// getArticleForEdit returns the raw aggregate for the edit form
func (r *Router) getArticleForEdit(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	article, err := r.store.FindArticle(req.Context(), vars["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

// newArticleTemplate returns a blank article, or one prefilled from the
// copy_from source (the duplicate action). Identity and sync bookkeeping
// are stripped from the copy.
func (r *Router) newArticleTemplate(w http.ResponseWriter, req *http.Request) {
	source := req.URL.Query().Get("copy_from")
	if source == "" {
		respondJSON(w, http.StatusOK, &models.Article{})
		return
	}

	article, err := r.store.FindArticle(req.Context(), source)
	if err != nil {
		respondError(w, http.StatusNotFound, "Source article not found")
		return
	}

	template := *article
	template.UUID = ""
	template.CodArticleLAS = ""
	template.RawData = nil
	template.LastSyncedAt = nil
	respondJSON(w, http.StatusOK, &template)
}

// deleteArticle removes an article and notifies connected dashboards.
// Idempotency note: a repeated delete is a 404, the row is already gone.
func (r *Router) deleteArticle(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	uuid := vars["id"]

	article, err := r.store.FindArticle(req.Context(), uuid)
	if err != nil {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}

	if err := r.store.DeleteArticle(req.Context(), uuid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Printf("❌ Failed to delete article %s: %v", uuid, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}

	log.Printf("🗑️ Article deleted: %s (%s)", article.CodArticleLAS, uuid)
	if r.hub != nil {
		r.hub.BroadcastEvent(websocket.Event{
			Type:        "article_deleted",
			ArticleUUID: uuid,
			Code:        article.CodArticleLAS,
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"redirect": r.urls.ArticleList(),
	})
}

// getOffer returns one offer reference record
func (r *Router) getOffer(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := parseUint(vars["id"])
	offer, err := r.store.FindOffer(req.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Offer not found")
		return
	}
	respondJSON(w, http.StatusOK, offer)
}
