package view

import (
	"context"
	"errors"
	"sync"

	"github.com/adrirubim/laserpack/internal/i18n"
	"github.com/adrirubim/laserpack/internal/models"
)

// DeleteState tracks the article delete workflow.
type DeleteState int

const (
	// DeleteIdle: no delete interaction in progress.
	DeleteIdle DeleteState = iota
	// DeleteConfirmPending: the confirmation dialog is open.
	DeleteConfirmPending
	// DeleteInFlight: the delete request has been issued and has not
	// completed yet. Confirm is not re-entrant while in this state.
	DeleteInFlight
)

// ErrDeleteNotPending is returned when ConfirmDelete is invoked outside
// the ConfirmPending state (no dialog open, or a delete already running).
var ErrDeleteNotPending = errors.New("delete not awaiting confirmation")

// DeleteFunc issues the delete mutation for an article. Supplied by the
// caller; the presenter only cares whether it eventually returns.
type DeleteFunc func(ctx context.Context, articleUUID string) error

// NavigateFunc sends the operator to a target URL.
type NavigateFunc func(url string)

// Presenter renders the read-only article detail page and owns its only
// transient state: the delete dialog and the in-flight flag. The article
// aggregate itself is treated as immutable; every derived value is
// recomputed on Render.
type Presenter struct {
	article  *models.Article
	tr       i18n.Translator
	urls     URLBuilder
	deleteFn DeleteFunc
	navigate NavigateFunc

	mu    sync.Mutex
	state DeleteState
}

// NewPresenter wires a presenter for one article page instance.
func NewPresenter(article *models.Article, tr i18n.Translator, urls URLBuilder, deleteFn DeleteFunc, navigate NavigateFunc) *Presenter {
	return &Presenter{
		article:  article,
		tr:       tr,
		urls:     urls,
		deleteFn: deleteFn,
		navigate: navigate,
	}
}

// ArticleDetail is the full view model for the detail page.
type ArticleDetail struct {
	UUID     string       `json:"uuid"`
	Code     string       `json:"cod_article_las"`
	Sections []Section    `json:"sections"`
	Actions  []Action     `json:"actions"`
	Delete   DeleteDialog `json:"delete"`
}

// DeleteDialog mirrors the presenter's transient state for the client.
type DeleteDialog struct {
	DialogOpen bool `json:"dialog_open"`
	InFlight   bool `json:"in_flight"`
}

// Render assembles the view model: every visible section plus the
// page-level actions. Safe to call any number of times.
func (p *Presenter) Render() ArticleDetail {
	state := p.State()
	return ArticleDetail{
		UUID:     p.article.UUID,
		Code:     p.article.CodArticleLAS,
		Sections: p.sections(),
		Actions:  p.pageActions(),
		Delete: DeleteDialog{
			DialogOpen: state == DeleteConfirmPending || state == DeleteInFlight,
			InFlight:   state == DeleteInFlight,
		},
	}
}

// pageActions are the stateless redirects available from the page header.
func (p *Presenter) pageActions() []Action {
	id := p.article.UUID
	actions := []Action{
		{Name: "edit", URL: p.urls.ArticleEdit(id)},
		{Name: "duplicate", URL: p.urls.ArticleCreateFrom(id)},
		{Name: "download_line_layout", URL: p.urls.ArticleLineLayout(id)},
	}
	if p.article.Offer != nil {
		actions = append(actions, Action{Name: "view_offer", URL: p.urls.OfferDetail(p.article.Offer.ID)})
	}
	return actions
}

// instructionActions builds the per-row action set for an instruction.
// The download action is only offered when the attachment filename is
// present; without a file there is nothing to serve.
func (p *Presenter) instructionActions(kind InstructionKind, instructionID uint, attachment *string) []Action {
	id := p.article.UUID
	actions := []Action{
		{Name: "show", URL: p.urls.InstructionShow(kind, id, instructionID)},
		{Name: "edit", URL: p.urls.InstructionEdit(kind, id, instructionID)},
	}
	if present(attachment) {
		actions = append(actions, Action{Name: "download", URL: p.urls.InstructionDownload(kind, id, instructionID)})
	}
	return actions
}

// State returns the current delete workflow state.
func (p *Presenter) State() DeleteState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// RequestDelete opens the confirmation dialog. No effect unless idle.
func (p *Presenter) RequestDelete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != DeleteIdle {
		return false
	}
	p.state = DeleteConfirmPending
	return true
}

// CancelDelete closes the dialog without deleting. No effect once the
// request is in flight: an issued delete cannot be cancelled.
func (p *Presenter) CancelDelete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != DeleteConfirmPending {
		return false
	}
	p.state = DeleteIdle
	return true
}

// ConfirmDelete issues the delete mutation. On success the operator is
// navigated to the article listing. Whatever the outcome, the dialog is
// closed and the in-flight flag cleared before returning, so the page can
// never be left stuck on a spinner. A second confirm while a delete is
// running returns ErrDeleteNotPending without issuing anything.
func (p *Presenter) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	if p.state != DeleteConfirmPending {
		p.mu.Unlock()
		return ErrDeleteNotPending
	}
	p.state = DeleteInFlight
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.state = DeleteIdle
		p.mu.Unlock()
	}()

	if err := p.deleteFn(ctx, p.article.UUID); err != nil {
		return err
	}
	p.navigate(p.urls.ArticleList())
	return nil
}
