package view

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/adrirubim/laserpack/internal/i18n"
	"github.com/adrirubim/laserpack/internal/models"
)

func deletePresenter(deleteFn DeleteFunc, navigated *[]string) *Presenter {
	a := &models.Article{UUID: "art-1", CodArticleLAS: "LAS-001"}
	return NewPresenter(a, i18n.NewTranslator("it"), APIURLs{}, deleteFn,
		func(url string) { *navigated = append(*navigated, url) })
}

func TestDeleteFlowSuccess(t *testing.T) {
	var navigated []string
	calls := 0
	p := deletePresenter(func(ctx context.Context, id string) error {
		calls++
		if id != "art-1" {
			t.Errorf("delete called with id %q, want art-1", id)
		}
		return nil
	}, &navigated)

	if p.State() != DeleteIdle {
		t.Fatalf("initial state = %v, want idle", p.State())
	}
	if !p.RequestDelete() {
		t.Fatal("RequestDelete from idle must succeed")
	}
	if p.State() != DeleteConfirmPending {
		t.Fatalf("state after request = %v, want confirm pending", p.State())
	}
	if !p.Render().Delete.DialogOpen {
		t.Error("dialog must be open while confirmation is pending")
	}

	if err := p.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if calls != 1 {
		t.Errorf("delete mutation called %d times, want 1", calls)
	}
	if len(navigated) != 1 || navigated[0] != (APIURLs{}).ArticleList() {
		t.Errorf("navigated = %v, want the article listing", navigated)
	}
	if p.State() != DeleteIdle {
		t.Errorf("state after completion = %v, want idle", p.State())
	}
	if p.Render().Delete.DialogOpen {
		t.Error("dialog must be closed after completion")
	}
}

func TestDeleteFlowFailureStillResets(t *testing.T) {
	var navigated []string
	boom := errors.New("backend unavailable")
	p := deletePresenter(func(ctx context.Context, id string) error {
		return boom
	}, &navigated)

	p.RequestDelete()
	if err := p.ConfirmDelete(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("ConfirmDelete error = %v, want %v", err, boom)
	}
	// Failure leaves the operator on the page: dialog closed, flag
	// cleared, no navigation.
	if len(navigated) != 0 {
		t.Errorf("navigated = %v, want none on failure", navigated)
	}
	if p.State() != DeleteIdle {
		t.Errorf("state after failure = %v, want idle", p.State())
	}
	if d := p.Render().Delete; d.DialogOpen || d.InFlight {
		t.Errorf("dialog state after failure = %+v, want closed and idle", d)
	}
}

func TestDeleteCancel(t *testing.T) {
	var navigated []string
	p := deletePresenter(func(ctx context.Context, id string) error {
		t.Error("cancel must not issue the mutation")
		return nil
	}, &navigated)

	p.RequestDelete()
	if !p.CancelDelete() {
		t.Fatal("CancelDelete while pending must succeed")
	}
	if p.State() != DeleteIdle {
		t.Errorf("state after cancel = %v, want idle", p.State())
	}
	if p.CancelDelete() {
		t.Error("CancelDelete from idle must be a no-op")
	}
}

func TestConfirmWithoutRequestIsRejected(t *testing.T) {
	var navigated []string
	p := deletePresenter(func(ctx context.Context, id string) error { return nil }, &navigated)
	if err := p.ConfirmDelete(context.Background()); !errors.Is(err, ErrDeleteNotPending) {
		t.Fatalf("ConfirmDelete without a pending dialog = %v, want ErrDeleteNotPending", err)
	}
}

func TestConfirmIsNotReentrant(t *testing.T) {
	var navigated []string
	started := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	p := deletePresenter(func(ctx context.Context, id string) error {
		mu.Lock()
		calls++
		mu.Unlock()
		close(started)
		<-release
		return nil
	}, &navigated)

	p.RequestDelete()

	done := make(chan error, 1)
	go func() { done <- p.ConfirmDelete(context.Background()) }()
	<-started

	if p.State() != DeleteInFlight {
		t.Fatalf("state during mutation = %v, want in flight", p.State())
	}
	if !p.Render().Delete.InFlight {
		t.Error("in-flight flag must be visible while the request runs")
	}
	// A second confirm while the request is running must not issue a
	// second mutation.
	if err := p.ConfirmDelete(context.Background()); !errors.Is(err, ErrDeleteNotPending) {
		t.Errorf("concurrent confirm = %v, want ErrDeleteNotPending", err)
	}
	// An issued delete cannot be cancelled.
	if p.CancelDelete() {
		t.Error("CancelDelete while in flight must be rejected")
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	mu.Lock()
	if calls != 1 {
		t.Errorf("mutation ran %d times, want 1", calls)
	}
	mu.Unlock()
}

func TestRequestDeleteWhilePendingIsNoOp(t *testing.T) {
	var navigated []string
	p := deletePresenter(func(ctx context.Context, id string) error { return nil }, &navigated)
	p.RequestDelete()
	if p.RequestDelete() {
		t.Error("RequestDelete while pending must be a no-op")
	}
}

func TestPageActions(t *testing.T) {
	a := &models.Article{UUID: "art-1", CodArticleLAS: "LAS-001"}
	p := NewPresenter(a, i18n.NewTranslator("it"), APIURLs{Base: "https://plant.example"},
		func(ctx context.Context, id string) error { return nil }, func(string) {})

	actions := map[string]string{}
	for _, act := range p.Render().Actions {
		actions[act.Name] = act.URL
	}
	if actions["edit"] != "https://plant.example/api/articles/art-1/edit" {
		t.Errorf("edit url = %q", actions["edit"])
	}
	if actions["duplicate"] != "https://plant.example/api/articles/new?copy_from=art-1" {
		t.Errorf("duplicate url = %q", actions["duplicate"])
	}
	if actions["download_line_layout"] != "https://plant.example/api/articles/art-1/line-layout" {
		t.Errorf("line layout url = %q", actions["download_line_layout"])
	}
	if _, ok := actions["view_offer"]; ok {
		t.Error("view_offer must be absent without an offer reference")
	}

	a.Offer = &models.Offer{ID: 12, Code: "OFF-12"}
	actions = map[string]string{}
	for _, act := range p.Render().Actions {
		actions[act.Name] = act.URL
	}
	if actions["view_offer"] != "https://plant.example/api/offers/12" {
		t.Errorf("view_offer url = %q", actions["view_offer"])
	}
}
