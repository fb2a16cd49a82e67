package view

import "fmt"

// InstructionKind selects one of the three per-article instruction
// families that share the show/edit/download action set.
type InstructionKind string

const (
	KindPackaging   InstructionKind = "packaging"
	KindOperating   InstructionKind = "operating"
	KindPalletizing InstructionKind = "palletizing"
)

// URLBuilder produces the navigation and download targets the presenter
// dispatches to. The presenter treats every builder as opaque; routing
// details live behind this interface so tests can inject a stub.
type URLBuilder interface {
	ArticleList() string
	ArticleDetail(articleUUID string) string
	ArticleEdit(articleUUID string) string
	// ArticleCreateFrom is the create page pre-filled from an existing
	// article (the duplicate action).
	ArticleCreateFrom(sourceUUID string) string
	ArticleLineLayout(articleUUID string) string
	OfferDetail(offerID uint) string
	InstructionShow(kind InstructionKind, articleUUID string, instructionID uint) string
	InstructionEdit(kind InstructionKind, articleUUID string, instructionID uint) string
	InstructionDownload(kind InstructionKind, articleUUID string, instructionID uint) string
}

// APIURLs builds URLs matching the routes served by internal/handlers.
type APIURLs struct {
	Base string
}

func (u APIURLs) ArticleList() string { return u.Base + "/api/articles" }

func (u APIURLs) ArticleDetail(articleUUID string) string {
	return fmt.Sprintf("%s/api/articles/%s", u.Base, articleUUID)
}

func (u APIURLs) ArticleEdit(articleUUID string) string {
	return fmt.Sprintf("%s/api/articles/%s/edit", u.Base, articleUUID)
}

func (u APIURLs) ArticleCreateFrom(sourceUUID string) string {
	return fmt.Sprintf("%s/api/articles/new?copy_from=%s", u.Base, sourceUUID)
}

func (u APIURLs) ArticleLineLayout(articleUUID string) string {
	return fmt.Sprintf("%s/api/articles/%s/line-layout", u.Base, articleUUID)
}

func (u APIURLs) OfferDetail(offerID uint) string {
	return fmt.Sprintf("%s/api/offers/%d", u.Base, offerID)
}

func (u APIURLs) InstructionShow(kind InstructionKind, articleUUID string, instructionID uint) string {
	return fmt.Sprintf("%s/api/articles/%s/instructions/%s/%d", u.Base, articleUUID, kind, instructionID)
}

func (u APIURLs) InstructionEdit(kind InstructionKind, articleUUID string, instructionID uint) string {
	return fmt.Sprintf("%s/api/articles/%s/instructions/%s/%d/edit", u.Base, articleUUID, kind, instructionID)
}

func (u APIURLs) InstructionDownload(kind InstructionKind, articleUUID string, instructionID uint) string {
	return fmt.Sprintf("%s/api/articles/%s/instructions/%s/%d/attachment", u.Base, articleUUID, kind, instructionID)
}
