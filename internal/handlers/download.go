package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrirubim/laserpack/internal/services/printer"
	"github.com/adrirubim/laserpack/internal/view"
	"github.com/gorilla/mux"
)

// instruction is the common shape of the three instruction families,
// as the show/download endpoints see them.
type instruction struct {
	ID             uint        `json:"id"`
	Kind           string      `json:"kind"`
	Description    *string     `json:"description,omitempty"`
	AttachmentFile *string     `json:"attachment_file,omitempty"`
	Detail         interface{} `json:"detail,omitempty"`
}

// findInstruction locates one instruction row on a loaded article.
// Returns nil when the kind is unknown or the id does not belong to
// this article.
func (r *Router) findInstruction(req *http.Request) *instruction {
	vars := mux.Vars(req)
	id := parseUint(vars["instructionId"])

	article, err := r.store.FindArticle(req.Context(), vars["id"])
	if err != nil {
		return nil
	}

	switch view.InstructionKind(vars["kind"]) {
	case view.KindPackaging:
		for _, in := range article.PackagingInstructions {
			if in.ID == id {
				return &instruction{ID: in.ID, Kind: vars["kind"], Description: in.Description, AttachmentFile: in.AttachmentFile}
			}
		}
	case view.KindOperating:
		for _, in := range article.OperatingInstructions {
			if in.ID == id {
				return &instruction{ID: in.ID, Kind: vars["kind"], Description: in.Description, AttachmentFile: in.AttachmentFile}
			}
		}
	case view.KindPalletizing:
		for _, in := range article.PalletizingInstructions {
			if in.ID == id {
				return &instruction{ID: in.ID, Kind: vars["kind"], AttachmentFile: in.AttachmentFile, Detail: in}
			}
		}
	}
	return nil
}

// getInstruction returns one instruction row of any of the three kinds
func (r *Router) getInstruction(w http.ResponseWriter, req *http.Request) {
	in := r.findInstruction(req)
	if in == nil {
		respondError(w, http.StatusNotFound, "Instruction not found")
		return
	}
	respondJSON(w, http.StatusOK, in)
}

// downloadInstructionAttachment streams the instruction's stored file.
// Instructions without an attachment have no download: 404, matching
// the detail page that never offers the link.
func (r *Router) downloadInstructionAttachment(w http.ResponseWriter, req *http.Request) {
	in := r.findInstruction(req)
	if in == nil {
		respondError(w, http.StatusNotFound, "Instruction not found")
		return
	}
	if in.AttachmentFile == nil || *in.AttachmentFile == "" {
		respondError(w, http.StatusNotFound, "Instruction has no attachment")
		return
	}

	name := filepath.Base(*in.AttachmentFile)
	path := filepath.Join(r.cfg.AttachmentsDir, name)
	if _, err := os.Stat(path); err != nil {
		log.Printf("⚠️ Missing attachment file %s: %v", path, err)
		respondError(w, http.StatusNotFound, "Attachment file not found")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, req, path)
}

// downloadLineLayout renders the line layout sheet as a PDF
func (r *Router) downloadLineLayout(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	article, err := r.store.FindArticle(req.Context(), vars["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}

	pdf, err := printer.GenerateLineLayoutPDF(article, r.translator(req))
	if err != nil {
		log.Printf("❌ Line layout PDF for %s: %v", article.CodArticleLAS, err)
		respondError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "line_layout_"+article.CodArticleLAS+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func parseUint(s string) uint {
	v, _ := strconv.ParseUint(s, 10, 64)
	return uint(v)
}
