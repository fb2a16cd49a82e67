package las

import (
	"testing"
)

func rawArticle() map[string]interface{} {
	return map[string]interface{}{
		"uuid":            "art-1",
		"cod_article_las": "LAS-0042",
		"description":     "bottle sleeve 0.5l",
		"length_cm":       "12,5", // old endpoint: comma decimal string
		"depth_cm":        8.0,
		"height_cm":       nil,
		"obsolete":        1,
		"quality_approved":    true,
		"quality_approved_by": "M. Bianchi",
		"quality_approved_at": "2024-01-31",
		"offer": map[string]interface{}{
			"id": 7, "code": "OFF-2024-001",
		},
		"materials": []interface{}{
			map[string]interface{}{"code": "PE-FILM", "quantity": "3,25"},
			map[string]interface{}{"cod": "GLUE-7", "quantity": 1.5},
		},
		"orders": []interface{}{
			map[string]interface{}{"number": "PO-1", "status": "3", "quantity": 5000},
		},
	}
}

func TestMapArticleScalars(t *testing.T) {
	a := MapArticle(rawArticle())

	if a.UUID != "art-1" || a.CodArticleLAS != "LAS-0042" {
		t.Fatalf("identity not mapped: %+v", a)
	}
	if a.LengthCM == nil || *a.LengthCM != 12.5 {
		t.Errorf("length_cm = %v, want 12.5 from comma string", a.LengthCM)
	}
	if a.DepthCM == nil || *a.DepthCM != 8 {
		t.Errorf("depth_cm = %v, want 8", a.DepthCM)
	}
	if a.HeightCM != nil {
		t.Errorf("height_cm = %v, want nil for explicit null", *a.HeightCM)
	}
	if a.NetWeightKG != nil {
		t.Error("absent net weight must stay nil")
	}
	if a.Obsolete == nil || !*a.Obsolete {
		t.Errorf("obsolete = %v, want true from int 1", a.Obsolete)
	}
}

func TestMapArticleApprovals(t *testing.T) {
	a := MapArticle(rawArticle())

	q := a.QualityApproval
	if q.Approved == nil || !*q.Approved {
		t.Error("quality approval flag not mapped")
	}
	if q.ApprovedBy == nil || *q.ApprovedBy != "M. Bianchi" {
		t.Errorf("approved_by = %v", q.ApprovedBy)
	}
	if q.ApprovedAt == nil || q.ApprovedAt.Format("2006-01-02") != "2024-01-31" {
		t.Errorf("approved_at = %v", q.ApprovedAt)
	}
	// Untouched blocks stay fully empty.
	p := a.ProductionApproval
	if p.Approved != nil || p.ApprovedBy != nil || p.ApprovedAt != nil || p.Note != nil {
		t.Errorf("production approval should be empty, got %+v", p)
	}
}

func TestMapArticleReferences(t *testing.T) {
	a := MapArticle(rawArticle())

	if a.Offer == nil || a.Offer.ID != 7 || a.Offer.Code != "OFF-2024-001" {
		t.Fatalf("offer = %+v", a.Offer)
	}
	if a.OfferID == nil || *a.OfferID != 7 {
		t.Errorf("offer FK = %v, want 7", a.OfferID)
	}
	if a.Category != nil {
		t.Error("absent category must stay nil")
	}
}

func TestMapArticleMaterialCodeAliasing(t *testing.T) {
	a := MapArticle(rawArticle())

	if len(a.Materials) != 2 {
		t.Fatalf("materials = %d, want 2", len(a.Materials))
	}
	if a.Materials[0].Code != "PE-FILM" {
		t.Errorf("material[0].Code = %q, want PE-FILM from 'code'", a.Materials[0].Code)
	}
	if a.Materials[1].Code != "GLUE-7" {
		t.Errorf("material[1].Code = %q, want GLUE-7 from legacy 'cod'", a.Materials[1].Code)
	}
	if a.Materials[0].Quantity == nil || *a.Materials[0].Quantity != 3.25 {
		t.Errorf("material quantity = %v, want 3.25 from comma string", a.Materials[0].Quantity)
	}
}

func TestMapArticleOrders(t *testing.T) {
	a := MapArticle(rawArticle())

	if len(a.Orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(a.Orders))
	}
	o := a.Orders[0]
	if o.Number != "PO-1" {
		t.Errorf("number = %q", o.Number)
	}
	if o.Status != 3 {
		t.Errorf("status = %d, want 3 from string field", o.Status)
	}
	if o.Quantity == nil || *o.Quantity != 5000 {
		t.Errorf("quantity = %v, want 5000", o.Quantity)
	}
}

func TestOptFloatRejectsGarbage(t *testing.T) {
	rec := map[string]interface{}{
		"a": "not-a-number",
		"b": "",
		"c": "  2,50 ",
	}
	if got := optFloat(rec, "a"); got != nil {
		t.Errorf("optFloat(garbage) = %v, want nil", *got)
	}
	if got := optFloat(rec, "b"); got != nil {
		t.Errorf("optFloat(empty) = %v, want nil", *got)
	}
	if got := optFloat(rec, "c"); got == nil || *got != 2.5 {
		t.Errorf("optFloat(padded comma string) = %v, want 2.5", got)
	}
	if got := optFloat(rec, "missing"); got != nil {
		t.Errorf("optFloat(missing) = %v, want nil", *got)
	}
}
