package view

import (
	"context"
	"testing"
	"time"

	"github.com/adrirubim/laserpack/internal/i18n"
	"github.com/adrirubim/laserpack/internal/models"
)

func s(v string) *string { return &v }
func b(v bool) *bool     { return &v }

func newTestPresenter(a *models.Article) *Presenter {
	return NewPresenter(
		a,
		i18n.NewTranslator("en"),
		APIURLs{},
		func(ctx context.Context, id string) error { return nil },
		func(url string) {},
	)
}

func findSection(detail ArticleDetail, key string) *Section {
	for i := range detail.Sections {
		if detail.Sections[i].Key == key {
			return &detail.Sections[i]
		}
	}
	return nil
}

func findField(sec *Section, key string) *Field {
	if sec == nil {
		return nil
	}
	for i := range sec.Fields {
		if sec.Fields[i].Key == key {
			return &sec.Fields[i]
		}
	}
	return nil
}

func TestEmptyCollectionHidesSection(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		PackagingInstructions: []models.PackagingInstruction{}}
	detail := newTestPresenter(a).Render()
	if findSection(detail, "packaging_instructions") != nil {
		t.Error("empty packaging_instructions must hide the section")
	}
}

func TestNonEmptyCollectionShowsSection(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		PackagingInstructions: []models.PackagingInstruction{
			{ID: 1, Description: s("shrink wrap, 6 units")},
		}}
	detail := newTestPresenter(a).Render()
	sec := findSection(detail, "packaging_instructions")
	if sec == nil {
		t.Fatal("packaging_instructions section missing")
	}
	if len(sec.Rows) != 1 {
		t.Errorf("expected exactly one row, got %d", len(sec.Rows))
	}
}

func TestCompoundSectionNeedsOneField(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001"}
	detail := newTestPresenter(a).Render()
	if findSection(detail, "dimensions_weight") != nil {
		t.Error("dimensions_weight must be hidden with no constituent field")
	}

	a.NetWeightKG = f(0.25)
	detail = newTestPresenter(a).Render()
	sec := findSection(detail, "dimensions_weight")
	if sec == nil {
		t.Fatal("dimensions_weight must show with one field present")
	}
	if findField(sec, "length") != nil {
		t.Error("absent length must not render a line")
	}
	if got := findField(sec, "net_weight"); got == nil || got.Value != "0,25000" {
		t.Errorf("net weight line = %+v, want 0,25000", got)
	}
}

func TestSummaryDimensionsUseTwoDecimals(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		LengthCM: f(12.5), DepthCM: f(8), HeightCM: f(20)}
	sec := findSection(newTestPresenter(a).Render(), "dimensions_weight")
	if got := findField(sec, "length"); got == nil || got.Value != "12,50" {
		t.Errorf("length = %+v, want 12,50", got)
	}
	if got := findField(sec, "height"); got == nil || got.Value != "20,00" {
		t.Errorf("height = %+v, want 20,00", got)
	}
}

func TestZeroValueStillDisplays(t *testing.T) {
	// 0 is recorded data; only nil hides a line.
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001", NumLabels: f(0)}
	sec := findSection(newTestPresenter(a).Render(), "labels")
	if sec == nil {
		t.Fatal("labels section must show for a recorded zero")
	}
	if got := findField(sec, "num_labels"); got == nil || got.Value != "0,00" {
		t.Errorf("num_labels = %+v, want 0,00", got)
	}
}

func TestReferenceSectionGating(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001"}
	detail := newTestPresenter(a).Render()
	if findSection(detail, "offer") != nil {
		t.Error("offer section must hide without a reference")
	}

	a.Offer = &models.Offer{ID: 7, Code: "OFF-2024-001"}
	detail = newTestPresenter(a).Render()
	sec := findSection(detail, "offer")
	if sec == nil {
		t.Fatal("offer section missing")
	}
	// Description is independently optional inside the shown section.
	if findField(sec, "description") != nil {
		t.Error("absent offer description must not render a line")
	}
}

func TestApprovalSections(t *testing.T) {
	when := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		QualityApproval: models.Approval{
			Approved:   b(true),
			ApprovedBy: s("M. Bianchi"),
			ApprovedAt: &when,
		}}
	detail := newTestPresenter(a).Render()

	if findSection(detail, "production_approval") != nil {
		t.Error("untouched approval block must hide its section")
	}
	sec := findSection(detail, "quality_approval")
	if sec == nil {
		t.Fatal("quality_approval section missing")
	}
	if got := findField(sec, "approved_at"); got == nil || got.Value != "31/01/2024" {
		t.Errorf("approval date = %+v, want 31/01/2024", got)
	}
	if got := findField(sec, "approved"); got == nil || got.Value != "Yes" {
		t.Errorf("approved = %+v, want Yes", got)
	}
}

func TestPalletizingRowsCarryDerivedMetrics(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		PalletizingInstructions: []models.PalletizingInstruction{{
			ID:       3,
			LengthCM: f(10), DepthCM: f(10), HeightCM: f(10),
			UnitsPerNeck: f(2), PlanPackaging: f(5), PalletPlans: f(4),
		}}}
	sec := findSection(newTestPresenter(a).Render(), "palletizing_instructions")
	if sec == nil || len(sec.Rows) != 1 {
		t.Fatal("palletizing section with one row expected")
	}
	row := sec.Rows[0]
	values := map[string]string{}
	for _, fl := range row.Fields {
		values[fl.Key] = fl.Value
	}
	if values["volume"] != "1,00000" {
		t.Errorf("volume = %q, want 1,00000", values["volume"])
	}
	if values["colli_per_pallet"] != "20,00000" {
		t.Errorf("colli_per_pallet = %q, want 20,00000", values["colli_per_pallet"])
	}
	if values["units_per_pallet"] != "40,00000" {
		t.Errorf("units_per_pallet = %q, want 40,00000", values["units_per_pallet"])
	}
	// Raw palletizing measurements render at 5 decimals.
	if values["length"] != "10,00000" {
		t.Errorf("length = %q, want 10,00000", values["length"])
	}
}

func TestPalletizingPartialDimensionsOmitVolume(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		PalletizingInstructions: []models.PalletizingInstruction{{
			ID: 3, LengthCM: f(10), DepthCM: f(10),
		}}}
	sec := findSection(newTestPresenter(a).Render(), "palletizing_instructions")
	for _, fl := range sec.Rows[0].Fields {
		if fl.Key == "volume" {
			t.Errorf("volume line %q must be suppressed with a missing dimension", fl.Value)
		}
	}
}

func TestInstructionDownloadGatedOnAttachment(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		OperatingInstructions: []models.OperatingInstruction{
			{ID: 1, Description: s("startup checklist")},
			{ID: 2, Description: s("die change"), AttachmentFile: s("die_change.pdf")},
		}}
	sec := findSection(newTestPresenter(a).Render(), "operating_instructions")
	if sec == nil || len(sec.Rows) != 2 {
		t.Fatal("operating_instructions with two rows expected")
	}
	hasDownload := func(row Row) bool {
		for _, act := range row.Actions {
			if act.Name == "download" {
				return true
			}
		}
		return false
	}
	if hasDownload(sec.Rows[0]) {
		t.Error("row without an attachment must not offer a download")
	}
	if !hasDownload(sec.Rows[1]) {
		t.Error("row with an attachment must offer a download")
	}
}

func TestOrdersSectionResolvesStatus(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		Orders: []models.ProductionOrder{
			{ID: 1, Number: "PO-1001", Quantity: f(5000), Status: 3},
			{ID: 2, Number: "PO-1002", Status: 42},
		}}
	sec := findSection(newTestPresenter(a).Render(), "orders")
	if sec == nil || len(sec.Rows) != 2 {
		t.Fatal("orders section with two rows expected")
	}
	status := func(row Row) string {
		for _, fl := range row.Fields {
			if fl.Key == "order_status" {
				return fl.Value
			}
		}
		return ""
	}
	if got := status(sec.Rows[0]); got != "In progress" {
		t.Errorf("status = %q, want In progress", got)
	}
	if got := status(sec.Rows[1]); got != "Status 42" {
		t.Errorf("status = %q, want Status 42", got)
	}
}

func TestSectionOrderIsStable(t *testing.T) {
	a := &models.Article{UUID: "u1", CodArticleLAS: "LAS-001",
		LengthCM: f(1),
		Orders:   []models.ProductionOrder{{ID: 1, Number: "PO-1"}},
	}
	detail := newTestPresenter(a).Render()
	if detail.Sections[0].Key != "general" {
		t.Errorf("first section = %q, want general", detail.Sections[0].Key)
	}
	last := detail.Sections[len(detail.Sections)-1]
	if last.Key != "orders" {
		t.Errorf("last section = %q, want orders", last.Key)
	}
}
