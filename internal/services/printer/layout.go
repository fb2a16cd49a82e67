package printer

import (
	"bytes"
	"fmt"

	"github.com/adrirubim/laserpack/internal/i18n"
	"github.com/adrirubim/laserpack/internal/models"
	"github.com/adrirubim/laserpack/internal/view"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GenerateLineLayoutPDF renders the article's line-layout sheet: the
// one-page summary hung at the production line, with a QR of the article
// code so handhelds can jump straight to the detail page. Values follow
// the same formatting contract as the detail view (comma decimals,
// 5-digit derived figures).
func GenerateLineLayoutPDF(a *models.Article, tr i18n.Translator) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, a.CodArticleLAS, "", 1, "L", false, 0, "")
	if a.Description != nil {
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 8, *a.Description, "", 1, "L", false, 0, "")
	}

	// QR code pointing handhelds at the article
	qrPng, err := qrcode.Encode(a.CodArticleLAS, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("article_qr", opts, bytes.NewReader(qrPng))
	pdf.ImageOptions("article_qr", 165, 12, 30, 30, false, opts, 0, "")
	pdf.Ln(6)

	line := func(labelKey, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(70, 7, tr("article.field."+labelKey, nil), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	heading := func(key string) {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr("article.section."+key, nil), "B", 1, "L", false, 0, "")
	}

	// Dimensions block mirrors the detail page: plain dimensions at 2
	// decimals, weights at 5.
	heading("dimensions_weight")
	line("length", view.Decimal(a.LengthCM, 2))
	line("depth", view.Decimal(a.DepthCM, 2))
	line("height", view.Decimal(a.HeightCM, 2))
	line("net_weight", view.Decimal(a.NetWeightKG, 5))
	line("gross_weight", view.Decimal(a.GrossWeightKG, 5))

	if len(a.PalletizingInstructions) > 0 {
		heading("palletizing_instructions")
		for i, pi := range a.PalletizingInstructions {
			if i > 0 {
				pdf.Ln(2)
			}
			line("length", view.Decimal(pi.LengthCM, 5))
			line("depth", view.Decimal(pi.DepthCM, 5))
			line("height", view.Decimal(pi.HeightCM, 5))
			line("units_per_neck", view.Decimal(pi.UnitsPerNeck, 5))
			line("plan_packaging", view.Decimal(pi.PlanPackaging, 5))
			line("pallet_plans", view.Decimal(pi.PalletPlans, 5))

			m := view.Derive(pi)
			line("volume", view.Decimal(m.Volume, 5))
			line("colli_per_pallet", view.Decimal(m.ColliPerPallet, 5))
			line("units_per_pallet", view.Decimal(m.UnitsPerPallet, 5))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
