package las

import (
	"github.com/adrirubim/laserpack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MapArticle builds the normalized Article aggregate from one raw ERP
// record. The ERP ships child collections nested inside the article
// record, so one record carries the whole aggregate.
func MapArticle(record map[string]interface{}) *models.Article {
	a := &models.Article{
		UUID:          strField(record, "uuid"),
		CodArticleLAS: strField(record, "cod_article_las"),
		Description:   optString(record, "description"),
		ClientCode:    optString(record, "client_code"),
		Note:          optString(record, "note"),
		UnitOfMeasure: optString(record, "unit_of_measure"),
		Obsolete:      optBool(record, "obsolete"),

		LengthCM:      optFloat(record, "length_cm"),
		DepthCM:       optFloat(record, "depth_cm"),
		HeightCM:      optFloat(record, "height_cm"),
		NetWeightKG:   optFloat(record, "net_weight_kg"),
		GrossWeightKG: optFloat(record, "gross_weight_kg"),

		AverageProductivity:     optFloat(record, "average_productivity"),
		TheoreticalProductivity: optFloat(record, "theoretical_productivity"),
		NumLabels:               optFloat(record, "num_labels"),
		LabelsPerPackage:        optFloat(record, "labels_per_package"),

		ProductionApproval: mapApproval(record, "production"),
		QualityApproval:    mapApproval(record, "quality"),
		CommercialApproval: mapApproval(record, "commercial"),
		ClientApproval:     mapApproval(record, "client"),
	}

	if ref := mapReference(record, "offer"); ref != nil {
		a.Offer = &models.Offer{ID: ref.id, Code: ref.code, Description: ref.description}
		a.OfferID = &ref.id
	}
	if ref := mapReference(record, "category"); ref != nil {
		a.Category = &models.Category{ID: ref.id, Code: ref.code, Description: ref.description}
		a.CategoryID = &ref.id
	}
	if ref := mapReference(record, "pallet_type"); ref != nil {
		a.PalletType = &models.PalletType{ID: ref.id, Code: ref.code, Description: ref.description}
		a.PalletTypeID = &ref.id
	}
	if ref := mapReference(record, "pallet_sheet"); ref != nil {
		a.PalletSheet = &models.PalletSheet{ID: ref.id, Code: ref.code, Description: ref.description}
		a.PalletSheetID = &ref.id
	}
	if ref := mapReference(record, "quality_model"); ref != nil {
		a.QualityModel = &models.QualityModel{ID: ref.id, Code: ref.code, Description: ref.description}
		a.QualityModelID = &ref.id
	}

	for _, child := range childRecords(record, "materials") {
		a.Materials = append(a.Materials, models.Material{
			ArticleUUID:   a.UUID,
			Code:          materialCode(child),
			Description:   optString(child, "description"),
			Quantity:      optFloat(child, "quantity"),
			UnitOfMeasure: optString(child, "unit_of_measure"),
		})
	}

	for _, child := range childRecords(record, "machinery") {
		m := models.Machinery{
			ArticleUUID: a.UUID,
			Code:        strField(child, "code"),
			Description: optString(child, "description"),
		}
		for _, param := range childRecords(child, "parameters") {
			m.Parameters = append(m.Parameters, models.MachineryParameter{
				Name:  strField(param, "name"),
				Value: optString(param, "value"),
			})
		}
		a.Machinery = append(a.Machinery, m)
	}

	for _, child := range childRecords(record, "critical_issues") {
		a.CriticalIssues = append(a.CriticalIssues, models.CriticalIssue{
			ArticleUUID: a.UUID,
			Description: strField(child, "description"),
			Note:        optString(child, "note"),
		})
	}

	for _, child := range childRecords(record, "packaging_instructions") {
		a.PackagingInstructions = append(a.PackagingInstructions, models.PackagingInstruction{
			ArticleUUID:    a.UUID,
			Description:    optString(child, "description"),
			AttachmentFile: optString(child, "attachment_file"),
		})
	}

	for _, child := range childRecords(record, "operating_instructions") {
		a.OperatingInstructions = append(a.OperatingInstructions, models.OperatingInstruction{
			ArticleUUID:    a.UUID,
			Description:    optString(child, "description"),
			AttachmentFile: optString(child, "attachment_file"),
		})
	}

	for _, child := range childRecords(record, "palletizing_instructions") {
		a.PalletizingInstructions = append(a.PalletizingInstructions, models.PalletizingInstruction{
			ArticleUUID:           a.UUID,
			LengthCM:              optFloat(child, "length_cm"),
			DepthCM:               optFloat(child, "depth_cm"),
			HeightCM:              optFloat(child, "height_cm"),
			UnitsPerNeck:          optFloat(child, "units_per_neck"),
			PlanPackaging:         optFloat(child, "plan_packaging"),
			PalletPlans:           optFloat(child, "pallet_plans"),
			InterlayerEveryFloors: optFloat(child, "interlayer_every_floors"),
			AttachmentFile:        optString(child, "attachment_file"),
		})
	}

	for _, child := range childRecords(record, "check_materials") {
		a.CheckMaterials = append(a.CheckMaterials, models.CheckMaterial{
			ArticleUUID:       a.UUID,
			MaterialCode:      materialCode(child),
			ExpectedQuantity:  optFloat(child, "expected_quantity"),
			EffectiveQuantity: optFloat(child, "effective_quantity"),
			UnitOfMeasure:     optString(child, "unit_of_measure"),
		})
	}

	for _, child := range childRecords(record, "orders") {
		a.Orders = append(a.Orders, models.ProductionOrder{
			ArticleUUID:    a.UUID,
			Number:         strField(child, "number"),
			Quantity:       optFloat(child, "quantity"),
			WorkedQuantity: optFloat(child, "worked_quantity"),
			Status:         intField(child, "status"),
		})
	}

	return a
}

func mapApproval(record map[string]interface{}, prefix string) models.Approval {
	return models.Approval{
		Approved:   optBool(record, prefix+"_approved"),
		ApprovedBy: optString(record, prefix+"_approved_by"),
		ApprovedAt: optDate(record, prefix+"_approved_at"),
		Note:       optString(record, prefix+"_note"),
	}
}

type reference struct {
	id          uint
	code        string
	description *string
}

// mapReference extracts a nested {id, code, description} record; a
// missing or id-less nested record means no reference.
func mapReference(record map[string]interface{}, field string) *reference {
	raw, ok := record[field]
	if !ok || raw == nil {
		return nil
	}
	nested, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	id := intField(nested, "id")
	if id <= 0 {
		return nil
	}
	return &reference{
		id:          uint(id),
		code:        strField(nested, "code"),
		description: optString(nested, "description"),
	}
}

// childRecords extracts a nested collection; absent and empty are the
// same thing here.
func childRecords(record map[string]interface{}, field string) []map[string]interface{} {
	raw, ok := record[field]
	if !ok || raw == nil {
		return nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// upsertReferences stores the nested reference records the article points
// at. They carry the ERP's own ids, so the same offer shared by many
// articles collapses into one row.
func upsertReferences(tx *gorm.DB, a *models.Article) error {
	refs := []interface{}{}
	if a.Offer != nil {
		refs = append(refs, a.Offer)
	}
	if a.Category != nil {
		refs = append(refs, a.Category)
	}
	if a.PalletType != nil {
		refs = append(refs, a.PalletType)
	}
	if a.PalletSheet != nil {
		refs = append(refs, a.PalletSheet)
	}
	if a.QualityModel != nil {
		refs = append(refs, a.QualityModel)
	}
	for _, ref := range refs {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(ref).Error; err != nil {
			return err
		}
	}
	return nil
}

// replaceChildren swaps the stored child collections for the aggregate's
// current ones. ERP order is preserved; rows are replaced wholesale since
// the ERP does not expose stable child identifiers.
func replaceChildren(tx *gorm.DB, a *models.Article) error {
	for _, model := range []interface{}{
		&models.Material{}, &models.CriticalIssue{},
		&models.PackagingInstruction{}, &models.OperatingInstruction{},
		&models.PalletizingInstruction{}, &models.CheckMaterial{},
		&models.ProductionOrder{},
	} {
		if err := tx.Where("article_uuid = ?", a.UUID).Delete(model).Error; err != nil {
			return err
		}
	}
	var machineryIDs []uint
	if err := tx.Model(&models.Machinery{}).Where("article_uuid = ?", a.UUID).Pluck("id", &machineryIDs).Error; err != nil {
		return err
	}
	if len(machineryIDs) > 0 {
		if err := tx.Where("machinery_id IN ?", machineryIDs).Delete(&models.MachineryParameter{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("article_uuid = ?", a.UUID).Delete(&models.Machinery{}).Error; err != nil {
		return err
	}

	for i := range a.Materials {
		a.Materials[i].ID = 0
	}
	for i := range a.Machinery {
		a.Machinery[i].ID = 0
		for j := range a.Machinery[i].Parameters {
			a.Machinery[i].Parameters[j].ID = 0
			a.Machinery[i].Parameters[j].MachineryID = 0
		}
	}
	for i := range a.CriticalIssues {
		a.CriticalIssues[i].ID = 0
	}
	for i := range a.PackagingInstructions {
		a.PackagingInstructions[i].ID = 0
	}
	for i := range a.OperatingInstructions {
		a.OperatingInstructions[i].ID = 0
	}
	for i := range a.PalletizingInstructions {
		a.PalletizingInstructions[i].ID = 0
	}
	for i := range a.CheckMaterials {
		a.CheckMaterials[i].ID = 0
	}
	for i := range a.Orders {
		a.Orders[i].ID = 0
	}

	if len(a.Materials) > 0 {
		if err := tx.Create(&a.Materials).Error; err != nil {
			return err
		}
	}
	if len(a.Machinery) > 0 {
		if err := tx.Create(&a.Machinery).Error; err != nil {
			return err
		}
	}
	if len(a.CriticalIssues) > 0 {
		if err := tx.Create(&a.CriticalIssues).Error; err != nil {
			return err
		}
	}
	if len(a.PackagingInstructions) > 0 {
		if err := tx.Create(&a.PackagingInstructions).Error; err != nil {
			return err
		}
	}
	if len(a.OperatingInstructions) > 0 {
		if err := tx.Create(&a.OperatingInstructions).Error; err != nil {
			return err
		}
	}
	if len(a.PalletizingInstructions) > 0 {
		if err := tx.Create(&a.PalletizingInstructions).Error; err != nil {
			return err
		}
	}
	if len(a.CheckMaterials) > 0 {
		if err := tx.Create(&a.CheckMaterials).Error; err != nil {
			return err
		}
	}
	if len(a.Orders) > 0 {
		if err := tx.Create(&a.Orders).Error; err != nil {
			return err
		}
	}
	return nil
}
