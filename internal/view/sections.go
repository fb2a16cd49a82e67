package view

import (
	"github.com/adrirubim/laserpack/internal/models"
)

// Field is one rendered label/value line.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Action is a named link the operator can follow from a section or row.
type Action struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Row is one record of a collection-backed section.
type Row struct {
	Fields  []Field  `json:"fields"`
	Actions []Action `json:"actions,omitempty"`
}

// Section is one independently-shown block of the detail page. A section
// that would be empty is omitted from the view model entirely, heading
// included.
type Section struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields,omitempty"`
	Rows   []Row   `json:"rows,omitempty"`
}

// present reports whether an optional value was recorded. Falsy-but-present
// values (0, "", false) still display; only nil suppresses a line.
func present[T any](v *T) bool { return v != nil }

// anyPresent gates a compound section: it is shown when at least one of
// its constituent fields is present.
func anyPresent(flags ...bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}

// sections assembles every visible section in display order. An empty
// collection hides its section the same way a missing one does; whether
// the relation was empty or simply not loaded is not distinguishable here.
func (p *Presenter) sections() []Section {
	a := p.article
	out := make([]Section, 0, 21)

	out = append(out, p.generalSection())

	if a.Offer != nil {
		out = append(out, p.refSection("offer", a.Offer.Code, a.Offer.Description))
	}
	if a.Category != nil {
		out = append(out, p.refSection("category", a.Category.Code, a.Category.Description))
	}
	if a.PalletType != nil {
		out = append(out, p.refSection("pallet_type", a.PalletType.Code, a.PalletType.Description))
	}
	if a.PalletSheet != nil {
		out = append(out, p.refSection("pallet_sheet", a.PalletSheet.Code, a.PalletSheet.Description))
	}
	if a.QualityModel != nil {
		out = append(out, p.refSection("quality_model", a.QualityModel.Code, a.QualityModel.Description))
	}

	if s, ok := p.dimensionsSection(); ok {
		out = append(out, s)
	}
	if s, ok := p.productivitySection(); ok {
		out = append(out, s)
	}
	if s, ok := p.labelsSection(); ok {
		out = append(out, s)
	}

	if s, ok := p.approvalSection("production_approval", a.ProductionApproval); ok {
		out = append(out, s)
	}
	if s, ok := p.approvalSection("quality_approval", a.QualityApproval); ok {
		out = append(out, s)
	}
	if s, ok := p.approvalSection("commercial_approval", a.CommercialApproval); ok {
		out = append(out, s)
	}
	if s, ok := p.approvalSection("client_approval", a.ClientApproval); ok {
		out = append(out, s)
	}

	if len(a.Materials) > 0 {
		out = append(out, p.materialsSection())
	}
	if len(a.Machinery) > 0 {
		out = append(out, p.machinerySection())
	}
	if len(a.CriticalIssues) > 0 {
		out = append(out, p.criticalIssuesSection())
	}
	if len(a.PackagingInstructions) > 0 {
		out = append(out, p.packagingSection())
	}
	if len(a.OperatingInstructions) > 0 {
		out = append(out, p.operatingSection())
	}
	if len(a.PalletizingInstructions) > 0 {
		out = append(out, p.palletizingSection())
	}
	if len(a.CheckMaterials) > 0 {
		out = append(out, p.checkMaterialsSection())
	}
	if len(a.Orders) > 0 {
		out = append(out, p.ordersSection())
	}

	return out
}

func (p *Presenter) section(key string) Section {
	return Section{Key: key, Title: p.tr("article.section."+key, nil)}
}

func (p *Presenter) field(key, value string) Field {
	return Field{Key: key, Label: p.tr("article.field."+key, nil), Value: value}
}

// appendField adds a line only when the value was recorded.
func (p *Presenter) appendField(fields []Field, key string, value *string) []Field {
	if !present(value) {
		return fields
	}
	return append(fields, p.field(key, *value))
}

// appendDecimal adds a numeric line only when the value was recorded.
func (p *Presenter) appendDecimal(fields []Field, key string, value *float64, decimals int) []Field {
	if !present(value) {
		return fields
	}
	return append(fields, p.field(key, Decimal(value, decimals)))
}

func (p *Presenter) boolLabel(v bool) string {
	if v {
		return p.tr("common.yes", nil)
	}
	return p.tr("common.no", nil)
}

func (p *Presenter) generalSection() Section {
	a := p.article
	s := p.section("general")
	s.Fields = append(s.Fields, p.field("code", a.CodArticleLAS))
	s.Fields = p.appendField(s.Fields, "description", a.Description)
	s.Fields = p.appendField(s.Fields, "client_code", a.ClientCode)
	s.Fields = p.appendField(s.Fields, "unit_of_measure", a.UnitOfMeasure)
	if present(a.Obsolete) {
		s.Fields = append(s.Fields, p.field("obsolete", p.boolLabel(*a.Obsolete)))
	}
	s.Fields = p.appendField(s.Fields, "note", a.Note)
	return s
}

func (p *Presenter) refSection(key, code string, description *string) Section {
	s := p.section(key)
	s.Fields = append(s.Fields, p.field("code", code))
	s.Fields = p.appendField(s.Fields, "description", description)
	return s
}

// dimensionsSection shows plain length/depth/height at 2 decimals while
// the weights keep the 5-decimal precision used everywhere else. The
// split matches the paper forms the operators compare against.
func (p *Presenter) dimensionsSection() (Section, bool) {
	a := p.article
	if !anyPresent(
		present(a.LengthCM), present(a.DepthCM), present(a.HeightCM),
		present(a.NetWeightKG), present(a.GrossWeightKG),
	) {
		return Section{}, false
	}
	s := p.section("dimensions_weight")
	s.Fields = p.appendDecimal(s.Fields, "length", a.LengthCM, 2)
	s.Fields = p.appendDecimal(s.Fields, "depth", a.DepthCM, 2)
	s.Fields = p.appendDecimal(s.Fields, "height", a.HeightCM, 2)
	s.Fields = p.appendDecimal(s.Fields, "net_weight", a.NetWeightKG, 5)
	s.Fields = p.appendDecimal(s.Fields, "gross_weight", a.GrossWeightKG, 5)
	return s, true
}

func (p *Presenter) productivitySection() (Section, bool) {
	a := p.article
	if !anyPresent(present(a.AverageProductivity), present(a.TheoreticalProductivity)) {
		return Section{}, false
	}
	s := p.section("productivity")
	s.Fields = p.appendDecimal(s.Fields, "average_productivity", a.AverageProductivity, 5)
	s.Fields = p.appendDecimal(s.Fields, "theoretical_productivity", a.TheoreticalProductivity, 5)
	return s, true
}

func (p *Presenter) labelsSection() (Section, bool) {
	a := p.article
	if !anyPresent(present(a.NumLabels), present(a.LabelsPerPackage)) {
		return Section{}, false
	}
	s := p.section("labels")
	s.Fields = p.appendDecimal(s.Fields, "num_labels", a.NumLabels, 2)
	s.Fields = p.appendDecimal(s.Fields, "labels_per_package", a.LabelsPerPackage, 2)
	return s, true
}

func (p *Presenter) approvalSection(key string, ap models.Approval) (Section, bool) {
	if !anyPresent(
		present(ap.Approved), present(ap.ApprovedBy),
		present(ap.ApprovedAt), present(ap.Note),
	) {
		return Section{}, false
	}
	s := p.section(key)
	if present(ap.Approved) {
		s.Fields = append(s.Fields, p.field("approved", p.boolLabel(*ap.Approved)))
	}
	s.Fields = p.appendField(s.Fields, "approved_by", ap.ApprovedBy)
	if present(ap.ApprovedAt) {
		s.Fields = append(s.Fields, p.field("approved_at", Date(ap.ApprovedAt)))
	}
	s.Fields = p.appendField(s.Fields, "note", ap.Note)
	return s, true
}

func (p *Presenter) materialsSection() Section {
	s := p.section("materials")
	for _, m := range p.article.Materials {
		var fields []Field
		fields = append(fields, p.field("material_code", m.Code))
		fields = p.appendField(fields, "description", m.Description)
		fields = p.appendDecimal(fields, "quantity", m.Quantity, 2)
		fields = p.appendField(fields, "unit_of_measure", m.UnitOfMeasure)
		s.Rows = append(s.Rows, Row{Fields: fields})
	}
	return s
}

func (p *Presenter) machinerySection() Section {
	s := p.section("machinery")
	for _, m := range p.article.Machinery {
		var fields []Field
		fields = append(fields, p.field("code", m.Code))
		fields = p.appendField(fields, "description", m.Description)
		for _, param := range m.Parameters {
			if !present(param.Value) {
				continue
			}
			fields = append(fields, Field{Key: "parameter", Label: param.Name, Value: *param.Value})
		}
		s.Rows = append(s.Rows, Row{Fields: fields})
	}
	return s
}

func (p *Presenter) criticalIssuesSection() Section {
	s := p.section("critical_issues")
	for _, issue := range p.article.CriticalIssues {
		fields := []Field{p.field("description", issue.Description)}
		fields = p.appendField(fields, "note", issue.Note)
		s.Rows = append(s.Rows, Row{Fields: fields})
	}
	return s
}

func (p *Presenter) packagingSection() Section {
	s := p.section("packaging_instructions")
	for _, in := range p.article.PackagingInstructions {
		var fields []Field
		fields = p.appendField(fields, "description", in.Description)
		s.Rows = append(s.Rows, Row{
			Fields:  fields,
			Actions: p.instructionActions(KindPackaging, in.ID, in.AttachmentFile),
		})
	}
	return s
}

func (p *Presenter) operatingSection() Section {
	s := p.section("operating_instructions")
	for _, in := range p.article.OperatingInstructions {
		var fields []Field
		fields = p.appendField(fields, "description", in.Description)
		s.Rows = append(s.Rows, Row{
			Fields:  fields,
			Actions: p.instructionActions(KindOperating, in.ID, in.AttachmentFile),
		})
	}
	return s
}

// palletizingSection renders the raw measurements and the derived
// logistics figures, all at 5 decimals.
func (p *Presenter) palletizingSection() Section {
	s := p.section("palletizing_instructions")
	for _, in := range p.article.PalletizingInstructions {
		var fields []Field
		fields = p.appendDecimal(fields, "length", in.LengthCM, 5)
		fields = p.appendDecimal(fields, "depth", in.DepthCM, 5)
		fields = p.appendDecimal(fields, "height", in.HeightCM, 5)
		fields = p.appendDecimal(fields, "units_per_neck", in.UnitsPerNeck, 5)
		fields = p.appendDecimal(fields, "plan_packaging", in.PlanPackaging, 5)
		fields = p.appendDecimal(fields, "pallet_plans", in.PalletPlans, 5)
		fields = p.appendDecimal(fields, "interlayer_every_floors", in.InterlayerEveryFloors, 5)

		m := Derive(in)
		fields = p.appendDecimal(fields, "volume", m.Volume, 5)
		fields = p.appendDecimal(fields, "colli_per_pallet", m.ColliPerPallet, 5)
		fields = p.appendDecimal(fields, "units_per_pallet", m.UnitsPerPallet, 5)

		s.Rows = append(s.Rows, Row{
			Fields:  fields,
			Actions: p.instructionActions(KindPalletizing, in.ID, in.AttachmentFile),
		})
	}
	return s
}

func (p *Presenter) checkMaterialsSection() Section {
	s := p.section("check_materials")
	for _, cm := range p.article.CheckMaterials {
		fields := []Field{p.field("material_code", cm.MaterialCode)}
		fields = p.appendDecimal(fields, "expected_quantity", cm.ExpectedQuantity, 2)
		fields = p.appendDecimal(fields, "effective_quantity", cm.EffectiveQuantity, 2)
		fields = p.appendField(fields, "unit_of_measure", cm.UnitOfMeasure)
		s.Rows = append(s.Rows, Row{Fields: fields})
	}
	return s
}

func (p *Presenter) ordersSection() Section {
	s := p.section("orders")
	labels := StatusLabels(p.tr)
	for _, o := range p.article.Orders {
		fields := []Field{p.field("order_number", o.Number)}
		fields = p.appendDecimal(fields, "quantity", o.Quantity, 2)
		fields = p.appendDecimal(fields, "worked_quantity", o.WorkedQuantity, 2)
		fields = append(fields, p.field("order_status", StatusLabel(o.Status, labels)))
		s.Rows = append(s.Rows, Row{Fields: fields})
	}
	return s
}
