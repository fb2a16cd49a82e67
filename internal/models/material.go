package models

// Material is a raw material consumed by the article. The ERP exposes the
// material code under two different field names depending on the endpoint
// version; the import service normalizes both into Code before the record
// reaches this model.
type Material struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	ArticleUUID   string   `gorm:"size:36;not null;index" json:"article_uuid"`
	Code          string   `gorm:"index;not null" json:"code"`
	Description   *string  `json:"description"`
	Quantity      *float64 `json:"quantity"`
	UnitOfMeasure *string  `json:"unit_of_measure"`
}

func (Material) TableName() string { return "materials" }

// Machinery is a machine assigned to produce the article, with its
// article-specific parameter set.
type Machinery struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	ArticleUUID string               `gorm:"size:36;not null;index" json:"article_uuid"`
	Code        string               `gorm:"index;not null" json:"code"`
	Description *string              `json:"description"`
	Parameters  []MachineryParameter `gorm:"foreignKey:MachineryID" json:"parameters,omitempty"`
}

func (Machinery) TableName() string { return "machinery" }

// MachineryParameter is one named setting for a machine on this article.
type MachineryParameter struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	MachineryID uint    `gorm:"not null;index" json:"machinery_id"`
	Name        string  `gorm:"not null" json:"name"`
	Value       *string `json:"value"`
}

func (MachineryParameter) TableName() string { return "machinery_parameters" }

// CriticalIssue records a known production criticality for the article.
type CriticalIssue struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ArticleUUID string  `gorm:"size:36;not null;index" json:"article_uuid"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Note        *string `gorm:"type:text" json:"note"`
}

func (CriticalIssue) TableName() string { return "critical_issues" }

// CheckMaterial compares the expected material consumption against what was
// effectively consumed for the article.
type CheckMaterial struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	ArticleUUID       string   `gorm:"size:36;not null;index" json:"article_uuid"`
	MaterialCode      string   `gorm:"index;not null" json:"material_code"`
	ExpectedQuantity  *float64 `json:"expected_quantity"`
	EffectiveQuantity *float64 `json:"effective_quantity"`
	UnitOfMeasure     *string  `json:"unit_of_measure"`
}

func (CheckMaterial) TableName() string { return "check_materials" }
