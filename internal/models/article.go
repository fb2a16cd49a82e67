package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Approval is one sign-off block on an article. The four blocks
// (production, quality, commercial, client) have independent lifecycles:
// any subset of the fields may be filled at any time.
type Approval struct {
	Approved   *bool      `json:"approved"`
	ApprovedBy *string    `json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`
	Note       *string    `json:"note"`
}

// Article is the root aggregate: a product/packaging specification
// imported from the LAS ERP. Optional numeric fields are pointers on
// purpose: nil means "not yet recorded", which is not the same as zero.
type Article struct {
	UUID          string  `gorm:"primaryKey;size:36" json:"uuid"`
	CodArticleLAS string  `gorm:"column:cod_article_las;uniqueIndex;not null" json:"cod_article_las"`
	Description   *string `json:"description"`
	ClientCode    *string `json:"client_code"`
	Note          *string `json:"note"`
	UnitOfMeasure *string `json:"unit_of_measure"`
	Obsolete      *bool   `json:"obsolete"`

	// Dimensions and weight
	LengthCM      *float64 `gorm:"column:length_cm" json:"length_cm"`
	DepthCM       *float64 `gorm:"column:depth_cm" json:"depth_cm"`
	HeightCM      *float64 `gorm:"column:height_cm" json:"height_cm"`
	NetWeightKG   *float64 `gorm:"column:net_weight_kg" json:"net_weight_kg"`
	GrossWeightKG *float64 `gorm:"column:gross_weight_kg" json:"gross_weight_kg"`

	// Productivity and labels
	AverageProductivity     *float64 `json:"average_productivity"`
	TheoreticalProductivity *float64 `json:"theoretical_productivity"`
	NumLabels               *float64 `json:"num_labels"`
	LabelsPerPackage        *float64 `json:"labels_per_package"`

	// Sign-off blocks
	ProductionApproval Approval `gorm:"embedded;embeddedPrefix:production_" json:"production_approval"`
	QualityApproval    Approval `gorm:"embedded;embeddedPrefix:quality_" json:"quality_approval"`
	CommercialApproval Approval `gorm:"embedded;embeddedPrefix:commercial_" json:"commercial_approval"`
	ClientApproval     Approval `gorm:"embedded;embeddedPrefix:client_" json:"client_approval"`

	// Zero-or-one related records
	OfferID        *uint         `json:"offer_id,omitempty"`
	Offer          *Offer        `gorm:"foreignKey:OfferID" json:"offer,omitempty"`
	CategoryID     *uint         `json:"category_id,omitempty"`
	Category       *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PalletTypeID   *uint         `json:"pallet_type_id,omitempty"`
	PalletType     *PalletType   `gorm:"foreignKey:PalletTypeID" json:"pallet_type,omitempty"`
	PalletSheetID  *uint         `json:"pallet_sheet_id,omitempty"`
	PalletSheet    *PalletSheet  `gorm:"foreignKey:PalletSheetID" json:"pallet_sheet,omitempty"`
	QualityModelID *uint         `json:"quality_model_id,omitempty"`
	QualityModel   *QualityModel `gorm:"foreignKey:QualityModelID" json:"quality_model,omitempty"`

	// Zero-or-more related records, kept in the order the ERP returns them
	Materials               []Material                `gorm:"foreignKey:ArticleUUID" json:"materials,omitempty"`
	Machinery               []Machinery               `gorm:"foreignKey:ArticleUUID" json:"machinery,omitempty"`
	CriticalIssues          []CriticalIssue           `gorm:"foreignKey:ArticleUUID" json:"critical_issues,omitempty"`
	PackagingInstructions   []PackagingInstruction    `gorm:"foreignKey:ArticleUUID" json:"packaging_instructions,omitempty"`
	OperatingInstructions   []OperatingInstruction    `gorm:"foreignKey:ArticleUUID" json:"operating_instructions,omitempty"`
	PalletizingInstructions []PalletizingInstruction  `gorm:"foreignKey:ArticleUUID" json:"palletizing_instructions,omitempty"`
	CheckMaterials          []CheckMaterial           `gorm:"foreignKey:ArticleUUID" json:"check_materials,omitempty"`
	Orders                  []ProductionOrder         `gorm:"foreignKey:ArticleUUID" json:"orders,omitempty"`

	// Last raw payload received from the LAS ERP, kept for auditing
	RawData datatypes.JSON `gorm:"type:jsonb" json:"raw_data,omitempty"`

	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Article) TableName() string { return "articles" }

// BeforeCreate assigns a UUID when none was supplied (local creation path;
// ERP imports carry their own identifier).
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.NewString()
	}
	return nil
}

// Offer is the commercial offer an article was quoted under.
type Offer struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"index;not null" json:"code"`
	Description *string `json:"description"`
}

func (Offer) TableName() string { return "offers" }

// Category groups articles by product family.
type Category struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"index;not null" json:"code"`
	Description *string `json:"description"`
}

func (Category) TableName() string { return "categories" }

// PalletType identifies the physical pallet base (EUR, CHEP, ...).
type PalletType struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"index;not null" json:"code"`
	Description *string `json:"description"`
}

func (PalletType) TableName() string { return "pallet_types" }

// PalletSheet identifies the interlayer/cover sheet used on the pallet.
type PalletSheet struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"index;not null" json:"code"`
	Description *string `json:"description"`
}

func (PalletSheet) TableName() string { return "pallet_sheets" }

// QualityModel points to the quality-control model applied to the article.
type QualityModel struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"index;not null" json:"code"`
	Description *string `json:"description"`
}

func (QualityModel) TableName() string { return "quality_models" }
