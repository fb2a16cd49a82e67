package models

// PackagingInstruction tells the line operator how single units are packed.
// AttachmentFile is the stored filename of an optional PDF/image; downloads
// are only offered when it is set.
type PackagingInstruction struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	ArticleUUID    string  `gorm:"size:36;not null;index" json:"article_uuid"`
	Description    *string `json:"description"`
	AttachmentFile *string `json:"attachment_file"`
}

func (PackagingInstruction) TableName() string { return "packaging_instructions" }

// OperatingInstruction documents a machine/line operating procedure.
type OperatingInstruction struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	ArticleUUID    string  `gorm:"size:36;not null;index" json:"article_uuid"`
	Description    *string `json:"description"`
	AttachmentFile *string `json:"attachment_file"`
}

func (OperatingInstruction) TableName() string { return "operating_instructions" }

// PalletizingInstruction is one physical packaging configuration: carton
// dimensions plus how cartons stack onto a pallet. Every measurement is
// independently optional; derived figures (volume, colli per pallet, units
// per pallet) are computed by the view layer only when all of their inputs
// are present.
type PalletizingInstruction struct {
	ID                    uint     `gorm:"primaryKey" json:"id"`
	ArticleUUID           string   `gorm:"size:36;not null;index" json:"article_uuid"`
	LengthCM              *float64 `gorm:"column:length_cm" json:"length_cm"`
	DepthCM               *float64 `gorm:"column:depth_cm" json:"depth_cm"`
	HeightCM              *float64 `gorm:"column:height_cm" json:"height_cm"`
	UnitsPerNeck          *float64 `json:"units_per_neck"`
	PlanPackaging         *float64 `json:"plan_packaging"`
	PalletPlans           *float64 `json:"pallet_plans"`
	InterlayerEveryFloors *float64 `json:"interlayer_every_floors"`
	AttachmentFile        *string  `json:"attachment_file"`
}

func (PalletizingInstruction) TableName() string { return "palletizing_instructions" }
