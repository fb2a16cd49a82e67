package models

// Production order status codes as used by the LAS ERP. The set is not
// closed: the ERP occasionally introduces new codes, so anything outside
// this range is displayed through a generic fallback label rather than
// rejected.
const (
	OrderStatusPlanned    = 0
	OrderStatusSetup      = 1
	OrderStatusLaunched   = 2
	OrderStatusInProgress = 3
	OrderStatusSuspended  = 4
	OrderStatusCompleted  = 5
)

// ProductionOrder is a production order referencing the article.
type ProductionOrder struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	ArticleUUID    string   `gorm:"size:36;not null;index" json:"article_uuid"`
	Number         string   `gorm:"index;not null" json:"number"`
	Quantity       *float64 `json:"quantity"`
	WorkedQuantity *float64 `json:"worked_quantity"`
	Status         int      `gorm:"not null;default:0" json:"status"`
}

func (ProductionOrder) TableName() string { return "production_orders" }
