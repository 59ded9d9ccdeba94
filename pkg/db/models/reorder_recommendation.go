package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReorderRecommendation is the live replenishment plan for a product at a
// store. The (product, store) pair is unique, so a fresh planning run
// overwrites the previous recommendation in place.
type ReorderRecommendation struct {
	ID                uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID         uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_reorder_product_store"`
	StoreID           uuid.UUID       `gorm:"column:store_id;type:uuid;not null;uniqueIndex:idx_reorder_product_store"`
	CurrentStock      int             `gorm:"column:current_stock;not null"`
	AverageDailySales decimal.Decimal `gorm:"column:average_daily_sales;type:numeric(12,2);not null"`
	SeasonalityFactor decimal.Decimal `gorm:"column:seasonality_factor;type:numeric(6,2);not null"`
	AdjustedSales     decimal.Decimal `gorm:"column:adjusted_sales;type:numeric(12,2);not null"`
	SafetyStock       int             `gorm:"column:safety_stock;not null"`
	ReorderPoint      int             `gorm:"column:reorder_point;not null"`
	LeadTimeDays      int             `gorm:"column:lead_time_days;not null"`
	RecommendedQty    int             `gorm:"column:recommended_qty;not null"`
	Processed         bool            `gorm:"column:processed;not null;default:false"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
