package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesTransaction is an append-only record of a completed sale.
type SalesTransaction struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID     uuid.UUID       `gorm:"column:product_id;type:uuid;not null;index:idx_sales_product_store"`
	StoreID       uuid.UUID       `gorm:"column:store_id;type:uuid;not null;index:idx_sales_product_store"`
	Quantity      int             `gorm:"column:quantity;not null"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:numeric(14,2);not null"`
	TransactionAt time.Time       `gorm:"column:transaction_at;not null;index"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}
