package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryLevel tracks on-hand stock for a product at one store.
// At most one row exists per (product, store) pair.
type InventoryLevel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID    uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_inventory_product_store"`
	StoreID      uuid.UUID `gorm:"column:store_id;type:uuid;not null;uniqueIndex:idx_inventory_product_store"`
	CurrentStock int       `gorm:"column:current_stock;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
