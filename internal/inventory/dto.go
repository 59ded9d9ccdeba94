package inventory

import (
	"time"

	"github.com/google/uuid"
)

// LevelDTO is the API-facing view of one inventory row, enriched with the
// product it tracks.
type LevelDTO struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	ProductSKU   string    `json:"productSku"`
	StoreID      uuid.UUID `json:"storeId"`
	CurrentStock int       `json:"currentStock"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
