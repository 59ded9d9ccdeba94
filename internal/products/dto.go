package products

import (
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the API-facing view of a catalog entry.
type ProductDTO struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	MinStorageQty *int            `json:"minStorageQty,omitempty"`
	MaxStorageQty *int            `json:"maxStorageQty,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// FromModel maps a persistence row to the DTO.
func FromModel(product *models.Product) *ProductDTO {
	if product == nil {
		return nil
	}
	return &ProductDTO{
		ID:            product.ID,
		Name:          product.Name,
		SKU:           product.SKU,
		Category:      product.Category,
		UnitPrice:     product.UnitPrice,
		MinStorageQty: product.MinStorageQty,
		MaxStorageQty: product.MaxStorageQty,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
	}
}
