package replenishment

import (
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecommendationDTO is the API-facing view of a reorder recommendation.
type RecommendationDTO struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"productId"`
	StoreID           uuid.UUID       `json:"storeId"`
	CurrentStock      int             `json:"currentStock"`
	AverageDailySales decimal.Decimal `json:"averageDailySales"`
	SeasonalityFactor decimal.Decimal `json:"seasonalityFactor"`
	AdjustedSales     decimal.Decimal `json:"adjustedSales"`
	SafetyStock       int             `json:"safetyStock"`
	ReorderPoint      int             `json:"reorderPoint"`
	LeadTimeDays      int             `json:"leadTimeDays"`
	RecommendedQty    int             `json:"recommendedQty"`
	Processed         bool            `json:"processed"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// FromModel maps a persistence row to the DTO.
func FromModel(rec *models.ReorderRecommendation) *RecommendationDTO {
	if rec == nil {
		return nil
	}
	return &RecommendationDTO{
		ID:                rec.ID,
		ProductID:         rec.ProductID,
		StoreID:           rec.StoreID,
		CurrentStock:      rec.CurrentStock,
		AverageDailySales: rec.AverageDailySales,
		SeasonalityFactor: rec.SeasonalityFactor,
		AdjustedSales:     rec.AdjustedSales,
		SafetyStock:       rec.SafetyStock,
		ReorderPoint:      rec.ReorderPoint,
		LeadTimeDays:      rec.LeadTimeDays,
		RecommendedQty:    rec.RecommendedQty,
		Processed:         rec.Processed,
		UpdatedAt:         rec.UpdatedAt,
	}
}
