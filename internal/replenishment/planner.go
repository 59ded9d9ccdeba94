package replenishment

import (
	"github.com/dsanchezmx/shelfstock-backend/internal/inventory"
	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanInput is everything the planner needs to evaluate one (product, store)
// pair: the catalog entry, the on-hand stock, and the sales window.
type PlanInput struct {
	Product      models.Product
	StoreID      uuid.UUID
	CurrentStock int
	Transactions []models.SalesTransaction
}

// Planner turns demand history into reorder recommendations.
type Planner struct {
	cfg config.ReplenishmentConfig
}

// NewPlanner builds a planner with the provided tuning.
func NewPlanner(cfg config.ReplenishmentConfig) *Planner {
	return &Planner{cfg: cfg}
}

// Plan evaluates one pair. A nil result means no reorder is needed; it is
// never an error.
func (p *Planner) Plan(input PlanInput) *models.ReorderRecommendation {
	min := input.Product.MinStorageQty
	belowMin := min != nil && input.CurrentStock <= *min

	if len(input.Transactions) == 0 {
		if input.CurrentStock == 0 || belowMin {
			return p.basicRecommendation(input)
		}
		return nil
	}

	forecast := BuildForecast(input.Transactions, p.cfg.WindowDays, p.cfg)

	safetyStock := int(forecast.AdjustedSales.Mul(decimal.NewFromInt(int64(p.cfg.SafetyStockDays))).IntPart())
	reorderPoint := int(forecast.AdjustedSales.Mul(decimal.NewFromInt(int64(p.cfg.LeadTimeDays))).IntPart()) + safetyStock
	reorderQty := reorderPoint - input.CurrentStock

	if reorderQty <= 0 {
		if input.CurrentStock <= p.cfg.LowStockThreshold || belowMin {
			return p.basicRecommendation(input)
		}
		return nil
	}

	qty := roundUpToMultiple(reorderQty, p.cfg.RoundingUnit)
	if input.Product.MaxStorageQty != nil {
		if room := *input.Product.MaxStorageQty - input.CurrentStock; qty > room {
			qty = room
		}
	}
	if qty <= 0 {
		return nil
	}

	return &models.ReorderRecommendation{
		ProductID:         input.Product.ID,
		StoreID:           input.StoreID,
		CurrentStock:      input.CurrentStock,
		AverageDailySales: forecast.AverageDailySales,
		SeasonalityFactor: forecast.SeasonalityFactor,
		AdjustedSales:     forecast.AdjustedSales,
		SafetyStock:       safetyStock,
		ReorderPoint:      reorderPoint,
		LeadTimeDays:      p.cfg.LeadTimeDays,
		RecommendedQty:    qty,
		Processed:         false,
	}
}

// basicRecommendation covers the no-history and critical-low-stock cases,
// where there is no demand signal to forecast from. Storage bounds fall back
// to configured defaults and the demand fields are placeholders.
func (p *Planner) basicRecommendation(input PlanInput) *models.ReorderRecommendation {
	minStock := p.cfg.DefaultMinStock
	if input.Product.MinStorageQty != nil {
		minStock = *input.Product.MinStorageQty
	}
	maxStock := p.cfg.DefaultMaxStock
	if input.Product.MaxStorageQty != nil {
		maxStock = *input.Product.MaxStorageQty
	}

	targetStock := inventory.CalculateTargetStock(&maxStock, &minStock)
	reorderQty := targetStock - input.CurrentStock
	if reorderQty < minStock {
		reorderQty = minStock
	}
	qty := roundUpToMultiple(reorderQty, p.cfg.BasicRoundingUnit)
	if input.Product.MaxStorageQty != nil {
		if room := *input.Product.MaxStorageQty - input.CurrentStock; qty > room {
			qty = room
		}
	}
	if qty <= 0 {
		return nil
	}

	one := decimal.NewFromInt(1)
	return &models.ReorderRecommendation{
		ProductID:         input.Product.ID,
		StoreID:           input.StoreID,
		CurrentStock:      input.CurrentStock,
		AverageDailySales: one,
		SeasonalityFactor: one,
		AdjustedSales:     one,
		SafetyStock:       minStock,
		ReorderPoint:      minStock * 2,
		LeadTimeDays:      p.cfg.LeadTimeDays,
		RecommendedQty:    qty,
		Processed:         false,
	}
}

func roundUpToMultiple(value, unit int) int {
	if unit <= 1 {
		return value
	}
	return ((value + unit - 1) / unit) * unit
}
