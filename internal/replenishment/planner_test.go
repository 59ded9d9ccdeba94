package replenishment

import (
	"testing"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

func planInput(product models.Product, stock int, txs []models.SalesTransaction) PlanInput {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return PlanInput{
		Product:      product,
		StoreID:      uuid.New(),
		CurrentStock: stock,
		Transactions: txs,
	}
}

func TestPlanNoHistoryZeroStockProducesBasic(t *testing.T) {
	planner := NewPlanner(defaultPlanningConfig())

	rec := planner.Plan(planInput(models.Product{}, 0, nil))
	if rec == nil {
		t.Fatal("expected basic recommendation")
	}
	// Defaults: min 10, max 100 -> target min(50, 30) = 30; qty max(30, 10) = 30.
	if rec.RecommendedQty != 30 {
		t.Fatalf("qty = %d, want 30", rec.RecommendedQty)
	}
	if rec.SafetyStock != 10 || rec.ReorderPoint != 20 {
		t.Fatalf("safety/reorder = %d/%d, want 10/20", rec.SafetyStock, rec.ReorderPoint)
	}
	one := decimal.NewFromInt(1)
	if !rec.AverageDailySales.Equal(one) || !rec.SeasonalityFactor.Equal(one) || !rec.AdjustedSales.Equal(one) {
		t.Fatalf("expected placeholder demand fields, got %s/%s/%s",
			rec.AverageDailySales, rec.SeasonalityFactor, rec.AdjustedSales)
	}
	if rec.Processed {
		t.Fatal("recommendations must start unprocessed")
	}
}

func TestPlanNoHistoryBelowMinStockProducesBasic(t *testing.T) {
	planner := NewPlanner(defaultPlanningConfig())

	rec := planner.Plan(planInput(models.Product{MinStorageQty: intPtr(10)}, 8, nil))
	if rec == nil {
		t.Fatal("expected basic recommendation")
	}
	// target min(50, 30) = 30; 30-8 = 22 -> max(22, 10) = 22 -> rounds to 25.
	if rec.RecommendedQty != 25 {
		t.Fatalf("qty = %d, want 25", rec.RecommendedQty)
	}
}

func TestPlanNoHistoryHealthyStockProducesNothing(t *testing.T) {
	planner := NewPlanner(defaultPlanningConfig())

	if rec := planner.Plan(planInput(models.Product{}, 50, nil)); rec != nil {
		t.Fatalf("expected no recommendation, got %+v", rec)
	}
}

func TestPlanFullRecommendationFromHistory(t *testing.T) {
	planner := NewPlanner(defaultPlanningConfig())

	rec := planner.Plan(planInput(models.Product{}, 100, txsWithMix(20, 10, 10)))
	if rec == nil {
		t.Fatal("expected recommendation")
	}
	// adjusted 42.90: safety floor(85.80)=85, reorder floor(300.30)+85=385.
	if rec.SafetyStock != 85 {
		t.Fatalf("safety = %d, want 85", rec.SafetyStock)
	}
	if rec.ReorderPoint != 385 {
		t.Fatalf("reorder point = %d, want 385", rec.ReorderPoint)
	}
	// 385-100 = 285 -> rounds up to 290.
	if rec.RecommendedQty != 290 {
		t.Fatalf("qty = %d, want 290", rec.RecommendedQty)
	}
	if rec.LeadTimeDays != 7 {
		t.Fatalf("lead time = %d, want 7", rec.LeadTimeDays)
	}
	if rec.Processed {
		t.Fatal("recommendations must start unprocessed")
	}
}

func TestPlanClampsToMaxStorage(t *testing.T) {
	planner := NewPlanner(defaultPlanningConfig())

	rec := planner.Plan(planInput(models.Product{MaxStorageQty: intPtr(120)}, 100, txsWithMix(20, 10, 10)))
	if rec == nil {
		t.Fatal("expected recommendation")
	}
	if rec.RecommendedQty != 20 {
		t.Fatalf("qty = %d, want clamp to 20", rec.RecommendedQty)
	}
}

func TestPlanFullStorageProducesNothing(t *testing.T) {
	planner := NewPlanner(defaultPlanningConfig())

	if rec := planner.Plan(planInput(models.Product{MaxStorageQty: intPtr(100)}, 100, txsWithMix(20, 10, 10))); rec != nil {
		t.Fatalf("expected no recommendation when storage is full, got %+v", rec)
	}
}

func TestPlanStockAboveReorderPointProducesNothing(t *testing.T) {
	planner := NewPlanner(defaultPlanningConfig())

	if rec := planner.Plan(planInput(models.Product{}, 500, txsWithMix(20, 10, 10))); rec != nil {
		t.Fatalf("expected no recommendation, got %+v", rec)
	}
}

func TestPlanCriticalLowStockFallsBackToBasic(t *testing.T) {
	planner := NewPlanner(defaultPlanningConfig())

	// One small sale: adjusted demand rounds near zero, so reorderQty <= 0,
	// but stock at the low-stock threshold still forces a basic reorder.
	rec := planner.Plan(planInput(models.Product{}, 5, txsWithMix(1, 0, 1)))
	if rec == nil {
		t.Fatal("expected basic recommendation")
	}
	// target min(50, 30) = 30; 30-5 = 25 -> max(25, 10) = 25 -> already a multiple of 5.
	if rec.RecommendedQty != 25 {
		t.Fatalf("qty = %d, want 25", rec.RecommendedQty)
	}
	one := decimal.NewFromInt(1)
	if !rec.AdjustedSales.Equal(one) {
		t.Fatalf("expected placeholder adjusted sales, got %s", rec.AdjustedSales)
	}
}

func TestRoundUpToMultiple(t *testing.T) {
	cases := []struct{ value, unit, want int }{
		{1, 10, 10},
		{10, 10, 10},
		{11, 10, 20},
		{285, 10, 290},
		{22, 5, 25},
		{7, 1, 7},
	}
	for _, tc := range cases {
		if got := roundUpToMultiple(tc.value, tc.unit); got != tc.want {
			t.Fatalf("roundUpToMultiple(%d, %d) = %d, want %d", tc.value, tc.unit, got, tc.want)
		}
	}
}
