package replenishment

import (
	"testing"
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

func defaultPlanningConfig() config.ReplenishmentConfig {
	return config.ReplenishmentConfig{
		WindowDays:        30,
		SafetyStockDays:   2,
		LeadTimeDays:      7,
		RoundingUnit:      10,
		BasicRoundingUnit: 5,
		LowStockThreshold: 5,
		DefaultMinStock:   10,
		DefaultMaxStock:   100,
		WeekdayMultiplier: 0.8,
		WeekendMultiplier: 1.4,
		MinSeasonality:    0.1,
	}
}

var (
	// 2026-02-02 is a Monday, 2026-02-07 a Saturday.
	someMonday   = time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	someSaturday = time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC)
)

func txsWithMix(weekday, weekend, qtyEach int) []models.SalesTransaction {
	out := make([]models.SalesTransaction, 0, weekday+weekend)
	for i := 0; i < weekday; i++ {
		out = append(out, models.SalesTransaction{Quantity: qtyEach, TransactionAt: someMonday})
	}
	for i := 0; i < weekend; i++ {
		out = append(out, models.SalesTransaction{Quantity: qtyEach, TransactionAt: someSaturday})
	}
	return out
}

func TestBuildForecastThirtyDayMix(t *testing.T) {
	// 20 weekday + 10 weekend transactions, 10 units each: total 300.
	forecast := BuildForecast(txsWithMix(20, 10, 10), 30, defaultPlanningConfig())

	if !forecast.AverageDailySales.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("average = %s, want 10.00", forecast.AverageDailySales)
	}
	// (20*0.8 + 10*1.4)/7 = 30/7 = 4.2857... -> 4.29 half-up.
	if !forecast.SeasonalityFactor.Equal(decimal.RequireFromString("4.29")) {
		t.Fatalf("factor = %s, want 4.29", forecast.SeasonalityFactor)
	}
	if !forecast.AdjustedSales.Equal(decimal.RequireFromString("42.90")) {
		t.Fatalf("adjusted = %s, want 42.90", forecast.AdjustedSales)
	}
}

func TestBuildForecastSeasonalityFloor(t *testing.T) {
	cfg := defaultPlanningConfig()
	cfg.WeekdayMultiplier = 0.5 // one weekday tx: 0.5/7 = 0.07, below the floor

	forecast := BuildForecast(txsWithMix(1, 0, 3), 30, cfg)
	if !forecast.SeasonalityFactor.Equal(decimal.RequireFromString("0.1")) {
		t.Fatalf("factor = %s, want floor 0.1", forecast.SeasonalityFactor)
	}
}

func TestBuildForecastRoundsAverageHalfUp(t *testing.T) {
	// 10 units over 30 days = 0.3333... -> 0.33.
	forecast := BuildForecast(txsWithMix(1, 0, 10), 30, defaultPlanningConfig())
	if !forecast.AverageDailySales.Equal(decimal.RequireFromString("0.33")) {
		t.Fatalf("average = %s, want 0.33", forecast.AverageDailySales)
	}

	// 50 units over 30 days = 1.6666... -> 1.67.
	forecast = BuildForecast(txsWithMix(1, 0, 50), 30, defaultPlanningConfig())
	if !forecast.AverageDailySales.Equal(decimal.RequireFromString("1.67")) {
		t.Fatalf("average = %s, want 1.67", forecast.AverageDailySales)
	}
}
