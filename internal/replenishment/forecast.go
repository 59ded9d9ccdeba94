package replenishment

import (
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// Forecast holds the demand figures derived from one sales window.
type Forecast struct {
	AverageDailySales decimal.Decimal
	SeasonalityFactor decimal.Decimal
	AdjustedSales     decimal.Decimal
}

// BuildForecast derives average daily demand and a weekday/weekend
// seasonality factor from the window's transactions. Weekend sales are
// weighted heavier to reflect retail traffic; the factor is normalized to a
// 7-day week regardless of the window length and never drops below the
// configured minimum.
func BuildForecast(txs []models.SalesTransaction, windowDays int, cfg config.ReplenishmentConfig) Forecast {
	total := decimal.Zero
	weekday := 0
	weekend := 0
	for _, tx := range txs {
		total = total.Add(decimal.NewFromInt(int64(tx.Quantity)))
		if isWeekend(tx.TransactionAt) {
			weekend++
		} else {
			weekday++
		}
	}

	avg := total.Div(decimal.NewFromInt(int64(windowDays))).Round(2)

	weighted := decimal.NewFromInt(int64(weekday)).Mul(decimal.NewFromFloat(cfg.WeekdayMultiplier)).
		Add(decimal.NewFromInt(int64(weekend)).Mul(decimal.NewFromFloat(cfg.WeekendMultiplier)))
	factor := weighted.Div(decimal.NewFromInt(7)).Round(2)

	minFactor := decimal.NewFromFloat(cfg.MinSeasonality)
	if factor.LessThan(minFactor) {
		factor = minFactor
	}

	return Forecast{
		AverageDailySales: avg,
		SeasonalityFactor: factor,
		AdjustedSales:     avg.Mul(factor),
	}
}

func isWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
