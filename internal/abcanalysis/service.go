package abcanalysis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/dsanchezmx/shelfstock-backend/pkg/enums"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Result is one classified product. Results are computed on demand and never
// persisted.
type Result struct {
	ProductID            uuid.UUID         `json:"productId"`
	ProductName          string            `json:"productName"`
	ProductSKU           string            `json:"productSku"`
	Revenue              decimal.Decimal   `json:"revenue"`
	PercentageOfTotal    decimal.Decimal   `json:"percentageOfTotal"`
	CumulativePercentage decimal.Decimal   `json:"cumulativePercentage"`
	Category             enums.AbcCategory `json:"category"`
}

type storeCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
}

type productCatalog interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error)
}

type transactionLister interface {
	ListWindow(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID, start, end time.Time) ([]models.SalesTransaction, error)
}

// Service classifies a store's products into Pareto revenue tiers.
type Service interface {
	Classify(ctx context.Context, storeID uuid.UUID, windowDays int) ([]Result, error)
}

type service struct {
	stores   storeCatalog
	products productCatalog
	txs      transactionLister
	cfg      config.AbcConfig
	now      func() time.Time
}

// NewService builds a classification service with the provided collaborators.
func NewService(stores storeCatalog, products productCatalog, txs transactionLister, cfg config.AbcConfig) (Service, error) {
	if stores == nil {
		return nil, fmt.Errorf("store repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if txs == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	return &service{
		stores:   stores,
		products: products,
		txs:      txs,
		cfg:      cfg,
		now:      time.Now,
	}, nil
}

// Classify aggregates revenue per product over the window, walks the
// descending list accumulating share of the grand total, and assigns each
// product a tier by its own post-inclusion cumulative percentage. Revenue
// ties break on ascending product id so repeated runs order identically.
func (s *service) Classify(ctx context.Context, storeID uuid.UUID, windowDays int) ([]Result, error) {
	if windowDays <= 0 {
		windowDays = s.cfg.DefaultWindowDays
	}

	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	end := s.now()
	start := end.AddDate(0, 0, -windowDays)
	txs, err := s.txs.ListWindow(ctx, storeID, nil, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sales")
	}
	if len(txs) == 0 {
		return []Result{}, nil
	}

	revenueByProduct := make(map[uuid.UUID]decimal.Decimal)
	for _, tx := range txs {
		revenueByProduct[tx.ProductID] = revenueByProduct[tx.ProductID].Add(tx.TotalAmount)
	}

	grandTotal := decimal.Zero
	for _, revenue := range revenueByProduct {
		grandTotal = grandTotal.Add(revenue)
	}
	if grandTotal.IsZero() {
		return []Result{}, nil
	}

	ids := make([]uuid.UUID, 0, len(revenueByProduct))
	for id := range revenueByProduct {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		left, right := revenueByProduct[ids[i]], revenueByProduct[ids[j]]
		if !left.Equal(right) {
			return left.GreaterThan(right)
		}
		return ids[i].String() < ids[j].String()
	})

	productsByID, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}

	hundred := decimal.NewFromInt(100)
	cumulative := decimal.Zero
	out := make([]Result, 0, len(ids))
	for _, id := range ids {
		revenue := revenueByProduct[id]
		cumulative = cumulative.Add(revenue)

		percentage := revenue.Div(grandTotal).Mul(hundred).Round(4)
		cumulativePct := cumulative.Div(grandTotal).Mul(hundred).Round(4)

		result := Result{
			ProductID:            id,
			Revenue:              revenue,
			PercentageOfTotal:    percentage,
			CumulativePercentage: cumulativePct,
			Category:             s.determineCategory(cumulativePct),
		}
		if product, ok := productsByID[id]; ok {
			result.ProductName = product.Name
			result.ProductSKU = product.SKU
		}
		out = append(out, result)
	}
	return out, nil
}

func (s *service) determineCategory(cumulativePct decimal.Decimal) enums.AbcCategory {
	switch {
	case cumulativePct.LessThanOrEqual(decimal.NewFromFloat(s.cfg.CategoryAThreshold)):
		return enums.AbcCategoryA
	case cumulativePct.LessThanOrEqual(decimal.NewFromFloat(s.cfg.CategoryBThreshold)):
		return enums.AbcCategoryB
	default:
		return enums.AbcCategoryC
	}
}

// AnalysisSummary is the condensed view of one classification run.
type AnalysisSummary struct {
	TotalProducts int                       `json:"totalProducts"`
	Counts        map[enums.AbcCategory]int `json:"counts"`
}

// GroupByCategory buckets results by tier. Nil or empty input yields an
// empty map.
func GroupByCategory(results []Result) map[enums.AbcCategory][]Result {
	out := make(map[enums.AbcCategory][]Result)
	for _, result := range results {
		out[result.Category] = append(out[result.Category], result)
	}
	return out
}

// SummarizeByCategory counts results per tier. All three keys are always
// present, zero-valued for empty input.
func SummarizeByCategory(results []Result) map[enums.AbcCategory]int {
	out := map[enums.AbcCategory]int{
		enums.AbcCategoryA: 0,
		enums.AbcCategoryB: 0,
		enums.AbcCategoryC: 0,
	}
	for _, result := range results {
		out[result.Category]++
	}
	return out
}
