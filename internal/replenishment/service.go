package replenishment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/dsanchezmx/shelfstock-backend/pkg/logger"
	"github.com/dsanchezmx/shelfstock-backend/pkg/metrics"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recommendationRepository interface {
	Create(ctx context.Context, rec *models.ReorderRecommendation) error
	Update(ctx context.Context, rec *models.ReorderRecommendation) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ReorderRecommendation, error)
	FindByProductAndStore(ctx context.Context, productID, storeID uuid.UUID) (*models.ReorderRecommendation, error)
	ListPending(ctx context.Context, storeID uuid.UUID) ([]models.ReorderRecommendation, error)
	SetProcessed(ctx context.Context, id uuid.UUID) error
}

type storeCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
}

type productCatalog interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error)
}

type inventoryLister interface {
	ListLevelsForStore(ctx context.Context, storeID uuid.UUID) ([]models.InventoryLevel, error)
}

type transactionLister interface {
	ListWindow(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID, start, end time.Time) ([]models.SalesTransaction, error)
}

// Service runs planning batches and manages the recommendation lifecycle.
type Service interface {
	GeneratePlan(ctx context.Context, storeID uuid.UUID) ([]RecommendationDTO, error)
	ListPending(ctx context.Context, storeID uuid.UUID) ([]RecommendationDTO, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      recommendationRepository
	stores    storeCatalog
	products  productCatalog
	inventory inventoryLister
	txs       transactionLister
	planner   *Planner
	logg      *logger.Logger
	metrics   *metrics.ReplenishmentMetrics
	now       func() time.Time
}

// NewService builds a replenishment service with the provided collaborators.
// Metrics may be nil.
func NewService(
	repo recommendationRepository,
	stores storeCatalog,
	products productCatalog,
	inv inventoryLister,
	txs transactionLister,
	planner *Planner,
	logg *logger.Logger,
	m *metrics.ReplenishmentMetrics,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("recommendation repository required")
	}
	if stores == nil {
		return nil, fmt.Errorf("store repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if inv == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if txs == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	if planner == nil {
		return nil, fmt.Errorf("planner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      repo,
		stores:    stores,
		products:  products,
		inventory: inv,
		txs:       txs,
		planner:   planner,
		logg:      logg,
		metrics:   m,
		now:       time.Now,
	}, nil
}

// GeneratePlan evaluates every product in the store's inventory. A failure on
// one product is logged and skipped so a single bad data point cannot block
// the whole run; the returned list holds whatever was produced.
func (s *service) GeneratePlan(ctx context.Context, storeID uuid.UUID) ([]RecommendationDTO, error) {
	started := s.now()

	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	levels, err := s.inventory.ListLevelsForStore(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inventory")
	}

	ids := make([]uuid.UUID, 0, len(levels))
	for _, level := range levels {
		ids = append(ids, level.ProductID)
	}
	productsByID, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}

	end := started
	start := end.AddDate(0, 0, -s.planner.cfg.WindowDays)
	ctx = s.logg.WithStoreID(ctx, storeID.String())

	out := make([]RecommendationDTO, 0, len(levels))
	for _, level := range levels {
		dto, ok := s.planProduct(ctx, storeID, level, productsByID, start, end)
		if !ok {
			s.metrics.IncProductSkipped(storeID.String())
			continue
		}
		if dto != nil {
			out = append(out, *dto)
		}
	}

	s.metrics.ObserveRunDuration(storeID.String(), s.now().Sub(started))
	s.metrics.AddRecommendations(storeID.String(), len(out))
	return out, nil
}

// planProduct evaluates one inventory row. The second return value is false
// when the product failed and was skipped.
func (s *service) planProduct(
	ctx context.Context,
	storeID uuid.UUID,
	level models.InventoryLevel,
	productsByID map[uuid.UUID]models.Product,
	start, end time.Time,
) (*RecommendationDTO, bool) {
	ctx = s.logg.WithProductID(ctx, level.ProductID.String())

	product, ok := productsByID[level.ProductID]
	if !ok {
		s.logg.Warn(ctx, "skipping product: catalog entry missing")
		return nil, false
	}

	productID := level.ProductID
	txs, err := s.txs.ListWindow(ctx, storeID, &productID, start, end)
	if err != nil {
		s.logg.Error(ctx, "skipping product: sales window query failed", err)
		return nil, false
	}

	rec := s.planner.Plan(PlanInput{
		Product:      product,
		StoreID:      storeID,
		CurrentStock: level.CurrentStock,
		Transactions: txs,
	})
	if rec == nil {
		// Stock is adequate: any existing recommendation row stays as-is.
		return nil, true
	}

	saved, err := s.upsert(ctx, rec)
	if err != nil {
		s.logg.Error(ctx, "skipping product: persisting recommendation failed", err)
		return nil, false
	}
	return FromModel(saved), true
}

// upsert overwrites the live row for the pair, resetting processed, or
// creates one when none exists. Replanning from unchanged inputs is therefore
// an update to identical values, never a duplicate.
func (s *service) upsert(ctx context.Context, rec *models.ReorderRecommendation) (*models.ReorderRecommendation, error) {
	existing, err := s.repo.FindByProductAndStore(ctx, rec.ProductID, rec.StoreID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			return nil, err
		}
		return rec, nil
	}

	existing.CurrentStock = rec.CurrentStock
	existing.AverageDailySales = rec.AverageDailySales
	existing.SeasonalityFactor = rec.SeasonalityFactor
	existing.AdjustedSales = rec.AdjustedSales
	existing.SafetyStock = rec.SafetyStock
	existing.ReorderPoint = rec.ReorderPoint
	existing.LeadTimeDays = rec.LeadTimeDays
	existing.RecommendedQty = rec.RecommendedQty
	existing.Processed = false
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) ListPending(ctx context.Context, storeID uuid.UUID) ([]RecommendationDTO, error) {
	rows, err := s.repo.ListPending(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending recommendations")
	}
	out := make([]RecommendationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SetProcessed(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "recommendation not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark recommendation processed")
	}
	return nil
}
