package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dsanchezmx/shelfstock-backend/internal/inventory"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository interface {
	Create(ctx context.Context, tx *models.SalesTransaction) error
	ListWindow(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID, start, end time.Time) ([]models.SalesTransaction, error)
}

type productCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type storeCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
}

type inventoryStore interface {
	FindByProductAndStore(ctx context.Context, productID, storeID uuid.UUID) (*models.InventoryLevel, error)
	UpdateStock(ctx context.Context, id uuid.UUID, newStock int) error
}

// Service registers sales and answers window queries.
type Service interface {
	RecordSale(ctx context.Context, input RecordSaleInput) (*TransactionDTO, error)
	ListForStore(ctx context.Context, storeID uuid.UUID, days int) ([]TransactionDTO, error)
	ListWindow(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID, start, end time.Time) ([]models.SalesTransaction, error)
}

type service struct {
	repo      transactionRepository
	products  productCatalog
	stores    storeCatalog
	inventory inventoryStore
	now       func() time.Time
}

// NewService builds a sales service with the provided collaborators.
func NewService(repo transactionRepository, products productCatalog, stores storeCatalog, inv inventoryStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if stores == nil {
		return nil, fmt.Errorf("store repository required")
	}
	if inv == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	return &service{
		repo:      repo,
		products:  products,
		stores:    stores,
		inventory: inv,
		now:       time.Now,
	}, nil
}

func (s *service) RecordSale(ctx context.Context, input RecordSaleInput) (*TransactionDTO, error) {
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if _, err := s.stores.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	level, err := s.inventory.FindByProductAndStore(ctx, input.ProductID, input.StoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inventory")
	}

	// Insufficient stock is rejected before any mutation happens.
	if level.CurrentStock < input.Quantity {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "insufficient stock").
			WithDetails(map[string]any{"currentStock": level.CurrentStock, "requested": input.Quantity})
	}

	at := input.TransactionAt
	if at.IsZero() {
		at = s.now()
	}

	qty := decimal.NewFromInt(int64(input.Quantity))
	tx := &models.SalesTransaction{
		ProductID:     input.ProductID,
		StoreID:       input.StoreID,
		Quantity:      input.Quantity,
		UnitPrice:     product.UnitPrice,
		TotalAmount:   product.UnitPrice.Mul(qty),
		TransactionAt: at,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist sale")
	}

	next := inventory.DecrementStock(level.CurrentStock, input.Quantity)
	if err := s.inventory.UpdateStock(ctx, level.ID, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
	}

	return FromModel(tx), nil
}

func (s *service) ListForStore(ctx context.Context, storeID uuid.UUID, days int) ([]TransactionDTO, error) {
	if days <= 0 {
		days = 30
	}
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	end := s.now()
	start := end.AddDate(0, 0, -days)
	rows, err := s.repo.ListWindow(ctx, storeID, nil, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list sales")
	}
	out := make([]TransactionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// ListWindow surfaces raw transactions for other engines. It performs no
// existence checks; callers validate store and product beforehand.
func (s *service) ListWindow(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID, start, end time.Time) ([]models.SalesTransaction, error) {
	return s.repo.ListWindow(ctx, storeID, productID, start, end)
}
