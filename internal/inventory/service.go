package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryLevel, error)
	ListForStore(ctx context.Context, storeID uuid.UUID) ([]LevelRow, error)
	UpdateStock(ctx context.Context, id uuid.UUID, newStock int) error
}

type storeCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
}

// Service exposes stock visibility and manual adjustments.
type Service interface {
	ListForStore(ctx context.Context, storeID uuid.UUID) ([]LevelDTO, error)
	UpdateStock(ctx context.Context, inventoryID uuid.UUID, newStock int) (*LevelDTO, error)
}

type service struct {
	repo   inventoryRepository
	stores storeCatalog
}

// NewService builds an inventory service with the provided collaborators.
func NewService(repo inventoryRepository, stores storeCatalog) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if stores == nil {
		return nil, fmt.Errorf("store repository required")
	}
	return &service{repo: repo, stores: stores}, nil
}

func (s *service) ListForStore(ctx context.Context, storeID uuid.UUID) ([]LevelDTO, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	rows, err := s.repo.ListForStore(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list inventory")
	}
	out := make([]LevelDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, LevelDTO{
			ID:           row.ID,
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			ProductSKU:   row.ProductSKU,
			StoreID:      row.StoreID,
			CurrentStock: row.CurrentStock,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return out, nil
}

func (s *service) UpdateStock(ctx context.Context, inventoryID uuid.UUID, newStock int) (*LevelDTO, error) {
	// Reject before touching the row.
	if newStock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock cannot be negative")
	}

	level, err := s.repo.FindByID(ctx, inventoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load inventory")
	}

	if err := s.repo.UpdateStock(ctx, level.ID, newStock); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update stock")
	}

	return &LevelDTO{
		ID:           level.ID,
		ProductID:    level.ProductID,
		StoreID:      level.StoreID,
		CurrentStock: newStock,
		UpdatedAt:    level.UpdatedAt,
	}, nil
}
