package inventory

import (
	"context"
	"testing"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestListForStoreUnknownStore(t *testing.T) {
	svc, err := NewService(&stubInventoryRepo{}, &stubStoreCatalog{err: gorm.ErrRecordNotFound})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.ListForStore(context.Background(), uuid.New())
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}

func TestListForStoreMapsRows(t *testing.T) {
	storeID := uuid.New()
	rows := []LevelRow{
		{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Atole", ProductSKU: "ATO-1", StoreID: storeID, CurrentStock: 12},
	}
	svc, err := NewService(&stubInventoryRepo{rows: rows}, &stubStoreCatalog{store: &models.Store{ID: storeID}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dtos, err := svc.ListForStore(context.Background(), storeID)
	if err != nil {
		t.Fatalf("list inventory: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("expected 1 row got %d", len(dtos))
	}
	if dtos[0].ProductName != "Atole" || dtos[0].CurrentStock != 12 {
		t.Fatalf("unexpected dto %+v", dtos[0])
	}
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc, err := NewService(repo, &stubStoreCatalog{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.UpdateStock(context.Background(), uuid.New(), -1)
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", gotErr)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no mutation, got %d update calls", repo.updateCalls)
	}
}

func TestUpdateStockNotFound(t *testing.T) {
	svc, err := NewService(&stubInventoryRepo{findErr: gorm.ErrRecordNotFound}, &stubStoreCatalog{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.UpdateStock(context.Background(), uuid.New(), 4)
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}

func TestUpdateStockSuccess(t *testing.T) {
	level := &models.InventoryLevel{ID: uuid.New(), ProductID: uuid.New(), StoreID: uuid.New(), CurrentStock: 2}
	repo := &stubInventoryRepo{level: level}
	svc, err := NewService(repo, &stubStoreCatalog{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.UpdateStock(context.Background(), level.ID, 25)
	if err != nil {
		t.Fatalf("update stock: %v", err)
	}
	if dto.CurrentStock != 25 {
		t.Fatalf("expected stock 25 got %d", dto.CurrentStock)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("expected 1 update call got %d", repo.updateCalls)
	}
}

type stubInventoryRepo struct {
	level       *models.InventoryLevel
	rows        []LevelRow
	findErr     error
	updateErr   error
	updateCalls int
}

func (s *stubInventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryLevel, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.level, nil
}

func (s *stubInventoryRepo) ListForStore(ctx context.Context, storeID uuid.UUID) ([]LevelRow, error) {
	return s.rows, nil
}

func (s *stubInventoryRepo) UpdateStock(ctx context.Context, id uuid.UUID, newStock int) error {
	s.updateCalls++
	return s.updateErr
}

type stubStoreCatalog struct {
	store *models.Store
	err   error
}

func (s *stubStoreCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.store, nil
}
