package sales

import (
	"context"
	"testing"
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, repo *stubTxRepo, products *stubProducts, stores *stubStores, inv *stubInventory) Service {
	t.Helper()
	svc, err := NewService(repo, products, stores, inv)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRecordSaleRejectsNonPositiveQuantity(t *testing.T) {
	repo := &stubTxRepo{}
	svc := newTestService(t, repo, &stubProducts{}, &stubStores{}, &stubInventory{})

	_, err := svc.RecordSale(context.Background(), RecordSaleInput{Quantity: 0})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("expected no transaction persisted")
	}
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	svc := newTestService(t, &stubTxRepo{}, &stubProducts{err: gorm.ErrRecordNotFound}, &stubStores{}, &stubInventory{})

	_, err := svc.RecordSale(context.Background(), RecordSaleInput{ProductID: uuid.New(), StoreID: uuid.New(), Quantity: 1})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	product := &models.Product{ID: uuid.New(), UnitPrice: decimal.RequireFromString("10.00")}
	level := &models.InventoryLevel{ID: uuid.New(), ProductID: product.ID, CurrentStock: 2}
	repo := &stubTxRepo{}
	inv := &stubInventory{level: level}
	svc := newTestService(t, repo, &stubProducts{product: product}, &stubStores{store: &models.Store{}}, inv)

	_, err := svc.RecordSale(context.Background(), RecordSaleInput{ProductID: product.ID, StoreID: uuid.New(), Quantity: 5})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("expected no transaction persisted")
	}
	if inv.updateCalls != 0 {
		t.Fatal("expected no stock mutation")
	}
}

func TestRecordSaleComputesTotalAndDecrementsStock(t *testing.T) {
	product := &models.Product{ID: uuid.New(), UnitPrice: decimal.RequireFromString("19.90")}
	level := &models.InventoryLevel{ID: uuid.New(), ProductID: product.ID, CurrentStock: 10}
	repo := &stubTxRepo{}
	inv := &stubInventory{level: level}
	svc := newTestService(t, repo, &stubProducts{product: product}, &stubStores{store: &models.Store{}}, inv)

	dto, err := svc.RecordSale(context.Background(), RecordSaleInput{
		ProductID:     product.ID,
		StoreID:       uuid.New(),
		Quantity:      3,
		TransactionAt: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("record sale: %v", err)
	}

	if !dto.TotalAmount.Equal(decimal.RequireFromString("59.70")) {
		t.Fatalf("total = %s, want 59.70", dto.TotalAmount)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 transaction persisted got %d", len(repo.created))
	}
	if inv.updateCalls != 1 || inv.lastStock != 7 {
		t.Fatalf("expected stock decremented to 7, got calls=%d stock=%d", inv.updateCalls, inv.lastStock)
	}
}

func TestListForStoreUnknownStore(t *testing.T) {
	svc := newTestService(t, &stubTxRepo{}, &stubProducts{}, &stubStores{err: gorm.ErrRecordNotFound}, &stubInventory{})

	_, err := svc.ListForStore(context.Background(), uuid.New(), 30)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

type stubTxRepo struct {
	created []*models.SalesTransaction
	window  []models.SalesTransaction
	err     error
}

func (s *stubTxRepo) Create(ctx context.Context, tx *models.SalesTransaction) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, tx)
	return nil
}

func (s *stubTxRepo) ListWindow(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID, start, end time.Time) ([]models.SalesTransaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.window, nil
}

type stubProducts struct {
	product *models.Product
	err     error
}

func (s *stubProducts) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

type stubStores struct {
	store *models.Store
	err   error
}

func (s *stubStores) FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.store, nil
}

type stubInventory struct {
	level       *models.InventoryLevel
	err         error
	updateCalls int
	lastStock   int
}

func (s *stubInventory) FindByProductAndStore(ctx context.Context, productID, storeID uuid.UUID) (*models.InventoryLevel, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.level == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.level, nil
}

func (s *stubInventory) UpdateStock(ctx context.Context, id uuid.UUID, newStock int) error {
	s.updateCalls++
	s.lastStock = newStock
	return nil
}
