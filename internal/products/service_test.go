package products

import (
	"context"
	"testing"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestServiceGetByIDMapsFields(t *testing.T) {
	minQty := 10
	product := &models.Product{
		ID:            uuid.New(),
		Name:          "Cafe de Olla 500g",
		SKU:           "CAF-500",
		Category:      "beverages",
		UnitPrice:     decimal.RequireFromString("129.90"),
		MinStorageQty: &minQty,
		IsActive:      true,
	}
	svc, err := NewService(&stubProductRepo{product: product})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.GetByID(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if dto.SKU != "CAF-500" {
		t.Fatalf("expected sku CAF-500 got %s", dto.SKU)
	}
	if !dto.UnitPrice.Equal(product.UnitPrice) {
		t.Fatalf("expected price %s got %s", product.UnitPrice, dto.UnitPrice)
	}
	if dto.MinStorageQty == nil || *dto.MinStorageQty != 10 {
		t.Fatalf("expected min storage 10 got %v", dto.MinStorageQty)
	}
	if dto.MaxStorageQty != nil {
		t.Fatalf("expected nil max storage got %v", dto.MaxStorageQty)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	svc, err := NewService(&stubProductRepo{err: gorm.ErrRecordNotFound})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.GetByID(context.Background(), uuid.New())
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}

func TestServiceListEmpty(t *testing.T) {
	svc, err := NewService(&stubProductRepo{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dtos, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(dtos) != 0 {
		t.Fatalf("expected empty list got %d", len(dtos))
	}
}

type stubProductRepo struct {
	product *models.Product
	list    []models.Product
	err     error
}

func (s *stubProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func (s *stubProductRepo) List(ctx context.Context) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}
