package sales

import (
	"context"
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles sales transaction persistence. Transactions are
// append-only; there is no update or delete path.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to sales operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new transaction row.
func (r *Repository) Create(ctx context.Context, tx *models.SalesTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// ListWindow returns the store's transactions within [start, end), optionally
// narrowed to one product. Rows come back in storage order; callers that need
// a specific ordering sort for themselves.
func (r *Repository) ListWindow(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID, start, end time.Time) ([]models.SalesTransaction, error) {
	q := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Where("transaction_at >= ? AND transaction_at < ?", start, end)
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	var out []models.SalesTransaction
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
