package replenishment

import (
	"context"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository handles recommendation persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to recommendation operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new recommendation row.
func (r *Repository) Create(ctx context.Context, rec *models.ReorderRecommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update saves the provided recommendation.
func (r *Repository) Update(ctx context.Context, rec *models.ReorderRecommendation) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// FindByID loads one recommendation.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ReorderRecommendation, error) {
	var rec models.ReorderRecommendation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByProductAndStore loads the live recommendation for one pair.
func (r *Repository) FindByProductAndStore(ctx context.Context, productID, storeID uuid.UUID) (*models.ReorderRecommendation, error) {
	var rec models.ReorderRecommendation
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND store_id = ?", productID, storeID).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListPending returns the store's unprocessed recommendations.
func (r *Repository) ListPending(ctx context.Context, storeID uuid.UUID) ([]models.ReorderRecommendation, error) {
	var out []models.ReorderRecommendation
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND processed = ?", storeID, false).
		Order("updated_at desc").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SetProcessed flips the processed flag for one recommendation.
func (r *Repository) SetProcessed(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.ReorderRecommendation{}).
		Where("id = ?", id).
		Update("processed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
