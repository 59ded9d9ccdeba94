package inventory

import (
	"context"
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LevelRow is an inventory row joined with its product columns.
type LevelRow struct {
	ID           uuid.UUID `gorm:"column:id"`
	ProductID    uuid.UUID `gorm:"column:product_id"`
	ProductName  string    `gorm:"column:product_name"`
	ProductSKU   string    `gorm:"column:product_sku"`
	StoreID      uuid.UUID `gorm:"column:store_id"`
	CurrentStock int       `gorm:"column:current_stock"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// Repository handles inventory persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to inventory operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new inventory row.
func (r *Repository) Create(ctx context.Context, level *models.InventoryLevel) error {
	return r.db.WithContext(ctx).Create(level).Error
}

// FindByID loads one inventory row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryLevel, error) {
	var level models.InventoryLevel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// FindByProductAndStore loads the inventory row for one (product, store) pair.
func (r *Repository) FindByProductAndStore(ctx context.Context, productID, storeID uuid.UUID) (*models.InventoryLevel, error) {
	var level models.InventoryLevel
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND store_id = ?", productID, storeID).
		First(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// ListForStore returns the store's inventory joined with product columns.
func (r *Repository) ListForStore(ctx context.Context, storeID uuid.UUID) ([]LevelRow, error) {
	var rows []LevelRow
	if err := r.db.WithContext(ctx).
		Table("inventory_levels").
		Select("inventory_levels.id, inventory_levels.product_id, products.name AS product_name, products.sku AS product_sku, inventory_levels.store_id, inventory_levels.current_stock, inventory_levels.updated_at").
		Joins("JOIN products ON products.id = inventory_levels.product_id").
		Where("inventory_levels.store_id = ?", storeID).
		Order("products.name asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListLevelsForStore returns the raw inventory rows for a store.
func (r *Repository) ListLevelsForStore(ctx context.Context, storeID uuid.UUID) ([]models.InventoryLevel, error) {
	var out []models.InventoryLevel
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStock sets the absolute stock value for one inventory row.
func (r *Repository) UpdateStock(ctx context.Context, id uuid.UUID, newStock int) error {
	res := r.db.WithContext(ctx).
		Model(&models.InventoryLevel{}).
		Where("id = ?", id).
		Update("current_stock", newStock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
