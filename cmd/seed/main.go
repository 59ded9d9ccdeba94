package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/dsanchezmx/shelfstock-backend/internal/inventory"
	"github.com/dsanchezmx/shelfstock-backend/internal/products"
	"github.com/dsanchezmx/shelfstock-backend/internal/sales"
	"github.com/dsanchezmx/shelfstock-backend/internal/stores"
	"github.com/dsanchezmx/shelfstock-backend/internal/users"
	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/dsanchezmx/shelfstock-backend/pkg/enums"
	"github.com/dsanchezmx/shelfstock-backend/pkg/logger"
	"github.com/dsanchezmx/shelfstock-backend/pkg/security"
)

const salesHistoryDays = 30

type seedProduct struct {
	name      string
	sku       string
	category  string
	unitPrice string
	minQty    int
	maxQty    int
	baseDaily int
}

var seedProducts = []seedProduct{
	{"Whole Milk 1L", "DAIRY-001", "dairy", "1.85", 20, 200, 14},
	{"Greek Yogurt 500g", "DAIRY-002", "dairy", "3.40", 10, 120, 6},
	{"Sourdough Loaf", "BAKERY-001", "bakery", "4.25", 10, 80, 8},
	{"Croissant 4-pack", "BAKERY-002", "bakery", "5.10", 5, 60, 4},
	{"Ground Coffee 250g", "PANTRY-001", "pantry", "7.90", 10, 100, 5},
	{"Olive Oil 750ml", "PANTRY-002", "pantry", "9.60", 5, 50, 2},
	{"Bananas 1kg", "PRODUCE-001", "produce", "1.30", 30, 150, 18},
	{"Tomatoes 500g", "PRODUCE-002", "produce", "2.20", 15, 100, 9},
	{"Dish Soap 500ml", "HOUSE-001", "household", "2.75", 10, 90, 3},
	{"Paper Towels 2-roll", "HOUSE-002", "household", "3.95", 10, 80, 2},
}

var seedStores = []models.Store{
	{Name: "Downtown Market", Location: "12 Main St", IsActive: true},
	{Name: "Riverside Grocery", Location: "88 Quay Rd", IsActive: true},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.App.IsProd() {
		logg.Error(ctx, "refusing to seed a production database", fmt.Errorf("env is %s", cfg.App.Env))
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	err = multierr.Combine(
		seedUsers(ctx, users.NewRepository(dbClient.DB()), cfg.Password),
		seedCatalog(ctx, dbClient, rng),
	)
	if err != nil {
		logg.Error(ctx, "seeding finished with errors", err)
		os.Exit(1)
	}

	logg.Info(ctx, "seeding complete")
}

func seedUsers(ctx context.Context, repo *users.Repository, cfg config.PasswordConfig) error {
	accounts := []struct {
		email    string
		password string
		role     enums.UserRole
	}{
		{"admin@shelfstock.local", "admin-dev-password", enums.UserRoleAdmin},
		{"manager@shelfstock.local", "manager-dev-password", enums.UserRoleManager},
	}

	var errs []error
	for _, account := range accounts {
		if _, err := repo.FindByEmail(ctx, account.email); err == nil {
			continue
		}
		hash, err := security.HashPassword(account.password, cfg)
		if err != nil {
			errs = append(errs, fmt.Errorf("hash password for %s: %w", account.email, err))
			continue
		}
		if _, err := repo.Create(ctx, users.CreateUserDTO{
			Email:        account.email,
			PasswordHash: hash,
			Role:         account.role,
		}); err != nil {
			errs = append(errs, fmt.Errorf("create user %s: %w", account.email, err))
		}
	}
	return multierr.Combine(errs...)
}

func seedCatalog(ctx context.Context, dbClient *db.Client, rng *rand.Rand) error {
	storeRepo := stores.NewRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	inventoryRepo := inventory.NewRepository(dbClient.DB())
	salesRepo := sales.NewRepository(dbClient.DB())

	existing, err := storeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list stores: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	createdStores := make([]models.Store, 0, len(seedStores))
	for _, store := range seedStores {
		record := store
		if err := storeRepo.Create(ctx, &record); err != nil {
			return fmt.Errorf("create store %s: %w", store.Name, err)
		}
		createdStores = append(createdStores, record)
	}

	var errs []error
	for _, sp := range seedProducts {
		minQty := sp.minQty
		maxQty := sp.maxQty
		product := models.Product{
			Name:          sp.name,
			SKU:           sp.sku,
			Category:      sp.category,
			UnitPrice:     decimal.RequireFromString(sp.unitPrice),
			MinStorageQty: &minQty,
			MaxStorageQty: &maxQty,
			IsActive:      true,
		}
		if err := productRepo.Create(ctx, &product); err != nil {
			errs = append(errs, fmt.Errorf("create product %s: %w", sp.sku, err))
			continue
		}

		for _, store := range createdStores {
			level := models.InventoryLevel{
				ProductID:    product.ID,
				StoreID:      store.ID,
				CurrentStock: maxQty/2 + rng.Intn(maxQty/4+1),
			}
			if err := inventoryRepo.Create(ctx, &level); err != nil {
				errs = append(errs, fmt.Errorf("create inventory %s/%s: %w", sp.sku, store.Name, err))
				continue
			}
			if err := seedSalesHistory(ctx, salesRepo, product, store.ID, sp.baseDaily, rng); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return multierr.Combine(errs...)
}

// seedSalesHistory writes one transaction per day with heavier weekend volume,
// so fresh environments produce non-trivial forecasts and ABC tiers.
func seedSalesHistory(ctx context.Context, repo *sales.Repository, product models.Product, storeID uuid.UUID, baseDaily int, rng *rand.Rand) error {
	now := time.Now().UTC()
	var errs []error
	for day := 1; day <= salesHistoryDays; day++ {
		at := now.AddDate(0, 0, -day)
		qty := baseDaily + rng.Intn(baseDaily+1)
		if wd := at.Weekday(); wd == time.Saturday || wd == time.Sunday {
			qty = qty*3/2 + 1
		}
		if qty <= 0 {
			continue
		}
		tx := models.SalesTransaction{
			ProductID:     product.ID,
			StoreID:       storeID,
			Quantity:      qty,
			UnitPrice:     product.UnitPrice,
			TotalAmount:   product.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
			TransactionAt: at,
		}
		if err := repo.Create(ctx, &tx); err != nil {
			errs = append(errs, fmt.Errorf("create sale %s day -%d: %w", product.SKU, day, err))
		}
	}
	return multierr.Combine(errs...)
}
