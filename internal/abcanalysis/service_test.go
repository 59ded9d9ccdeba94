package abcanalysis

import (
	"context"
	"testing"
	"time"

	"github.com/dsanchezmx/shelfstock-backend/pkg/config"
	"github.com/dsanchezmx/shelfstock-backend/pkg/db/models"
	"github.com/dsanchezmx/shelfstock-backend/pkg/enums"
	pkgerrors "github.com/dsanchezmx/shelfstock-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func testAbcConfig() config.AbcConfig {
	return config.AbcConfig{
		DefaultWindowDays:  90,
		CategoryAThreshold: 80,
		CategoryBThreshold: 95,
	}
}

func newClassifier(t *testing.T, stores *stubStores, products *stubProducts, txs *stubTxs) Service {
	t.Helper()
	svc, err := NewService(stores, products, txs, testAbcConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func saleOf(productID uuid.UUID, amount string) models.SalesTransaction {
	return models.SalesTransaction{
		ProductID:   productID,
		TotalAmount: decimal.RequireFromString(amount),
	}
}

func TestClassifyUnknownStore(t *testing.T) {
	svc := newClassifier(t, &stubStores{err: gorm.ErrRecordNotFound}, &stubProducts{}, &stubTxs{})

	_, err := svc.Classify(context.Background(), uuid.New(), 90)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestClassifyEmptyWindow(t *testing.T) {
	svc := newClassifier(t, &stubStores{}, &stubProducts{}, &stubTxs{})

	results, err := svc.Classify(context.Background(), uuid.New(), 90)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %d", len(results))
	}
}

func TestClassifyZeroGrandTotal(t *testing.T) {
	productID := uuid.New()
	svc := newClassifier(t, &stubStores{}, &stubProducts{}, &stubTxs{
		window: []models.SalesTransaction{saleOf(productID, "0"), saleOf(productID, "0")},
	})

	results, err := svc.Classify(context.Background(), uuid.New(), 90)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results for zero revenue, got %d", len(results))
	}
}

func TestClassifyParetoBoundaries(t *testing.T) {
	// Revenues 50, 30, 20 over a grand total of 100: cumulative 50, 80, 100.
	// The inclusive boundary puts the second product in A (80 <= 80) and the
	// third in C (100 > 95).
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	svc := newClassifier(t, &stubStores{},
		&stubProducts{byID: map[uuid.UUID]models.Product{
			first:  {ID: first, Name: "Tortillas", SKU: "TOR-1"},
			second: {ID: second, Name: "Frijoles", SKU: "FRI-1"},
			third:  {ID: third, Name: "Arroz", SKU: "ARR-1"},
		}},
		&stubTxs{window: []models.SalesTransaction{
			saleOf(first, "50"), saleOf(second, "30"), saleOf(third, "20"),
		}},
	)

	results, err := svc.Classify(context.Background(), uuid.New(), 90)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results got %d", len(results))
	}

	wantCategories := []enums.AbcCategory{enums.AbcCategoryA, enums.AbcCategoryA, enums.AbcCategoryC}
	wantCumulative := []string{"50", "80", "100"}
	for i, result := range results {
		if result.Category != wantCategories[i] {
			t.Fatalf("result[%d] category = %s, want %s", i, result.Category, wantCategories[i])
		}
		if !result.CumulativePercentage.Equal(decimal.RequireFromString(wantCumulative[i])) {
			t.Fatalf("result[%d] cumulative = %s, want %s", i, result.CumulativePercentage, wantCumulative[i])
		}
	}
	if results[0].ProductName != "Tortillas" {
		t.Fatalf("expected product metadata on results, got %q", results[0].ProductName)
	}

	// Percentages across a full classification sum to 100.
	sum := decimal.Zero
	for _, result := range results {
		sum = sum.Add(result.PercentageOfTotal)
	}
	if !sum.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("percentage sum = %s, want 100", sum)
	}
}

func TestClassifyAggregatesPerProduct(t *testing.T) {
	productID := uuid.New()
	other := uuid.New()
	svc := newClassifier(t, &stubStores{}, &stubProducts{},
		&stubTxs{window: []models.SalesTransaction{
			saleOf(productID, "10"), saleOf(productID, "15"), saleOf(other, "5"),
		}},
	)

	results, err := svc.Classify(context.Background(), uuid.New(), 0) // default window
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results got %d", len(results))
	}
	if results[0].ProductID != productID || !results[0].Revenue.Equal(decimal.RequireFromString("25")) {
		t.Fatalf("expected aggregated revenue 25 first, got %+v", results[0])
	}
}

func TestClassifyTieBreaksOnProductID(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	svc := newClassifier(t, &stubStores{}, &stubProducts{},
		&stubTxs{window: []models.SalesTransaction{saleOf(b, "50"), saleOf(a, "50")}},
	)

	results, err := svc.Classify(context.Background(), uuid.New(), 90)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if results[0].ProductID != a || results[1].ProductID != b {
		t.Fatalf("expected ascending id tie-break, got %s then %s", results[0].ProductID, results[1].ProductID)
	}
}

func TestDetermineCategoryBoundaries(t *testing.T) {
	svc := &service{cfg: testAbcConfig()}
	cases := []struct {
		value string
		want  enums.AbcCategory
	}{
		{"80.00", enums.AbcCategoryA},
		{"80.01", enums.AbcCategoryB},
		{"95.00", enums.AbcCategoryB},
		{"95.01", enums.AbcCategoryC},
	}
	for _, tc := range cases {
		if got := svc.determineCategory(decimal.RequireFromString(tc.value)); got != tc.want {
			t.Fatalf("determineCategory(%s) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	if got := GroupByCategory(nil); len(got) != 0 {
		t.Fatalf("expected empty map for nil input, got %v", got)
	}
	if got := GroupByCategory([]Result{}); len(got) != 0 {
		t.Fatalf("expected empty map for empty input, got %v", got)
	}

	results := []Result{
		{Category: enums.AbcCategoryA},
		{Category: enums.AbcCategoryA},
		{Category: enums.AbcCategoryC},
	}
	grouped := GroupByCategory(results)
	if len(grouped[enums.AbcCategoryA]) != 2 || len(grouped[enums.AbcCategoryC]) != 1 {
		t.Fatalf("unexpected grouping %v", grouped)
	}
	if _, ok := grouped[enums.AbcCategoryB]; ok {
		t.Fatal("expected no B bucket when no B results exist")
	}
}

func TestSummarizeByCategory(t *testing.T) {
	summary := SummarizeByCategory(nil)
	for _, category := range enums.AbcCategories {
		if count, ok := summary[category]; !ok || count != 0 {
			t.Fatalf("expected zero count for %s, got %v", category, summary)
		}
	}

	summary = SummarizeByCategory([]Result{
		{Category: enums.AbcCategoryA},
		{Category: enums.AbcCategoryB},
		{Category: enums.AbcCategoryB},
	})
	if summary[enums.AbcCategoryA] != 1 || summary[enums.AbcCategoryB] != 2 || summary[enums.AbcCategoryC] != 0 {
		t.Fatalf("unexpected summary %v", summary)
	}
}

type stubStores struct {
	err error
}

func (s *stubStores) FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Store{ID: id}, nil
}

type stubProducts struct {
	byID map[uuid.UUID]models.Product
	err  error
}

func (s *stubProducts) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.byID == nil {
		return map[uuid.UUID]models.Product{}, nil
	}
	return s.byID, nil
}

type stubTxs struct {
	window []models.SalesTransaction
	err    error
}

func (s *stubTxs) ListWindow(ctx context.Context, storeID uuid.UUID, productID *uuid.UUID, start, end time.Time) ([]models.SalesTransaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.window, nil
}
