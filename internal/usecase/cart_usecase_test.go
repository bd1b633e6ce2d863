package usecase

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

type stubCartRepo struct {
	entries map[int64][]entity.CartEntry
	cleared []int64
}

func (s *stubCartRepo) AddItem(ctx context.Context, userID, productID int64, quantity int) (string, error) {
	entry := entity.CartEntry{
		CartID:    fmt.Sprintf("cart-%d-%d", userID, productID),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if s.entries == nil {
		s.entries = make(map[int64][]entity.CartEntry)
	}
	s.entries[userID] = append(s.entries[userID], entry)
	return entry.CartID, nil
}

func (s *stubCartRepo) Entries(ctx context.Context, userID int64) ([]entity.CartEntry, error) {
	return s.entries[userID], nil
}

func (s *stubCartRepo) SetQuantity(ctx context.Context, cartID string, quantity int) (bool, error) {
	return true, nil
}

func (s *stubCartRepo) RemoveItem(ctx context.Context, cartID string) error { return nil }

func (s *stubCartRepo) Clear(ctx context.Context, userID int64) error {
	s.cleared = append(s.cleared, userID)
	delete(s.entries, userID)
	return nil
}

func (s *stubCartRepo) ItemCount(ctx context.Context, userID int64) (int, error) {
	total := 0
	for _, e := range s.entries[userID] {
		total += e.Quantity
	}
	return total, nil
}

func (s *stubCartRepo) TotalEntries(ctx context.Context) (int, error) {
	total := 0
	for _, entries := range s.entries {
		total += len(entries)
	}
	return total, nil
}

type stubCatalogRepo struct {
	products map[int64]entity.Product
}

func (s *stubCatalogRepo) Load(ctx context.Context) error    { return nil }
func (s *stubCatalogRepo) Refresh(ctx context.Context) error { return nil }

func (s *stubCatalogRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("product not found: %d", id)
	}
	return &p, nil
}

func (s *stubCatalogRepo) All(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubCatalogRepo) Query(ctx context.Context, filter entity.Filter, page int) (*entity.PageResult, error) {
	return &entity.PageResult{}, nil
}

func (s *stubCatalogRepo) PlatformStats(ctx context.Context) ([]entity.PlatformStat, error) {
	return nil, nil
}

func (s *stubCatalogRepo) CategoryStats(ctx context.Context, platform string) ([]entity.CategoryStat, bool, error) {
	return nil, false, nil
}

func (s *stubCatalogRepo) PriceBracketStats(ctx context.Context) ([]entity.PriceBracketStat, error) {
	return nil, nil
}

func (s *stubCatalogRepo) Summary(ctx context.Context) (*entity.CatalogSummary, error) {
	return &entity.CatalogSummary{}, nil
}

func TestCartViewJoinsCatalog(t *testing.T) {
	cartRepo := &stubCartRepo{}
	catalogRepo := &stubCatalogRepo{products: map[int64]entity.Product{
		1: {ID: 1, Name: "Facebook BM", Price: 25, Stock: 10},
		2: {ID: 2, Name: "Gmail Bulk", Price: 120, Stock: 5},
	}}
	uc := NewCartUseCase(cartRepo, catalogRepo)
	ctx := context.Background()

	uc.Add(ctx, 100, 1, 2)
	uc.Add(ctx, 100, 2, 1)

	lines, err := uc.View(ctx, 100)
	if err != nil {
		t.Fatalf("View xatosi: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("2 ta qator kutilgan edi, keldi: %d", len(lines))
	}
	if lines[0].Name != "Facebook BM" || lines[0].Price != 25 || lines[0].Quantity != 2 {
		t.Errorf("Qator katalog ma'lumoti bilan to'ldirilishi kerak: %+v", lines[0])
	}
}

func TestCartViewDropsMissingProducts(t *testing.T) {
	cartRepo := &stubCartRepo{}
	catalogRepo := &stubCatalogRepo{products: map[int64]entity.Product{
		1: {ID: 1, Name: "Facebook BM", Price: 25, Stock: 10},
	}}
	uc := NewCartUseCase(cartRepo, catalogRepo)
	ctx := context.Background()

	uc.Add(ctx, 100, 1, 1)
	uc.Add(ctx, 100, 99, 1) // katalogda yo'q

	lines, err := uc.View(ctx, 100)
	if err != nil {
		t.Fatalf("View xatosi: %v", err)
	}
	// Katalogdan chiqib ketgan mahsulot qatori jimgina tushib qoladi
	if len(lines) != 1 || lines[0].ProductID != 1 {
		t.Errorf("Faqat katalogda mavjud qator qolishi kerak: %+v", lines)
	}
}

func TestCartTotal(t *testing.T) {
	cartRepo := &stubCartRepo{}
	catalogRepo := &stubCatalogRepo{products: map[int64]entity.Product{
		1: {ID: 1, Name: "Facebook BM", Price: 25, Stock: 10},
		2: {ID: 2, Name: "Gmail Bulk", Price: 120, Stock: 5},
	}}
	uc := NewCartUseCase(cartRepo, catalogRepo)
	ctx := context.Background()

	uc.Add(ctx, 100, 1, 2) // 50
	uc.Add(ctx, 100, 2, 1) // 120

	total, err := uc.Total(ctx, 100)
	if err != nil {
		t.Fatalf("Total xatosi: %v", err)
	}
	if math.Abs(total-170) > 1e-9 {
		t.Errorf("Total 170 kutilgan edi, keldi: %v", total)
	}
}
