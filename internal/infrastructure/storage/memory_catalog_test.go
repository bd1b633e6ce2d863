package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

var testBrackets = []entity.PriceBracket{
	{Label: "Under $50", Min: 0, Max: 49.99},
	{Label: "$50-$100", Min: 50, Max: 100},
	{Label: "$100-$200", Min: 100, Max: 200},
	{Label: "$200+", Min: 200, Max: 999999},
}

func writeCatalogFile(t *testing.T, products []entity.Product) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	writeCatalogFileAt(t, path, products)
	return path
}

func writeCatalogFileAt(t *testing.T, path string, products []entity.Product) {
	t.Helper()
	items := ""
	for i, p := range products {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf(
			`{"id":%d,"name":%q,"description":%q,"price":%g,"stock":%d,"platform":%q,"platform_category":%q}`,
			p.ID, p.Name, p.Description, p.Price, p.Stock, p.Platform, p.PlatformCategory)
	}
	data := fmt.Sprintf(`{"shop":"Test Shop","exported_at":"2026-01-01","products":[%s]}`, items)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Katalog faylini yozib bo'lmadi: %v", err)
	}
}

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Facebook BM", Description: "Business Manager account", Price: 25, Stock: 10, Platform: "facebook", PlatformCategory: "Business Managers"},
		{ID: 2, Name: "Facebook Personal", Description: "Aged personal profile", Price: 49.99, Stock: 0, Platform: "facebook", PlatformCategory: "Personal Accounts"},
		{ID: 3, Name: "Instagram Aged", Description: "Aged account with followers", Price: 50, Stock: 5, Platform: "instagram", PlatformCategory: "Aged Accounts"},
		{ID: 4, Name: "Gmail Bulk", Description: "Fresh Gmail accounts", Price: 120, Stock: 100, Platform: "google", PlatformCategory: "Gmail"},
		{ID: 5, Name: "Facebook Fan Page", Description: "Fan page with likes", Price: 250, Stock: 3, Platform: "facebook", PlatformCategory: "Fan Pages"},
	}
}

func loadTestCatalog(t *testing.T, products []entity.Product) *memoryCatalogRepository {
	t.Helper()
	path := writeCatalogFile(t, products)
	repo := NewMemoryCatalogRepository(path, testBrackets).(*memoryCatalogRepository)
	if err := repo.Load(context.Background()); err != nil {
		t.Fatalf("Load xatosi: %v", err)
	}
	return repo
}

func TestLoadMissingFile(t *testing.T) {
	repo := NewMemoryCatalogRepository(filepath.Join(t.TempDir(), "yoq.json"), testBrackets)
	err := repo.Load(context.Background())
	if !errors.Is(err, ErrCatalogLoad) {
		t.Errorf("ErrCatalogLoad kutilgan edi, keldi: %v", err)
	}
}

func TestLoadInvalidJSONKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	path := writeCatalogFile(t, testProducts())
	repo := NewMemoryCatalogRepository(path, testBrackets)
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("Load xatosi: %v", err)
	}

	// Faylni buzib qo'yamiz - Refresh xato qaytaradi, snapshot qoladi
	if err := os.WriteFile(path, []byte("{buzuq json"), 0o644); err != nil {
		t.Fatalf("Faylni yozib bo'lmadi: %v", err)
	}
	if err := repo.Refresh(ctx); !errors.Is(err, ErrCatalogLoad) {
		t.Fatalf("ErrCatalogLoad kutilgan edi, keldi: %v", err)
	}

	summary, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary xatosi: %v", err)
	}
	if summary.TotalProducts != 5 {
		t.Errorf("Oldingi snapshot yo'qolgan: %d ta mahsulot qoldi", summary.TotalProducts)
	}
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	path := writeCatalogFile(t, testProducts())
	repo := NewMemoryCatalogRepository(path, testBrackets)
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("Load xatosi: %v", err)
	}

	writeCatalogFileAt(t, path, testProducts()[:2])
	if err := repo.Refresh(ctx); err != nil {
		t.Fatalf("Refresh xatosi: %v", err)
	}

	summary, _ := repo.Summary(ctx)
	if summary.TotalProducts != 2 {
		t.Errorf("Refresh dan keyin 2 ta mahsulot kutilgan edi, keldi: %d", summary.TotalProducts)
	}
	if _, err := repo.GetByID(ctx, 5); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Eski mahsulot snapshot dan chiqib ketishi kerak edi")
	}
}

func TestGetByID(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())
	ctx := context.Background()

	product, err := repo.GetByID(ctx, 3)
	if err != nil {
		t.Fatalf("GetByID xatosi: %v", err)
	}
	if product.Name != "Instagram Aged" {
		t.Errorf("Noto'g'ri mahsulot: %s", product.Name)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("ErrProductNotFound kutilgan edi, keldi: %v", err)
	}
}

func TestPlatformStats(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())

	stats, err := repo.PlatformStats(context.Background())
	if err != nil {
		t.Fatalf("PlatformStats xatosi: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("3 ta platforma kutilgan edi, keldi: %d", len(stats))
	}

	// Birinchi uchragan tartib saqlanadi
	if stats[0].Platform != "facebook" || stats[1].Platform != "instagram" || stats[2].Platform != "google" {
		t.Errorf("Platforma tartibi buzilgan: %+v", stats)
	}
	if stats[0].Total != 3 || stats[0].InStock != 2 {
		t.Errorf("facebook: Total=3 InStock=2 kutilgan edi, keldi: %+v", stats[0])
	}

	totalSum := 0
	for _, s := range stats {
		totalSum += s.Total
	}
	if totalSum != len(testProducts()) {
		t.Errorf("Platforma yig'indisi %d, katalogda %d ta mahsulot", totalSum, len(testProducts()))
	}
}

func TestCategoryStatsUnknownPlatform(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())
	ctx := context.Background()

	stats, known, err := repo.CategoryStats(ctx, "facebook")
	if err != nil {
		t.Fatalf("CategoryStats xatosi: %v", err)
	}
	if !known {
		t.Error("facebook ma'lum platforma bo'lishi kerak")
	}
	if len(stats) != 3 {
		t.Errorf("facebook uchun 3 ta kategoriya kutilgan edi, keldi: %d", len(stats))
	}

	// Noma'lum platforma bo'sh natijadan farqlanadi
	stats, known, err = repo.CategoryStats(ctx, "tiktok")
	if err != nil {
		t.Fatalf("CategoryStats xatosi: %v", err)
	}
	if known {
		t.Error("tiktok noma'lum platforma bo'lishi kerak")
	}
	if len(stats) != 0 {
		t.Errorf("Noma'lum platforma uchun bo'sh natija kutilgan edi: %+v", stats)
	}
}

func TestPriceBracketBoundary(t *testing.T) {
	// 49.99 va 50 chegara qiymatlari: birinchi mos kelgan oraliq yutadi
	repo := loadTestCatalog(t, testProducts())

	stats, err := repo.PriceBracketStats(context.Background())
	if err != nil {
		t.Fatalf("PriceBracketStats xatosi: %v", err)
	}

	byLabel := make(map[string]entity.PriceBracketStat)
	for _, s := range stats {
		byLabel[s.Label] = s
	}

	if byLabel["Under $50"].Total != 2 {
		t.Errorf("Under $50: 2 kutilgan edi (25 va 49.99), keldi: %d", byLabel["Under $50"].Total)
	}
	if byLabel["$50-$100"].Total != 1 {
		t.Errorf("$50-$100: 1 kutilgan edi (50), keldi: %d", byLabel["$50-$100"].Total)
	}
	if byLabel["$100-$200"].Total != 1 {
		t.Errorf("$100-$200: 1 kutilgan edi (120), keldi: %d", byLabel["$100-$200"].Total)
	}
	if byLabel["$200+"].Total != 1 {
		t.Errorf("$200+: 1 kutilgan edi (250), keldi: %d", byLabel["$200+"].Total)
	}
}

func TestQueryFilterCombination(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())

	// Platform + InStock birga AND bo'lib ishlaydi
	result, err := repo.Query(context.Background(), entity.Filter{Platform: "facebook", InStock: true}, 1)
	if err != nil {
		t.Fatalf("Query xatosi: %v", err)
	}
	if result.Pagination.Total != 2 {
		t.Errorf("2 ta natija kutilgan edi, keldi: %d", result.Pagination.Total)
	}
	for _, p := range result.Products {
		if p.Platform != "facebook" || !p.InStock() {
			t.Errorf("Filtrga mos kelmaydigan mahsulot: %+v", p)
		}
	}
}

func TestQuerySearchMatchesDescription(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())

	// "followers" faqat description da bor
	result, err := repo.Query(context.Background(), entity.Filter{Search: "FOLLOWERS"}, 1)
	if err != nil {
		t.Fatalf("Query xatosi: %v", err)
	}
	if result.Pagination.Total != 1 || result.Products[0].ID != 3 {
		t.Errorf("Description bo'yicha qidiruv ishlamadi: %+v", result.Products)
	}
}

func TestQueryPriceRange(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())

	min, max := 50.0, 200.0
	result, err := repo.Query(context.Background(), entity.Filter{PriceMin: &min, PriceMax: &max}, 1)
	if err != nil {
		t.Fatalf("Query xatosi: %v", err)
	}
	if result.Pagination.Total != 2 {
		t.Errorf("2 ta natija kutilgan edi (50 va 120), keldi: %d", result.Pagination.Total)
	}
}

func TestQueryPagination(t *testing.T) {
	// 12 ta mahsulot, sahifada 5 tadan: 3 sahifa, oxirgisida 2 ta
	var products []entity.Product
	for i := int64(1); i <= 12; i++ {
		products = append(products, entity.Product{
			ID: i, Name: fmt.Sprintf("Product %d", i), Price: float64(i), Stock: 1,
			Platform: "facebook", PlatformCategory: "Test",
		})
	}
	repo := loadTestCatalog(t, products)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for page := 1; page <= 3; page++ {
		result, err := repo.Query(ctx, entity.Filter{}, page)
		if err != nil {
			t.Fatalf("Query (sahifa %d) xatosi: %v", page, err)
		}
		if result.Pagination.TotalPages != 3 || result.Pagination.Total != 12 {
			t.Errorf("Sahifa %d: TotalPages=3 Total=12 kutilgan edi, keldi: %+v", page, result.Pagination)
		}
		wantLen := 5
		if page == 3 {
			wantLen = 2
		}
		if len(result.Products) != wantLen {
			t.Errorf("Sahifa %d: %d ta mahsulot kutilgan edi, keldi: %d", page, wantLen, len(result.Products))
		}
		for _, p := range result.Products {
			if seen[p.ID] {
				t.Errorf("Mahsulot %d ikki sahifada takrorlandi", p.ID)
			}
			seen[p.ID] = true
		}
		if result.Pagination.HasPrev != (page > 1) || result.Pagination.HasNext != (page < 3) {
			t.Errorf("Sahifa %d: HasPrev/HasNext noto'g'ri: %+v", page, result.Pagination)
		}
	}
	if len(seen) != 12 {
		t.Errorf("Sahifalar barcha mahsulotni qoplashi kerak: %d/12", len(seen))
	}
}

func TestQueryPageOutOfRange(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())

	result, err := repo.Query(context.Background(), entity.Filter{}, 99)
	if err != nil {
		t.Fatalf("Query xatosi: %v", err)
	}
	if len(result.Products) != 0 {
		t.Errorf("Diapazondan tashqari sahifa bo'sh bo'lishi kerak: %d ta keldi", len(result.Products))
	}
	if result.Pagination.Total != 5 {
		t.Errorf("Total o'zgarmasligi kerak: %d", result.Pagination.Total)
	}
}

func TestQueryStableOrder(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())
	ctx := context.Background()

	first, err := repo.Query(ctx, entity.Filter{Platform: "facebook"}, 1)
	if err != nil {
		t.Fatalf("Query xatosi: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := repo.Query(ctx, entity.Filter{Platform: "facebook"}, 1)
		if err != nil {
			t.Fatalf("Query xatosi: %v", err)
		}
		for j := range first.Products {
			if again.Products[j].ID != first.Products[j].ID {
				t.Fatalf("Natija tartibi o'zgardi: %v vs %v", again.Products[j].ID, first.Products[j].ID)
			}
		}
	}

	// Fayl tartibi saqlanadi (ID lar 1, 2, 5)
	wantIDs := []int64{1, 2, 5}
	for i, p := range first.Products {
		if p.ID != wantIDs[i] {
			t.Errorf("Fayl tartibi kutilgan edi %v, keldi indeks %d: %d", wantIDs, i, p.ID)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	repo := loadTestCatalog(t, testProducts())
	ctx := context.Background()

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All xatosi: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("5 ta mahsulot kutilgan edi, keldi: %d", len(all))
	}

	// Qaytgan slice ni o'zgartirish snapshot ga ta'sir qilmaydi
	all[0].Name = "o'zgartirilgan"
	product, _ := repo.GetByID(ctx, 1)
	if product.Name == "o'zgartirilgan" {
		t.Error("All ichki snapshot ni himoya qilishi kerak")
	}
}
