package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/yourusername/telegram-shop-bot/internal/domain/constants"
	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
	"github.com/yourusername/telegram-shop-bot/internal/domain/repository"
)

// ErrCatalogLoad katalog faylini yuklab bo'lmadi (fayl yo'q yoki format buzuq)
var ErrCatalogLoad = errors.New("catalog load failed")

// ErrProductNotFound mahsulot katalogda topilmadi
var ErrProductNotFound = errors.New("product not found")

type memoryCatalogRepository struct {
	mu       sync.RWMutex
	path     string
	brackets []entity.PriceBracket

	// Snapshot: Load/Refresh da butunlay almashadi, oraliq holat ko'rinmaydi
	shop          string
	exportedAt    string
	products      []entity.Product // fayl tartibida (query natijalari barqaror)
	platformStats []entity.PlatformStat
	categoryStats map[string][]entity.CategoryStat
	bracketStats  []entity.PriceBracketStat
}

// NewMemoryCatalogRepository in-memory katalog repository yaratish
func NewMemoryCatalogRepository(path string, brackets []entity.PriceBracket) repository.CatalogRepository {
	return &memoryCatalogRepository{
		path:     path,
		brackets: brackets,
	}
}

// Load katalogni JSON fayldan yuklash. Xatolikda oldingi snapshot qoladi.
func (m *memoryCatalogRepository) Load(ctx context.Context) error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}

	var catalog entity.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	if catalog.Products == nil {
		return fmt.Errorf("%w: products massivi topilmadi", ErrCatalogLoad)
	}

	platformStats, categoryStats, bracketStats := calculateStats(catalog.Products, m.brackets)

	m.mu.Lock()
	m.shop = catalog.Shop
	m.exportedAt = catalog.ExportedAt
	m.products = catalog.Products
	m.platformStats = platformStats
	m.categoryStats = categoryStats
	m.bracketStats = bracketStats
	m.mu.Unlock()

	return nil
}

// Refresh katalogni qayta yuklash
func (m *memoryCatalogRepository) Refresh(ctx context.Context) error {
	return m.Load(ctx)
}

// calculateStats barcha statistikani bitta o'tishda hisoblash.
// Har load da to'liq qayta hisoblanadi, inkremental yangilanish yo'q.
func calculateStats(products []entity.Product, brackets []entity.PriceBracket) (
	[]entity.PlatformStat, map[string][]entity.CategoryStat, []entity.PriceBracketStat,
) {
	platformIdx := make(map[string]int)
	var platformStats []entity.PlatformStat

	categoryIdx := make(map[string]map[string]int)
	categoryStats := make(map[string][]entity.CategoryStat)

	bracketStats := make([]entity.PriceBracketStat, len(brackets))
	for i, b := range brackets {
		bracketStats[i] = entity.PriceBracketStat{Label: b.Label, Min: b.Min, Max: b.Max}
	}

	for _, product := range products {
		platform := product.Platform
		if platform == "" {
			platform = "Unknown"
		}
		category := product.PlatformCategory
		if category == "" {
			category = "Uncategorized"
		}

		// Platforma statistikasi (birinchi uchragan tartibda)
		i, ok := platformIdx[platform]
		if !ok {
			i = len(platformStats)
			platformIdx[platform] = i
			platformStats = append(platformStats, entity.PlatformStat{Platform: platform})
		}
		platformStats[i].Total++
		if product.InStock() {
			platformStats[i].InStock++
		}

		// Platforma ichidagi kategoriya statistikasi
		if _, ok := categoryIdx[platform]; !ok {
			categoryIdx[platform] = make(map[string]int)
		}
		j, ok := categoryIdx[platform][category]
		if !ok {
			j = len(categoryStats[platform])
			categoryIdx[platform][category] = j
			categoryStats[platform] = append(categoryStats[platform], entity.CategoryStat{PlatformCategory: category})
		}
		categoryStats[platform][j].Total++
		if product.InStock() {
			categoryStats[platform][j].InStock++
		}

		// Narx oralig'i: birinchi mos kelgan oraliq yutadi.
		// Hech bir oraliqqa tushmagan narx hisobga kirmaydi (yig'indi < total bo'lishi mumkin).
		for k := range bracketStats {
			if brackets[k].Contains(product.Price) {
				bracketStats[k].Total++
				if product.InStock() {
					bracketStats[k].InStock++
				}
				break
			}
		}
	}

	return platformStats, categoryStats, bracketStats
}

// GetByID ID bo'yicha mahsulotni olish (chiziqli qidiruv, katalog kichik)
func (m *memoryCatalogRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.products {
		if m.products[i].ID == id {
			product := m.products[i]
			return &product, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

// All barcha mahsulotlar (fayl tartibida)
func (m *memoryCatalogRepository) All(ctx context.Context) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]entity.Product(nil), m.products...), nil
}

// Query filter va sahifa bo'yicha mahsulotlarni olish
func (m *memoryCatalogRepository) Query(ctx context.Context, filter entity.Filter, page int) (*entity.PageResult, error) {
	m.mu.RLock()
	products := m.products
	m.mu.RUnlock()

	filtered := applyFilter(products, filter)

	limit := constants.ProductsPerPage
	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	offset := (page - 1) * limit

	var pageProducts []entity.Product
	if offset >= 0 && offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		pageProducts = append(pageProducts, filtered[offset:end]...)
	}

	return &entity.PageResult{
		Products: pageProducts,
		Pagination: entity.Pagination{
			Page:       page,
			TotalPages: totalPages,
			Total:      total,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// applyFilter AND-predikatlarni ketma-ket qo'llash
func applyFilter(products []entity.Product, filter entity.Filter) []entity.Product {
	filtered := products

	if filter.Platform != "" {
		filtered = keep(filtered, func(p entity.Product) bool {
			return p.Platform == filter.Platform
		})
	}
	if filter.Category != "" {
		filtered = keep(filtered, func(p entity.Product) bool {
			return p.PlatformCategory == filter.Category
		})
	}
	if filter.PriceMin != nil || filter.PriceMax != nil {
		filtered = keep(filtered, func(p entity.Product) bool {
			if filter.PriceMin != nil && p.Price < *filter.PriceMin {
				return false
			}
			if filter.PriceMax != nil && p.Price > *filter.PriceMax {
				return false
			}
			return true
		})
	}
	if filter.InStock {
		filtered = keep(filtered, entity.Product.InStock)
	}
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		filtered = keep(filtered, func(p entity.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term) ||
				strings.Contains(strings.ToLower(p.PlatformCategory), term)
		})
	}

	return filtered
}

func keep(products []entity.Product, pred func(entity.Product) bool) []entity.Product {
	var out []entity.Product
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// PlatformStats platformalar bo'yicha statistika
func (m *memoryCatalogRepository) PlatformStats(ctx context.Context) ([]entity.PlatformStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]entity.PlatformStat(nil), m.platformStats...), nil
}

// CategoryStats platforma ichidagi kategoriyalar statistikasi
func (m *memoryCatalogRepository) CategoryStats(ctx context.Context, platform string) ([]entity.CategoryStat, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats, known := m.categoryStats[platform]
	return append([]entity.CategoryStat(nil), stats...), known, nil
}

// PriceBracketStats narx oraliqlari bo'yicha statistika.
// Faqat mahsuloti bor oraliqlar qaytadi.
func (m *memoryCatalogRepository) PriceBracketStats(ctx context.Context) ([]entity.PriceBracketStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var stats []entity.PriceBracketStat
	for _, s := range m.bracketStats {
		if s.Total > 0 {
			stats = append(stats, s)
		}
	}
	return stats, nil
}

// Summary umumiy katalog statistikasi
func (m *memoryCatalogRepository) Summary(ctx context.Context) (*entity.CatalogSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summary := &entity.CatalogSummary{
		Shop:          m.shop,
		TotalProducts: len(m.products),
	}
	for _, p := range m.products {
		if p.InStock() {
			summary.InStock++
		}
	}
	summary.OutOfStock = summary.TotalProducts - summary.InStock
	return summary, nil
}
