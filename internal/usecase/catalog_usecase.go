package usecase

import (
	"context"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
	"github.com/yourusername/telegram-shop-bot/internal/domain/repository"
)

// CatalogUseCase katalog bilan bog'liq business logic
type CatalogUseCase interface {
	// Refresh katalogni qayta yuklash. Xatolikda oxirgi yaxshi snapshot qoladi.
	Refresh(ctx context.Context) error

	// GetProduct ID bo'yicha mahsulotni olish
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// Browse filter va sahifa bo'yicha mahsulotlarni olish
	Browse(ctx context.Context, filter entity.Filter, page int) (*entity.PageResult, error)

	// AllProducts barcha mahsulotlar (admin export uchun)
	AllProducts(ctx context.Context) ([]entity.Product, error)

	// PlatformStats platformalar bo'yicha statistika
	PlatformStats(ctx context.Context) ([]entity.PlatformStat, error)

	// CategoryStats platforma kategoriyalari statistikasi (known=false: noma'lum platforma)
	CategoryStats(ctx context.Context, platform string) ([]entity.CategoryStat, bool, error)

	// PriceBracketStats narx oraliqlari statistikasi
	PriceBracketStats(ctx context.Context) ([]entity.PriceBracketStat, error)

	// Summary umumiy katalog statistikasi
	Summary(ctx context.Context) (*entity.CatalogSummary, error)
}

type catalogUseCase struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogUseCase yangi CatalogUseCase yaratish
func NewCatalogUseCase(catalogRepo repository.CatalogRepository) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: catalogRepo,
	}
}

func (u *catalogUseCase) Refresh(ctx context.Context) error {
	return u.catalogRepo.Refresh(ctx)
}

func (u *catalogUseCase) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return u.catalogRepo.GetByID(ctx, id)
}

func (u *catalogUseCase) Browse(ctx context.Context, filter entity.Filter, page int) (*entity.PageResult, error) {
	return u.catalogRepo.Query(ctx, filter, page)
}

func (u *catalogUseCase) AllProducts(ctx context.Context) ([]entity.Product, error) {
	return u.catalogRepo.All(ctx)
}

func (u *catalogUseCase) PlatformStats(ctx context.Context) ([]entity.PlatformStat, error) {
	return u.catalogRepo.PlatformStats(ctx)
}

func (u *catalogUseCase) CategoryStats(ctx context.Context, platform string) ([]entity.CategoryStat, bool, error) {
	return u.catalogRepo.CategoryStats(ctx, platform)
}

func (u *catalogUseCase) PriceBracketStats(ctx context.Context) ([]entity.PriceBracketStat, error) {
	return u.catalogRepo.PriceBracketStats(ctx)
}

func (u *catalogUseCase) Summary(ctx context.Context) (*entity.CatalogSummary, error) {
	return u.catalogRepo.Summary(ctx)
}
