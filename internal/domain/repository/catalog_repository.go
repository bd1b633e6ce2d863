package repository

import (
	"context"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// CatalogRepository katalog bilan ishlash uchun interface.
// Katalog har load/refresh da butunlay almashtiriladi, qisman yangilanmaydi.
type CatalogRepository interface {
	// Load katalogni manbadan yuklash. Xatolikda oldingi snapshot saqlanib qoladi.
	Load(ctx context.Context) error

	// Refresh katalogni qayta yuklash (qo'lda chaqiriladi, timer yo'q)
	Refresh(ctx context.Context) error

	// GetByID ID bo'yicha mahsulotni olish
	GetByID(ctx context.Context, id int64) (*entity.Product, error)

	// All barcha mahsulotlar (fayl tartibida, export uchun)
	All(ctx context.Context) ([]entity.Product, error)

	// Query filter va sahifa bo'yicha mahsulotlarni olish.
	// Katalogni o'zgartirmaydi; natija tartibi barqaror (fayl tartibi).
	Query(ctx context.Context, filter entity.Filter, page int) (*entity.PageResult, error)

	// PlatformStats platformalar bo'yicha statistika
	PlatformStats(ctx context.Context) ([]entity.PlatformStat, error)

	// CategoryStats platforma ichidagi kategoriyalar statistikasi.
	// known=false noma'lum platforma degani (bo'sh natija bilan farqlash uchun).
	CategoryStats(ctx context.Context, platform string) (stats []entity.CategoryStat, known bool, err error)

	// PriceBracketStats narx oraliqlari bo'yicha statistika
	PriceBracketStats(ctx context.Context) ([]entity.PriceBracketStat, error)

	// Summary umumiy katalog statistikasi
	Summary(ctx context.Context) (*entity.CatalogSummary, error)
}
