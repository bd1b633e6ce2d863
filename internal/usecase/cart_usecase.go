package usecase

import (
	"context"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
	"github.com/yourusername/telegram-shop-bot/internal/domain/repository"
)

// CartUseCase savat bilan bog'liq business logic.
// Stock tekshiruvi bu yerda emas - handler savatga qo'shishdan oldin tekshiradi.
type CartUseCase interface {
	// Add savatga qo'shish, cart ID qaytadi
	Add(ctx context.Context, userID, productID int64, quantity int) (string, error)

	// View savatni katalog bilan birlashtirib olish.
	// Katalogdan topilmagan mahsulotlar natijadan jimgina tushib qoladi.
	View(ctx context.Context, userID int64) ([]entity.CartLine, error)

	// Total savat summasi (faqat katalogda mavjud mahsulotlar bo'yicha)
	Total(ctx context.Context, userID int64) (float64, error)

	// ItemCount savatdagi miqdorlar yig'indisi
	ItemCount(ctx context.Context, userID int64) (int, error)

	// SetQuantity mutlaq miqdor o'rnatish (<= 0 o'chiradi); noma'lum ID uchun false
	SetQuantity(ctx context.Context, cartID string, quantity int) (bool, error)

	// Remove yozuvni o'chirish (idempotent)
	Remove(ctx context.Context, cartID string) error

	// Clear savatni bo'shatish
	Clear(ctx context.Context, userID int64) error

	// TotalEntries barcha foydalanuvchilardagi yozuvlar soni (admin hisobot uchun)
	TotalEntries(ctx context.Context) (int, error)
}

type cartUseCase struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

// NewCartUseCase yangi CartUseCase yaratish
func NewCartUseCase(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository) CartUseCase {
	return &cartUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

func (u *cartUseCase) Add(ctx context.Context, userID, productID int64, quantity int) (string, error) {
	return u.cartRepo.AddItem(ctx, userID, productID, quantity)
}

// View savat yozuvlarini o'qish paytida katalog bilan join qilish.
// Name/Price/Stock saqlanmaydi, har safar katalogdan olinadi.
func (u *cartUseCase) View(ctx context.Context, userID int64) ([]entity.CartLine, error) {
	entries, err := u.cartRepo.Entries(ctx, userID)
	if err != nil {
		return nil, err
	}

	var lines []entity.CartLine
	for _, entry := range entries {
		product, err := u.catalogRepo.GetByID(ctx, entry.ProductID)
		if err != nil {
			// Mahsulot katalogdan chiqib ketgan - qator ko'rinmaydi
			continue
		}
		lines = append(lines, entity.CartLine{
			CartID:    entry.CartID,
			ProductID: entry.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Stock:     product.Stock,
			Quantity:  entry.Quantity,
		})
	}
	return lines, nil
}

func (u *cartUseCase) Total(ctx context.Context, userID int64) (float64, error) {
	lines, err := u.View(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, line := range lines {
		total += line.LineTotal()
	}
	return total, nil
}

func (u *cartUseCase) ItemCount(ctx context.Context, userID int64) (int, error) {
	return u.cartRepo.ItemCount(ctx, userID)
}

func (u *cartUseCase) SetQuantity(ctx context.Context, cartID string, quantity int) (bool, error) {
	return u.cartRepo.SetQuantity(ctx, cartID, quantity)
}

func (u *cartUseCase) Remove(ctx context.Context, cartID string) error {
	return u.cartRepo.RemoveItem(ctx, cartID)
}

func (u *cartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.cartRepo.Clear(ctx, userID)
}

func (u *cartUseCase) TotalEntries(ctx context.Context) (int, error) {
	return u.cartRepo.TotalEntries(ctx)
}
