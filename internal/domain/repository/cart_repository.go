package repository

import (
	"context"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// CartRepository savat yozuvlari bilan ishlash uchun interface.
// Mahsulot mavjudligini yoki stockni tekshirmaydi - bu caller vazifasi.
type CartRepository interface {
	// AddItem savatga qo'shish. (user, product) juftligi mavjud bo'lsa
	// quantity qo'shiladi va mavjud cart ID qaytadi, aks holda yangi yozuv.
	AddItem(ctx context.Context, userID, productID int64, quantity int) (string, error)

	// Entries foydalanuvchining barcha savat yozuvlari
	Entries(ctx context.Context, userID int64) ([]entity.CartEntry, error)

	// SetQuantity mutlaq miqdorni o'rnatish. quantity <= 0 bo'lsa yozuv
	// o'chiriladi. Noma'lum cart ID uchun false qaytadi, xato emas.
	SetQuantity(ctx context.Context, cartID string, quantity int) (bool, error)

	// RemoveItem yozuvni o'chirish (idempotent)
	RemoveItem(ctx context.Context, cartID string) error

	// Clear foydalanuvchining barcha yozuvlarini o'chirish
	Clear(ctx context.Context, userID int64) error

	// ItemCount foydalanuvchi savatidagi miqdorlar yig'indisi (yozuvlar soni emas)
	ItemCount(ctx context.Context, userID int64) (int, error)

	// TotalEntries barcha foydalanuvchilardagi yozuvlar soni (admin /stats uchun)
	TotalEntries(ctx context.Context) (int, error)
}
