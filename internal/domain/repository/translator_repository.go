package repository

import (
	"context"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// Translator mahsulot matnlarini xitoychaga tarjima qilish uchun interface
type Translator interface {
	// TranslateBatch bitta batch mahsulotlarni tarjima qilish.
	// Natijada NameZH/DescriptionZH/CategoryZH to'ldirilgan nusxalar qaytadi.
	TranslateBatch(ctx context.Context, products []entity.Product) ([]entity.Product, error)
}
