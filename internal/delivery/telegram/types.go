package telegram

import (
	"time"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// searchSession qidiruv rejimidagi foydalanuvchi holati.
// Keyingi oddiy text xabar qidiruv so'rovi sifatida qabul qilinadi.
type searchSession struct {
	StartedAt time.Time
}

// browseContext foydalanuvchining oxirgi ro'yxat ko'rinishi.
// Sahifalash tugmalari shu filter bilan qayta so'rov yuboradi
// (callback data ga filter sig'maydi, 64 bayt limit bor).
type browseContext struct {
	Filter entity.Filter
	Title  string
}
