package entity

import "time"

// CartEntry foydalanuvchi savatidagi bitta yozuv.
// Har bir (user, product) juftligi uchun ko'pi bilan bitta yozuv bo'ladi.
type CartEntry struct {
	CartID    string
	UserID    int64
	ProductID int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine katalog bilan birlashtirilgan savat qatori (ko'rinish uchun).
// Name/Price/Stock o'qish paytida katalogdan olinadi, saqlanmaydi.
type CartLine struct {
	CartID    string
	ProductID int64
	Name      string
	Price     float64
	Stock     int
	Quantity  int
}

// LineTotal qator summasi
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// TranslationReport tarjima jarayoni hisoboti.
// Muvaffaqiyatsiz batchlar asl matn bilan o'tkazib yuboriladi,
// hisobot orqali "ma'lumot yo'q" va "tarjima o'xshamadi" farqlanadi.
type TranslationReport struct {
	Batches       int
	FailedBatches int
	Translated    int
}

// Degraded hech bo'lmaganda bitta batch tarjimasiz qolganmi
func (r TranslationReport) Degraded() bool {
	return r.FailedBatches > 0
}
