package constants

import "time"

// Katalog va sahifalash konstantalari
const (
	// ProductsPerPage bitta sahifada ko'rsatiladigan mahsulotlar soni
	ProductsPerPage = 5

	// SearchSessionTimeout qidiruv rejimi avtomatik yopilish vaqti
	SearchSessionTimeout = 60 * time.Second

	// SessionCleanupInterval eski sessiyalarni tozalash davri
	SessionCleanupInterval = time.Minute
)

// AI Model konstantalari
const (
	// GeminiModelName Gemini AI model nomi
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature AI javob aniqlik darajasi (0.0-1.0)
	AITemperature = 0.1

	// AIMaxOutputTokens tarjima javobi uchun max tokenlar
	AIMaxOutputTokens = 4000

	// TranslationBatchSize bitta so'rovda tarjima qilinadigan mahsulotlar
	TranslationBatchSize = 15

	// TranslationRequestDelay ketma-ket so'rovlar orasidagi minimal kutish
	TranslationRequestDelay = 2 * time.Second
)

// Xabar konstantalari
const (
	// SupportUsername checkoutda ko'rsatiladigan support kontakti
	SupportUsername = "@support_username"

	// SupportEmail checkoutda ko'rsatiladigan support email
	SupportEmail = "support@example.com"
)
