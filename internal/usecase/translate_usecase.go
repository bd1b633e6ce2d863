package usecase

import (
	"context"
	"log"

	"github.com/yourusername/telegram-shop-bot/internal/domain/constants"
	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
	"github.com/yourusername/telegram-shop-bot/internal/domain/repository"
)

// TranslateUseCase mahsulot matnlarini batch tarjima qilish
type TranslateUseCase interface {
	// TranslateAll barcha mahsulotlarni batchlab tarjima qilish.
	// Muvaffaqiyatsiz batch asl matn bilan o'tadi - tarjima sifat yaxshilash,
	// to'g'rilik sharti emas. Hisobot orqali degradatsiya ko'rinadi.
	TranslateAll(ctx context.Context, products []entity.Product) ([]entity.Product, entity.TranslationReport, error)
}

type translateUseCase struct {
	translator repository.Translator
	batchSize  int
}

// NewTranslateUseCase yangi TranslateUseCase yaratish
func NewTranslateUseCase(translator repository.Translator) TranslateUseCase {
	return &translateUseCase{
		translator: translator,
		batchSize:  constants.TranslationBatchSize,
	}
}

func (u *translateUseCase) TranslateAll(ctx context.Context, products []entity.Product) ([]entity.Product, entity.TranslationReport, error) {
	var report entity.TranslationReport
	if len(products) == 0 {
		return products, report, nil
	}

	out := make([]entity.Product, 0, len(products))
	for start := 0; start < len(products); start += u.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}

		end := start + u.batchSize
		if end > len(products) {
			end = len(products)
		}
		batch := products[start:end]
		report.Batches++

		log.Printf("📦 Tarjima batch %d (%d ta mahsulot)", report.Batches, len(batch))
		translated, err := u.translator.TranslateBatch(ctx, batch)
		if err != nil {
			// Batch o'xshamadi - asl matn bilan davom etamiz
			log.Printf("❌ Batch %d tarjima qilinmadi, asl matn qoladi: %v", report.Batches, err)
			report.FailedBatches++
			out = append(out, batch...)
			continue
		}

		report.Translated += len(translated)
		out = append(out, translated...)
	}

	return out, report, nil
}
