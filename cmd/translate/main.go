package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourusername/telegram-shop-bot/config"
	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
	"github.com/yourusername/telegram-shop-bot/internal/infrastructure/gemini"
	"github.com/yourusername/telegram-shop-bot/internal/usecase"
	"github.com/yourusername/telegram-shop-bot/pkg/logger"
)

// Katalog faylini xitoycha tarjimalar bilan boyitadi.
// Bot runtime da tarjima qilmaydi - bu tool oldindan ishga tushiriladi.
func main() {
	logger.Init()

	var inPath, outPath string
	flag.StringVar(&inPath, "in", "", "kirish katalog JSON fayli (default: PRODUCTS_FILE)")
	flag.StringVar(&outPath, "out", "", "chiqish fayli (default: kirish faylning o'zi)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("❌ GEMINI_API_KEY environment variable bo'sh")
	}

	if inPath == "" {
		inPath = cfg.ProductsFile
	}
	if outPath == "" {
		outPath = inPath
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("❌ Katalog faylini o'qib bo'lmadi: %v", err)
	}
	var catalog entity.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		log.Fatalf("❌ Katalog JSON buzuq: %v", err)
	}
	if catalog.Products == nil {
		log.Fatal("❌ Katalogda products massivi topilmadi")
	}
	logger.InfoLogger.Printf("📖 %s: %d ta mahsulot o'qildi", inPath, len(catalog.Products))

	translator, err := gemini.NewGeminiTranslator(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("❌ Gemini translator yaratilmadi: %v", err)
	}
	translateUseCase := usecase.NewTranslateUseCase(translator)

	// Ctrl+C bosilsa jarayon to'xtaydi, fayl yozilmaydi
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	translated, report, err := translateUseCase.TranslateAll(ctx, catalog.Products)
	if err != nil {
		log.Fatalf("❌ Tarjima to'xtadi: %v", err)
	}
	catalog.Products = translated

	out, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		log.Fatalf("❌ Katalogni serialize qilib bo'lmadi: %v", err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		log.Fatalf("❌ Natijani yozib bo'lmadi: %v", err)
	}

	logger.InfoLogger.Printf("✅ %s yozildi: %d batch, %d ta tarjima", outPath, report.Batches, report.Translated)
	if report.Degraded() {
		logger.InfoLogger.Printf("⚠️ %d ta batch tarjimasiz qoldi (asl matn saqlandi)", report.FailedBatches)
	}
}
