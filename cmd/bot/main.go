package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/yourusername/telegram-shop-bot/config"
	"github.com/yourusername/telegram-shop-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-shop-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-shop-bot/internal/usecase"
	"github.com/yourusername/telegram-shop-bot/pkg/logger"
)

func main() {
	// Logger ni ishga tushirish
	logger.Init()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if isEmptyOrDisabled(cfg.TelegramToken) {
		if !cfg.AllowEmptySecrets {
			log.Fatal("❌ TELEGRAM_BOT_TOKEN environment variable bo'sh")
		}
		logger.InfoLogger.Println("TELEGRAM_BOT_TOKEN bo'sh. Bot vaqtincha ishga tushmaydi.")
		<-sigChan
		return
	}

	// Dependencies ni yaratish (Dependency Injection)

	// 1. Repositories (in-memory)
	catalogRepo := storage.NewMemoryCatalogRepository(cfg.ProductsFile, config.PriceBrackets)
	cartRepo := storage.NewMemoryCartRepository(nil)
	logger.InfoLogger.Println("✅ Repositories tayyor (in-memory)")

	// 2. Katalogni yuklash. Startupda yuklanmasa ishga tushmaymiz -
	// bo'sh katalog bilan ishlashdan foyda yo'q.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := catalogRepo.Load(ctx); err != nil {
		log.Fatalf("❌ Katalog yuklanmadi (%s): %v", cfg.ProductsFile, err)
	}
	summary, err := catalogRepo.Summary(ctx)
	if err != nil {
		log.Fatalf("❌ Katalog statistikasi o'qilmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ Katalog yuklandi: %d ta mahsulot (%d omborda)", summary.TotalProducts, summary.InStock)

	// 3. Use cases
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, catalogRepo)
	logger.InfoLogger.Println("✅ Use cases tayyor")

	// 4. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		cfg.AdminIDs,
		catalogUseCase,
		cartUseCase,
	)
	if err != nil {
		log.Fatalf("❌ Bot handler yaratilmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot tayyor: @%s", botHandler.GetBotUsername())

	// Botni alohida goroutine da ishga tushirish
	go func() {
		if err := botHandler.Start(ctx); err != nil && err != context.Canceled {
			logger.ErrorLogger.Printf("❌ Bot xatosi: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")

	// Signal kutish
	<-sigChan
	logger.InfoLogger.Println("⏳ To'xtatish signali qabul qilindi...")

	// Graceful shutdown
	cancel()
	logger.InfoLogger.Println("✅ Bot to'xtatildi.")
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}
