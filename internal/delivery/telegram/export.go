package telegram

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// handleExportCommand katalogni Excel faylga eksport qilish (faqat admin)
func (h *BotHandler) handleExportCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	if !h.isAdmin(userID) {
		h.sendMessage(chatID, "❌ Bu komanda faqat adminlar uchun.")
		return
	}

	products, err := h.catalogUseCase.AllProducts(ctx)
	if err != nil {
		log.Printf("❌ Eksport uchun katalogni o'qib bo'lmadi: %v", err)
		h.sendMessage(chatID, "❌ Katalogni o'qishda xatolik yuz berdi.")
		return
	}

	xlsxBytes, err := buildCatalogExportXLSX(products)
	if err != nil {
		log.Printf("❌ Eksport xlsx xatosi: %v", err)
		h.sendMessage(chatID, "❌ Excel fayl tayyorlashda xatolik yuz berdi.")
		return
	}

	filename := fmt.Sprintf("catalog_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: xlsxBytes})
	doc.Caption = fmt.Sprintf("📦 Katalog eksporti\nJami: %d ta mahsulot", len(products))
	if _, err := h.bot.Send(doc); err != nil {
		log.Printf("❌ Eksport yuborish xatosi: %v", err)
		h.sendMessage(chatID, "❌ Excel fayl yuborishda xatolik yuz berdi.")
	}
}

func buildCatalogExportXLSX(products []entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Name", "Description", "Price", "Stock", "Platform", "Category", "Name (ZH)", "Category (ZH)"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, p := range products {
		values := []interface{}{
			p.ID, p.Name, p.Description, p.Price, p.Stock,
			p.Platform, p.PlatformCategory, p.NameZH, p.CategoryZH,
		}
		rowIdx := i + 2
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
