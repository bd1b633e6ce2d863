package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}
	userID := message.From.ID
	chatID := message.Chat.ID
	lang := h.getUserLang(userID)

	cmd := extractCommand(message)
	if cmd == "" {
		h.sendMessage(chatID, t(lang,
			"Unknown command. Use /help for available commands.",
			"未知命令。使用 /help 查看可用命令。"))
		return
	}

	switch cmd {
	case "start":
		// Har doim til tanlash menyusini yuborish
		h.showWelcome(chatID)
	case "menu":
		h.showMainMenu(chatID, userID, 0)
	case "cart":
		h.viewCart(ctx, chatID, userID, 0)
	case "search":
		h.startSearch(chatID, userID)
	case "help":
		h.showHelp(chatID, userID, 0)
	case "lang":
		h.sendMarkdownOrLog(chatID, t(lang,
			"🌐 *Choose your language:*",
			"🌐 *请选择语言：*"), languageSelectorKeyboard())
	case "refresh":
		h.handleRefreshCommand(ctx, message)
	case "stats":
		h.handleStatsCommand(ctx, message)
	case "export":
		h.handleExportCommand(ctx, message)
	default:
		h.sendMessage(chatID, t(lang,
			"Unknown command. Use /help for available commands.",
			"未知命令。使用 /help 查看可用命令。"))
	}
}

func extractCommand(msg *tgbotapi.Message) string {
	if msg == nil {
		return ""
	}
	if msg.IsCommand() {
		return msg.Command()
	}
	txt := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(txt, "/") {
		return ""
	}
	first := strings.Fields(txt)[0]
	first = strings.TrimPrefix(first, "/")
	if first == "" {
		return ""
	}
	parts := strings.SplitN(first, "@", 2)
	return parts[0]
}

// handleRefreshCommand katalogni qayta yuklash (faqat admin).
// Xatolikda oxirgi yaxshi snapshot xizmatda qoladi.
func (h *BotHandler) handleRefreshCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	if !h.isAdmin(userID) {
		h.sendMessage(chatID, "❌ Bu komanda faqat adminlar uchun.")
		return
	}

	if err := h.catalogUseCase.Refresh(ctx); err != nil {
		log.Printf("❌ Katalog refresh xatosi: %v", err)
		h.sendMessage(chatID, "⚠️ Katalogni yangilab bo'lmadi, oldingi nusxa ishlayapti.")
		return
	}

	summary, err := h.catalogUseCase.Summary(ctx)
	if err != nil {
		h.sendMessage(chatID, "✅ Katalog yangilandi.")
		return
	}
	h.sendMessage(chatID, "✅ Katalog yangilandi: "+formatSummaryLine(summary))
}

// handleStatsCommand katalog statistikasi (faqat admin)
func (h *BotHandler) handleStatsCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	if !h.isAdmin(userID) {
		h.sendMessage(chatID, "❌ Bu komanda faqat adminlar uchun.")
		return
	}

	text, err := h.buildStatsReport(ctx)
	if err != nil {
		log.Printf("❌ Stats xatosi: %v", err)
		h.sendMessage(chatID, errorMessage(h.getUserLang(userID)))
		return
	}
	h.sendMarkdownOrLog(chatID, text, nil)
}
