package telegram

import (
	"context"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback query larini qayta ishlash
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID
	messageID := cq.Message.MessageID
	data := cq.Data

	// Callback ga javob (spinnerni to'xtatish)
	h.answerCallback(cq, "", false)

	parts := strings.Split(data, "|")
	switch parts[0] {
	case "lang":
		if len(parts) != 2 {
			return
		}
		h.setUserLang(userID, parts[1])
		lang := h.getUserLang(userID)
		h.showView(chatID, messageID, welcomeMessage(lang), mainMenuKeyboard(lang))

	case "main_menu":
		h.showMainMenu(chatID, userID, messageID)

	case "browse":
		if len(parts) != 2 {
			return
		}
		switch parts[1] {
		case "platform":
			h.showPlatforms(ctx, chatID, userID, messageID)
		case "price":
			h.showPriceRanges(ctx, chatID, userID, messageID)
		}

	case "platform":
		if len(parts) != 2 {
			return
		}
		h.showCategories(ctx, chatID, userID, parts[1], messageID)

	case "cat":
		if len(parts) != 3 {
			return
		}
		h.showCategoryProducts(ctx, chatID, userID, parts[1], parts[2], 1, messageID)

	case "price":
		if len(parts) != 3 {
			return
		}
		priceMin, err1 := strconv.ParseFloat(parts[1], 64)
		priceMax, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil {
			log.Printf("⚠️ Buzuq price callback: %q", data)
			return
		}
		h.showPriceProducts(ctx, chatID, userID, priceMin, priceMax, 1, messageID)

	case "in_stock":
		h.showInStockProducts(ctx, chatID, userID, 1, messageID)

	case "search":
		h.startSearch(chatID, userID)

	case "pg":
		if len(parts) != 2 {
			return
		}
		page, err := strconv.Atoi(parts[1])
		if err != nil || page < 1 {
			return
		}
		h.handlePagination(ctx, chatID, userID, page, messageID)

	case "pg_info", "cart_qty":
		// Bezak tugmalari, bosilganda hech narsa qilinmaydi

	case "view":
		if len(parts) != 2 {
			return
		}
		productID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return
		}
		h.showProductDetail(ctx, chatID, userID, productID, messageID)

	case "add":
		if len(parts) != 2 {
			return
		}
		productID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return
		}
		h.handleAddToCart(ctx, chatID, userID, productID)

	case "view_cart":
		h.viewCart(ctx, chatID, userID, messageID)

	case "cart_inc":
		if len(parts) != 2 {
			return
		}
		h.adjustCartQuantity(ctx, chatID, userID, parts[1], 1, messageID)

	case "cart_dec":
		if len(parts) != 2 {
			return
		}
		h.adjustCartQuantity(ctx, chatID, userID, parts[1], -1, messageID)

	case "cart_rm":
		if len(parts) != 2 {
			return
		}
		h.removeCartItem(ctx, chatID, userID, parts[1], messageID)

	case "cart_clear":
		h.confirmClearCart(chatID, userID, messageID)

	case "cart_clear_yes":
		h.clearCart(ctx, chatID, userID, messageID)

	case "checkout":
		h.checkout(ctx, chatID, userID)

	case "settings":
		h.showSettings(chatID, userID, messageID)

	case "choose_lang":
		lang := h.getUserLang(userID)
		h.showView(chatID, messageID, t(lang,
			"🌐 *Choose your language:*",
			"🌐 *请选择语言：*"), languageSelectorKeyboard())

	case "statistics":
		h.showStatistics(ctx, chatID, userID, messageID)

	case "help":
		h.showHelp(chatID, userID, messageID)

	default:
		log.Printf("⚠️ Noma'lum callback: %q (user=%d)", data, userID)
	}
}
