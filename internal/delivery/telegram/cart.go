package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-shop-bot/internal/domain/constants"
)

// handleAddToCart mahsulotni savatga qo'shish.
// Stock tekshiruvi shu yerda - Cart Store o'zi tekshirmaydi.
func (h *BotHandler) handleAddToCart(ctx context.Context, chatID, userID, productID int64) {
	lang := h.getUserLang(userID)

	product, err := h.catalogUseCase.GetProduct(ctx, productID)
	if err != nil {
		h.sendMessage(chatID, t(lang, "❌ Product not found.", "❌ 未找到产品。"))
		return
	}
	if !product.InStock() {
		h.sendMessage(chatID, outOfStockMessage(lang))
		return
	}

	if _, err := h.cartUseCase.Add(ctx, userID, productID, 1); err != nil {
		log.Printf("Savatga qo'shishda xatolik: %v", err)
		h.sendMessage(chatID, errorMessage(lang))
		return
	}

	text := fmt.Sprintf("%s\n\n📦 *%s*\n💰 %s",
		t(lang, "✅ Product added to cart!", "✅ 产品已加入购物车！"),
		localizedName(lang, *product), formatPrice(lang, product.Price))
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🛒 View Cart", "🛒 查看购物车"), "view_cart"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🛍️ Continue Shopping", "🛍️ 继续购物"), "main_menu"),
		),
	)
	h.sendMarkdownOrLog(chatID, text, &markup)
}

// viewCart savatni ko'rsatish (o'qish paytida katalog bilan join)
func (h *BotHandler) viewCart(ctx context.Context, chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)

	lines, err := h.cartUseCase.View(ctx, userID)
	if err != nil {
		log.Printf("Savatni o'qishda xatolik: %v", err)
		h.sendMessage(chatID, errorMessage(lang))
		return
	}

	if len(lines) == 0 {
		h.showView(chatID, messageID, cartEmptyMessage(lang), backToMenuKeyboard(lang))
		return
	}

	var total float64
	text := t(lang, "🛒 *Your Cart*\n\n", "🛒 *您的购物车*\n\n")
	for _, line := range lines {
		total += line.LineTotal()
		text += fmt.Sprintf("📦 %s\n   %s × %d = %s\n\n",
			line.Name, formatPrice(lang, line.Price), line.Quantity, formatPrice(lang, line.LineTotal()))
	}
	text += fmt.Sprintf("💳 *%s: %s*", t(lang, "Total", "总计"), formatPrice(lang, total))

	h.showView(chatID, messageID, text, cartKeyboard(lang, lines))
}

// adjustCartQuantity +1/-1 tugmalari. O'qish va yozish orasida boshqa bosish
// aralashishi mumkin (qabul qilingan race, testda hujjatlangan).
func (h *BotHandler) adjustCartQuantity(ctx context.Context, chatID, userID int64, cartID string, delta, messageID int) {
	lang := h.getUserLang(userID)

	lines, err := h.cartUseCase.View(ctx, userID)
	if err != nil {
		h.sendMessage(chatID, errorMessage(lang))
		return
	}

	for _, line := range lines {
		if line.CartID != cartID {
			continue
		}
		if _, err := h.cartUseCase.SetQuantity(ctx, cartID, line.Quantity+delta); err != nil {
			log.Printf("Miqdorni o'zgartirishda xatolik: %v", err)
			h.sendMessage(chatID, errorMessage(lang))
			return
		}
		h.viewCart(ctx, chatID, userID, messageID)
		return
	}

	// Yozuv topilmadi - savat allaqachon o'zgargan
	h.viewCart(ctx, chatID, userID, messageID)
}

func (h *BotHandler) removeCartItem(ctx context.Context, chatID, userID int64, cartID string, messageID int) {
	lang := h.getUserLang(userID)
	if err := h.cartUseCase.Remove(ctx, cartID); err != nil {
		log.Printf("Savatdan o'chirishda xatolik: %v", err)
		h.sendMessage(chatID, errorMessage(lang))
		return
	}
	h.viewCart(ctx, chatID, userID, messageID)
}

func (h *BotHandler) confirmClearCart(chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)
	text := t(lang,
		"🗑️ *Clear Cart*\n\nAre you sure you want to remove all items from your cart?",
		"🗑️ *清空购物车*\n\n确定要删除购物车中的所有商品吗？")
	h.showView(chatID, messageID, text, confirmationKeyboard(lang, "cart_clear_yes", "view_cart"))
}

func (h *BotHandler) clearCart(ctx context.Context, chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)
	if err := h.cartUseCase.Clear(ctx, userID); err != nil {
		log.Printf("Savatni tozalashda xatolik: %v", err)
		h.sendMessage(chatID, errorMessage(lang))
		return
	}
	text := t(lang,
		"✅ *Cart Cleared*\n\nAll items have been removed from your cart.",
		"✅ *购物车已清空*\n\n所有商品已从购物车中删除。")
	h.showView(chatID, messageID, text, backToMenuKeyboard(lang))
}

// checkout buyurtma xulosasi - to'lov yo'q, support bilan bog'lanishga yo'naltiradi
func (h *BotHandler) checkout(ctx context.Context, chatID, userID int64) {
	lang := h.getUserLang(userID)

	lines, err := h.cartUseCase.View(ctx, userID)
	if err != nil {
		h.sendMessage(chatID, errorMessage(lang))
		return
	}
	if len(lines) == 0 {
		h.sendMessage(chatID, cartEmptyMessage(lang))
		return
	}

	var total float64
	text := t(lang, "💳 *Checkout*\n\n📋 *Order Summary:*\n", "💳 *结账*\n\n📋 *订单摘要：*\n")
	for _, line := range lines {
		total += line.LineTotal()
		text += fmt.Sprintf("• %s\n  %s × %d = %s\n\n",
			line.Name, formatPrice(lang, line.Price), line.Quantity, formatPrice(lang, line.LineTotal()))
	}
	text += fmt.Sprintf("💰 *%s: %s*\n\n", t(lang, "Total", "总计"), formatPrice(lang, total))
	text += t(lang,
		"📞 *Next Steps:*\n1. Contact our support team\n2. Send this order summary\n3. Choose payment method\n4. Receive your accounts\n\n",
		"📞 *后续步骤：*\n1. 联系客服团队\n2. 发送此订单摘要\n3. 选择付款方式\n4. 接收您的账户\n\n")
	text += fmt.Sprintf("💬 *%s:* %s\n📧 *Email:* %s",
		t(lang, "Contact", "联系方式"), constants.SupportUsername, constants.SupportEmail)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🔙 Back to Cart", "🔙 返回购物车"), "view_cart"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🏠 Main Menu", "🏠 主菜单"), "main_menu"),
		),
	)
	h.sendMarkdownOrLog(chatID, text, &markup)
}
