package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// Callback data sxemasi: action|param1|param2 (64 bayt limitga sig'adi)

func languageSelectorKeyboard() *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇺🇸 English", "lang|en"),
			tgbotapi.NewInlineKeyboardButtonData("🇨🇳 中文", "lang|zh"),
		),
	)
	return &markup
}

func mainMenuKeyboard(lang string) *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "📱 Browse by Platform", "📱 按平台浏览"), "browse|platform"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "💰 Browse by Price", "💰 按价格浏览"), "browse|price"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🔥 In Stock Now", "🔥 现货"), "in_stock"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🔍 Search", "🔍 搜索"), "search"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🛒 Cart", "🛒 购物车"), "view_cart"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "⚙️ Settings", "⚙️ 设置"), "settings"),
		),
	)
	return &markup
}

func platformMenuKeyboard(lang string, stats []entity.PlatformStat) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, stat := range stats {
		text := fmt.Sprintf("%s %s (%d/%d)", platformEmoji(stat.Platform), strings.ToUpper(stat.Platform), stat.InStock, stat.Total)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, "platform|"+stat.Platform),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "🔙 Back to Menu", "🔙 返回菜单"), "main_menu"),
	))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func categoryMenuKeyboard(lang, platform string, stats []entity.CategoryStat) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, stat := range stats {
		text := fmt.Sprintf("%s %s (%d/%d)", categoryEmoji(stat.PlatformCategory), stat.PlatformCategory, stat.InStock, stat.Total)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, "cat|"+platform+"|"+stat.PlatformCategory),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "🔙 Back to Platforms", "🔙 返回平台"), "browse|platform"),
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "🏠 Main Menu", "🏠 主菜单"), "main_menu"),
	))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func priceMenuKeyboard(lang string, stats []entity.PriceBracketStat) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, stat := range stats {
		text := fmt.Sprintf("💰 %s (%d/%d)", stat.Label, stat.InStock, stat.Total)
		data := fmt.Sprintf("price|%g|%g", stat.Min, stat.Max)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, data),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "🔙 Back to Menu", "🔙 返回菜单"), "main_menu"),
	))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

// productListKeyboard mahsulotlar ro'yxati + sahifalash qatori
func productListKeyboard(lang string, result *entity.PageResult) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, product := range result.Products {
		stockIcon := "✅"
		if !product.InStock() {
			stockIcon = "❌"
		}
		text := fmt.Sprintf("%s %s - %s", stockIcon, truncateText(localizedName(lang, product), 35), formatPrice(lang, product.Price))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, fmt.Sprintf("view|%d", product.ID)),
		))
	}

	if result.Pagination.TotalPages > 1 {
		var pageRow []tgbotapi.InlineKeyboardButton
		if result.Pagination.HasPrev {
			pageRow = append(pageRow, tgbotapi.NewInlineKeyboardButtonData(
				t(lang, "◀️ Prev", "◀️ 上页"), fmt.Sprintf("pg|%d", result.Pagination.Page-1)))
		}
		pageRow = append(pageRow, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("📄 %d/%d", result.Pagination.Page, result.Pagination.TotalPages), "pg_info"))
		if result.Pagination.HasNext {
			pageRow = append(pageRow, tgbotapi.NewInlineKeyboardButtonData(
				t(lang, "Next ▶️", "下页 ▶️"), fmt.Sprintf("pg|%d", result.Pagination.Page+1)))
		}
		rows = append(rows, pageRow)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "🏠 Main Menu", "🏠 主菜单"), "main_menu"),
	))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func productDetailKeyboard(lang string, product entity.Product) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if product.InStock() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🛒 Add to Cart", "🛒 加入购物车"), fmt.Sprintf("add|%d", product.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "🛒 View Cart", "🛒 查看购物车"), "view_cart"),
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "🏠 Main Menu", "🏠 主菜单"), "main_menu"),
	))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

// cartKeyboard har bir qator uchun -/miqdor/+/o'chirish tugmalari
func cartKeyboard(lang string, lines []entity.CartLine) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, line := range lines {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", "cart_dec|"+line.CartID),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d", line.Quantity), "cart_qty"),
			tgbotapi.NewInlineKeyboardButtonData("➕", "cart_inc|"+line.CartID),
			tgbotapi.NewInlineKeyboardButtonData("🗑️", "cart_rm|"+line.CartID),
		))
	}
	if len(lines) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "💳 Checkout", "💳 结账"), "checkout"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🗑️ Clear Cart", "🗑️ 清空购物车"), "cart_clear"),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "🛍️ Continue Shopping", "🛍️ 继续购物"), "main_menu"),
	))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func confirmationKeyboard(lang, confirmData, cancelData string) *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "✅ Confirm", "✅ 确认"), confirmData),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "❌ Cancel", "❌ 取消"), cancelData),
		),
	)
	return &markup
}

func settingsKeyboard(lang string) *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🌐 Language", "🌐 语言"), "choose_lang"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "📊 Statistics", "📊 统计"), "statistics"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "❓ Help", "❓ 帮助"), "help"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🏠 Main Menu", "🏠 主菜单"), "main_menu"),
		),
	)
	return &markup
}

func backToMenuKeyboard(lang string) *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "🏠 Main Menu", "🏠 主菜单"), "main_menu"),
		),
	)
	return &markup
}

func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}
