package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// showStatistics foydalanuvchi uchun katalog statistikasi ko'rinishi
func (h *BotHandler) showStatistics(ctx context.Context, chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)

	summary, err := h.catalogUseCase.Summary(ctx)
	if err != nil {
		h.sendMessage(chatID, errorMessage(lang))
		return
	}
	platforms, err := h.catalogUseCase.PlatformStats(ctx)
	if err != nil {
		h.sendMessage(chatID, errorMessage(lang))
		return
	}
	brackets, err := h.catalogUseCase.PriceBracketStats(ctx)
	if err != nil {
		h.sendMessage(chatID, errorMessage(lang))
		return
	}

	var b strings.Builder
	b.WriteString(t(lang, "📊 *Store Statistics*\n\n", "📊 *商店统计*\n\n"))
	fmt.Fprintf(&b, t(lang, "📦 Total Products: %d\n", "📦 产品总数：%d\n"), summary.TotalProducts)
	fmt.Fprintf(&b, t(lang, "✅ In Stock: %d\n", "✅ 有库存：%d\n"), summary.InStock)
	fmt.Fprintf(&b, t(lang, "❌ Out of Stock: %d\n\n", "❌ 缺货：%d\n\n"), summary.OutOfStock)

	b.WriteString(t(lang, "*By Platform:*\n", "*按平台：*\n"))
	for _, p := range platforms {
		fmt.Fprintf(&b, "%s %s: %d (%d %s)\n",
			platformEmoji(p.Platform), strings.ToUpper(p.Platform),
			p.Total, p.InStock, t(lang, "in stock", "有库存"))
	}

	b.WriteString(t(lang, "\n*By Price Range:*\n", "\n*按价格范围：*\n"))
	for _, br := range brackets {
		fmt.Fprintf(&b, "💰 %s: %d\n", br.Label, br.Total)
	}

	h.showView(chatID, messageID, b.String(), backToMenuKeyboard(lang))
}

// buildStatsReport admin /stats hisoboti
func (h *BotHandler) buildStatsReport(ctx context.Context) (string, error) {
	summary, err := h.catalogUseCase.Summary(ctx)
	if err != nil {
		return "", err
	}
	platforms, err := h.catalogUseCase.PlatformStats(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("📊 *Katalog statistikasi*\n\n")
	if summary.Shop != "" {
		fmt.Fprintf(&b, "🏪 Do'kon: %s\n", summary.Shop)
	}
	fmt.Fprintf(&b, "📦 Jami: %d\n✅ Omborda: %d\n❌ Tugagan: %d\n\n", summary.TotalProducts, summary.InStock, summary.OutOfStock)
	for _, p := range platforms {
		fmt.Fprintf(&b, "%s %s: %d (%d omborda)\n", platformEmoji(p.Platform), strings.ToUpper(p.Platform), p.Total, p.InStock)
	}

	if entries, err := h.cartUseCase.TotalEntries(ctx); err == nil {
		fmt.Fprintf(&b, "\n🛒 Aktiv savat yozuvlari: %d\n", entries)
	}
	return b.String(), nil
}

func formatSummaryLine(summary *entity.CatalogSummary) string {
	return fmt.Sprintf("%d ta mahsulot, %d omborda", summary.TotalProducts, summary.InStock)
}

// showHelp yordam sahifasi
func (h *BotHandler) showHelp(chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)
	text := t(lang,
		"❓ *Help*\n\n"+
			"*Commands:*\n"+
			"/start - Restart the bot\n"+
			"/menu - Main menu\n"+
			"/search - Search products\n"+
			"/cart - View your cart\n"+
			"/lang - Change language\n"+
			"/help - This message\n\n"+
			"*How to shop:*\n"+
			"1. Browse products by platform or price\n"+
			"2. Add items to your cart\n"+
			"3. Checkout to place your order\n\n"+
			"Need help? Contact support from the checkout screen.",
		"❓ *帮助*\n\n"+
			"*命令：*\n"+
			"/start - 重新启动机器人\n"+
			"/menu - 主菜单\n"+
			"/search - 搜索产品\n"+
			"/cart - 查看购物车\n"+
			"/lang - 更改语言\n"+
			"/help - 此消息\n\n"+
			"*购物流程：*\n"+
			"1. 按平台或价格浏览产品\n"+
			"2. 将商品加入购物车\n"+
			"3. 结算下单\n\n"+
			"需要帮助？请从结算页面联系客服。")
	h.showView(chatID, messageID, text, backToMenuKeyboard(lang))
}

// showSettings sozlamalar sahifasi
func (h *BotHandler) showSettings(chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)
	langName := t(lang, "English 🇬🇧", "中文 🇨🇳")
	text := fmt.Sprintf(t(lang,
		"⚙️ *Settings*\n\nCurrent language: %s",
		"⚙️ *设置*\n\n当前语言：%s"), langName)
	h.showView(chatID, messageID, text, settingsKeyboard(lang))
}
