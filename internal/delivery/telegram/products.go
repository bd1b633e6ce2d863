package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// showWelcome /start - har doim til tanlashdan boshlanadi
func (h *BotHandler) showWelcome(chatID int64) {
	text := "🌐 *Choose Your Language / 选择语言*\n\nSelect your preferred language:"
	h.sendMarkdownOrLog(chatID, text, languageSelectorKeyboard())
}

func (h *BotHandler) showMainMenu(chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)
	h.showView(chatID, messageID, mainMenuMessage(lang), mainMenuKeyboard(lang))
}

func (h *BotHandler) showPlatforms(ctx context.Context, chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)
	stats, err := h.catalogUseCase.PlatformStats(ctx)
	if err != nil {
		log.Printf("Platforma statistikasi olinmadi: %v", err)
		h.sendMessage(chatID, errorMessage(lang))
		return
	}
	if len(stats) == 0 {
		h.sendMessage(chatID, noProductsMessage(lang))
		return
	}

	text := t(lang,
		"📱 *Browse by Platform*\n\nSelect a platform to view available products:",
		"📱 *按平台浏览*\n\n选择平台查看可用产品：")
	h.showView(chatID, messageID, text, platformMenuKeyboard(lang, stats))
}

func (h *BotHandler) showCategories(ctx context.Context, chatID, userID int64, platform string, messageID int) {
	lang := h.getUserLang(userID)
	stats, known, err := h.catalogUseCase.CategoryStats(ctx, platform)
	if err != nil {
		log.Printf("Kategoriya statistikasi olinmadi: %v", err)
		h.sendMessage(chatID, errorMessage(lang))
		return
	}
	if !known || len(stats) == 0 {
		h.sendMessage(chatID, noProductsMessage(lang))
		return
	}

	text := fmt.Sprintf("%s *%s*\n\n%s", platformEmoji(platform), strings.ToUpper(platform),
		t(lang, "Select a category:", "选择类别："))
	h.showView(chatID, messageID, text, categoryMenuKeyboard(lang, platform, stats))
}

func (h *BotHandler) showPriceRanges(ctx context.Context, chatID, userID int64, messageID int) {
	lang := h.getUserLang(userID)
	stats, err := h.catalogUseCase.PriceBracketStats(ctx)
	if err != nil {
		log.Printf("Narx statistikasi olinmadi: %v", err)
		h.sendMessage(chatID, errorMessage(lang))
		return
	}
	if len(stats) == 0 {
		h.sendMessage(chatID, noProductsMessage(lang))
		return
	}

	text := t(lang,
		"💰 *Browse by Price*\n\nSelect a price range to view products:",
		"💰 *按价格浏览*\n\n选择价格范围查看产品：")
	h.showView(chatID, messageID, text, priceMenuKeyboard(lang, stats))
}

func (h *BotHandler) showCategoryProducts(ctx context.Context, chatID, userID int64, platform, category string, page, messageID int) {
	title := fmt.Sprintf("%s *%s*\n%s *%s*", platformEmoji(platform), strings.ToUpper(platform),
		categoryEmoji(category), category)
	filter := entity.Filter{Platform: platform, Category: category}
	h.showProductList(ctx, chatID, userID, browseContext{Filter: filter, Title: title}, page, messageID)
}

func (h *BotHandler) showPriceProducts(ctx context.Context, chatID, userID int64, priceMin, priceMax float64, page, messageID int) {
	lang := h.getUserLang(userID)
	title := fmt.Sprintf("💰 *%s $%g - $%g*", t(lang, "Products", "产品"), priceMin, priceMax)
	filter := entity.Filter{PriceMin: &priceMin, PriceMax: &priceMax}
	h.showProductList(ctx, chatID, userID, browseContext{Filter: filter, Title: title}, page, messageID)
}

func (h *BotHandler) showInStockProducts(ctx context.Context, chatID, userID int64, page, messageID int) {
	lang := h.getUserLang(userID)
	title := t(lang, "🔥 *Products In Stock*", "🔥 *现货产品*")
	filter := entity.Filter{InStock: true}
	h.showProductList(ctx, chatID, userID, browseContext{Filter: filter, Title: title}, page, messageID)
}

// showProductList umumiy ro'yxat ko'rinishi: so'rov + sahifalash.
// Context keyingi sahifa tugmalari uchun saqlanadi.
func (h *BotHandler) showProductList(ctx context.Context, chatID, userID int64, bctx browseContext, page, messageID int) {
	lang := h.getUserLang(userID)

	result, err := h.catalogUseCase.Browse(ctx, bctx.Filter, page)
	if err != nil {
		log.Printf("Mahsulot so'rovida xatolik: %v", err)
		h.sendMessage(chatID, errorMessage(lang))
		return
	}

	if result.Pagination.Total == 0 {
		h.showView(chatID, messageID, noProductsMessage(lang), backToMenuKeyboard(lang))
		return
	}

	h.setBrowseContext(userID, bctx)

	text := fmt.Sprintf("%s\n\n%s %d/%d • %d %s",
		bctx.Title,
		t(lang, "Page", "第"), result.Pagination.Page, result.Pagination.TotalPages,
		result.Pagination.Total, t(lang, "products", "个产品"))
	h.showView(chatID, messageID, text, productListKeyboard(lang, result))
}

// handlePagination oxirgi ro'yxat contextida boshqa sahifaga o'tish
func (h *BotHandler) handlePagination(ctx context.Context, chatID, userID int64, page, messageID int) {
	bctx, ok := h.getBrowseContext(userID)
	if !ok {
		h.showMainMenu(chatID, userID, messageID)
		return
	}
	h.showProductList(ctx, chatID, userID, *bctx, page, messageID)
}

func (h *BotHandler) showProductDetail(ctx context.Context, chatID, userID, productID int64, messageID int) {
	lang := h.getUserLang(userID)

	product, err := h.catalogUseCase.GetProduct(ctx, productID)
	if err != nil {
		h.sendMessage(chatID, t(lang, "❌ Product not found.", "❌ 未找到产品。"))
		return
	}

	text := formatProductDetail(lang, *product)
	h.showView(chatID, messageID, text, productDetailKeyboard(lang, *product))
}

func formatProductDetail(lang string, product entity.Product) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📦 *%s*\n\n", localizedName(lang, product)))
	if desc := localizedDescription(lang, product); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("💰 %s: %s\n", t(lang, "Price", "价格"), formatPrice(lang, product.Price)))
	if category := localizedCategory(lang, product); category != "" {
		b.WriteString(fmt.Sprintf("%s %s: %s\n", categoryEmoji(product.PlatformCategory), t(lang, "Category", "类别"), category))
	}
	if product.InStock() {
		b.WriteString(fmt.Sprintf("✅ %s: %d\n", t(lang, "In Stock", "现货"), product.Stock))
	} else {
		b.WriteString(fmt.Sprintf("❌ %s\n", t(lang, "Out of Stock", "缺货")))
	}
	return b.String()
}
