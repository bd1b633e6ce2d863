package telegram

import (
	"fmt"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// zhPriceMarkup xitoy tilidagi foydalanuvchilar uchun narx koeffitsienti.
// Faqat ko'rsatish uchun - savat hisob-kitobi doim asl narxda.
const zhPriceMarkup = 1.5

// Language helpers
func (h *BotHandler) setUserLang(userID int64, lang string) {
	h.langMu.Lock()
	defer h.langMu.Unlock()
	if lang != "zh" {
		lang = "en"
	}
	h.userLang[userID] = lang
}

func (h *BotHandler) getUserLang(userID int64) string {
	h.langMu.RLock()
	defer h.langMu.RUnlock()
	if lang, ok := h.userLang[userID]; ok {
		return lang
	}
	return "en"
}

// t tilga qarab matn tanlash
func t(lang, en, zh string) string {
	if lang == "zh" {
		return zh
	}
	return en
}

// localizedName mahsulot nomi (zh uchun tarjima, bo'lmasa asl)
func localizedName(lang string, p entity.Product) string {
	if lang == "zh" && p.NameZH != "" {
		return p.NameZH
	}
	return p.Name
}

func localizedDescription(lang string, p entity.Product) string {
	if lang == "zh" && p.DescriptionZH != "" {
		return p.DescriptionZH
	}
	return p.Description
}

func localizedCategory(lang string, p entity.Product) string {
	if lang == "zh" && p.CategoryZH != "" {
		return p.CategoryZH
	}
	return p.PlatformCategory
}

// displayPrice ko'rsatish narxi (zh uchun markup qo'llanadi)
func displayPrice(lang string, price float64) float64 {
	if lang == "zh" {
		return price * zhPriceMarkup
	}
	return price
}

// formatPrice narxni valyuta belgisi bilan formatlash.
// Valyuta belgisi doim USD, xitoy tilida ham.
func formatPrice(lang string, price float64) string {
	return fmt.Sprintf("$%.2f", displayPrice(lang, price))
}

var platformEmojis = map[string]string{
	"facebook":  "📘",
	"gmail":     "📧",
	"accounts":  "🔗",
	"tiktok":    "🎵",
	"instagram": "📷",
	"reddit":    "🤖",
	"snapchat":  "👻",
}

var categoryEmojis = map[string]string{
	"Personal Accounts":     "👤",
	"Business Manager":      "💼",
	"Fan Pages Reinstated":  "📄",
	"Advertising Accounts":  "📊",
	"Google General":        "🌐",
	"Mixed Accounts":        "🔄",
	"TikTok Accounts":       "🎵",
	"Instagram Accounts":    "📷",
	"Reddit Accounts":       "🤖",
	"Telegram Accounts":     "💬",
}

func platformEmoji(platform string) string {
	if emoji, ok := platformEmojis[platform]; ok {
		return emoji
	}
	return "📦"
}

func categoryEmoji(category string) string {
	if emoji, ok := categoryEmojis[category]; ok {
		return emoji
	}
	return "📂"
}

func welcomeMessage(lang string) string {
	return t(lang,
		`🛍️ *Welcome to the Advertising Accounts Store!*

Browse our premium collection of social media accounts:
• Facebook Personal & Business Manager accounts
• Gmail accounts
• Professional advertising accounts

All accounts are verified and ready to use. Choose from the menu below to get started!`,
		`🛍️ *欢迎来到广告账户商店！*

浏览我们的优质社交媒体账户：
• Facebook 个人和商业管理器账户
• Gmail 账户
• 专业广告账户

所有账户均已验证，即买即用。从下面的菜单开始选购！`)
}

func mainMenuMessage(lang string) string {
	return t(lang,
		"🏠 *Main Menu*\n\nChoose an option below to browse our products:",
		"🏠 *主菜单*\n\n选择下面的选项浏览产品：")
}

func errorMessage(lang string) string {
	return t(lang,
		"❌ Something went wrong. Please try again.",
		"❌ 出错了，请重试。")
}

func noProductsMessage(lang string) string {
	return t(lang,
		"❌ No products found in this category.",
		"❌ 该类别中没有找到产品。")
}

func outOfStockMessage(lang string) string {
	return t(lang,
		"⚠️ This product is currently out of stock.",
		"⚠️ 该产品目前缺货。")
}

func cartEmptyMessage(lang string) string {
	return t(lang,
		"🛒 Your cart is empty.",
		"🛒 您的购物车是空的。")
}
