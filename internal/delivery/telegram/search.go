package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/telegram-shop-bot/internal/domain/constants"
	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// startSearch qidiruv rejimini yoqish. Session 60 soniyadan keyin
// o'z-o'zidan eskiradi (cleanupSessions + o'qish paytidagi tekshiruv).
func (h *BotHandler) startSearch(chatID, userID int64) {
	lang := h.getUserLang(userID)
	text := t(lang,
		"🔍 *Search Products*\n\nEnter your search term:",
		"🔍 *搜索产品*\n\n请输入搜索关键词：")
	if _, err := h.sendMarkdown(chatID, text, nil); err != nil {
		return
	}

	h.searchMu.Lock()
	h.searchSessions[userID] = &searchSession{StartedAt: time.Now()}
	h.searchMu.Unlock()
}

// consumeSearchSession sessionni olib tashlab, aktivligini qaytaradi.
// Eskirgan session ham olib tashlanadi, lekin false qaytadi.
func (h *BotHandler) consumeSearchSession(userID int64) bool {
	h.searchMu.Lock()
	defer h.searchMu.Unlock()

	session, ok := h.searchSessions[userID]
	if !ok {
		return false
	}
	delete(h.searchSessions, userID)
	return time.Since(session.StartedAt) <= constants.SearchSessionTimeout
}

// runSearch matn bo'yicha qidiruv natijalarini ko'rsatish
func (h *BotHandler) runSearch(ctx context.Context, chatID, userID int64, term string, page, messageID int) {
	lang := h.getUserLang(userID)

	filter := entity.Filter{Search: term}
	result, err := h.catalogUseCase.Browse(ctx, filter, page)
	if err != nil {
		h.sendMessage(chatID, errorMessage(lang))
		return
	}

	if result.Pagination.Total == 0 {
		text := fmt.Sprintf(t(lang,
			"🔍 No products found for \"%s\"\n\nTry different keywords or browse by category.",
			"🔍 未找到与\"%s\"相关的产品\n\n请尝试其他关键词或按类别浏览。"), term)
		h.sendMarkdownOrLog(chatID, text, backToMenuKeyboard(lang))
		return
	}

	title := fmt.Sprintf(t(lang, "🔍 *Search Results for \"%s\"*", "🔍 *\"%s\"的搜索结果*"), term)
	h.showProductList(ctx, chatID, userID, browseContext{Filter: filter, Title: title}, page, messageID)
}
