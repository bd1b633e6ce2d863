package telegram

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-shop-bot/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot *tgbotapi.BotAPI

	catalogUseCase usecase.CatalogUseCase
	cartUseCase    usecase.CartUseCase

	adminIDs []int64

	// User language preferences
	langMu   sync.RWMutex
	userLang map[int64]string

	// Qidiruv rejimidagi foydalanuvchilar
	searchMu       sync.RWMutex
	searchSessions map[int64]*searchSession

	// Oxirgi ro'yxat ko'rinishi (sahifalash uchun)
	browseMu  sync.RWMutex
	browseCtx map[int64]*browseContext
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	adminIDs []int64,
	catalogUseCase usecase.CatalogUseCase,
	cartUseCase usecase.CartUseCase,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotHandler{
		bot:            bot,
		catalogUseCase: catalogUseCase,
		cartUseCase:    cartUseCase,
		adminIDs:       adminIDs,
		userLang:       make(map[int64]string),
		searchSessions: make(map[int64]*searchSession),
		browseCtx:      make(map[int64]*browseContext),
	}, nil
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}

func (h *BotHandler) isAdmin(userID int64) bool {
	for _, id := range h.adminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (h *BotHandler) setBrowseContext(userID int64, filter browseContext) {
	h.browseMu.Lock()
	h.browseCtx[userID] = &filter
	h.browseMu.Unlock()
}

func (h *BotHandler) getBrowseContext(userID int64) (*browseContext, bool) {
	h.browseMu.RLock()
	defer h.browseMu.RUnlock()
	ctx, ok := h.browseCtx[userID]
	return ctx, ok
}
