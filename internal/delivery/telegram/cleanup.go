package telegram

import (
	"context"
	"log"
	"time"

	"github.com/yourusername/telegram-shop-bot/internal/domain/constants"
)

// cleanupSessions - eskirgan qidiruv sessiyalarini tozalash (memory leak oldini olish)
func (h *BotHandler) cleanupSessions(ctx context.Context) {
	ticker := time.NewTicker(constants.SessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()

			h.searchMu.Lock()
			removed := 0
			for userID, session := range h.searchSessions {
				if now.Sub(session.StartedAt) > constants.SearchSessionTimeout {
					delete(h.searchSessions, userID)
					removed++
				}
			}
			h.searchMu.Unlock()

			if removed > 0 {
				log.Printf("🧹 %d ta eskirgan qidiruv sessiyasi tozalandi", removed)
			}
		}
	}
}
