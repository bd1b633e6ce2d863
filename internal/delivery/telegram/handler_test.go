package telegram

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

func newTestHandler() *BotHandler {
	return &BotHandler{
		userLang:       make(map[int64]string),
		searchSessions: make(map[int64]*searchSession),
		browseCtx:      make(map[int64]*browseContext),
	}
}

func TestConsumeSearchSession(t *testing.T) {
	handler := newTestHandler()

	// Session yo'q - qidiruv rejimi emas
	if handler.consumeSearchSession(100) {
		t.Error("Sessionsiz consume false qaytarishi kerak")
	}

	// Yangi session bir marta ishlatiladi
	handler.searchSessions[100] = &searchSession{StartedAt: time.Now()}
	if !handler.consumeSearchSession(100) {
		t.Error("Yangi session aktiv bo'lishi kerak")
	}
	if handler.consumeSearchSession(100) {
		t.Error("Session bir marta ishlatilgandan keyin o'chadi")
	}
}

func TestConsumeSearchSessionExpired(t *testing.T) {
	handler := newTestHandler()

	// 60 soniyadan eski session eskirgan hisoblanadi
	handler.searchSessions[100] = &searchSession{StartedAt: time.Now().Add(-61 * time.Second)}
	if handler.consumeSearchSession(100) {
		t.Error("Eskirgan session aktiv bo'lmasligi kerak")
	}

	// Eskirgan session ham olib tashlanadi
	handler.searchMu.RLock()
	_, exists := handler.searchSessions[100]
	handler.searchMu.RUnlock()
	if exists {
		t.Error("Eskirgan session consume dan keyin o'chirilishi kerak")
	}
}

func TestBrowseContextPerUser(t *testing.T) {
	handler := newTestHandler()

	min := 50.0
	handler.setBrowseContext(100, browseContext{
		Filter: entity.Filter{Platform: "facebook"},
		Title:  "Facebook",
	})
	handler.setBrowseContext(200, browseContext{
		Filter: entity.Filter{PriceMin: &min},
		Title:  "Narx",
	})

	ctxA, ok := handler.getBrowseContext(100)
	if !ok || ctxA.Filter.Platform != "facebook" {
		t.Errorf("User 100 konteksti noto'g'ri: %+v", ctxA)
	}
	ctxB, ok := handler.getBrowseContext(200)
	if !ok || ctxB.Filter.PriceMin == nil || *ctxB.Filter.PriceMin != 50 {
		t.Errorf("User 200 konteksti noto'g'ri: %+v", ctxB)
	}

	if _, ok := handler.getBrowseContext(300); ok {
		t.Error("Kontekstsiz foydalanuvchi uchun ok=false kutilgan")
	}
}

func TestUserLangDefault(t *testing.T) {
	handler := newTestHandler()

	if lang := handler.getUserLang(100); lang != "en" {
		t.Errorf("Default til en bo'lishi kerak, keldi: %q", lang)
	}

	handler.setUserLang(100, "zh")
	if lang := handler.getUserLang(100); lang != "zh" {
		t.Errorf("zh kutilgan edi, keldi: %q", lang)
	}

	// Noma'lum til default ga tushadi
	handler.setUserLang(200, "fr")
	if lang := handler.getUserLang(200); lang != "en" {
		t.Errorf("Noma'lum til en ga tushishi kerak, keldi: %q", lang)
	}
}

func TestDisplayPriceMarkup(t *testing.T) {
	// Xitoy tilida ko'rsatiladigan narx 1.5 barobar
	if got := displayPrice("en", 100); got != 100 {
		t.Errorf("en narxi o'zgarmasligi kerak: %v", got)
	}
	if got := displayPrice("zh", 100); got != 150 {
		t.Errorf("zh narxi 150 bo'lishi kerak: %v", got)
	}
}

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/start", "start"},
		{"/export@MyShopBot", "export"},
		{"/refresh extra args", "refresh"},
		{"  /cart  ", "cart"},
		{"oddiy matn", ""},
		{"/", ""},
	}
	for _, tc := range tests {
		msg := &tgbotapi.Message{Text: tc.text}
		if got := extractCommand(msg); got != tc.want {
			t.Errorf("extractCommand(%q) = %q, kutilgan %q", tc.text, got, tc.want)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("qisqa", 35); got != "qisqa" {
		t.Errorf("Qisqa matn o'zgarmasligi kerak: %q", got)
	}

	long := "Facebook Business Manager Verified Unlimited Spend Account"
	got := truncateText(long, 35)
	if len([]rune(got)) > 35 {
		t.Errorf("Qisqartirilgan matn 35 runedan oshmasligi kerak: %d", len([]rune(got)))
	}

	// Ko'p baytli belgilar bilan ham rune chegarasi buzilmaydi
	zh := "脸书商业管理器账户无限制消费已恢复个人账户粉丝页面广告账户脸书商业管理器账户"
	got = truncateText(zh, 10)
	if len([]rune(got)) > 10 {
		t.Errorf("Xitoycha matn ham rune bo'yicha qisqarishi kerak: %d", len([]rune(got)))
	}
}
