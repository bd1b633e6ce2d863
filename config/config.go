package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken     string
	GeminiAPIKey      string
	ProductsFile      string
	AdminIDs          []int64
	AllowEmptySecrets bool
}

// PriceBrackets narx oraliqlari (statistika va browse-by-price uchun).
// Birinchi mos kelgan oraliq hisoblanadi; 49.99/50 chegarasida quyi oraliq yutadi.
var PriceBrackets = []entity.PriceBracket{
	{Label: "Under $50", Min: 0, Max: 49.99},
	{Label: "$50-$100", Min: 50, Max: 100},
	{Label: "$100-$200", Min: 100, Max: 200},
	{Label: "$200+", Min: 200, Max: 999999},
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		ProductsFile:      getEnvDefault("PRODUCTS_FILE", "products.json"),
		AllowEmptySecrets: getEnvBool("ALLOW_EMPTY_SECRETS", false),
	}

	if rawAdmins := os.Getenv("ADMIN_IDS"); rawAdmins != "" {
		admins, err := parseAdminIDs(rawAdmins)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_IDS noto'g'ri formatda: %v", err)
		}
		config.AdminIDs = admins
	}

	// Token validatsiyasi binary larning o'zida: bot TELEGRAM_BOT_TOKEN ni,
	// translate tool GEMINI_API_KEY ni talab qiladi.
	return config, nil
}

func parseAdminIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("admin ID noto'g'ri: %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getEnvDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
