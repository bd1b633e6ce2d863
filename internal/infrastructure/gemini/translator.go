package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/telegram-shop-bot/internal/domain/constants"
	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
	"github.com/yourusername/telegram-shop-bot/internal/domain/repository"
	"google.golang.org/api/option"
)

type geminiTranslator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	mu     sync.Mutex
	last   time.Time
	delay  time.Duration
}

// NewGeminiTranslator yangi Gemini tarjimon client yaratish
func NewGeminiTranslator(apiKey string) (repository.Translator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(constants.GeminiModelName)

	// Model konfiguratsiyasi - tarjima uchun aniqlik muhim
	model.SetTemperature(constants.AITemperature)
	model.SetMaxOutputTokens(constants.AIMaxOutputTokens)

	return &geminiTranslator{
		client: client,
		model:  model,
		delay:  constants.TranslationRequestDelay,
	}, nil
}

// batchItem prompt ichidagi mahsulot (id = batch ichidagi indeks)
type batchItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type batchResponse struct {
	Products []batchItem `json:"products"`
}

// TranslateBatch bitta batch mahsulotlarni xitoychaga tarjima qilish
func (g *geminiTranslator) TranslateBatch(ctx context.Context, products []entity.Product) ([]entity.Product, error) {
	if len(products) == 0 {
		return products, nil
	}

	if err := g.waitRateLimit(ctx); err != nil {
		return nil, err
	}

	log.Printf("🇨🇳 %d ta mahsulot xitoychaga tarjima qilinmoqda...", len(products))

	prompt, err := buildTranslationPrompt(products)
	if err != nil {
		return nil, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no response candidates")
	}

	responseText := extractText(resp)
	parsed, err := parseTranslationResponse(responseText)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ %d ta mahsulot tarjima qilindi", len(parsed.Products))
	return mergeTranslations(products, parsed.Products), nil
}

// waitRateLimit ketma-ket so'rovlar orasida minimal kutish
func (g *geminiTranslator) waitRateLimit(ctx context.Context) error {
	g.mu.Lock()
	wait := g.delay - time.Since(g.last)
	if wait < 0 {
		wait = 0
	}
	g.last = time.Now().Add(wait)
	g.mu.Unlock()

	if wait == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

func buildTranslationPrompt(products []entity.Product) (string, error) {
	items := make([]batchItem, len(products))
	for i, p := range products {
		category := p.PlatformCategory
		if category == "" {
			category = "General"
		}
		items[i] = batchItem{
			ID:          i,
			Name:        p.Name,
			Description: p.Description,
			Category:    category,
		}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Translate the following English advertising account products to Chinese (Simplified). These are digital social media accounts and advertising services for Chinese customers.

PRODUCTS TO TRANSLATE:
%s

TRANSLATION RULES:
1. Translate product names and descriptions from English to Chinese (Simplified)
2. Keep brand names like "Facebook", "Instagram", "Gmail", "Google" in English
3. Translate technical terms appropriately for Chinese users:
   - "Business Manager" → "商业管理器"
   - "Personal Accounts" → "个人账户"
   - "Advertising Accounts" → "广告账户"
   - "Fan Pages" → "粉丝页面"
   - "Reinstated" → "已恢复"
   - "UNLIMITED" → "无限制"
   - "NO LIMIT" → "无限制"
4. Convert currency symbols: $ → ¥ (but keep the numbers as they will be adjusted by pricing system)
5. Translate account capabilities and features clearly for Chinese market
6. Make descriptions professional and appealing to Chinese customers
7. Keep technical specifications and numbers intact
8. Translate common phrases:
   - "Can create" → "可创建"
   - "Can spend" → "可消费"
   - "No ban risk" → "无封号风险"
   - "Already created" → "已创建"
   - "Currency can be changed" → "可更改货币"
   - "Since first day" → "从第一天起"

REQUIRED RESPONSE FORMAT (valid JSON only):
{
  "products": [
    {
      "id": 0,
      "name": "Chinese translated name",
      "description": "Chinese translated description",
      "category": "Chinese translated category"
    }
  ]
}

Return only the JSON response, no additional text.`, string(data)), nil
}

// parseTranslationResponse javobdan JSON qismini ajratib olish.
// Model ba'zan JSON atrofida qo'shimcha matn qaytaradi.
func parseTranslationResponse(responseText string) (*batchResponse, error) {
	jsonText := responseText
	start := strings.Index(responseText, "{")
	end := strings.LastIndex(responseText, "}")
	if start != -1 && end > start {
		jsonText = responseText[start : end+1]
	}

	var parsed batchResponse
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, fmt.Errorf("invalid translation response: %w", err)
	}
	if parsed.Products == nil {
		return nil, fmt.Errorf("invalid translation response: missing products array")
	}
	return &parsed, nil
}

// mergeTranslations tarjimalarni asl mahsulotlarga birlashtirish.
// Topilmagan yoki bo'sh maydonlar asl matn bilan qoladi.
func mergeTranslations(originals []entity.Product, translated []batchItem) []entity.Product {
	byID := make(map[int]batchItem, len(translated))
	for _, t := range translated {
		byID[t.ID] = t
	}

	out := make([]entity.Product, len(originals))
	for i, original := range originals {
		out[i] = original
		t, ok := byID[i]
		if !ok {
			continue
		}
		out[i].NameZH = fallback(t.Name, original.Name)
		out[i].DescriptionZH = fallback(t.Description, original.Description)
		out[i].CategoryZH = fallback(t.Category, original.PlatformCategory)
	}
	return out
}

func fallback(value, original string) string {
	if strings.TrimSpace(value) == "" {
		return original
	}
	return value
}

func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}
