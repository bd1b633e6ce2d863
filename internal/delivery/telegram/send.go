package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendMessage oddiy text xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

// sendMarkdown markdown + inline keyboard bilan xabar yuborish
func (h *BotHandler) sendMarkdown(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) (*tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	sent, err := h.bot.Send(msg)
	if err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
		return nil, err
	}
	return &sent, nil
}

// editMarkdown mavjud xabarni yangilash. Edit o'xshamasa yangi xabar yuboriladi
// (eski xabar o'chirilgan bo'lishi mumkin).
func (h *BotHandler) editMarkdown(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if keyboard != nil {
		edit.ReplyMarkup = keyboard
	}
	if _, err := h.bot.Send(edit); err != nil {
		log.Printf("Xabarni yangilashda xatolik: %v", err)
		h.sendMarkdownOrLog(chatID, text, keyboard)
	}
}

// showView messageID bor bo'lsa edit, bo'lmasa yangi xabar
func (h *BotHandler) showView(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if messageID != 0 {
		h.editMarkdown(chatID, messageID, text, keyboard)
		return
	}
	h.sendMarkdownOrLog(chatID, text, keyboard)
}

func (h *BotHandler) sendMarkdownOrLog(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if _, err := h.sendMarkdown(chatID, text, keyboard); err != nil {
		log.Printf("Fallback xabar ham yuborilmadi: %v", err)
	}
}

// answerCallback callback spinnerini to'xtatish
func (h *BotHandler) answerCallback(cq *tgbotapi.CallbackQuery, text string, showAlert bool) {
	callback := tgbotapi.NewCallback(cq.ID, text)
	callback.ShowAlert = showAlert
	if _, err := h.bot.Request(callback); err != nil {
		log.Printf("Callback javobida xatolik: %v", err)
	}
}
