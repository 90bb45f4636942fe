package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"synctech/internal/config"
	"synctech/internal/models"
)

// TelegramService pings the operator's chat when the public site produces a
// new contact submission.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	dryRun bool
}

func NewTelegramService(cfg config.TelegramConfig) (*TelegramService, error) {
	if cfg.DryRun || cfg.BotToken == "" || cfg.ChatID == 0 {
		return &TelegramService{dryRun: true}, nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramService{bot: bot, chatID: cfg.ChatID}, nil
}

func (t *TelegramService) NotifyContactSubmission(sub *models.ContactSubmission) error {
	text := fmt.Sprintf("New contact submission\nFrom: %s <%s>\n\n%s", sub.Name, sub.Email, sub.Message)
	if t.dryRun {
		log.Printf("[tg][dry-run] %s", text)
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}
