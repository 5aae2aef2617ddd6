package bot

import (
	"context"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/bot/handlers"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	handlers *handlers.Handlers
}

func New(api *tgbotapi.BotAPI, h *handlers.Handlers) *Bot {
	return &Bot{api: api, handlers: h}
}

// SetCommands registers the command menu shown next to the input field.
func (b *Bot) SetCommands() error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Sign up and get started"},
		tgbotapi.BotCommand{Command: "todo", Description: "Create a new to-do"},
		tgbotapi.BotCommand{Command: "todos", Description: "List your open to-dos"},
		tgbotapi.BotCommand{Command: "setlocation", Description: "Set or update your location"},
		tgbotapi.BotCommand{Command: "weather", Description: "Current weather at your location"},
		tgbotapi.BotCommand{Command: "cancel", Description: "Cancel the current operation"},
		tgbotapi.BotCommand{Command: "help", Description: "Show available commands"},
	)
	_, err := b.api.Request(commands)
	return err
}

func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	offset := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := b.getUpdates(offset, 60)
		if err != nil {
			log.Printf("Failed to get updates: %v", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate runs in its own goroutine per update; a panic here must never
// take the process down with it.
func (b *Bot) handleUpdate(ctx context.Context, update Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic while handling update %d: %v", update.UpdateID, r)
		}
	}()

	switch {
	case update.MessageReaction != nil:
		reaction := handlers.MessageReaction{
			ChatID:    update.MessageReaction.Chat.ID,
			MessageID: update.MessageReaction.MessageID,
		}
		for _, r := range update.MessageReaction.NewReaction {
			reaction.NewEmojis = append(reaction.NewEmojis, r.Emoji)
		}
		b.handlers.HandleMessageReaction(ctx, reaction)

	case update.CallbackQuery != nil:
		b.handlers.HandleCallbackQuery(ctx, update.CallbackQuery)

	case update.Message != nil:
		b.handlers.HandleMessage(ctx, update.Message)
	}
}
