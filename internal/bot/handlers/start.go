package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

func (h *Handlers) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	user, err := h.repos.User.GetByTelegramID(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to retrieve user %d: %v", msg.From.ID, err)
		h.sendMessage(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}
	if user != nil {
		h.sendMessage(msg.Chat.ID, fmt.Sprintf("Welcome back, %s! Use /help to see what I can do.", user.FirstName))
		return
	}

	h.conversations.put(msg.From.ID, &conversation{state: stateStartConsent})
	text := fmt.Sprintf(
		"Hi %s! I'm your personal assistant bot. 🤖\n\n"+
			"I can keep track of your Todos and remind you when they are due.\n"+
			"To do that I need to store your Telegram profile data. Is that ok?",
		msg.From.FirstName,
	)
	h.sendMessageWithKeyboard(msg.Chat.ID, text, yesNoKeyboard())
}

func (h *Handlers) handleStartConsent(ctx context.Context, conv *conversation, msg *tgbotapi.Message) {
	switch strings.ToLower(strings.TrimSpace(msg.Text)) {
	case "yes":
	case "no":
		h.conversations.remove(msg.From.ID)
		h.sendMessageWithKeyboard(msg.Chat.ID, "No problem! If you change your mind, just send /start again.", removeKeyboard())
		return
	default:
		h.sendMessageWithKeyboard(msg.Chat.ID, "Please answer Yes or No.", yesNoKeyboard())
		return
	}

	user := &models.User{
		FirstName:  msg.From.FirstName,
		TelegramID: msg.From.ID,
	}
	if msg.From.LastName != "" {
		user.LastName = &msg.From.LastName
	}
	if msg.From.UserName != "" {
		user.Username = &msg.From.UserName
	}

	if err := h.repos.User.Create(ctx, user); err != nil {
		log.Printf("Failed to create user %d: %v", msg.From.ID, err)
		h.conversations.remove(msg.From.ID)
		h.sendMessageWithKeyboard(msg.Chat.ID, "Something went wrong, please try again later.", removeKeyboard())
		return
	}

	conv.user = user
	conv.state = stateStartLocation
	h.sendMessageWithKeyboard(msg.Chat.ID,
		"You're all set! 🎉\n\n"+
			"One more thing: if you share your location I can schedule Todos in your timezone "+
			"and tell you the weather. Share it below, or send /skip to do it later.",
		locationKeyboard())
}

func (h *Handlers) handleStartLocation(ctx context.Context, conv *conversation, msg *tgbotapi.Message) {
	if msg.IsCommand() && msg.Command() == "skip" {
		h.conversations.remove(msg.From.ID)
		h.sendMessageWithKeyboard(msg.Chat.ID, "Ok! You can set it anytime with /setlocation.", removeKeyboard())
		return
	}
	if msg.Location == nil {
		h.sendMessageWithKeyboard(msg.Chat.ID, "Please share your location with the button below, or send /skip.", locationKeyboard())
		return
	}

	h.conversations.remove(msg.From.ID)
	h.saveLocation(ctx, conv.user, msg.Chat.ID, msg.Location.Latitude, msg.Location.Longitude)
}
