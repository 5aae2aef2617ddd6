package handlers

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

func (h *Handlers) handleSetLocation(ctx context.Context, msg *tgbotapi.Message) {
	user, err := h.repos.User.GetByTelegramID(ctx, msg.From.ID)
	if err != nil {
		log.Printf("Failed to retrieve user %d: %v", msg.From.ID, err)
		h.sendMessage(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}
	if user == nil {
		h.sendMessage(msg.Chat.ID, "You need to sign up first. Use /start to get going.")
		return
	}

	conv := &conversation{user: user}
	if user.HasLocation() {
		conv.state = stateLocationConfirm
		h.conversations.put(msg.From.ID, conv)
		h.sendMessageWithKeyboard(msg.Chat.ID, "You already set a location. Do you want to replace it?", yesNoKeyboard())
		return
	}

	conv.state = stateLocationInput
	h.conversations.put(msg.From.ID, conv)
	h.sendMessageWithKeyboard(msg.Chat.ID, "Share your location with the button below.", locationKeyboard())
}

func (h *Handlers) handleLocationConfirm(conv *conversation, msg *tgbotapi.Message) {
	switch strings.ToLower(strings.TrimSpace(msg.Text)) {
	case "yes":
		conv.state = stateLocationInput
		h.sendMessageWithKeyboard(msg.Chat.ID, "Share your new location with the button below.", locationKeyboard())
	case "no":
		h.conversations.remove(msg.From.ID)
		h.sendMessageWithKeyboard(msg.Chat.ID, "Ok, keeping your current location.", removeKeyboard())
	default:
		h.sendMessageWithKeyboard(msg.Chat.ID, "Please answer Yes or No.", yesNoKeyboard())
	}
}

func (h *Handlers) handleLocationInput(ctx context.Context, conv *conversation, msg *tgbotapi.Message) {
	if msg.Location == nil {
		h.sendMessageWithKeyboard(msg.Chat.ID, "Please share your location with the button below, or /cancel to stop.", locationKeyboard())
		return
	}

	h.conversations.remove(msg.From.ID)
	h.saveLocation(ctx, conv.user, msg.Chat.ID, msg.Location.Latitude, msg.Location.Longitude)
}

// saveLocation updates the existing row when there is one, otherwise it
// creates a fresh one. A user never has more than a single location.
func (h *Handlers) saveLocation(ctx context.Context, user *models.User, chatID int64, latitude, longitude float64) {
	if user.Location != nil {
		if err := h.repos.Location.Update(ctx, user.Location.ID, latitude, longitude); err != nil {
			log.Printf("Failed to update location for user %s: %v", user.ID, err)
			h.sendMessageWithKeyboard(chatID, "Something went wrong, please try again later.", removeKeyboard())
			return
		}
		user.Location.Latitude = latitude
		user.Location.Longitude = longitude
		h.sendMessageWithKeyboard(chatID, "Location updated! 📍", removeKeyboard())
		return
	}

	location := &models.Location{
		UserID:    user.ID,
		Latitude:  latitude,
		Longitude: longitude,
	}
	if err := h.repos.Location.Create(ctx, location); err != nil {
		log.Printf("Failed to create location for user %s: %v", user.ID, err)
		h.sendMessageWithKeyboard(chatID, "Something went wrong, please try again later.", removeKeyboard())
		return
	}
	user.Location = location
	h.sendMessageWithKeyboard(chatID, "Location saved! 📍", removeKeyboard())
}
