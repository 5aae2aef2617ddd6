package bot

import (
	"encoding/json"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// The tgbotapi v5 Update struct predates Bot API 7.0 and has no
// message_reaction field, so the bot polls getUpdates itself and decodes into
// this extended shape. Everything else rides on the library's types.

// ReactionType is a single reaction on a message. Only emoji reactions carry
// an emoji; custom-emoji reactions leave it empty.
type ReactionType struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
}

// MessageReactionUpdated mirrors the Bot API object of the same name.
type MessageReactionUpdated struct {
	Chat        tgbotapi.Chat  `json:"chat"`
	MessageID   int            `json:"message_id"`
	User        *tgbotapi.User `json:"user,omitempty"`
	Date        int            `json:"date"`
	OldReaction []ReactionType `json:"old_reaction"`
	NewReaction []ReactionType `json:"new_reaction"`
}

// Update extends the library's Update with the reaction payload.
type Update struct {
	tgbotapi.Update
	MessageReaction *MessageReactionUpdated `json:"message_reaction,omitempty"`
}

// allowedUpdates must name message_reaction explicitly or Telegram will not
// deliver reaction events at all.
const allowedUpdates = `["message","callback_query","message_reaction"]`

func (b *Bot) getUpdates(offset int, timeout int) ([]Update, error) {
	params := tgbotapi.Params{}
	params.AddNonZero("offset", offset)
	params.AddNonZero("timeout", timeout)
	params["allowed_updates"] = allowedUpdates

	resp, err := b.api.MakeRequest("getUpdates", params)
	if err != nil {
		return nil, fmt.Errorf("getUpdates failed: %w", err)
	}

	var updates []Update
	if err := json.Unmarshal(resp.Result, &updates); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}
	return updates, nil
}
