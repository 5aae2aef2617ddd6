package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = `<b>Here's what I can do:</b>

/start - sign up
/todo - create a new Todo
/todos - browse your open Todos
/setlocation - set or update your location
/weather - current weather at your location
/cancel - abort the current operation
/help - show this message

When a Todo is due I'll send you a notification: react to it with 👍 to mark the Todo as done.`

func (h *Handlers) handleHelp(msg *tgbotapi.Message) {
	h.sendMessage(msg.Chat.ID, helpText)
}
