package handlers

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/jobs"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/pending"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/timezone"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/weather"
)

// The store interfaces below are the slices of the repositories the handlers
// call; the concrete repository structs satisfy them as-is.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
}

type LocationStore interface {
	Create(ctx context.Context, location *models.Location) error
	Update(ctx context.Context, locationID uuid.UUID, latitude, longitude float64) error
}

type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) error
	GetByID(ctx context.Context, todoID uuid.UUID) (*models.Todo, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, done bool) ([]*models.Todo, error)
	SetDone(ctx context.Context, todoID uuid.UUID) (bool, error)
	Delete(ctx context.Context, todoID uuid.UUID) (bool, error)
}

type ReminderStore interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	Delete(ctx context.Context, reminderID uuid.UUID) (bool, error)
}

type Repositories struct {
	User     UserStore
	Location LocationStore
	Todo     TodoStore
	Reminder ReminderStore
}

type Handlers struct {
	api      *tgbotapi.BotAPI
	repos    *Repositories
	resolver *timezone.Resolver
	notifier *jobs.Notifier
	pendings *pending.Index
	weather  *weather.Client

	conversations *conversationStore
}

func New(
	api *tgbotapi.BotAPI,
	repos *Repositories,
	resolver *timezone.Resolver,
	notifier *jobs.Notifier,
	pendings *pending.Index,
	weatherClient *weather.Client,
) *Handlers {
	return &Handlers{
		api:           api,
		repos:         repos,
		resolver:      resolver,
		notifier:      notifier,
		pendings:      pendings,
		weather:       weatherClient,
		conversations: newConversationStore(),
	}
}

// HandleMessage routes an inbound message: an active conversation consumes
// everything except /cancel; otherwise commands are dispatched directly.
func (h *Handlers) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() && msg.Command() == "cancel" {
		h.handleCancel(msg)
		return
	}

	if conv := h.conversations.get(msg.From.ID); conv != nil {
		h.handleConversationMessage(ctx, conv, msg)
		return
	}

	if !msg.IsCommand() {
		return
	}

	switch msg.Command() {
	case "start":
		h.handleStart(ctx, msg)
	case "setlocation":
		h.handleSetLocation(ctx, msg)
	case "todo":
		h.handleTodoStart(ctx, msg)
	case "todos":
		h.handleTodoList(ctx, msg)
	case "weather":
		h.handleWeather(ctx, msg)
	case "help":
		h.handleHelp(msg)
	default:
		h.sendMessage(msg.Chat.ID, "Unknown command. Use /help to see the available commands.")
	}
}

// HandleCallbackQuery routes inline-keyboard presses. Calendar callbacks only
// make sense inside the todo conversation; todo_* actions work anywhere.
func (h *Handlers) HandleCallbackQuery(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.From == nil {
		return
	}

	// Telegram omits the message once it is older than 48h; the buttons can
	// no longer be edited, so just acknowledge the press.
	if callback.Message == nil {
		h.answerCallback(callback.ID, "This message is too old, please run the command again.")
		return
	}

	data := callback.Data
	switch {
	case calendarDayPattern.MatchString(data), calendarNavPattern.MatchString(data):
		h.handleCalendarCallback(ctx, callback)
	case todoActionPattern.MatchString(data):
		h.handleTodoAction(ctx, callback)
	default:
		// Header/placeholder buttons: answer so the client stops spinning.
		h.answerCallback(callback.ID, "")
	}
}

func (h *Handlers) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handlers) sendMessageWithKeyboard(chatID int64, text string, keyboard any) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	if _, err := h.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handlers) editMessageText(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := h.api.Send(edit); err != nil {
		log.Printf("Failed to edit message: %v", err)
	}
}

func (h *Handlers) answerCallback(callbackID, text string) {
	answer := tgbotapi.NewCallback(callbackID, text)
	if _, err := h.api.Request(answer); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}
