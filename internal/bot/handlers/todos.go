package handlers

import (
	"context"
	"log"
	"regexp"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/format"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
)

var todoActionPattern = regexp.MustCompile(`^todo_(?:(details|done|delete) ([0-9a-f-]{36})|go_back)$`)

type todoOutcome int

const (
	outcomeDone todoOutcome = iota
	outcomeDeleted
)

func (h *Handlers) handleTodoList(ctx context.Context, msg *tgbotapi.Message) {
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

	todos, err := h.repos.Todo.GetByUserID(ctx, user.ID, false)
	if err != nil {
		log.Printf("Failed to list todos: %v", err)
		h.sendMessage(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}
	if len(todos) == 0 {
		h.sendMessage(msg.Chat.ID, "You have no open Todos. Create one with /todo!")
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Here are your open Todos:")
	reply.ReplyMarkup = todoListKeyboard(todos)
	if _, err := h.api.Send(reply); err != nil {
		log.Printf("Failed to send todo list: %v", err)
	}
}

// todoListKeyboard shows one button per open todo, soonest first, labelled
// with the due date in the user's local time.
func todoListKeyboard(todos []*models.Todo) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, todo := range todos {
		label := format.DueTimestamp(todo) + " - " + todo.Details
		if len(label) > 60 {
			label = label[:57] + "..."
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "todo_details "+todo.ID.String()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func todoDetailsKeyboard(todoID uuid.UUID) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Done", "todo_done "+todoID.String()),
			tgbotapi.NewInlineKeyboardButtonData("❌ Delete", "todo_delete "+todoID.String()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back", "todo_go_back"),
		),
	)
}

func (h *Handlers) handleTodoAction(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	match := todoActionPattern.FindStringSubmatch(callback.Data)
	chatID := callback.Message.Chat.ID

	if match[1] == "" {
		h.answerCallback(callback.ID, "")
		h.showTodoList(ctx, callback)
		return
	}

	todoID, err := uuid.Parse(match[2])
	if err != nil {
		h.answerCallback(callback.ID, "")
		return
	}

	switch match[1] {
	case "details":
		h.showTodoDetails(ctx, callback, todoID)
	case "done":
		h.answerCallback(callback.ID, "")
		h.resolveTodo(ctx, chatID, todoID, outcomeDone)
	case "delete":
		h.answerCallback(callback.ID, "")
		h.resolveTodo(ctx, chatID, todoID, outcomeDeleted)
	}
}

func (h *Handlers) showTodoDetails(ctx context.Context, callback *tgbotapi.CallbackQuery, todoID uuid.UUID) {
	todo, err := h.repos.Todo.GetByID(ctx, todoID)
	if err != nil {
		log.Printf("Failed to retrieve todo %s: %v", todoID, err)
		h.answerCallback(callback.ID, "Something went wrong.")
		return
	}
	if todo == nil {
		h.answerCallback(callback.ID, "This Todo no longer exists.")
		return
	}

	h.answerCallback(callback.ID, "")
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		callback.Message.Chat.ID,
		callback.Message.MessageID,
		format.TodoDetails(todo),
		todoDetailsKeyboard(todoID),
	)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := h.api.Send(edit); err != nil {
		log.Printf("Failed to edit todo details: %v", err)
	}
}

// showTodoList rebuilds the list in place after « Back.
func (h *Handlers) showTodoList(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	user, err := h.repos.User.GetByTelegramID(ctx, callback.From.ID)
	if err != nil || user == nil {
		return
	}
	todos, err := h.repos.Todo.GetByUserID(ctx, user.ID, false)
	if err != nil {
		log.Printf("Failed to list todos: %v", err)
		return
	}

	chatID := callback.Message.Chat.ID
	if len(todos) == 0 {
		h.editMessageText(chatID, callback.Message.MessageID, "You have no open Todos. Create one with /todo!")
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		chatID,
		callback.Message.MessageID,
		"Here are your open Todos:",
		todoListKeyboard(todos),
	)
	if _, err := h.api.Send(edit); err != nil {
		log.Printf("Failed to edit todo list: %v", err)
	}
}

// resolveTodo closes out a todo either way: it marks it done or deletes it,
// then tears down whatever is still attached to it. Every teardown step is
// safe to repeat, so the same outcome can arrive from the list buttons and
// from a reaction without stepping on each other.
func (h *Handlers) resolveTodo(ctx context.Context, chatID int64, todoID uuid.UUID, outcome todoOutcome) {
	todo, err := h.repos.Todo.GetByID(ctx, todoID)
	if err != nil {
		log.Printf("Failed to retrieve todo %s: %v", todoID, err)
		h.sendMessage(chatID, "Something went wrong, please try again later.")
		return
	}
	if todo == nil {
		h.sendMessage(chatID, "You've already deleted this Todo!")
		return
	}

	now := time.Now().UTC()
	var confirmation string
	switch outcome {
	case outcomeDone:
		changed, err := h.repos.Todo.SetDone(ctx, todoID)
		if err != nil {
			log.Printf("Failed to complete todo %s: %v", todoID, err)
			h.sendMessage(chatID, "Something went wrong, please try again later.")
			return
		}
		if !changed {
			h.sendMessage(chatID, "This Todo is already done!")
			return
		}
		confirmation = format.TodoCompleted(todo, now)
	case outcomeDeleted:
		if _, err := h.repos.Todo.Delete(ctx, todoID); err != nil {
			log.Printf("Failed to delete todo %s: %v", todoID, err)
			h.sendMessage(chatID, "Something went wrong, please try again later.")
			return
		}
		confirmation = format.TodoDeleted(todo, now)
	}

	// Deleting the todo row already cascades to the reminder; the explicit
	// delete covers the done path and is a no-op otherwise.
	if todo.Reminder != nil {
		if _, err := h.repos.Reminder.Delete(ctx, todo.Reminder.ID); err != nil {
			log.Printf("Failed to delete reminder for todo %s: %v", todoID, err)
		}
	}

	h.pendings.RemoveTodo(chatID, todoID)
	h.notifier.CancelJobs(todoID)

	h.sendMessage(chatID, confirmation)
}
