package handlers

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/format"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/jobs"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/models"
	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/timezone"
)

var (
	dueTimePattern        = regexp.MustCompile(`^(?:[0-1]\d|2[0-3]):(?:[0-5]\d)$`)
	reminderOffsetPattern = regexp.MustCompile(`^(\d{1,2}) ([mhd])$`)
)

func (h *Handlers) handleTodoStart(ctx context.Context, msg *tgbotapi.Message) {
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
	if !user.HasLocation() {
		h.sendMessage(msg.Chat.ID, "I need your location to work out due dates in your timezone. Set it with /setlocation first.")
		return
	}

	h.conversations.put(msg.From.ID, &conversation{state: stateTodoDetails, user: user})
	h.sendMessage(msg.Chat.ID, "Let's create a new Todo! What do you need to do?")
}

func (h *Handlers) handleTodoDetails(conv *conversation, msg *tgbotapi.Message) {
	details := strings.TrimSpace(msg.Text)
	if details == "" {
		h.sendMessage(msg.Chat.ID, "Please describe what you need to do, or /cancel to stop.")
		return
	}

	conv.draft.details = details
	conv.state = stateTodoDueDate

	now := time.Now().UTC()
	reply := tgbotapi.NewMessage(msg.Chat.ID, "When is it due? Pick a day:")
	reply.ReplyMarkup = buildCalendar(now.Year(), now.Month(), now)
	if _, err := h.api.Send(reply); err != nil {
		log.Printf("Failed to send calendar: %v", err)
	}
}

// handleTodoDueTime combines the chosen day with the typed time, resolves the
// user's timezone at that instant and rejects anything not in the future.
func (h *Handlers) handleTodoDueTime(conv *conversation, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if !dueTimePattern.MatchString(text) {
		h.sendMessage(msg.Chat.ID, "That doesn't look like a valid time. Use <code>HH:MM</code> in 24h format, e.g. <code>09:30</code>.")
		return
	}

	hour, _ := strconv.Atoi(text[:2])
	minute, _ := strconv.Atoi(text[3:])

	day := conv.draft.dueDay
	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)

	loc := conv.user.Location
	dueUTC, offset, err := h.resolver.Resolve(loc.Latitude, loc.Longitude, local)
	if err != nil {
		if err == timezone.ErrNoTimezone {
			h.conversations.remove(msg.From.ID)
			h.sendMessage(msg.Chat.ID, "I couldn't work out a timezone for your location. Please update it with /setlocation.")
			return
		}
		log.Printf("Failed to resolve timezone: %v", err)
		h.sendMessage(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	if !dueUTC.After(time.Now().UTC()) {
		h.sendMessage(msg.Chat.ID, "That moment has already passed. Please enter a time in the future.")
		return
	}

	conv.draft.dueUTC = dueUTC
	conv.draft.utcOffset = offset
	conv.state = stateTodoReminderChoice
	h.sendMessageWithKeyboard(msg.Chat.ID, "Would you like to be reminded before the due date?", yesNoKeyboard())
}

func (h *Handlers) handleTodoReminderChoice(ctx context.Context, conv *conversation, msg *tgbotapi.Message) {
	switch strings.ToLower(strings.TrimSpace(msg.Text)) {
	case "yes":
		conv.state = stateTodoReminderOffset
		h.sendMessageWithKeyboard(msg.Chat.ID, "How long before the due date should I remind you?", reminderOffsetKeyboard())
	case "no":
		h.finishTodo(ctx, conv, msg.Chat.ID, nil)
	default:
		h.sendMessageWithKeyboard(msg.Chat.ID, "Please answer Yes or No.", yesNoKeyboard())
	}
}

func (h *Handlers) handleTodoReminderOffset(ctx context.Context, conv *conversation, msg *tgbotapi.Message) {
	remindAt, ok := parseReminderOffset(strings.TrimSpace(msg.Text), conv.draft.dueUTC)
	if !ok {
		h.sendMessageWithKeyboard(msg.Chat.ID, "I didn't get that. Pick an option below, e.g. <code>30 m</code>, <code>2 h</code> or <code>1 d</code>.", reminderOffsetKeyboard())
		return
	}
	if !remindAt.After(time.Now().UTC()) {
		h.sendMessageWithKeyboard(msg.Chat.ID, "That reminder would already be in the past. Pick a shorter offset.", reminderOffsetKeyboard())
		return
	}

	h.finishTodo(ctx, conv, msg.Chat.ID, &remindAt)
}

// parseReminderOffset turns "30 m" / "2 h" / "1 d" into the reminder instant.
// Only the menu's own values are accepted: 5-55 minutes in steps of 5, 1-23
// hours, 1-7 days.
func parseReminderOffset(text string, dueUTC time.Time) (time.Time, bool) {
	match := reminderOffsetPattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}
	amount, _ := strconv.Atoi(match[1])

	var offset time.Duration
	switch match[2] {
	case "m":
		if amount < 5 || amount > 55 || amount%5 != 0 {
			return time.Time{}, false
		}
		offset = time.Duration(amount) * time.Minute
	case "h":
		if amount < 1 || amount > 23 {
			return time.Time{}, false
		}
		offset = time.Duration(amount) * time.Hour
	case "d":
		if amount < 1 || amount > 7 {
			return time.Time{}, false
		}
		offset = time.Duration(amount) * 24 * time.Hour
	}
	return dueUTC.Add(-offset), true
}

// finishTodo persists the draft and registers its jobs. The reminder, when
// chosen, is scheduled before the due job.
func (h *Handlers) finishTodo(ctx context.Context, conv *conversation, chatID int64, remindAt *time.Time) {
	defer h.conversations.remove(conv.user.TelegramID)

	todo := &models.Todo{
		UserID:    conv.user.ID,
		Details:   conv.draft.details,
		DueDate:   conv.draft.dueUTC,
		UTCOffset: conv.draft.utcOffset,
	}
	if err := h.repos.Todo.Create(ctx, todo); err != nil {
		log.Printf("Failed to create todo: %v", err)
		h.sendMessageWithKeyboard(chatID, "Something went wrong saving your Todo, please try again later.", removeKeyboard())
		return
	}

	if remindAt != nil {
		reminder := &models.Reminder{
			Name:     jobs.ReminderJobName(todo.ID),
			TodoID:   todo.ID,
			RemindAt: *remindAt,
		}
		if err := h.repos.Reminder.Create(ctx, reminder); err != nil {
			log.Printf("Failed to create reminder: %v", err)
		} else {
			todo.Reminder = reminder
			if err := h.notifier.ScheduleReminder(todo.ID, chatID, *remindAt); err != nil {
				log.Printf("Failed to schedule reminder job: %v", err)
			}
		}
	}

	if err := h.notifier.ScheduleDue(todo.ID, chatID, todo.DueDate); err != nil {
		log.Printf("Failed to schedule due job: %v", err)
	}

	text := fmt.Sprintf("Todo created! 🎉\n\n%s", format.TodoDetails(todo))
	h.sendMessageWithKeyboard(chatID, text, removeKeyboard())
}
