package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	calendarDayPattern = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
	calendarNavPattern = regexp.MustCompile(`^[<>]\d{4}-\d{1,2}$`)
)

var dayAbbreviations = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// buildCalendar renders one month as an inline keyboard. Days before today
// are placeholders, as are the cells padding the first and last week.
func buildCalendar(year int, month time.Month, today time.Time) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	header := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("<", fmt.Sprintf("<%d-%d", year, int(month))),
		tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %d", month.String(), year), "placeholder"),
		tgbotapi.NewInlineKeyboardButtonData(">", fmt.Sprintf(">%d-%d", year, int(month))),
	}
	rows = append(rows, header)

	var abbrs []tgbotapi.InlineKeyboardButton
	for _, abbr := range dayAbbreviations {
		abbrs = append(abbrs, tgbotapi.NewInlineKeyboardButtonData(abbr, "placeholder"))
	}
	rows = append(rows, abbrs)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Weeks start on Monday.
	lead := (int(first.Weekday()) + 6) % 7

	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var week []tgbotapi.InlineKeyboardButton
	for i := 0; i < lead; i++ {
		week = append(week, tgbotapi.NewInlineKeyboardButtonData(" ", "placeholder"))
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Before(todayMidnight) {
			week = append(week, tgbotapi.NewInlineKeyboardButtonData(" ", "placeholder"))
		} else {
			data := fmt.Sprintf("%d-%d-%d", year, int(month), day)
			week = append(week, tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(day), data))
		}
		if len(week) == 7 {
			rows = append(rows, week)
			week = nil
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, tgbotapi.NewInlineKeyboardButtonData(" ", "placeholder"))
		}
		rows = append(rows, week)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (h *Handlers) handleCalendarCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	conv := h.conversations.get(callback.From.ID)
	if conv == nil {
		h.answerCallback(callback.ID, "")
		return
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()

	if conv.state != stateTodoDueDate {
		h.answerCallback(callback.ID, "")
		return
	}

	chatID := callback.Message.Chat.ID
	data := callback.Data

	if calendarNavPattern.MatchString(data) {
		year, month := parseCalendarMonth(data[1:])
		shift := 1
		if data[0] == '<' {
			shift = -1
		}
		next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, shift, 0)
		markup := buildCalendar(next.Year(), next.Month(), time.Now().UTC())
		edit := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, markup)
		if _, err := h.api.Send(edit); err != nil {
			h.answerCallback(callback.ID, "")
			return
		}
		h.answerCallback(callback.ID, "")
		return
	}

	parts := strings.Split(data, "-")
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	conv.draft.dueDay = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	conv.state = stateTodoDueTime
	h.answerCallback(callback.ID, "")
	h.editMessageText(chatID, callback.Message.MessageID,
		fmt.Sprintf("Due date: <b>%s</b>", conv.draft.dueDay.Format("2006-01-02")))
	h.sendMessageWithKeyboard(chatID,
		"At what time is it due? Pick one below or type it as <code>HH:MM</code> (24h).",
		hoursKeyboard())
}

func parseCalendarMonth(s string) (int, time.Month) {
	parts := strings.Split(s, "-")
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	return year, time.Month(month)
}
