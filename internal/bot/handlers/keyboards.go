package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func yesNoKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Yes"),
			tgbotapi.NewKeyboardButton("No"),
		),
	)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true
	return keyboard
}

func locationKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonLocation("Share my location"),
		),
	)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true
	return keyboard
}

// hoursKeyboard offers every full hour; minutes can still be typed by hand.
func hoursKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	for hour := 0; hour < 24; hour += 4 {
		var row []tgbotapi.KeyboardButton
		for i := 0; i < 4; i++ {
			row = append(row, tgbotapi.NewKeyboardButton(fmt.Sprintf("%02d:00", hour+i)))
		}
		rows = append(rows, row)
	}
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true
	return keyboard
}

// reminderOffsetKeyboard lists how long before the due date to be reminded.
func reminderOffsetKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton

	var minutes []tgbotapi.KeyboardButton
	for m := 5; m <= 55; m += 5 {
		minutes = append(minutes, tgbotapi.NewKeyboardButton(fmt.Sprintf("%d m", m)))
		if len(minutes) == 6 {
			rows = append(rows, minutes)
			minutes = nil
		}
	}
	if len(minutes) > 0 {
		rows = append(rows, minutes)
	}

	var hours []tgbotapi.KeyboardButton
	for hr := 1; hr <= 23; hr++ {
		hours = append(hours, tgbotapi.NewKeyboardButton(fmt.Sprintf("%d h", hr)))
		if len(hours) == 6 {
			rows = append(rows, hours)
			hours = nil
		}
	}
	if len(hours) > 0 {
		rows = append(rows, hours)
	}

	var days []tgbotapi.KeyboardButton
	for d := 1; d <= 7; d++ {
		days = append(days, tgbotapi.NewKeyboardButton(fmt.Sprintf("%d d", d)))
	}
	rows = append(rows, days)

	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true
	return keyboard
}

func removeKeyboard() tgbotapi.ReplyKeyboardRemove {
	return tgbotapi.NewRemoveKeyboard(false)
}
