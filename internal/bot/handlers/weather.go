package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/FrancescoDiMuro/sample-assistant-bot/internal/weather"
)

func (h *Handlers) handleWeather(ctx context.Context, msg *tgbotapi.Message) {
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
		h.sendMessage(msg.Chat.ID, "I need your location for that. Set it with /setlocation first.")
		return
	}

	current, units, err := h.weather.CurrentConditions(ctx, user.Location.Latitude, user.Location.Longitude)
	if err != nil {
		log.Printf("Failed to fetch weather: %v", err)
		h.sendMessage(msg.Chat.ID, "I couldn't fetch the weather right now, please try again later.")
		return
	}

	h.sendMessage(msg.Chat.ID, formatWeather(current, units))
}

func formatWeather(current *weather.Current, units *weather.Units) string {
	daylight := "Night 🌙"
	if current.IsDay == 1 {
		daylight = "Day ☀️"
	}

	var b strings.Builder
	b.WriteString("<b>Current weather</b>\n\n")
	fmt.Fprintf(&b, "☁️ Conditions: %s\n", weather.Describe(current.WeatherCode))
	fmt.Fprintf(&b, "🌡️ Temperature: %.1f%s (feels like %.1f%s)\n",
		current.Temperature, units.Temperature,
		current.ApparentTemperature, units.ApparentTemperature)
	fmt.Fprintf(&b, "💧 Humidity: %.0f%s\n", current.RelativeHumidity, units.RelativeHumidity)
	fmt.Fprintf(&b, "☁️ Cloud cover: %.0f%s\n", current.CloudCover, units.CloudCover)
	fmt.Fprintf(&b, "💨 Wind: %.1f%s\n", current.WindSpeed, units.WindSpeed)
	fmt.Fprintf(&b, "🕐 %s", daylight)
	return b.String()
}
