package bot

import (
	"fmt"

	"github.com/ayakimenko/route-weather-bot/internal/dialog"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func routeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить точку маршрута", dialog.AddPointCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Завершить маршрут", dialog.FinishRouteCallback()),
		),
	)
}

func intervalKeyboard() tgbotapi.InlineKeyboardMarkup {
	labels := map[int]string{
		1: "1 день",
		2: "2 дня",
		3: "3 дня",
		4: "4 дня",
		5: "5 дней",
	}

	button := func(n int) tgbotapi.InlineKeyboardButton {
		label, ok := labels[n]
		if !ok {
			label = fmt.Sprintf("%d дней", n)
		}
		return tgbotapi.NewInlineKeyboardButtonData(label, dialog.IntervalCallback(n))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(1), button(2), button(3)),
		tgbotapi.NewInlineKeyboardRow(button(4), button(5)),
	)
}
