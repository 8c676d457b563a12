package dialog

import (
	"fmt"
	"strings"

	"github.com/ayakimenko/route-weather-bot/internal/forecast"
)

// All user-facing texts, verbatim. Telegram HTML parse mode.
const (
	msgGreeting = "👋 Привет! Я бот прогноза погоды.\n" +
		"Я помогу узнать погоду на вашем маршруте.\n" +
		"Используйте /help для получения списка команд."

	msgHelp = "🌤 <b>Доступные команды:</b>\n\n" +
		"/start - Начать работу с ботом\n" +
		"/help - Показать это сообщение\n" +
		"/weather - Получить прогноз погоды\n\n" +
		"Для получения прогноза погоды используйте команду /weather " +
		"и следуйте инструкциям."

	msgAskStart        = "🌍 Укажите начальную точку маршрута\n(Например: Москва)"
	msgAskEnd          = "📍 Отлично! Теперь укажите конечную точку маршрута"
	msgAskAddOrFinish  = "🛣 Маршрут почти готов! Хотите добавить промежуточные точки?"
	msgAskIntermediate = "📍 Укажите промежуточную точку маршрута"
	msgAskInterval     = "⏱ Выберите интервал прогноза:"

	msgFallback = "Извините, я не понимаю эту команду.\n" +
		"Используйте /help для получения списка доступных команд."

	msgProcessingError = "Извините, произошла ошибка при обработке запроса."

	msgReportHeader = "🌍 Маршрут построен!\n\n" +
		"🌤 Прогноз погоды на маршруте:\n"
)

func msgPointAdded(point string) string {
	return fmt.Sprintf("✅ Точка %s добавлена! Хотите добавить еще?", point)
}

// routeSummary echoes the collected route back to the user before the
// report is built.
func routeSummary(route forecast.Route, interval int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚩 <b>Ваш маршрут:</b>\nНачало: %s\n", route.Start)

	if len(route.Intermediates) > 0 {
		b.WriteString("\nПромежуточные точки:\n")
		for i, point := range route.Intermediates {
			fmt.Fprintf(&b, "%d. %s\n", i+1, point)
		}
	}

	fmt.Fprintf(&b, "\nКонец: %s\n\n📅 Прогноз будет составлен на %d дня(дней)", route.End, interval)
	return b.String()
}
