package forecast

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// LocationID is the provider-specific key for a resolved place, opaque to
// everything outside the provider client.
type LocationID string

// MaxDays is the largest forecast window a single provider call can return.
const MaxDays = 5

// ErrLocationNotFound covers both "no such place" and a failed resolver
// call; the two are deliberately indistinguishable to callers.
var ErrLocationNotFound = errors.New("location not found")

type DayForecast struct {
	Date            string
	MaxTemperature  float64
	MinTemperature  float64
	Humidity        int
	WindSpeed       float64
	RainProbability int
	Description     string
}

// Resolver translates a free-text place name into a provider location key.
type Resolver interface {
	Resolve(ctx context.Context, name string) (LocationID, error)
}

// Fetcher retrieves a daily forecast for a previously resolved location.
type Fetcher interface {
	Fetch(ctx context.Context, location LocationID, days int) ([]DayForecast, error)
}

// Format renders one day in the fixed report layout. Field order and labels
// are part of the external contract; downstream consumers parse this text.
func (d DayForecast) Format() string {
	var b strings.Builder
	b.WriteString("📅 <b>Дата:</b> " + d.Date + "\n")
	b.WriteString("🌡️ <b>Максимальная температура:</b> " + formatNumber(d.MaxTemperature) + "°C\n")
	b.WriteString("🌡️ <b>Минимальная температура:</b> " + formatNumber(d.MinTemperature) + "°C\n")
	b.WriteString("💧 <b>Влажность:</b> " + strconv.Itoa(d.Humidity) + "%\n")
	b.WriteString("💨 <b>Скорость ветра:</b> " + formatNumber(d.WindSpeed) + " км/ч\n")
	b.WriteString("🌧️ <b>Вероятность дождя:</b> " + strconv.Itoa(d.RainProbability) + "%\n")
	b.WriteString("📝 <b>Описание:</b> " + d.Description + "\n\n")
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDays renders consecutive day blocks separated by blank lines.
func FormatDays(days []DayForecast) string {
	var b strings.Builder
	for _, d := range days {
		b.WriteString(d.Format())
	}
	return b.String()
}

// PointHeader is the segment header naming a route point.
func PointHeader(point string) string {
	return fmt.Sprintf("🌤 <b>Местоположение:</b> %s\n\n", point)
}
