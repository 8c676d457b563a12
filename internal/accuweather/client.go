package accuweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ayakimenko/route-weather-bot/internal/config"
	"github.com/ayakimenko/route-weather-bot/internal/forecast"
	"github.com/ayakimenko/route-weather-bot/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Client talks to the AccuWeather data service. It implements both
// forecast.Resolver and forecast.Fetcher.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	client   *http.Client
	logger   *zap.Logger
	tele     *telemetry.Telemetry
}

func NewClient(cfg config.WeatherConfig, logger *zap.Logger, tele *telemetry.Telemetry) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger: logger,
		tele:   tele,
	}
}

// Resolve translates a free-text place name into a location key. A failed
// call and an empty match list both come back as ErrLocationNotFound; the
// transport error is only logged.
func (c *Client) Resolve(ctx context.Context, name string) (forecast.LocationID, error) {
	tracer := c.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "accuweather.Resolve")
	defer span.End()

	span.SetAttributes(attribute.String("place", name))

	u, err := url.Parse(fmt.Sprintf("%s/locations/v1/cities/translate.json", c.baseURL))
	if err != nil {
		return "", c.sanitize(err)
	}

	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("q", strings.ToLower(name))
	q.Set("language", c.language)
	q.Set("details", "true")
	u.RawQuery = q.Encode()

	var cities []cityResult
	if err := c.getJSON(ctx, u.String(), &cities); err != nil {
		c.logger.Warn("Location request failed",
			zap.String("place", name),
			zap.Error(c.sanitize(err)))
		span.SetAttributes(attribute.Bool("success", false))
		return "", forecast.ErrLocationNotFound
	}

	if len(cities) == 0 {
		c.logger.Info("No location match", zap.String("place", name))
		span.SetAttributes(attribute.Bool("success", false))
		return "", forecast.ErrLocationNotFound
	}

	span.SetAttributes(attribute.Bool("success", true))
	return forecast.LocationID(cities[0].Key), nil
}

// Fetch returns up to days forecast entries for a resolved location. The
// provider only serves 1-day and 5-day windows, so anything above one day
// queries the 5-day window and truncates.
func (c *Client) Fetch(ctx context.Context, location forecast.LocationID, days int) ([]forecast.DayForecast, error) {
	tracer := c.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "accuweather.Fetch")
	defer span.End()

	span.SetAttributes(attribute.Int("days", days))

	window := 5
	if days == 1 {
		window = 1
	}

	u, err := url.Parse(fmt.Sprintf("%s/forecasts/v1/daily/%dday/%s", c.baseURL, window, location))
	if err != nil {
		return nil, c.sanitize(err)
	}

	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("language", c.language)
	q.Set("details", "true")
	q.Set("metric", "true")
	u.RawQuery = q.Encode()

	var resp dailyForecastResponse
	if err := c.getJSON(ctx, u.String(), &resp); err != nil {
		span.SetAttributes(attribute.Bool("success", false))
		return nil, c.sanitize(err)
	}

	daily := resp.DailyForecasts
	if len(daily) > days {
		daily = daily[:days]
	}

	result := make([]forecast.DayForecast, 0, len(daily))
	for _, day := range daily {
		result = append(result, forecast.DayForecast{
			Date:            day.Date,
			MaxTemperature:  day.Temperature.Maximum.Value,
			MinTemperature:  day.Temperature.Minimum.Value,
			Humidity:        day.Day.RelativeHumidity.Average,
			WindSpeed:       day.Day.Wind.Speed.Value,
			RainProbability: day.Day.RainProbability,
			Description:     day.Day.LongPhrase,
		})
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("entries", len(result)),
	)
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// sanitize strips the API key from an error so it can never leak into
// logs or user-facing text.
func (c *Client) sanitize(err error) error {
	if err == nil || c.apiKey == "" {
		return err
	}
	msg := strings.ReplaceAll(err.Error(), c.apiKey, "<API_KEY>")
	msg = strings.ReplaceAll(msg, url.QueryEscape(c.apiKey), "<API_KEY>")
	return fmt.Errorf("%s", msg)
}
