package forecast

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ayakimenko/route-weather-bot/internal/config"
	"github.com/ayakimenko/route-weather-bot/pkg/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// User-visible segment texts carried over verbatim; they are part of the
// report contract, same as the day-block layout.
const (
	resolveErrorText = "Ошибка: Не удалось получить ключ местоположения."
	fetchErrorText   = "Ошибка при получении погоды\n\n"
)

// Aggregator builds the combined per-point report for a route. Points are
// resolved and fetched strictly in route order, one at a time; a failed
// point becomes an inline error segment and never aborts the rest.
type Aggregator struct {
	resolver   Resolver
	fetcher    Fetcher
	useCached  bool
	cachedPath string
	logger     *zap.Logger
	tele       *telemetry.Telemetry
}

func NewAggregator(cfg *config.Config, resolver Resolver, fetcher Fetcher, logger *zap.Logger, tele *telemetry.Telemetry) *Aggregator {
	return &Aggregator{
		resolver:   resolver,
		fetcher:    fetcher,
		useCached:  cfg.Debug,
		cachedPath: cfg.Weather.CachedAnswerPath,
		logger:     logger,
		tele:       tele,
	}
}

// BuildReport concatenates one segment per route point. In debug mode it
// returns the stored artifact verbatim instead of calling the provider;
// cached and live output are never blended.
func (a *Aggregator) BuildReport(ctx context.Context, route Route, days int) (string, error) {
	if a.useCached {
		return a.cachedReport()
	}

	tracer := a.tele.GetTracer()
	ctx, span := tracer.Start(ctx, "forecast.BuildReport")
	defer span.End()

	reportID := uuid.New().String()
	log := a.logger.With(zap.String("report_id", reportID))

	points := route.Points()
	span.SetAttributes(
		attribute.Int("points", len(points)),
		attribute.Int("days", days),
	)

	log.Info("Building route report",
		zap.Int("points", len(points)),
		zap.Int("days", days))

	var b strings.Builder
	b.WriteString("\n")

	for _, point := range points {
		b.WriteString(PointHeader(point))
		b.WriteString(a.pointSegment(ctx, log, point, days))
	}

	return b.String(), nil
}

func (a *Aggregator) pointSegment(ctx context.Context, log *zap.Logger, point string, days int) string {
	location, err := a.resolver.Resolve(ctx, point)
	if err != nil {
		log.Warn("Failed to resolve route point",
			zap.String("point", point),
			zap.Error(err))
		return resolveErrorText
	}

	forecastDays, err := a.fetcher.Fetch(ctx, location, days)
	if err != nil {
		log.Warn("Failed to fetch forecast for route point",
			zap.String("point", point),
			zap.Error(err))
		return fetchErrorText
	}

	return FormatDays(forecastDays)
}

func (a *Aggregator) cachedReport() (string, error) {
	data, err := os.ReadFile(a.cachedPath)
	if err != nil {
		a.logger.Error("Failed to read cached report",
			zap.String("path", a.cachedPath),
			zap.Error(err))
		return "", fmt.Errorf("reading cached report: %w", err)
	}
	return string(data), nil
}
