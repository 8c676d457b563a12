package forecast

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayakimenko/route-weather-bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeResolver struct {
	failing map[string]bool
	calls   int
}

func (f *fakeResolver) Resolve(ctx context.Context, name string) (LocationID, error) {
	f.calls++
	if f.failing[name] {
		return "", ErrLocationNotFound
	}
	return LocationID("key-" + name), nil
}

type fakeFetcher struct {
	failing map[LocationID]error
	days    int
}

func (f *fakeFetcher) Fetch(ctx context.Context, location LocationID, days int) ([]DayForecast, error) {
	if err := f.failing[location]; err != nil {
		return nil, err
	}

	n := f.days
	if n == 0 || n > days {
		n = days
	}

	result := make([]DayForecast, n)
	for i := range result {
		result[i] = DayForecast{
			Date:        "2024-11-12T07:00:00+03:00",
			Description: "Ясно",
		}
	}
	return result, nil
}

func liveConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Debug = false
	return cfg
}

func TestBuildReportSegmentOrder(t *testing.T) {
	resolver := &fakeResolver{}
	fetcher := &fakeFetcher{}
	agg := NewAggregator(liveConfig(), resolver, fetcher, zap.NewNop(), nil)

	route := Route{
		Start:         "Москва",
		Intermediates: []string{"Тверь"},
		End:           "Санкт-Петербург",
	}

	report, err := agg.BuildReport(context.Background(), route, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(report, "Местоположение"))

	moscow := strings.Index(report, PointHeader("Москва"))
	tver := strings.Index(report, PointHeader("Тверь"))
	spb := strings.Index(report, PointHeader("Санкт-Петербург"))
	require.NotEqual(t, -1, moscow)
	require.NotEqual(t, -1, tver)
	require.NotEqual(t, -1, spb)
	assert.Less(t, moscow, tver)
	assert.Less(t, tver, spb)

	// three points, three days each
	assert.Equal(t, 9, strings.Count(report, "📅 <b>Дата:</b>"))
}

func TestBuildReportIsolatesResolutionFailure(t *testing.T) {
	resolver := &fakeResolver{failing: map[string]bool{"Атлантида": true}}
	fetcher := &fakeFetcher{}
	agg := NewAggregator(liveConfig(), resolver, fetcher, zap.NewNop(), nil)

	route := Route{
		Start:         "Москва",
		Intermediates: []string{"Атлантида"},
		End:           "Осло",
	}

	report, err := agg.BuildReport(context.Background(), route, 2)
	require.NoError(t, err)

	// All three segments are present; only the failing one carries the error text.
	assert.Equal(t, 3, strings.Count(report, "Местоположение"))
	assert.Equal(t, 1, strings.Count(report, resolveErrorText))
	assert.Equal(t, 4, strings.Count(report, "📅 <b>Дата:</b>"))
}

func TestBuildReportIsolatesFetchFailure(t *testing.T) {
	resolver := &fakeResolver{}
	fetcher := &fakeFetcher{failing: map[LocationID]error{
		"key-Тверь": assert.AnError,
	}}
	agg := NewAggregator(liveConfig(), resolver, fetcher, zap.NewNop(), nil)

	route := Route{
		Start:         "Москва",
		Intermediates: []string{"Тверь"},
		End:           "Санкт-Петербург",
	}

	report, err := agg.BuildReport(context.Background(), route, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(report, "Местоположение"))
	assert.Equal(t, 1, strings.Count(report, strings.TrimRight(fetchErrorText, "\n")))
	assert.Equal(t, 2, strings.Count(report, "📅 <b>Дата:</b>"))
}

func TestCachedReportIsVerbatimAndIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answer.txt")
	stored := "\n🌤 <b>Местоположение:</b> Москва\n\nсохранённый прогноз\n"
	require.NoError(t, os.WriteFile(path, []byte(stored), 0o644))

	cfg := config.NewDefaultConfig()
	cfg.Debug = true
	cfg.Weather.CachedAnswerPath = path

	resolver := &fakeResolver{}
	agg := NewAggregator(cfg, resolver, &fakeFetcher{}, zap.NewNop(), nil)

	first, err := agg.BuildReport(context.Background(), Route{Start: "Москва", End: "Осло"}, 5)
	require.NoError(t, err)
	second, err := agg.BuildReport(context.Background(), Route{Start: "Москва", End: "Осло"}, 5)
	require.NoError(t, err)

	assert.Equal(t, stored, first)
	assert.Equal(t, first, second)
	assert.Zero(t, resolver.calls, "cached mode must not touch the provider")
}

func TestCachedReportMissingArtifact(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Debug = true
	cfg.Weather.CachedAnswerPath = filepath.Join(t.TempDir(), "missing.txt")

	agg := NewAggregator(cfg, &fakeResolver{}, &fakeFetcher{}, zap.NewNop(), nil)

	_, err := agg.BuildReport(context.Background(), Route{Start: "Москва", End: "Осло"}, 1)
	assert.Error(t, err)
}
