package accuweather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayakimenko/route-weather-bot/internal/config"
	"github.com/ayakimenko/route-weather-bot/internal/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.WeatherConfig{
		BaseURL:  baseURL,
		APIKey:   "test-api-key",
		Language: "ru-ru",
		Timeout:  5,
	}, zap.NewNop(), nil)
}

func forecastBody(days int) string {
	body := `{"DailyForecasts":[`
	for i := 0; i < days; i++ {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{
			"Date": "2024-11-%02dT07:00:00+03:00",
			"Temperature": {
				"Minimum": {"Value": -1.4, "Unit": "C"},
				"Maximum": {"Value": 2.1, "Unit": "C"}
			},
			"Day": {
				"RelativeHumidity": {"Average": 86},
				"Wind": {"Speed": {"Value": 13.5, "Unit": "km/h"}},
				"RainProbability": 25,
				"LongPhrase": "Облачно с прояснениями"
			}
		}`, i+1)
	}
	return body + `]}`
}

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations/v1/cities/translate.json", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "москва", r.URL.Query().Get("q"))
		assert.Equal(t, "ru-ru", r.URL.Query().Get("language"))
		assert.Equal(t, "true", r.URL.Query().Get("details"))

		fmt.Fprint(w, `[{"Key":"294021","LocalizedName":"Москва"}]`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	location, err := client.Resolve(context.Background(), "Москва")
	require.NoError(t, err)
	assert.Equal(t, forecast.LocationID("294021"), location)
}

func TestResolveNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Resolve(context.Background(), "Атлантида")
	assert.ErrorIs(t, err, forecast.ErrLocationNotFound)
}

func TestResolveTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	// A failed call is indistinguishable from no match.
	_, err := client.Resolve(context.Background(), "Москва")
	assert.ErrorIs(t, err, forecast.ErrLocationNotFound)
}

func TestFetchUsesOneDayWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecasts/v1/daily/1day/294021", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("metric"))
		fmt.Fprint(w, forecastBody(1))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	days, err := client.Fetch(context.Background(), "294021", 1)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 2.1, days[0].MaxTemperature)
	assert.Equal(t, -1.4, days[0].MinTemperature)
	assert.Equal(t, 86, days[0].Humidity)
	assert.Equal(t, 13.5, days[0].WindSpeed)
	assert.Equal(t, 25, days[0].RainProbability)
	assert.Equal(t, "Облачно с прояснениями", days[0].Description)
}

func TestFetchTruncatesFiveDayWindow(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		t.Run(fmt.Sprintf("days_%d", n), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/forecasts/v1/daily/5day/294021", r.URL.Path)
				fmt.Fprint(w, forecastBody(5))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)

			days, err := client.Fetch(context.Background(), "294021", n)
			require.NoError(t, err)
			assert.Len(t, days, n)
		})
	}
}

func TestFetchReturnsFewerWhenProviderHasFewer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, forecastBody(2))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	days, err := client.Fetch(context.Background(), "294021", 5)
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Fetch(context.Background(), "294021", 3)
	assert.Error(t, err)
}

func TestErrorsNeverLeakAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force a transport error whose message contains the full URL

	client := newTestClient(srv.URL)

	_, err := client.Fetch(context.Background(), "294021", 3)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "test-api-key")
}
