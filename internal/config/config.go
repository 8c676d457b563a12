package config

import (
	"sync/atomic"
)

var configValue atomic.Value

func GetConfig() *Config {
	return configValue.Load().(*Config)
}

func SetConfig(cfg *Config) {
	configValue.Store(cfg)
}

type Config struct {
	Version     string          `mapstructure:"version"`
	Environment string          `mapstructure:"environment"`
	Debug       bool            `mapstructure:"debug"`
	Bot         BotConfig       `mapstructure:"bot"`
	Weather     WeatherConfig   `mapstructure:"weather"`
	Server      ServerConfig    `mapstructure:"server"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type BotConfig struct {
	Token       string `mapstructure:"token"`
	PollTimeout int    `mapstructure:"poll_timeout"`
}

// WeatherConfig describes the AccuWeather client. CachedAnswerPath is the
// stored report served verbatim when the debug flag is set.
type WeatherConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	APIKey           string `mapstructure:"api_key"`
	Language         string `mapstructure:"language"`
	Timeout          int    `mapstructure:"timeout"`
	CachedAnswerPath string `mapstructure:"cached_answer_path"`
}

// ServerConfig describes the operational HTTP server that runs alongside
// the bot (health probes and the development /report endpoint).
type ServerConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:     "1.0.0",
		Environment: "development",
		Debug:       false,
		Bot: BotConfig{
			Token:       "",
			PollTimeout: 30,
		},
		Weather: WeatherConfig{
			BaseURL:          "https://dataservice.accuweather.com",
			APIKey:           "",
			Language:         "ru-ru",
			Timeout:          10,
			CachedAnswerPath: "saved_answers/answer.txt",
		},
		Server: ServerConfig{
			Enabled:      false,
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30,
			WriteTimeout: 30,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "",
		},
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Endpoint: "tempo:4317",
		},
	}
}
