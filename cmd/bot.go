package cmd

import (
	"github.com/ayakimenko/route-weather-bot/internal/accuweather"
	"github.com/ayakimenko/route-weather-bot/internal/bot"
	"github.com/ayakimenko/route-weather-bot/internal/config"
	"github.com/ayakimenko/route-weather-bot/internal/dialog"
	"github.com/ayakimenko/route-weather-bot/internal/forecast"
	"github.com/ayakimenko/route-weather-bot/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Start the Telegram bot",
	Long:  `Start long polling for Telegram updates, with an optional operational HTTP server for health probes.`,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	log.Info("Starting route weather bot",
		zap.String("environment", cfg.Environment),
		zap.Bool("debug", cfg.Debug),
		zap.Bool("ops_server", cfg.Server.Enabled))

	client := accuweather.NewClient(cfg.Weather, log, tele)
	agg := forecast.NewAggregator(cfg, client, client, log, tele)
	manager := dialog.NewManager(agg, log)

	b, err := bot.New(cfg.Bot, manager, log)
	if err != nil {
		log.Error("Failed to create bot", zap.Error(err))
		return err
	}

	var srv *server.Server
	if cfg.Server.Enabled {
		srv = server.NewServer(agg, log)
		go func() {
			if err := srv.Start(); err != nil {
				log.Error("Ops server error", zap.Error(err))
			}
		}()
	}

	err = b.Run(cmd.Context())

	if srv != nil {
		if shutdownErr := srv.Shutdown(); shutdownErr != nil {
			log.Error("Error during ops server shutdown", zap.Error(shutdownErr))
		}
	}

	if shutdownErr := tele.Shutdown(cmd.Context()); shutdownErr != nil {
		log.Warn("Error during telemetry shutdown", zap.Error(shutdownErr))
	}

	log.Info("Bot stopped")
	return err
}
