package cmd

import (
	"fmt"

	"github.com/ayakimenko/route-weather-bot/internal/accuweather"
	"github.com/ayakimenko/route-weather-bot/internal/config"
	"github.com/ayakimenko/route-weather-bot/internal/forecast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportFrom string
	reportTo   string
	reportVia  []string
	reportDays int

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Build a route report once and print it",
		Long:  `Resolve each route point, fetch its forecast and print the combined report to stdout. Useful for checking provider access without Telegram.`,
		RunE:  runReport,
	}
)

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "Москва", "route start point")
	reportCmd.Flags().StringVar(&reportTo, "to", "Санкт-Петербург", "route end point")
	reportCmd.Flags().StringArrayVar(&reportVia, "via", nil, "intermediate route point (repeatable)")
	reportCmd.Flags().IntVar(&reportDays, "days", 5, "forecast days, 1 to 5")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	if reportDays < 1 || reportDays > forecast.MaxDays {
		return fmt.Errorf("days must be between 1 and %d, got %d", forecast.MaxDays, reportDays)
	}

	client := accuweather.NewClient(cfg.Weather, log, tele)
	agg := forecast.NewAggregator(cfg, client, client, log, tele)

	route := forecast.Route{
		Start:         reportFrom,
		Intermediates: reportVia,
		End:           reportTo,
	}

	report, err := agg.BuildReport(cmd.Context(), route, reportDays)
	if err != nil {
		log.Error("Failed to build report", zap.Error(err))
		return err
	}

	fmt.Println(report)
	return nil
}
