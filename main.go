package main

import (
	"os"

	"github.com/ayakimenko/route-weather-bot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
