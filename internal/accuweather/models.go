package accuweather

type unitValue struct {
	Value float64 `json:"Value"`
	Unit  string  `json:"Unit"`
}

type cityResult struct {
	Key           string `json:"Key"`
	LocalizedName string `json:"LocalizedName"`
}

type dailyForecastResponse struct {
	DailyForecasts []dailyForecast `json:"DailyForecasts"`
}

type dailyForecast struct {
	Date        string `json:"Date"`
	Temperature struct {
		Minimum unitValue `json:"Minimum"`
		Maximum unitValue `json:"Maximum"`
	} `json:"Temperature"`
	Day struct {
		RelativeHumidity struct {
			Average int `json:"Average"`
		} `json:"RelativeHumidity"`
		Wind struct {
			Speed unitValue `json:"Speed"`
		} `json:"Wind"`
		RainProbability int    `json:"RainProbability"`
		LongPhrase      string `json:"LongPhrase"`
	} `json:"Day"`
}
