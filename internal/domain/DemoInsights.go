package domain

import (
	"time"
)

// DailyTotal representa o total de impressões de um único dia
type DailyTotal struct {
	Date        time.Time `json:"date"`
	Impressions int64     `json:"impressions"`
}

// RegionFormatTotal agrega impressões e uniques por combinação de região e formato
type RegionFormatTotal struct {
	Region      string `json:"region"`
	Format      string `json:"format"`
	Impressions int64  `json:"impressions"`
	Uniques     int64  `json:"uniques"`
}

// HourlyMean representa a média de uniques para uma hora sintética (índice da linha mod 24)
type HourlyMean struct {
	Hour       int     `json:"hour"`
	AvgUniques float64 `json:"avg_uniques"`
}

// WeeklyForecastEntry agrega impressões por semana ISO junto com a média móvel
// das últimas 4 semanas (janela mínima de 1)
type WeeklyForecastEntry struct {
	Week        int   `json:"week"`
	Impressions int64 `json:"impressions"`
	Forecast    int64 `json:"forecast"`
}
