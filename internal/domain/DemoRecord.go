package domain

import (
	"time"
)

// DemoRecord representa uma linha do dataset sintético usado nos gráficos de demonstração
type DemoRecord struct {
	Date        time.Time `json:"date"`
	Region      string    `json:"region"`
	Impressions int       `json:"impressions"`
	Uniques     int       `json:"uniques"`
	Format      string    `json:"format"`
	Freq        float64   `json:"freq"`
}
