package reporting

import (
	"github.com/E-man85/portfolio-api/internal/domain"
)

// Reporter define as visões agregadas derivadas do dataset de demonstração.
// As visões são transientes, recalculadas a cada chamada sobre o dataset
// memoizado; nenhuma delas altera os registros de origem.
type Reporter interface {
	// DailyTotals agrupa por data e soma impressions, em ordem ascendente
	DailyTotals() ([]domain.DailyTotal, error)

	// RegionFormatTotals agrupa por (região, formato) e soma impressions e uniques
	RegionFormatTotals() ([]domain.RegionFormatTotal, error)

	// HourlyMeans agrupa pelo índice da linha mod 24 como hora sintética e
	// calcula a média de uniques por hora; horas sem linhas ficam ausentes
	HourlyMeans() ([]domain.HourlyMean, error)

	// WeeklyForecast soma impressions por semana ISO e aplica média móvel das
	// últimas 4 semanas (janela mínima de 1), arredondada para inteiro
	WeeklyForecast() ([]domain.WeeklyForecastEntry, error)
}
