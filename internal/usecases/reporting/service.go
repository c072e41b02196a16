package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/domain"
	"github.com/E-man85/portfolio-api/internal/usecases/demodata"
)

// forecastWindow é o tamanho da janela da média móvel semanal
const forecastWindow = 4

// Service implementa a interface Reporter sobre o dataset de demonstração
type Service struct {
	cfg       *config.Config
	generator demodata.Generator
}

// NewService cria uma nova instância do serviço de visões agregadas
func NewService(generator demodata.Generator, cfg *config.Config) Reporter {
	return &Service{
		cfg:       cfg,
		generator: generator,
	}
}

func (s *Service) dataset() ([]domain.DemoRecord, error) {
	return s.generator.Generate(s.cfg.Demo.Rows, s.cfg.Demo.Seed)
}

// DailyTotals agrupa por data e soma impressions
func (s *Service) DailyTotals() ([]domain.DailyTotal, error) {
	records, err := s.dataset()
	if err != nil {
		return nil, err
	}
	return aggregateDaily(records), nil
}

// RegionFormatTotals agrupa por (região, formato) e soma impressions e uniques
func (s *Service) RegionFormatTotals() ([]domain.RegionFormatTotal, error) {
	records, err := s.dataset()
	if err != nil {
		return nil, err
	}
	return aggregateRegionFormat(records), nil
}

// HourlyMeans calcula a média de uniques por hora sintética
func (s *Service) HourlyMeans() ([]domain.HourlyMean, error) {
	records, err := s.dataset()
	if err != nil {
		return nil, err
	}
	return aggregateHourly(records), nil
}

// WeeklyForecast soma impressions por semana ISO com média móvel de 4 semanas
func (s *Service) WeeklyForecast() ([]domain.WeeklyForecastEntry, error) {
	records, err := s.dataset()
	if err != nil {
		return nil, err
	}
	return aggregateWeeklyForecast(records), nil
}

func aggregateDaily(records []domain.DemoRecord) []domain.DailyTotal {
	totalsByDate := make(map[time.Time]int64)
	for _, record := range records {
		totalsByDate[record.Date] += int64(record.Impressions)
	}

	totals := make([]domain.DailyTotal, 0, len(totalsByDate))
	for date, impressions := range totalsByDate {
		totals = append(totals, domain.DailyTotal{
			Date:        date,
			Impressions: impressions,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})

	return totals
}

type regionFormatKey struct {
	region string
	format string
}

func aggregateRegionFormat(records []domain.DemoRecord) []domain.RegionFormatTotal {
	totalsByKey := make(map[regionFormatKey]*domain.RegionFormatTotal)
	for _, record := range records {
		key := regionFormatKey{region: record.Region, format: record.Format}

		total, ok := totalsByKey[key]
		if !ok {
			total = &domain.RegionFormatTotal{
				Region: record.Region,
				Format: record.Format,
			}
			totalsByKey[key] = total
		}

		total.Impressions += int64(record.Impressions)
		total.Uniques += int64(record.Uniques)
	}

	totals := make([]domain.RegionFormatTotal, 0, len(totalsByKey))
	for _, total := range totalsByKey {
		totals = append(totals, *total)
	}

	// Ordenação estável por região e formato para resposta previsível
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Region != totals[j].Region {
			return totals[i].Region < totals[j].Region
		}
		return totals[i].Format < totals[j].Format
	})

	return totals
}

func aggregateHourly(records []domain.DemoRecord) []domain.HourlyMean {
	var sums, counts [24]int64
	for i, record := range records {
		hour := i % 24
		sums[hour] += int64(record.Uniques)
		counts[hour]++
	}

	// Horas sem nenhuma linha ficam ausentes na resposta, não zeradas
	means := make([]domain.HourlyMean, 0, 24)
	for hour := 0; hour < 24; hour++ {
		if counts[hour] == 0 {
			continue
		}
		means = append(means, domain.HourlyMean{
			Hour:       hour,
			AvgUniques: float64(sums[hour]) / float64(counts[hour]),
		})
	}

	return means
}

func aggregateWeeklyForecast(records []domain.DemoRecord) []domain.WeeklyForecastEntry {
	// Os registros já estão em ordem ascendente de data, então as semanas ISO
	// aparecem em ordem; basta acumular na primeira ocorrência de cada semana
	var weeks []int
	sumsByWeek := make(map[int]int64)
	for _, record := range records {
		_, week := record.Date.ISOWeek()
		if _, ok := sumsByWeek[week]; !ok {
			weeks = append(weeks, week)
		}
		sumsByWeek[week] += int64(record.Impressions)
	}

	entries := make([]domain.WeeklyForecastEntry, 0, len(weeks))
	for i, week := range weeks {
		start := i - forecastWindow + 1
		if start < 0 {
			start = 0
		}

		var windowSum int64
		for _, windowWeek := range weeks[start : i+1] {
			windowSum += sumsByWeek[windowWeek]
		}
		windowSize := i + 1 - start

		entries = append(entries, domain.WeeklyForecastEntry{
			Week:        week,
			Impressions: sumsByWeek[week],
			Forecast:    int64(math.Round(float64(windowSum) / float64(windowSize))),
		})
	}

	return entries
}
