package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/domain"
	"github.com/E-man85/portfolio-api/internal/usecases/demodata"
)

func day(offset int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func record(offset int, region, format string, impressions, uniques int) domain.DemoRecord {
	return domain.DemoRecord{
		Date:        day(offset),
		Region:      region,
		Format:      format,
		Impressions: impressions,
		Uniques:     uniques,
	}
}

func TestAggregateDaily(t *testing.T) {
	records := []domain.DemoRecord{
		record(0, "Porto", "Mupi", 1_000, 500),
		record(1, "Lisboa", "Digital", 2_000, 600),
		record(2, "Setúbal", "Abrigo", 3_000, 700),
	}

	totals := aggregateDaily(records)

	require.Len(t, totals, 3)
	for i, want := range []int64{1_000, 2_000, 3_000} {
		assert.True(t, totals[i].Date.Equal(day(i)))
		assert.Equal(t, want, totals[i].Impressions)
	}
}

func TestAggregateRegionFormat(t *testing.T) {
	records := []domain.DemoRecord{
		record(0, "Porto", "Mupi", 1_000, 500),
		record(1, "Porto", "Mupi", 2_000, 700),
		record(2, "Porto", "Digital", 4_000, 900),
		record(3, "Lisboa", "Mupi", 8_000, 1_100),
	}

	totals := aggregateRegionFormat(records)

	// Apenas combinações presentes no dataset, ordenadas por região e formato
	require.Len(t, totals, 3)

	assert.Equal(t, "Lisboa", totals[0].Region)
	assert.Equal(t, "Mupi", totals[0].Format)
	assert.Equal(t, int64(8_000), totals[0].Impressions)
	assert.Equal(t, int64(1_100), totals[0].Uniques)

	assert.Equal(t, "Porto", totals[1].Region)
	assert.Equal(t, "Digital", totals[1].Format)
	assert.Equal(t, int64(4_000), totals[1].Impressions)

	assert.Equal(t, "Porto", totals[2].Region)
	assert.Equal(t, "Mupi", totals[2].Format)
	assert.Equal(t, int64(3_000), totals[2].Impressions)
	assert.Equal(t, int64(1_200), totals[2].Uniques)
}

func TestAggregateRegionFormat_ConsistencyWithDataset(t *testing.T) {
	// A soma de impressions por combinação deve igualar o total do dataset
	generator := demodata.NewService()
	records, err := generator.Generate(200, 7)
	require.NoError(t, err)

	var datasetTotal int64
	for _, r := range records {
		datasetTotal += int64(r.Impressions)
	}

	var aggregatedTotal int64
	for _, total := range aggregateRegionFormat(records) {
		aggregatedTotal += total.Impressions
	}

	assert.Equal(t, datasetTotal, aggregatedTotal)
}

func TestAggregateHourly(t *testing.T) {
	// Com 26 linhas, as horas 0 e 1 recebem duas linhas (índices 0/24 e 1/25)
	// e as demais uma linha cada
	records := make([]domain.DemoRecord, 0, 26)
	for i := 0; i < 26; i++ {
		records = append(records, record(i, "Porto", "Mupi", 1_000, 1_000+i))
	}

	means := aggregateHourly(records)

	require.Len(t, means, 24)
	assert.Equal(t, 0, means[0].Hour)
	assert.InDelta(t, float64(1_000+1_024)/2, means[0].AvgUniques, 1e-9)
	assert.Equal(t, 1, means[1].Hour)
	assert.InDelta(t, float64(1_001+1_025)/2, means[1].AvgUniques, 1e-9)
	assert.Equal(t, 2, means[2].Hour)
	assert.InDelta(t, 1_002, means[2].AvgUniques, 1e-9)
}

func TestAggregateHourly_AbsentBuckets(t *testing.T) {
	// Menos de 24 linhas: horas sem linhas não aparecem na resposta
	records := []domain.DemoRecord{
		record(0, "Porto", "Mupi", 1_000, 800),
		record(1, "Lisboa", "Digital", 1_000, 900),
	}

	means := aggregateHourly(records)

	require.Len(t, means, 2)
	assert.Equal(t, 0, means[0].Hour)
	assert.InDelta(t, 800, means[0].AvgUniques, 1e-9)
	assert.Equal(t, 1, means[1].Hour)
	assert.InDelta(t, 900, means[1].AvgUniques, 1e-9)
}

func TestAggregateWeeklyForecast(t *testing.T) {
	// 2024-01-01 é segunda-feira, semana ISO 1; cada grupo de 7 dias forma
	// exatamente uma semana. Cinco semanas com somas conhecidas.
	weekImpressions := []int{100, 200, 300, 400, 500}

	var records []domain.DemoRecord
	for week, impressions := range weekImpressions {
		for d := 0; d < 7; d++ {
			// Uma linha por dia; a soma semanal fica 7 * impressions
			records = append(records, record(week*7+d, "Porto", "Mupi", impressions, 500))
		}
	}

	entries := aggregateWeeklyForecast(records)

	require.Len(t, entries, 5)

	// Primeira semana: janela de tamanho 1, forecast igual à própria soma
	assert.Equal(t, 1, entries[0].Week)
	assert.Equal(t, int64(700), entries[0].Impressions)
	assert.Equal(t, int64(700), entries[0].Forecast)

	// Segunda semana: média das duas primeiras somas
	assert.Equal(t, int64(1_400), entries[1].Impressions)
	assert.Equal(t, int64((700+1_400)/2), entries[1].Forecast)

	// Quarta semana em diante: média das 4 semanas mais recentes
	assert.Equal(t, int64((700+1_400+2_100+2_800)/4), entries[3].Forecast)
	assert.Equal(t, int64((1_400+2_100+2_800+3_500)/4), entries[4].Forecast)
}

func TestService_ViewsOverGeneratedDataset(t *testing.T) {
	cfg := &config.Config{Demo: config.Demo{Rows: 200, Seed: 7}}
	reporter := NewService(demodata.NewCachedGenerator(demodata.NewService()), cfg)

	daily, err := reporter.DailyTotals()
	require.NoError(t, err)
	assert.Len(t, daily, 200, "uma linha por dia, um total por data distinta")

	hourly, err := reporter.HourlyMeans()
	require.NoError(t, err)
	assert.Len(t, hourly, 24, "200 linhas preenchem todas as horas sintéticas")

	weekly, err := reporter.WeeklyForecast()
	require.NoError(t, err)
	require.NotEmpty(t, weekly)
	assert.Equal(t, weekly[0].Impressions, weekly[0].Forecast, "janela inicial de tamanho 1")
}

func TestService_PropagatesGeneratorError(t *testing.T) {
	cfg := &config.Config{Demo: config.Demo{Rows: 0, Seed: 7}}
	reporter := NewService(demodata.NewService(), cfg)

	_, err := reporter.DailyTotals()
	assert.ErrorIs(t, err, demodata.ErrInvalidRowCount)
}
