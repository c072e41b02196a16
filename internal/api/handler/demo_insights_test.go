package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/domain"
	"github.com/E-man85/portfolio-api/internal/usecases/demodata"
	"github.com/E-man85/portfolio-api/internal/usecases/reporting"
)

func demoConfig() *config.Config {
	return &config.Config{Demo: config.Demo{Rows: 200, Seed: 7}}
}

func TestGetDemoRecords(t *testing.T) {
	cfg := demoConfig()
	generator := demodata.NewCachedGenerator(demodata.NewService())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantRows   int
	}{
		{
			name:       "Sem parâmetros usa os padrões de configuração",
			target:     "/v1/demo/records",
			wantStatus: http.StatusOK,
			wantRows:   200,
		},
		{
			name:       "Parâmetros válidos sobrescrevem os padrões",
			target:     "/v1/demo/records?rows=5&seed=7",
			wantStatus: http.StatusOK,
			wantRows:   5,
		},
		{
			name:       "rows não numérico é rejeitado",
			target:     "/v1/demo/records?rows=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "seed não numérico é rejeitado",
			target:     "/v1/demo/records?seed=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "rows igual a zero é rejeitado",
			target:     "/v1/demo/records?rows=0",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			GetDemoRecords(generator, cfg).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var records []domain.DemoRecord
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&records))
			assert.Len(t, records, tt.wantRows)
		})
	}
}

func TestGetDemoRecords_Deterministic(t *testing.T) {
	cfg := demoConfig()
	generator := demodata.NewCachedGenerator(demodata.NewService())

	fetch := func() []domain.DemoRecord {
		req := httptest.NewRequest(http.MethodGet, "/v1/demo/records?rows=5&seed=7", nil)
		rec := httptest.NewRecorder()
		GetDemoRecords(generator, cfg).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var records []domain.DemoRecord
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&records))
		return records
	}

	assert.Equal(t, fetch(), fetch())
}

func TestReportHandlers(t *testing.T) {
	cfg := demoConfig()
	generator := demodata.NewCachedGenerator(demodata.NewService())
	reporter := reporting.NewService(generator, cfg)

	tests := []struct {
		name    string
		handler http.Handler
		decode  func(t *testing.T, body *httptest.ResponseRecorder) int
	}{
		{
			name:    "Totais diários",
			handler: GetDailyInsights(reporter),
			decode: func(t *testing.T, rec *httptest.ResponseRecorder) int {
				var out []domain.DailyTotal
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
				return len(out)
			},
		},
		{
			name:    "Totais por região e formato",
			handler: GetRegionFormatInsights(reporter),
			decode: func(t *testing.T, rec *httptest.ResponseRecorder) int {
				var out []domain.RegionFormatTotal
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
				return len(out)
			},
		},
		{
			name:    "Médias horárias",
			handler: GetHourlyInsights(reporter),
			decode: func(t *testing.T, rec *httptest.ResponseRecorder) int {
				var out []domain.HourlyMean
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
				return len(out)
			},
		},
		{
			name:    "Previsão semanal",
			handler: GetWeeklyForecastInsights(reporter),
			decode: func(t *testing.T, rec *httptest.ResponseRecorder) int {
				var out []domain.WeeklyForecastEntry
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
				return len(out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			tt.handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Greater(t, tt.decode(t, rec), 0)
		})
	}
}
