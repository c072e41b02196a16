package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/usecases/demodata"
	"github.com/E-man85/portfolio-api/internal/usecases/reporting"
	"github.com/E-man85/portfolio-api/pkg/log"
)

// GetDemoRecords devolve o dataset sintético completo. Os parâmetros rows e
// seed são opcionais; na ausência valem os padrões de configuração.
func GetDemoRecords(generator demodata.Generator, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rows := cfg.Demo.Rows
		seed := cfg.Demo.Seed

		if raw := r.URL.Query().Get("rows"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"rows":  raw,
					"error": err.Error(),
				}).Warn("demo: invalid rows parameter")

				http.Error(w, "invalid rows parameter", http.StatusBadRequest)
				return
			}
			rows = parsed
		}

		if raw := r.URL.Query().Get("seed"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				logger.WithFields(log.Fields{
					"seed":  raw,
					"error": err.Error(),
				}).Warn("demo: invalid seed parameter")

				http.Error(w, "invalid seed parameter", http.StatusBadRequest)
				return
			}
			seed = parsed
		}

		records, err := generator.Generate(rows, seed)
		if err != nil {
			if errors.Is(err, demodata.ErrInvalidRowCount) {
				logger.WithField("rows", rows).Warn("demo: row count below minimum")
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			logger.WithError(err).Error("demo: failed to generate dataset")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"rows": rows,
			"seed": seed,
		}).Debug("demo: dataset generated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("demo: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetDailyInsights devolve o total diário de impressões
func GetDailyInsights(service reporting.Reporter) http.Handler {
	return reportHandler("daily", func() (any, error) {
		return service.DailyTotals()
	})
}

// GetRegionFormatInsights devolve os totais por combinação de região e formato
func GetRegionFormatInsights(service reporting.Reporter) http.Handler {
	return reportHandler("region-format", func() (any, error) {
		return service.RegionFormatTotals()
	})
}

// GetHourlyInsights devolve a média de uniques por hora sintética
func GetHourlyInsights(service reporting.Reporter) http.Handler {
	return reportHandler("hourly", func() (any, error) {
		return service.HourlyMeans()
	})
}

// GetWeeklyForecastInsights devolve as somas semanais com a média móvel
func GetWeeklyForecastInsights(service reporting.Reporter) http.Handler {
	return reportHandler("weekly-forecast", func() (any, error) {
		return service.WeeklyForecast()
	})
}

func reportHandler(view string, fetch func() (any, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("view", view)

		result, err := fetch()
		if err != nil {
			logger.WithError(err).Error("demo: failed to compute aggregated view")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("demo: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
