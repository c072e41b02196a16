package handler

import (
	"net/http"

	"github.com/E-man85/portfolio-api/infrastructure/repository"
	"github.com/E-man85/portfolio-api/internal/api/handler/router"
	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/usecases/contacting"
	"github.com/E-man85/portfolio-api/internal/usecases/demodata"
	"github.com/E-man85/portfolio-api/internal/usecases/profiling"
	"github.com/E-man85/portfolio-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func DemoInsights(generator demodata.Generator, reporter reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/demo/records",
			Method:  http.MethodGet,
			Handler: GetDemoRecords(generator, cfg),
		},
		{
			Path:    "/v1/demo/insights/daily",
			Method:  http.MethodGet,
			Handler: GetDailyInsights(reporter),
		},
		{
			Path:    "/v1/demo/insights/region-format",
			Method:  http.MethodGet,
			Handler: GetRegionFormatInsights(reporter),
		},
		{
			Path:    "/v1/demo/insights/hourly",
			Method:  http.MethodGet,
			Handler: GetHourlyInsights(reporter),
		},
		{
			Path:    "/v1/demo/insights/weekly-forecast",
			Method:  http.MethodGet,
			Handler: GetWeeklyForecastInsights(reporter),
		},
	}
}

func Portfolio(service profiling.ContentProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/profile",
			Method:  http.MethodGet,
			Handler: GetProfile(service),
		},
		{
			Path:    "/v1/projects",
			Method:  http.MethodGet,
			Handler: GetProjects(service),
		},
		{
			Path:    "/v1/skills",
			Method:  http.MethodGet,
			Handler: GetSkills(service),
		},
	}
}

func ResumeRoutes(repo repository.ResumeRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/resume",
			Method:  http.MethodGet,
			Handler: DownloadResume(repo),
		},
		{
			Path:    "/v1/resume/preview",
			Method:  http.MethodGet,
			Handler: PreviewResume(repo),
		},
	}
}

func Contact(service contacting.ContactService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/contact",
			Method:  http.MethodPost,
			Handler: SubmitContact(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
