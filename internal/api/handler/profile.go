package handler

import (
	"encoding/json"
	"net/http"

	"github.com/E-man85/portfolio-api/internal/usecases/profiling"
	"github.com/E-man85/portfolio-api/pkg/log"
)

// GetProfile devolve os dados do perfil exibidos na página inicial
func GetProfile(service profiling.ContentProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeContent(w, r, "profile", service.Profile())
	})
}

// GetProjects devolve os estudos de caso do portfólio
func GetProjects(service profiling.ContentProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeContent(w, r, "projects", service.Projects())
	})
}

// GetSkills devolve os grupos de habilidades da página de currículo
func GetSkills(service profiling.ContentProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeContent(w, r, "skills", service.Skills())
	})
}

func writeContent(w http.ResponseWriter, r *http.Request, section string, content any) {
	logger := log.ForContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(content); err != nil {
		logger.WithFields(log.Fields{
			"section": section,
			"error":   err.Error(),
		}).Error("profile: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
