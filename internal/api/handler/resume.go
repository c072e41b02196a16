package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/E-man85/portfolio-api/infrastructure/repository"
	"github.com/E-man85/portfolio-api/pkg/log"
)

// DownloadResume serve o currículo em PDF para download. Quando o arquivo
// local não existe, redireciona para a cópia pública.
func DownloadResume(repo repository.ResumeRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		resume, err := repo.Get()
		if err != nil {
			logger.WithError(err).Error("resume: failed to read resume file")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if !resume.Available {
			logger.WithField("public_url", resume.PublicURL).Info("resume: local file missing, redirecting to public copy")
			http.Redirect(w, r, resume.PublicURL, http.StatusTemporaryRedirect)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.FileName))
		if _, err := w.Write(resume.Content); err != nil {
			logger.WithError(err).Error("resume: failed to write response")
		}
	})
}

// PreviewResume devolve o currículo codificado em base64 para o preview
// embutido do frontend (iframe com data URI)
func PreviewResume(repo repository.ResumeRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		resume, err := repo.Get()
		if err != nil {
			logger.WithError(err).Error("resume: failed to read resume file")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := map[string]any{
			"file_name":  resume.FileName,
			"available":  resume.Available,
			"public_url": resume.PublicURL,
		}

		if resume.Available {
			response["mime_type"] = "application/pdf"
			response["content_base64"] = base64.StdEncoding.EncodeToString(resume.Content)
			response["size_bytes"] = resume.SizeBytes
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("resume: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
