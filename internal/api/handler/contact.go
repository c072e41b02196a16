package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/E-man85/portfolio-api/internal/domain"
	"github.com/E-man85/portfolio-api/internal/usecases/contacting"
	"github.com/E-man85/portfolio-api/pkg/apiErrors"
	"github.com/E-man85/portfolio-api/pkg/log"
)

// SubmitContact recebe uma mensagem do formulário de contato e a encaminha
// para o serviço externo de relay
func SubmitContact(service contacting.ContactService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var message domain.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			logger.WithError(err).Warn("contact: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		receipt, err := service.Submit(r.Context(), &message)
		if err != nil {
			switch {
			case errors.Is(err, contacting.ErrInvalidMessage):
				logger.WithError(err).Warn("contact: message failed validation")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mensagem inválida", err.Error())
			case errors.Is(err, contacting.ErrRelayUnavailable):
				logger.WithError(err).Error("contact: relay service unavailable")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível enviar a mensagem no momento", nil)
			default:
				logger.WithError(err).Error("contact: unexpected failure")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao enviar a mensagem", nil)
			}
			return
		}

		logger.WithField("receipt_id", receipt.ID).Info("contact: message forwarded")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(receipt); err != nil {
			logger.WithError(err).Error("contact: failed to encode response")
		}
	})
}
