package contacting

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/E-man85/portfolio-api/infrastructure/integrator/formrelay"
	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/domain"
	"github.com/E-man85/portfolio-api/pkg/utils"
)

// ContactService define a interface de envio de mensagens do formulário de contato
type ContactService interface {
	// Submit valida a mensagem e a encaminha para o relay externo,
	// devolvendo um recibo com identificador curto
	Submit(ctx context.Context, message *domain.ContactMessage) (*domain.ContactReceipt, error)
}

// Service implementa ContactService. Nenhuma mensagem é armazenada; o envio é
// delegado integralmente ao serviço externo de relay.
type Service struct {
	cfg      *config.Config
	relayer  formrelay.Relayer
	validate *validator.Validate
}

// NewService cria uma nova instância do serviço de contato
func NewService(relayer formrelay.Relayer, cfg *config.Config) ContactService {
	return &Service{
		cfg:      cfg,
		relayer:  relayer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) Submit(ctx context.Context, message *domain.ContactMessage) (*domain.ContactReceipt, error) {
	if message == nil {
		return nil, errors.Wrap(ErrInvalidMessage, "mensagem vazia")
	}

	if err := s.validate.Struct(message); err != nil {
		logrus.WithError(err).Warn("Mensagem de contato rejeitada na validação")
		return nil, errors.Wrap(ErrInvalidMessage, err.Error())
	}

	receiptID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	if err := s.relayer.Forward(ctx, message); err != nil {
		logrus.WithFields(logrus.Fields{
			"receipt_id": receiptID,
			"error":      err.Error(),
		}).Error("Falha ao encaminhar mensagem de contato")
		return nil, errors.Wrap(ErrRelayUnavailable, err.Error())
	}

	logrus.WithField("receipt_id", receiptID).Info("Mensagem de contato encaminhada com sucesso")

	return &domain.ContactReceipt{
		ID:     receiptID,
		SentAt: time.Now().UTC(),
	}, nil
}
