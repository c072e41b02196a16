package formrelay

import (
	"context"

	"github.com/pkg/errors"

	relaydomain "github.com/E-man85/portfolio-api/infrastructure/integrator/formrelay/domain"
	"github.com/E-man85/portfolio-api/infrastructure/integrator/formrelay/formrelayclient"
	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/domain"
)

type Relayer interface {
	// Forward encaminha a mensagem de contato para o serviço de relay externo
	Forward(ctx context.Context, message *domain.ContactMessage) error
}

type FormRelayService struct {
	cfg    *config.Config
	Client formrelayclient.Client
}

func New(cfg *config.Config, client formrelayclient.Client) Relayer {
	return &FormRelayService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *FormRelayService) Forward(ctx context.Context, message *domain.ContactMessage) error {
	submission := relaydomain.Submission{
		Name:     message.Name,
		Email:    message.Email,
		Message:  message.Message,
		Subject:  s.cfg.Contact.Subject,
		Captcha:  "false",
		Template: "table",
	}

	resp, err := s.Client.Submit(submission, &s.cfg.Contact)
	if err != nil {
		return errors.Wrap(err, "falha ao encaminhar mensagem para o relay")
	}

	if resp.Success != "true" {
		return errors.Errorf("relay recusou a submissão: %s", resp.Message)
	}

	return nil
}
