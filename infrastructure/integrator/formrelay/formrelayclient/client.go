package formrelayclient

import (
	"net/http"
	"time"

	"github.com/E-man85/portfolio-api/internal/config"
	relaydomain "github.com/E-man85/portfolio-api/infrastructure/integrator/formrelay/domain"
)

type Client interface {
	Submit(submission relaydomain.Submission, contactConfig *config.Contact) (relaydomain.RelayResponse, error)
}

type FormRelayClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente HTTP do relay de formulários
func NewClient(cfg *config.Config) Client {
	return &FormRelayClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
