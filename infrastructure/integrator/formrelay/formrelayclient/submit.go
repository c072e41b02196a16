package formrelayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	relaydomain "github.com/E-man85/portfolio-api/infrastructure/integrator/formrelay/domain"
	"github.com/E-man85/portfolio-api/internal/config"
)

// Submit envia uma submissão do formulário de contato para o endpoint AJAX do
// FormSubmit. O destinatário faz parte do caminho da URL.
func (c *FormRelayClient) Submit(submission relaydomain.Submission, contactConfig *config.Contact) (relaydomain.RelayResponse, error) {
	var response relaydomain.RelayResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(contactConfig.RelayBaseURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "ajax", contactConfig.Recipient)

	// Montar o corpo JSON da submissão.
	body, err := json.Marshal(submission)
	if err != nil {
		return response, fmt.Errorf("erro ao serializar a submissão: %w", err)
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
