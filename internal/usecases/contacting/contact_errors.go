package contacting

import (
	"errors"
)

// Erros específicos para o contexto de contato
var (
	// Erros de validação
	ErrInvalidMessage = errors.New("invalid contact message")

	// Erros de serviços externos
	ErrRelayUnavailable = errors.New("error forwarding message to relay service")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating receipt ID")
)
