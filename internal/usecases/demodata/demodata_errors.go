package demodata

import (
	"errors"
)

// Erros específicos para o contexto de geração do dataset
var (
	// ErrInvalidRowCount indica que a quantidade de linhas solicitada é menor que 1
	ErrInvalidRowCount = errors.New("row count must be at least 1")
)
