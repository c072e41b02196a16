package demodata

import (
	"github.com/E-man85/portfolio-api/internal/domain"
)

// Generator define a interface para geração do dataset sintético de demonstração
type Generator interface {
	// Generate produz n registros diários consecutivos a partir de 2024-01-01,
	// de forma determinística para o mesmo par (n, seed)
	Generate(n int, seed int64) ([]domain.DemoRecord, error)
}
