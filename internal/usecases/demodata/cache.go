package demodata

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/E-man85/portfolio-api/internal/domain"
)

// cacheKey identifica um dataset gerado pelos argumentos de geração
type cacheKey struct {
	n    int
	seed int64
}

// CachedGenerator memoiza os datasets gerados por (n, seed) durante a sessão.
// Cada chave é escrita uma única vez e nunca é removida; o dataset armazenado
// é imutável e pode ser lido por qualquer número de leitores concorrentes.
// O cache pertence à camada de aplicação, o gerador em si permanece puro.
type CachedGenerator struct {
	generator Generator
	mu        sync.RWMutex
	datasets  map[cacheKey][]domain.DemoRecord
}

// NewCachedGenerator cria um gerador com memoização por argumentos
func NewCachedGenerator(generator Generator) *CachedGenerator {
	return &CachedGenerator{
		generator: generator,
		datasets:  make(map[cacheKey][]domain.DemoRecord),
	}
}

// Generate devolve o dataset memoizado para (n, seed), gerando-o na primeira chamada
func (c *CachedGenerator) Generate(n int, seed int64) ([]domain.DemoRecord, error) {
	key := cacheKey{n: n, seed: seed}

	c.mu.RLock()
	records, ok := c.datasets[key]
	c.mu.RUnlock()
	if ok {
		return records, nil
	}

	generated, err := c.generator.Generate(n, seed)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Outra goroutine pode ter gerado o mesmo dataset enquanto aguardávamos o
	// lock; o resultado é idêntico por determinismo, mantemos o primeiro inserido
	if records, ok := c.datasets[key]; ok {
		return records, nil
	}

	c.datasets[key] = generated

	logrus.WithFields(logrus.Fields{
		"rows": n,
		"seed": seed,
	}).Debug("Dataset de demonstração gerado e memoizado")

	return generated, nil
}
