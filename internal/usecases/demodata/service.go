package demodata

import (
	"math/rand"
	"time"

	"github.com/E-man85/portfolio-api/internal/domain"
	"github.com/E-man85/portfolio-api/pkg/utils"
)

// Categorias fixas do dataset. As escolhas por linha são independentes,
// sem correlação entre região e formato.
var (
	regions = []string{"Lisboa", "Porto", "Matosinhos", "Setúbal"}
	formats = []string{"Mupi", "Abrigo", "Digital"}
)

// Faixas dos contadores, intervalos semiabertos [min, max)
const (
	minImpressions = 1_000
	maxImpressions = 50_000
	minUniques     = 500
	maxUniques     = 20_000
)

// startDate é a data da primeira linha do dataset
var startDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Service implementa a interface Generator
type Service struct{}

// NewService cria uma nova instância do gerador de dataset
func NewService() Generator {
	return &Service{}
}

// Generate produz o dataset sintético. Função pura de (n, seed): a ordem dos
// sorteios por linha é região, impressions, uniques e formato, sempre sobre a
// mesma fonte pseudoaleatória semeada, garantindo reprodutibilidade.
func (s *Service) Generate(n int, seed int64) ([]domain.DemoRecord, error) {
	if n < 1 {
		return nil, ErrInvalidRowCount
	}

	rng := rand.New(rand.NewSource(seed))

	records := make([]domain.DemoRecord, 0, n)
	for i := 0; i < n; i++ {
		record := domain.DemoRecord{
			Date:        startDate.AddDate(0, 0, i),
			Region:      regions[rng.Intn(len(regions))],
			Impressions: minImpressions + rng.Intn(maxImpressions-minImpressions),
			Uniques:     minUniques + rng.Intn(maxUniques-minUniques),
			Format:      formats[rng.Intn(len(formats))],
		}

		// uniques nunca é zero porque o mínimo da faixa é 500
		record.Freq = utils.RoundWithTwoDecimalPlace(float64(record.Impressions) / float64(record.Uniques))

		records = append(records, record)
	}

	return records, nil
}
