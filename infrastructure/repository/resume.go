package repository

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/domain"
)

// ResumeRepository define a interface de leitura do currículo em PDF
type ResumeRepository interface {
	Get() (*domain.Resume, error)
}

// FileResumeRepository lê o currículo do disco local. Quando o arquivo não
// existe, devolve um Resume indisponível apontando para a URL pública, sem
// tratar a ausência como erro.
type FileResumeRepository struct {
	path      string
	fileName  string
	publicURL string
}

// NewResumeRepository cria um repositório de currículo baseado em arquivo local
func NewResumeRepository(cfg *config.Config) ResumeRepository {
	return &FileResumeRepository{
		path:      cfg.Resume.Path,
		fileName:  cfg.Resume.FileName,
		publicURL: cfg.Resume.PublicURL,
	}
}

func (r *FileResumeRepository) Get() (*domain.Resume, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", r.path).Warn("Currículo local não encontrado, usando URL pública")
			return &domain.Resume{
				FileName:  r.fileName,
				PublicURL: r.publicURL,
				Available: false,
			}, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o arquivo do currículo")
	}

	return &domain.Resume{
		FileName:  r.fileName,
		SizeBytes: int64(len(content)),
		PublicURL: r.publicURL,
		Available: true,
		Content:   content,
	}, nil
}
