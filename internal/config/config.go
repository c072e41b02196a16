package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Demo         Demo         `mapstructure:",squash"`
	Resume       Resume       `mapstructure:",squash"`
	Contact      Contact      `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Demo controla a geração do dataset sintético exibido nos gráficos.
// Rows e Seed são constantes de implementação; os mesmos valores sempre
// produzem o mesmo dataset.
type Demo struct {
	Rows int   `mapstructure:"demo_rows"`
	Seed int64 `mapstructure:"demo_seed"`
}

type Resume struct {
	Path      string `mapstructure:"resume_path"`
	FileName  string `mapstructure:"resume_file_name"`
	PublicURL string `mapstructure:"resume_public_url"`
}

// Contact configura o encaminhamento do formulário de contato para o
// serviço externo de relay (FormSubmit)
type Contact struct {
	RelayBaseURL string `mapstructure:"contact_relay_base_url"`
	Recipient    string `mapstructure:"contact_recipient"`
	Subject      string `mapstructure:"contact_subject"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Defaults do dataset de demonstração
	viper.SetDefault("DEMO_ROWS", 200)
	viper.SetDefault("DEMO_SEED", 7)

	viper.SetDefault("RESUME_PATH", "assets/Emanuel_Gomes_CV.pdf")
	viper.SetDefault("RESUME_FILE_NAME", "Emanuel_Gomes_CV.pdf")
	viper.SetDefault("RESUME_PUBLIC_URL", "https://raw.githubusercontent.com/E-man85/portfolio_streamlit/main/assets/Emanuel_Gomes_CV.pdf")

	viper.SetDefault("CONTACT_RELAY_BASE_URL", "https://formsubmit.co")
	viper.SetDefault("CONTACT_RECIPIENT", "eman-gomes@hotmail.com")
	viper.SetDefault("CONTACT_SUBJECT", "Portfolio contact — Emanuel Gomes")

	// Defaults do agendador de snapshot das visões de demonstração
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
