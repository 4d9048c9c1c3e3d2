package config

import (
	"github.com/spf13/viper"
)

// Config reúne toda a configuração de runtime carregada de variáveis de
// ambiente. Cada campo mapeia 1:1 para uma env var documentada no README.
type Config struct {
	// Servidor
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Persistência — "redis" grava o snapshot inteiro sob uma única chave;
	// "file" grava o mesmo documento JSON em disco.
	StorageBackend string `mapstructure:"STORAGE_BACKEND"` // redis | file
	RedisURL       string `mapstructure:"REDIS_URL"`
	SnapshotKey    string `mapstructure:"SNAPSHOT_KEY"`
	DataDir        string `mapstructure:"DATA_DIR"`

	// Insights (consultoria gerada por IA — opcional)
	GeminiAPIURL string `mapstructure:"GEMINI_API_URL"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Negócio
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load lê a configuração do ambiente (e de um .env opcional).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Defaults razoáveis para desenvolvimento
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SNAPSHOT_KEY", "autocar:estado:v2")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("GEMINI_API_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/autocar/pdfs")

	// .env opcional para desenvolvimento local — não falha se ausente
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
