package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Analytics   Analytics   `mapstructure:",squash"`
	Reports     Reports     `mapstructure:",squash"`
	DailyDigest DailyDigest `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Analytics governa o motor de agregação: todos os limites de bucket são
// calculados neste único fuso horário, e MaxRangeDays limita o tamanho do
// período para evitar contagens patológicas de buckets
type Analytics struct {
	Timezone     string `mapstructure:"analytics_timezone"`
	MaxRangeDays int    `mapstructure:"analytics_max_range_days"`
}

// Location resolve o fuso horário configurado para os buckets
func (a Analytics) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

type Reports struct {
	DefaultDishLimit int `mapstructure:"reports_default_dish_limit"`
	MaxDishLimit     int `mapstructure:"reports_max_dish_limit"`
	DefaultPageSize  int `mapstructure:"reports_default_page_size"`
	MaxPageSize      int `mapstructure:"reports_max_page_size"`
}

type DailyDigest struct {
	CronSchedule string `mapstructure:"daily_digest_cron"`
	Enabled      bool   `mapstructure:"daily_digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/restaurant")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Fuso horário fixo do restaurante: pedidos perto da meia-noite caem no
	// bucket do dia local, independente do fuso do cliente
	viper.SetDefault("ANALYTICS_TIMEZONE", "Asia/Ho_Chi_Minh")
	viper.SetDefault("ANALYTICS_MAX_RANGE_DAYS", 366)

	viper.SetDefault("REPORTS_DEFAULT_DISH_LIMIT", 15)
	viper.SetDefault("REPORTS_MAX_DISH_LIMIT", 100)
	viper.SetDefault("REPORTS_DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("REPORTS_MAX_PAGE_SIZE", 100)

	viper.SetDefault("DAILY_DIGEST_CRON", "0 7 * * *") // Todos os dias às 7h
	viper.SetDefault("DAILY_DIGEST_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	// Validar o fuso horário cedo: o motor de agregação inteiro depende dele
	if _, err := config.Analytics.Location(); err != nil {
		return nil, fmt.Errorf("fuso horário inválido em ANALYTICS_TIMEZONE: %w", err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
