package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	Reporting      Reporting      `mapstructure:",squash"`
	Pipeline       Pipeline       `mapstructure:",squash"`
	MonthlyClosing MonthlyClosing `mapstructure:",squash"`
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

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Reporting concentra os parâmetros injetáveis das projeções
type Reporting struct {
	ServiceTaxRate        float64       `mapstructure:"reporting_service_tax_rate"`
	ProductTaxRate        float64       `mapstructure:"reporting_product_tax_rate"`
	VariableCostRatio     float64       `mapstructure:"reporting_variable_cost_ratio"`
	DefaultCommissionRate float64       `mapstructure:"reporting_default_commission_rate"`
	SlotCapacity          int           `mapstructure:"reporting_slot_capacity"`
	HeatmapStartHour      int           `mapstructure:"reporting_heatmap_start_hour"`
	HeatmapEndHour        int           `mapstructure:"reporting_heatmap_end_hour"`
	HeatmapDays           []int         `mapstructure:"reporting_heatmap_days"`
	IncludeCancelled      bool          `mapstructure:"reporting_include_cancelled"`
	CacheEnabled          bool          `mapstructure:"reporting_cache_enabled"`
	CacheTTL              time.Duration `mapstructure:"reporting_cache_ttl"`
}

// Pipeline define o status aplicado ao entrar em cada etapa do funil de planos.
// Valor vazio mantém o status atual.
type Pipeline struct {
	StatusNew         string   `mapstructure:"pipeline_status_novo"`
	StatusPresented   string   `mapstructure:"pipeline_status_apresentado"`
	StatusNegotiating string   `mapstructure:"pipeline_status_em_negociacao"`
	StatusClosed      string   `mapstructure:"pipeline_status_fechado"`
	PreserveOnClosed  []string `mapstructure:"pipeline_preserve_on_fechado"`
	StrictTransitions bool     `mapstructure:"pipeline_strict_transitions"`
}

type MonthlyClosing struct {
	CronSchedule string `mapstructure:"monthly_closing_cron"`
	Enabled      bool   `mapstructure:"monthly_closing_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/clinic?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("LOG_LEVEL", "debug")

	// Parâmetros do DRE
	viper.SetDefault("REPORTING_SERVICE_TAX_RATE", 0.06)
	viper.SetDefault("REPORTING_PRODUCT_TAX_RATE", 0.12)
	viper.SetDefault("REPORTING_VARIABLE_COST_RATIO", 0.20)

	// Comissão usada quando o profissional não possui taxa cadastrada
	viper.SetDefault("REPORTING_DEFAULT_COMMISSION_RATE", 0.15)

	// Mapa de ocupação: 3 salas, das 8h às 20h, de segunda a sábado
	viper.SetDefault("REPORTING_SLOT_CAPACITY", 3)
	viper.SetDefault("REPORTING_HEATMAP_START_HOUR", 8)
	viper.SetDefault("REPORTING_HEATMAP_END_HOUR", 20)
	viper.SetDefault("REPORTING_HEATMAP_DAYS", "1,2,3,4,5,6")
	viper.SetDefault("REPORTING_INCLUDE_CANCELLED", false)

	viper.SetDefault("REPORTING_CACHE_ENABLED", true)
	viper.SetDefault("REPORTING_CACHE_TTL", "5m")

	viper.SetDefault("PIPELINE_STATUS_NOVO", "prescribed")
	viper.SetDefault("PIPELINE_STATUS_APRESENTADO", "")
	viper.SetDefault("PIPELINE_STATUS_EM_NEGOCIACAO", "negotiating")
	viper.SetDefault("PIPELINE_STATUS_FECHADO", "closed")
	viper.SetDefault("PIPELINE_PRESERVE_ON_FECHADO", "partially_paid,completed")
	viper.SetDefault("PIPELINE_STRICT_TRANSITIONS", false)

	viper.SetDefault("MONTHLY_CLOSING_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_CLOSING_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	if err := decode(config); err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func decode(config *Config) error {
	return viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
}

// finalize deriva valores calculados e valida os parâmetros das projeções
func (c *Config) finalize() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	if err := c.Reporting.Validate(); err != nil {
		return err
	}

	if err := c.Pipeline.Validate(); err != nil {
		return err
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Validate garante que as taxas estejam em [0,1] e a janela de horas seja coerente
func (r Reporting) Validate() error {
	rates := map[string]float64{
		"REPORTING_SERVICE_TAX_RATE":        r.ServiceTaxRate,
		"REPORTING_PRODUCT_TAX_RATE":        r.ProductTaxRate,
		"REPORTING_VARIABLE_COST_RATIO":     r.VariableCostRatio,
		"REPORTING_DEFAULT_COMMISSION_RATE": r.DefaultCommissionRate,
	}
	for name, rate := range rates {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s deve estar entre 0 e 1, recebido %v", name, rate)
		}
	}

	if r.SlotCapacity < 0 {
		return fmt.Errorf("REPORTING_SLOT_CAPACITY não pode ser negativo")
	}

	if r.HeatmapStartHour < 0 || r.HeatmapEndHour > 23 || r.HeatmapStartHour > r.HeatmapEndHour {
		return fmt.Errorf("janela de horas inválida: %d-%d", r.HeatmapStartHour, r.HeatmapEndHour)
	}

	for _, day := range r.HeatmapDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("dia da semana inválido: %d", day)
		}
	}

	return nil
}

// Validate rejeita status de plano desconhecidos nas regras do funil
func (p Pipeline) Validate() error {
	statuses := []struct {
		name  string
		value string
	}{
		{"PIPELINE_STATUS_NOVO", p.StatusNew},
		{"PIPELINE_STATUS_APRESENTADO", p.StatusPresented},
		{"PIPELINE_STATUS_EM_NEGOCIACAO", p.StatusNegotiating},
		{"PIPELINE_STATUS_FECHADO", p.StatusClosed},
	}
	for _, status := range statuses {
		if status.value != "" && !domain.PlanStatus(status.value).Valid() {
			return fmt.Errorf("%s inválido: %q", status.name, status.value)
		}
	}

	for _, status := range p.PreserveOnClosed {
		if !domain.PlanStatus(status).Valid() {
			return fmt.Errorf("PIPELINE_PRESERVE_ON_FECHADO inválido: %q", status)
		}
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
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
