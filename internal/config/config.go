package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Events    EventsConfig    `yaml:"events"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Redis     RedisConfig     `yaml:"redis"`
	HTTP      HTTPConfig      `yaml:"http"`
	QR        QRConfig        `yaml:"qr"        validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto wbf logger levels.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"courtbooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// StorageConfig selects the repository backend. The memory driver keeps all state in process.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
}

type BookingConfig struct {
	HoldTTL            time.Duration `yaml:"hold_ttl"              env:"BOOKING_HOLD_TTL"              env-default:"15m" validate:"gt=0"`
	DepositPercent     int           `yaml:"deposit_percent"       env:"BOOKING_DEPOSIT_PERCENT"       env-default:"30"  validate:"min=1,max=100"`
	CheckInEarlyWindow time.Duration `yaml:"check_in_early_window" env:"BOOKING_CHECK_IN_EARLY_WINDOW" env-default:"15m" validate:"gte=0"`
	MaxRangeDays       int           `yaml:"max_range_days"        env:"BOOKING_MAX_RANGE_DAYS"        env-default:"366" validate:"min=1"`
	Timezone           string        `yaml:"timezone"              env:"BOOKING_TIMEZONE"              env-default:"UTC" validate:"required"`
}

// Location resolves the facility timezone.
func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

type SchedulerConfig struct {
	Interval  time.Duration `yaml:"interval"   env:"SCHEDULER_INTERVAL"   env-default:"30s" validate:"required,gt=0"`
	BatchSize int           `yaml:"batch_size" env:"SCHEDULER_BATCH_SIZE" env-default:"200" validate:"min=1"`
}

type EventsConfig struct {
	QueueSize int `yaml:"queue_size" env:"EVENTS_QUEUE_SIZE" env-default:"256" validate:"min=1"`
}

type TelegramConfig struct {
	BotToken      string `yaml:"bot_token"       env:"TELEGRAM_BOT_TOKEN"       env-default:""`
	CashierChatID int64  `yaml:"cashier_chat_id" env:"TELEGRAM_CASHIER_CHAT_ID" env-default:"0"`
}

// RabbitMQConfig enables the exchange sink when URL is set.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"court.events"`
}

// RedisConfig enables the cross-instance relay when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Channel  string `yaml:"channel"  env:"REDIS_CHANNEL"  env-default:"court-events"`
}

type HTTPConfig struct {
	RateLimitRPS   float64  `yaml:"rate_limit_rps"   env:"HTTP_RATE_LIMIT_RPS"   env-default:"10" validate:"gt=0"`
	RateLimitBurst int      `yaml:"rate_limit_burst" env:"HTTP_RATE_LIMIT_BURST" env-default:"20" validate:"min=1"`
	AllowedOrigins []string `yaml:"allowed_origins"  env:"HTTP_ALLOWED_ORIGINS"  env-default:"*"`
}

type QRConfig struct {
	Secret string `yaml:"secret" env:"QR_SECRET" validate:"required"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
