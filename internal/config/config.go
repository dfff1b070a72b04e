package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Studio   StudioConfig   `yaml:"studio"   validate:"required"`
	Session  SessionConfig  `yaml:"session"  validate:"required"`
	Telegram TelegramConfig `yaml:"telegram"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level onto the wbf logger levels.
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

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// StudioConfig points at the studio API this portal fronts.
type StudioConfig struct {
	BaseURL string        `yaml:"base_url" env:"STUDIO_BASE_URL" env-default:"http://localhost:8000/api" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"  env:"STUDIO_TIMEOUT"  env-default:"15s"                       validate:"gt=0"`
}

type SessionConfig struct {
	TTL           time.Duration `yaml:"ttl"            env:"SESSION_TTL"            env-default:"30m" validate:"required,gt=0"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"  validate:"required,gt=0"`
}

// CookieMaxAge converts the TTL to whole seconds for the session cookie.
func (s SessionConfig) CookieMaxAge() int {
	return int(s.TTL / time.Second)
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type TracingConfig struct {
	OTLPAddr    string `yaml:"otlp_addr"    env:"TRACING_OTLP_ADDR"    env-default:""`
	ServiceName string `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"creative-clicks"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
