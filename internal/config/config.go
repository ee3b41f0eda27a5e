package config

import (
	"fmt"
	"time"

	"github.com/ostrv1/LessonDesk/internal/policy"
	"github.com/ostrv1/LessonDesk/internal/pricing"
	"github.com/shopspring/decimal"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Platform  PlatformConfig  `yaml:"platform"  validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
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

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"lessondesk"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

// PlatformConfig carries the marketplace rates and policy thresholds. They
// feed the pricing calculator and the policy evaluator so nothing in the
// business logic reads package-level globals.
type PlatformConfig struct {
	VATRate                float64       `yaml:"vat_rate"                 env:"PLATFORM_VAT_RATE"                 env-default:"0.10" validate:"gte=0,lt=1"`
	CommissionRate         float64       `yaml:"commission_rate"          env:"PLATFORM_COMMISSION_RATE"          env-default:"0.20" validate:"gte=0,lt=1"`
	GroupDiscount          float64       `yaml:"group_discount"           env:"PLATFORM_GROUP_DISCOUNT"           env-default:"0.30" validate:"gte=0,lt=1"`
	PackageDiscountFive    float64       `yaml:"package_discount_five"    env:"PLATFORM_PACKAGE_DISCOUNT_FIVE"    env-default:"0.10" validate:"gte=0,lt=1"`
	PackageDiscountTen     float64       `yaml:"package_discount_ten"     env:"PLATFORM_PACKAGE_DISCOUNT_TEN"     env-default:"0.15" validate:"gte=0,lt=1"`
	RescheduleNoticeHours  int           `yaml:"reschedule_notice_hours"  env:"PLATFORM_RESCHEDULE_NOTICE_HOURS"  env-default:"72"   validate:"gt=0"`
	MaxReschedules         int           `yaml:"max_reschedules"          env:"PLATFORM_MAX_RESCHEDULES"          env-default:"1"    validate:"gte=0"`
	FullRefundHours        int           `yaml:"full_refund_hours"        env:"PLATFORM_FULL_REFUND_HOURS"        env-default:"48"   validate:"gt=0"`
	HalfRefundHours        int           `yaml:"half_refund_hours"        env:"PLATFORM_HALF_REFUND_HOURS"        env-default:"24"   validate:"gt=0"`
	AutoCompleteGrace      time.Duration `yaml:"auto_complete_grace"      env:"PLATFORM_AUTO_COMPLETE_GRACE"      env-default:"48h"  validate:"gt=0"`
	LateThreshold          time.Duration `yaml:"late_threshold"           env:"PLATFORM_LATE_THRESHOLD"           env-default:"15m"  validate:"gt=0"`
	MaxAbsencesSuspension  int           `yaml:"max_absences_suspension"  env:"PLATFORM_MAX_ABSENCES_SUSPENSION"  env-default:"3"    validate:"gt=0"`
}

func (p PlatformConfig) PricingConfig() pricing.Config {
	return pricing.Config{
		VATRate:        decimal.NewFromFloat(p.VATRate),
		CommissionRate: decimal.NewFromFloat(p.CommissionRate),
		GroupDiscount:  decimal.NewFromFloat(p.GroupDiscount),
		PackageTiers: []pricing.PackageTier{
			{MinQuantity: 10, Discount: decimal.NewFromFloat(p.PackageDiscountTen)},
			{MinQuantity: 5, Discount: decimal.NewFromFloat(p.PackageDiscountFive)},
		},
	}
}

func (p PlatformConfig) PolicyRules() policy.Rules {
	return policy.Rules{
		RescheduleNoticeHours: p.RescheduleNoticeHours,
		MaxReschedules:        p.MaxReschedules,
		FullRefundHours:       p.FullRefundHours,
		HalfRefundHours:       p.HalfRefundHours,
		AutoCompleteGrace:     p.AutoCompleteGrace,
		LateThreshold:         p.LateThreshold,
		MaxTeacherAbsences:    p.MaxAbsencesSuspension,
	}
}

type TelegramConfig struct {
	BotToken  string `yaml:"bot_token"   env:"TELEGRAM_BOT_TOKEN" env-default:""`
	OpsChatID int64  `yaml:"ops_chat_id" env:"TELEGRAM_OPS_CHAT_ID" env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
