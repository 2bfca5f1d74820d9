package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type TradeConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	TradeDB    `yaml:"trade_db"`
	LogConfig  `yaml:"log_config"`
	Kafka      `yaml:"kafka"`
	Auth       `yaml:"auth"`
	Platform   `yaml:"platform"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type TradeDB struct {
	Dsn           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"TRADE_JWT_SECRET"`
}

// Platform carries the business constants: fee in basis points, how long
// funds stay held after delivery, RFQ time-to-live.
type Platform struct {
	FulfillmentFeeBps int64         `yaml:"fulfillment_fee_bps" env-default:"520"`
	EscrowHoldDays    int           `yaml:"escrow_hold_days" env-default:"7"`
	RFQTtl            time.Duration `yaml:"rfq_ttl" env-default:"72h"`
}

func MustLoad() *TradeConfig {
	configPath := os.Getenv("TRADE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("TRADE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg TradeConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
