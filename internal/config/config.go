package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost:6379"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type CartConfig struct {
	// carts are session-scoped; they expire from the store after TTL of
	// inactivity
	TTL time.Duration `yaml:"ttl" env:"CART_TTL" env-default:"24h"`
}

type PricingConfig struct {
	// decimal string, applied as a flat fee on every summary
	DeliveryFee string `yaml:"delivery_fee" env:"DELIVERY_FEE" env-default:"2.99"`
}

type CouponConfig struct {
	// code -> flat discount amount (decimal strings); empty means the
	// built-in CRAZE10 promotion
	Codes map[string]string `yaml:"codes"`
}

type CatalogConfig struct {
	// optional YAML catalog file; empty means the built-in catalog
	Path string `yaml:"path" env:"CATALOG_PATH" env-default:""`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer   `yaml:"http_server"`
	RedisConnect RedisConnect  `yaml:"redis"`
	Cart         CartConfig    `yaml:"cart"`
	Pricing      PricingConfig `yaml:"pricing"`
	Coupons      CouponConfig  `yaml:"coupons"`
	Catalog      CatalogConfig `yaml:"catalog"`
	Telemetry    Telemetry     `yaml:"telemetry"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the config file")

		flag.Parse()

		configPath = *flags
	}

	var cfg Config

	// with no config file everything comes from the environment and
	// defaults
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://:%s@%s/%d", r.Password, r.Host, r.DB)
}
