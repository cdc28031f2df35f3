package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// MySQL — подключение к базе WooCommerce (заказы и каталог витрины).
type MySQL struct {
	Host        string `validate:"required"`
	Port        string
	User        string `validate:"required"`
	Password    string `validate:"required"`
	Name        string `validate:"required"`
	TablePrefix string
}

// Postgres — подключение к каталогу товаров; все поля опциональны,
// без них каталог просто отключается.
type Postgres struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type Config struct {
	MySQL    MySQL
	Postgres Postgres

	// StoreURL — базовый адрес витрины, из него строятся ссылки на товары.
	StoreURL string `validate:"required,url"`

	FAQFile  string
	HTTPAddr string

	StanClusterID string
	StanClientID  string
	NATSURL       string
	QuerySubject  string
}

// Load читает .env (если файл есть) и собирает конфигурацию из окружения.
// Обязательные параметры проверяются один раз здесь, а не по месту использования.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		MySQL: MySQL{
			Host:        os.Getenv("DB_HOST"),
			Port:        getenv("DB_PORT", "3306"),
			User:        os.Getenv("DB_USER"),
			Password:    os.Getenv("DB_PASSWORD"),
			Name:        os.Getenv("DB_NAME"),
			TablePrefix: getenv("DB_TABLE_PREFIX", "wp_"),
		},
		Postgres: Postgres{
			Host:     os.Getenv("PG_DB_HOST"),
			Port:     getenv("PG_DB_PORT", "5432"),
			Name:     os.Getenv("PG_DB_NAME"),
			User:     os.Getenv("PG_DB_USER"),
			Password: os.Getenv("PG_DB_PASSWORD"),
		},
		StoreURL:      os.Getenv("WC_URL"),
		FAQFile:       getenv("FAQ_FILE", "faq.csv"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		StanClusterID: getenv("STAN_CLUSTER_ID", "shop-cluster"),
		StanClientID:  os.Getenv("STAN_CLIENT_ID"),
		NATSURL:       getenv("NATS_URL", "nats://localhost:4222"),
		QuerySubject:  getenv("QUERY_SUBJECT", "support.queries"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
