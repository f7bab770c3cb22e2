package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	LogLevel         string
	JWTSecret        string
	PostgreSQLConfig PostgreSQLConfig
	RedisConfig      RedisConfig
	KafkaConfig      KafkaConfig
	TracingConfig    TracingConfig
	GoogleConfig     GoogleConfig
	StorageConfig    StorageConfig
	SMTPConfig       SMTPConfig
	RateLimitConfig  RateLimitConfig
	ProductPageSize  int
	CategoryCache    CategoryCacheConfig
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type StorageConfig struct {
	Bucket          string
	CredentialsFile string
	MaxUploadBytes  int64
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string
}

type CategoryCacheConfig struct {
	TTL             time.Duration
	RefreshInterval time.Duration
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		RedisConfig: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     os.Getenv("BROKER_TOPIC"),
			BrokerPartition: getEnvInt("BROKER_PARTITION", 0),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		GoogleConfig: GoogleConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		},
		StorageConfig: StorageConfig{
			Bucket:          os.Getenv("STORAGE_BUCKET"),
			CredentialsFile: os.Getenv("STORAGE_CREDENTIALS_FILE"),
			MaxUploadBytes:  int64(getEnvInt("UPLOAD_MAX_BYTES", 5<<20)),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		RateLimitConfig: RateLimitConfig{
			RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 20),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 40),
			TrustedProxies:    getEnvList("TRUSTED_PROXIES"),
		},
		ProductPageSize: getEnvInt("PRODUCT_PAGE_SIZE", 5),
		CategoryCache: CategoryCacheConfig{
			TTL:             getEnvDuration("CATEGORY_CACHE_TTL", 10*time.Minute),
			RefreshInterval: getEnvDuration("CATEGORY_REFRESH_INTERVAL", 5*time.Minute),
		},
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvList(key string) []string {
	var res []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}
