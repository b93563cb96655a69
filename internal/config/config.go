package config

import (
	"os"
	"strconv"
	"strings"

	"wdr/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	App    *AppConfig
	Admin  *AdminConfig
	Brand  *BrandConfig
	Redis  *RedisConfig
	DB     *DBConfig
	Worker *WorkerConfig
}

type AppConfig struct {
	Name        string
	Env         string
	Port        string
	LogLevel    string
	LogFilePath string
	BinFilePath string
	PublicDir   string
	BaseURL     string
}

// AdminConfig carries the shared admin secret. An empty key locks the admin surface.
type AdminConfig struct {
	Key string
}

type BrandConfig struct {
	SiteName     string
	SupportEmail string
	FooterText   string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       string
	Stream   string
	MaxLen   int64
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Pool     *DBPooling
}

type DBPooling struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type WorkerConfig struct {
	WorkerCount    int
	Group          string
	ConsumerPrefix string
	GRPCPort       string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using process environment")
	}

	return &Config{
		App:    LoadAppConfig(),
		Admin:  LoadAdminConfig(),
		Brand:  LoadBrandConfig(),
		Redis:  LoadRedisConfig(),
		DB:     LoadDBConfig(),
		Worker: LoadWorkerConfig(),
	}
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Name:        getEnv("APP_NAME", "withdrawal-receipts"),
		Env:         GetAppEnv(),
		Port:        GetAppPort(),
		LogLevel:    getEnv("APP_LOG_LEVEL", "info"),
		LogFilePath: getEnv("APP_LOG_FILE", "logs/app.log"),
		BinFilePath: GetAppBinFile(),
		PublicDir:   getEnv("APP_PUBLIC_DIR", "./public"),
		BaseURL:     strings.TrimRight(getEnv("APP_BASE_URL", ""), "/"),
	}
}

func LoadAdminConfig() *AdminConfig {
	return &AdminConfig{
		Key: getEnv("ADMIN_KEY", ""),
	}
}

func LoadBrandConfig() *BrandConfig {
	return &BrandConfig{
		SiteName:     getEnv("BRAND_SITE_NAME", "Withdrawal Center"),
		SupportEmail: getEnv("BRAND_SUPPORT_EMAIL", ""),
		FooterText:   getEnv("BRAND_FOOTER", ""),
	}
}

func LoadRedisConfig() *RedisConfig {
	return &RedisConfig{
		Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnv("REDIS_DB", "0"),
		Stream:   getEnv("REDIS_STREAM", "withdrawal:events"),
		MaxLen:   int64(getEnvAsInt("REDIS_STREAM_MAXLEN", 100000)),
	}
}

func LoadDBConfig() *DBConfig {
	return &DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "password"),
		Name:     getEnv("DB_NAME", "withdrawals"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		Pool: &DBPooling{
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
			ConnMaxLifetime: getEnvAsInt("DB_CONN_MAX_LIFETIME", 60),
			ConnMaxIdleTime: getEnvAsInt("DB_CONN_MAX_IDLE_TIME", 5),
		},
	}
}

func LoadWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		WorkerCount:    getEnvAsInt("WORKER_COUNT", 2),
		Group:          getEnv("WORKER_GROUP", "withdrawal_archive_cg"),
		ConsumerPrefix: getEnv("WORKER_CONSUMER_PREFIX", hostnameOr("worker")),
		GRPCPort:       getEnv("WORKER_GRPC_PORT", "50061"),
	}
}

// =========================================================

func GetAppPort() string {
	return getEnv("PORT", getEnv("APP_PORT", "10000"))
}

func GetAppEnv() string {
	return getEnv("APP_ENV", "development")
}

func GetAppBinFile() string {
	return getEnv("APP_BIN_FILE", "./bin/wdr-api")
}

//============================================================

// getEnv returns the value of the environment variable or a default value if not set
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvAsInt returns the value of the environment variable as an integer or a default value if not set
func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func hostnameOr(def string) string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return def
}
