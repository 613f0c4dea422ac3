package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	InternalAPIKey string
}

type RabbitConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// BirthdayConfig holds the celebration engine tunables. They are passed into
// the application layer as plain values so tests can vary them freely.
type BirthdayConfig struct {
	UpcomingDays     int
	MoveFeb29ToFeb28 bool
}

type Config struct {
	Environment       string
	ReservedUsernames []string
	Server            ServerConfig
	Database          DatabaseConfig
	Redis             RedisConfig
	Auth              AuthConfig
	Rabbit            RabbitConfig
	Birthday          BirthdayConfig
}

// Load reads configuration from the environment. A .env file is loaded first
// when present so local development does not need exported variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		ReservedUsernames: getEnvList("RESERVED_USERNAMES", "me,admin,root,superadmin"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			Name:            getEnv("DB_NAME", "contacts"),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("AUTH_JWT_SECRET", "change-me"),
			JWTExpiration:  getEnvDuration("AUTH_JWT_EXPIRATION", time.Hour),
			SessionExpTime: getEnvDuration("AUTH_SESSION_EXPIRATION", time.Hour),
			InternalAPIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		Rabbit: RabbitConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Birthday: BirthdayConfig{
			UpcomingDays:     getEnvInt("UPCOMING_BIRTHDAYS_PERIOD_DAYS", 7),
			MoveFeb29ToFeb28: getEnvBool("MOVE_FEB29_TO_FEB28", true),
		},
	}
}

// GetDSN builds the MySQL data source name. parseTime makes the driver
// return DATE and DATETIME columns as time.Time.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvList(key, fallback string) []string {
	val := os.Getenv(key)
	if val == "" {
		val = fallback
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, strings.ToLower(trimmed))
		}
	}
	return out
}
