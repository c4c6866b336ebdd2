package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// RabbitURL empty disables event publishing.
	RabbitURL string

	MinDaysAdvance    int
	MaxDaysAdvance    int
	MaxStayDays       int
	BookingIDLength   int
	BookingIDAlphabet string
	LockTimeout       time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] no .env file found, using environment")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "campsite_db"),

		RabbitURL: os.Getenv("RABBIT_URL"),

		MinDaysAdvance:    getEnvInt("MIN_DAYS_ADVANCE", 1),
		MaxDaysAdvance:    getEnvInt("MAX_DAYS_ADVANCE", 30),
		MaxStayDays:       getEnvInt("MAX_STAY_DAYS", 3),
		BookingIDLength:   getEnvInt("BOOKING_ID_LENGTH", 8),
		BookingIDAlphabet: getEnv("BOOKING_ID_ALPHABET", ""),
		LockTimeout:       time.Duration(getEnvInt("LOCK_TIMEOUT_MS", 3000)) * time.Millisecond,
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[Config] %s must be an integer, got %q", key, v)
	}
	return n
}
