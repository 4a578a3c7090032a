package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	JWTSecret       string
	DataDir         string
	UploadsDir      string
	CertificatesDir string
	AssetsDir       string
	CORSOrigin      string
	LogLevel        string
	CleanupHour     int
}

func LoadConfig() *Config {
	// Tenta carregar do .env, mas não falha se não existir (ambiente prod pode usar vars reais)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		DataDir:         getEnv("DATA_DIR", "data"),
		UploadsDir:      getEnv("UPLOADS_DIR", "uploads"),
		CertificatesDir: getEnv("CERTIFICATES_DIR", "certificates"),
		AssetsDir:       getEnv("ASSETS_DIR", "assets"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		CleanupHour:     getEnvInt("CLEANUP_HOUR", 3),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("FATAL: JWT_SECRET is not defined. Set it in your .env file.")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Config: %s not found, using default.", key)
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Config: %s is not a number, using default.", key)
	}
	return fallback
}
