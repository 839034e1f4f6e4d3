package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Analysis AnalysisConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	TopP            float32
	TopK            float32
}

type AnalysisConfig struct {
	MinContentLength int
	MaxContentLength int
	// RateLimitPerHour is a declared budget only; nothing enforces it yet.
	RateLimitPerHour int
}

type UploadConfig struct {
	UploadPath        string
	MaxFileSize       int64
	AllowedExtensions []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.3),
			MaxOutputTokens: int32(getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 2048)),
			TopP:            getEnvAsFloat32("GEMINI_TOP_P", 0.8),
			TopK:            getEnvAsFloat32("GEMINI_TOP_K", 40),
		},
		Analysis: AnalysisConfig{
			MinContentLength: getEnvAsInt("MIN_CONTENT_LENGTH", 50),
			MaxContentLength: getEnvAsInt("MAX_CONTENT_LENGTH", 50000),
			RateLimitPerHour: getEnvAsInt("RATE_LIMIT_PER_HOUR", 10),
		},
		Upload: UploadConfig{
			UploadPath:        getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize:       getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			AllowedExtensions: splitAndTrim(getEnv("ALLOWED_EXTENSIONS", "pdf,txt")),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, strings.ToLower(trimmed))
		}
	}
	return out
}
