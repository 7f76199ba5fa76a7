package config

import (
	"os"
	"strconv"
)

// StorageConfig holds the optional S3 archival settings. Archival stays off
// unless both fields are present in the environment.
type StorageConfig struct {
	Region string
	Bucket string
}

// Enabled reports whether S3 archival is configured.
func (s StorageConfig) Enabled() bool {
	return s.Region != "" && s.Bucket != ""
}

type AppConfig struct {
	Port            string
	Environment     string
	LogLevel        string
	UploadDir       string
	MaxUploadSize   int64
	IncludeRawText  bool
	RateLimitPerMin int
	Storage         StorageConfig
}

// GetAppConfig reads the application configuration from the environment.
func GetAppConfig() AppConfig {
	maxUpload, _ := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE", "10485760"), 10, 64)
	rateLimit, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MIN", "30"))

	return AppConfig{
		Port:            getEnv("PORT", "8081"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSize:   maxUpload,
		IncludeRawText:  getEnv("INCLUDE_RAW_TEXT", "false") == "true",
		RateLimitPerMin: rateLimit,
		Storage: StorageConfig{
			Region: getEnv("AWS_REGION", ""),
			Bucket: getEnv("AWS_S3_BUCKET", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
