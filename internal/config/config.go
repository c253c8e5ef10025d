package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	LLM         LLMConfig
	Blob        BlobConfig
	Cache       CacheConfig
}

type LLMConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	RPS         float64
	Burst       int
}

type BlobConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type CacheConfig struct {
	BlobMB        int
	ResultEntries int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:        *port,
		Env:         env,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LLM:         loadLLMConfig(),
		Blob:        loadBlobConfig(env),
		Cache: CacheConfig{
			BlobMB:        intFromEnv("BLOB_CACHE_MB", 64),
			ResultEntries: intFromEnv("RESULT_CACHE_ENTRIES", 1024),
		},
	}, nil
}

// Validate reports what a production boot is missing. Dev boots are
// allowed to degrade: no DATABASE_URL means in-memory persistence, no
// MinIO credentials mean an in-memory blob store.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return nil
}

func loadLLMConfig() LLMConfig {
	return LLMConfig{
		APIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:       firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-2.0-flash"),
		Temperature: floatFromEnv("LLM_TEMPERATURE", 0.2),
		RPS:         float64(floatFromEnv("LLM_RPS", 0)),
		Burst:       intFromEnv("LLM_BURST", 1),
	}
}

func loadBlobConfig(env string) BlobConfig {
	return BlobConfig{
		Endpoint:  resolveBlobEndpoint(env),
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_BUCKET")), "structify-assets"),
		UseSSL:    resolveBlobUseSSL(env),
	}
}

// Local boots default to the compose-network MinIO endpoint; the store
// still stays in-memory until credentials are supplied.
func resolveBlobEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_ENDPOINT")), "minio:9000")
	}
	return strings.TrimSpace(os.Getenv("MINIO_ENDPOINT"))
}

func resolveBlobUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	return boolFromEnv("MINIO_USE_SSL", true)
}

// CanUseS3 reports whether enough of the MinIO config is present to
// reach a real object store.
func (b BlobConfig) CanUseS3() bool {
	return b.Endpoint != "" && b.AccessKey != "" && b.SecretKey != "" && b.Bucket != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func intFromEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func floatFromEnv(key string, def float32) float32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return def
	}
	return float32(v)
}

func boolFromEnv(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
