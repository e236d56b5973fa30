package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

const (
	defaultPort                = "3000"
	defaultPublicDir           = "public"
	defaultClusterModel        = "qwen/qwen3-32b"
	defaultClusterModelLabel   = "Qwen3-32B (Groq)"
	defaultAnthropicModel      = "claude-haiku-4-5"
	defaultReasoningEffort     = "none"
	defaultMaxTokens           = 8192
	defaultTranscribeModel     = "whisper-large-v3-turbo"
	defaultTranscribeLanguage  = "en"
	defaultMinClusterResponses = 5
	defaultCacheTTL            = 10 * time.Minute
)

type Config struct {
	Port        string
	PublicDir   string
	FrontendURL string
	LogLevel    string

	Provider        string
	LLMBaseURL      string
	GroqAPIKey      string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	ClusterModel        string
	ClusterModelLabel   string
	ReasoningEffort     string
	MaxTokens           int
	MinClusterResponses int

	TranscribeModel    string
	TranscribeLanguage string

	SupabaseURL     string
	SupabaseAnonKey string

	RedisURL string
	CacheTTL time.Duration
}

// Load reads a .env file when present and then the process environment.
func Load() Config {
	godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	provider := strings.ToLower(envString("LLM_PROVIDER", ProviderGroq))

	cfg := Config{
		Port:        envString("PORT", defaultPort),
		PublicDir:   envString("PUBLIC_DIR", defaultPublicDir),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		LogLevel:    envString("LOG_LEVEL", "info"),

		Provider:        provider,
		LLMBaseURL:      os.Getenv("LLM_BASE_URL"),
		GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		ClusterModel:        envString("CLUSTER_MODEL", defaultModelFor(provider)),
		ClusterModelLabel:   envString("CLUSTER_MODEL_LABEL", defaultClusterModelLabel),
		MaxTokens:           envInt("CLUSTER_MAX_TOKENS", defaultMaxTokens),
		MinClusterResponses: envInt("MIN_CLUSTER_RESPONSES", defaultMinClusterResponses),

		TranscribeModel:    envString("TRANSCRIBE_MODEL", defaultTranscribeModel),
		TranscribeLanguage: envString("TRANSCRIBE_LANGUAGE", defaultTranscribeLanguage),

		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),

		RedisURL: os.Getenv("REDIS_URL"),
		CacheTTL: envDuration("CLUSTER_CACHE_TTL", defaultCacheTTL),
	}

	// Groq's reasoning models accept "none"; other providers reject it.
	cfg.ReasoningEffort = os.Getenv("CLUSTER_REASONING_EFFORT")
	if _, set := os.LookupEnv("CLUSTER_REASONING_EFFORT"); !set && provider == ProviderGroq {
		cfg.ReasoningEffort = defaultReasoningEffort
	}

	return cfg
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultModelFor(provider string) string {
	if provider == ProviderAnthropic {
		return defaultAnthropicModel
	}
	return defaultClusterModel
}

func envString(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func envInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "name", name, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "name", name, "value", v, "default", def)
		return def
	}
	return d
}
