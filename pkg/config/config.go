package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	LLM       LLMConfig
	Chat      ChatConfig
	Redis     RedisConfig
	Knowledge KnowledgeConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level  string
	Format string // json or console
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	UploadDir    string
	AllowOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// LLMConfig lists the delegates tried before the offline engine, in order.
// Providers without credentials are skipped at startup.
type LLMConfig struct {
	Providers []string
	Timeout   time.Duration
	Gemini    OpenAICompatConfig
	Groq      OpenAICompatConfig
	GigaChat  GigaChatConfig
}

// OpenAICompatConfig configures a provider reachable through an
// OpenAI-compatible chat completions endpoint.
type OpenAICompatConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	HistoryWindow int
	MaxTokens     int
	Temperature   float64
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
	HistoryWindow      int
}

type ChatConfig struct {
	HistoryLimit     int
	HistoryPageSize  int
	RateLimitPerHour int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type KnowledgeConfig struct {
	PackDir   string
	CacheFile string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root.
	// Plain environment variables still work without one (Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getSeconds("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getSeconds("SERVER_WRITE_TIMEOUT", 60),
			UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "leafscan"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(getInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
			RefreshExp: time.Duration(getInt("JWT_REFRESH_EXPIRATION_HOURS", 168)) * time.Hour,
		},
		LLM: LLMConfig{
			Providers: getList("LLM_PROVIDERS", []string{"gemini", "groq"}),
			Timeout:   getSeconds("LLM_TIMEOUT", 30),
			Gemini: OpenAICompatConfig{
				APIKey:        getEnv("GEMINI_API_KEY", ""),
				BaseURL:       getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
				Model:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
				HistoryWindow: getInt("GEMINI_HISTORY_WINDOW", 10),
				MaxTokens:     getInt("GEMINI_MAX_TOKENS", 600),
				Temperature:   getFloat("GEMINI_TEMPERATURE", 0.7),
			},
			Groq: OpenAICompatConfig{
				APIKey:        getEnv("GROQ_API_KEY", ""),
				BaseURL:       getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1/"),
				Model:         getEnv("GROQ_MODEL", "llama3-70b-8192"),
				HistoryWindow: getInt("GROQ_HISTORY_WINDOW", 6),
				MaxTokens:     getInt("GROQ_MAX_TOKENS", 600),
				Temperature:   getFloat("GROQ_TEMPERATURE", 0.7),
			},
			GigaChat: GigaChatConfig{
				APIKey:             getEnv("GIGACHAT_API_KEY", ""),
				Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
				Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
				InsecureSkipVerify: getBool("GIGACHAT_INSECURE_SKIP_VERIFY", true),
				HistoryWindow:      getInt("GIGACHAT_HISTORY_WINDOW", 10),
			},
		},
		Chat: ChatConfig{
			HistoryLimit:     max(getInt("CHAT_HISTORY_LIMIT", 10), 0),
			HistoryPageSize:  getPositiveInt("CHAT_HISTORY_PAGE_SIZE", 100),
			RateLimitPerHour: getInt("CHAT_LLM_RATE_LIMIT_PER_HOUR", 30),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "leafscan"),
		},
		Knowledge: KnowledgeConfig{
			PackDir:   getEnv("KNOWLEDGE_PACK_DIR", "knowledge"),
			CacheFile: getEnv("KNOWLEDGE_SEED_CACHE", ".seed_cache.json"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getPositiveInt treats zero and negative values as unset.
func getPositiveInt(key string, defaultValue int) int {
	if v := getInt(key, defaultValue); v > 0 {
		return v
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getSeconds(key string, defaultValue int) time.Duration {
	return time.Duration(getInt(key, defaultValue)) * time.Second
}

// getList splits a comma separated value. "none" yields an empty list.
func getList(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	if strings.EqualFold(raw, "none") {
		return []string{}
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
