package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	DBDriver string // sqlite|mysql
	DBDSN    string

	RedisAddr  string
	RedisDB    int
	RedisPass  string
	AICacheTTL time.Duration

	LLMBaseURL string
	LLMKey     string
	LLMModel   string
	LLMRPS     int

	SearchParseMode string // strict|lenient
	SeedWorkers     int
}

const defaultSQLiteDSN = "file:rental.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// Load reads the environment, after loading .env when present. Variables
// already set win over .env.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env not loaded")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		DBDriver: env("DB_DRIVER", "sqlite"),
		DBDSN:    os.Getenv("DB_DSN"),

		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  env("REDIS_PASSWORD", ""),
		RedisDB:    atoi("REDIS_DB", 0),
		AICacheTTL: time.Duration(atoi("AI_CACHE_TTL_SECONDS", 3600)) * time.Second,

		LLMBaseURL: env("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMKey:     os.Getenv("LLM_API_KEY"),
		LLMModel:   env("LLM_MODEL", "gpt-4o-mini"),
		LLMRPS:     atoi("LLM_RPS", 2),

		SearchParseMode: env("SEARCH_PARSE_MODE", "strict"),
		SeedWorkers:     atoi("SEED_WORKERS", 8),
	}
	if c.DBDSN == "" {
		switch c.DBDriver {
		case "mysql":
			c.DBDSN = "root:root@tcp(localhost:3306)/rental?parseTime=true&charset=utf8mb4&loc=UTC"
		default:
			c.DBDSN = defaultSQLiteDSN
		}
	}
	if c.LLMKey == "" {
		log.Warn().Msg("LLM_API_KEY is empty, AI search disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
