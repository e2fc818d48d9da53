package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "DB_DSN", "SEARCH_PARSE_MODE", "AI_CACHE_TTL_SECONDS", "SEED_WORKERS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.DBDriver != "sqlite" || c.DBDSN != defaultSQLiteDSN {
		t.Fatalf("unexpected db defaults: %s %s", c.DBDriver, c.DBDSN)
	}
	if c.SearchParseMode != "strict" || c.AICacheTTL != time.Hour || c.SeedWorkers != 8 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_DSN", "")
	t.Setenv("SEARCH_PARSE_MODE", "lenient")
	t.Setenv("SEED_WORKERS", "not-a-number")
	t.Setenv("REDIS_DB", "3")

	c := Load()
	if c.DBDriver != "mysql" || c.DBDSN == defaultSQLiteDSN || c.DBDSN == "" {
		t.Fatalf("expected mysql default dsn, got %q", c.DBDSN)
	}
	if c.SearchParseMode != "lenient" || c.RedisDB != 3 || c.SeedWorkers != 8 {
		t.Fatalf("unexpected config: %+v", c)
	}
}
