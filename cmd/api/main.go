package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "rental_agency/internal/adapters/http_server"
	"rental_agency/internal/adapters/llm"
	"rental_agency/internal/adapters/mcpserver"
	"rental_agency/internal/adapters/observability"
	redisad "rental_agency/internal/adapters/redis"
	"rental_agency/internal/app"
	"rental_agency/internal/domain"
	"rental_agency/internal/search"
	"rental_agency/internal/shared"
	"rental_agency/internal/storage/sqlstore"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	dialect, err := sqlstore.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DB_DRIVER")
	}
	db, err := sqlstore.Open(ctx, dialect, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database open failed")
	}
	defer db.Close()
	if err := sqlstore.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	log.Info().Str("driver", string(dialect)).Msg("database connection ok")

	// search params
	mode, err := search.ParseMode(cfg.SearchParseMode)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid SEARCH_PARSE_MODE")
	}
	parser := search.NewParser(mode, log.Logger)
	parser.OnFailure = func(e *search.ValidationError) {
		for field := range e.Fields {
			observability.ObserveDegrade(mode.String(), field)
		}
	}

	// deps
	repo := sqlstore.New(db)
	q := app.NewSearchService(repo, parser)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, AI results will not be cached")
		} else {
			cache = rc
		}
	}

	var caller domain.ToolCaller
	if cfg.LLMKey != "" {
		client, err := llm.New(cfg.LLMBaseURL, cfg.LLMKey, cfg.LLMModel, cfg.LLMRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize LLM client")
		}
		caller = client
	} else {
		log.Info().Msg("LLM_API_KEY not set, AI search disabled")
	}
	ai := app.NewAIService(caller, parser, cache, cfg.AICacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.Mount("/mcp", mcpserver.Handler(mcpserver.New(q)))
	srv.MountHandlers(&server.Handlers{Search: q, AI: ai})
	observability.Serve(cfg.MetricsAddr, reg)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("mode", mode.String()).Bool("ai", ai.Enabled()).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
