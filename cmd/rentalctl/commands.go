package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rental_agency/internal/adapters/observability"
	"rental_agency/internal/app"
	"rental_agency/internal/domain"
	"rental_agency/internal/search"
	"rental_agency/internal/shared"
	"rental_agency/internal/storage/sqlstore"
)

var cfg shared.Config

var rootCmd = &cobra.Command{
	Use:          "rentalctl",
	Short:        "Manage the rental agency database",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = shared.Load()
		// stdout carries command output
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		observability.SetLevel(cfg.LogLevel)
	},
}

func init() {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Import contacts, properties and tenancies from a JSON file",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
	seedCmd.Flags().StringP("file", "f", "", "Seed file (JSON with contacts, properties, tenancies)")
	_ = seedCmd.MarkFlagRequired("file")
	seedCmd.Flags().Int("workers", 0, "Concurrent writes per phase (default: $SEED_WORKERS)")

	searchCmd := &cobra.Command{
		Use:     "search [name=value ...]",
		Short:   "Run a property search with query-string style filters",
		Example: "  rentalctl search bedrooms=2 laundry=in-building neighborhood='Staten Island'",
		RunE:    runSearch,
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the search parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), search.JSONSchema())
		},
	}

	rootCmd.AddCommand(migrateCmd, seedCmd, searchCmd, schemaCmd)
}

// openDB opens the configured database and applies migrations.
func openDB(cmd *cobra.Command) (*sqlx.DB, error) {
	dialect, err := sqlstore.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, err
	}
	db, err := sqlstore.Open(cmd.Context(), dialect, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if err := sqlstore.Migrate(cmd.Context(), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("driver", cfg.DBDriver).Msg("migrations applied")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = cfg.SeedWorkers
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var seed domain.Seed
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	db, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	rep, err := app.NewImportService(sqlstore.New(db), workers).Import(cmd.Context(), seed)
	log.Info().
		Int("contacts", rep.Contacts).
		Int("properties", rep.Properties).
		Int("tenancies", rep.Tenancies).
		Msg("seed import completed")
	return err
}

func runSearch(cmd *cobra.Command, args []string) error {
	raw := search.Raw{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("expected name=value, got %q", a)
		}
		raw[k] = v
	}

	mode, err := search.ParseMode(cfg.SearchParseMode)
	if err != nil {
		return err
	}

	db, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := app.NewSearchService(sqlstore.New(db), search.NewParser(mode, log.Logger))
	p, rows, err := svc.Search(cmd.Context(), raw)
	if err != nil {
		return err
	}
	log.Info().Str("filters", search.Serialize(p).Encode()).Int("results", len(rows)).Msg("search")
	return printJSON(cmd.OutOrStdout(), app.ToCards(rows))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
