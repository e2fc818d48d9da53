package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"rental_agency/internal/domain"
)

// ImportReport counts the records written by Import.
type ImportReport struct {
	Contacts   int
	Properties int
	Tenancies  int
}

// ImportService loads seed data. Listings are written only here.
type ImportService struct {
	repo     domain.ListingRepository
	workers  int
	validate *validator.Validate
}

func NewImportService(r domain.ListingRepository, workers int) *ImportService {
	if workers <= 0 {
		workers = 4
	}
	return &ImportService{repo: r, workers: workers, validate: validator.New()}
}

// Import validates the whole seed, then writes contacts, properties and
// tenancies in that order so foreign keys resolve. Within a phase writes
// run concurrently; a failed record does not stop the others and every
// failure is returned joined.
func (s *ImportService) Import(ctx context.Context, seed domain.Seed) (ImportReport, error) {
	if err := s.validate.StructCtx(ctx, seed); err != nil {
		return ImportReport{}, fmt.Errorf("invalid seed: %w", err)
	}

	var rep ImportReport
	var errs []error

	n, err := runBounded(ctx, s.workers, seed.Contacts, func(ctx context.Context, c domain.Contact) error {
		if err := s.repo.UpsertContact(ctx, c); err != nil {
			return fmt.Errorf("contact %d: %w", c.ID, err)
		}
		return nil
	})
	rep.Contacts, errs = n, append(errs, err)

	n, err = runBounded(ctx, s.workers, seed.Properties, func(ctx context.Context, l domain.Listing) error {
		if err := s.repo.UpsertListing(ctx, l); err != nil {
			return fmt.Errorf("property %d: %w", l.ID, err)
		}
		return nil
	})
	rep.Properties, errs = n, append(errs, err)

	n, err = runBounded(ctx, s.workers, seed.Tenancies, func(ctx context.Context, t domain.Tenancy) error {
		if err := s.repo.UpsertTenancy(ctx, t); err != nil {
			return fmt.Errorf("tenancy %d: %w", t.ID, err)
		}
		return nil
	})
	rep.Tenancies, errs = n, append(errs, err)

	return rep, errors.Join(errs...)
}

// runBounded calls fn for every item with at most workers in flight and
// returns how many succeeded.
func runBounded[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) (int, error) {
	sem := semaphore.NewWeighted(int64(workers))
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		ok   int
		errs []error
	)

	for _, it := range items {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}

		wg.Add(1)
		go func(it T) {
			defer wg.Done()
			defer sem.Release(1)

			err := fn(ctx, it)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Err(err).Msg("import failed")
				errs = append(errs, err)
				return
			}
			ok++
		}(it)
	}

	wg.Wait()
	return ok, errors.Join(errs...)
}
