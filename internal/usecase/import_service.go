package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

// ExternalWrestler is a talent profile fetched from an outside catalog.
type ExternalWrestler struct {
	ExternalID string
	Name       string
	Gender     string
	RealName   string
	Nickname   string
	Height     string
	Weight     string
	DebutYear  int
	Biography  string
}

// RosterImportSource fetches talent profiles from an external catalog.
type RosterImportSource interface {
	FetchRoster(ctx context.Context, promotion string) ([]ExternalWrestler, error)
}

type ImportResult struct {
	Promotion string
	Imported  int
	Skipped   int
	Failed    int
	Failures  []ImportFailure
	Duration  time.Duration
}

type ImportFailure struct {
	Name   string
	Reason string
}

// ImportService pulls an external promotion roster and registers each
// wrestler, optionally placing them on a show. Profiles are processed
// on a bounded worker pool so a large catalog import does not hammer
// the storage layer all at once.
type ImportService struct {
	source       RosterImportSource
	wrestlerRepo wrestler.Repository
	rosterSvc    *RosterService
	logger       *slog.Logger
	workerCount  int
	now          func() time.Time
}

func NewImportService(
	source RosterImportSource,
	wrestlerRepo wrestler.Repository,
	rosterSvc *RosterService,
	logger *slog.Logger,
	workerCount int,
) *ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	if workerCount <= 0 {
		workerCount = 4
	}

	return &ImportService{
		source:       source,
		wrestlerRepo: wrestlerRepo,
		rosterSvc:    rosterSvc,
		logger:       logger,
		workerCount:  workerCount,
		now:          time.Now,
	}
}

// ImportPromotion fetches the named promotion's roster from the source
// and registers every wrestler not already known by name. When showID
// is non-zero each imported wrestler is also assigned to that show.
func (s *ImportService) ImportPromotion(ctx context.Context, promotion string, showID int64) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportPromotion")
	defer span.End()

	if s.source == nil {
		return ImportResult{}, fmt.Errorf("%w: no import source configured", ErrDependencyUnavailable)
	}
	if promotion == "" {
		return ImportResult{}, fmt.Errorf("%w: promotion is required", ErrInvalidInput)
	}

	started := s.now()

	profiles, err := s.source.FetchRoster(ctx, promotion)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetch roster for promotion=%s: %w", promotion, err)
	}

	existing, err := s.wrestlerRepo.List(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("list wrestlers: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, w := range existing {
		known[w.Name] = struct{}{}
	}

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		imported atomic.Int64
		skipped  atomic.Int64
		mu       sync.Mutex
		failures []ImportFailure
	)

	for _, profile := range profiles {
		if _, ok := known[profile.Name]; ok {
			skipped.Add(1)
			continue
		}

		p := profile
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			if err := s.importOne(ctx, p, showID); err != nil {
				mu.Lock()
				failures = append(failures, ImportFailure{Name: p.Name, Reason: err.Error()})
				mu.Unlock()
				return
			}
			imported.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			failures = append(failures, ImportFailure{Name: p.Name, Reason: submitErr.Error()})
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.Slice(failures, func(i, j int) bool { return failures[i].Name < failures[j].Name })

	result := ImportResult{
		Promotion: promotion,
		Imported:  int(imported.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    len(failures),
		Failures:  failures,
		Duration:  s.now().Sub(started),
	}

	s.logger.InfoContext(ctx, "promotion roster import finished",
		"promotion", promotion,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"duration", result.Duration.String(),
	)

	return result, nil
}

func (s *ImportService) importOne(ctx context.Context, profile ExternalWrestler, showID int64) error {
	item := wrestler.Wrestler{
		Name:      profile.Name,
		Gender:    wrestler.ParseGender(profile.Gender),
		RealName:  profile.RealName,
		Nickname:  profile.Nickname,
		Height:    profile.Height,
		Weight:    profile.Weight,
		DebutYear: profile.DebutYear,
		Biography: profile.Biography,
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.wrestlerRepo.Create(ctx, item)
	if err != nil {
		return fmt.Errorf("create wrestler: %w", err)
	}

	if showID > 0 && s.rosterSvc != nil {
		if _, err := s.rosterSvc.AssignToShow(ctx, showID, created.ID); err != nil {
			return fmt.Errorf("assign imported wrestler to show: %w", err)
		}
	}

	return nil
}
