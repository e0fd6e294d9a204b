package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/reign"
	"github.com/ringbookhq/ringbook/internal/domain/roster"
	"github.com/ringbookhq/ringbook/internal/domain/show"
	"github.com/ringbookhq/ringbook/internal/domain/title"
	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
	"github.com/sourcegraph/conc"
)

// Dashboard is the front-office summary screen: headcounts, belt
// status, and per-show roster depth.
type Dashboard struct {
	WrestlerCount int
	ShowCount     int
	TitleCount    int
	VacantTitles  []title.Title
	LongestReign  *HolderInfo
	RosterDepth   []ShowRosterDepth
}

type ShowRosterDepth struct {
	Show  show.Show
	Count int
}

// DashboardService aggregates read models from the other repositories.
// The three independent scans run concurrently.
type DashboardService struct {
	wrestlerRepo wrestler.Repository
	showRepo     show.Repository
	titleRepo    title.Repository
	reignRepo    reign.Repository
	rosterRepo   roster.Repository
	now          func() time.Time
}

func NewDashboardService(
	wrestlerRepo wrestler.Repository,
	showRepo show.Repository,
	titleRepo title.Repository,
	reignRepo reign.Repository,
	rosterRepo roster.Repository,
) *DashboardService {
	return &DashboardService{
		wrestlerRepo: wrestlerRepo,
		showRepo:     showRepo,
		titleRepo:    titleRepo,
		reignRepo:    reignRepo,
		rosterRepo:   rosterRepo,
		now:          time.Now,
	}
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	var (
		mu        sync.Mutex
		wrestlers []wrestler.Wrestler
		shows     []show.Show
		belts     []title.Title
		firstErr  error
	)
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil && err != nil {
			firstErr = err
		}
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		items, err := s.wrestlerRepo.List(ctx)
		if err != nil {
			record(fmt.Errorf("list wrestlers: %w", err))
			return
		}
		mu.Lock()
		wrestlers = items
		mu.Unlock()
	})
	wg.Go(func() {
		items, err := s.showRepo.List(ctx)
		if err != nil {
			record(fmt.Errorf("list shows: %w", err))
			return
		}
		mu.Lock()
		shows = items
		mu.Unlock()
	})
	wg.Go(func() {
		items, err := s.titleRepo.List(ctx)
		if err != nil {
			record(fmt.Errorf("list titles: %w", err))
			return
		}
		mu.Lock()
		belts = items
		mu.Unlock()
	})
	wg.Wait()

	if firstErr != nil {
		return Dashboard{}, firstErr
	}

	out := Dashboard{
		WrestlerCount: len(wrestlers),
		ShowCount:     len(shows),
		TitleCount:    len(belts),
		VacantTitles:  []title.Title{},
		RosterDepth:   make([]ShowRosterDepth, 0, len(shows)),
	}

	wrestlersByID := make(map[int64]wrestler.Wrestler, len(wrestlers))
	for _, w := range wrestlers {
		wrestlersByID[w.ID] = w
	}

	now := s.now().UTC()
	for _, belt := range belts {
		if !belt.IsActive {
			continue
		}

		open, exists, err := s.reignRepo.GetOpenByTitle(ctx, belt.ID)
		if err != nil {
			return Dashboard{}, fmt.Errorf("get open reign for title=%d: %w", belt.ID, err)
		}
		if !exists {
			out.VacantTitles = append(out.VacantTitles, belt)
			continue
		}

		champion, ok := wrestlersByID[open.WrestlerID]
		if !ok {
			continue
		}
		days := open.DaysHeld(now)
		if out.LongestReign == nil || days > out.LongestReign.DaysHeld {
			out.LongestReign = &HolderInfo{
				Reign:          open,
				WrestlerName:   champion.Name,
				WrestlerGender: champion.Gender,
				DaysHeld:       days,
			}
		}
	}

	for _, item := range shows {
		entries, err := s.rosterRepo.ListActiveByShow(ctx, item.ID)
		if err != nil {
			return Dashboard{}, fmt.Errorf("list active roster for show=%d: %w", item.ID, err)
		}
		out.RosterDepth = append(out.RosterDepth, ShowRosterDepth{Show: item, Count: len(entries)})
	}

	return out, nil
}
