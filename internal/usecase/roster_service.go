package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/roster"
	"github.com/ringbookhq/ringbook/internal/domain/show"
	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

// RosterService enforces the exclusive show assignment: a wrestler has
// one home show at a time, and assigning them elsewhere transfers them.
type RosterService struct {
	showRepo     show.Repository
	wrestlerRepo wrestler.Repository
	rosterRepo   roster.Repository
	logger       *slog.Logger
	now          func() time.Time
}

func NewRosterService(
	showRepo show.Repository,
	wrestlerRepo wrestler.Repository,
	rosterRepo roster.Repository,
	logger *slog.Logger,
) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}

	return &RosterService{
		showRepo:     showRepo,
		wrestlerRepo: wrestlerRepo,
		rosterRepo:   rosterRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// AssignToShow puts the wrestler on the show's active roster. If they
// are already there the call is idempotent; if they are active on a
// different show they are silently transferred off it.
func (s *RosterService) AssignToShow(ctx context.Context, showID, wrestlerID int64) (roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AssignToShow")
	defer span.End()

	if showID <= 0 || wrestlerID <= 0 {
		return roster.Entry{}, fmt.Errorf("%w: show_id and wrestler_id are required", ErrInvalidInput)
	}

	if err := s.validateShow(ctx, showID); err != nil {
		return roster.Entry{}, err
	}
	if err := s.validateWrestler(ctx, wrestlerID); err != nil {
		return roster.Entry{}, err
	}

	current, exists, err := s.rosterRepo.GetActiveByWrestler(ctx, wrestlerID)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("get active roster entry: %w", err)
	}
	if exists && current.ShowID == showID {
		return current, nil
	}

	entry, err := s.rosterRepo.Transfer(ctx, showID, wrestlerID, s.now().UTC())
	if err != nil {
		return roster.Entry{}, fmt.Errorf("transfer roster entry: %w", err)
	}

	if exists {
		s.logger.InfoContext(ctx, "wrestler transferred between shows",
			"wrestler_id", wrestlerID,
			"from_show_id", current.ShowID,
			"to_show_id", showID,
		)
	} else {
		s.logger.InfoContext(ctx, "wrestler assigned to show",
			"wrestler_id", wrestlerID,
			"show_id", showID,
		)
	}

	return entry, nil
}

// RemoveFromShow takes the wrestler off the show's active roster.
// Removing someone who is not on it returns false, not an error.
func (s *RosterService) RemoveFromShow(ctx context.Context, showID, wrestlerID int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.RemoveFromShow")
	defer span.End()

	if showID <= 0 || wrestlerID <= 0 {
		return false, fmt.Errorf("%w: show_id and wrestler_id are required", ErrInvalidInput)
	}

	if err := s.validateShow(ctx, showID); err != nil {
		return false, err
	}
	if err := s.validateWrestler(ctx, wrestlerID); err != nil {
		return false, err
	}

	changed, err := s.rosterRepo.Deactivate(ctx, showID, wrestlerID)
	if err != nil {
		return false, fmt.Errorf("deactivate roster entry: %w", err)
	}
	if changed {
		s.logger.InfoContext(ctx, "wrestler removed from show",
			"wrestler_id", wrestlerID,
			"show_id", showID,
		)
	}

	return changed, nil
}

// RosterForShow lists the wrestlers active on a show, name ascending.
func (s *RosterService) RosterForShow(ctx context.Context, showID int64) ([]wrestler.Wrestler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.RosterForShow")
	defer span.End()

	if err := s.validateShow(ctx, showID); err != nil {
		return nil, err
	}

	entries, err := s.rosterRepo.ListActiveByShow(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("list active roster entries: %w", err)
	}
	if len(entries) == 0 {
		return []wrestler.Wrestler{}, nil
	}

	wrestlerIDs := make([]int64, 0, len(entries))
	for _, entry := range entries {
		wrestlerIDs = append(wrestlerIDs, entry.WrestlerID)
	}

	items, err := s.wrestlerRepo.GetByIDs(ctx, wrestlerIDs)
	if err != nil {
		return nil, fmt.Errorf("get wrestlers by ids: %w", err)
	}

	return items, nil
}

// ShowsForWrestler returns the wrestler's home show. The slice has at
// most one element while assignments stay exclusive; the list shape
// keeps the API stable if a multi-show mode ever lands.
func (s *RosterService) ShowsForWrestler(ctx context.Context, wrestlerID int64) ([]show.Show, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ShowsForWrestler")
	defer span.End()

	if err := s.validateWrestler(ctx, wrestlerID); err != nil {
		return nil, err
	}

	entry, exists, err := s.rosterRepo.GetActiveByWrestler(ctx, wrestlerID)
	if err != nil {
		return nil, fmt.Errorf("get active roster entry: %w", err)
	}
	if !exists {
		return []show.Show{}, nil
	}

	home, exists, err := s.showRepo.GetByID(ctx, entry.ShowID)
	if err != nil {
		return nil, fmt.Errorf("get show by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: show=%d referenced by active roster entry", ErrNotFound, entry.ShowID)
	}

	return []show.Show{home}, nil
}

func (s *RosterService) validateShow(ctx context.Context, showID int64) error {
	_, exists, err := s.showRepo.GetByID(ctx, showID)
	if err != nil {
		return fmt.Errorf("get show by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: show=%d", ErrNotFound, showID)
	}

	return nil
}

func (s *RosterService) validateWrestler(ctx context.Context, wrestlerID int64) error {
	_, exists, err := s.wrestlerRepo.GetByID(ctx, wrestlerID)
	if err != nil {
		return fmt.Errorf("get wrestler by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: wrestler=%d", ErrNotFound, wrestlerID)
	}

	return nil
}
