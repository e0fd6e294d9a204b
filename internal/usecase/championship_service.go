package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/reign"
	"github.com/ringbookhq/ringbook/internal/domain/title"
	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

// AssignTitleInput carries everything needed to crown a new champion.
type AssignTitleInput struct {
	TitleID       int64
	WrestlerID    int64
	EventName     string
	EventLocation string
	ChangeMethod  reign.ChangeMethod
}

// VacateTitleInput closes a title's open reign without a successor.
type VacateTitleInput struct {
	TitleID       int64
	EventName     string
	EventLocation string
	ChangeMethod  reign.ChangeMethod
}

// HolderInfo pairs an open reign with the champion's display details.
type HolderInfo struct {
	Reign          reign.Reign
	WrestlerName   string
	WrestlerGender wrestler.Gender
	DaysHeld       int
}

// HeldTitle pairs a title with the wrestler's open reign on it.
type HeldTitle struct {
	Title    title.Title
	Reign    reign.Reign
	DaysHeld int
}

// ChampionshipService is the title holder ledger's command facade. It
// owns validation and the reign lifecycle; the reign repository owns
// atomicity of the close-then-insert pair.
type ChampionshipService struct {
	titleRepo    title.Repository
	wrestlerRepo wrestler.Repository
	reignRepo    reign.Repository
	logger       *slog.Logger
	now          func() time.Time
}

func NewChampionshipService(
	titleRepo title.Repository,
	wrestlerRepo wrestler.Repository,
	reignRepo reign.Repository,
	logger *slog.Logger,
) *ChampionshipService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ChampionshipService{
		titleRepo:    titleRepo,
		wrestlerRepo: wrestlerRepo,
		reignRepo:    reignRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// AssignTitle ends the current reign (if any) and starts a new one for
// the given wrestler. Re-assigning the sitting champion is allowed and
// simply opens their next reign.
func (s *ChampionshipService) AssignTitle(ctx context.Context, input AssignTitleInput) (reign.Reign, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.AssignTitle")
	defer span.End()

	if input.TitleID <= 0 || input.WrestlerID <= 0 {
		return reign.Reign{}, fmt.Errorf("%w: title_id and wrestler_id are required", ErrInvalidInput)
	}
	if _, err := reign.ParseChangeMethod(string(input.ChangeMethod)); err != nil {
		return reign.Reign{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	belt, err := s.getTitle(ctx, input.TitleID)
	if err != nil {
		return reign.Reign{}, err
	}

	contender, exists, err := s.wrestlerRepo.GetByID(ctx, input.WrestlerID)
	if err != nil {
		return reign.Reign{}, fmt.Errorf("get wrestler by id: %w", err)
	}
	if !exists {
		return reign.Reign{}, fmt.Errorf("%w: wrestler=%d", ErrNotFound, input.WrestlerID)
	}

	if !belt.Gender.Accepts(contender.Gender) {
		return reign.Reign{}, fmt.Errorf(
			"%w: title %q is restricted to %s wrestlers",
			ErrInvalidInput, belt.Name, belt.Gender,
		)
	}

	started, err := s.reignRepo.Start(ctx, reign.Reign{
		TitleID:       input.TitleID,
		WrestlerID:    input.WrestlerID,
		HeldSince:     s.now().UTC(),
		EventName:     strings.TrimSpace(input.EventName),
		EventLocation: strings.TrimSpace(input.EventLocation),
		ChangeMethod:  input.ChangeMethod,
	})
	if err != nil {
		return reign.Reign{}, fmt.Errorf("start reign: %w", err)
	}

	s.logger.InfoContext(ctx, "title assigned",
		"title_id", input.TitleID,
		"wrestler_id", input.WrestlerID,
		"change_method", input.ChangeMethod,
	)

	return started, nil
}

// VacateTitle closes the open reign and leaves the title vacant.
// Vacating an already-vacant title is a no-op returning false.
func (s *ChampionshipService) VacateTitle(ctx context.Context, input VacateTitleInput) (reign.Reign, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.VacateTitle")
	defer span.End()

	if input.TitleID <= 0 {
		return reign.Reign{}, false, fmt.Errorf("%w: title_id is required", ErrInvalidInput)
	}
	if _, err := reign.ParseChangeMethod(string(input.ChangeMethod)); err != nil {
		return reign.Reign{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.getTitle(ctx, input.TitleID); err != nil {
		return reign.Reign{}, false, err
	}

	closed, changed, err := s.reignRepo.End(
		ctx,
		input.TitleID,
		s.now().UTC(),
		strings.TrimSpace(input.EventName),
		strings.TrimSpace(input.EventLocation),
		input.ChangeMethod,
	)
	if err != nil {
		return reign.Reign{}, false, fmt.Errorf("end reign: %w", err)
	}
	if !changed {
		return reign.Reign{}, false, nil
	}

	s.logger.InfoContext(ctx, "title vacated",
		"title_id", input.TitleID,
		"wrestler_id", closed.WrestlerID,
		"change_method", input.ChangeMethod,
	)

	return closed, true, nil
}

// CurrentHolders returns zero or one holders today; the slice shape
// leaves room for co-champions such as tag teams.
func (s *ChampionshipService) CurrentHolders(ctx context.Context, titleID int64) ([]HolderInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.CurrentHolders")
	defer span.End()

	if _, err := s.getTitle(ctx, titleID); err != nil {
		return nil, err
	}

	open, exists, err := s.reignRepo.GetOpenByTitle(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("get open reign: %w", err)
	}
	if !exists {
		return []HolderInfo{}, nil
	}

	champion, exists, err := s.wrestlerRepo.GetByID(ctx, open.WrestlerID)
	if err != nil {
		return nil, fmt.Errorf("get champion by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: wrestler=%d referenced by open reign", ErrNotFound, open.WrestlerID)
	}

	return []HolderInfo{{
		Reign:          open,
		WrestlerName:   champion.Name,
		WrestlerGender: champion.Gender,
		DaysHeld:       open.DaysHeld(s.now().UTC()),
	}}, nil
}

// History returns the full ledger for a title, oldest reign first.
func (s *ChampionshipService) History(ctx context.Context, titleID int64) ([]reign.Reign, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.History")
	defer span.End()

	if _, err := s.getTitle(ctx, titleID); err != nil {
		return nil, err
	}

	items, err := s.reignRepo.ListByTitle(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("list reigns by title: %w", err)
	}

	return items, nil
}

// CurrentTitlesForWrestler lists every belt the wrestler holds today.
func (s *ChampionshipService) CurrentTitlesForWrestler(ctx context.Context, wrestlerID int64) ([]HeldTitle, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.CurrentTitlesForWrestler")
	defer span.End()

	if _, exists, err := s.wrestlerRepo.GetByID(ctx, wrestlerID); err != nil {
		return nil, fmt.Errorf("get wrestler by id: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: wrestler=%d", ErrNotFound, wrestlerID)
	}

	open, err := s.reignRepo.ListOpenByWrestler(ctx, wrestlerID)
	if err != nil {
		return nil, fmt.Errorf("list open reigns by wrestler: %w", err)
	}
	if len(open) == 0 {
		return []HeldTitle{}, nil
	}

	titleIDs := make([]int64, 0, len(open))
	for _, r := range open {
		titleIDs = append(titleIDs, r.TitleID)
	}

	belts, err := s.titleRepo.GetByIDs(ctx, titleIDs)
	if err != nil {
		return nil, fmt.Errorf("get titles by ids: %w", err)
	}

	beltsByID := make(map[int64]title.Title, len(belts))
	for _, b := range belts {
		beltsByID[b.ID] = b
	}

	now := s.now().UTC()
	out := make([]HeldTitle, 0, len(open))
	for _, r := range open {
		belt, ok := beltsByID[r.TitleID]
		if !ok {
			return nil, fmt.Errorf("%w: title=%d referenced by open reign", ErrNotFound, r.TitleID)
		}
		out = append(out, HeldTitle{
			Title:    belt,
			Reign:    r,
			DaysHeld: r.DaysHeld(now),
		})
	}

	return out, nil
}

// AssignableTitles lists active titles the wrestler could win next:
// gender compatible and not already around their waist.
func (s *ChampionshipService) AssignableTitles(ctx context.Context, wrestlerID int64) ([]title.Title, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChampionshipService.AssignableTitles")
	defer span.End()

	contender, exists, err := s.wrestlerRepo.GetByID(ctx, wrestlerID)
	if err != nil {
		return nil, fmt.Errorf("get wrestler by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: wrestler=%d", ErrNotFound, wrestlerID)
	}

	held, err := s.reignRepo.ListOpenByWrestler(ctx, wrestlerID)
	if err != nil {
		return nil, fmt.Errorf("list open reigns by wrestler: %w", err)
	}
	heldTitleIDs := make(map[int64]struct{}, len(held))
	for _, r := range held {
		heldTitleIDs[r.TitleID] = struct{}{}
	}

	belts, err := s.titleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}

	out := make([]title.Title, 0, len(belts))
	for _, belt := range belts {
		if !belt.IsActive {
			continue
		}
		if !belt.Gender.Accepts(contender.Gender) {
			continue
		}
		if _, holds := heldTitleIDs[belt.ID]; holds {
			continue
		}
		out = append(out, belt)
	}

	return out, nil
}

func (s *ChampionshipService) getTitle(ctx context.Context, titleID int64) (title.Title, error) {
	belt, exists, err := s.titleRepo.GetByID(ctx, titleID)
	if err != nil {
		return title.Title{}, fmt.Errorf("get title by id: %w", err)
	}
	if !exists {
		return title.Title{}, fmt.Errorf("%w: title=%d", ErrNotFound, titleID)
	}

	return belt, nil
}
