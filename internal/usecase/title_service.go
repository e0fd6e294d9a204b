package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/reign"
	"github.com/ringbookhq/ringbook/internal/domain/title"
	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
	"github.com/ringbookhq/ringbook/internal/platform/cache"
)

const (
	titleListCacheKey       = "titles:list"
	titleListCachePrefix    = "titles:"
	titleShowCacheKeyPrefix = "titles:show:"
	titleUnassignedCacheKey = "titles:unassigned"
)

type CreateBeltInput struct {
	Name     string
	Type     string
	Division string
	Gender   string
	ShowID   int64
}

// TitleWithHolders is the list projection the roster screens render: a
// belt plus whoever currently holds it. DaysHeld is nil for vacant
// titles.
type TitleWithHolders struct {
	Title          title.Title
	CurrentHolders []HolderInfo
	DaysHeld       *int
}

// TitleService handles belt creation and the holder-joined list
// queries. List results are cached briefly; any belt or reign mutation
// goes through paths that invalidate the cache.
type TitleService struct {
	titleRepo    title.Repository
	wrestlerRepo wrestler.Repository
	reignRepo    reign.Repository
	cache        *cache.Store
	logger       *slog.Logger
	now          func() time.Time
}

func NewTitleService(
	titleRepo title.Repository,
	wrestlerRepo wrestler.Repository,
	reignRepo reign.Repository,
	store *cache.Store,
	logger *slog.Logger,
) *TitleService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TitleService{
		titleRepo:    titleRepo,
		wrestlerRepo: wrestlerRepo,
		reignRepo:    reignRepo,
		cache:        store,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateBelt registers a new championship. The prestige tier is
// derived from the division here and never edited afterwards.
func (s *TitleService) CreateBelt(ctx context.Context, input CreateBeltInput) (title.Title, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TitleService.CreateBelt")
	defer span.End()

	division := strings.TrimSpace(input.Division)
	item := title.Title{
		Name:          strings.TrimSpace(input.Name),
		Type:          title.TitleType(strings.TrimSpace(input.Type)),
		Division:      division,
		PrestigeTier:  title.PrestigeTierForDivision(division),
		Gender:        title.GenderRestriction(strings.TrimSpace(input.Gender)),
		ShowID:        input.ShowID,
		IsActive:      true,
		IsUserCreated: true,
	}
	if err := item.Validate(); err != nil {
		return title.Title{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.titleRepo.Create(ctx, item)
	if err != nil {
		return title.Title{}, fmt.Errorf("create title: %w", err)
	}

	s.invalidateListCache(ctx)
	s.logger.InfoContext(ctx, "title created",
		"title_id", created.ID,
		"name", created.Name,
		"prestige_tier", created.PrestigeTier,
	)

	return created, nil
}

// ListTitles returns every active title with its current holder.
func (s *TitleService) ListTitles(ctx context.Context) ([]TitleWithHolders, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TitleService.ListTitles")
	defer span.End()

	return s.cachedTitleList(ctx, titleListCacheKey, s.titleRepo.List)
}

// TitlesForShow returns the titles defended on a specific show.
func (s *TitleService) TitlesForShow(ctx context.Context, showID int64) ([]TitleWithHolders, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TitleService.TitlesForShow")
	defer span.End()

	if showID <= 0 {
		return nil, fmt.Errorf("%w: show_id is required", ErrInvalidInput)
	}

	key := titleShowCacheKeyPrefix + strconv.FormatInt(showID, 10)
	return s.cachedTitleList(ctx, key, func(ctx context.Context) ([]title.Title, error) {
		return s.titleRepo.ListByShow(ctx, showID)
	})
}

// UnassignedTitles returns cross-brand titles not tied to any show.
func (s *TitleService) UnassignedTitles(ctx context.Context) ([]TitleWithHolders, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TitleService.UnassignedTitles")
	defer span.End()

	return s.cachedTitleList(ctx, titleUnassignedCacheKey, s.titleRepo.ListUnassigned)
}

// InvalidateHolderCaches drops the cached holder-joined lists. The
// championship command paths call this after any reign mutation.
func (s *TitleService) InvalidateHolderCaches(ctx context.Context) {
	s.invalidateListCache(ctx)
}

func (s *TitleService) cachedTitleList(
	ctx context.Context,
	key string,
	load func(context.Context) ([]title.Title, error),
) ([]TitleWithHolders, error) {
	if s.cache == nil {
		return s.buildTitleList(ctx, load)
	}

	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildTitleList(ctx, load)
	})
	if err != nil {
		return nil, err
	}

	items, ok := value.([]TitleWithHolders)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T", value)
	}

	return items, nil
}

func (s *TitleService) buildTitleList(
	ctx context.Context,
	load func(context.Context) ([]title.Title, error),
) ([]TitleWithHolders, error) {
	belts, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}

	now := s.now().UTC()
	out := make([]TitleWithHolders, 0, len(belts))
	for _, belt := range belts {
		if !belt.IsActive {
			continue
		}

		open, exists, err := s.reignRepo.GetOpenByTitle(ctx, belt.ID)
		if err != nil {
			return nil, fmt.Errorf("get open reign for title=%d: %w", belt.ID, err)
		}

		item := TitleWithHolders{Title: belt, CurrentHolders: []HolderInfo{}}
		if exists {
			champion, found, err := s.wrestlerRepo.GetByID(ctx, open.WrestlerID)
			if err != nil {
				return nil, fmt.Errorf("get champion by id: %w", err)
			}
			if !found {
				return nil, fmt.Errorf("%w: wrestler=%d referenced by open reign", ErrNotFound, open.WrestlerID)
			}

			days := open.DaysHeld(now)
			item.CurrentHolders = []HolderInfo{{
				Reign:          open,
				WrestlerName:   champion.Name,
				WrestlerGender: champion.Gender,
				DaysHeld:       days,
			}}
			item.DaysHeld = &days
		}

		out = append(out, item)
	}

	return out, nil
}

func (s *TitleService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, titleListCachePrefix)
}
