package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ringbookhq/ringbook/internal/domain/show"
)

// ShowService handles show CRUD. Deleting shows with an active roster
// is rejected at the storage boundary, so no delete surface exists.
type ShowService struct {
	showRepo show.Repository
	logger   *slog.Logger
}

func NewShowService(showRepo show.Repository, logger *slog.Logger) *ShowService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ShowService{
		showRepo: showRepo,
		logger:   logger,
	}
}

func (s *ShowService) Create(ctx context.Context, name, description string) (show.Show, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShowService.Create")
	defer span.End()

	item := show.Show{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := item.Validate(); err != nil {
		return show.Show{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.showRepo.Create(ctx, item)
	if err != nil {
		return show.Show{}, fmt.Errorf("create show: %w", err)
	}

	s.logger.InfoContext(ctx, "show created", "show_id", created.ID, "name", created.Name)

	return created, nil
}

func (s *ShowService) List(ctx context.Context) ([]show.Show, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShowService.List")
	defer span.End()

	items, err := s.showRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	return items, nil
}

func (s *ShowService) Get(ctx context.Context, showID int64) (show.Show, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShowService.Get")
	defer span.End()

	item, exists, err := s.showRepo.GetByID(ctx, showID)
	if err != nil {
		return show.Show{}, fmt.Errorf("get show by id: %w", err)
	}
	if !exists {
		return show.Show{}, fmt.Errorf("%w: show=%d", ErrNotFound, showID)
	}

	return item, nil
}
