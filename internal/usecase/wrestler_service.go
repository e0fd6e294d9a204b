package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

type RegisterWrestlerInput struct {
	Name      string
	Gender    string
	RealName  string
	Nickname  string
	Height    string
	Weight    string
	DebutYear int
	Ratings   *wrestler.PowerRatings
	Biography string
}

type UpdateBasicStatsInput struct {
	WrestlerID int64
	Name       string
	Wins       int
	Losses     int
}

// WrestlerService handles talent registration and profile edits.
type WrestlerService struct {
	wrestlerRepo wrestler.Repository
	logger       *slog.Logger
}

func NewWrestlerService(wrestlerRepo wrestler.Repository, logger *slog.Logger) *WrestlerService {
	if logger == nil {
		logger = slog.Default()
	}

	return &WrestlerService{
		wrestlerRepo: wrestlerRepo,
		logger:       logger,
	}
}

func (s *WrestlerService) Register(ctx context.Context, input RegisterWrestlerInput) (wrestler.Wrestler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WrestlerService.Register")
	defer span.End()

	item := wrestler.Wrestler{
		Name:          strings.TrimSpace(input.Name),
		Gender:        wrestler.ParseGender(strings.TrimSpace(input.Gender)),
		RealName:      strings.TrimSpace(input.RealName),
		Nickname:      strings.TrimSpace(input.Nickname),
		Height:        strings.TrimSpace(input.Height),
		Weight:        strings.TrimSpace(input.Weight),
		DebutYear:     input.DebutYear,
		Biography:     strings.TrimSpace(input.Biography),
		IsUserCreated: true,
	}
	if input.Ratings != nil {
		if err := input.Ratings.Validate(); err != nil {
			return wrestler.Wrestler{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		item.Ratings = *input.Ratings
	}
	if err := item.Validate(); err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.wrestlerRepo.Create(ctx, item)
	if err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("create wrestler: %w", err)
	}

	s.logger.InfoContext(ctx, "wrestler registered", "wrestler_id", created.ID, "name", created.Name)

	return created, nil
}

func (s *WrestlerService) List(ctx context.Context) ([]wrestler.Wrestler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WrestlerService.List")
	defer span.End()

	items, err := s.wrestlerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wrestlers: %w", err)
	}

	return items, nil
}

func (s *WrestlerService) Get(ctx context.Context, wrestlerID int64) (wrestler.Wrestler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WrestlerService.Get")
	defer span.End()

	item, exists, err := s.wrestlerRepo.GetByID(ctx, wrestlerID)
	if err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("get wrestler by id: %w", err)
	}
	if !exists {
		return wrestler.Wrestler{}, fmt.Errorf("%w: wrestler=%d", ErrNotFound, wrestlerID)
	}

	return item, nil
}

func (s *WrestlerService) UpdatePowerRatings(ctx context.Context, wrestlerID int64, ratings wrestler.PowerRatings) (wrestler.Wrestler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WrestlerService.UpdatePowerRatings")
	defer span.End()

	if err := ratings.Validate(); err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, err := s.Get(ctx, wrestlerID)
	if err != nil {
		return wrestler.Wrestler{}, err
	}

	item.Ratings = ratings
	if err := s.wrestlerRepo.Update(ctx, item); err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("update wrestler: %w", err)
	}

	return item, nil
}

func (s *WrestlerService) UpdateBasicStats(ctx context.Context, input UpdateBasicStatsInput) (wrestler.Wrestler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WrestlerService.UpdateBasicStats")
	defer span.End()

	item, err := s.Get(ctx, input.WrestlerID)
	if err != nil {
		return wrestler.Wrestler{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	item.Wins = input.Wins
	item.Losses = input.Losses
	if err := item.Validate(); err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.wrestlerRepo.Update(ctx, item); err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("update wrestler: %w", err)
	}

	return item, nil
}

func (s *WrestlerService) UpdateBiography(ctx context.Context, wrestlerID int64, biography string) (wrestler.Wrestler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WrestlerService.UpdateBiography")
	defer span.End()

	item, err := s.Get(ctx, wrestlerID)
	if err != nil {
		return wrestler.Wrestler{}, err
	}

	item.Biography = strings.TrimSpace(biography)
	if err := s.wrestlerRepo.Update(ctx, item); err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("update wrestler: %w", err)
	}

	return item, nil
}
