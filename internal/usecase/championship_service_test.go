package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/reign"
	"github.com/ringbookhq/ringbook/internal/domain/title"
	"github.com/ringbookhq/ringbook/internal/infrastructure/repository/memory"
)

const (
	seedTitleWorldHeavyweight int64 = 1
	seedTitleWomensWorld      int64 = 3
	seedTitleSpeed            int64 = 12

	seedWrestlerRock      int64 = 1
	seedWrestlerAustin    int64 = 2
	seedWrestlerBecky     int64 = 3
	seedWrestlerCharlotte int64 = 4
)

func newChampionshipFixture(t *testing.T) (*ChampionshipService, *memory.ReignRepository) {
	t.Helper()

	titleRepo := memory.NewTitleRepository(memory.SeedTitles())
	wrestlerRepo := memory.NewWrestlerRepository(memory.SeedWrestlers())
	reignRepo := memory.NewReignRepository(nil, titleRepo)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewChampionshipService(titleRepo, wrestlerRepo, reignRepo, logger)

	return service, reignRepo
}

func TestChampionshipService_AssignTitle_OpensReign(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	now := time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	started, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:       seedTitleWorldHeavyweight,
		WrestlerID:    seedWrestlerRock,
		EventName:     "WrestleMania 42",
		EventLocation: "Las Vegas, NV",
		ChangeMethod:  reign.MethodWon,
	})
	if err != nil {
		t.Fatalf("assign title: %v", err)
	}
	if !started.Open() {
		t.Fatalf("expected open reign")
	}
	if !started.HeldSince.Equal(now) {
		t.Fatalf("unexpected held since: %s", started.HeldSince)
	}

	holders, err := service.CurrentHolders(t.Context(), seedTitleWorldHeavyweight)
	if err != nil {
		t.Fatalf("current holders: %v", err)
	}
	if len(holders) != 1 {
		t.Fatalf("expected one holder, got %d", len(holders))
	}
	if holders[0].WrestlerName != "The Rock" {
		t.Fatalf("unexpected holder: %s", holders[0].WrestlerName)
	}
}

func TestChampionshipService_AssignTitle_ClosesPreviousReign(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	first := time.Date(2026, 1, 5, 21, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return first }
	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("first assignment: %v", err)
	}

	second := time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return second }
	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerAustin,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("second assignment: %v", err)
	}

	history, err := service.History(t.Context(), seedTitleWorldHeavyweight)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected two ledger entries, got %d", len(history))
	}
	if history[0].WrestlerID != seedWrestlerRock || history[0].Open() {
		t.Fatalf("expected first reign closed for wrestler %d, got %+v", seedWrestlerRock, history[0])
	}
	if !history[0].HeldUntil.Equal(second) {
		t.Fatalf("previous reign should close at the successor's start, got %s", history[0].HeldUntil)
	}
	if history[1].WrestlerID != seedWrestlerAustin || !history[1].Open() {
		t.Fatalf("expected open reign for wrestler %d, got %+v", seedWrestlerAustin, history[1])
	}
}

func TestChampionshipService_AssignTitle_SameWrestlerStartsNewReign(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	first := time.Date(2026, 1, 5, 21, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return first }
	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("first assignment: %v", err)
	}

	second := time.Date(2026, 2, 1, 21, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return second }
	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodAwarded,
	}); err != nil {
		t.Fatalf("second assignment: %v", err)
	}

	history, err := service.History(t.Context(), seedTitleWorldHeavyweight)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("re-assigning the sitting champion should open a second reign, got %d entries", len(history))
	}
	if history[0].Open() {
		t.Fatalf("first reign should be closed")
	}
}

func TestChampionshipService_AssignTitle_GenderRestriction(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	_, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerBecky,
		ChangeMethod: reign.MethodWon,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for restricted title, got %v", err)
	}

	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleSpeed,
		WrestlerID:   seedWrestlerBecky,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("mixed title should accept any wrestler: %v", err)
	}
}

func TestChampionshipService_AssignTitle_Validation(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      0,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodWon,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing title id, got %v", err)
	}

	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: "Pinfall",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown change method, got %v", err)
	}

	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      999,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodWon,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown title, got %v", err)
	}

	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   999,
		ChangeMethod: reign.MethodWon,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown wrestler, got %v", err)
	}
}

func TestChampionshipService_VacateTitle(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	assigned := time.Date(2026, 1, 5, 21, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return assigned }
	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWomensWorld,
		WrestlerID:   seedWrestlerCharlotte,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("assign title: %v", err)
	}

	vacated := time.Date(2026, 2, 14, 20, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return vacated }

	closed, changed, err := service.VacateTitle(t.Context(), VacateTitleInput{
		TitleID:       seedTitleWomensWorld,
		EventName:     "RAW",
		EventLocation: "Chicago, IL",
		ChangeMethod:  reign.MethodVacated,
	})
	if err != nil {
		t.Fatalf("vacate title: %v", err)
	}
	if !changed {
		t.Fatalf("expected vacate to close the open reign")
	}
	if closed.Open() {
		t.Fatalf("expected closed reign")
	}
	if !closed.HeldUntil.Equal(vacated) {
		t.Fatalf("unexpected held until: %s", closed.HeldUntil)
	}
	if closed.EventName != "RAW" || closed.ChangeMethod != reign.MethodVacated {
		t.Fatalf("expected vacate event stamped on closed reign, got %+v", closed)
	}

	holders, err := service.CurrentHolders(t.Context(), seedTitleWomensWorld)
	if err != nil {
		t.Fatalf("current holders: %v", err)
	}
	if len(holders) != 0 {
		t.Fatalf("expected vacant title, got %d holders", len(holders))
	}

	_, changed, err = service.VacateTitle(t.Context(), VacateTitleInput{
		TitleID:      seedTitleWomensWorld,
		ChangeMethod: reign.MethodVacated,
	})
	if err != nil {
		t.Fatalf("second vacate: %v", err)
	}
	if changed {
		t.Fatalf("vacating a vacant title must be a no-op")
	}
}

func TestChampionshipService_VacateTitle_UnknownTitle(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	_, _, err := service.VacateTitle(t.Context(), VacateTitleInput{
		TitleID:      999,
		ChangeMethod: reign.MethodVacated,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChampionshipService_CurrentHolders_DaysHeldFloor(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	assigned := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return assigned }
	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("assign title: %v", err)
	}

	// 2 days and 23 hours later still counts as 2 whole days.
	service.now = func() time.Time { return assigned.Add(71 * time.Hour) }
	holders, err := service.CurrentHolders(t.Context(), seedTitleWorldHeavyweight)
	if err != nil {
		t.Fatalf("current holders: %v", err)
	}
	if holders[0].DaysHeld != 2 {
		t.Fatalf("expected 2 days held, got %d", holders[0].DaysHeld)
	}
}

func TestChampionshipService_CurrentTitlesForWrestler(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	now := time.Date(2026, 3, 2, 21, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	for _, titleID := range []int64{seedTitleWorldHeavyweight, seedTitleSpeed} {
		if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
			TitleID:      titleID,
			WrestlerID:   seedWrestlerRock,
			ChangeMethod: reign.MethodWon,
		}); err != nil {
			t.Fatalf("assign title %d: %v", titleID, err)
		}
	}

	held, err := service.CurrentTitlesForWrestler(t.Context(), seedWrestlerRock)
	if err != nil {
		t.Fatalf("current titles for wrestler: %v", err)
	}
	if len(held) != 2 {
		t.Fatalf("expected two held titles, got %d", len(held))
	}

	none, err := service.CurrentTitlesForWrestler(t.Context(), seedWrestlerAustin)
	if err != nil {
		t.Fatalf("current titles for wrestler: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no held titles, got %d", len(none))
	}
}

func TestChampionshipService_AssignableTitles(t *testing.T) {
	service, _ := newChampionshipFixture(t)

	if _, err := service.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("assign title: %v", err)
	}

	assignable, err := service.AssignableTitles(t.Context(), seedWrestlerRock)
	if err != nil {
		t.Fatalf("assignable titles: %v", err)
	}

	for _, belt := range assignable {
		if belt.ID == seedTitleWorldHeavyweight {
			t.Fatalf("held title must not be assignable")
		}
		if belt.Gender == title.RestrictionFemale {
			t.Fatalf("female-restricted title %q offered to a male wrestler", belt.Name)
		}
	}

	// Male singles and tag belts plus the mixed Speed title, minus the
	// one already held.
	if len(assignable) != 6 {
		t.Fatalf("unexpected assignable count: %d", len(assignable))
	}
}
