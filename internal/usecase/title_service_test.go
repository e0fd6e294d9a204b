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
	"github.com/ringbookhq/ringbook/internal/platform/cache"
)

func newTitleFixture(t *testing.T, store *cache.Store) (*TitleService, *ChampionshipService) {
	t.Helper()

	titleRepo := memory.NewTitleRepository(memory.SeedTitles())
	wrestlerRepo := memory.NewWrestlerRepository(memory.SeedWrestlers())
	reignRepo := memory.NewReignRepository(nil, titleRepo)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	titles := NewTitleService(titleRepo, wrestlerRepo, reignRepo, store, logger)
	championships := NewChampionshipService(titleRepo, wrestlerRepo, reignRepo, logger)

	return titles, championships
}

func TestTitleService_CreateBelt(t *testing.T) {
	service, _ := newTitleFixture(t, nil)

	created, err := service.CreateBelt(t.Context(), CreateBeltInput{
		Name:     "Hardcore Championship",
		Type:     "Singles",
		Division: "Hardcore",
		Gender:   "Mixed",
		ShowID:   memory.ShowIDRaw,
	})
	if err != nil {
		t.Fatalf("create belt: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.PrestigeTier != title.TierSpecialty {
		t.Fatalf("unknown division must land in the specialty tier, got %d", created.PrestigeTier)
	}
	if !created.IsUserCreated || !created.IsActive {
		t.Fatalf("expected active user-created belt, got %+v", created)
	}
}

func TestTitleService_CreateBelt_DerivesPrestigeTier(t *testing.T) {
	service, _ := newTitleFixture(t, nil)

	cases := []struct {
		division string
		want     int
	}{
		{"World", title.TierWorld},
		{"Intercontinental", title.TierSecondary},
		{"World Tag Team", title.TierTagTeam},
		{"Backyard", title.TierSpecialty},
	}
	for _, tc := range cases {
		created, err := service.CreateBelt(t.Context(), CreateBeltInput{
			Name:     tc.division + " Test Belt",
			Type:     "Singles",
			Division: tc.division,
			Gender:   "Mixed",
		})
		if err != nil {
			t.Fatalf("create belt for division %q: %v", tc.division, err)
		}
		if created.PrestigeTier != tc.want {
			t.Fatalf("division %q: expected tier %d, got %d", tc.division, tc.want, created.PrestigeTier)
		}
	}
}

func TestTitleService_CreateBelt_Validation(t *testing.T) {
	service, _ := newTitleFixture(t, nil)

	cases := []struct {
		name  string
		input CreateBeltInput
	}{
		{"missing name", CreateBeltInput{Type: "Singles", Division: "World", Gender: "Male"}},
		{"unknown type", CreateBeltInput{Name: "X Championship", Type: "Trios", Division: "World", Gender: "Male"}},
		{"unknown gender", CreateBeltInput{Name: "X Championship", Type: "Singles", Division: "World", Gender: "Any"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.CreateBelt(t.Context(), tc.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestTitleService_ListTitles_JoinsHolders(t *testing.T) {
	service, championships := newTitleFixture(t, nil)

	assigned := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	championships.now = func() time.Time { return assigned }
	if _, err := championships.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("assign title: %v", err)
	}

	service.now = func() time.Time { return assigned.AddDate(0, 0, 10) }

	items, err := service.ListTitles(t.Context())
	if err != nil {
		t.Fatalf("list titles: %v", err)
	}
	if len(items) != 12 {
		t.Fatalf("expected 12 active titles, got %d", len(items))
	}

	var held, vacant *TitleWithHolders
	for i := range items {
		switch items[i].Title.ID {
		case seedTitleWorldHeavyweight:
			held = &items[i]
		case seedTitleSpeed:
			vacant = &items[i]
		}
	}
	if held == nil || vacant == nil {
		t.Fatalf("expected both seeded titles in the list")
	}

	if len(held.CurrentHolders) != 1 || held.CurrentHolders[0].WrestlerName != "The Rock" {
		t.Fatalf("unexpected holders: %+v", held.CurrentHolders)
	}
	if held.DaysHeld == nil || *held.DaysHeld != 10 {
		t.Fatalf("expected 10 days held, got %v", held.DaysHeld)
	}

	if len(vacant.CurrentHolders) != 0 {
		t.Fatalf("expected vacant title, got %+v", vacant.CurrentHolders)
	}
	if vacant.DaysHeld != nil {
		t.Fatalf("vacant title must have nil days held")
	}
}

func TestTitleService_TitlesForShow(t *testing.T) {
	service, _ := newTitleFixture(t, nil)

	items, err := service.TitlesForShow(t.Context(), memory.ShowIDRaw)
	if err != nil {
		t.Fatalf("titles for show: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 titles on the show, got %d", len(items))
	}
	for _, item := range items {
		if item.Title.ShowID != memory.ShowIDRaw {
			t.Fatalf("title %q does not belong to the show", item.Title.Name)
		}
	}

	if _, err := service.TitlesForShow(t.Context(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing show id, got %v", err)
	}
}

func TestTitleService_UnassignedTitles(t *testing.T) {
	service, _ := newTitleFixture(t, nil)

	items, err := service.UnassignedTitles(t.Context())
	if err != nil {
		t.Fatalf("unassigned titles: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 cross-brand titles, got %d", len(items))
	}
	for _, item := range items {
		if item.Title.ShowID != 0 {
			t.Fatalf("title %q is tied to show %d", item.Title.Name, item.Title.ShowID)
		}
	}
}

func TestTitleService_CacheInvalidatedOnCreate(t *testing.T) {
	store := cache.NewStore(time.Minute)
	service, _ := newTitleFixture(t, store)

	before, err := service.ListTitles(t.Context())
	if err != nil {
		t.Fatalf("list titles: %v", err)
	}

	if _, err := service.CreateBelt(t.Context(), CreateBeltInput{
		Name:     "Hardcore Championship",
		Type:     "Singles",
		Division: "Hardcore",
		Gender:   "Mixed",
	}); err != nil {
		t.Fatalf("create belt: %v", err)
	}

	after, err := service.ListTitles(t.Context())
	if err != nil {
		t.Fatalf("list titles after create: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("creating a belt must invalidate the cached list: before=%d after=%d", len(before), len(after))
	}
}

func TestTitleService_InvalidateHolderCaches(t *testing.T) {
	store := cache.NewStore(time.Minute)
	service, championships := newTitleFixture(t, store)

	before, err := service.ListTitles(t.Context())
	if err != nil {
		t.Fatalf("list titles: %v", err)
	}
	for _, item := range before {
		if len(item.CurrentHolders) != 0 {
			t.Fatalf("expected all seed titles vacant")
		}
	}

	if _, err := championships.AssignTitle(t.Context(), AssignTitleInput{
		TitleID:      seedTitleWorldHeavyweight,
		WrestlerID:   seedWrestlerRock,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("assign title: %v", err)
	}

	service.InvalidateHolderCaches(t.Context())

	after, err := service.ListTitles(t.Context())
	if err != nil {
		t.Fatalf("list titles after invalidation: %v", err)
	}
	for _, item := range after {
		if item.Title.ID == seedTitleWorldHeavyweight && len(item.CurrentHolders) != 1 {
			t.Fatalf("expected refreshed list to show the new champion")
		}
	}
}
