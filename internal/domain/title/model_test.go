package title

import (
	"testing"

	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

func TestPrestigeTierForDivision(t *testing.T) {
	cases := []struct {
		division string
		want     int
	}{
		{"World", TierWorld},
		{"WWE Championship", TierWorld},
		{"Women's World", TierWorld},
		{"WWE Women's Championship", TierWorld},
		{"Intercontinental", TierSecondary},
		{"United States", TierSecondary},
		{"Women's Intercontinental", TierSecondary},
		{"Women's United States", TierSecondary},
		{"World Tag Team", TierTagTeam},
		{"WWE Tag Team", TierTagTeam},
		{"Women's Tag Team", TierTagTeam},
		{"Speed", TierSpecialty},
		{"Hardcore", TierSpecialty},
		{"", TierSpecialty},
	}
	for _, tc := range cases {
		if got := PrestigeTierForDivision(tc.division); got != tc.want {
			t.Fatalf("division %q: expected tier %d, got %d", tc.division, tc.want, got)
		}
	}
}

func TestGenderRestriction_Accepts(t *testing.T) {
	if !RestrictionMale.Accepts(wrestler.GenderMale) {
		t.Fatalf("male title must accept male wrestlers")
	}
	if RestrictionMale.Accepts(wrestler.GenderFemale) {
		t.Fatalf("male title must reject female wrestlers")
	}
	if RestrictionFemale.Accepts(wrestler.GenderOther) {
		t.Fatalf("female title must reject other-gender wrestlers")
	}
	for _, g := range []wrestler.Gender{wrestler.GenderMale, wrestler.GenderFemale, wrestler.GenderOther} {
		if !RestrictionMixed.Accepts(g) {
			t.Fatalf("mixed title must accept %q", g)
		}
	}
}

func TestTitle_Validate(t *testing.T) {
	valid := Title{
		Name:     "Hardcore Championship",
		Type:     TypeSingles,
		Division: "Hardcore",
		Gender:   RestrictionMixed,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid title rejected: %v", err)
	}

	cases := []struct {
		name string
		item Title
	}{
		{"missing name", Title{Type: TypeSingles, Division: "Hardcore", Gender: RestrictionMixed}},
		{"missing division", Title{Name: "X", Type: TypeSingles, Gender: RestrictionMixed}},
		{"unknown type", Title{Name: "X", Type: "Trios", Division: "Hardcore", Gender: RestrictionMixed}},
		{"unknown gender", Title{Name: "X", Type: TypeSingles, Division: "Hardcore", Gender: "Any"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.item.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
