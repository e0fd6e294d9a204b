package title

import (
	"fmt"

	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

// TitleType distinguishes belts contested by individuals from those
// contested by teams.
type TitleType string

const (
	TypeSingles TitleType = "Singles"
	TypeTagTeam TitleType = "Tag Team"
)

// GenderRestriction limits who may hold a title. Mixed titles accept
// any wrestler.
type GenderRestriction string

const (
	RestrictionMale   GenderRestriction = "Male"
	RestrictionFemale GenderRestriction = "Female"
	RestrictionMixed  GenderRestriction = "Mixed"
)

// Accepts reports whether a wrestler of the given gender may hold a
// title with this restriction.
func (r GenderRestriction) Accepts(g wrestler.Gender) bool {
	if r == RestrictionMixed {
		return true
	}
	return string(r) == string(g)
}

// Prestige tiers rank how important a belt is within the promotion.
const (
	TierWorld     = 1
	TierSecondary = 2
	TierTagTeam   = 3
	TierSpecialty = 4
)

// PrestigeTierForDivision derives a belt's prestige tier from its
// division name. The tier is fixed at creation and never edited on its
// own.
func PrestigeTierForDivision(division string) int {
	switch division {
	case "World", "WWE Championship", "Women's World", "WWE Women's Championship":
		return TierWorld
	case "Intercontinental", "United States", "Women's Intercontinental", "Women's United States":
		return TierSecondary
	case "World Tag Team", "WWE Tag Team", "Women's Tag Team":
		return TierTagTeam
	default:
		return TierSpecialty
	}
}

// Title is a championship belt. ShowID is zero for cross-brand titles
// that are defended on any show.
type Title struct {
	ID            int64
	Name          string
	// CurrentHolderID mirrors the open reign in the title_holders
	// ledger. It is written in the same transaction as the ledger and
	// is never consulted to answer queries; the ledger is the source
	// of truth.
	CurrentHolderID int64
	Type            TitleType
	Division        string
	PrestigeTier    int
	Gender          GenderRestriction
	ShowID          int64
	IsActive        bool
	IsUserCreated   bool
}

func (t Title) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("title name is required")
	}
	if t.Division == "" {
		return fmt.Errorf("title division is required")
	}
	switch t.Type {
	case TypeSingles, TypeTagTeam:
	default:
		return fmt.Errorf("unknown title type %q", t.Type)
	}
	switch t.Gender {
	case RestrictionMale, RestrictionFemale, RestrictionMixed:
	default:
		return fmt.Errorf("unknown gender restriction %q", t.Gender)
	}

	return nil
}
