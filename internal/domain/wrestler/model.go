package wrestler

import "fmt"

// Gender classifies wrestlers and restricts title eligibility.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender normalizes free-form input into a closed Gender value.
// Unknown values fall back to Other, matching the legacy data entry
// behavior where gender was captured as free text.
func ParseGender(raw string) Gender {
	switch raw {
	case "Male", "male", "m", "M":
		return GenderMale
	case "Female", "female", "f", "F":
		return GenderFemale
	default:
		return GenderOther
	}
}

// PowerRatings groups the 1-10 attribute scores shown on a wrestler card.
type PowerRatings struct {
	Strength  int
	Speed     int
	Agility   int
	Stamina   int
	Charisma  int
	Technique int
}

func (p PowerRatings) Validate() error {
	for _, rating := range []struct {
		name  string
		value int
	}{
		{"strength", p.Strength},
		{"speed", p.Speed},
		{"agility", p.Agility},
		{"stamina", p.Stamina},
		{"charisma", p.Charisma},
		{"technique", p.Technique},
	} {
		if rating.value < 1 || rating.value > 10 {
			return fmt.Errorf("%s must be between 1 and 10", rating.name)
		}
	}

	return nil
}

// Wrestler is a performer on the promotion's books.
type Wrestler struct {
	ID            int64
	Name          string
	Gender        Gender
	Wins          int
	Losses        int
	RealName      string
	Nickname      string
	Height        string
	Weight        string
	DebutYear     int
	Ratings       PowerRatings
	Biography     string
	IsUserCreated bool
}

func (w Wrestler) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("wrestler name is required")
	}
	if w.Wins < 0 {
		return fmt.Errorf("wins cannot be negative")
	}
	if w.Losses < 0 {
		return fmt.Errorf("losses cannot be negative")
	}

	return nil
}
