package memory

import (
	"github.com/ringbookhq/ringbook/internal/domain/show"
	"github.com/ringbookhq/ringbook/internal/domain/title"
	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

const (
	ShowIDRaw       int64 = 1
	ShowIDSmackDown int64 = 2
)

func SeedShows() []show.Show {
	return []show.Show{
		{
			ID:          ShowIDRaw,
			Name:        "Monday Night RAW",
			Description: "The flagship weekly show featuring the biggest superstars",
		},
		{
			ID:          ShowIDSmackDown,
			Name:        "Friday Night SmackDown",
			Description: "The longest-running weekly episodic TV show in history",
		},
	}
}

func SeedWrestlers() []wrestler.Wrestler {
	return []wrestler.Wrestler{
		{
			ID: 1, Name: "The Rock", Gender: wrestler.GenderMale,
			Wins: 245, Losses: 67,
			RealName: "Dwayne Johnson", Nickname: "The People's Champion",
			Height: "6'5\"", Weight: "260 lbs", DebutYear: 1996,
			Ratings:       wrestler.PowerRatings{Strength: 9, Speed: 6, Agility: 7, Stamina: 9, Charisma: 10, Technique: 8},
			Biography:     "One of the most electrifying superstars in sports entertainment history.",
			IsUserCreated: true,
		},
		{
			ID: 2, Name: "Stone Cold Steve Austin", Gender: wrestler.GenderMale,
			Wins: 312, Losses: 89,
			RealName: "Steven James Anderson", Nickname: "The Texas Rattlesnake",
			Height: "6'2\"", Weight: "252 lbs", DebutYear: 1989,
			Ratings:   wrestler.PowerRatings{Strength: 8, Speed: 7, Agility: 6, Stamina: 8, Charisma: 9, Technique: 7},
			Biography: "The beer-drinking anti-hero who defined the Attitude Era.",
		},
		{
			ID: 3, Name: "Becky Lynch", Gender: wrestler.GenderFemale,
			Wins: 156, Losses: 43,
			RealName: "Rebecca Quin", Nickname: "The Man",
			Height: "5'6\"", Weight: "135 lbs", DebutYear: 2013,
			Ratings:   wrestler.PowerRatings{Strength: 7, Speed: 8, Agility: 9, Stamina: 8, Charisma: 9, Technique: 8},
			Biography: "From underdog to champion, redefined what it means to be a top star.",
		},
		{
			ID: 4, Name: "Charlotte Flair", Gender: wrestler.GenderFemale,
			Wins: 198, Losses: 52,
			RealName: "Ashley Elizabeth Fliehr", Nickname: "The Queen",
			Height: "5'10\"", Weight: "143 lbs", DebutYear: 2012,
			Ratings:   wrestler.PowerRatings{Strength: 7, Speed: 8, Agility: 8, Stamina: 8, Charisma: 9, Technique: 9},
			Biography: "A second-generation superstar and one of the most dominant competitors ever.",
		},
		{
			ID: 5, Name: "John Cena", Gender: wrestler.GenderMale,
			Wins: 289, Losses: 78,
			RealName: "John Felix Anthony Cena Jr.", Nickname: "The Cenation Leader",
			Height: "6'1\"", Weight: "251 lbs", DebutYear: 2002,
			Ratings:   wrestler.PowerRatings{Strength: 8, Speed: 7, Agility: 7, Stamina: 9, Charisma: 10, Technique: 8},
			Biography: "A 16-time World Champion known for his Never Give Up attitude.",
		},
	}
}

func SeedTitles() []title.Title {
	belts := []struct {
		id       int64
		name     string
		belt     title.TitleType
		division string
		gender   title.GenderRestriction
		showID   int64
	}{
		{1, "World Heavyweight Championship", title.TypeSingles, "World", title.RestrictionMale, ShowIDRaw},
		{2, "WWE Championship", title.TypeSingles, "WWE Championship", title.RestrictionMale, ShowIDSmackDown},
		{3, "Women's World Championship", title.TypeSingles, "Women's World", title.RestrictionFemale, ShowIDRaw},
		{4, "WWE Women's Championship", title.TypeSingles, "WWE Women's Championship", title.RestrictionFemale, ShowIDSmackDown},
		{5, "Intercontinental Championship", title.TypeSingles, "Intercontinental", title.RestrictionMale, ShowIDRaw},
		{6, "United States Championship", title.TypeSingles, "United States", title.RestrictionMale, ShowIDSmackDown},
		{7, "Women's Intercontinental Championship", title.TypeSingles, "Women's Intercontinental", title.RestrictionFemale, ShowIDRaw},
		{8, "Women's United States Championship", title.TypeSingles, "Women's United States", title.RestrictionFemale, ShowIDSmackDown},
		{9, "World Tag Team Championship", title.TypeTagTeam, "World Tag Team", title.RestrictionMale, ShowIDRaw},
		{10, "WWE Tag Team Championship", title.TypeTagTeam, "WWE Tag Team", title.RestrictionMale, ShowIDSmackDown},
		{11, "Women's Tag Team Championship", title.TypeTagTeam, "Women's Tag Team", title.RestrictionFemale, 0},
		{12, "Speed Championship", title.TypeSingles, "Speed", title.RestrictionMixed, 0},
	}

	out := make([]title.Title, 0, len(belts))
	for _, b := range belts {
		out = append(out, title.Title{
			ID:           b.id,
			Name:         b.name,
			Type:         b.belt,
			Division:     b.division,
			PrestigeTier: title.PrestigeTierForDivision(b.division),
			Gender:       b.gender,
			ShowID:       b.showID,
			IsActive:     true,
		})
	}

	return out
}
