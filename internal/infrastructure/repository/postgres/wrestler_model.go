package postgres

import (
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

type wrestlerTableModel struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Gender        string    `db:"gender"`
	Wins          int       `db:"wins"`
	Losses        int       `db:"losses"`
	RealName      string    `db:"real_name"`
	Nickname      string    `db:"nickname"`
	Height        string    `db:"height"`
	Weight        string    `db:"weight"`
	DebutYear     int       `db:"debut_year"`
	Strength      int       `db:"strength"`
	Speed         int       `db:"speed"`
	Agility       int       `db:"agility"`
	Stamina       int       `db:"stamina"`
	Charisma      int       `db:"charisma"`
	Technique     int       `db:"technique"`
	Biography     string    `db:"biography"`
	IsUserCreated bool      `db:"is_user_created"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type wrestlerInsertModel struct {
	Name          string `db:"name"`
	Gender        string `db:"gender"`
	Wins          int    `db:"wins"`
	Losses        int    `db:"losses"`
	RealName      string `db:"real_name"`
	Nickname      string `db:"nickname"`
	Height        string `db:"height"`
	Weight        string `db:"weight"`
	DebutYear     int    `db:"debut_year"`
	Strength      int    `db:"strength"`
	Speed         int    `db:"speed"`
	Agility       int    `db:"agility"`
	Stamina       int    `db:"stamina"`
	Charisma      int    `db:"charisma"`
	Technique     int    `db:"technique"`
	Biography     string `db:"biography"`
	IsUserCreated bool   `db:"is_user_created"`
}

func wrestlerFromRow(row wrestlerTableModel) wrestler.Wrestler {
	return wrestler.Wrestler{
		ID:        row.ID,
		Name:      row.Name,
		Gender:    wrestler.Gender(row.Gender),
		Wins:      row.Wins,
		Losses:    row.Losses,
		RealName:  row.RealName,
		Nickname:  row.Nickname,
		Height:    row.Height,
		Weight:    row.Weight,
		DebutYear: row.DebutYear,
		Ratings: wrestler.PowerRatings{
			Strength:  row.Strength,
			Speed:     row.Speed,
			Agility:   row.Agility,
			Stamina:   row.Stamina,
			Charisma:  row.Charisma,
			Technique: row.Technique,
		},
		Biography:     row.Biography,
		IsUserCreated: row.IsUserCreated,
	}
}

func wrestlerToInsertModel(item wrestler.Wrestler) wrestlerInsertModel {
	return wrestlerInsertModel{
		Name:          item.Name,
		Gender:        string(item.Gender),
		Wins:          item.Wins,
		Losses:        item.Losses,
		RealName:      item.RealName,
		Nickname:      item.Nickname,
		Height:        item.Height,
		Weight:        item.Weight,
		DebutYear:     item.DebutYear,
		Strength:      item.Ratings.Strength,
		Speed:         item.Ratings.Speed,
		Agility:       item.Ratings.Agility,
		Stamina:       item.Ratings.Stamina,
		Charisma:      item.Ratings.Charisma,
		Technique:     item.Ratings.Technique,
		Biography:     item.Biography,
		IsUserCreated: item.IsUserCreated,
	}
}
