package postgres

import (
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/title"
)

type titleTableModel struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	CurrentHolderID *int64    `db:"current_holder_id"`
	TitleType       string    `db:"title_type"`
	Division        string    `db:"division"`
	PrestigeTier    int       `db:"prestige_tier"`
	Gender          string    `db:"gender"`
	ShowID          *int64    `db:"show_id"`
	IsActive        bool      `db:"is_active"`
	IsUserCreated   bool      `db:"is_user_created"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type titleInsertModel struct {
	Name          string `db:"name"`
	TitleType     string `db:"title_type"`
	Division      string `db:"division"`
	PrestigeTier  int    `db:"prestige_tier"`
	Gender        string `db:"gender"`
	ShowID        *int64 `db:"show_id"`
	IsActive      bool   `db:"is_active"`
	IsUserCreated bool   `db:"is_user_created"`
}

func titleFromRow(row titleTableModel) title.Title {
	item := title.Title{
		ID:            row.ID,
		Name:          row.Name,
		Type:          title.TitleType(row.TitleType),
		Division:      row.Division,
		PrestigeTier:  row.PrestigeTier,
		Gender:        title.GenderRestriction(row.Gender),
		IsActive:      row.IsActive,
		IsUserCreated: row.IsUserCreated,
	}
	if row.CurrentHolderID != nil {
		item.CurrentHolderID = *row.CurrentHolderID
	}
	if row.ShowID != nil {
		item.ShowID = *row.ShowID
	}
	return item
}

func titleToInsertModel(item title.Title) titleInsertModel {
	insertModel := titleInsertModel{
		Name:          item.Name,
		TitleType:     string(item.Type),
		Division:      item.Division,
		PrestigeTier:  item.PrestigeTier,
		Gender:        string(item.Gender),
		IsActive:      item.IsActive,
		IsUserCreated: item.IsUserCreated,
	}
	if item.ShowID != 0 {
		showID := item.ShowID
		insertModel.ShowID = &showID
	}
	return insertModel
}
