package postgres

import (
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/roster"
)

type rosterTableModel struct {
	ID         int64     `db:"id"`
	ShowID     int64     `db:"show_id"`
	WrestlerID int64     `db:"wrestler_id"`
	AssignedAt time.Time `db:"assigned_at"`
	IsActive   bool      `db:"is_active"`
}

type rosterInsertModel struct {
	ShowID     int64     `db:"show_id"`
	WrestlerID int64     `db:"wrestler_id"`
	AssignedAt time.Time `db:"assigned_at"`
	IsActive   bool      `db:"is_active"`
}

func rosterFromRow(row rosterTableModel) roster.Entry {
	return roster.Entry{
		ID:         row.ID,
		ShowID:     row.ShowID,
		WrestlerID: row.WrestlerID,
		AssignedAt: row.AssignedAt,
		IsActive:   row.IsActive,
	}
}
