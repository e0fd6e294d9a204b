package postgres

import (
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/reign"
)

type reignTableModel struct {
	ID            int64      `db:"id"`
	TitleID       int64      `db:"title_id"`
	WrestlerID    int64      `db:"wrestler_id"`
	HeldSince     time.Time  `db:"held_since"`
	HeldUntil     *time.Time `db:"held_until"`
	EventName     string     `db:"event_name"`
	EventLocation string     `db:"event_location"`
	ChangeMethod  string     `db:"change_method"`
	CreatedAt     time.Time  `db:"created_at"`
}

type reignInsertModel struct {
	TitleID       int64     `db:"title_id"`
	WrestlerID    int64     `db:"wrestler_id"`
	HeldSince     time.Time `db:"held_since"`
	EventName     string    `db:"event_name"`
	EventLocation string    `db:"event_location"`
	ChangeMethod  string    `db:"change_method"`
}

func reignFromRow(row reignTableModel) reign.Reign {
	item := reign.Reign{
		ID:            row.ID,
		TitleID:       row.TitleID,
		WrestlerID:    row.WrestlerID,
		HeldSince:     row.HeldSince,
		EventName:     row.EventName,
		EventLocation: row.EventLocation,
		ChangeMethod:  reign.ChangeMethod(row.ChangeMethod),
	}
	if row.HeldUntil != nil {
		until := *row.HeldUntil
		item.HeldUntil = &until
	}
	return item
}
