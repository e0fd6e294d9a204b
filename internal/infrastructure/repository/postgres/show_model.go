package postgres

import (
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/show"
)

type showTableModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type showInsertModel struct {
	Name        string `db:"name"`
	Description string `db:"description"`
}

func showFromRow(row showTableModel) show.Show {
	return show.Show{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
	}
}
