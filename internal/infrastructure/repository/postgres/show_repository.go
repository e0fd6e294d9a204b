package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ringbookhq/ringbook/internal/domain/show"
	qb "github.com/ringbookhq/ringbook/internal/platform/querybuilder"
)

type ShowRepository struct {
	db *sqlx.DB
}

func NewShowRepository(db *sqlx.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) List(ctx context.Context) ([]show.Show, error) {
	query, args, err := showBaseSelectBuilder().
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list shows query: %w", err)
	}

	var rows []showTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	out := make([]show.Show, 0, len(rows))
	for _, row := range rows {
		out = append(out, showFromRow(row))
	}
	return out, nil
}

func (r *ShowRepository) GetByID(ctx context.Context, showID int64) (show.Show, bool, error) {
	query, args, err := showBaseSelectBuilder().
		Where(qb.Eq("id", showID)).
		ToSQL()
	if err != nil {
		return show.Show{}, false, fmt.Errorf("build get show query: %w", err)
	}

	var row showTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return show.Show{}, false, nil
		}
		return show.Show{}, false, fmt.Errorf("get show: %w", err)
	}

	return showFromRow(row), true, nil
}

func (r *ShowRepository) GetByIDs(ctx context.Context, showIDs []int64) ([]show.Show, error) {
	if len(showIDs) == 0 {
		return []show.Show{}, nil
	}

	values := make([]any, 0, len(showIDs))
	for _, id := range showIDs {
		values = append(values, id)
	}

	query, args, err := showBaseSelectBuilder().
		Where(qb.In("id", values)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get shows by ids query: %w", err)
	}

	var rows []showTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get shows by ids: %w", err)
	}

	out := make([]show.Show, 0, len(rows))
	for _, row := range rows {
		out = append(out, showFromRow(row))
	}
	return out, nil
}

func (r *ShowRepository) Create(ctx context.Context, item show.Show) (show.Show, error) {
	insertModel := showInsertModel{
		Name:        item.Name,
		Description: item.Description,
	}

	query, args, err := qb.InsertModel("shows", insertModel, "RETURNING id")
	if err != nil {
		return show.Show{}, fmt.Errorf("build insert show query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return show.Show{}, fmt.Errorf("insert show: %w", err)
	}

	return item, nil
}

func showBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("shows")
}
