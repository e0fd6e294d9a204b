package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ringbookhq/ringbook/internal/domain/title"
	qb "github.com/ringbookhq/ringbook/internal/platform/querybuilder"
)

type TitleRepository struct {
	db *sqlx.DB
}

func NewTitleRepository(db *sqlx.DB) *TitleRepository {
	return &TitleRepository{db: db}
}

func (r *TitleRepository) List(ctx context.Context) ([]title.Title, error) {
	query, args, err := titleBaseSelectBuilder().
		OrderBy("prestige_tier", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list titles query: %w", err)
	}

	return r.selectTitles(ctx, query, args, "list titles")
}

func (r *TitleRepository) ListByShow(ctx context.Context, showID int64) ([]title.Title, error) {
	query, args, err := titleBaseSelectBuilder().
		Where(qb.Eq("show_id", showID)).
		OrderBy("prestige_tier", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list titles by show query: %w", err)
	}

	return r.selectTitles(ctx, query, args, "list titles by show")
}

func (r *TitleRepository) ListUnassigned(ctx context.Context) ([]title.Title, error) {
	query, args, err := titleBaseSelectBuilder().
		Where(qb.IsNull("show_id")).
		OrderBy("prestige_tier", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list unassigned titles query: %w", err)
	}

	return r.selectTitles(ctx, query, args, "list unassigned titles")
}

func (r *TitleRepository) GetByID(ctx context.Context, titleID int64) (title.Title, bool, error) {
	query, args, err := titleBaseSelectBuilder().
		Where(qb.Eq("id", titleID)).
		ToSQL()
	if err != nil {
		return title.Title{}, false, fmt.Errorf("build get title query: %w", err)
	}

	var row titleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return title.Title{}, false, nil
		}
		return title.Title{}, false, fmt.Errorf("get title: %w", err)
	}

	return titleFromRow(row), true, nil
}

func (r *TitleRepository) GetByIDs(ctx context.Context, titleIDs []int64) ([]title.Title, error) {
	if len(titleIDs) == 0 {
		return []title.Title{}, nil
	}

	values := make([]any, 0, len(titleIDs))
	for _, id := range titleIDs {
		values = append(values, id)
	}

	query, args, err := titleBaseSelectBuilder().
		Where(qb.In("id", values)).
		OrderBy("prestige_tier", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get titles by ids query: %w", err)
	}

	return r.selectTitles(ctx, query, args, "get titles by ids")
}

func (r *TitleRepository) Create(ctx context.Context, item title.Title) (title.Title, error) {
	query, args, err := qb.InsertModel("titles", titleToInsertModel(item), "RETURNING id")
	if err != nil {
		return title.Title{}, fmt.Errorf("build insert title query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return title.Title{}, fmt.Errorf("insert title: %w", err)
	}

	return item, nil
}

func (r *TitleRepository) selectTitles(ctx context.Context, query string, args []any, op string) ([]title.Title, error) {
	var rows []titleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]title.Title, 0, len(rows))
	for _, row := range rows {
		out = append(out, titleFromRow(row))
	}
	return out, nil
}

func titleBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("titles")
}
