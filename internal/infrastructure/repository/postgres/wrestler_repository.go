package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
	qb "github.com/ringbookhq/ringbook/internal/platform/querybuilder"
)

type WrestlerRepository struct {
	db *sqlx.DB
}

func NewWrestlerRepository(db *sqlx.DB) *WrestlerRepository {
	return &WrestlerRepository{db: db}
}

func (r *WrestlerRepository) List(ctx context.Context) ([]wrestler.Wrestler, error) {
	query, args, err := wrestlerBaseSelectBuilder().
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list wrestlers query: %w", err)
	}

	var rows []wrestlerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list wrestlers: %w", err)
	}

	out := make([]wrestler.Wrestler, 0, len(rows))
	for _, row := range rows {
		out = append(out, wrestlerFromRow(row))
	}
	return out, nil
}

func (r *WrestlerRepository) GetByID(ctx context.Context, wrestlerID int64) (wrestler.Wrestler, bool, error) {
	query, args, err := wrestlerBaseSelectBuilder().
		Where(qb.Eq("id", wrestlerID)).
		ToSQL()
	if err != nil {
		return wrestler.Wrestler{}, false, fmt.Errorf("build get wrestler query: %w", err)
	}

	var row wrestlerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return wrestler.Wrestler{}, false, nil
		}
		return wrestler.Wrestler{}, false, fmt.Errorf("get wrestler: %w", err)
	}

	return wrestlerFromRow(row), true, nil
}

func (r *WrestlerRepository) GetByIDs(ctx context.Context, wrestlerIDs []int64) ([]wrestler.Wrestler, error) {
	if len(wrestlerIDs) == 0 {
		return []wrestler.Wrestler{}, nil
	}

	values := make([]any, 0, len(wrestlerIDs))
	for _, id := range wrestlerIDs {
		values = append(values, id)
	}

	query, args, err := wrestlerBaseSelectBuilder().
		Where(qb.In("id", values)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get wrestlers by ids query: %w", err)
	}

	var rows []wrestlerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get wrestlers by ids: %w", err)
	}

	out := make([]wrestler.Wrestler, 0, len(rows))
	for _, row := range rows {
		out = append(out, wrestlerFromRow(row))
	}
	return out, nil
}

func (r *WrestlerRepository) Create(ctx context.Context, item wrestler.Wrestler) (wrestler.Wrestler, error) {
	query, args, err := qb.InsertModel("wrestlers", wrestlerToInsertModel(item), "RETURNING id")
	if err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("build insert wrestler query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return wrestler.Wrestler{}, fmt.Errorf("insert wrestler: %w", err)
	}

	return item, nil
}

func (r *WrestlerRepository) Update(ctx context.Context, item wrestler.Wrestler) error {
	query, args, err := qb.Update("wrestlers").
		Set("name", item.Name).
		Set("wins", item.Wins).
		Set("losses", item.Losses).
		Set("real_name", item.RealName).
		Set("nickname", item.Nickname).
		Set("height", item.Height).
		Set("weight", item.Weight).
		Set("debut_year", item.DebutYear).
		Set("strength", item.Ratings.Strength).
		Set("speed", item.Ratings.Speed).
		Set("agility", item.Ratings.Agility).
		Set("stamina", item.Ratings.Stamina).
		Set("charisma", item.Ratings.Charisma).
		Set("technique", item.Ratings.Technique).
		Set("biography", item.Biography).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update wrestler query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update wrestler: %w", err)
	}

	return nil
}

func wrestlerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("wrestlers")
}
