package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ringbookhq/ringbook/internal/domain/roster"
	qb "github.com/ringbookhq/ringbook/internal/platform/querybuilder"
	"github.com/ringbookhq/ringbook/internal/usecase"
)

// RosterRepository persists show assignments in show_rosters. Transfer
// runs its deactivate and insert in one transaction. A partial unique
// index on (wrestler_id) WHERE is_active backstops the single active
// show per wrestler; violations map to usecase.ErrConflict.
type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) GetActiveByWrestler(ctx context.Context, wrestlerID int64) (roster.Entry, bool, error) {
	query, args, err := rosterBaseSelectBuilder().
		Where(
			qb.Eq("wrestler_id", wrestlerID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return roster.Entry{}, false, fmt.Errorf("build get active roster entry query: %w", err)
	}

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Entry{}, false, nil
		}
		return roster.Entry{}, false, fmt.Errorf("get active roster entry: %w", err)
	}

	return rosterFromRow(row), true, nil
}

func (r *RosterRepository) ListActiveByShow(ctx context.Context, showID int64) ([]roster.Entry, error) {
	query, args, err := rosterBaseSelectBuilder().
		Where(
			qb.Eq("show_id", showID),
			qb.Eq("is_active", true),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active roster entries query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active roster entries: %w", err)
	}

	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, rosterFromRow(row))
	}
	return out, nil
}

func (r *RosterRepository) Transfer(ctx context.Context, showID, wrestlerID int64, assignedAt time.Time) (roster.Entry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return roster.Entry{}, fmt.Errorf("begin tx transfer roster entry: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deactivateQuery, deactivateArgs, err := qb.Update("show_rosters").
		Set("is_active", false).
		Where(
			qb.Eq("wrestler_id", wrestlerID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return roster.Entry{}, fmt.Errorf("build deactivate roster entry query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deactivateQuery, deactivateArgs...); err != nil {
		return roster.Entry{}, fmt.Errorf("deactivate roster entry: %w", err)
	}

	entry := roster.Entry{
		ShowID:     showID,
		WrestlerID: wrestlerID,
		AssignedAt: assignedAt,
		IsActive:   true,
	}
	insertModel := rosterInsertModel{
		ShowID:     showID,
		WrestlerID: wrestlerID,
		AssignedAt: assignedAt,
		IsActive:   true,
	}
	insertQuery, insertArgs, err := qb.InsertModel("show_rosters", insertModel, "RETURNING id")
	if err != nil {
		return roster.Entry{}, fmt.Errorf("build insert roster entry query: %w", err)
	}
	if err := tx.GetContext(ctx, &entry.ID, insertQuery, insertArgs...); err != nil {
		if isUniqueViolation(err) {
			return roster.Entry{}, fmt.Errorf("%w: wrestler %d already has an active assignment", usecase.ErrConflict, wrestlerID)
		}
		return roster.Entry{}, fmt.Errorf("insert roster entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return roster.Entry{}, fmt.Errorf("commit transfer roster entry tx: %w", err)
	}

	return entry, nil
}

func (r *RosterRepository) Deactivate(ctx context.Context, showID, wrestlerID int64) (bool, error) {
	query, args, err := qb.Update("show_rosters").
		Set("is_active", false).
		Where(
			qb.Eq("show_id", showID),
			qb.Eq("wrestler_id", wrestlerID),
			qb.Eq("is_active", true),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build deactivate roster entry query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("deactivate roster entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected deactivate roster entry: %w", err)
	}

	return affected > 0, nil
}

func rosterBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("show_rosters")
}
