package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ringbookhq/ringbook/internal/domain/reign"
	qb "github.com/ringbookhq/ringbook/internal/platform/querybuilder"
	"github.com/ringbookhq/ringbook/internal/usecase"
)

// ReignRepository persists the title holder ledger in title_holders.
// Start and End run inside a transaction so the ledger and the title's
// current holder pointer never drift apart. A partial unique index on
// (title_id) WHERE held_until IS NULL backstops the single open reign
// per title; violations map to usecase.ErrConflict.
type ReignRepository struct {
	db *sqlx.DB
}

func NewReignRepository(db *sqlx.DB) *ReignRepository {
	return &ReignRepository{db: db}
}

func (r *ReignRepository) GetOpenByTitle(ctx context.Context, titleID int64) (reign.Reign, bool, error) {
	query, args, err := reignBaseSelectBuilder().
		Where(
			qb.Eq("title_id", titleID),
			qb.IsNull("held_until"),
		).
		ToSQL()
	if err != nil {
		return reign.Reign{}, false, fmt.Errorf("build get open reign query: %w", err)
	}

	var row reignTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return reign.Reign{}, false, nil
		}
		return reign.Reign{}, false, fmt.Errorf("get open reign: %w", err)
	}

	return reignFromRow(row), true, nil
}

func (r *ReignRepository) ListByTitle(ctx context.Context, titleID int64) ([]reign.Reign, error) {
	query, args, err := reignBaseSelectBuilder().
		Where(qb.Eq("title_id", titleID)).
		OrderBy("held_since", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list reigns by title query: %w", err)
	}

	var rows []reignTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reigns by title: %w", err)
	}

	out := make([]reign.Reign, 0, len(rows))
	for _, row := range rows {
		out = append(out, reignFromRow(row))
	}
	return out, nil
}

func (r *ReignRepository) ListOpenByWrestler(ctx context.Context, wrestlerID int64) ([]reign.Reign, error) {
	query, args, err := reignBaseSelectBuilder().
		Where(
			qb.Eq("wrestler_id", wrestlerID),
			qb.IsNull("held_until"),
		).
		OrderBy("title_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list open reigns by wrestler query: %w", err)
	}

	var rows []reignTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list open reigns by wrestler: %w", err)
	}

	out := make([]reign.Reign, 0, len(rows))
	for _, row := range rows {
		out = append(out, reignFromRow(row))
	}
	return out, nil
}

func (r *ReignRepository) Start(ctx context.Context, item reign.Reign) (reign.Reign, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return reign.Reign{}, fmt.Errorf("begin tx start reign: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	closeQuery, closeArgs, err := qb.Update("title_holders").
		Set("held_until", item.HeldSince).
		Where(
			qb.Eq("title_id", item.TitleID),
			qb.IsNull("held_until"),
		).
		ToSQL()
	if err != nil {
		return reign.Reign{}, fmt.Errorf("build close open reign query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, closeQuery, closeArgs...); err != nil {
		return reign.Reign{}, fmt.Errorf("close open reign: %w", err)
	}

	insertModel := reignInsertModel{
		TitleID:       item.TitleID,
		WrestlerID:    item.WrestlerID,
		HeldSince:     item.HeldSince,
		EventName:     item.EventName,
		EventLocation: item.EventLocation,
		ChangeMethod:  string(item.ChangeMethod),
	}
	insertQuery, insertArgs, err := qb.InsertModel("title_holders", insertModel, "RETURNING id")
	if err != nil {
		return reign.Reign{}, fmt.Errorf("build insert reign query: %w", err)
	}
	if err := tx.GetContext(ctx, &item.ID, insertQuery, insertArgs...); err != nil {
		if isUniqueViolation(err) {
			return reign.Reign{}, fmt.Errorf("%w: title %d already has an open reign", usecase.ErrConflict, item.TitleID)
		}
		return reign.Reign{}, fmt.Errorf("insert reign: %w", err)
	}

	pointerQuery, pointerArgs, err := qb.Update("titles").
		Set("current_holder_id", item.WrestlerID).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.TitleID)).
		ToSQL()
	if err != nil {
		return reign.Reign{}, fmt.Errorf("build update title holder pointer query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, pointerQuery, pointerArgs...); err != nil {
		return reign.Reign{}, fmt.Errorf("update title holder pointer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return reign.Reign{}, fmt.Errorf("commit start reign tx: %w", err)
	}

	item.HeldUntil = nil
	return item, nil
}

func (r *ReignRepository) End(ctx context.Context, titleID int64, endedAt time.Time, eventName, eventLocation string, method reign.ChangeMethod) (reign.Reign, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return reign.Reign{}, false, fmt.Errorf("begin tx end reign: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	closeBuilder := qb.Update("title_holders").
		Set("held_until", endedAt).
		Where(
			qb.Eq("title_id", titleID),
			qb.IsNull("held_until"),
		).
		Suffix("RETURNING *")
	if eventName != "" {
		closeBuilder = closeBuilder.Set("event_name", eventName)
	}
	if eventLocation != "" {
		closeBuilder = closeBuilder.Set("event_location", eventLocation)
	}
	if method != "" {
		closeBuilder = closeBuilder.Set("change_method", string(method))
	}

	closeQuery, closeArgs, err := closeBuilder.ToSQL()
	if err != nil {
		return reign.Reign{}, false, fmt.Errorf("build end reign query: %w", err)
	}

	var row reignTableModel
	if err := tx.GetContext(ctx, &row, closeQuery, closeArgs...); err != nil {
		if isNotFound(err) {
			return reign.Reign{}, false, nil
		}
		return reign.Reign{}, false, fmt.Errorf("end reign: %w", err)
	}

	pointerQuery, pointerArgs, err := qb.Update("titles").
		SetExpr("current_holder_id", "NULL").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", titleID)).
		ToSQL()
	if err != nil {
		return reign.Reign{}, false, fmt.Errorf("build clear title holder pointer query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, pointerQuery, pointerArgs...); err != nil {
		return reign.Reign{}, false, fmt.Errorf("clear title holder pointer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return reign.Reign{}, false, fmt.Errorf("commit end reign tx: %w", err)
	}

	return reignFromRow(row), true, nil
}

func reignBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("title_holders")
}
