package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ringbookhq/ringbook/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo promotion into an empty database. It is
// a no-op once any show exists, so it is safe to run on every boot.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM shows`); err != nil {
		return fmt.Errorf("count shows for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range memory.SeedShows() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO shows (id, name, description)
VALUES (:id, :name, :description)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":          s.ID,
			"name":        s.Name,
			"description": s.Description,
		})
		if err != nil {
			return fmt.Errorf("bind seed show %s query: %w", s.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed show %s: %w", s.Name, err)
		}
	}

	for _, w := range memory.SeedWrestlers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO wrestlers (id, name, gender, wins, losses, real_name, nickname, height, weight, debut_year,
    strength, speed, agility, stamina, charisma, technique, biography, is_user_created)
VALUES (:id, :name, :gender, :wins, :losses, :real_name, :nickname, :height, :weight, :debut_year,
    :strength, :speed, :agility, :stamina, :charisma, :technique, :biography, :is_user_created)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              w.ID,
			"name":            w.Name,
			"gender":          string(w.Gender),
			"wins":            w.Wins,
			"losses":          w.Losses,
			"real_name":       w.RealName,
			"nickname":        w.Nickname,
			"height":          w.Height,
			"weight":          w.Weight,
			"debut_year":      w.DebutYear,
			"strength":        w.Ratings.Strength,
			"speed":           w.Ratings.Speed,
			"agility":         w.Ratings.Agility,
			"stamina":         w.Ratings.Stamina,
			"charisma":        w.Ratings.Charisma,
			"technique":       w.Ratings.Technique,
			"biography":       w.Biography,
			"is_user_created": w.IsUserCreated,
		})
		if err != nil {
			return fmt.Errorf("bind seed wrestler %s query: %w", w.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed wrestler %s: %w", w.Name, err)
		}
	}

	for _, t := range memory.SeedTitles() {
		var showID *int64
		if t.ShowID != 0 {
			id := t.ShowID
			showID = &id
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO titles (id, name, title_type, division, prestige_tier, gender, show_id, is_active, is_user_created)
VALUES (:id, :name, :title_type, :division, :prestige_tier, :gender, :show_id, :is_active, :is_user_created)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              t.ID,
			"name":            t.Name,
			"title_type":      string(t.Type),
			"division":        t.Division,
			"prestige_tier":   t.PrestigeTier,
			"gender":          string(t.Gender),
			"show_id":         showID,
			"is_active":       t.IsActive,
			"is_user_created": t.IsUserCreated,
		})
		if err != nil {
			return fmt.Errorf("bind seed title %s query: %w", t.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed title %s: %w", t.Name, err)
		}
	}

	// Explicit seed IDs bypass the sequences; bump them past the seed rows.
	for _, fix := range []string{
		`SELECT setval(pg_get_serial_sequence('shows', 'id'), (SELECT MAX(id) FROM shows))`,
		`SELECT setval(pg_get_serial_sequence('wrestlers', 'id'), (SELECT MAX(id) FROM wrestlers))`,
		`SELECT setval(pg_get_serial_sequence('titles', 'id'), (SELECT MAX(id) FROM titles))`,
	} {
		if _, err := tx.ExecContext(ctx, fix); err != nil {
			return fmt.Errorf("advance seed sequence: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
