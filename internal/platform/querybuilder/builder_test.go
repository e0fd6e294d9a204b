package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("*").
		From("title_holders").
		Where(Eq("title_id", int64(3)), IsNull("held_until")).
		OrderBy("held_since").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM title_holders WHERE title_id = $1 AND held_until IS NULL ORDER BY held_since LIMIT 1"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_In(t *testing.T) {
	query, args, err := Select("*").
		From("titles").
		Where(In("id", []any{int64(1), int64(2), int64(3)})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM titles WHERE id IN ($1, $2, $3)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("*").
		From("wrestlers").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM wrestlers WHERE 1=0"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTableAndColumns(t *testing.T) {
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
	if _, _, err := Select().From("titles").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("title_holders").
		Set("held_until", "2026-03-02").
		Set("change_method", "Vacated").
		SetExpr("updated_at", "NOW()").
		Where(Eq("title_id", int64(3)), IsNull("held_until")).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE title_holders SET held_until = $1, change_method = $2, updated_at = NOW() " +
		"WHERE title_id = $3 AND held_until IS NULL RETURNING *"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_SetExprWithArgs(t *testing.T) {
	query, args, err := Update("wrestlers").
		SetExpr("wins", "wins + ?", 1).
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE wrestlers SET wins = wins + $1 WHERE id = $2"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("show_rosters").
		Columns("show_id", "wrestler_id", "is_active").
		Values(int64(1), int64(7), true).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO show_rosters (show_id, wrestler_id, is_active) VALUES ($1, $2, $3) RETURNING id"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ColumnValueMismatch(t *testing.T) {
	if _, _, err := InsertInto("shows").
		Columns("name", "description").
		Values("NXT").
		ToSQL(); err == nil {
		t.Fatalf("expected error for column/value mismatch")
	}
}

func TestInsertModel(t *testing.T) {
	type rosterRow struct {
		ShowID     int64  `db:"show_id"`
		WrestlerID int64  `db:"wrestler_id"`
		IsActive   bool   `db:"is_active"`
		Ignored    string `db:"-"`
	}

	query, args, err := InsertModel("show_rosters", rosterRow{ShowID: 2, WrestlerID: 7, IsActive: true}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO show_rosters (show_id, wrestler_id, is_active) VALUES ($1, $2, $3) RETURNING id"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("shows", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}

	var nilRow *struct {
		Name string `db:"name"`
	}
	if _, _, err := InsertModel("shows", nilRow, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
