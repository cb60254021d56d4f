package repository

import (
	"context"
	"database/sql"
)

// AdminRepo holds maintenance operations that span all tables. It is
// used for test isolation, not by the production booking path.
type AdminRepo struct{ db *sql.DB }

// NewAdminRepo returns an AdminRepo bound to the given database.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

// baselineTheaters is the theater set every reset restores. The
// capacities are fixed and independent of prior run history.
var baselineTheaters = []struct {
	Name     string
	Capacity uint32
}{
	{"Kino", 10},
	{"Regal", 16},
	{"Skandia", 100},
}

// Reset clears all five tables and reseeds the baseline theaters. The
// deletes run child tables first so foreign keys never block them, and
// the whole reset commits as one transaction so a failed reset leaves
// the previous state intact.
func (r *AdminRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	for _, table := range []string{"tickets", "screenings", "customers", "movies", "theaters"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	for _, t := range baselineTheaters {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO theaters (name, capacity) VALUES (?,?)",
			t.Name, t.Capacity); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
