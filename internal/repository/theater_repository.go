package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
)

// TheaterRepo provides access to the `theaters` table. Theaters are
// immutable after creation, so the repository only exposes inserts
// and lookups.
type TheaterRepo struct{ db *sql.DB }

// NewTheaterRepo returns a TheaterRepo bound to the given database.
func NewTheaterRepo(db *sql.DB) *TheaterRepo { return &TheaterRepo{db: db} }

// Create inserts a theater. It returns ErrConflict when a theater with
// the same name already exists.
func (r *TheaterRepo) Create(ctx context.Context, name string, capacity uint32) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO theaters (name, capacity) VALUES (?,?)",
		name, capacity)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// List returns all theaters ordered by name.
func (r *TheaterRepo) List(ctx context.Context) ([]model.Theater, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, capacity FROM theaters ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	theaters := make([]model.Theater, 0)
	for rows.Next() {
		var t model.Theater
		if err := rows.Scan(&t.Name, &t.Capacity); err != nil {
			return nil, err
		}
		theaters = append(theaters, t)
	}
	return theaters, rows.Err()
}

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error number 1062) raised by a unique or primary key violation.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
