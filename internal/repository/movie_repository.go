package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
)

// MovieRepo provides access to the `movies` table. Movies are keyed by
// imdb key and immutable after creation.
type MovieRepo struct{ db *sql.DB }

// NewMovieRepo returns a MovieRepo bound to the given database.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// Create inserts a movie. It returns ErrConflict when the imdb key is
// already registered.
func (r *MovieRepo) Create(ctx context.Context, m model.Movie) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO movies (imdb_key, movie_title, production_year) VALUES (?,?,?)",
		m.ImdbKey, m.Title, m.ProductionYear)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetByKey fetches a movie by its imdb key. It returns ErrMovieNotFound
// for an unknown key.
func (r *MovieRepo) GetByKey(ctx context.Context, imdbKey string) (model.Movie, error) {
	var m model.Movie
	err := r.db.QueryRowContext(ctx,
		"SELECT imdb_key, movie_title, production_year FROM movies WHERE imdb_key = ? LIMIT 1",
		imdbKey).Scan(&m.ImdbKey, &m.Title, &m.ProductionYear)
	if err == sql.ErrNoRows {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, err
}

// List returns movies matching the optional filter. The criteria are
// appended to the WHERE clause only when set: an exact title match and
// a minimum production year.
func (r *MovieRepo) List(ctx context.Context, f model.MovieFilter) ([]model.Movie, error) {
	query := "SELECT imdb_key, movie_title, production_year FROM movies WHERE TRUE"
	args := make([]interface{}, 0, 2)
	if f.Title != "" {
		query += " AND movie_title = ?"
		args = append(args, f.Title)
	}
	if f.MinYear != 0 {
		query += " AND production_year >= ?"
		args = append(args, f.MinYear)
	}
	query += " ORDER BY imdb_key"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ImdbKey, &m.Title, &m.ProductionYear); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}
