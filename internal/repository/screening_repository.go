package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
)

// ScreeningRepo provides access to the `screenings` table. A screening
// is created with remaining_seats equal to its theater's capacity and
// the counter is only ever moved by DecrementSeatsTx, so it can never
// drift from capacity minus sold tickets.
type ScreeningRepo struct{ db *sql.DB }

// NewScreeningRepo returns a ScreeningRepo bound to the given database.
func NewScreeningRepo(db *sql.DB) *ScreeningRepo { return &ScreeningRepo{db: db} }

// Create validates the referenced theater and movie, then inserts the
// screening with remaining_seats initialised to the theater capacity.
// It returns the generated id, ErrTheaterNotFound or ErrMovieNotFound
// when a reference is unknown.
func (r *ScreeningRepo) Create(ctx context.Context, imdbKey, theaterName, startDate, startTime string) (uint64, error) {
	var capacity uint32
	err := r.db.QueryRowContext(ctx,
		"SELECT capacity FROM theaters WHERE name = ? LIMIT 1",
		theaterName).Scan(&capacity)
	if err == sql.ErrNoRows {
		return 0, ErrTheaterNotFound
	}
	if err != nil {
		return 0, err
	}
	var exists uint64
	err = r.db.QueryRowContext(ctx,
		"SELECT 1 FROM movies WHERE imdb_key = ? LIMIT 1",
		imdbKey).Scan(&exists)
	if err == sql.ErrNoRows {
		return 0, ErrMovieNotFound
	}
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO screenings (imdb_key, theater_name, start_date, start_time, remaining_seats) VALUES (?,?,?,?,?)",
		imdbKey, theaterName, startDate, startTime, capacity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a screening by id. It returns ErrScreeningNotFound
// for an unknown id.
func (r *ScreeningRepo) GetByID(ctx context.Context, id uint64) (model.Screening, error) {
	var s model.Screening
	err := r.db.QueryRowContext(ctx,
		`SELECT id, imdb_key, theater_name, start_date, start_time, remaining_seats
		 FROM screenings WHERE id = ? LIMIT 1`,
		id).Scan(&s.ID, &s.ImdbKey, &s.TheaterName, &s.StartDate, &s.StartTime, &s.RemainingSeats)
	if err == sql.ErrNoRows {
		return model.Screening{}, ErrScreeningNotFound
	}
	return s, err
}

// RemainingSeats returns the authoritative remaining seat count for a
// screening.
func (r *ScreeningRepo) RemainingSeats(ctx context.Context, id uint64) (uint32, error) {
	var remaining uint32
	err := r.db.QueryRowContext(ctx,
		"SELECT remaining_seats FROM screenings WHERE id = ? LIMIT 1",
		id).Scan(&remaining)
	if err == sql.ErrNoRows {
		return 0, ErrScreeningNotFound
	}
	return remaining, err
}

// List returns all screenings joined with their movie, ordered by date
// and time. This backs the public performance listing.
func (r *ScreeningRepo) List(ctx context.Context) ([]model.ScreeningDetail, error) {
	const q = `SELECT s.id, s.start_date, s.start_time, m.movie_title, m.production_year,
	                  s.theater_name, s.remaining_seats
	           FROM screenings s
	           JOIN movies m ON m.imdb_key = s.imdb_key
	           ORDER BY s.start_date, s.start_time, s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]model.ScreeningDetail, 0)
	for rows.Next() {
		var d model.ScreeningDetail
		if err := rows.Scan(&d.ID, &d.StartDate, &d.StartTime, &d.Title,
			&d.ProductionYear, &d.TheaterName, &d.RemainingSeats); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// DecrementSeatsTx takes one seat from the screening inside the given
// transaction. The WHERE guard makes the decrement conditional: when
// no seats remain the statement affects zero rows and the counter is
// left untouched, never clamped. In that case the screening row is
// re-read within the same transaction to distinguish ErrSoldOut from
// ErrScreeningNotFound.
func (r *ScreeningRepo) DecrementSeatsTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE screenings SET remaining_seats = remaining_seats - 1 WHERE id = ? AND remaining_seats > 0",
		id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var remaining uint32
		err := tx.QueryRowContext(ctx,
			"SELECT remaining_seats FROM screenings WHERE id = ? LIMIT 1",
			id).Scan(&remaining)
		if err == sql.ErrNoRows {
			return ErrScreeningNotFound
		}
		if err != nil {
			return err
		}
		return ErrSoldOut
	}
	return nil
}
