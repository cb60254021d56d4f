package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/movie-ticket-sales/internal/model"
)

// TicketRepo provides access to the `tickets` table and owns the
// atomic issue step of the booking protocol: the guarded seat
// decrement and the ticket insert commit together or not at all.
type TicketRepo struct {
	db         *sql.DB
	screenings *ScreeningRepo
}

// NewTicketRepo returns a TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB, screenings *ScreeningRepo) *TicketRepo {
	return &TicketRepo{db: db, screenings: screenings}
}

// Issue books one seat on the screening for the user. It runs a single
// transaction that decrements remaining_seats under the WHERE guard and
// inserts the ticket row; any failure rolls both back. It returns the
// new ticket id, ErrSoldOut when no seats remain, or
// ErrScreeningNotFound when the screening does not exist.
func (r *TicketRepo) Issue(ctx context.Context, userName string, screeningID uint64) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := r.screenings.DecrementSeatsTx(ctx, tx, screeningID); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO tickets (user_name, screening_id) VALUES (?,?)",
		userName, screeningID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(id), nil
}

// SummariesByUser groups the user's tickets by screening and joins in
// the screening's movie and theater. An unknown user simply yields an
// empty slice.
func (r *TicketRepo) SummariesByUser(ctx context.Context, userName string) ([]model.TicketSummary, error) {
	const q = `SELECT s.id, s.start_date, s.start_time, s.theater_name,
	                  m.movie_title, m.production_year, COUNT(*) AS nbr_of_tickets
	           FROM tickets t
	           JOIN screenings s ON s.id = t.screening_id
	           JOIN movies m ON m.imdb_key = s.imdb_key
	           WHERE t.user_name = ?
	           GROUP BY s.id, s.start_date, s.start_time, s.theater_name, m.movie_title, m.production_year
	           ORDER BY s.start_date, s.start_time, s.id`
	rows, err := r.db.QueryContext(ctx, q, userName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	summaries := make([]model.TicketSummary, 0)
	for rows.Next() {
		var s model.TicketSummary
		if err := rows.Scan(&s.ScreeningID, &s.StartDate, &s.StartTime, &s.TheaterName,
			&s.Title, &s.ProductionYear, &s.TicketCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
