package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/treinahub/treinahub-backend/internal/model"
)

// SessionRepository handles scheduled session data access. Every read
// joins the parent course so the nested serialization needs no second
// round trip.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

const sessionColumns = `s.id, s.course_id, s.start_date, s.time_range, s.location, s.status,
	 c.id, c.name, c.vendor, c.suggested_instructor`

// GetByID retrieves a session with its parent course.
func (r *SessionRepository) GetByID(ctx context.Context, id int) (*model.Session, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+`
		 FROM sessions s JOIN courses c ON c.id = s.course_id
		 WHERE s.id = $1`, id)
	return scanSession(row)
}

// ListUpcoming retrieves sessions starting today or later, soonest first.
// Past sessions are intentionally excluded; there is no list-all view.
func (r *SessionRepository) ListUpcoming(ctx context.Context) ([]model.Session, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sessionColumns+`
		 FROM sessions s JOIN courses c ON c.id = s.course_id
		 WHERE s.start_date >= CURRENT_DATE
		 ORDER BY s.start_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

// Create inserts a session inside its own transaction. The caller is
// responsible for having resolved the parent course.
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO sessions (course_id, start_date, time_range, location, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.CourseID, s.StartDate.Time, s.TimeRange, s.Location, s.Status,
	).Scan(&s.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update writes the mutable session columns inside its own transaction.
func (r *SessionRepository) Update(ctx context.Context, s *model.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE sessions SET status = $1, start_date = $2, location = $3 WHERE id = $4`,
		s.Status, s.StartDate.Time, s.Location, s.ID,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// CountByCourse reports how many sessions reference the given course.
func (r *SessionRepository) CountByCourse(ctx context.Context, courseID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM sessions WHERE course_id = $1`, courseID).Scan(&n)
	return n, err
}

func scanSession(row pgx.Row) (*model.Session, error) {
	s := &model.Session{Course: &model.Course{}}
	err := row.Scan(
		&s.ID, &s.CourseID, &s.StartDate.Time, &s.TimeRange, &s.Location, &s.Status,
		&s.Course.ID, &s.Course.Name, &s.Course.Vendor, &s.Course.SuggestedInstructor,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
