package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/treinahub/treinahub-backend/internal/model"
)

// ErrDuplicateEmail signals that the enrollment email is already taken.
// Enrollment emails are unique system-wide.
var ErrDuplicateEmail = errors.New("enrollment with this email already exists")

// EnrollmentRepository handles enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// GetByID retrieves an enrollment by ID.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name, email, paid, session_id FROM enrollments WHERE id = $1`, id,
	).Scan(&e.ID, &e.FullName, &e.Email, &e.Paid, &e.SessionID)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List retrieves every enrollment.
func (r *EnrollmentRepository) List(ctx context.Context) ([]model.Enrollment, error) {
	return r.query(ctx,
		`SELECT id, full_name, email, paid, session_id FROM enrollments`)
}

// ListBySession retrieves the enrollments of a single session.
func (r *EnrollmentRepository) ListBySession(ctx context.Context, sessionID int) ([]model.Enrollment, error) {
	return r.query(ctx,
		`SELECT id, full_name, email, paid, session_id FROM enrollments WHERE session_id = $1`,
		sessionID)
}

// Create inserts an enrollment inside its own transaction.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO enrollments (full_name, email, paid, session_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		e.FullName, e.Email, e.Paid, e.SessionID,
	).Scan(&e.ID); err != nil {
		return mapUniqueViolation(err)
	}
	return tx.Commit(ctx)
}

// Update writes the mutable enrollment columns inside its own transaction.
func (r *EnrollmentRepository) Update(ctx context.Context, e *model.Enrollment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE enrollments SET full_name = $1, email = $2, paid = $3 WHERE id = $4`,
		e.FullName, e.Email, e.Paid, e.ID,
	); err != nil {
		return mapUniqueViolation(err)
	}
	return tx.Commit(ctx)
}

// Delete removes an enrollment inside its own transaction.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *EnrollmentRepository) query(ctx context.Context, sql string, args ...interface{}) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.Paid, &e.SessionID); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}
