package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/treinahub/treinahub-backend/internal/model"
)

// CourseRepository handles catalog data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// GetByID retrieves a catalog course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, vendor, suggested_instructor FROM courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Vendor, &c.SuggestedInstructor)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves the whole catalog ordered by course name.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	return r.query(ctx,
		`SELECT id, name, vendor, suggested_instructor FROM courses ORDER BY name ASC`)
}

// ListByVendor retrieves the catalog entries of a single vendor.
func (r *CourseRepository) ListByVendor(ctx context.Context, vendor string) ([]model.Course, error) {
	return r.query(ctx,
		`SELECT id, name, vendor, suggested_instructor FROM courses WHERE vendor = $1`, vendor)
}

// ListByInstructor retrieves catalog entries whose suggested instructor
// contains the given name, case-insensitively.
func (r *CourseRepository) ListByInstructor(ctx context.Context, name string) ([]model.Course, error) {
	return r.query(ctx,
		`SELECT id, name, vendor, suggested_instructor FROM courses
		 WHERE suggested_instructor ILIKE '%' || $1 || '%'`, name)
}

// Create inserts a catalog course inside its own transaction.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO courses (name, vendor, suggested_instructor)
		 VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.Vendor, c.SuggestedInstructor,
	).Scan(&c.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete removes a catalog course inside its own transaction.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CourseRepository) query(ctx context.Context, sql string, args ...interface{}) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Vendor, &c.SuggestedInstructor); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
