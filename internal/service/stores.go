package service

import (
	"context"

	"github.com/treinahub/treinahub-backend/internal/model"
)

// The store interfaces describe the persistence surface the services
// depend on. The pgx repositories satisfy them; tests substitute
// in-memory fakes so the business rules run without a live database.

// CourseStore is the catalog persistence surface.
type CourseStore interface {
	GetByID(ctx context.Context, id int) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	ListByVendor(ctx context.Context, vendor string) ([]model.Course, error)
	ListByInstructor(ctx context.Context, name string) ([]model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id int) error
}

// SessionStore is the scheduled-session persistence surface.
type SessionStore interface {
	GetByID(ctx context.Context, id int) (*model.Session, error)
	ListUpcoming(ctx context.Context) ([]model.Session, error)
	Create(ctx context.Context, s *model.Session) error
	Update(ctx context.Context, s *model.Session) error
	CountByCourse(ctx context.Context, courseID int) (int, error)
}

// EnrollmentStore is the enrollment persistence surface.
type EnrollmentStore interface {
	GetByID(ctx context.Context, id int) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	ListBySession(ctx context.Context, sessionID int) ([]model.Enrollment, error)
	Create(ctx context.Context, e *model.Enrollment) error
	Update(ctx context.Context, e *model.Enrollment) error
	Delete(ctx context.Context, id int) error
}
