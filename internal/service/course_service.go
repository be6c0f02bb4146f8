package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/treinahub/treinahub-backend/internal/model"
)

// Catalog business-rule violations surfaced to the handler layer.
var (
	// ErrCourseNameMismatch means the delete payload named a course that
	// is not the one the id resolves to.
	ErrCourseNameMismatch = errors.New("course name does not match the given id")
	// ErrCourseHasSessions blocks deletion while sessions still reference
	// the course.
	ErrCourseHasSessions = errors.New("course still has scheduled sessions")
)

// CourseService implements the catalog operations.
type CourseService struct {
	courses  CourseStore
	sessions SessionStore
	log      zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses CourseStore, sessions SessionStore, log zerolog.Logger) *CourseService {
	return &CourseService{
		courses:  courses,
		sessions: sessions,
		log:      log.With().Str("component", "course_service").Logger(),
	}
}

// List returns the whole catalog ordered by course name.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courses.List(ctx)
}

// ListByVendor returns the catalog entries of a single vendor.
func (s *CourseService) ListByVendor(ctx context.Context, vendor string) ([]model.Course, error) {
	return s.courses.ListByVendor(ctx, vendor)
}

// ListByInstructor returns catalog entries whose suggested instructor
// contains the given name.
func (s *CourseService) ListByInstructor(ctx context.Context, name string) ([]model.Course, error) {
	return s.courses.ListByInstructor(ctx, name)
}

// Create adds a course to the catalog.
func (s *CourseService) Create(ctx context.Context, course *model.Course) error {
	if err := s.courses.Create(ctx, course); err != nil {
		return err
	}
	s.log.Info().Int("course_id", course.ID).Str("name", course.Name).Msg("catalog course created")
	return nil
}

// Delete removes a catalog entry after cross-checking the client-supplied
// name against the stored record and refusing while any session still
// references the course. The resolved course is returned for confirmation
// messages even when a rule rejects the delete.
func (s *CourseService) Delete(ctx context.Context, id int, name string) (*model.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if course.Name != name {
		return course, ErrCourseNameMismatch
	}

	n, err := s.sessions.CountByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return course, ErrCourseHasSessions
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.log.Info().Int("course_id", id).Str("name", course.Name).Msg("catalog course removed")
	return course, nil
}
