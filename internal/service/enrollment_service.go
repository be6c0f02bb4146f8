package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/treinahub/treinahub-backend/internal/model"
)

// EnrollmentService implements the enrollment operations.
type EnrollmentService struct {
	enrollments EnrollmentStore
	sessions    SessionStore
	log         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollments EnrollmentStore, sessions SessionStore, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		sessions:    sessions,
		log:         log.With().Str("component", "enrollment_service").Logger(),
	}
}

// List returns every enrollment.
func (s *EnrollmentService) List(ctx context.Context) ([]model.Enrollment, error) {
	return s.enrollments.List(ctx)
}

// Roster returns the enrollments of one session together with the course
// name and suggested instructor of its parent course, inlined flat.
func (s *EnrollmentService) Roster(ctx context.Context, sessionID int) (*model.SessionRoster, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollments.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}

	roster := &model.SessionRoster{Enrollments: enrollments}
	if sess.Course != nil {
		roster.CourseName = sess.Course.Name
		roster.SuggestedInstructor = sess.Course.SuggestedInstructor
	}
	return roster, nil
}

// Create registers a person into a session. The session must exist;
// pgx.ErrNoRows from the lookup propagates unchanged. A duplicate email
// surfaces as repository.ErrDuplicateEmail.
func (s *EnrollmentService) Create(ctx context.Context, e *model.Enrollment) error {
	if _, err := s.sessions.GetByID(ctx, e.SessionID); err != nil {
		return err
	}

	if err := s.enrollments.Create(ctx, e); err != nil {
		return err
	}
	s.log.Info().
		Int("enrollment_id", e.ID).
		Int("session_id", e.SessionID).
		Msg("student enrolled")
	return nil
}

// Update applies a partial update to an enrollment. Only fields present
// in the request are changed.
func (s *EnrollmentService) Update(ctx context.Context, id int, req model.UpdateEnrollmentRequest) (*model.Enrollment, error) {
	e, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Paid != nil {
		e.Paid = *req.Paid
	}

	if err := s.enrollments.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an enrollment by id. Unknown ids surface as
// pgx.ErrNoRows from the existence check.
func (s *EnrollmentService) Delete(ctx context.Context, id int) error {
	if _, err := s.enrollments.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("enrollment_id", id).Msg("enrollment removed")
	return nil
}
