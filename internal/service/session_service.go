package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/treinahub/treinahub-backend/internal/model"
)

// SessionService implements the scheduling operations.
type SessionService struct {
	sessions SessionStore
	courses  CourseStore
	log      zerolog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions SessionStore, courses CourseStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		courses:  courses,
		log:      log.With().Str("component", "session_service").Logger(),
	}
}

// ListUpcoming returns sessions starting today or later, soonest first.
func (s *SessionService) ListUpcoming(ctx context.Context) ([]model.Session, error) {
	return s.sessions.ListUpcoming(ctx)
}

// Create schedules a catalog course. The course must exist; pgx.ErrNoRows
// from the lookup propagates unchanged so the handler can answer 404
// before anything is written. Status defaults to "Scheduled".
func (s *SessionService) Create(ctx context.Context, sess *model.Session) error {
	course, err := s.courses.GetByID(ctx, sess.CourseID)
	if err != nil {
		return err
	}

	if sess.Status == "" {
		sess.Status = model.SessionStatusScheduled
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return err
	}
	sess.Course = course

	s.log.Info().
		Int("session_id", sess.ID).
		Int("course_id", sess.CourseID).
		Str("start_date", sess.StartDate.String()).
		Msg("session scheduled")
	return nil
}

// Update applies a partial update to a session. Only fields present in
// the request are changed.
func (s *SessionService) Update(ctx context.Context, id int, req model.UpdateSessionRequest) (*model.Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		sess.Status = *req.Status
	}
	if req.StartDate != nil {
		sess.StartDate = *req.StartDate
	}
	if req.Location != nil {
		sess.Location = req.Location
	}

	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}
