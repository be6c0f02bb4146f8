// Package storetest provides in-memory implementations of the service
// store contracts so services and handlers can be tested without a
// database. The fakes mirror the repository behavior: copies in, copies
// out, pgx.ErrNoRows for unknown ids, ErrDuplicateEmail on email
// collisions.
package storetest

import (
	"context"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/treinahub/treinahub-backend/internal/model"
	"github.com/treinahub/treinahub-backend/internal/repository"
)

type CourseStore struct {
	nextID  int
	courses map[int]model.Course
}

func NewCourseStore() *CourseStore {
	return &CourseStore{courses: make(map[int]model.Course)}
}

func (f *CourseStore) GetByID(_ context.Context, id int) (*model.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (f *CourseStore) List(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *CourseStore) ListByVendor(_ context.Context, vendor string) ([]model.Course, error) {
	var out []model.Course
	for _, c := range f.courses {
		if c.Vendor == vendor {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *CourseStore) ListByInstructor(_ context.Context, name string) ([]model.Course, error) {
	var out []model.Course
	for _, c := range f.courses {
		if c.SuggestedInstructor == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*c.SuggestedInstructor), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *CourseStore) Create(_ context.Context, c *model.Course) error {
	f.nextID++
	c.ID = f.nextID
	f.courses[c.ID] = *c
	return nil
}

func (f *CourseStore) Delete(_ context.Context, id int) error {
	delete(f.courses, id)
	return nil
}

// Len reports the number of stored courses.
func (f *CourseStore) Len() int { return len(f.courses) }

type SessionStore struct {
	nextID   int
	sessions map[int]model.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int]model.Session)}
}

func (f *SessionStore) GetByID(_ context.Context, id int) (*model.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &s, nil
}

func (f *SessionStore) ListUpcoming(_ context.Context) ([]model.Session, error) {
	today := model.Today()
	var out []model.Session
	for _, s := range f.sessions {
		if s.StartDate.Before(today) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f *SessionStore) Create(_ context.Context, s *model.Session) error {
	f.nextID++
	s.ID = f.nextID
	f.sessions[s.ID] = *s
	return nil
}

func (f *SessionStore) Update(_ context.Context, s *model.Session) error {
	f.sessions[s.ID] = *s
	return nil
}

func (f *SessionStore) CountByCourse(_ context.Context, courseID int) (int, error) {
	n := 0
	for _, s := range f.sessions {
		if s.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

// Len reports the number of stored sessions.
func (f *SessionStore) Len() int { return len(f.sessions) }

type EnrollmentStore struct {
	nextID      int
	enrollments map[int]model.Enrollment
}

func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{enrollments: make(map[int]model.Enrollment)}
}

func (f *EnrollmentStore) GetByID(_ context.Context, id int) (*model.Enrollment, error) {
	e, ok := f.enrollments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (f *EnrollmentStore) List(_ context.Context) ([]model.Enrollment, error) {
	out := make([]model.Enrollment, 0, len(f.enrollments))
	for _, e := range f.enrollments {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *EnrollmentStore) ListBySession(_ context.Context, sessionID int) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.enrollments {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *EnrollmentStore) Create(_ context.Context, e *model.Enrollment) error {
	for _, existing := range f.enrollments {
		if existing.Email == e.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	e.ID = f.nextID
	f.enrollments[e.ID] = *e
	return nil
}

func (f *EnrollmentStore) Update(_ context.Context, e *model.Enrollment) error {
	for id, existing := range f.enrollments {
		if id != e.ID && existing.Email == e.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.enrollments[e.ID] = *e
	return nil
}

func (f *EnrollmentStore) Delete(_ context.Context, id int) error {
	delete(f.enrollments, id)
	return nil
}

// Len reports the number of stored enrollments.
func (f *EnrollmentStore) Len() int { return len(f.enrollments) }
