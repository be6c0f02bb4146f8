package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/treinahub/treinahub-backend/internal/model"
	"github.com/treinahub/treinahub-backend/internal/storetest"
)

func newSessionFixture(t *testing.T) (*SessionService, *storetest.SessionStore, *storetest.CourseStore) {
	t.Helper()
	courses := storetest.NewCourseStore()
	sessions := storetest.NewSessionStore()
	return NewSessionService(sessions, courses, zerolog.Nop()), sessions, courses
}

func TestSessionCreateUnknownCourse(t *testing.T) {
	svc, sessions, _ := newSessionFixture(t)

	sess := &model.Session{CourseID: 99, StartDate: model.NewDate(2030, time.May, 10)}
	err := svc.Create(context.Background(), sess)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("err = %v, want pgx.ErrNoRows", err)
	}
	if n, _ := sessions.CountByCourse(context.Background(), 99); n != 0 {
		t.Error("no session row may exist after a failed create")
	}
}

func TestSessionCreateDefaultsAndNestsCourse(t *testing.T) {
	svc, _, courses := newSessionFixture(t)

	course := &model.Course{Name: "React Avançado", Vendor: "Meta"}
	if err := courses.Create(context.Background(), course); err != nil {
		t.Fatal(err)
	}

	sess := &model.Session{CourseID: course.ID, StartDate: model.NewDate(2030, time.May, 10)}
	if err := svc.Create(context.Background(), sess); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if sess.ID == 0 {
		t.Error("session id must be assigned")
	}
	if sess.Status != model.SessionStatusScheduled {
		t.Errorf("Status = %q, want %q", sess.Status, model.SessionStatusScheduled)
	}
	if sess.Course == nil || sess.Course.Name != "React Avançado" {
		t.Errorf("nested course = %+v", sess.Course)
	}
}

func TestSessionCreateKeepsExplicitStatus(t *testing.T) {
	svc, _, courses := newSessionFixture(t)

	course := &model.Course{Name: "Go para Backends", Vendor: "Google"}
	if err := courses.Create(context.Background(), course); err != nil {
		t.Fatal(err)
	}

	sess := &model.Session{
		CourseID:  course.ID,
		StartDate: model.NewDate(2030, time.May, 10),
		Status:    model.SessionStatusInProgress,
	}
	if err := svc.Create(context.Background(), sess); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Status != model.SessionStatusInProgress {
		t.Errorf("Status = %q, explicit value must win", sess.Status)
	}
}

func TestSessionUpdatePartial(t *testing.T) {
	svc, sessions, _ := newSessionFixture(t)

	location := "Sala 3"
	sess := &model.Session{
		CourseID:  1,
		StartDate: model.NewDate(2030, time.May, 10),
		Location:  &location,
		Status:    model.SessionStatusScheduled,
	}
	if err := sessions.Create(context.Background(), sess); err != nil {
		t.Fatal(err)
	}

	status := model.SessionStatusCancelled
	updated, err := svc.Update(context.Background(), sess.ID, model.UpdateSessionRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Status != model.SessionStatusCancelled {
		t.Errorf("Status = %q", updated.Status)
	}
	if updated.StartDate.String() != "2030-05-10" {
		t.Errorf("StartDate changed: %s", updated.StartDate)
	}
	if updated.Location == nil || *updated.Location != "Sala 3" {
		t.Errorf("Location changed: %v", updated.Location)
	}
}

func TestSessionUpdateUnknownID(t *testing.T) {
	svc, _, _ := newSessionFixture(t)

	status := model.SessionStatusCompleted
	_, err := svc.Update(context.Background(), 7, model.UpdateSessionRequest{Status: &status})
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("err = %v, want pgx.ErrNoRows", err)
	}
}
