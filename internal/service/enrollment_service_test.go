package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/treinahub/treinahub-backend/internal/model"
	"github.com/treinahub/treinahub-backend/internal/repository"
	"github.com/treinahub/treinahub-backend/internal/storetest"
)

func newEnrollmentFixture(t *testing.T) (*EnrollmentService, *storetest.EnrollmentStore, *storetest.SessionStore) {
	t.Helper()
	enrollments := storetest.NewEnrollmentStore()
	sessions := storetest.NewSessionStore()
	return NewEnrollmentService(enrollments, sessions, zerolog.Nop()), enrollments, sessions
}

func seedSession(t *testing.T, sessions *storetest.SessionStore) *model.Session {
	t.Helper()
	instructor := "Ana Beatriz Costa"
	sess := &model.Session{
		CourseID:  1,
		StartDate: model.NewDate(2030, time.June, 1),
		Status:    model.SessionStatusScheduled,
		Course:    &model.Course{ID: 1, Name: "React Avançado", Vendor: "Meta", SuggestedInstructor: &instructor},
	}
	if err := sessions.Create(context.Background(), sess); err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestEnrollmentCreateUnknownSession(t *testing.T) {
	svc, enrollments, _ := newEnrollmentFixture(t)

	e := &model.Enrollment{FullName: "Pedro", Email: "pedro@email.com", SessionID: 123}
	if err := svc.Create(context.Background(), e); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("err = %v, want pgx.ErrNoRows", err)
	}
	if all, _ := enrollments.List(context.Background()); len(all) != 0 {
		t.Error("no enrollment row may exist after a failed create")
	}
}

func TestEnrollmentCreateDuplicateEmail(t *testing.T) {
	svc, _, sessions := newEnrollmentFixture(t)
	sess := seedSession(t, sessions)

	first := &model.Enrollment{FullName: "Pedro", Email: "pedro@email.com", SessionID: sess.ID}
	if err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := &model.Enrollment{FullName: "Outro Pedro", Email: "pedro@email.com", SessionID: sess.ID}
	if err := svc.Create(context.Background(), second); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestEnrollmentUpdatePartialPaid(t *testing.T) {
	svc, enrollments, sessions := newEnrollmentFixture(t)
	sess := seedSession(t, sessions)

	e := &model.Enrollment{FullName: "Pedro", Email: "pedro@email.com", SessionID: sess.ID}
	if err := enrollments.Create(context.Background(), e); err != nil {
		t.Fatal(err)
	}

	paid := true
	updated, err := svc.Update(context.Background(), e.ID, model.UpdateEnrollmentRequest{Paid: &paid})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if !updated.Paid {
		t.Error("Paid not applied")
	}
	if updated.FullName != "Pedro" || updated.Email != "pedro@email.com" || updated.SessionID != sess.ID {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestEnrollmentUpdateUnknownID(t *testing.T) {
	svc, _, _ := newEnrollmentFixture(t)

	name := "Alguém"
	_, err := svc.Update(context.Background(), 55, model.UpdateEnrollmentRequest{FullName: &name})
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("err = %v, want pgx.ErrNoRows", err)
	}
}

func TestEnrollmentDelete(t *testing.T) {
	svc, enrollments, sessions := newEnrollmentFixture(t)
	sess := seedSession(t, sessions)

	e := &model.Enrollment{FullName: "Pedro", Email: "pedro@email.com", SessionID: sess.ID}
	if err := enrollments.Create(context.Background(), e); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), e.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("second delete err = %v, want pgx.ErrNoRows", err)
	}
}

func TestRoster(t *testing.T) {
	svc, enrollments, sessions := newEnrollmentFixture(t)
	sess := seedSession(t, sessions)

	for _, e := range []*model.Enrollment{
		{FullName: "Pedro", Email: "pedro@email.com", SessionID: sess.ID},
		{FullName: "Mariana", Email: "mariana@email.com", SessionID: sess.ID, Paid: true},
		{FullName: "De outra turma", Email: "outro@email.com", SessionID: 999},
	} {
		if err := enrollments.Create(context.Background(), e); err != nil {
			t.Fatal(err)
		}
	}

	roster, err := svc.Roster(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}

	if roster.CourseName != "React Avançado" {
		t.Errorf("CourseName = %q", roster.CourseName)
	}
	if roster.SuggestedInstructor == nil || *roster.SuggestedInstructor != "Ana Beatriz Costa" {
		t.Errorf("SuggestedInstructor = %v", roster.SuggestedInstructor)
	}
	if len(roster.Enrollments) != 2 {
		t.Errorf("len(Enrollments) = %d, want 2", len(roster.Enrollments))
	}
}

func TestRosterUnknownSession(t *testing.T) {
	svc, _, _ := newEnrollmentFixture(t)

	if _, err := svc.Roster(context.Background(), 31); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("err = %v, want pgx.ErrNoRows", err)
	}
}
