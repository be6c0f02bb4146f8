package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/treinahub/treinahub-backend/internal/model"
)

func TestListEnrollmentsEmpty(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/alunos/", nil)
	wantStatus(t, w, http.StatusOK)

	var listed struct {
		Enrollments []model.Enrollment `json:"enrollments"`
	}
	decodeData(t, w, &listed)
	if listed.Enrollments == nil {
		t.Error("empty listing must serialize as [], not null")
	}
}

func TestCreateEnrollment(t *testing.T) {
	env := newTestEnv(t)
	sess := seedEnrollableSession(t, env)

	w := env.do(t, http.MethodPost, "/alunos/", map[string]interface{}{
		"full_name": "Pedro Oliveira", "email": "pedro@email.com", "session_id": sess.ID,
	})
	wantStatus(t, w, http.StatusCreated)

	var created struct {
		Enrollment model.Enrollment `json:"enrollment"`
	}
	decodeData(t, w, &created)
	if created.Enrollment.ID == 0 {
		t.Error("enrollment must carry a generated id")
	}
	if created.Enrollment.Paid {
		t.Error("paid must default to false")
	}
	if created.Enrollment.SessionID != sess.ID {
		t.Errorf("session_id = %d", created.Enrollment.SessionID)
	}
}

func TestCreateEnrollmentMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/alunos/", map[string]interface{}{
		"full_name": "Pedro Oliveira",
	})
	wantStatus(t, w, http.StatusBadRequest)
	e := wantErrorCode(t, w, "VALIDATION_ERROR")
	if _, ok := e.Error.Fields["email"]; !ok {
		t.Errorf("expected a field error for email, got %v", e.Error.Fields)
	}
}

func TestCreateEnrollmentUnknownSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/alunos/", map[string]interface{}{
		"full_name": "Pedro Oliveira", "email": "pedro@email.com", "session_id": 64,
	})
	wantStatus(t, w, http.StatusNotFound)
	if env.enrollments.Len() != 0 {
		t.Error("no enrollment row may exist after a rejected create")
	}
}

func TestCreateEnrollmentDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	sess := seedEnrollableSession(t, env)

	w := env.do(t, http.MethodPost, "/alunos/", map[string]interface{}{
		"full_name": "Pedro Oliveira", "email": "pedro@email.com", "session_id": sess.ID,
	})
	wantStatus(t, w, http.StatusCreated)

	w = env.do(t, http.MethodPost, "/alunos/", map[string]interface{}{
		"full_name": "Outro Pedro", "email": "pedro@email.com", "session_id": sess.ID,
	})
	wantStatus(t, w, http.StatusConflict)
	e := wantErrorCode(t, w, "DUPLICATE_EMAIL")
	if !strings.Contains(e.Error.Message, "pedro@email.com") {
		t.Errorf("conflict message must name the email, got %q", e.Error.Message)
	}
	if env.enrollments.Len() != 1 {
		t.Error("duplicate must not create a second row")
	}
}

func TestRosterBySession(t *testing.T) {
	env := newTestEnv(t)
	sess := seedEnrollableSession(t, env)
	other := seedEnrollableSession(t, env)

	seedEnrollment(t, env, "Pedro Oliveira", "pedro@email.com", sess.ID)
	seedEnrollment(t, env, "Mariana Silva", "mariana@email.com", sess.ID)
	seedEnrollment(t, env, "De Outra Turma", "outra@email.com", other.ID)

	w := env.do(t, http.MethodGet, "/alunos/?session_id=1", nil)
	wantStatus(t, w, http.StatusOK)

	var roster model.SessionRoster
	decodeData(t, w, &roster)
	if roster.CourseName != "React Avançado" {
		t.Errorf("course_name = %q", roster.CourseName)
	}
	if roster.SuggestedInstructor == nil || *roster.SuggestedInstructor != "Ana Beatriz Costa" {
		t.Errorf("suggested_instructor = %v", roster.SuggestedInstructor)
	}
	if len(roster.Enrollments) != 2 {
		t.Errorf("len(enrollments) = %d, want 2", len(roster.Enrollments))
	}
}

func TestRosterUnknownSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/alunos/?session_id=55", nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestRosterBadSessionID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/alunos/?session_id=abc", nil)
	wantStatus(t, w, http.StatusBadRequest)
	wantErrorCode(t, w, "INVALID_ID")
}

func TestUpdateEnrollmentPartialPaid(t *testing.T) {
	env := newTestEnv(t)
	sess := seedEnrollableSession(t, env)
	e := seedEnrollment(t, env, "Pedro Oliveira", "pedro@email.com", sess.ID)

	w := env.do(t, http.MethodPut, "/alunos/1", map[string]interface{}{"paid": true})
	wantStatus(t, w, http.StatusOK)

	var updated struct {
		Enrollment model.Enrollment `json:"enrollment"`
	}
	decodeData(t, w, &updated)
	if !updated.Enrollment.Paid {
		t.Error("paid not applied")
	}
	if updated.Enrollment.FullName != e.FullName || updated.Enrollment.Email != e.Email {
		t.Errorf("untouched fields changed: %+v", updated.Enrollment)
	}
}

func TestUpdateEnrollmentUnknownID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/alunos/9", map[string]interface{}{"paid": true})
	wantStatus(t, w, http.StatusNotFound)
}

func TestDeleteEnrollment(t *testing.T) {
	env := newTestEnv(t)
	sess := seedEnrollableSession(t, env)
	seedEnrollment(t, env, "Pedro Oliveira", "pedro@email.com", sess.ID)

	w := env.do(t, http.MethodDelete, "/alunos/1", nil)
	wantStatus(t, w, http.StatusOK)

	w = env.do(t, http.MethodDelete, "/alunos/1", nil)
	wantStatus(t, w, http.StatusNotFound)
}

func seedEnrollableSession(t *testing.T, env *testEnv) *model.Session {
	t.Helper()
	instructor := "Ana Beatriz Costa"
	course := seedCourse(t, env, "React Avançado", "Meta", &instructor)
	return seedSession(t, env, course.ID, model.Date{Time: time.Now().AddDate(0, 0, 14)})
}

func seedEnrollment(t *testing.T, env *testEnv, name, email string, sessionID int) *model.Enrollment {
	t.Helper()
	e := &model.Enrollment{FullName: name, Email: email, SessionID: sessionID}
	if err := env.enrollments.Create(context.Background(), e); err != nil {
		t.Fatal(err)
	}
	return e
}
