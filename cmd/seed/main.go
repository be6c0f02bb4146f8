package main

import (
	"context"
	"fmt"
	"time"

	"github.com/treinahub/treinahub-backend/internal/config"
	"github.com/treinahub/treinahub-backend/internal/database"
	"github.com/treinahub/treinahub-backend/internal/logger"
	"github.com/treinahub/treinahub-backend/internal/model"
	"github.com/treinahub/treinahub-backend/internal/repository"
	"github.com/treinahub/treinahub-backend/internal/service"
)

// Seeds a small sample catalog with sessions and enrollments for local
// development. Safe to run more than once except for the fixed emails,
// which will be rejected as duplicates.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseRepo := repository.NewCourseRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)

	courseService := service.NewCourseService(courseRepo, sessionRepo, log)
	sessionService := service.NewSessionService(sessionRepo, courseRepo, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, sessionRepo, log)

	fmt.Println("=== Seeding sample catalog ===")

	instructor := "Ana Beatriz Costa"
	courses := []*model.Course{
		{Name: "React Avançado", Vendor: "Meta", SuggestedInstructor: &instructor},
		{Name: "Go para Backends", Vendor: "Google"},
		{Name: "Kubernetes na Prática", Vendor: "CNCF"},
	}
	for _, c := range courses {
		if err := courseService.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("Failed to seed course")
		}
		fmt.Printf("Course %q created with ID %d\n", c.Name, c.ID)
	}

	timeRange := "09:00 - 18:00"
	location := "Online"
	nextWeek := model.Date{Time: time.Now().AddDate(0, 0, 7)}
	sessions := []*model.Session{
		{CourseID: courses[0].ID, StartDate: nextWeek, TimeRange: &timeRange, Location: &location},
		{CourseID: courses[1].ID, StartDate: model.Date{Time: time.Now().AddDate(0, 1, 0)}},
	}
	for _, s := range sessions {
		if err := sessionService.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Int("course_id", s.CourseID).Msg("Failed to seed session")
		}
		fmt.Printf("Session %d scheduled for %s\n", s.ID, s.StartDate)
	}

	enrollments := []*model.Enrollment{
		{FullName: "Pedro Oliveira", Email: "pedro@email.com", SessionID: sessions[0].ID, Paid: true},
		{FullName: "Mariana Silva", Email: "mariana@email.com", SessionID: sessions[0].ID},
	}
	for _, e := range enrollments {
		if err := enrollmentService.Create(ctx, e); err != nil {
			log.Fatal().Err(err).Str("email", e.Email).Msg("Failed to seed enrollment")
		}
		fmt.Printf("Enrolled %s into session %d\n", e.FullName, e.SessionID)
	}

	fmt.Println("=== Done ===")
}
