package model

// Enrollment is a person registered into a specific session.
type Enrollment struct {
	ID        int    `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Paid      bool   `json:"paid"`
	SessionID int    `json:"session_id"`
}

// SessionRoster is the enrollment listing of a single session, enriched
// with the course name and suggested instructor of its parent course.
type SessionRoster struct {
	CourseName          string       `json:"course_name"`
	SuggestedInstructor *string      `json:"suggested_instructor"`
	Enrollments         []Enrollment `json:"enrollments"`
}

// CreateEnrollmentRequest registers a person into a session.
type CreateEnrollmentRequest struct {
	FullName  string `json:"full_name" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email,max=120"`
	SessionID int    `json:"session_id" binding:"required"`
	Paid      *bool  `json:"paid"`
}

// UpdateEnrollmentRequest carries the mutable enrollment fields. Only
// fields present in the body are applied.
type UpdateEnrollmentRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=120"`
	Paid     *bool   `json:"paid"`
}
