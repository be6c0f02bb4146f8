package model

// Session statuses observed in practice. The set is open: the column is
// plain text and values outside this list are stored as-is.
const (
	SessionStatusScheduled  = "Scheduled"
	SessionStatusInProgress = "In Progress"
	SessionStatusCompleted  = "Completed"
	SessionStatusCancelled  = "Cancelled"
)

// Session is a scheduled occurrence of a catalog course. Its JSON form
// embeds the parent course under "course".
type Session struct {
	ID        int     `json:"id"`
	CourseID  int     `json:"course_id"`
	StartDate Date    `json:"start_date"`
	TimeRange *string `json:"time_range"`
	Location  *string `json:"location"`
	Status    string  `json:"status"`
	Course    *Course `json:"course"`
}

// CreateSessionRequest schedules a catalog course.
type CreateSessionRequest struct {
	CourseID  int     `json:"course_id" binding:"required"`
	StartDate Date    `json:"start_date" binding:"required"`
	TimeRange *string `json:"time_range" binding:"omitempty,max=50"`
	Location  *string `json:"location" binding:"omitempty,max=150"`
	Status    *string `json:"status" binding:"omitempty,max=50"`
}

// UpdateSessionRequest carries the mutable session fields. Only fields
// present in the body are applied; everything else is left untouched.
type UpdateSessionRequest struct {
	Status    *string `json:"status" binding:"omitempty,max=50"`
	StartDate *Date   `json:"start_date"`
	Location  *string `json:"location" binding:"omitempty,max=150"`
}
