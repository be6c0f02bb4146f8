package model

// Course is a catalog entry: a trainable subject offered by a vendor.
// It does not represent a scheduled event; see Session for that.
type Course struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Vendor              string  `json:"vendor"`
	SuggestedInstructor *string `json:"suggested_instructor"`
}

// CreateCourseRequest is the payload for adding a catalog entry.
type CreateCourseRequest struct {
	Name                string  `json:"name" binding:"required,min=1,max=150"`
	Vendor              string  `json:"vendor" binding:"required,min=1,max=100"`
	SuggestedInstructor *string `json:"suggested_instructor" binding:"omitempty,max=150"`
}

// DeleteCourseRequest identifies the catalog entry to remove. The current
// course name must be sent along with the id and is cross-checked server
// side before anything is deleted.
type DeleteCourseRequest struct {
	ID   int    `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}
