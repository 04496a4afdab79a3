package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job is a plain posting on the general board (no visa bundle).
type Job struct {
	ID          uuid.UUID `json:"_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	JobType     string    `json:"job_type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobApplication is a general-board submission with an uploaded resume.
type JobApplication struct {
	ID         uuid.UUID `json:"_id"`
	JobID      uuid.UUID `json:"job_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CoverNote  string    `json:"cover_note"`
	ResumePath string    `json:"resume_path"`
	CreatedAt  time.Time `json:"created_at"`
}
