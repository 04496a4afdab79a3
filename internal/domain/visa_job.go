package domain

import (
	"time"

	"github.com/google/uuid"
)

// VisaJob is a posting bundled with visa-sponsorship details. JSON tags match
// the public wire shape (snake_case, mongo-style `_id`).
type VisaJob struct {
	ID               uuid.UUID `json:"_id"`
	Title            string    `json:"title"`
	Country          string    `json:"country"`
	VisaType         string    `json:"visa_type"`
	Salary           string    `json:"salary"`
	ContractDuration string    `json:"contract_duration"`
	Vacancies        int       `json:"vacancies"`
	ProcessingTime   string    `json:"processing_time"`
	Includes         []string  `json:"includes"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
