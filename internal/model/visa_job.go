package model

// Go models that match visa_job.schema.json, used for admin create/update
// payloads.

import (
	"time"

	"activevacancy/internal/domain"

	"github.com/google/uuid"
)

type VisaJobPayload struct {
	Title            string   `json:"title"`
	Country          string   `json:"country"`
	VisaType         string   `json:"visa_type"`
	Salary           string   `json:"salary"`
	ContractDuration string   `json:"contract_duration"`
	Vacancies        int      `json:"vacancies"`
	ProcessingTime   string   `json:"processing_time"`
	Includes         []string `json:"includes"`
	Description      string   `json:"description"`
}

// ToDomain materializes the payload as a posting with the given identity.
func (p VisaJobPayload) ToDomain(id uuid.UUID, createdAt, updatedAt time.Time) domain.VisaJob {
	return domain.VisaJob{
		ID:               id,
		Title:            p.Title,
		Country:          p.Country,
		VisaType:         p.VisaType,
		Salary:           p.Salary,
		ContractDuration: p.ContractDuration,
		Vacancies:        p.Vacancies,
		ProcessingTime:   p.ProcessingTime,
		Includes:         p.Includes,
		Description:      p.Description,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

type JobPayload struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	JobType     string `json:"job_type"`
	Description string `json:"description"`
}

func (p JobPayload) ToDomain(id uuid.UUID, createdAt, updatedAt time.Time) domain.Job {
	return domain.Job{
		ID:          id,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Salary:      p.Salary,
		JobType:     p.JobType,
		Description: p.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
