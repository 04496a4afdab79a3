package domain

import (
	"time"

	"github.com/google/uuid"
)

// VisaApplicationForm is the submission payload for a visa job. All fields are
// candidate-supplied; the unmasked passport number is what gets persisted.
type VisaApplicationForm struct {
	VisaJobID              string `json:"visa_job_id"`
	FullName               string `json:"full_name"`
	PassportNumber         string `json:"passport_number"`
	ContactNumber          string `json:"contact_number"`
	Email                  string `json:"email"`
	DesiredCountry         string `json:"desired_country"`
	JobRole                string `json:"job_role"`
	ExpectedSalary         string `json:"expected_salary"`
	EducationQualification string `json:"education_qualification"`
	YearsOfExperience      string `json:"years_of_experience"`
}

// VisaApplication is a persisted submission. ReferenceID and AppliedDate are
// assigned server-side at insert time and are the authoritative values.
type VisaApplication struct {
	ID                     uuid.UUID `json:"_id"`
	VisaJobID              uuid.UUID `json:"visa_job_id"`
	ReferenceID            string    `json:"reference_id"`
	FullName               string    `json:"full_name"`
	PassportNumber         string    `json:"passport_number"`
	ContactNumber          string    `json:"contact_number"`
	Email                  string    `json:"email"`
	DesiredCountry         string    `json:"desired_country"`
	JobRole                string    `json:"job_role"`
	ExpectedSalary         string    `json:"expected_salary"`
	EducationQualification string    `json:"education_qualification"`
	YearsOfExperience      string    `json:"years_of_experience"`
	AppliedDate            time.Time `json:"applied_date"`
}
