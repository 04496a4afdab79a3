package referral

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"activevacancy/internal/domain"
)

// Disclaimer is printed verbatim on every referral document.
const Disclaimer = "This referral document is a confirmation of application submission only. " +
	"It does not constitute a job offer, a visa grant, or a guarantee of employment. " +
	"All visa decisions rest solely with the immigration authorities of the destination country."

// Document is the render model for one referral artifact. Derived, never
// stored: built at render time from the submitted application and its source
// posting, with the passport number already masked.
type Document struct {
	ReferenceID  string
	IssuedDate   string
	Candidate    Candidate
	Position     Position
	Includes     []string
	Confirmation string
	Disclaimer   string
}

type Candidate struct {
	FullName               string
	PassportMasked         string
	ContactNumber          string
	Email                  string
	DesiredCountry         string
	JobRole                string
	ExpectedSalary         string
	EducationQualification string
	YearsOfExperience      string
}

type Position struct {
	Title            string
	Country          string
	VisaType         string
	Salary           string
	ContractDuration string
	ProcessingTime   string
}

// BuildDocument assembles the render model from a persisted application and
// its source posting. now supplies the issued date printed on the document.
func BuildDocument(app domain.VisaApplication, job domain.VisaJob, now time.Time) Document {
	issued := now.Format("January 2, 2006")
	return Document{
		ReferenceID: app.ReferenceID,
		IssuedDate:  issued,
		Candidate: Candidate{
			FullName:               app.FullName,
			PassportMasked:         MaskField(app.PassportNumber),
			ContactNumber:          app.ContactNumber,
			Email:                  app.Email,
			DesiredCountry:         app.DesiredCountry,
			JobRole:                app.JobRole,
			ExpectedSalary:         app.ExpectedSalary,
			EducationQualification: app.EducationQualification,
			YearsOfExperience:      app.YearsOfExperience,
		},
		Position: Position{
			Title:            job.Title,
			Country:          job.Country,
			VisaType:         job.VisaType,
			Salary:           job.Salary,
			ContractDuration: job.ContractDuration,
			ProcessingTime:   job.ProcessingTime,
		},
		Includes: job.Includes,
		Confirmation: fmt.Sprintf(
			"This is to confirm that %s has applied for the position of %s in %s through ActiveVacancy on %s. The application has been registered under reference %s and forwarded to the employer for review.",
			app.FullName, job.Title, job.Country, issued, app.ReferenceID),
		Disclaimer: Disclaimer,
	}
}

// TemplateRenderer renders a Document into the fixed A4 HTML layout.
type TemplateRenderer struct {
	tpl *template.Template
}

func NewTemplateRenderer(tplDir string) (*TemplateRenderer, error) {
	tpl, err := template.ParseFiles(filepath.Join(tplDir, "referral.html"))
	if err != nil {
		return nil, fmt.Errorf("parse referral template: %w", err)
	}
	return &TemplateRenderer{tpl: tpl}, nil
}

func (r *TemplateRenderer) RenderHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render referral document: %w", err)
	}
	return buf.String(), nil
}
