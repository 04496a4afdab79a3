package referral

import (
	"testing"
	"time"

	"activevacancy/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleApplication() domain.VisaApplication {
	return domain.VisaApplication{
		ID:             uuid.New(),
		ReferenceID:    "AV-2025-0042",
		FullName:       "Jane Candidate",
		PassportNumber: "AB123456",
		ContactNumber:  "+880123456789",
		Email:          "jane@example.com",
		JobRole:        "Welder",
		AppliedDate:    time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func sampleJob() domain.VisaJob {
	return domain.VisaJob{
		ID:               uuid.New(),
		Title:            "Welder",
		Country:          "Poland",
		VisaType:         "Work Permit Type D",
		Salary:           "PLN 4,500/month",
		ContractDuration: "2 years",
		ProcessingTime:   "45-60 days",
		Includes:         []string{"Accommodation", "Health insurance"},
	}
}

func TestBuildDocument(t *testing.T) {
	now := time.Date(2025, 1, 12, 15, 0, 0, 0, time.UTC)
	doc := BuildDocument(sampleApplication(), sampleJob(), now)

	assert.Equal(t, "AV-2025-0042", doc.ReferenceID)
	assert.Equal(t, "January 12, 2025", doc.IssuedDate)
	assert.Equal(t, "XXXX3456", doc.Candidate.PassportMasked)
	assert.Equal(t, "Jane Candidate", doc.Candidate.FullName)
	assert.Equal(t, "Welder", doc.Position.Title)
	assert.Equal(t, "Poland", doc.Position.Country)
	assert.Equal(t, []string{"Accommodation", "Health insurance"}, doc.Includes)
	assert.Equal(t, Disclaimer, doc.Disclaimer)

	// confirmation names candidate, role, country, date and reference
	for _, want := range []string{"Jane Candidate", "Welder", "Poland", "January 12, 2025", "AV-2025-0042"} {
		assert.Contains(t, doc.Confirmation, want)
	}
}

func TestTemplateRendererRenderHTML(t *testing.T) {
	renderer, err := NewTemplateRenderer("../../templates")
	require.NoError(t, err)

	doc := BuildDocument(sampleApplication(), sampleJob(), time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC))
	html, err := renderer.RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "AV-2025-0042")
	assert.Contains(t, html, "XXXX3456")
	assert.NotContains(t, html, "AB123456", "unmasked passport must never reach the document")
	assert.Contains(t, html, "Work Permit Type D")
	assert.Contains(t, html, "Accommodation")
	assert.Contains(t, html, Disclaimer)
}

func TestTemplateRendererMissingDir(t *testing.T) {
	_, err := NewTemplateRenderer(t.TempDir())
	assert.Error(t, err)
}
