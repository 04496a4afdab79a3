package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"activevacancy/internal/domain"
	"activevacancy/internal/referral"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateReference is returned by the applications repository when an
// insert collides on the reference id. The submission flow redraws.
var ErrDuplicateReference = errors.New("duplicate reference id")

const maxReferenceDraws = 5

// VisaApplicationsRepo persists submitted applications.
type VisaApplicationsRepo interface {
	Insert(ctx context.Context, app *domain.VisaApplication) error
	GetByReference(ctx context.Context, reference string) (*domain.VisaApplication, error)
	List(ctx context.Context) ([]domain.VisaApplication, error)
}

// Submission runs the application flow: validate, resolve the posting,
// persist with a server-issued reference id and applied date. Exactly one
// storage mutation happens per successful validation pass.
type Submission struct {
	jobs VisaJobsRepo
	apps VisaApplicationsRepo
	log  *zap.Logger
	now  func() time.Time
}

func NewSubmission(jobs VisaJobsRepo, apps VisaApplicationsRepo, log *zap.Logger) *Submission {
	return &Submission{jobs: jobs, apps: apps, log: log, now: time.Now}
}

func (s *Submission) Submit(ctx context.Context, form domain.VisaApplicationForm) (*domain.VisaApplication, error) {
	if fieldErrs, ok := ValidateApplicationForm(form); !ok {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	jobID, err := uuid.Parse(form.VisaJobID)
	if err != nil {
		return nil, fmt.Errorf("invalid visa_job_id: %w", ErrNotFound)
	}
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	app := &domain.VisaApplication{
		ID:                     uuid.New(),
		VisaJobID:              job.ID,
		FullName:               form.FullName,
		PassportNumber:         form.PassportNumber,
		ContactNumber:          form.ContactNumber,
		Email:                  form.Email,
		DesiredCountry:         form.DesiredCountry,
		JobRole:                form.JobRole,
		ExpectedSalary:         form.ExpectedSalary,
		EducationQualification: form.EducationQualification,
		YearsOfExperience:      form.YearsOfExperience,
		AppliedDate:            s.now(),
	}

	// the reference carries no uniqueness guarantee, so redraw on conflict
	for attempt := 0; attempt < maxReferenceDraws; attempt++ {
		app.ReferenceID = referral.NewReferenceID(s.now())
		err = s.apps.Insert(ctx, app)
		if !errors.Is(err, ErrDuplicateReference) {
			break
		}
		s.log.Warn("reference id collision, redrawing", zap.String("reference_id", app.ReferenceID))
	}
	if err != nil {
		return nil, fmt.Errorf("persist application: %w", err)
	}

	s.log.Info("visa application submitted",
		zap.String("reference_id", app.ReferenceID),
		zap.String("visa_job_id", job.ID.String()))
	return app, nil
}

// Document loads a submitted application by reference and assembles its
// referral render model. Only reachable after a confirmed submission, which
// keeps the ordering guarantee: no referral exists before the record does.
func (s *Submission) Document(ctx context.Context, reference string) (referral.Document, error) {
	app, err := s.apps.GetByReference(ctx, reference)
	if err != nil {
		return referral.Document{}, err
	}
	job, err := s.jobs.Get(ctx, app.VisaJobID)
	if err != nil {
		return referral.Document{}, err
	}
	return referral.BuildDocument(*app, *job, s.now()), nil
}
