package http

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"activevacancy/internal/domain"
	"activevacancy/internal/referral"
	"activevacancy/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentExporter runs the referral export pipeline.
type DocumentExporter interface {
	Export(ctx context.Context, doc referral.Document) ([]byte, error)
}

// JobsStore is the general-board storage surface.
type JobsStore interface {
	List(ctx context.Context) ([]domain.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	Create(ctx context.Context, j *domain.Job) error
	Update(ctx context.Context, j *domain.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	InsertApplication(ctx context.Context, a *domain.JobApplication) error
	ListApplications(ctx context.Context) ([]domain.JobApplication, error)
}

// Handler serves the public endpoints: listings, submissions, referral
// downloads.
type Handler struct {
	listing    *usecase.Listing
	submission *usecase.Submission
	exporter   DocumentExporter
	jobs       JobsStore
	uploadsDir string
	log        *zap.Logger
}

func NewHandler(listing *usecase.Listing, submission *usecase.Submission, exporter DocumentExporter, jobs JobsStore, uploadsDir string, log *zap.Logger) *Handler {
	return &Handler{listing: listing, submission: submission, exporter: exporter, jobs: jobs, uploadsDir: uploadsDir, log: log}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) ListVisaJobs(c *fiber.Ctx) error {
	jobs, err := h.listing.VisaJobs(c.Context(), c.Query("location"), c.Query("search"), c.QueryBool("refresh"))
	if err != nil {
		h.log.Error("list visa jobs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load visa jobs"})
	}
	return c.JSON(jobs)
}

func (h *Handler) GetVisaJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	job, err := h.listing.VisaJob(c.Context(), id)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "visa job not found"})
	}
	if err != nil {
		h.log.Error("get visa job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load visa job"})
	}
	return c.JSON(job)
}

type submissionResponse struct {
	ID          uuid.UUID `json:"_id"`
	ReferenceID string    `json:"reference_id"`
	AppliedDate string    `json:"applied_date"`
}

func (h *Handler) SubmitVisaApplication(c *fiber.Ctx) error {
	var form domain.VisaApplicationForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	app, err := h.submission.Submit(c.Context(), form)
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": vErr.Fields})
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "visa job not found"})
	case err != nil:
		h.log.Error("submit visa application failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit application"})
	}

	return c.Status(fiber.StatusCreated).JSON(submissionResponse{
		ID:          app.ID,
		ReferenceID: app.ReferenceID,
		AppliedDate: app.AppliedDate.Format("2006-01-02"),
	})
}

func (h *Handler) DownloadReferral(c *fiber.Ctx) error {
	reference := c.Params("reference")
	doc, err := h.submission.Document(c.Context(), reference)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "application not found"})
	}
	if err != nil {
		h.log.Error("load referral document failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load application"})
	}

	pdf, err := h.exporter.Export(c.Context(), doc)
	if err != nil {
		// surfaced, not silent: the record stays retrievable so the user can retry
		h.log.Error("referral export failed", zap.String("reference_id", reference), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "document export failed, please retry"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+referral.FileName(doc.ReferenceID)+`"`)
	return c.Send(pdf)
}

func (h *Handler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.List(c.Context())
	if err != nil {
		h.log.Error("list jobs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load jobs"})
	}
	return c.JSON(usecase.FilterJobs(jobs, c.Query("location"), c.Query("search")))
}

var basicEmail = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func nowUTC() time.Time { return time.Now().UTC() }

func (h *Handler) SubmitJobApplication(c *fiber.Ctx) error {
	fieldErrs := map[string]string{}
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	if name == "" {
		fieldErrs["name"] = "Name is required"
	}
	switch {
	case email == "":
		fieldErrs["email"] = "Email is required"
	case !basicEmail.MatchString(email):
		fieldErrs["email"] = "Email is invalid"
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fieldErrs})
	}

	jobID, err := uuid.Parse(c.FormValue("job_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job_id"})
	}
	if _, err := h.jobs.Get(c.Context(), jobID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
		}
		h.log.Error("load job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load job"})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "resume file is required"})
	}

	app := &domain.JobApplication{
		ID:        uuid.New(),
		JobID:     jobID,
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		CoverNote: strings.TrimSpace(c.FormValue("cover_note")),
		CreatedAt: nowUTC(),
	}
	app.ResumePath = filepath.Join(h.uploadsDir, app.ID.String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, app.ResumePath); err != nil {
		h.log.Error("store resume failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store resume"})
	}

	if err := h.jobs.InsertApplication(c.Context(), app); err != nil {
		h.log.Error("insert job application failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit application"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": app.ID})
}
