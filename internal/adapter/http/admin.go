package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"time"

	"activevacancy/internal/auth"
	"activevacancy/internal/domain"
	"activevacancy/internal/model"
	"activevacancy/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VisaJobsStore extends the read surface with the admin mutations.
type VisaJobsStore interface {
	usecase.VisaJobsRepo
	Create(ctx context.Context, j *domain.VisaJob) error
	Update(ctx context.Context, j *domain.VisaJob) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminHandler serves the back-office behind the bearer-token middleware.
type AdminHandler struct {
	visaJobs  VisaJobsStore
	visaApps  usecase.VisaApplicationsRepo
	jobs      JobsStore
	cache     usecase.VisaJobsCache
	tokens    *auth.TokenService
	username  string
	password  string
	schemaDir string
	log       *zap.Logger
}

func NewAdminHandler(visaJobs VisaJobsStore, visaApps usecase.VisaApplicationsRepo, jobs JobsStore,
	cache usecase.VisaJobsCache, tokens *auth.TokenService, username, password, schemaDir string, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		visaJobs: visaJobs, visaApps: visaApps, jobs: jobs, cache: cache,
		tokens: tokens, username: username, password: password, schemaDir: schemaDir, log: log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}
	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		h.log.Error("issue token failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}
	return c.JSON(fiber.Map{"token": token})
}

func (h *AdminHandler) CreateVisaJob(c *fiber.Ctx) error {
	payload, ok, errResp := h.parseVisaJobPayload(c)
	if !ok {
		return errResp
	}
	now := time.Now().UTC()
	job := payload.ToDomain(uuid.New(), now, now)
	if err := h.visaJobs.Create(c.Context(), &job); err != nil {
		h.log.Error("create visa job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create visa job"})
	}
	h.cache.Invalidate(c.Context())
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *AdminHandler) UpdateVisaJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	payload, ok, errResp := h.parseVisaJobPayload(c)
	if !ok {
		return errResp
	}
	existing, err := h.visaJobs.Get(c.Context(), id)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "visa job not found"})
	}
	if err != nil {
		h.log.Error("load visa job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load visa job"})
	}
	job := payload.ToDomain(id, existing.CreatedAt, time.Now().UTC())
	if err := h.visaJobs.Update(c.Context(), &job); err != nil {
		h.log.Error("update visa job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update visa job"})
	}
	h.cache.Invalidate(c.Context())
	return c.JSON(job)
}

func (h *AdminHandler) DeleteVisaJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.visaJobs.Delete(c.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "visa job not found"})
		}
		h.log.Error("delete visa job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete visa job"})
	}
	h.cache.Invalidate(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

// parseVisaJobPayload validates the raw body against the JSON schema before
// binding, so admin typos surface as schema errors rather than silent zeroes.
// When ok is false the error response has already been written.
func (h *AdminHandler) parseVisaJobPayload(c *fiber.Ctx) (payload model.VisaJobPayload, ok bool, errResp error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return payload, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateVisaJobMap(raw, h.schemaDir); err != nil {
		return payload, false, c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return payload, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return payload, true, nil
}

func (h *AdminHandler) CreateJob(c *fiber.Ctx) error {
	var payload model.JobPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if payload.Title == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fiber.Map{"title": "Title is required"}})
	}
	now := time.Now().UTC()
	job := payload.ToDomain(uuid.New(), now, now)
	if err := h.jobs.Create(c.Context(), &job); err != nil {
		h.log.Error("create job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create job"})
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *AdminHandler) UpdateJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var payload model.JobPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	existing, err := h.jobs.Get(c.Context(), id)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if err != nil {
		h.log.Error("load job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load job"})
	}
	job := payload.ToDomain(id, existing.CreatedAt, time.Now().UTC())
	if err := h.jobs.Update(c.Context(), &job); err != nil {
		h.log.Error("update job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update job"})
	}
	return c.JSON(job)
}

func (h *AdminHandler) DeleteJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.jobs.Delete(c.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
		}
		h.log.Error("delete job failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete job"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListVisaApplications returns the full records, passport numbers unmasked.
// Masking is a display concern of the referral document, not the admin view.
func (h *AdminHandler) ListVisaApplications(c *fiber.Ctx) error {
	apps, err := h.visaApps.List(c.Context())
	if err != nil {
		h.log.Error("list visa applications failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load applications"})
	}
	return c.JSON(apps)
}

func (h *AdminHandler) ListJobApplications(c *fiber.Ctx) error {
	apps, err := h.jobs.ListApplications(c.Context())
	if err != nil {
		h.log.Error("list job applications failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load applications"})
	}
	return c.JSON(apps)
}
