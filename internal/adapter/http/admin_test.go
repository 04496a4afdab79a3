package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"activevacancy/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, f *fixture) string {
	t.Helper()
	resp, err := f.app.Test(jsonRequest(stdhttp.MethodPost, "/admin/login",
		map[string]string{"username": "admin", "password": "secret"}))
	require.NoError(t, err)
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func validVisaJobPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":     "Welder",
		"country":   "Poland",
		"visa_type": "Work Permit Type D",
		"salary":    "€1,200/month",
		"includes":  []string{"Accommodation", "Transport"},
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)

	resp, err := f.app.Test(jsonRequest(stdhttp.MethodPost, "/admin/login",
		map[string]string{"username": "admin", "password": "wrong"}))
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	f := newFixture(t)

	resp, err := f.app.Test(jsonRequest(stdhttp.MethodPost, "/admin/visa-jobs", validVisaJobPayload()))
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)

	req := jsonRequest(stdhttp.MethodPost, "/admin/visa-jobs", validVisaJobPayload())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not.a.token")
	resp, err = f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusUnauthorized, resp.StatusCode)
}

func TestAdminCreateVisaJob(t *testing.T) {
	f := newFixture(t)
	token := login(t, f)

	req := jsonRequest(stdhttp.MethodPost, "/admin/visa-jobs", validVisaJobPayload())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusCreated, resp.StatusCode)

	var created domain.VisaJob
	decodeBody(t, resp, &created)
	assert.Equal(t, "Welder", created.Title)
	assert.NotEmpty(t, created.ID)

	require.Len(t, f.visaJobs.jobs, 1)
	assert.Equal(t, 1, f.cache.invalidations, "mutation drops the cached listing")
}

func TestAdminCreateVisaJobSchemaRejection(t *testing.T) {
	f := newFixture(t)
	token := login(t, f)

	missingSalary := validVisaJobPayload()
	delete(missingSalary, "salary")
	req := jsonRequest(stdhttp.MethodPost, "/admin/visa-jobs", missingSalary)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, resp.StatusCode)

	unknownField := validVisaJobPayload()
	unknownField["bonus"] = "yes"
	req = jsonRequest(stdhttp.MethodPost, "/admin/visa-jobs", unknownField)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, resp.StatusCode)

	assert.Empty(t, f.visaJobs.jobs)
	assert.Zero(t, f.cache.invalidations)
}

func TestAdminUpdateVisaJob(t *testing.T) {
	f := newFixture(t)
	token := login(t, f)
	job := f.seedVisaJob("Welder", "Poland")

	payload := validVisaJobPayload()
	payload["title"] = "Senior Welder"
	req := jsonRequest(stdhttp.MethodPut, "/admin/visa-jobs/"+job.ID.String(), payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	assert.Equal(t, "Senior Welder", f.visaJobs.jobs[0].Title)
	assert.Equal(t, 1, f.cache.invalidations)
}

func TestAdminDeleteVisaJob(t *testing.T) {
	f := newFixture(t)
	token := login(t, f)
	job := f.seedVisaJob("Welder", "Poland")

	req := httptest.NewRequest(stdhttp.MethodDelete, "/admin/visa-jobs/"+job.ID.String(), nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusNoContent, resp.StatusCode)

	assert.Empty(t, f.visaJobs.jobs)
	assert.Equal(t, 1, f.cache.invalidations)

	// deleting again is a 404, not a silent no-op
	resp, err = f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
}

func TestAdminCreateJobRequiresTitle(t *testing.T) {
	f := newFixture(t)
	token := login(t, f)

	req := jsonRequest(stdhttp.MethodPost, "/admin/jobs", map[string]string{"company": "ACME"})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, f.jobs.jobs)
}

func TestAdminListVisaApplicationsUnmasked(t *testing.T) {
	f := newFixture(t)
	token := login(t, f)
	job := f.seedVisaJob("Welder", "Poland")
	seedApplication(f, job)

	req := httptest.NewRequest(stdhttp.MethodGet, "/admin/visa-applications", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var apps []domain.VisaApplication
	decodeBody(t, resp, &apps)
	require.Len(t, apps, 1)
	assert.Equal(t, "AB123456", apps[0].PassportNumber)
}
