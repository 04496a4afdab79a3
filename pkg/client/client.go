// Package client is the consumer-side counterpart of the ActiveVacancy API:
// it fetches and filters the visa-job listing, runs the application form
// through local validation before any network call, and downloads referral
// documents. Every operation takes a context so an abandoned view can abort
// its in-flight request instead of committing a stale result.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"activevacancy/internal/domain"
	"activevacancy/internal/referral"
	"activevacancy/internal/usecase"
)

// ErrInvalidFormat is returned when the listing endpoint responds with
// something other than a JSON array.
var ErrInvalidFormat = errors.New("Invalid data format received")

// FieldErrors is a failed validation, either local or echoed by the server.
// No network call has mutated anything when this is returned.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return fmt.Sprintf("form validation failed (%d fields)", len(e.Fields))
}

// SubmissionResult carries the server-assigned identifiers. These are the
// authoritative values; the client never substitutes its own.
type SubmissionResult struct {
	ReferenceID string `json:"reference_id"`
	AppliedDate string `json:"applied_date"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchVisaJobs loads the full listing. location and search are applied
// locally with the same semantics the server uses, so a cached fetch can be
// re-filtered without another round trip.
func (c *Client) FetchVisaJobs(ctx context.Context, location, search string) ([]domain.VisaJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/visa-jobs", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch visa jobs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch visa jobs: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, ErrInvalidFormat
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrInvalidFormat
	}
	var jobs []domain.VisaJob
	if err := json.Unmarshal(trimmed, &jobs); err != nil {
		return nil, ErrInvalidFormat
	}
	return usecase.FilterVisaJobs(jobs, location, search), nil
}

// SubmitApplication runs local validation first; on failure it returns
// *FieldErrors without touching the network. On a validation pass exactly one
// POST is made. A server-side 422 also comes back as *FieldErrors so callers
// surface both the same way.
func (c *Client) SubmitApplication(ctx context.Context, form domain.VisaApplicationForm) (*SubmissionResult, error) {
	if fieldErrs, ok := usecase.ValidateApplicationForm(form); !ok {
		return nil, &FieldErrors{Fields: fieldErrs}
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/visa-job-applications", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit application: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var result SubmissionResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("decode submission response: %w", err)
		}
		return &result, nil
	case http.StatusUnprocessableEntity:
		var body struct {
			Errors map[string]string `json:"errors"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode validation response: %w", err)
		}
		return nil, &FieldErrors{Fields: body.Errors}
	default:
		return nil, fmt.Errorf("submit application: unexpected status %d", resp.StatusCode)
	}
}

// DownloadReferral fetches the rendered referral PDF for a reference id. The
// returned name comes from the Content-Disposition header, falling back to
// the canonical pattern.
func (c *Client) DownloadReferral(ctx context.Context, referenceID string) (pdf []byte, filename string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/visa-job-applications/"+referenceID+"/document", nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download referral: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download referral: unexpected status %d", resp.StatusCode)
	}

	pdf, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	filename = referral.FileName(referenceID)
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if name := params["filename"]; name != "" {
			filename = name
		}
	}
	return pdf, filename, nil
}

// OfflineReferenceID draws a non-authoritative tracking code for demo and
// offline use only. It must never be shown once a server response exists:
// the server-issued reference is the canonical identifier.
func OfflineReferenceID() string {
	return referral.NewReferenceID(time.Now())
}
