package repository

import (
	"context"
	"errors"
	"fmt"

	"activevacancy/internal/domain"
	"activevacancy/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// JobsRepo stores general-board postings and their applications.
type JobsRepo struct {
	pool *pgxpool.Pool
}

func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

const jobColumns = `id, title, company, location, salary, job_type, description, created_at, updated_at`

func (r *JobsRepo) List(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.JobType,
			&j.Description, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *JobsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	var j domain.Job
	err := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary, &j.JobType,
			&j.Description, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("job %s: %w", id, usecase.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

func (r *JobsRepo) Create(ctx context.Context, j *domain.Job) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO jobs (`+jobColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		j.ID, j.Title, j.Company, j.Location, j.Salary, j.JobType, j.Description, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

func (r *JobsRepo) Update(ctx context.Context, j *domain.Job) error {
	tag, err := r.pool.Exec(ctx, `UPDATE jobs SET title=$2, company=$3, location=$4, salary=$5, job_type=$6,
		description=$7, updated_at=$8 WHERE id=$1`,
		j.ID, j.Title, j.Company, j.Location, j.Salary, j.JobType, j.Description, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", j.ID, usecase.ErrNotFound)
	}
	return nil
}

func (r *JobsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %s: %w", id, usecase.ErrNotFound)
	}
	return nil
}

func (r *JobsRepo) InsertApplication(ctx context.Context, a *domain.JobApplication) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO job_applications (id, job_id, name, email, phone, cover_note, resume_path, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.JobID, a.Name, a.Email, a.Phone, a.CoverNote, a.ResumePath, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert job application: %w", err)
	}
	return nil
}

func (r *JobsRepo) ListApplications(ctx context.Context) ([]domain.JobApplication, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, job_id, name, email, phone, cover_note, resume_path, created_at
		FROM job_applications ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.JobApplication{}
	for rows.Next() {
		var a domain.JobApplication
		if err := rows.Scan(&a.ID, &a.JobID, &a.Name, &a.Email, &a.Phone, &a.CoverNote, &a.ResumePath, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
