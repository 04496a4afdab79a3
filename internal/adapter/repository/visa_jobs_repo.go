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

type VisaJobsRepo struct {
	pool *pgxpool.Pool
}

func NewVisaJobsRepo(pool *pgxpool.Pool) *VisaJobsRepo {
	return &VisaJobsRepo{pool: pool}
}

const visaJobColumns = `id, title, country, visa_type, salary, contract_duration, vacancies, processing_time, includes, description, created_at, updated_at`

func (r *VisaJobsRepo) List(ctx context.Context) ([]domain.VisaJob, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+visaJobColumns+` FROM visa_jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list visa jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.VisaJob{}
	for rows.Next() {
		var j domain.VisaJob
		if err := rows.Scan(&j.ID, &j.Title, &j.Country, &j.VisaType, &j.Salary, &j.ContractDuration,
			&j.Vacancies, &j.ProcessingTime, &j.Includes, &j.Description, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan visa job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *VisaJobsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.VisaJob, error) {
	var j domain.VisaJob
	err := r.pool.QueryRow(ctx, `SELECT `+visaJobColumns+` FROM visa_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Title, &j.Country, &j.VisaType, &j.Salary, &j.ContractDuration,
			&j.Vacancies, &j.ProcessingTime, &j.Includes, &j.Description, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("visa job %s: %w", id, usecase.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get visa job: %w", err)
	}
	return &j, nil
}

func (r *VisaJobsRepo) Create(ctx context.Context, j *domain.VisaJob) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO visa_jobs (`+visaJobColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		j.ID, j.Title, j.Country, j.VisaType, j.Salary, j.ContractDuration,
		j.Vacancies, j.ProcessingTime, j.Includes, j.Description, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create visa job: %w", err)
	}
	return nil
}

func (r *VisaJobsRepo) Update(ctx context.Context, j *domain.VisaJob) error {
	tag, err := r.pool.Exec(ctx, `UPDATE visa_jobs SET title=$2, country=$3, visa_type=$4, salary=$5,
		contract_duration=$6, vacancies=$7, processing_time=$8, includes=$9, description=$10, updated_at=$11
		WHERE id=$1`,
		j.ID, j.Title, j.Country, j.VisaType, j.Salary, j.ContractDuration,
		j.Vacancies, j.ProcessingTime, j.Includes, j.Description, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update visa job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visa job %s: %w", j.ID, usecase.ErrNotFound)
	}
	return nil
}

func (r *VisaJobsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM visa_jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete visa job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visa job %s: %w", id, usecase.ErrNotFound)
	}
	return nil
}
