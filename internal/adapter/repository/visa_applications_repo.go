package repository

import (
	"context"
	"errors"
	"fmt"

	"activevacancy/internal/domain"
	"activevacancy/internal/usecase"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type VisaApplicationsRepo struct {
	pool *pgxpool.Pool
}

func NewVisaApplicationsRepo(pool *pgxpool.Pool) *VisaApplicationsRepo {
	return &VisaApplicationsRepo{pool: pool}
}

const visaAppColumns = `id, visa_job_id, reference_id, full_name, passport_number, contact_number, email,
	desired_country, job_role, expected_salary, education_qualification, years_of_experience, applied_date`

func (r *VisaApplicationsRepo) Insert(ctx context.Context, a *domain.VisaApplication) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO visa_applications (`+visaAppColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		a.ID, a.VisaJobID, a.ReferenceID, a.FullName, a.PassportNumber, a.ContactNumber, a.Email,
		a.DesiredCountry, a.JobRole, a.ExpectedSalary, a.EducationQualification, a.YearsOfExperience, a.AppliedDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("reference %s: %w", a.ReferenceID, usecase.ErrDuplicateReference)
		}
		return fmt.Errorf("insert visa application: %w", err)
	}
	return nil
}

func (r *VisaApplicationsRepo) GetByReference(ctx context.Context, reference string) (*domain.VisaApplication, error) {
	var a domain.VisaApplication
	err := r.pool.QueryRow(ctx, `SELECT `+visaAppColumns+` FROM visa_applications WHERE reference_id = $1`, reference).
		Scan(&a.ID, &a.VisaJobID, &a.ReferenceID, &a.FullName, &a.PassportNumber, &a.ContactNumber, &a.Email,
			&a.DesiredCountry, &a.JobRole, &a.ExpectedSalary, &a.EducationQualification, &a.YearsOfExperience, &a.AppliedDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("application %s: %w", reference, usecase.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get visa application: %w", err)
	}
	return &a, nil
}

func (r *VisaApplicationsRepo) List(ctx context.Context) ([]domain.VisaApplication, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+visaAppColumns+` FROM visa_applications ORDER BY applied_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list visa applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.VisaApplication{}
	for rows.Next() {
		var a domain.VisaApplication
		if err := rows.Scan(&a.ID, &a.VisaJobID, &a.ReferenceID, &a.FullName, &a.PassportNumber, &a.ContactNumber, &a.Email,
			&a.DesiredCountry, &a.JobRole, &a.ExpectedSalary, &a.EducationQualification, &a.YearsOfExperience, &a.AppliedDate); err != nil {
			return nil, fmt.Errorf("scan visa application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
