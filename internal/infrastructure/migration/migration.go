package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup.
// Every statement is idempotent so re-running on boot is safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	migrations := []Migration{
		{Name: "create_visa_jobs", Up: createVisaJobs},
		{Name: "create_visa_applications", Up: createVisaApplications},
		{Name: "create_jobs", Up: createJobs},
		{Name: "create_job_applications", Up: createJobApplications},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		log.Info("migration completed", zap.String("name", m.Name))
	}
	return nil
}

func createVisaJobs(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS visa_jobs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			country TEXT NOT NULL,
			visa_type TEXT NOT NULL,
			salary TEXT NOT NULL,
			contract_duration TEXT NOT NULL DEFAULT '',
			vacancies INTEGER NOT NULL DEFAULT 0,
			processing_time TEXT NOT NULL DEFAULT '',
			includes TEXT[] NOT NULL DEFAULT '{}',
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func createVisaApplications(ctx context.Context, pool *pgxpool.Pool) error {
	// reference_id is unique; the submission flow redraws on conflict
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS visa_applications (
			id UUID PRIMARY KEY,
			visa_job_id UUID NOT NULL REFERENCES visa_jobs(id) ON DELETE CASCADE,
			reference_id TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			passport_number TEXT NOT NULL,
			contact_number TEXT NOT NULL,
			email TEXT NOT NULL,
			desired_country TEXT NOT NULL DEFAULT '',
			job_role TEXT NOT NULL DEFAULT '',
			expected_salary TEXT NOT NULL DEFAULT '',
			education_qualification TEXT NOT NULL DEFAULT '',
			years_of_experience TEXT NOT NULL DEFAULT '',
			applied_date TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func createJobs(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			salary TEXT NOT NULL DEFAULT '',
			job_type TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func createJobApplications(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS job_applications (
			id UUID PRIMARY KEY,
			job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			cover_note TEXT NOT NULL DEFAULT '',
			resume_path TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}
