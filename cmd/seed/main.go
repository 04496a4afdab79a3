// Seeds the local database with a handful of visa jobs and general postings
// for development.
package main

import (
	"context"
	"log"
	"time"

	repo "activevacancy/internal/adapter/repository"
	"activevacancy/internal/config"
	"activevacancy/internal/domain"
	"activevacancy/internal/infrastructure/migration"
	infra "activevacancy/pkg/infrastructure"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	zl, _ := zap.NewDevelopment()
	if err := migration.RunMigrations(ctx, pool, zl); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	now := time.Now().UTC()
	visaJobs := repo.NewVisaJobsRepo(pool)
	for _, j := range []domain.VisaJob{
		{
			ID: uuid.New(), Title: "Welder", Country: "Poland", VisaType: "Work Permit Type D",
			Salary: "PLN 4,500/month", ContractDuration: "2 years", Vacancies: 12,
			ProcessingTime: "45-60 days",
			Includes:       []string{"Accommodation", "Health insurance", "One-way air ticket"},
			Description:    "MIG/TIG welding in a shipyard environment.",
			CreatedAt:      now, UpdatedAt: now,
		},
		{
			ID: uuid.New(), Title: "Warehouse Operative", Country: "Qatar", VisaType: "Work Visa",
			Salary: "QAR 2,200/month", ContractDuration: "2 years", Vacancies: 30,
			ProcessingTime: "30-45 days",
			Includes:       []string{"Accommodation", "Transport", "Food allowance"},
			Description:    "Picking and packing in a logistics hub near Doha.",
			CreatedAt:      now, UpdatedAt: now,
		},
		{
			ID: uuid.New(), Title: "Care Assistant", Country: "United Kingdom", VisaType: "Health and Care Worker visa",
			Salary: "GBP 23,000/year", ContractDuration: "3 years", Vacancies: 8,
			ProcessingTime: "60-90 days",
			Includes:       []string{"Certificate of Sponsorship", "Relocation support"},
			Description:    "Residential care work with sponsored training.",
			CreatedAt:      now, UpdatedAt: now,
		},
	} {
		if err := visaJobs.Create(ctx, &j); err != nil {
			log.Fatalf("seed visa job: %v", err)
		}
	}

	jobs := repo.NewJobsRepo(pool)
	for _, j := range []domain.Job{
		{
			ID: uuid.New(), Title: "Frontend Developer", Company: "ActiveVacancy", Location: "Dhaka",
			Salary: "Negotiable", JobType: "Full-time", Description: "React work on the job board itself.",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New(), Title: "Recruitment Officer", Company: "ActiveVacancy", Location: "Chattogram",
			Salary: "BDT 35,000/month", JobType: "Full-time", Description: "Candidate screening and employer liaison.",
			CreatedAt: now, UpdatedAt: now,
		},
	} {
		if err := jobs.Create(ctx, &j); err != nil {
			log.Fatalf("seed job: %v", err)
		}
	}

	log.Println("seeded 3 visa jobs and 2 jobs")
}
