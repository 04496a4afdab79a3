// Renders the referral template with sample data to referral_preview.html so
// the A4 layout can be checked in a browser without a running server.
package main

import (
	"log"
	"os"
	"time"

	"activevacancy/internal/domain"
	"activevacancy/internal/referral"

	"github.com/google/uuid"
)

func main() {
	renderer, err := referral.NewTemplateRenderer("templates")
	if err != nil {
		log.Fatal(err)
	}

	app := domain.VisaApplication{
		ID:             uuid.New(),
		ReferenceID:    "AV-2025-0042",
		FullName:       "Md. Rahim Uddin",
		PassportNumber: "AB1234567",
		ContactNumber:  "+880 1712-345678",
		Email:          "rahim@example.com",
		DesiredCountry: "Poland",
		JobRole:        "Welder",
		AppliedDate:    time.Now(),
	}
	job := domain.VisaJob{
		Title: "Welder", Country: "Poland", VisaType: "Work Permit Type D",
		Salary: "PLN 4,500/month", ContractDuration: "2 years", ProcessingTime: "45-60 days",
		Includes: []string{"Accommodation", "Health insurance", "One-way air ticket"},
	}

	html, err := renderer.RenderHTML(referral.BuildDocument(app, job, time.Now()))
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("referral_preview.html", []byte(html), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote referral_preview.html")
}
