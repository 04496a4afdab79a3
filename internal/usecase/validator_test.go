package usecase

import (
	"testing"

	"activevacancy/internal/domain"

	"github.com/stretchr/testify/assert"
)

func validForm() domain.VisaApplicationForm {
	return domain.VisaApplicationForm{
		FullName:       "Jane Candidate",
		PassportNumber: "AB123456",
		ContactNumber:  "+880123456789",
		Email:          "jane@example.com",
	}
}

func TestValidateApplicationForm(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.VisaApplicationForm)
		wantErrs map[string]string
	}{
		{
			name:     "valid form passes",
			mutate:   func(f *domain.VisaApplicationForm) {},
			wantErrs: map[string]string{},
		},
		{
			name:     "missing full name",
			mutate:   func(f *domain.VisaApplicationForm) { f.FullName = "" },
			wantErrs: map[string]string{"fullName": "Full name is required"},
		},
		{
			name:     "whitespace-only full name",
			mutate:   func(f *domain.VisaApplicationForm) { f.FullName = "   " },
			wantErrs: map[string]string{"fullName": "Full name is required"},
		},
		{
			name:     "missing passport",
			mutate:   func(f *domain.VisaApplicationForm) { f.PassportNumber = "" },
			wantErrs: map[string]string{"passportNumber": "Passport number is required"},
		},
		{
			name:     "missing contact",
			mutate:   func(f *domain.VisaApplicationForm) { f.ContactNumber = "" },
			wantErrs: map[string]string{"contactNumber": "Contact number is required"},
		},
		{
			name:     "missing email",
			mutate:   func(f *domain.VisaApplicationForm) { f.Email = "" },
			wantErrs: map[string]string{"email": "Email is required"},
		},
		{
			name:     "malformed email",
			mutate:   func(f *domain.VisaApplicationForm) { f.Email = "not-an-email" },
			wantErrs: map[string]string{"email": "Email is invalid"},
		},
		{
			name:     "email missing tld",
			mutate:   func(f *domain.VisaApplicationForm) { f.Email = "a@b" },
			wantErrs: map[string]string{"email": "Email is invalid"},
		},
		{
			name:   "minimal valid email",
			mutate: func(f *domain.VisaApplicationForm) { f.Email = "a@b.co" },
			wantErrs: map[string]string{},
		},
		{
			name: "all required missing",
			mutate: func(f *domain.VisaApplicationForm) {
				*f = domain.VisaApplicationForm{}
			},
			wantErrs: map[string]string{
				"fullName":       "Full name is required",
				"passportNumber": "Passport number is required",
				"contactNumber":  "Contact number is required",
				"email":          "Email is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs, ok := ValidateApplicationForm(form)
			assert.Equal(t, tt.wantErrs, errs)
			assert.Equal(t, len(tt.wantErrs) == 0, ok)
		})
	}
}

func TestOptionalFieldsNeverError(t *testing.T) {
	form := validForm()
	form.DesiredCountry = ""
	form.JobRole = ""
	form.ExpectedSalary = ""
	form.EducationQualification = ""
	form.YearsOfExperience = ""

	errs, ok := ValidateApplicationForm(form)
	assert.True(t, ok)
	assert.Empty(t, errs)
}
