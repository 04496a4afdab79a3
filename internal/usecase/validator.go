package usecase

import (
	"regexp"
	"strings"

	"activevacancy/internal/domain"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateApplicationForm checks the required fields of a visa application
// form. It returns a field→message map for every failing field; the form
// passes iff the map is empty. Optional fields never produce errors.
func ValidateApplicationForm(form domain.VisaApplicationForm) (map[string]string, bool) {
	errs := map[string]string{}
	if strings.TrimSpace(form.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(form.PassportNumber) == "" {
		errs["passportNumber"] = "Passport number is required"
	}
	if strings.TrimSpace(form.ContactNumber) == "" {
		errs["contactNumber"] = "Contact number is required"
	}
	email := strings.TrimSpace(form.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Email is invalid"
	}
	return errs, len(errs) == 0
}

// ValidationError carries the per-field messages of a failed form check so
// the HTTP boundary can surface them next to each input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		parts = append(parts, f)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
