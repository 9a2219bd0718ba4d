package application

import (
	"fmt"
	"time"

	"github.com/evoteng/voter-card-api/internal/application/model"
)

var allowedGenders = map[string]bool{
	"MALE":   true,
	"FEMALE": true,
}

// validateSubmitRequest checks structural completeness of a submission.
// Eligibility rules beyond structure (residency, registration windows) are
// reviewed by administrators, not enforced here.
func validateSubmitRequest(req model.ApplicationAPIRequest) (time.Time, error) {
	required := []struct {
		name  string
		value string
	}{
		{"first_name", req.FirstName},
		{"surname", req.Surname},
		{"date_of_birth", req.DateOfBirth},
		{"gender", req.Gender},
		{"state", req.State},
		{"lga", req.LGA},
		{"ward", req.Ward},
	}
	for _, f := range required {
		if f.value == "" {
			return time.Time{}, fmt.Errorf("%s is required", f.name)
		}
	}

	if !allowedGenders[req.Gender] {
		return time.Time{}, fmt.Errorf("gender must be MALE or FEMALE, got %q", req.Gender)
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return time.Time{}, fmt.Errorf("date_of_birth must be YYYY-MM-DD: %v", err)
	}
	if !dob.Before(time.Now()) {
		return time.Time{}, fmt.Errorf("date_of_birth must be in the past")
	}

	return dob, nil
}
