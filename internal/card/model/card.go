package model

import (
	"fmt"
	"time"
)

// VoterCardRequest is the immutable application snapshot a card is rendered
// from. Callers pass validated, approved application data; the card module
// only re-checks structural completeness.
type VoterCardRequest struct {
	VIN              string    `json:"vin"`
	ApplicationRef   string    `json:"application_ref"`
	FirstName        string    `json:"first_name"`
	MiddleName       string    `json:"middle_name,omitempty"`
	Surname          string    `json:"surname"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	State            string    `json:"state"`
	LGA              string    `json:"lga"`
	Ward             string    `json:"ward"`
	PassportPhotoURL string    `json:"passport_photo_url,omitempty"`
	IssueDate        time.Time `json:"issue_date"`
}

// Validate checks structural completeness of the snapshot.
func (r *VoterCardRequest) Validate(now time.Time) error {
	if r.VIN == "" {
		return fmt.Errorf("vin is required")
	}
	if r.ApplicationRef == "" {
		return fmt.Errorf("application reference is required")
	}
	if r.FirstName == "" || r.Surname == "" {
		return fmt.Errorf("first name and surname are required")
	}
	if r.DateOfBirth.IsZero() {
		return fmt.Errorf("date of birth is required")
	}
	if r.IssueDate.After(now) {
		return fmt.Errorf("issue date cannot be in the future")
	}
	return nil
}

// StoredArtifact is the result of one issuance: the public URL of the
// uploaded PDF and the display card id derived from the application ref.
type StoredArtifact struct {
	URL    string `json:"url"`
	CardID string `json:"card_id"`
}
