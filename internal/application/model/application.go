package model

import (
	"time"
)

// ApplicationStatus is the review lifecycle state of a registration.
type ApplicationStatus string

const (
	StatusPendingReview ApplicationStatus = "PENDING_REVIEW"
	StatusApproved      ApplicationStatus = "APPROVED"
	StatusRejected      ApplicationStatus = "REJECTED"
)

// ApplicationRecord is the persisted voter registration application. VIN is
// the durable record identifier; it doubles as the voter identification
// number printed on the card.
type ApplicationRecord struct {
	VIN              string
	ApplicationRef   string
	FirstName        string
	MiddleName       *string
	Surname          string
	DateOfBirth      time.Time
	Gender           string
	State            string
	LGA              string
	Ward             string
	PassportPhotoURL *string
	Status           ApplicationStatus
	VoterCardPdfURL  *string
	VoterCardID      *string
	CreatedTime      int64
	UpdatedTime      int64
}

// ApplicationAPIRequest is the external submission payload.
type ApplicationAPIRequest struct {
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name,omitempty"`
	Surname          string `json:"surname"`
	DateOfBirth      string `json:"date_of_birth"` // YYYY-MM-DD
	Gender           string `json:"gender"`
	State            string `json:"state"`
	LGA              string `json:"lga"`
	Ward             string `json:"ward"`
	PassportPhotoURL string `json:"passport_photo_url,omitempty"`
}

// ApplicationResponse is the external representation of a record.
type ApplicationResponse struct {
	VIN              string `json:"vin"`
	ApplicationRef   string `json:"application_ref"`
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name,omitempty"`
	Surname          string `json:"surname"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	State            string `json:"state"`
	LGA              string `json:"lga"`
	Ward             string `json:"ward"`
	PassportPhotoURL string `json:"passport_photo_url,omitempty"`
	Status           string `json:"status"`
	VoterCardPdfURL  string `json:"voter_card_pdf_url,omitempty"`
	VoterCardID      string `json:"voter_card_id,omitempty"`
	CreatedTime      int64  `json:"created_time"`
	UpdatedTime      int64  `json:"updated_time"`
}

// ApplicationSearchResponse is the paginated list wire format.
type ApplicationSearchResponse struct {
	Data     []ApplicationResponse     `json:"data"`
	Metadata ApplicationSearchMetadata `json:"metadata"`
}

type ApplicationSearchMetadata struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ToAPIResponse converts a record to its external representation.
func (r *ApplicationRecord) ToAPIResponse() *ApplicationResponse {
	resp := &ApplicationResponse{
		VIN:            r.VIN,
		ApplicationRef: r.ApplicationRef,
		FirstName:      r.FirstName,
		Surname:        r.Surname,
		DateOfBirth:    r.DateOfBirth.Format("2006-01-02"),
		Gender:         r.Gender,
		State:          r.State,
		LGA:            r.LGA,
		Ward:           r.Ward,
		Status:         string(r.Status),
		CreatedTime:    r.CreatedTime,
		UpdatedTime:    r.UpdatedTime,
	}
	if r.MiddleName != nil {
		resp.MiddleName = *r.MiddleName
	}
	if r.PassportPhotoURL != nil {
		resp.PassportPhotoURL = *r.PassportPhotoURL
	}
	if r.VoterCardPdfURL != nil {
		resp.VoterCardPdfURL = *r.VoterCardPdfURL
	}
	if r.VoterCardID != nil {
		resp.VoterCardID = *r.VoterCardID
	}
	return resp
}

// FullName renders the display name used on verification views.
func (r *ApplicationRecord) FullName() string {
	name := r.FirstName
	if r.MiddleName != nil && *r.MiddleName != "" {
		name += " " + *r.MiddleName
	}
	return name + " " + r.Surname
}
