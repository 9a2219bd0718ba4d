package verification

import (
	"context"
	"time"

	appmodel "github.com/evoteng/voter-card-api/internal/application/model"
	"github.com/evoteng/voter-card-api/internal/card"
	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
)

// VerificationRecord is the read-only public view of a verified voter. The
// status is always normalized to ACTIVE regardless of the stored enum value;
// non-approved records produce no view at all.
type VerificationRecord struct {
	Name       string    `json:"name"`
	VIN        string    `json:"vin"`
	CardID     string    `json:"card_id"`
	State      string    `json:"state"`
	LGA        string    `json:"lga"`
	Status     string    `json:"status"`
	VerifiedAt time.Time `json:"verified_at"`
}

// VerificationResponse is the public verification wire format.
type VerificationResponse struct {
	Valid bool                `json:"valid"`
	Voter *VerificationRecord `json:"voter,omitempty"`
}

// RecordSource is what the verification module needs from the application
// record owner.
type RecordSource interface {
	GetRecordByVIN(ctx context.Context, vin string) (*appmodel.ApplicationRecord, *serviceerror.ServiceError)
}

// VerificationService resolves public verification lookups.
type VerificationService interface {
	VerifyByVIN(ctx context.Context, vin string) (*VerificationResponse, *serviceerror.ServiceError)
}

type verificationService struct {
	records RecordSource
}

func newVerificationService(records RecordSource) VerificationService {
	return &verificationService{
		records: records,
	}
}

// VerifyByVIN answers a verification request. Unknown VINs and non-approved
// applications both yield valid=false; only real lookup failures error.
func (s *verificationService) VerifyByVIN(ctx context.Context, vin string) (*VerificationResponse, *serviceerror.ServiceError) {
	record, svcErr := s.records.GetRecordByVIN(ctx, vin)
	if svcErr != nil {
		if svcErr.Code == serviceerror.ResourceNotFoundError.Code {
			return &VerificationResponse{Valid: false}, nil
		}
		return nil, svcErr
	}

	view := BuildVerificationView(record, time.Now())
	if view == nil {
		return &VerificationResponse{Valid: false}, nil
	}
	return &VerificationResponse{Valid: true, Voter: view}, nil
}

// BuildVerificationView derives the public view from an application record,
// or nil when the record is not approved.
func BuildVerificationView(record *appmodel.ApplicationRecord, verifiedAt time.Time) *VerificationRecord {
	if record == nil || record.Status != appmodel.StatusApproved {
		return nil
	}
	return &VerificationRecord{
		Name:       record.FullName(),
		VIN:        record.VIN,
		CardID:     card.CardID(record.ApplicationRef),
		State:      record.State,
		LGA:        record.LGA,
		Status:     "ACTIVE",
		VerifiedAt: verifiedAt,
	}
}
