package application

import (
	"context"
	"time"

	"github.com/evoteng/voter-card-api/internal/application/model"
	cardmodel "github.com/evoteng/voter-card-api/internal/card/model"
	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
	"github.com/evoteng/voter-card-api/internal/system/log"
	"github.com/evoteng/voter-card-api/internal/system/utils"
)

// ApplicationService defines the exported service interface. It also serves
// as the card module's application gateway and the verification module's
// record source.
type ApplicationService interface {
	SubmitApplication(ctx context.Context, req model.ApplicationAPIRequest) (*model.ApplicationResponse, *serviceerror.ServiceError)
	GetApplication(ctx context.Context, vin string) (*model.ApplicationResponse, *serviceerror.ServiceError)
	ListApplications(ctx context.Context, limit, offset int) ([]model.ApplicationResponse, int, *serviceerror.ServiceError)
	ApproveApplication(ctx context.Context, vin string) (*model.ApplicationResponse, *serviceerror.ServiceError)
	RejectApplication(ctx context.Context, vin string) (*model.ApplicationResponse, *serviceerror.ServiceError)

	// Record source for the verification module.
	GetRecordByVIN(ctx context.Context, vin string) (*model.ApplicationRecord, *serviceerror.ServiceError)

	// Application gateway for the card module.
	ApprovedSnapshot(ctx context.Context, vin string) (*cardmodel.VoterCardRequest, *serviceerror.ServiceError)
	StoredCardLocation(ctx context.Context, vin string) (*cardmodel.StoredArtifact, *serviceerror.ServiceError)
	PersistCardLocation(ctx context.Context, vin, url, cardID string) *serviceerror.ServiceError
}

type applicationService struct {
	store  applicationStore
	logger *log.Logger
}

func newApplicationService(store applicationStore) ApplicationService {
	return &applicationService{
		store:  store,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ApplicationService")),
	}
}

// SubmitApplication registers a new application in PENDING_REVIEW state.
func (s *applicationService) SubmitApplication(ctx context.Context, req model.ApplicationAPIRequest) (*model.ApplicationResponse, *serviceerror.ServiceError) {
	dob, err := validateSubmitRequest(req)
	if err != nil {
		return nil, serviceerror.CustomServiceError(serviceerror.ValidationError, err.Error())
	}

	now := time.Now()
	currentTime := utils.TimeToMillis(now)

	record := &model.ApplicationRecord{
		VIN:            utils.GenerateUUID(),
		ApplicationRef: utils.GenerateApplicationRef(now),
		FirstName:      req.FirstName,
		Surname:        req.Surname,
		DateOfBirth:    dob,
		Gender:         req.Gender,
		State:          req.State,
		LGA:            req.LGA,
		Ward:           req.Ward,
		Status:         model.StatusPendingReview,
		CreatedTime:    currentTime,
		UpdatedTime:    currentTime,
	}
	if req.MiddleName != "" {
		record.MiddleName = &req.MiddleName
	}
	if req.PassportPhotoURL != "" {
		record.PassportPhotoURL = &req.PassportPhotoURL
	}

	if err := s.store.Create(ctx, record); err != nil {
		s.logger.Error("Failed to create application", log.Error(err))
		return nil, serviceerror.CustomServiceError(serviceerror.DatabaseError, "Failed to create application")
	}

	s.logger.Info("Application submitted",
		log.String("vin", record.VIN),
		log.String("application_ref", record.ApplicationRef))

	return record.ToAPIResponse(), nil
}

// GetApplication returns the external view of a record.
func (s *applicationService) GetApplication(ctx context.Context, vin string) (*model.ApplicationResponse, *serviceerror.ServiceError) {
	record, svcErr := s.GetRecordByVIN(ctx, vin)
	if svcErr != nil {
		return nil, svcErr
	}
	return record.ToAPIResponse(), nil
}

// ListApplications returns paginated applications, newest first.
func (s *applicationService) ListApplications(ctx context.Context, limit, offset int) ([]model.ApplicationResponse, int, *serviceerror.ServiceError) {
	records, total, err := s.store.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list applications", log.Error(err))
		return nil, 0, serviceerror.CustomServiceError(serviceerror.DatabaseError, "Failed to list applications")
	}

	responses := make([]model.ApplicationResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *records[i].ToAPIResponse())
	}
	return responses, total, nil
}

// ApproveApplication transitions a pending application to APPROVED. The
// transition commits independently of card issuance: a failed issuance never
// rolls an approval back.
func (s *applicationService) ApproveApplication(ctx context.Context, vin string) (*model.ApplicationResponse, *serviceerror.ServiceError) {
	return s.transitionStatus(ctx, vin, model.StatusApproved)
}

// RejectApplication transitions a pending application to REJECTED.
func (s *applicationService) RejectApplication(ctx context.Context, vin string) (*model.ApplicationResponse, *serviceerror.ServiceError) {
	return s.transitionStatus(ctx, vin, model.StatusRejected)
}

func (s *applicationService) transitionStatus(ctx context.Context, vin string, target model.ApplicationStatus) (*model.ApplicationResponse, *serviceerror.ServiceError) {
	record, svcErr := s.GetRecordByVIN(ctx, vin)
	if svcErr != nil {
		return nil, svcErr
	}

	if record.Status != model.StatusPendingReview {
		return nil, serviceerror.CustomServiceError(serviceerror.ConflictError,
			"Application is already "+string(record.Status))
	}

	updatedTime := utils.GetCurrentTimeMillis()
	if _, err := s.store.UpdateStatus(ctx, vin, target, updatedTime); err != nil {
		s.logger.Error("Failed to update application status",
			log.String("vin", vin),
			log.String("target_status", string(target)),
			log.Error(err))
		return nil, serviceerror.CustomServiceError(serviceerror.DatabaseError, "Failed to update application status")
	}

	record.Status = target
	record.UpdatedTime = updatedTime

	s.logger.Info("Application status updated",
		log.String("vin", vin),
		log.String("status", string(target)))

	return record.ToAPIResponse(), nil
}

// GetRecordByVIN fetches a record or a not-found error.
func (s *applicationService) GetRecordByVIN(ctx context.Context, vin string) (*model.ApplicationRecord, *serviceerror.ServiceError) {
	record, err := s.store.GetByVIN(ctx, vin)
	if err != nil {
		s.logger.Error("Failed to fetch application", log.String("vin", vin), log.Error(err))
		return nil, serviceerror.CustomServiceError(serviceerror.DatabaseError, "Failed to fetch application")
	}
	if record == nil {
		return nil, serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError, "Application not found")
	}
	return record, nil
}

// ApprovedSnapshot builds the immutable card snapshot for an approved
// application. Issue date is the moment of the request; every issuance gets
// its own copy.
func (s *applicationService) ApprovedSnapshot(ctx context.Context, vin string) (*cardmodel.VoterCardRequest, *serviceerror.ServiceError) {
	record, svcErr := s.GetRecordByVIN(ctx, vin)
	if svcErr != nil {
		return nil, svcErr
	}

	if record.Status != model.StatusApproved {
		return nil, serviceerror.CustomServiceError(serviceerror.ConflictError,
			"Voter card can only be issued for approved applications")
	}

	snapshot := &cardmodel.VoterCardRequest{
		VIN:            record.VIN,
		ApplicationRef: record.ApplicationRef,
		FirstName:      record.FirstName,
		Surname:        record.Surname,
		DateOfBirth:    record.DateOfBirth,
		Gender:         record.Gender,
		State:          record.State,
		LGA:            record.LGA,
		Ward:           record.Ward,
		IssueDate:      time.Now(),
	}
	if record.MiddleName != nil {
		snapshot.MiddleName = *record.MiddleName
	}
	if record.PassportPhotoURL != nil {
		snapshot.PassportPhotoURL = *record.PassportPhotoURL
	}
	return snapshot, nil
}

// StoredCardLocation returns the previously persisted artifact, or nil when
// no card has been issued yet.
func (s *applicationService) StoredCardLocation(ctx context.Context, vin string) (*cardmodel.StoredArtifact, *serviceerror.ServiceError) {
	record, svcErr := s.GetRecordByVIN(ctx, vin)
	if svcErr != nil {
		return nil, svcErr
	}
	if record.VoterCardPdfURL == nil || record.VoterCardID == nil {
		return nil, nil
	}
	return &cardmodel.StoredArtifact{
		URL:    *record.VoterCardPdfURL,
		CardID: *record.VoterCardID,
	}, nil
}

// PersistCardLocation writes the issued card URL and id onto the record.
func (s *applicationService) PersistCardLocation(ctx context.Context, vin, url, cardID string) *serviceerror.ServiceError {
	affected, err := s.store.UpdateCardLocation(ctx, vin, url, cardID, utils.GetCurrentTimeMillis())
	if err != nil {
		s.logger.Error("Failed to persist card location", log.String("vin", vin), log.Error(err))
		return serviceerror.CustomServiceError(serviceerror.DatabaseError, "Failed to persist card location")
	}
	if affected == 0 {
		return serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError, "Application not found")
	}
	return nil
}
