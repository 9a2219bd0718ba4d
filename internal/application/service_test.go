package application

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoteng/voter-card-api/internal/application/model"
	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
)

type mockApplicationStore struct {
	create             func(ctx context.Context, record *model.ApplicationRecord) error
	getByVIN           func(ctx context.Context, vin string) (*model.ApplicationRecord, error)
	list               func(ctx context.Context, limit, offset int) ([]model.ApplicationRecord, int, error)
	updateStatus       func(ctx context.Context, vin string, status model.ApplicationStatus, updatedTime int64) (int64, error)
	updateCardLocation func(ctx context.Context, vin, url, cardID string, updatedTime int64) (int64, error)
}

func (m *mockApplicationStore) Create(ctx context.Context, record *model.ApplicationRecord) error {
	return m.create(ctx, record)
}

func (m *mockApplicationStore) GetByVIN(ctx context.Context, vin string) (*model.ApplicationRecord, error) {
	return m.getByVIN(ctx, vin)
}

func (m *mockApplicationStore) List(ctx context.Context, limit, offset int) ([]model.ApplicationRecord, int, error) {
	return m.list(ctx, limit, offset)
}

func (m *mockApplicationStore) UpdateStatus(ctx context.Context, vin string, status model.ApplicationStatus, updatedTime int64) (int64, error) {
	return m.updateStatus(ctx, vin, status, updatedTime)
}

func (m *mockApplicationStore) UpdateCardLocation(ctx context.Context, vin, url, cardID string, updatedTime int64) (int64, error) {
	return m.updateCardLocation(ctx, vin, url, cardID, updatedTime)
}

var applicationRefPattern = regexp.MustCompile(`^EV-\d{4}-\d{6}$`)

func validSubmitRequest() model.ApplicationAPIRequest {
	return model.ApplicationAPIRequest{
		FirstName:   "Amina",
		MiddleName:  "Chidinma",
		Surname:     "Okafor",
		DateOfBirth: "1990-07-14",
		Gender:      "FEMALE",
		State:       "Lagos",
		LGA:         "Ikeja",
		Ward:        "Ward 04",
	}
}

func pendingRecord() *model.ApplicationRecord {
	return &model.ApplicationRecord{
		VIN:            "90f1b9c2-6d1e-4c2b-9a4c-1f2e3d4c5b6a",
		ApplicationRef: "EV-2026-000123",
		FirstName:      "Amina",
		Surname:        "Okafor",
		DateOfBirth:    time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC),
		Gender:         "FEMALE",
		State:          "Lagos",
		LGA:            "Ikeja",
		Ward:           "Ward 04",
		Status:         model.StatusPendingReview,
	}
}

func TestSubmitApplication(t *testing.T) {
	var created *model.ApplicationRecord
	store := &mockApplicationStore{
		create: func(ctx context.Context, record *model.ApplicationRecord) error {
			created = record
			return nil
		},
	}

	svc := newApplicationService(store)
	resp, svcErr := svc.SubmitApplication(context.Background(), validSubmitRequest())
	require.Nil(t, svcErr)
	require.NotNil(t, resp)
	require.NotNil(t, created)

	assert.Equal(t, string(model.StatusPendingReview), resp.Status)
	assert.NotEmpty(t, resp.VIN)
	_, err := uuid.Parse(resp.VIN)
	assert.NoError(t, err, "vin should be a UUID")
	assert.Regexp(t, applicationRefPattern, resp.ApplicationRef)
	assert.Equal(t, "1990-07-14", resp.DateOfBirth)
	assert.Equal(t, resp.CreatedTime, resp.UpdatedTime)
}

func TestSubmitApplicationValidation(t *testing.T) {
	store := &mockApplicationStore{
		create: func(ctx context.Context, record *model.ApplicationRecord) error {
			t.Fatal("create should not be reached for invalid input")
			return nil
		},
	}
	svc := newApplicationService(store)

	tests := []struct {
		name   string
		mutate func(*model.ApplicationAPIRequest)
	}{
		{"missing_first_name", func(r *model.ApplicationAPIRequest) { r.FirstName = "" }},
		{"missing_surname", func(r *model.ApplicationAPIRequest) { r.Surname = "" }},
		{"bad_gender", func(r *model.ApplicationAPIRequest) { r.Gender = "OTHER" }},
		{"bad_date_format", func(r *model.ApplicationAPIRequest) { r.DateOfBirth = "14/07/1990" }},
		{"future_date_of_birth", func(r *model.ApplicationAPIRequest) { r.DateOfBirth = "2099-01-01" }},
		{"missing_state", func(r *model.ApplicationAPIRequest) { r.State = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmitRequest()
			tt.mutate(&req)
			_, svcErr := svc.SubmitApplication(context.Background(), req)
			require.NotNil(t, svcErr)
			assert.Equal(t, serviceerror.ValidationError.Code, svcErr.Code)
		})
	}
}

func TestApproveApplication(t *testing.T) {
	record := pendingRecord()
	var updatedTo model.ApplicationStatus
	store := &mockApplicationStore{
		getByVIN: func(ctx context.Context, vin string) (*model.ApplicationRecord, error) {
			return record, nil
		},
		updateStatus: func(ctx context.Context, vin string, status model.ApplicationStatus, updatedTime int64) (int64, error) {
			updatedTo = status
			return 1, nil
		},
	}

	svc := newApplicationService(store)
	resp, svcErr := svc.ApproveApplication(context.Background(), record.VIN)
	require.Nil(t, svcErr)
	assert.Equal(t, string(model.StatusApproved), resp.Status)
	assert.Equal(t, model.StatusApproved, updatedTo)
}

func TestTransitionFromNonPendingConflicts(t *testing.T) {
	for _, status := range []model.ApplicationStatus{model.StatusApproved, model.StatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			record := pendingRecord()
			record.Status = status
			store := &mockApplicationStore{
				getByVIN: func(ctx context.Context, vin string) (*model.ApplicationRecord, error) {
					return record, nil
				},
				updateStatus: func(ctx context.Context, vin string, s model.ApplicationStatus, updatedTime int64) (int64, error) {
					t.Fatal("status update should not be reached")
					return 0, nil
				},
			}

			svc := newApplicationService(store)
			_, svcErr := svc.ApproveApplication(context.Background(), record.VIN)
			require.NotNil(t, svcErr)
			assert.Equal(t, serviceerror.ConflictError.Code, svcErr.Code)

			_, svcErr = svc.RejectApplication(context.Background(), record.VIN)
			require.NotNil(t, svcErr)
			assert.Equal(t, serviceerror.ConflictError.Code, svcErr.Code)
		})
	}
}

func TestGetRecordByVINNotFound(t *testing.T) {
	store := &mockApplicationStore{
		getByVIN: func(ctx context.Context, vin string) (*model.ApplicationRecord, error) {
			return nil, nil
		},
	}

	svc := newApplicationService(store)
	_, svcErr := svc.GetRecordByVIN(context.Background(), "missing")
	require.NotNil(t, svcErr)
	assert.Equal(t, serviceerror.ResourceNotFoundError.Code, svcErr.Code)
}

func TestApprovedSnapshot(t *testing.T) {
	record := pendingRecord()
	record.Status = model.StatusApproved
	middle := "Chidinma"
	record.MiddleName = &middle
	store := &mockApplicationStore{
		getByVIN: func(ctx context.Context, vin string) (*model.ApplicationRecord, error) {
			return record, nil
		},
	}

	svc := newApplicationService(store)
	snapshot, svcErr := svc.ApprovedSnapshot(context.Background(), record.VIN)
	require.Nil(t, svcErr)
	require.NotNil(t, snapshot)

	assert.Equal(t, record.VIN, snapshot.VIN)
	assert.Equal(t, record.ApplicationRef, snapshot.ApplicationRef)
	assert.Equal(t, "Chidinma", snapshot.MiddleName)
	assert.False(t, snapshot.IssueDate.IsZero())
	assert.False(t, snapshot.IssueDate.After(time.Now()))
}

func TestApprovedSnapshotRequiresApproval(t *testing.T) {
	store := &mockApplicationStore{
		getByVIN: func(ctx context.Context, vin string) (*model.ApplicationRecord, error) {
			return pendingRecord(), nil
		},
	}

	svc := newApplicationService(store)
	_, svcErr := svc.ApprovedSnapshot(context.Background(), pendingRecord().VIN)
	require.NotNil(t, svcErr)
	assert.Equal(t, serviceerror.ConflictError.Code, svcErr.Code)
}

func TestStoredCardLocation(t *testing.T) {
	record := pendingRecord()
	store := &mockApplicationStore{
		getByVIN: func(ctx context.Context, vin string) (*model.ApplicationRecord, error) {
			return record, nil
		},
	}
	svc := newApplicationService(store)

	artifact, svcErr := svc.StoredCardLocation(context.Background(), record.VIN)
	require.Nil(t, svcErr)
	assert.Nil(t, artifact, "no artifact before the first issuance")

	url := "https://store.test/voter-cards/abc-1.pdf"
	cardID := "VC-EV-2026-000123"
	record.VoterCardPdfURL = &url
	record.VoterCardID = &cardID

	artifact, svcErr = svc.StoredCardLocation(context.Background(), record.VIN)
	require.Nil(t, svcErr)
	require.NotNil(t, artifact)
	assert.Equal(t, url, artifact.URL)
	assert.Equal(t, cardID, artifact.CardID)
}

func TestPersistCardLocation(t *testing.T) {
	t.Run("persists", func(t *testing.T) {
		store := &mockApplicationStore{
			updateCardLocation: func(ctx context.Context, vin, url, cardID string, updatedTime int64) (int64, error) {
				return 1, nil
			},
		}
		svc := newApplicationService(store)
		assert.Nil(t, svc.PersistCardLocation(context.Background(), "vin", "url", "card"))
	})

	t.Run("missing_record", func(t *testing.T) {
		store := &mockApplicationStore{
			updateCardLocation: func(ctx context.Context, vin, url, cardID string, updatedTime int64) (int64, error) {
				return 0, nil
			},
		}
		svc := newApplicationService(store)
		svcErr := svc.PersistCardLocation(context.Background(), "vin", "url", "card")
		require.NotNil(t, svcErr)
		assert.Equal(t, serviceerror.ResourceNotFoundError.Code, svcErr.Code)
	})
}
