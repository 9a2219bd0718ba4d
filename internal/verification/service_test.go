package verification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmodel "github.com/evoteng/voter-card-api/internal/application/model"
	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
)

type mockRecordSource struct {
	getRecordByVIN func(ctx context.Context, vin string) (*appmodel.ApplicationRecord, *serviceerror.ServiceError)
}

func (m *mockRecordSource) GetRecordByVIN(ctx context.Context, vin string) (*appmodel.ApplicationRecord, *serviceerror.ServiceError) {
	return m.getRecordByVIN(ctx, vin)
}

func approvedRecord() *appmodel.ApplicationRecord {
	middle := "Chidinma"
	return &appmodel.ApplicationRecord{
		VIN:            "90f1b9c2-6d1e-4c2b-9a4c-1f2e3d4c5b6a",
		ApplicationRef: "EV-2026-000123",
		FirstName:      "Amina",
		MiddleName:     &middle,
		Surname:        "Okafor",
		DateOfBirth:    time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC),
		Gender:         "FEMALE",
		State:          "Lagos",
		LGA:            "Ikeja",
		Ward:           "Ward 04",
		Status:         appmodel.StatusApproved,
	}
}

func TestVerifyByVINApproved(t *testing.T) {
	source := &mockRecordSource{
		getRecordByVIN: func(ctx context.Context, vin string) (*appmodel.ApplicationRecord, *serviceerror.ServiceError) {
			return approvedRecord(), nil
		},
	}

	svc := newVerificationService(source)
	resp, svcErr := svc.VerifyByVIN(context.Background(), approvedRecord().VIN)
	require.Nil(t, svcErr)
	require.NotNil(t, resp)

	assert.True(t, resp.Valid)
	require.NotNil(t, resp.Voter)
	assert.Equal(t, "Amina Chidinma Okafor", resp.Voter.Name)
	assert.Equal(t, "VC-EV-2026-000123", resp.Voter.CardID)
	assert.Equal(t, "ACTIVE", resp.Voter.Status, "stored status must always be published as ACTIVE")
	assert.Equal(t, "Lagos", resp.Voter.State)
	assert.False(t, resp.Voter.VerifiedAt.IsZero())
}

func TestVerifyByVINUnknownVIN(t *testing.T) {
	source := &mockRecordSource{
		getRecordByVIN: func(ctx context.Context, vin string) (*appmodel.ApplicationRecord, *serviceerror.ServiceError) {
			return nil, serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError, "no application for vin")
		},
	}

	svc := newVerificationService(source)
	resp, svcErr := svc.VerifyByVIN(context.Background(), "missing")
	require.Nil(t, svcErr, "unknown VIN is a negative answer, not an error")
	require.NotNil(t, resp)
	assert.False(t, resp.Valid)
	assert.Nil(t, resp.Voter)
}

func TestVerifyByVINPendingApplication(t *testing.T) {
	record := approvedRecord()
	record.Status = appmodel.StatusPendingReview
	source := &mockRecordSource{
		getRecordByVIN: func(ctx context.Context, vin string) (*appmodel.ApplicationRecord, *serviceerror.ServiceError) {
			return record, nil
		},
	}

	svc := newVerificationService(source)
	resp, svcErr := svc.VerifyByVIN(context.Background(), record.VIN)
	require.Nil(t, svcErr)
	assert.False(t, resp.Valid)
	assert.Nil(t, resp.Voter)
}

func TestVerifyByVINLookupFailure(t *testing.T) {
	source := &mockRecordSource{
		getRecordByVIN: func(ctx context.Context, vin string) (*appmodel.ApplicationRecord, *serviceerror.ServiceError) {
			return nil, serviceerror.CustomServiceError(serviceerror.DatabaseError, "registry unavailable")
		},
	}

	svc := newVerificationService(source)
	resp, svcErr := svc.VerifyByVIN(context.Background(), "any")
	require.NotNil(t, svcErr)
	assert.Nil(t, resp)
	assert.Equal(t, serviceerror.DatabaseError.Code, svcErr.Code)
}

func TestBuildVerificationView(t *testing.T) {
	verifiedAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("rejected_record", func(t *testing.T) {
		record := approvedRecord()
		record.Status = appmodel.StatusRejected
		assert.Nil(t, BuildVerificationView(record, verifiedAt))
	})

	t.Run("nil_record", func(t *testing.T) {
		assert.Nil(t, BuildVerificationView(nil, verifiedAt))
	})

	t.Run("approved_record", func(t *testing.T) {
		view := BuildVerificationView(approvedRecord(), verifiedAt)
		require.NotNil(t, view)
		assert.Equal(t, verifiedAt, view.VerifiedAt)
	})
}
