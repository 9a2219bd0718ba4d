package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoteng/voter-card-api/internal/application/model"
	dbmodel "github.com/evoteng/voter-card-api/internal/system/database/model"
)

type mockDBClient struct {
	query   func(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) ([]map[string]interface{}, error)
	execute func(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) (int64, error)
}

func (m *mockDBClient) Query(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) ([]map[string]interface{}, error) {
	return m.query(ctx, query, args...)
}

func (m *mockDBClient) Execute(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) (int64, error) {
	return m.execute(ctx, query, args...)
}

func applicationRow() map[string]interface{} {
	return map[string]interface{}{
		"VIN":             "90f1b9c2-6d1e-4c2b-9a4c-1f2e3d4c5b6a",
		"APPLICATION_REF": "EV-2026-000123",
		"FIRST_NAME":      "Amina",
		"SURNAME":         "Okafor",
		"DATE_OF_BIRTH":   time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC),
		"GENDER":          "FEMALE",
		"STATE":           "Lagos",
		"LGA":             "Ikeja",
		"WARD":            "Ward 04",
		"STATUS":          "PENDING_REVIEW",
		"CREATED_TIME":    int64(1756600000000),
		"UPDATED_TIME":    int64(1756600000000),
	}
}

// The MySQL text protocol (used for zero-arg statements) returns COUNT(*) as
// []byte, which the dbclient normalizes to a string; prepared statements use
// the binary protocol and return int64. Both shapes must map to the total.
func TestListTotalCountWireShapes(t *testing.T) {
	tests := []struct {
		name  string
		count interface{}
		want  int
	}{
		{"text_protocol_string", "3", 3},
		{"binary_protocol_int64", int64(3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbClient := &mockDBClient{
				query: func(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) ([]map[string]interface{}, error) {
					if query.GetID() == QueryCountApplications.ID {
						return []map[string]interface{}{{"count": tt.count}}, nil
					}
					return []map[string]interface{}{applicationRow()}, nil
				},
			}

			s := newApplicationStore(dbClient)
			records, total, err := s.List(context.Background(), 30, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total, "total should reflect the COUNT(*) result")
			require.Len(t, records, 1)
		})
	}
}

func TestGetByVINMapsRow(t *testing.T) {
	dbClient := &mockDBClient{
		query: func(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) ([]map[string]interface{}, error) {
			return []map[string]interface{}{applicationRow()}, nil
		},
	}

	s := newApplicationStore(dbClient)
	record, err := s.GetByVIN(context.Background(), "90f1b9c2-6d1e-4c2b-9a4c-1f2e3d4c5b6a")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "EV-2026-000123", record.ApplicationRef)
	assert.Equal(t, model.StatusPendingReview, record.Status)
	assert.Equal(t, time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC), record.DateOfBirth)
	assert.Nil(t, record.MiddleName)
}

func TestGetByVINMissing(t *testing.T) {
	dbClient := &mockDBClient{
		query: func(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) ([]map[string]interface{}, error) {
			return nil, nil
		},
	}

	s := newApplicationStore(dbClient)
	record, err := s.GetByVIN(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, record)
}
