package application

import (
	"context"
	"strconv"
	"time"

	"github.com/evoteng/voter-card-api/internal/application/model"
	dbmodel "github.com/evoteng/voter-card-api/internal/system/database/model"
	"github.com/evoteng/voter-card-api/internal/system/database/provider"
)

// DBQuery objects for application operations
var (
	QueryCreateApplication = dbmodel.DBQuery{
		ID:    "CREATE_APPLICATION",
		Query: "INSERT INTO VOTER_APPLICATION (VIN, APPLICATION_REF, FIRST_NAME, MIDDLE_NAME, SURNAME, DATE_OF_BIRTH, GENDER, STATE, LGA, WARD, PASSPORT_PHOTO_URL, STATUS, CREATED_TIME, UPDATED_TIME) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
	}

	QueryGetApplicationByVIN = dbmodel.DBQuery{
		ID:    "GET_APPLICATION_BY_VIN",
		Query: "SELECT VIN, APPLICATION_REF, FIRST_NAME, MIDDLE_NAME, SURNAME, DATE_OF_BIRTH, GENDER, STATE, LGA, WARD, PASSPORT_PHOTO_URL, STATUS, VOTER_CARD_PDF_URL, VOTER_CARD_ID, CREATED_TIME, UPDATED_TIME FROM VOTER_APPLICATION WHERE VIN = ?",
	}

	QueryListApplications = dbmodel.DBQuery{
		ID:    "LIST_APPLICATIONS",
		Query: "SELECT VIN, APPLICATION_REF, FIRST_NAME, MIDDLE_NAME, SURNAME, DATE_OF_BIRTH, GENDER, STATE, LGA, WARD, PASSPORT_PHOTO_URL, STATUS, VOTER_CARD_PDF_URL, VOTER_CARD_ID, CREATED_TIME, UPDATED_TIME FROM VOTER_APPLICATION ORDER BY CREATED_TIME DESC LIMIT ? OFFSET ?",
	}

	QueryCountApplications = dbmodel.DBQuery{
		ID:    "COUNT_APPLICATIONS",
		Query: "SELECT COUNT(*) as count FROM VOTER_APPLICATION",
	}

	QueryUpdateApplicationStatus = dbmodel.DBQuery{
		ID:    "UPDATE_APPLICATION_STATUS",
		Query: "UPDATE VOTER_APPLICATION SET STATUS = ?, UPDATED_TIME = ? WHERE VIN = ?",
	}

	// Unconditional overwrite: concurrent issuances for the same VIN race
	// here and the last writer wins.
	QueryUpdateCardLocation = dbmodel.DBQuery{
		ID:    "UPDATE_CARD_LOCATION",
		Query: "UPDATE VOTER_APPLICATION SET VOTER_CARD_PDF_URL = ?, VOTER_CARD_ID = ?, UPDATED_TIME = ? WHERE VIN = ?",
	}
)

// applicationStore defines the interface for application data operations
type applicationStore interface {
	Create(ctx context.Context, record *model.ApplicationRecord) error
	GetByVIN(ctx context.Context, vin string) (*model.ApplicationRecord, error)
	List(ctx context.Context, limit, offset int) ([]model.ApplicationRecord, int, error)
	UpdateStatus(ctx context.Context, vin string, status model.ApplicationStatus, updatedTime int64) (int64, error)
	UpdateCardLocation(ctx context.Context, vin, url, cardID string, updatedTime int64) (int64, error)
}

// store implements the applicationStore interface
type store struct {
	dbClient provider.DBClientInterface
}

func newApplicationStore(dbClient provider.DBClientInterface) applicationStore {
	return &store{
		dbClient: dbClient,
	}
}

// Create creates a new application record
func (s *store) Create(ctx context.Context, record *model.ApplicationRecord) error {
	_, err := s.dbClient.Execute(ctx, &QueryCreateApplication,
		record.VIN, record.ApplicationRef, record.FirstName, record.MiddleName,
		record.Surname, record.DateOfBirth.Format("2006-01-02"), record.Gender,
		record.State, record.LGA, record.Ward, record.PassportPhotoURL,
		string(record.Status), record.CreatedTime, record.UpdatedTime)
	return err
}

// GetByVIN retrieves an application by VIN
func (s *store) GetByVIN(ctx context.Context, vin string) (*model.ApplicationRecord, error) {
	rows, err := s.dbClient.Query(ctx, &QueryGetApplicationByVIN, vin)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mapToApplication(rows[0]), nil
}

// List retrieves paginated applications
func (s *store) List(ctx context.Context, limit, offset int) ([]model.ApplicationRecord, int, error) {
	countRows, err := s.dbClient.Query(ctx, &QueryCountApplications)
	if err != nil {
		return nil, 0, err
	}

	// The MySQL text protocol delivers COUNT(*) as []byte, which the dbclient
	// normalizes to a string; the binary protocol delivers int64.
	totalCount := 0
	if len(countRows) > 0 {
		switch count := countRows[0]["count"].(type) {
		case int64:
			totalCount = int(count)
		case string:
			if parsed, err := strconv.Atoi(count); err == nil {
				totalCount = parsed
			}
		}
	}

	rows, err := s.dbClient.Query(ctx, &QueryListApplications, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	records := make([]model.ApplicationRecord, 0, len(rows))
	for _, row := range rows {
		record := mapToApplication(row)
		if record != nil {
			records = append(records, *record)
		}
	}

	return records, totalCount, nil
}

// UpdateStatus updates application status
func (s *store) UpdateStatus(ctx context.Context, vin string, status model.ApplicationStatus, updatedTime int64) (int64, error) {
	return s.dbClient.Execute(ctx, &QueryUpdateApplicationStatus, string(status), updatedTime, vin)
}

// UpdateCardLocation persists the issued card URL and card id
func (s *store) UpdateCardLocation(ctx context.Context, vin, url, cardID string, updatedTime int64) (int64, error) {
	return s.dbClient.Execute(ctx, &QueryUpdateCardLocation, url, cardID, updatedTime, vin)
}

// Mapper functions

func mapToApplication(row map[string]interface{}) *model.ApplicationRecord {
	if row == nil {
		return nil
	}

	record := &model.ApplicationRecord{}

	if vin, ok := row["VIN"].(string); ok {
		record.VIN = vin
	}
	if ref, ok := row["APPLICATION_REF"].(string); ok {
		record.ApplicationRef = ref
	}
	if first, ok := row["FIRST_NAME"].(string); ok {
		record.FirstName = first
	}
	if middle, ok := row["MIDDLE_NAME"].(string); ok {
		record.MiddleName = &middle
	}
	if surname, ok := row["SURNAME"].(string); ok {
		record.Surname = surname
	}
	if dob, ok := row["DATE_OF_BIRTH"].(time.Time); ok {
		record.DateOfBirth = dob
	} else if dobStr, ok := row["DATE_OF_BIRTH"].(string); ok {
		if parsed, err := time.Parse("2006-01-02", dobStr); err == nil {
			record.DateOfBirth = parsed
		}
	}
	if gender, ok := row["GENDER"].(string); ok {
		record.Gender = gender
	}
	if state, ok := row["STATE"].(string); ok {
		record.State = state
	}
	if lga, ok := row["LGA"].(string); ok {
		record.LGA = lga
	}
	if ward, ok := row["WARD"].(string); ok {
		record.Ward = ward
	}
	if photo, ok := row["PASSPORT_PHOTO_URL"].(string); ok {
		record.PassportPhotoURL = &photo
	}
	if status, ok := row["STATUS"].(string); ok {
		record.Status = model.ApplicationStatus(status)
	}
	if url, ok := row["VOTER_CARD_PDF_URL"].(string); ok {
		record.VoterCardPdfURL = &url
	}
	if cardID, ok := row["VOTER_CARD_ID"].(string); ok {
		record.VoterCardID = &cardID
	}
	if created, ok := row["CREATED_TIME"].(int64); ok {
		record.CreatedTime = created
	}
	if updated, ok := row["UPDATED_TIME"].(int64); ok {
		record.UpdatedTime = updated
	}

	return record
}
