package repository

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	apperrors "okbike/internal/errors"
)

func TestUpdateDocumentStatusRejectsUnknownType(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer mockDB.Close()
	repo := NewUserRepository(mockDB)

	err = repo.UpdateDocumentStatus(7, "passport", "APPROVED")
	if !errors.Is(err, apperrors.ErrUnknownDocumentType) {
		t.Fatalf("expected ErrUnknownDocumentType, got %v", err)
	}
	// nothing may hit the database for an unknown docType
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateDocumentStatusTouchesOneColumn(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer mockDB.Close()
	repo := NewUserRepository(mockDB)

	mock.ExpectExec("UPDATE users SET aadhar_front_status").
		WithArgs("REJECTED", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateDocumentStatus(7, "aadharFrontSide", "REJECTED"); err != nil {
		t.Fatalf("UpdateDocumentStatus: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDocumentStatuses(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer mockDB.Close()
	repo := NewUserRepository(mockDB)

	mock.ExpectQuery("SELECT aadhar_front_status, aadhar_back_status, driving_license_status").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"aadhar_front_status", "aadhar_back_status", "driving_license_status"}).
			AddRow("APPROVED", "APPROVED", "PENDING"))

	docs, err := repo.DocumentStatuses(7)
	if err != nil {
		t.Fatalf("DocumentStatuses: %v", err)
	}
	if docs.AllApproved() {
		t.Fatal("pending driving license should not count as all approved")
	}
	if docs.AadharFrontSide != "APPROVED" || docs.DrivingLicense != "PENDING" {
		t.Fatalf("unexpected statuses %+v", docs)
	}
}
