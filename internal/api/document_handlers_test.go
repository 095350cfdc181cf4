package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"

	"okbike/internal/repository"
	"okbike/internal/service"
)

func newDocumentRouter(t *testing.T) (*mux.Router, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	handler := NewDocumentHandler(service.NewDocumentService(repository.NewUserRepository(mockDB)))
	r := mux.NewRouter()
	r.HandleFunc("/booking/verify-documents/{userId}", handler.VerifyDocuments).Methods("PUT")
	return r, mock, func() { mockDB.Close() }
}

func TestVerifyDocumentsRejectsUnknownStatus(t *testing.T) {
	r, mock, closeDB := newDocumentRouter(t)
	defer closeDB()

	req := httptest.NewRequest(http.MethodPut,
		"/booking/verify-documents/7?status=MAYBE&docType=drivingLicense", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	// validation must fail before any database work
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifyDocumentsRejectsUnknownDocType(t *testing.T) {
	r, mock, closeDB := newDocumentRouter(t)
	defer closeDB()

	req := httptest.NewRequest(http.MethodPut,
		"/booking/verify-documents/7?status=APPROVED&docType=passport", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifyDocumentsApprovesDocument(t *testing.T) {
	r, mock, closeDB := newDocumentRouter(t)
	defer closeDB()

	mock.ExpectExec("UPDATE users SET driving_license_status").
		WithArgs("APPROVED", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodPut,
		"/booking/verify-documents/7?status=APPROVED&docType=drivingLicense", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifyDocumentsRequiresParams(t *testing.T) {
	r, _, closeDB := newDocumentRouter(t)
	defer closeDB()

	req := httptest.NewRequest(http.MethodPut, "/booking/verify-documents/7", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
