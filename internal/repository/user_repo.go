package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"okbike/internal/db"
	"okbike/internal/entities"
	apperrors "okbike/internal/errors"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{DB: database}
}

// documentColumns whitelists the docType values the verification endpoint
// accepts and maps each to its status column.
var documentColumns = map[string]string{
	"aadharFrontSide": "aadhar_front_status",
	"aadharBackSide":  "aadhar_back_status",
	"drivingLicense":  "driving_license_status",
}

func (r *UserRepository) GetByID(id int) (*db.User, error) {
	var u db.User
	query := `
		SELECT id, name, email, phone, aadhar_front, aadhar_back, driving_license,
		       aadhar_front_status, aadhar_back_status, driving_license_status
		FROM users WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.AadharFront, &u.AadharBack, &u.DrivingLicense,
		&u.AadharFrontStatus, &u.AadharBackStatus, &u.DrivingLicenseStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying user %d: %w", id, err)
	}
	return &u, nil
}

func (r *UserRepository) DocumentStatuses(userID int) (entities.DocumentStatus, error) {
	var d entities.DocumentStatus
	err := r.DB.QueryRow(
		`SELECT aadhar_front_status, aadhar_back_status, driving_license_status FROM users WHERE id = $1`,
		userID,
	).Scan(&d.AadharFrontSide, &d.AadharBackSide, &d.DrivingLicense)
	if err != nil {
		return d, fmt.Errorf("error querying document statuses for user %d: %w", userID, err)
	}
	return d, nil
}

// UpdateDocumentStatus flips exactly one verification column. docType must be
// one of the whitelisted dashboard names.
func (r *UserRepository) UpdateDocumentStatus(userID int, docType, status string) error {
	column, ok := documentColumns[docType]
	if !ok {
		return apperrors.ErrUnknownDocumentType
	}
	query := fmt.Sprintf(`UPDATE users SET %s = $1, updated_at = $2 WHERE id = $3`, column)
	result, err := r.DB.Exec(query, status, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("error updating %s for user %d: %w", docType, userID, err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("user %d not found", userID)
	}
	return nil
}
