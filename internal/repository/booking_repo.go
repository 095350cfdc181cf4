package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"okbike/internal/db"
	"okbike/internal/entities"
	apperrors "okbike/internal/errors"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

func (r *BookingRepository) GetByID(id int) (*db.Booking, error) {
	var b db.Booking
	query := `
		SELECT id, user_id, vehicle_id, package_id, store_id, start_time, end_time,
		       address, address_type, delivery_location, status, total_amount,
		       additional_charges, payment_method, payment_intent_id, payment_status,
		       overdue, created_at, updated_at
		FROM bookings WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&b.ID, &b.UserID, &b.VehicleID, &b.PackageID, &b.StoreID, &b.StartTime, &b.EndTime,
		&b.Address, &b.AddressType, &b.DeliveryLocation, &b.Status, &b.TotalAmount,
		&b.AdditionalCharges, &b.PaymentMethod, &b.PaymentIntentID, &b.PaymentStatus,
		&b.Overdue, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("error querying booking %d: %w", id, err)
	}
	return &b, nil
}

// GetCombined fetches the booking together with its vehicle, store, user and
// package in a single query, so the dashboard never fans out one request per
// related record.
func (r *BookingRepository) GetCombined(id int) (*entities.BookingDetail, error) {
	var d entities.BookingDetail
	query := `
		SELECT
			b.id, b.user_id, b.start_time, b.end_time, b.address, b.address_type,
			b.delivery_location, b.status, b.total_amount, b.additional_charges,
			b.payment_method, b.overdue,
			b.front_image, b.left_image, b.right_image, b.back_image,
			b.front_end_image, b.left_end_image, b.right_end_image, b.back_end_image,
			v.id, v.model_id, v.model, v.registration_number, v.image, v.status, v.store_id,
			s.id, s.name, s.address, s.phone,
			p.id, p.category_id, p.name, p.price, p.deposit, p.hours, p.days, p.active,
			u.name, u.phone,
			u.aadhar_front_status, u.aadhar_back_status, u.driving_license_status
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		JOIN stores s ON s.id = b.store_id
		JOIN packages p ON p.id = b.package_id
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&d.BookingID, &d.UserID, &d.StartDate, &d.EndDate, &d.Address, &d.AddressType,
		&d.DeliveryLocation, &d.Status, &d.TotalAmount, &d.AdditionalCharges,
		&d.PaymentMethod, &d.Overdue,
		&d.BeforeImages.Front, &d.BeforeImages.Left, &d.BeforeImages.Right, &d.BeforeImages.Back,
		&d.AfterImages.Front, &d.AfterImages.Left, &d.AfterImages.Right, &d.AfterImages.Back,
		&d.Vehicle.ID, &d.Vehicle.ModelID, &d.Vehicle.Model, &d.Vehicle.RegistrationNumber,
		&d.Vehicle.Image, &d.Vehicle.Status, &d.Vehicle.StoreID,
		&d.Store.ID, &d.Store.Name, &d.Store.Address, &d.Store.Phone,
		&d.VehiclePackage.ID, &d.VehiclePackage.CategoryID, &d.VehiclePackage.Name,
		&d.VehiclePackage.Price, &d.VehiclePackage.Deposit, &d.VehiclePackage.Hours,
		&d.VehiclePackage.Days, &d.VehiclePackage.Active,
		&d.UserName, &d.UserPhone,
		&d.DocumentStatus.AadharFrontSide, &d.DocumentStatus.AadharBackSide,
		&d.DocumentStatus.DrivingLicense,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("error querying combined booking %d: %w", id, err)
	}
	d.VehicleNumber = d.Vehicle.RegistrationNumber
	return &d, nil
}

func (r *BookingRepository) UpdateStatus(id int, status string) error {
	result, err := r.DB.Exec(
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("error updating booking %d status: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperrors.ErrBookingNotFound
	}
	return nil
}

// UpdateCharges persists the charge-save action: the collapsed additional
// charges figure plus the handful of booking fields the dto carries.
func (r *BookingRepository) UpdateCharges(id int, req *entities.BookingUpdateRequest) error {
	result, err := r.DB.Exec(`
		UPDATE bookings
		SET total_amount = $1,
			additional_charges = $2,
			address_type = $3,
			delivery_location = $4,
			updated_at = $5
		WHERE id = $6`,
		req.TotalAmount, req.AdditionalCharges, req.AddressType, req.DeliveryLocation,
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("error updating booking %d charges: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperrors.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) ReleaseVehicle(vehicleID int) error {
	_, err := r.DB.Exec(`UPDATE vehicles SET status = 'Available' WHERE id = $1`, vehicleID)
	if err != nil {
		return fmt.Errorf("error releasing vehicle %d: %w", vehicleID, err)
	}
	return nil
}

func (r *BookingRepository) MarkPaymentRefunded(paymentIntentID string) error {
	_, err := r.DB.Exec(
		`UPDATE bookings SET payment_status = 'refunded', updated_at = $1 WHERE payment_intent_id = $2`,
		time.Now().UTC(), paymentIntentID,
	)
	if err != nil {
		return fmt.Errorf("error marking payment %s refunded: %w", paymentIntentID, err)
	}
	return nil
}

// bookingSortColumns whitelists the sortBy values the list endpoint accepts.
var bookingSortColumns = map[string]string{
	"startDate":   "b.start_time",
	"endDate":     "b.end_time",
	"status":      "b.status",
	"totalAmount": "b.total_amount",
}

func (r *BookingRepository) List(status, date, sortBy, sortDirection string, page, size int) (*entities.BookingsPage, error) {
	query := `
		SELECT b.id, u.name, u.phone, v.model, v.registration_number,
		       b.start_time, b.end_time, b.status, b.total_amount, b.overdue
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM bookings b WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if status != "" {
		cond := " AND b.status = $" + strconv.Itoa(idx)
		query += cond
		countQuery += cond
		args = append(args, status)
		idx++
	}
	if date != "" {
		cond := " AND DATE(b.start_time) = $" + strconv.Itoa(idx)
		query += cond
		countQuery += cond
		args = append(args, date)
		idx++
	}

	var total int64
	if err := r.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error counting bookings: %w", err)
	}

	orderColumn, ok := bookingSortColumns[sortBy]
	if !ok {
		orderColumn = "b.start_time"
	}
	direction := "DESC"
	if strings.EqualFold(sortDirection, "asc") {
		direction = "ASC"
	}
	query += " ORDER BY " + orderColumn + " " + direction
	query += " LIMIT $" + strconv.Itoa(idx) + " OFFSET $" + strconv.Itoa(idx+1)
	args = append(args, size, page*size)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer rows.Close()

	pageResp := &entities.BookingsPage{
		Content:       []entities.BookingSummary{},
		TotalElements: total,
		Page:          page,
		Size:          size,
	}
	for rows.Next() {
		var s entities.BookingSummary
		err := rows.Scan(
			&s.BookingID, &s.UserName, &s.UserPhone, &s.VehicleModel, &s.VehicleNumber,
			&s.StartDate, &s.EndDate, &s.Status, &s.TotalAmount, &s.Overdue,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		pageResp.Content = append(pageResp.Content, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return pageResp, nil
}

func (r *BookingRepository) Challans(bookingID int) ([]db.Challan, error) {
	rows, err := r.DB.Query(
		`SELECT id, booking_id, description, amount FROM challans WHERE booking_id = $1 ORDER BY id`,
		bookingID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying challans for booking %d: %w", bookingID, err)
	}
	defer rows.Close()

	var challans []db.Challan
	for rows.Next() {
		var c db.Challan
		if err := rows.Scan(&c.ID, &c.BookingID, &c.Description, &c.Amount); err != nil {
			return nil, fmt.Errorf("error scanning challan: %w", err)
		}
		challans = append(challans, c)
	}
	return challans, rows.Err()
}

func (r *BookingRepository) Damages(bookingID int) ([]db.Damage, error) {
	rows, err := r.DB.Query(
		`SELECT id, booking_id, description, amount FROM damages WHERE booking_id = $1 ORDER BY id`,
		bookingID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying damages for booking %d: %w", bookingID, err)
	}
	defer rows.Close()

	var damages []db.Damage
	for rows.Next() {
		var d db.Damage
		if err := rows.Scan(&d.ID, &d.BookingID, &d.Description, &d.Amount); err != nil {
			return nil, fmt.Errorf("error scanning damage: %w", err)
		}
		damages = append(damages, d)
	}
	return damages, rows.Err()
}
