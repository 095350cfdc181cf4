package service

import (
	"fmt"
	"log"
	"math"

	"okbike/internal/db"
	"okbike/internal/entities"
	apperrors "okbike/internal/errors"
	"okbike/internal/repository"
	"okbike/internal/utils"
)

const vehiclePlaceholderImage = "/default-vehicle.png"

// refunder is satisfied by StripeService; tests inject a stub.
type refunder interface {
	RefundPaymentIntent(paymentIntentID string) error
}

// notifier is satisfied by SenderService; nil disables notifications.
type notifier interface {
	NotifyBookingStatus(user *db.User, booking *db.Booking, status string)
}

type BookingService struct {
	Repo   *repository.BookingRepository
	Users  *repository.UserRepository
	Stripe refunder
	Sender notifier
}

func NewBookingService(repo *repository.BookingRepository, users *repository.UserRepository, stripe refunder, sender notifier) *BookingService {
	return &BookingService{Repo: repo, Users: users, Stripe: stripe, Sender: sender}
}

// GetBookingDetail returns the combined view the detail screen renders. A
// vehicle without an image gets the placeholder so the client never renders
// a broken reference.
func (s *BookingService) GetBookingDetail(id int) (*entities.BookingDetail, error) {
	detail, err := s.Repo.GetCombined(id)
	if err != nil {
		return nil, err
	}
	detail.VehicleImageURL = detail.Vehicle.Image
	if detail.VehicleImageURL == "" {
		detail.VehicleImageURL = vehiclePlaceholderImage
	}
	detail.Duration = utils.DurationText(detail.StartDate, detail.EndDate)
	return detail, nil
}

// ApplyStatus dispatches an operator-selected target status onto the one
// operation that handles it: Cancelled and Completed have dedicated paths,
// Booking Accepted runs the document gate, anything else is persisted
// verbatim through the generic update.
func (s *BookingService) ApplyStatus(id int, target string) (*db.Booking, error) {
	normalized, known := NormalizeStatus(target)
	if known {
		switch normalized {
		case StatusCancelled:
			return s.CancelBooking(id)
		case StatusAccepted:
			return s.AcceptBooking(id)
		case StatusCompleted:
			return s.CompleteTrip(id)
		}
		target = normalized
	}
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(booking.Status) {
		return nil, apperrors.ErrBookingTerminal
	}
	if err := s.Repo.UpdateStatus(id, target); err != nil {
		return nil, err
	}
	booking.Status = target
	return booking, nil
}

// CancelBooking refunds any online payment, marks the booking Cancelled,
// frees the vehicle and notifies the customer.
func (s *BookingService) CancelBooking(id int) (*db.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(booking.Status) {
		return nil, apperrors.ErrBookingTerminal
	}
	if booking.PaymentIntentID != "" {
		if err := s.Stripe.RefundPaymentIntent(booking.PaymentIntentID); err != nil {
			return nil, fmt.Errorf("refund for booking %d failed: %w", id, err)
		}
	}
	if err := s.Repo.UpdateStatus(id, StatusCancelled); err != nil {
		return nil, err
	}
	if err := s.Repo.ReleaseVehicle(booking.VehicleID); err != nil {
		log.Printf("Booking %d cancelled but vehicle %d not released: %v", id, booking.VehicleID, err)
	}
	booking.Status = StatusCancelled
	s.notifyStatus(booking)
	return booking, nil
}

// AcceptBooking moves a booking to Booking Accepted. It refuses while any of
// the customer's three documents is not APPROVED.
func (s *BookingService) AcceptBooking(id int) (*db.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(booking.Status) {
		return nil, apperrors.ErrBookingTerminal
	}
	docs, err := s.Users.DocumentStatuses(booking.UserID)
	if err != nil {
		return nil, err
	}
	if !docs.AllApproved() {
		return nil, apperrors.ErrDocumentsNotVerified
	}
	if err := s.Repo.UpdateStatus(id, StatusAccepted); err != nil {
		return nil, err
	}
	booking.Status = StatusAccepted
	s.notifyStatus(booking)
	return booking, nil
}

// CompleteTrip marks the booking Completed and frees the vehicle.
func (s *BookingService) CompleteTrip(id int) (*db.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(booking.Status) {
		return nil, apperrors.ErrBookingTerminal
	}
	if err := s.Repo.UpdateStatus(id, StatusCompleted); err != nil {
		return nil, err
	}
	if err := s.Repo.ReleaseVehicle(booking.VehicleID); err != nil {
		log.Printf("Booking %d completed but vehicle %d not released: %v", id, booking.VehicleID, err)
	}
	booking.Status = StatusCompleted
	s.notifyStatus(booking)
	return booking, nil
}

// SaveCharges persists the charge-save action. When the request carries raw
// ledger entries they are collapsed here; an unparseable amount rejects the
// whole save instead of writing NaN.
func (s *BookingService) SaveCharges(id int, req *entities.BookingUpdateRequest) (*db.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(booking.Status) {
		return nil, apperrors.ErrBookingTerminal
	}
	if len(req.Charges) > 0 {
		total := SumCharges(req.Charges)
		if math.IsNaN(total) {
			return nil, apperrors.ErrInvalidChargeAmount
		}
		req.AdditionalCharges = total
	}
	if err := s.Repo.UpdateCharges(id, req); err != nil {
		return nil, err
	}
	booking.TotalAmount = req.TotalAmount
	booking.AdditionalCharges = req.AdditionalCharges
	return booking, nil
}

func (s *BookingService) ListBookings(status, date, sortBy, sortDirection string, page, size int) (*entities.BookingsPage, error) {
	return s.Repo.List(status, date, sortBy, sortDirection, page, size)
}

func (s *BookingService) MarkPaymentRefunded(paymentIntentID string) error {
	return s.Repo.MarkPaymentRefunded(paymentIntentID)
}

func (s *BookingService) notifyStatus(booking *db.Booking) {
	if s.Sender == nil {
		return
	}
	user, err := s.Users.GetByID(booking.UserID)
	if err != nil {
		log.Printf("Booking %d: could not load user for notification: %v", booking.ID, err)
		return
	}
	s.Sender.NotifyBookingStatus(user, booking, booking.Status)
}
