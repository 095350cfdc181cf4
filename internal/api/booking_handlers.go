package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"okbike/internal/entities"
	apperrors "okbike/internal/errors"
	"okbike/internal/service"
)

type BookingHandler struct {
	Service  *service.BookingService
	Invoices *service.InvoiceService
}

func NewBookingHandler(svc *service.BookingService, invoices *service.InvoiceService) *BookingHandler {
	return &BookingHandler{Service: svc, Invoices: invoices}
}

// writeBookingError maps workflow sentinels onto HTTP status codes. Anything
// unrecognized is a database error.
func writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBookingNotFound):
		http.Error(w, "Booking not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrBookingTerminal):
		http.Error(w, "Booking is already completed or cancelled", http.StatusConflict)
	case errors.Is(err, apperrors.ErrDocumentsNotVerified):
		http.Error(w, "Failed to accept booking, documents not verified", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInvalidChargeAmount):
		http.Error(w, "Charge amount is not a number", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Database error", http.StatusInternalServerError)
	}
}

func bookingID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *BookingHandler) GetCombinedBooking(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	detail, err := h.Service.GetBookingDetail(id)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detail)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	status := r.URL.Query().Get("status")
	date := r.URL.Query().Get("date")
	sortBy := r.URL.Query().Get("sortBy")
	sortDirection := r.URL.Query().Get("sortDirection")
	bookings, err := h.Service.ListBookings(status, date, sortBy, sortDirection, page, size)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	if _, err := h.Service.CancelBooking(id); err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Booking canceled successfully!"})
}

func (h *BookingHandler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.AcceptBooking(id)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Booking accepted",
		"status":  booking.Status,
	})
}

func (h *BookingHandler) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	if _, err := h.Service.CompleteTrip(id); err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Trip marked as COMPLETED."})
}

func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	var req entities.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.ApplyStatus(id, req.Status)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": fmt.Sprintf("Booking status updated to: %s", booking.Status),
	})
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	var req entities.BookingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	booking, err := h.Service.SaveCharges(id, &req)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BookingUpdateResponse{
		Message:           "Booking updated",
		BookingID:         booking.ID,
		Status:            booking.Status,
		TotalAmount:       booking.TotalAmount,
		AdditionalCharges: booking.AdditionalCharges,
	})
}

func (h *BookingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := bookingID(r)
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	invoice, err := h.Invoices.GetInvoice(id)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}
