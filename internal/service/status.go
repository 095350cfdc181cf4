package service

import "strings"

// Booking lifecycle states. Confirmed is where the customer flow leaves a
// booking; Completed and Cancelled are terminal.
const (
	StatusConfirmed = "Confirmed"
	StatusAccepted  = "Booking Accepted"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// NormalizeStatus maps the loose spellings seen in the wild ("COMPLETED",
// "BookingAccepted", "canceled") onto the canonical constants. Unknown
// strings come back unchanged with ok=false; the generic update path
// persists them verbatim.
func NormalizeStatus(status string) (string, bool) {
	key := strings.ToLower(status)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	switch key {
	case "confirmed":
		return StatusConfirmed, true
	case "bookingaccepted", "accepted":
		return StatusAccepted, true
	case "completed":
		return StatusCompleted, true
	case "cancelled", "canceled":
		return StatusCancelled, true
	}
	return status, false
}
