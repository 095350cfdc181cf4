package entities

import "time"

// BookingSummary is one row of the bookings table, joined server-side so the
// dashboard does not fetch the user and vehicle per row.
type BookingSummary struct {
	BookingID     int       `json:"bookingId"`
	UserName      string    `json:"userName"`
	UserPhone     string    `json:"userPhone"`
	VehicleModel  string    `json:"vehicleModel"`
	VehicleNumber string    `json:"vehicleNumber"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"totalAmount"`
	Overdue       bool      `json:"overdue"`
}

type BookingsPage struct {
	Content       []BookingSummary `json:"content"`
	TotalElements int64            `json:"totalElements"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
}

// CatalogPage wraps any catalog listing in the content/totalElements shape
// the dashboard paginates on.
type CatalogPage struct {
	Content       any   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}
