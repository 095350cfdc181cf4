package entities

import (
	"time"

	"okbike/internal/db"
)

// DocumentStatus mirrors the three per-document verification states on a
// user record.
type DocumentStatus struct {
	AadharFrontSide string `json:"aadharFrontSide"`
	AadharBackSide  string `json:"aadharBackSide"`
	DrivingLicense  string `json:"drivingLicense"`
}

func (d DocumentStatus) AllApproved() bool {
	return d.AadharFrontSide == "APPROVED" &&
		d.AadharBackSide == "APPROVED" &&
		d.DrivingLicense == "APPROVED"
}

// BookingDetail is the merged view the combined endpoint returns: every
// booking field plus the related vehicle, store, package and user columns
// the dashboard renders.
type BookingDetail struct {
	BookingID         int            `json:"bookingId"`
	UserID            int            `json:"userId"`
	StartDate         time.Time      `json:"startDate"`
	EndDate           time.Time      `json:"endDate"`
	Address           string         `json:"address"`
	AddressType       string         `json:"addressType"`
	DeliveryLocation  string         `json:"deliveryLocation,omitempty"`
	Status            string         `json:"status"`
	TotalAmount       float64        `json:"totalAmount"`
	AdditionalCharges float64        `json:"additionalCharges"`
	PaymentMethod     string         `json:"paymentMethod,omitempty"`
	Overdue           bool           `json:"overdue"`
	Vehicle           db.Vehicle     `json:"vehicle"`
	Store             db.Store       `json:"store"`
	VehiclePackage    db.Package     `json:"vehiclePackage"`
	VehicleImageURL   string         `json:"vehicleImageUrl"`
	VehicleNumber     string         `json:"vehicleNumber"`
	UserName          string         `json:"userName"`
	UserPhone         string         `json:"userPhone"`
	DocumentStatus    DocumentStatus `json:"documentStatus"`
	Duration          string         `json:"duration"`
	BeforeImages      db.TripImages  `json:"beforeTripImages"`
	AfterImages       db.TripImages  `json:"afterTripImages"`
}
