package db

import "time"

type Booking struct {
	ID                int
	UserID            int
	VehicleID         int
	PackageID         int
	StoreID           int
	StartTime         time.Time
	EndTime           time.Time
	Address           string
	AddressType       string
	DeliveryLocation  string
	Status            string
	TotalAmount       float64
	AdditionalCharges float64
	PaymentMethod     string
	PaymentIntentID   string
	PaymentStatus     string
	Overdue           bool
	BeforeImages      TripImages
	AfterImages       TripImages
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TripImages holds the four vehicle-condition photo references taken at
// handover or return.
type TripImages struct {
	Front string `json:"front"`
	Left  string `json:"left"`
	Right string `json:"right"`
	Back  string `json:"back"`
}

type Vehicle struct {
	ID                 int    `json:"id"`
	ModelID            int    `json:"modelId"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"vehicleRegistrationNumber"`
	Image              string `json:"image"`
	Status             string `json:"status"`
	StoreID            int    `json:"storeId"`
}

type Brand struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type VehicleModel struct {
	ID      int    `json:"id"`
	BrandID int    `json:"brandId"`
	Name    string `json:"name"`
	Active  bool   `json:"active"`
}

// Package is a rental tariff: a price and deposit for a category over a
// fixed period expressed in hours or days (exactly one of the two is set).
type Package struct {
	ID         int     `json:"id"`
	CategoryID int     `json:"vehicleCategoryId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Deposit    float64 `json:"deposit"`
	Hours      int     `json:"hours"`
	Days       int     `json:"days"`
	Active     bool    `json:"active"`
}

type Store struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type User struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phoneNumber"`
	AadharFront          string `json:"aadharFrontSide"`
	AadharBack           string `json:"aadharBackSide"`
	DrivingLicense       string `json:"drivingLicense"`
	AadharFrontStatus    string `json:"aadharFrontStatus"`
	AadharBackStatus     string `json:"aadharBackStatus"`
	DrivingLicenseStatus string `json:"drivingLicenseStatus"`
}

type Challan struct {
	ID          int     `json:"id"`
	BookingID   int     `json:"bookingId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Damage struct {
	ID          int     `json:"id"`
	BookingID   int     `json:"bookingId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Coupon struct {
	ID       int     `json:"id"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	Active   bool    `json:"active"`
}
