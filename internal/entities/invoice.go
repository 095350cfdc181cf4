package entities

import "time"

type InvoiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice is derived on demand from a booking and its related records. It is
// never persisted; identical inputs always produce the identical breakdown.
type Invoice struct {
	InvoiceNumber     string        `json:"invoiceNumber"`
	BookingID         int           `json:"bookingId"`
	IssuedAt          time.Time     `json:"issuedAt"`
	BilledTo          string        `json:"billedTo"`
	BilledPhone       string        `json:"billedPhone"`
	VehicleModel      string        `json:"vehicleModel"`
	VehicleNumber     string        `json:"vehicleNumber"`
	Deposit           float64       `json:"deposit"`
	DurationDays      int           `json:"durationDays"`
	Duration          string        `json:"duration"`
	PackageLineTotal  float64       `json:"packageLineTotal"`
	GST               float64       `json:"gst"`
	ConvenienceFee    float64       `json:"convenienceFee"`
	DeliveryCharge    float64       `json:"deliveryCharge"`
	Subtotal          float64       `json:"subtotal"`
	AdditionalCharges float64       `json:"additionalCharges"`
	LateCharges       float64       `json:"lateCharges"`
	ChallansTotal     float64       `json:"challansTotal"`
	DamagesTotal      float64       `json:"damagesTotal"`
	TotalAmount       float64       `json:"totalAmount"`
	Lines             []InvoiceLine `json:"lines"`
}
