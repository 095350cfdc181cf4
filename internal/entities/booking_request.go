package entities

// ChargeEntry is one operator-entered line in the additional-charges ledger.
// Amount stays a raw string until totals are computed; the dashboard sends
// whatever was typed into the field.
type ChargeEntry struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

// BookingUpdateRequest is the dto the charge-save action sends. When Charges
// is present the entries are collapsed into AdditionalCharges server-side;
// otherwise AdditionalCharges is taken as sent.
type BookingUpdateRequest struct {
	VehicleID         int           `json:"vehicleId"`
	UserID            int           `json:"userId"`
	PackageID         int           `json:"packageId"`
	TotalAmount       float64       `json:"totalAmount"`
	AddressType       string        `json:"addressType"`
	DeliveryLocation  string        `json:"deliveryLocation"`
	StartTime         string        `json:"startTime"`
	EndTime           string        `json:"endTime"`
	AdditionalCharges float64       `json:"additionalCharges"`
	Charges           []ChargeEntry `json:"charges,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
