package api

type BrandRequest struct {
	Name string `json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type ModelRequest struct {
	BrandID int    `json:"brandId"`
	Name    string `json:"name"`
}

type PackageRequest struct {
	CategoryID int     `json:"vehicleCategoryId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Deposit    float64 `json:"deposit"`
	Hours      int     `json:"hours"`
	Days       int     `json:"days"`
}

type VehicleStatusRequest struct {
	Status string `json:"status"`
}

type BookingUpdateResponse struct {
	Message           string  `json:"message"`
	BookingID         int     `json:"bookingId"`
	Status            string  `json:"status"`
	TotalAmount       float64 `json:"totalAmount"`
	AdditionalCharges float64 `json:"additionalCharges"`
}
