package entities

// BookingEmailData feeds the status-notification email template.
type BookingEmailData struct {
	UserName           string
	BookingID          int
	VehicleModel       string
	VehicleNumber      string
	StartTimeFormatted string
	EndTimeFormatted   string
	Status             string
	CurrentYear        int
}
