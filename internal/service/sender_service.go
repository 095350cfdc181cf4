package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"okbike/internal/db"
	"okbike/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// NotifyBookingStatus tells the customer about a lifecycle transition over
// email and SMS. Email delivery runs in the background; a failure is logged,
// never surfaced to the operator action that triggered it.
func (s *SenderService) NotifyBookingStatus(user *db.User, booking *db.Booking, status string) {
	s.SendBookingStatusEmail(user, booking, status)
	s.SendBookingStatusSMS(user, booking, status)
}

func (s *SenderService) SendBookingStatusEmail(user *db.User, booking *db.Booking, status string) {
	istLoc, errLoc := time.LoadLocation("Asia/Kolkata")
	if errLoc != nil {
		istLoc = time.FixedZone("IST", 5*60*60+30*60)
	}

	emailData := entities.BookingEmailData{
		UserName:           user.Name,
		BookingID:          booking.ID,
		StartTimeFormatted: booking.StartTime.In(istLoc).Format("02 Jan 2006 15:04 MST"),
		EndTimeFormatted:   booking.EndTime.In(istLoc).Format("02 Jan 2006 15:04 MST"),
		Status:             status,
		CurrentYear:        time.Now().In(istLoc).Year(),
	}

	emailSubject := fmt.Sprintf("Your OkBike booking #%d is %s", booking.ID, status)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour OkBike booking is %s.\n\n"+
			"Booking Details:\n"+
			"Booking ID: %d\n"+
			"Start: %s\n"+
			"End: %s\n\n"+
			"Thank you for choosing OkBike.\n\n"+
			"OkBike. Ride with confidence.",
		emailData.UserName, status, emailData.BookingID,
		emailData.StartTimeFormatted, emailData.EndTimeFormatted,
	)

	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: could not parse booking email template (%s): %v", tmplPath, err)
		return
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
		log.Printf("ALERT: could not execute booking email template for booking %d: %v", booking.ID, err)
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, userName, subject, plainBody, htmlBodyContent string) {
		errEmail := SendEmailWithSendGrid(toEmail, userName, subject, plainBody, htmlBodyContent)
		if errEmail != nil {
			log.Printf("ALERT (async): email for booking %d failed: %v", emailData.BookingID, errEmail)
		}
	}(user.Email, emailData.UserName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendBookingStatusSMS(user *db.User, booking *db.Booking, status string) {
	istLoc, errLoc := time.LoadLocation("Asia/Kolkata")
	if errLoc != nil {
		istLoc = time.FixedZone("IST", 5*60*60+30*60)
	}

	smsMessage := fmt.Sprintf("OkBike: Booking #%d is %s!\nStart: %s.\nMore details in your email.",
		booking.ID, status,
		booking.StartTime.In(istLoc).Format("02/01 15:04"),
	)

	errSMS := SendSMS(user.Phone, smsMessage)
	if errSMS != nil {
		log.Printf("ALERT: booking %d status changed but SMS to %s failed: %v", booking.ID, user.Phone, errSMS)
	}
}
