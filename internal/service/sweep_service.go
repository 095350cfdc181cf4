package service

import (
	"fmt"
	"log"
	"os"

	"okbike/internal/repository"
)

type SweepService struct {
	Repo *repository.SweepRepository
}

func NewSweepService(repo *repository.SweepRepository) *SweepService {
	return &SweepService{Repo: repo}
}

// FlagOverdueBookings finds accepted bookings past their end time, flags
// them for the dashboard and alerts the ops mailbox. No fee is charged; the
// late-charge tariff is still undefined.
func (s *SweepService) FlagOverdueBookings() error {
	log.Println("Cron Job: checking for overdue bookings...")

	ids, err := s.Repo.OverdueBookingIDs()
	if err != nil {
		return fmt.Errorf("cron job: failed to get overdue bookings: %w", err)
	}

	if len(ids) == 0 {
		log.Println("Cron Job: no overdue bookings found.")
		return nil
	}

	log.Printf("Cron Job: found %d overdue bookings. IDs: %v", len(ids), ids)

	if err := s.Repo.FlagOverdue(ids); err != nil {
		return fmt.Errorf("cron job: failed to flag overdue bookings: %w", err)
	}

	opsEmail := os.Getenv("OPS_ALERT_EMAIL")
	if opsEmail != "" {
		subject := fmt.Sprintf("OkBike: %d bookings overdue", len(ids))
		body := fmt.Sprintf("Bookings past their end time without completion: %v", ids)
		if err := SendEmailWithSendGrid(opsEmail, "OkBike Ops", subject, body, ""); err != nil {
			log.Printf("Cron Job: ops alert email failed: %v", err)
		}
	}
	return nil
}
