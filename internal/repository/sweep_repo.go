package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
)

type SweepRepository struct {
	DB *sql.DB
}

func NewSweepRepository(database *sql.DB) *SweepRepository {
	return &SweepRepository{DB: database}
}

// OverdueBookingIDs returns accepted bookings whose rental window has ended
// but which the operator has not yet completed or cancelled.
func (r *SweepRepository) OverdueBookingIDs() ([]int, error) {
	query := `
		SELECT id FROM bookings
		WHERE status = 'Booking Accepted' AND end_time < NOW() AND NOT overdue`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying overdue bookings: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// FlagOverdue marks the given bookings overdue so the dashboard surfaces
// them. Status is untouched; completing or cancelling stays an operator
// action.
func (r *SweepRepository) FlagOverdue(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE bookings SET overdue = TRUE, updated_at = NOW() WHERE id = ANY($1)`
	result, err := r.DB.Exec(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error flagging overdue bookings: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Flagged %d bookings as overdue", rowsAffected)
	}
	return nil
}
