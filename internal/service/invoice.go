package service

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"okbike/internal/db"
	"okbike/internal/entities"
	apperrors "okbike/internal/errors"
	"okbike/internal/repository"
	"okbike/internal/utils"
)

// Fixed billing rules. GST applies to the package line only; the convenience
// fee is flat; delivery is charged only for at-location handover.
const (
	GSTRate              = 0.18
	ConvenienceFee       = 2.00
	DeliveryCharge       = 250.0
	AddressTypeDelivery  = "DELIVERY_AT_LOCATION"
	ChargeTypeAdditional = "Additional"
)

// DurationDays truncates the rental window to whole days. A booking shorter
// than 24h bills zero package days.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

// ChargeAmount coerces an operator-typed amount at computation time.
// Unparseable input becomes NaN and poisons any total it is summed into,
// which callers must reject before persisting.
func ChargeAmount(e entities.ChargeEntry) float64 {
	v, err := strconv.ParseFloat(e.Amount, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// SumCharges totals the entries tagged Additional, in any order.
func SumCharges(entries []entities.ChargeEntry) float64 {
	var total float64
	for _, e := range entries {
		if e.Type == ChargeTypeAdditional {
			total += ChargeAmount(e)
		}
	}
	return total
}

// ChargeLedger is the editable list of extra fees on a booking. Entries stay
// mutable until the booking reaches a terminal state; saving collapses them
// to the single additionalCharges figure persisted on the booking row.
type ChargeLedger struct {
	entries  []entities.ChargeEntry
	editable bool
}

func NewChargeLedger(bookingStatus string, existing float64) *ChargeLedger {
	amount := strconv.FormatFloat(existing, 'f', -1, 64)
	return &ChargeLedger{
		entries:  []entities.ChargeEntry{{Type: ChargeTypeAdditional, Amount: amount}},
		editable: !IsTerminal(bookingStatus),
	}
}

func (l *ChargeLedger) Editable() bool { return l.editable }

func (l *ChargeLedger) Entries() []entities.ChargeEntry {
	out := make([]entities.ChargeEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *ChargeLedger) Append() {
	if !l.editable {
		return
	}
	l.entries = append(l.entries, entities.ChargeEntry{Type: ChargeTypeAdditional, Amount: "0"})
}

// Remove drops the entry at position i. The last remaining entry cannot be
// removed.
func (l *ChargeLedger) Remove(i int) error {
	if !l.editable {
		return apperrors.ErrBookingTerminal
	}
	if len(l.entries) <= 1 || i < 0 || i >= len(l.entries) {
		return fmt.Errorf("cannot remove charge entry %d", i)
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return nil
}

func (l *ChargeLedger) SetType(i int, chargeType string) error {
	if !l.editable {
		return apperrors.ErrBookingTerminal
	}
	if i < 0 || i >= len(l.entries) {
		return fmt.Errorf("no charge entry %d", i)
	}
	l.entries[i].Type = chargeType
	return nil
}

func (l *ChargeLedger) SetAmount(i int, amount string) error {
	if !l.editable {
		return apperrors.ErrBookingTerminal
	}
	if i < 0 || i >= len(l.entries) {
		return fmt.Errorf("no charge entry %d", i)
	}
	l.entries[i].Amount = amount
	return nil
}

func (l *ChargeLedger) Total() float64 {
	return SumCharges(l.entries)
}

// LateCharges is a stub: overdue bookings are flagged by the sweep but no
// fee schedule exists yet, so the invoice line is always zero.
func LateCharges(_ *entities.BookingDetail) float64 {
	return 0
}

// ComputeInvoice derives the full breakdown from a booking and its related
// records. It mutates nothing and persists nothing; identical inputs yield
// an identical invoice.
func ComputeInvoice(detail *entities.BookingDetail, charges []entities.ChargeEntry, lateCharges float64, challans []db.Challan, damages []db.Damage) entities.Invoice {
	durationDays := DurationDays(detail.StartDate, detail.EndDate)
	durationText := utils.DurationText(detail.StartDate, detail.EndDate)

	packageLine := detail.VehiclePackage.Price * float64(durationDays)
	gst := packageLine * GSTRate
	var delivery float64
	if detail.AddressType == AddressTypeDelivery {
		delivery = DeliveryCharge
	}
	subtotal := packageLine + gst + ConvenienceFee + delivery

	additional := SumCharges(charges)
	var challansTotal float64
	for _, c := range challans {
		challansTotal += c.Amount
	}
	var damagesTotal float64
	for _, d := range damages {
		damagesTotal += d.Amount
	}

	inv := entities.Invoice{
		InvoiceNumber:     fmt.Sprintf("OKB-%d", detail.BookingID),
		BookingID:         detail.BookingID,
		BilledTo:          detail.UserName,
		BilledPhone:       detail.UserPhone,
		VehicleModel:      detail.Vehicle.Model,
		VehicleNumber:     detail.VehicleNumber,
		Deposit:           detail.VehiclePackage.Deposit,
		DurationDays:      durationDays,
		Duration:          durationText,
		PackageLineTotal:  packageLine,
		GST:               gst,
		ConvenienceFee:    ConvenienceFee,
		DeliveryCharge:    delivery,
		Subtotal:          subtotal,
		AdditionalCharges: additional,
		LateCharges:       lateCharges,
		ChallansTotal:     challansTotal,
		DamagesTotal:      damagesTotal,
		TotalAmount:       subtotal + additional + lateCharges + challansTotal + damagesTotal,
	}

	inv.Lines = append(inv.Lines, entities.InvoiceLine{
		Description: fmt.Sprintf("Package Price (Duration: %s)", durationText),
		Amount:      packageLine,
	})
	inv.Lines = append(inv.Lines, entities.InvoiceLine{Description: "GST (18%)", Amount: gst})
	inv.Lines = append(inv.Lines, entities.InvoiceLine{Description: "Convenience Fee", Amount: ConvenienceFee})
	if delivery > 0 {
		inv.Lines = append(inv.Lines, entities.InvoiceLine{Description: "Delivery Charge", Amount: delivery})
	}
	for _, e := range charges {
		if e.Type == ChargeTypeAdditional {
			inv.Lines = append(inv.Lines, entities.InvoiceLine{Description: e.Type, Amount: ChargeAmount(e)})
		}
	}
	if lateCharges > 0 {
		inv.Lines = append(inv.Lines, entities.InvoiceLine{Description: "Late Charges", Amount: lateCharges})
	}
	for _, c := range challans {
		inv.Lines = append(inv.Lines, entities.InvoiceLine{Description: "Challan: " + c.Description, Amount: c.Amount})
	}
	for _, d := range damages {
		inv.Lines = append(inv.Lines, entities.InvoiceLine{Description: "Damage: " + d.Description, Amount: d.Amount})
	}
	return inv
}

// InvoiceService loads everything an invoice needs and runs the pure
// computation. The deposit is shown but never added to the total.
type InvoiceService struct {
	Repo *repository.BookingRepository
}

func NewInvoiceService(repo *repository.BookingRepository) *InvoiceService {
	return &InvoiceService{Repo: repo}
}

func (s *InvoiceService) GetInvoice(bookingID int) (*entities.Invoice, error) {
	detail, err := s.Repo.GetCombined(bookingID)
	if err != nil {
		return nil, err
	}
	challans, err := s.Repo.Challans(bookingID)
	if err != nil {
		return nil, err
	}
	damages, err := s.Repo.Damages(bookingID)
	if err != nil {
		return nil, err
	}

	ledger := NewChargeLedger(detail.Status, detail.AdditionalCharges)
	inv := ComputeInvoice(detail, ledger.Entries(), LateCharges(detail), challans, damages)
	inv.IssuedAt = time.Now().UTC()
	return &inv, nil
}
