package service

import (
	"math"
	"testing"
	"time"

	"okbike/internal/db"
	"okbike/internal/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func twoDayDetail(addressType string) *entities.BookingDetail {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &entities.BookingDetail{
		BookingID:   42,
		UserID:      7,
		StartDate:   start,
		EndDate:     start.Add(48 * time.Hour),
		AddressType: addressType,
		Status:      StatusConfirmed,
		UserName:    "Ravi Kumar",
		UserPhone:   "+919876543210",
		Vehicle:     db.Vehicle{Model: "Activa 6G", RegistrationNumber: "MH12AB1234"},
		VehiclePackage: db.Package{
			Price:   500,
			Deposit: 1000,
		},
		VehicleNumber: "MH12AB1234",
	}
}

func TestComputeInvoiceStorePickup(t *testing.T) {
	detail := twoDayDetail("STORE_PICKUP")
	inv := ComputeInvoice(detail, nil, 0, nil, nil)

	if inv.DurationDays != 2 {
		t.Fatalf("expected 2 duration days, got %d", inv.DurationDays)
	}
	if !almostEqual(inv.PackageLineTotal, 1000) {
		t.Fatalf("expected package line 1000, got %v", inv.PackageLineTotal)
	}
	if !almostEqual(inv.GST, 180) {
		t.Fatalf("expected GST 180, got %v", inv.GST)
	}
	if !almostEqual(inv.ConvenienceFee, 2.00) {
		t.Fatalf("expected convenience fee 2.00, got %v", inv.ConvenienceFee)
	}
	if !almostEqual(inv.DeliveryCharge, 0) {
		t.Fatalf("expected no delivery charge, got %v", inv.DeliveryCharge)
	}
	if !almostEqual(inv.Subtotal, 1182) {
		t.Fatalf("expected subtotal 1182, got %v", inv.Subtotal)
	}
	if !almostEqual(inv.TotalAmount, 1182) {
		t.Fatalf("expected total 1182, got %v", inv.TotalAmount)
	}
	if inv.InvoiceNumber != "OKB-42" {
		t.Fatalf("unexpected invoice number %q", inv.InvoiceNumber)
	}
}

func TestComputeInvoiceDeliveryAtLocation(t *testing.T) {
	detail := twoDayDetail("DELIVERY_AT_LOCATION")
	inv := ComputeInvoice(detail, nil, 0, nil, nil)

	if !almostEqual(inv.DeliveryCharge, 250) {
		t.Fatalf("expected delivery charge 250, got %v", inv.DeliveryCharge)
	}
	if !almostEqual(inv.TotalAmount, 1432) {
		t.Fatalf("expected total 1432, got %v", inv.TotalAmount)
	}
}

func TestComputeInvoiceShortRentalBillsZeroDays(t *testing.T) {
	detail := twoDayDetail("STORE_PICKUP")
	detail.EndDate = detail.StartDate.Add(12 * time.Hour)
	inv := ComputeInvoice(detail, nil, 0, nil, nil)

	if inv.DurationDays != 0 {
		t.Fatalf("expected 0 duration days, got %d", inv.DurationDays)
	}
	if !almostEqual(inv.PackageLineTotal, 0) {
		t.Fatalf("expected zero package line, got %v", inv.PackageLineTotal)
	}
	if !almostEqual(inv.GST, 0) {
		t.Fatalf("expected zero GST, got %v", inv.GST)
	}
	// only the flat convenience fee remains
	if !almostEqual(inv.TotalAmount, 2.00) {
		t.Fatalf("expected total 2.00, got %v", inv.TotalAmount)
	}
}

func TestComputeInvoiceDepositExcludedFromTotal(t *testing.T) {
	detail := twoDayDetail("STORE_PICKUP")
	inv := ComputeInvoice(detail, nil, 0, nil, nil)

	if !almostEqual(inv.Deposit, 1000) {
		t.Fatalf("expected deposit 1000 shown, got %v", inv.Deposit)
	}
	if !almostEqual(inv.TotalAmount, 1182) {
		t.Fatalf("deposit leaked into total: %v", inv.TotalAmount)
	}
}

func TestComputeInvoiceAddsChargesChallansDamages(t *testing.T) {
	detail := twoDayDetail("STORE_PICKUP")
	charges := []entities.ChargeEntry{
		{Type: ChargeTypeAdditional, Amount: "100"},
		{Type: ChargeTypeAdditional, Amount: "50.5"},
	}
	challans := []db.Challan{{Description: "Signal jump", Amount: 500}}
	damages := []db.Damage{{Description: "Broken mirror", Amount: 300}}

	inv := ComputeInvoice(detail, charges, 0, challans, damages)

	if !almostEqual(inv.AdditionalCharges, 150.5) {
		t.Fatalf("expected additional charges 150.5, got %v", inv.AdditionalCharges)
	}
	if !almostEqual(inv.ChallansTotal, 500) {
		t.Fatalf("expected challans total 500, got %v", inv.ChallansTotal)
	}
	if !almostEqual(inv.DamagesTotal, 300) {
		t.Fatalf("expected damages total 300, got %v", inv.DamagesTotal)
	}
	if !almostEqual(inv.TotalAmount, 1182+150.5+500+300) {
		t.Fatalf("unexpected total %v", inv.TotalAmount)
	}
}

func TestSumChargesOrderIndependent(t *testing.T) {
	a := []entities.ChargeEntry{
		{Type: ChargeTypeAdditional, Amount: "10"},
		{Type: ChargeTypeAdditional, Amount: "20"},
		{Type: ChargeTypeAdditional, Amount: "30"},
	}
	b := []entities.ChargeEntry{a[2], a[0], a[1]}

	if !almostEqual(SumCharges(a), SumCharges(b)) {
		t.Fatalf("sum depends on order: %v vs %v", SumCharges(a), SumCharges(b))
	}
	if !almostEqual(SumCharges(a), 60) {
		t.Fatalf("expected 60, got %v", SumCharges(a))
	}
}

func TestSumChargesNaNPropagates(t *testing.T) {
	entries := []entities.ChargeEntry{
		{Type: ChargeTypeAdditional, Amount: "100"},
		{Type: ChargeTypeAdditional, Amount: "abc"},
	}
	if !math.IsNaN(SumCharges(entries)) {
		t.Fatalf("expected NaN total, got %v", SumCharges(entries))
	}
}

func TestChargeLedgerEditing(t *testing.T) {
	l := NewChargeLedger(StatusConfirmed, 0)
	if !l.Editable() {
		t.Fatal("ledger on an active booking should be editable")
	}
	if len(l.Entries()) != 1 {
		t.Fatalf("expected one seeded entry, got %d", len(l.Entries()))
	}
	if err := l.Remove(0); err == nil {
		t.Fatal("removing the last entry should fail")
	}

	l.Append()
	if err := l.SetAmount(1, "75"); err != nil {
		t.Fatalf("SetAmount failed: %v", err)
	}
	if !almostEqual(l.Total(), 75) {
		t.Fatalf("expected total 75, got %v", l.Total())
	}
	if err := l.Remove(1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(l.Entries()) != 1 {
		t.Fatalf("expected one entry after removal, got %d", len(l.Entries()))
	}
}

func TestChargeLedgerFrozenWhenTerminal(t *testing.T) {
	l := NewChargeLedger(StatusCompleted, 120)
	if l.Editable() {
		t.Fatal("ledger on a completed booking should not be editable")
	}
	l.Append()
	if len(l.Entries()) != 1 {
		t.Fatalf("append on frozen ledger added an entry")
	}
	if err := l.SetAmount(0, "999"); err == nil {
		t.Fatal("expected error mutating frozen ledger")
	}
	if !almostEqual(l.Total(), 120) {
		t.Fatalf("expected total 120, got %v", l.Total())
	}
}

func TestDurationDays(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		end  time.Time
		want int
	}{
		{start.Add(23 * time.Hour), 0},
		{start.Add(24 * time.Hour), 1},
		{start.Add(49 * time.Hour), 2},
		{start.Add(-30 * time.Hour), 1}, // swapped inputs still measure the window
	}
	for _, c := range cases {
		if got := DurationDays(start, c.end); got != c.want {
			t.Fatalf("DurationDays(%v): expected %d, got %d", c.end.Sub(start), c.want, got)
		}
	}
}
