package pricing_test

import (
	"errors"
	"testing"

	"pulse-events/backend/internal/domain"
	"pulse-events/backend/internal/pricing"
)

func TestApplyCode_KnownCode(t *testing.T) {
	code, err := pricing.ApplyCode("SAVE20")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if code == nil || code.Code != "SAVE20" {
		t.Fatalf("Expected SAVE20, got %+v", code)
	}
	if code.Type != domain.DiscountPercentage || code.Discount != 20 {
		t.Errorf("Expected 20%% percentage code, got %+v", code)
	}
}

func TestApplyCode_NormalizesCaseAndWhitespace(t *testing.T) {
	normalized, err := pricing.ApplyCode("  save10 ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	plain, _ := pricing.ApplyCode("SAVE10")
	if normalized == nil || plain == nil || *normalized != *plain {
		t.Errorf("Expected '  save10 ' to resolve like 'SAVE10', got %+v vs %+v", normalized, plain)
	}
}

func TestApplyCode_EmptyClearsDiscount(t *testing.T) {
	for _, input := range []string{"", "   "} {
		code, err := pricing.ApplyCode(input)
		if err != nil {
			t.Errorf("Input %q: expected no error, got %v", input, err)
		}
		if code != nil {
			t.Errorf("Input %q: expected nil code, got %+v", input, code)
		}
	}
}

func TestApplyCode_UnknownCodeRejected(t *testing.T) {
	code, err := pricing.ApplyCode("BOGUS")
	if !errors.Is(err, pricing.ErrInvalidCode) {
		t.Fatalf("Expected ErrInvalidCode, got %v", err)
	}
	if !domain.IsValidation(err) {
		t.Error("Expected a validation error")
	}
	if code != nil {
		t.Errorf("Expected no discount to become active, got %+v", code)
	}
}

func TestBreakdown_Percentage(t *testing.T) {
	code, _ := pricing.ApplyCode("SAVE20")
	b := pricing.Breakdown(50, 2, code)

	if b.Subtotal != 100 {
		t.Errorf("Expected subtotal 100, got %v", b.Subtotal)
	}
	if b.DiscountAmount != 20 {
		t.Errorf("Expected discount 20, got %v", b.DiscountAmount)
	}
	if b.Total != 80 {
		t.Errorf("Expected total 80, got %v", b.Total)
	}
}

func TestBreakdown_FixedCappedAtSubtotal(t *testing.T) {
	code, _ := pricing.ApplyCode("FREETICKET")
	b := pricing.Breakdown(3, 1, code)

	if b.Subtotal != 3 {
		t.Errorf("Expected subtotal 3, got %v", b.Subtotal)
	}
	if b.DiscountAmount != 3 {
		t.Errorf("Expected discount capped at 3, got %v", b.DiscountAmount)
	}
	if b.Total != 0 {
		t.Errorf("Expected total 0, got %v", b.Total)
	}
}

func TestBreakdown_FixedIsPerTicket(t *testing.T) {
	code, _ := pricing.ApplyCode("FREETICKET")
	b := pricing.Breakdown(20, 3, code)

	if b.Subtotal != 60 {
		t.Errorf("Expected subtotal 60, got %v", b.Subtotal)
	}
	if b.DiscountAmount != 15 {
		t.Errorf("Expected 5 off per ticket (15), got %v", b.DiscountAmount)
	}
	if b.Total != 45 {
		t.Errorf("Expected total 45, got %v", b.Total)
	}
}

func TestBreakdown_Idempotent(t *testing.T) {
	code, _ := pricing.ApplyCode("WELCOME")
	first := pricing.Breakdown(33.33, 4, code)
	second := pricing.Breakdown(33.33, 4, code)

	if first != second {
		t.Errorf("Expected identical breakdowns, got %+v vs %+v", first, second)
	}
}

func TestBreakdown_TotalNeverNegative(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		quantity int
		code     string
	}{
		{"free event no code", 0, 2, ""},
		{"free event percentage", 0, 5, "SAVE20"},
		{"fixed over-discount", 1, 10, "FREETICKET"},
		{"full percentage", 10, 1, "EARLYBIRD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := pricing.ApplyCode(tc.code)
			if err != nil {
				t.Fatalf("ApplyCode(%q): %v", tc.code, err)
			}
			b := pricing.Breakdown(tc.price, tc.quantity, code)
			if b.Total < 0 {
				t.Errorf("Total went negative: %+v", b)
			}
			if b.DiscountAmount > b.Subtotal {
				t.Errorf("Discount exceeds subtotal: %+v", b)
			}
		})
	}
}

func TestBreakdown_ClampsOutOfRangeInputs(t *testing.T) {
	b := pricing.Breakdown(-5, 0, nil)
	if b.PricePerTicket != 0 || b.Quantity != 1 {
		t.Errorf("Expected clamped price 0 and quantity 1, got %+v", b)
	}

	b = pricing.Breakdown(10, 99, nil)
	if b.Quantity != pricing.MaxQuantity {
		t.Errorf("Expected quantity clamped to %d, got %d", pricing.MaxQuantity, b.Quantity)
	}
	if b.Subtotal != 100 {
		t.Errorf("Expected subtotal 100 after clamping, got %v", b.Subtotal)
	}
}

func TestBreakdown_FreeEventIsZeroNotMissing(t *testing.T) {
	b := pricing.Breakdown(0, 3, nil)
	if b.Subtotal != 0 || b.Total != 0 || b.DiscountAmount != 0 {
		t.Errorf("Expected all-zero breakdown for a free event, got %+v", b)
	}
}
