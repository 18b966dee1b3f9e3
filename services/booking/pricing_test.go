package booking

import "testing"

func TestComputePriceKnownPackages(t *testing.T) {
	catalog := NewCatalog()

	for _, deal := range catalog.Deals() {
		quote := ComputePrice(catalog, deal.ID, 999, 1, false)
		if quote.BasePrice != deal.BasePrice {
			t.Errorf("package %s: expected base price %.2f, got %.2f", deal.ID, deal.BasePrice, quote.BasePrice)
		}
		if quote.TotalPrice != deal.BasePrice {
			t.Errorf("package %s: expected total %.2f, got %.2f", deal.ID, deal.BasePrice, quote.TotalPrice)
		}
	}
}

func TestComputePriceHourlyFallback(t *testing.T) {
	catalog := NewCatalog()

	quote := ComputePrice(catalog, "no-such-package", 80, 3, false)
	if quote.BasePrice != 240 {
		t.Errorf("expected base price 240, got %.2f", quote.BasePrice)
	}

	// Unspecified hours default to the 2-hour policy.
	quote = ComputePrice(catalog, "", 80, 0, false)
	if quote.BasePrice != 160 {
		t.Errorf("expected base price 160, got %.2f", quote.BasePrice)
	}
}

func TestComputePriceLoyaltyDiscount(t *testing.T) {
	catalog := NewCatalog()

	quote := ComputePrice(catalog, "first-date", 0, 0, true)
	if quote.LoyaltyDiscount != LoyaltyDiscountAmount {
		t.Errorf("expected discount %.2f, got %.2f", LoyaltyDiscountAmount, quote.LoyaltyDiscount)
	}
	if quote.TotalPrice != 110 {
		t.Errorf("expected total 110, got %.2f", quote.TotalPrice)
	}

	quote = ComputePrice(catalog, "first-date", 0, 0, false)
	if quote.LoyaltyDiscount != 0 {
		t.Errorf("expected no discount, got %.2f", quote.LoyaltyDiscount)
	}
}

func TestComputePriceNeverNegative(t *testing.T) {
	catalog := NewCatalog()

	// A $5 booking with the flat $10 discount must clamp at zero.
	quote := ComputePrice(catalog, "", 2.5, 2, true)
	if quote.BasePrice != 5 {
		t.Fatalf("expected base price 5, got %.2f", quote.BasePrice)
	}
	if quote.TotalPrice != 0 {
		t.Errorf("expected total clamped to 0, got %.2f", quote.TotalPrice)
	}
}
