package booking

// Pricing policy constants.
const (
	// DefaultBookingHours is the billed duration when no package is chosen
	// and the caller does not specify hours.
	DefaultBookingHours = 2

	// DefaultHourlyRate applies when the companion directory cannot supply
	// a rate for the companion being booked.
	DefaultHourlyRate = 60.0

	// LoyaltyDiscountAmount is the flat reduction applied to a booking's
	// first occurrence when the requester redeems loyalty points.
	LoyaltyDiscountAmount = 10.0
)

// Quote is the result of a price computation.
type Quote struct {
	BasePrice       float64 `json:"basePrice"`
	LoyaltyDiscount float64 `json:"loyaltyDiscount"`
	TotalPrice      float64 `json:"totalPrice"`
}

// ComputePrice resolves the base price for a booking and applies the loyalty
// discount. If packageID resolves in the catalog the deal price wins;
// otherwise the price is hourlyRate x hours. The total is clamped at zero so
// the flat discount can never push a cheap booking negative.
func ComputePrice(catalog *Catalog, packageID string, hourlyRate float64, hours int, useLoyaltyPoints bool) Quote {
	if hours <= 0 {
		hours = DefaultBookingHours
	}

	basePrice := hourlyRate * float64(hours)
	if deal, ok := catalog.Lookup(packageID); ok {
		basePrice = deal.BasePrice
	}

	var discount float64
	if useLoyaltyPoints {
		discount = LoyaltyDiscountAmount
	}

	total := basePrice - discount
	if total < 0 {
		total = 0
	}

	return Quote{
		BasePrice:       basePrice,
		LoyaltyDiscount: discount,
		TotalPrice:      total,
	}
}
