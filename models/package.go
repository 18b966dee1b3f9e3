package models

// PackageDeal is a pre-priced bundle of date duration and features,
// selectable in lieu of hourly pricing. Deals are defined at process
// start and never mutated.
type PackageDeal struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	DurationHours int      `json:"duration"`      // Date length in hours
	BasePrice     float64  `json:"price"`         // Price in currency units
	Savings       float64  `json:"savings"`       // Advertised saving versus hourly pricing
	Features      []string `json:"features"`
}
