// README: Tariff definition and fare estimate result.
package pricing

// Tariff holds the fixed linear fare model: a base charge, a per-kilometre
// and per-minute component, and a floor below which no fare may fall.
// Amounts are in whole currency units.
type Tariff struct {
	BaseFare      float64
	PerKmRate     float64
	PerMinuteRate float64
	MinimumFare   float64
	Currency      string
}

// DefaultTariff is used when no tariff row is configured in the database.
var DefaultTariff = Tariff{
	BaseFare:      50,
	PerKmRate:     15,
	PerMinuteRate: 3,
	MinimumFare:   200,
	Currency:      "KES",
}

// DefaultDurationMin is the assumed trip duration when the caller supplies
// none. No travel-time source exists yet, so every unqualified estimate
// prices a 10-minute trip.
const DefaultDurationMin = 10.0

// FareEstimate is derived from pickup/dropoff and never persisted on its
// own; a Booking snapshots these values at creation time.
type FareEstimate struct {
	DistanceKm float64 `json:"distance_km"`
	Fare       float64 `json:"fare"`
	Currency   string  `json:"currency"`
}
