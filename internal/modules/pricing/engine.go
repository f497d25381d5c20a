// README: Pure fare computation: haversine distance and linear tariff.
package pricing

import (
	"errors"
	"math"

	"taxigo/internal/types"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidArgument   = errors.New("invalid argument")
)

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometres between two
// points. It is symmetric and returns 0 for identical points.
func Distance(a, b types.Point) (float64, error) {
	if !a.Valid() || !b.Valid() {
		return 0, ErrInvalidCoordinate
	}
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}

// Estimate prices a trip under the tariff. The fare never drops below the
// tariff minimum and is rounded to two decimal places.
func (t Tariff) Estimate(distanceKm, durationMin float64) (FareEstimate, error) {
	if distanceKm < 0 || durationMin < 0 {
		return FareEstimate{}, ErrInvalidArgument
	}
	raw := t.BaseFare + distanceKm*t.PerKmRate + durationMin*t.PerMinuteRate
	fare := math.Max(raw, t.MinimumFare)
	return FareEstimate{
		DistanceKm: distanceKm,
		Fare:       round2(fare),
		Currency:   t.Currency,
	}, nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
