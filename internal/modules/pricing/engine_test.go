// README: Engine tests (distance properties + tariff arithmetic).
package pricing

import (
	"errors"
	"math"
	"testing"

	"taxigo/internal/types"
)

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: -1.2864, Lng: 36.8172},
			b:         types.Point{Lat: -1.2864, Lng: 36.8172},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "Nairobi CBD to Upper Hill (~2.1km)",
			a:         types.Point{Lat: -1.2864, Lng: 36.8172},
			b:         types.Point{Lat: -1.3000, Lng: 36.8000},
			wantKm:    2.1,
			tolerance: 0.1,
		},
		{
			name:      "Nairobi to Mombasa (~440km)",
			a:         types.Point{Lat: -1.2864, Lng: 36.8172},
			b:         types.Point{Lat: -4.0435, Lng: 39.6682},
			wantKm:    440,
			tolerance: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Distance() error = %v", err)
			}
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("Distance() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
			if got < 0 {
				t.Errorf("Distance() = %f, want non-negative", got)
			}
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	a := types.Point{Lat: -1.2864, Lng: 36.8172}
	b := types.Point{Lat: -4.0435, Lng: 39.6682}
	d1, err1 := Distance(a, b)
	d2, err2 := Distance(b, a)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistance_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Point
	}{
		{"latitude above range", types.Point{Lat: 91, Lng: 0}, types.Point{}},
		{"latitude below range", types.Point{Lat: -90.5, Lng: 0}, types.Point{}},
		{"longitude above range", types.Point{Lat: 0, Lng: 200}, types.Point{}},
		{"invalid second point", types.Point{}, types.Point{Lat: 0, Lng: -181}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Distance(tt.a, tt.b); !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("Distance() error = %v, want ErrInvalidCoordinate", err)
			}
		})
	}
}

func TestTariff_Estimate(t *testing.T) {
	tests := []struct {
		name        string
		distanceKm  float64
		durationMin float64
		wantFare    float64
	}{
		{"minimum fare floor", 0, 0, 200},
		{"short trip stays at floor", 5, 10, 200},   // 50 + 75 + 30 = 155 < 200
		{"above the floor", 10, 10, 230},            // 50 + 150 + 30
		{"distance only", 20, 0, 350},               // 50 + 300
		{"fractional rounding", 2.111, 10, 200},     // 50 + 31.665 + 30 = 111.665 -> floor
		{"fractional above floor", 10.5, 10, 237.5}, // 50 + 157.5 + 30
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultTariff.Estimate(tt.distanceKm, tt.durationMin)
			if err != nil {
				t.Fatalf("Estimate() error = %v", err)
			}
			if got.Fare != tt.wantFare {
				t.Errorf("Estimate() fare = %v, want %v", got.Fare, tt.wantFare)
			}
			if got.DistanceKm != tt.distanceKm {
				t.Errorf("Estimate() distance = %v, want %v", got.DistanceKm, tt.distanceKm)
			}
			if got.Currency != "KES" {
				t.Errorf("Estimate() currency = %q, want KES", got.Currency)
			}
		})
	}
}

func TestTariff_Estimate_InvalidArguments(t *testing.T) {
	if _, err := DefaultTariff.Estimate(-1, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative distance: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := DefaultTariff.Estimate(1, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative duration: error = %v, want ErrInvalidArgument", err)
	}
}
