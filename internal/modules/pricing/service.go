// README: Pricing service; loads the tariff once and quotes trips.
package pricing

import (
	"context"
	"sync"

	"taxigo/internal/types"
)

// tariffSource is what the service needs from the tariff store.
type tariffSource interface {
	GetActiveTariff(ctx context.Context) (Tariff, error)
}

// Service wraps the pure engine with tariff lookup. A nil store (no
// database configured) means DefaultTariff applies.
type Service struct {
	source tariffSource

	mu     sync.Mutex
	tariff Tariff
	loaded bool
}

func NewService(store *Store) *Service {
	s := &Service{}
	if store != nil {
		s.source = store
	}
	return s
}

// Tariff returns the effective tariff, loading it from the store on first
// use. Lookup failure is not an error: the built-in default applies so
// the fare model keeps working without a relational backend, and the
// lookup is retried on the next call rather than pinning the default
// after a transient startup failure.
func (s *Service) Tariff(ctx context.Context) Tariff {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.tariff
	}
	if s.source == nil {
		s.tariff = DefaultTariff
		s.loaded = true
		return s.tariff
	}
	t, err := s.source.GetActiveTariff(ctx)
	if err != nil {
		return DefaultTariff
	}
	s.tariff = t
	s.loaded = true
	return s.tariff
}

// Quote computes distance and fare for a trip. durationMin == 0 means
// "not supplied" and selects the default trip duration; negative
// durations are rejected, not coerced.
func (s *Service) Quote(ctx context.Context, pickup, dropoff types.Point, durationMin float64) (FareEstimate, error) {
	if durationMin < 0 {
		return FareEstimate{}, ErrInvalidArgument
	}
	if durationMin == 0 {
		durationMin = DefaultDurationMin
	}
	d, err := Distance(pickup, dropoff)
	if err != nil {
		return FareEstimate{}, err
	}
	return s.Tariff(ctx).Estimate(d, durationMin)
}
