// README: Booking service: draft validation, fare fixing, list strategies.
package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"taxigo/internal/modules/pricing"
	"taxigo/internal/types"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Store persists bookings. Insert assigns ID and CreatedAt; ListByUserOrdered
// relies on the backend's filter+order query, ListByUser on the filter-only
// query (no ordering guarantee).
type Store interface {
	Insert(ctx context.Context, b *Booking) error
	ListByUserOrdered(ctx context.Context, userID types.ID) ([]Booking, error)
	ListByUser(ctx context.Context, userID types.ID) ([]Booking, error)
}

type Service struct {
	store   Store
	pricing *pricing.Service
}

func NewService(store Store, pricingSvc *pricing.Service) *Service {
	return &Service{store: store, pricing: pricingSvc}
}

// Create validates the draft, prices the trip at call time, and persists
// the booking with status pending. The caller never supplies a fare; the
// persisted distance/fare always equal the quote for the draft's own
// pickup/dropoff.
func (s *Service) Create(ctx context.Context, d Draft) (*Booking, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	est, err := s.pricing.Quote(ctx, d.Pickup.Point(), d.Dropoff.Point(), 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	b := &Booking{
		UserID:      d.UserID,
		UserEmail:   d.UserEmail,
		Pickup:      *d.Pickup,
		Dropoff:     *d.Dropoff,
		PaymentMode: d.PaymentMode,
		DistanceKm:  round2(est.DistanceKm),
		Fare:        est.Fare,
		Currency:    est.Currency,
		Status:      StatusPending,
	}
	if err := s.store.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return b, nil
}

// listStrategy is one named way of fetching a user's bookings. Strategies
// run in order; the first success wins.
type listStrategy struct {
	name string
	run  func(ctx context.Context, userID types.ID) ([]Booking, error)
}

// List returns the user's bookings, most recent first. The indexed
// strategy asks the backend to order; if the backend rejects the combined
// filter+order query (missing composite index is the usual cause), the
// scan strategy fetches unordered and sorts here. Zero bookings is an
// empty slice, not an error.
func (s *Service) List(ctx context.Context, userID types.ID) ([]Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	strategies := []listStrategy{
		{name: "indexed", run: s.store.ListByUserOrdered},
		{name: "scan", run: s.listScan},
	}

	var lastErr error
	for _, st := range strategies {
		out, err := st.run(ctx, userID)
		if err != nil {
			lastErr = err
			continue
		}
		if out == nil {
			out = []Booking{}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, lastErr)
}

func (s *Service) listScan(ctx context.Context, userID types.ID) ([]Booking, error) {
	out, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func validateDraft(d Draft) error {
	switch {
	case d.UserID == "":
		return fmt.Errorf("%w: user id is required", ErrValidation)
	case d.Pickup == nil:
		return fmt.Errorf("%w: pickup is required", ErrValidation)
	case d.Dropoff == nil:
		return fmt.Errorf("%w: dropoff is required", ErrValidation)
	case d.Pickup.Address == "":
		return fmt.Errorf("%w: pickup address is required", ErrValidation)
	case d.Dropoff.Address == "":
		return fmt.Errorf("%w: dropoff address is required", ErrValidation)
	case !d.Pickup.Point().Valid():
		return fmt.Errorf("%w: pickup coordinates out of range", ErrValidation)
	case !d.Dropoff.Point().Valid():
		return fmt.Errorf("%w: dropoff coordinates out of range", ErrValidation)
	case !d.PaymentMode.Valid():
		return fmt.Errorf("%w: unknown payment mode %q", ErrValidation, d.PaymentMode)
	}
	return nil
}

// Stored distance keeps two decimals, matching what the fare was computed
// for on the estimate side.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
