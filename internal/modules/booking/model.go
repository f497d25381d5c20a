// README: Booking record, draft, and enums.
package booking

import (
	"time"

	"taxigo/internal/types"
)

// PaymentMode values carry the wire strings the mobile clients send.
type PaymentMode string

const (
	PaymentCash        PaymentMode = "Cash"
	PaymentMobileMoney PaymentMode = "M-Pesa"
	PaymentCard        PaymentMode = "Card"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentMobileMoney, PaymentCard:
		return true
	}
	return false
}

type Status string

// StatusPending is the only status this service ever writes. A booking is
// terminal after creation: there are no update or cancel transitions.
const StatusPending Status = "pending"

// Location is a labelled point as chosen on the map or from search.
// Immutable once attached to a booking.
type Location struct {
	Lat     float64 `json:"lat" firestore:"lat"`
	Lng     float64 `json:"lng" firestore:"lng"`
	Address string  `json:"address" firestore:"address"`
}

func (l Location) Point() types.Point {
	return types.Point{Lat: l.Lat, Lng: l.Lng}
}

// Booking is the persisted record. Field names follow the bookings
// collection schema: documents written by earlier client versions must
// keep decoding.
type Booking struct {
	ID          types.ID    `json:"id" firestore:"-"`
	UserID      types.ID    `json:"user_id" firestore:"userId"`
	UserEmail   string      `json:"user_email" firestore:"userEmail"`
	Pickup      Location    `json:"pickup" firestore:"pickup"`
	Dropoff     Location    `json:"dropoff" firestore:"dropoff"`
	PaymentMode PaymentMode `json:"payment_mode" firestore:"paymentMode"`
	DistanceKm  float64     `json:"distance_km" firestore:"distance"`
	Fare        float64     `json:"fare" firestore:"fare"`
	Currency    string      `json:"currency" firestore:"currency"`
	Status      Status      `json:"status" firestore:"status"`
	CreatedAt   time.Time   `json:"created_at" firestore:"timestamp,serverTimestamp"`
}

// Draft is the explicit booking-in-progress value handed through
// validation and pricing. Identity comes from the verified token, never
// from client input.
type Draft struct {
	UserID      types.ID
	UserEmail   string
	Pickup      *Location
	Dropoff     *Location
	PaymentMode PaymentMode
}
