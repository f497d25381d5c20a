// README: Firestore store tests (emulator-backed).
package booking

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"

	"taxigo/internal/types"
)

func emulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set; skipping emulator-backed tests")
	}
	client, err := firestore.NewClient(context.Background(), "taxigo-test")
	if err != nil {
		t.Fatalf("firestore client: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func testBooking(userID types.ID) *Booking {
	return &Booking{
		UserID:      userID,
		UserEmail:   "rider@example.com",
		Pickup:      Location{Lat: -1.2864, Lng: 36.8172, Address: "Moi Avenue"},
		Dropoff:     Location{Lat: -1.3000, Lng: 36.8000, Address: "Upper Hill"},
		PaymentMode: PaymentCash,
		DistanceKm:  2.1,
		Fare:        200,
		Currency:    "KES",
		Status:      StatusPending,
	}
}

func TestFirestoreStore_Insert_TimestampMatchesStoredDocument(t *testing.T) {
	client := emulatorClient(t)
	store := NewFirestoreStore(client, fmt.Sprintf("bookings_test_%d", time.Now().UnixNano()))
	ctx := context.Background()

	uid := types.ID("rider-ts")
	b := testBooking(uid)
	if err := store.Insert(ctx, b); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if b.ID == "" {
		t.Fatal("Insert() left ID empty")
	}
	if b.CreatedAt.IsZero() {
		t.Fatal("Insert() left CreatedAt zero")
	}

	// The projection handed back must carry the same timestamp the
	// document stores, since that field is the list ordering key.
	stored, err := store.ListByUser(ctx, uid)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("ListByUser() returned %d bookings, want 1", len(stored))
	}
	if !stored[0].CreatedAt.Equal(b.CreatedAt) {
		t.Errorf("stored timestamp = %v, projection = %v; want equal",
			stored[0].CreatedAt, b.CreatedAt)
	}
}

func TestFirestoreStore_ListByUser_FiltersOtherUsers(t *testing.T) {
	client := emulatorClient(t)
	store := NewFirestoreStore(client, fmt.Sprintf("bookings_test_%d", time.Now().UnixNano()))
	ctx := context.Background()

	mine := types.ID("rider-mine")
	other := types.ID("rider-other")
	for _, uid := range []types.ID{mine, other, mine} {
		if err := store.Insert(ctx, testBooking(uid)); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got, err := store.ListByUser(ctx, mine)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByUser() returned %d bookings, want 2", len(got))
	}
	for _, b := range got {
		if b.UserID != mine {
			t.Errorf("ListByUser() leaked booking for %q", b.UserID)
		}
	}
}
