// README: Booking store backed by Firestore.
package booking

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"taxigo/internal/types"
)

const (
	fieldUserID    = "userId"
	fieldCreatedAt = "timestamp"
)

// FirestoreStore implements Store on a Firestore collection. Document IDs
// are Firestore-generated and the createdAt field uses the server
// timestamp sentinel, so ordering is assigned by the backend, not the
// client clock.
type FirestoreStore struct {
	client *firestore.Client
	col    string
}

func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	return &FirestoreStore{client: client, col: collection}
}

func (s *FirestoreStore) Insert(ctx context.Context, b *Booking) error {
	doc := s.client.Collection(s.col).NewDoc()
	res, err := doc.Create(ctx, b)
	if err != nil {
		return err
	}
	b.ID = types.ID(doc.ID)
	// The serverTimestamp sentinel resolves to the commit time, so the
	// write result gives back the same value the document stores.
	b.CreatedAt = res.UpdateTime
	return nil
}

// ListByUserOrdered runs the filter+order query. Without the composite
// index on (userId, timestamp) Firestore rejects it; callers handle that
// by falling back to ListByUser.
func (s *FirestoreStore) ListByUserOrdered(ctx context.Context, userID types.ID) ([]Booking, error) {
	q := s.client.Collection(s.col).
		Where(fieldUserID, "==", string(userID)).
		OrderBy(fieldCreatedAt, firestore.Desc)
	return collect(q.Documents(ctx))
}

func (s *FirestoreStore) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	q := s.client.Collection(s.col).Where(fieldUserID, "==", string(userID))
	return collect(q.Documents(ctx))
}

func collect(iter *firestore.DocumentIterator) ([]Booking, error) {
	defer iter.Stop()

	var out []Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var b Booking
		if err := doc.DataTo(&b); err != nil {
			return nil, err
		}
		b.ID = types.ID(doc.Ref.ID)
		out = append(out, b)
	}
	return out, nil
}
