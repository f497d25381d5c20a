// README: Tariff store backed by PostgreSQL.
package pricing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetActiveTariff returns the single active tariff row. Callers fall back
// to DefaultTariff on any error, including pgx.ErrNoRows.
func (s *Store) GetActiveTariff(ctx context.Context) (Tariff, error) {
	row := s.db.QueryRow(ctx, `
        SELECT base_fare, per_km_rate, per_minute_rate, minimum_fare, currency
        FROM tariffs
        WHERE active
        ORDER BY updated_at DESC
        LIMIT 1`,
	)
	var t Tariff
	if err := row.Scan(&t.BaseFare, &t.PerKmRate, &t.PerMinuteRate, &t.MinimumFare, &t.Currency); err != nil {
		return Tariff{}, err
	}
	if t.Currency == "" {
		t.Currency = DefaultTariff.Currency
	}
	return t, nil
}
