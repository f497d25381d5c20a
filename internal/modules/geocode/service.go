// README: Geocoding service: query gating, redis-cached reverse lookups.
package geocode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"taxigo/internal/types"
)

type Config struct {
	// Region biases forward geocoding (ccTLD, e.g. "ke").
	Region string
	// MinQueryChars gates forward searches; shorter queries return an
	// empty set without a network call.
	MinQueryChars int
	// MaxResults caps forward search results.
	MaxResults int
	// CacheTTL bounds reverse-geocode cache entries.
	CacheTTL time.Duration
	// DebounceDelay is the quiet period SearchDebounced waits for before
	// hitting the provider.
	DebounceDelay time.Duration
}

type Service struct {
	geocoder Geocoder
	cache    *redis.Client
	cfg      Config
	debounce *Debouncer
}

// NewService wires a geocoder with an optional redis cache (nil disables
// caching).
func NewService(geocoder Geocoder, cache *redis.Client, cfg Config) *Service {
	if cfg.MinQueryChars <= 0 {
		cfg.MinQueryChars = 3
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounce
	}
	return &Service{
		geocoder: geocoder,
		cache:    cache,
		cfg:      cfg,
		debounce: NewDebouncer(cfg.DebounceDelay),
	}
}

// Search resolves a free-text query to place candidates. Provider failure
// yields an empty set, never an error: the caller shows "no results" and
// may retry.
func (s *Service) Search(ctx context.Context, query string) []Place {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < s.cfg.MinQueryChars {
		return []Place{}
	}
	results, err := s.geocoder.Search(ctx, query, s.cfg.Region, s.cfg.MaxResults)
	if err != nil || results == nil {
		return []Place{}
	}
	return results
}

// SearchDebounced schedules a Search after the configured quiet period
// and delivers the results to the callback. A call arriving before the
// delay elapses supersedes the pending one, so only the final query in a
// burst of keystrokes reaches the provider.
func (s *Service) SearchDebounced(ctx context.Context, query string, deliver func([]Place)) {
	s.debounce.Do(func() {
		if ctx.Err() != nil {
			return
		}
		deliver(s.Search(ctx, query))
	})
}

// ReverseGeocode returns a human-readable label for a point. On provider
// failure it degrades to the coordinate-formatted label rather than
// erroring.
func (s *Service) ReverseGeocode(ctx context.Context, pt types.Point) string {
	if !pt.Valid() {
		return fallbackLabel(pt)
	}
	key := cacheKey(pt)
	if s.cache != nil {
		if label, err := s.cache.Get(ctx, key).Result(); err == nil && label != "" {
			return label
		}
	}
	label, err := s.geocoder.Reverse(ctx, pt)
	if err != nil || label == "" {
		return fallbackLabel(pt)
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, label, s.cfg.CacheTTL)
	}
	return label
}

func cacheKey(pt types.Point) string {
	// 5 decimal places is ~1m resolution; close taps share a cache entry.
	return fmt.Sprintf("geocode:rev:%.5f,%.5f", pt.Lat, pt.Lng)
}

func fallbackLabel(pt types.Point) string {
	return fmt.Sprintf("%.4f, %.4f", pt.Lat, pt.Lng)
}
