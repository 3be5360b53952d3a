package scoreboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
	"github.com/blaze-intelligence/scoreboard-service/internal/logging"
	"github.com/blaze-intelligence/scoreboard-service/internal/metrics"
	"github.com/blaze-intelligence/scoreboard-service/internal/providers"
)

const defaultFetchTimeout = 8 * time.Second

// Service orchestrates fetch, normalize, cache, and fallback per sport.
// It exclusively owns the cache; handlers only talk to the service.
type Service struct {
	provider     providers.ScoreProvider
	providerName string
	cache        *Cache
	logger       *slog.Logger
	metrics      *metrics.Recorder
	fetchTimeout time.Duration
	now          func() time.Time
}

// NewService constructs a Service around a provider and cache.
func NewService(provider providers.ScoreProvider, providerName string, cache *Cache, logger *slog.Logger, recorder *metrics.Recorder, fetchTimeout time.Duration) *Service {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Service{
		provider:     provider,
		providerName: providerName,
		cache:        cache,
		logger:       logger,
		metrics:      recorder,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

// SupportedSports returns the fixed set of sports this service aggregates.
func (s *Service) SupportedSports() []domain.SportKey {
	return domain.Sports()
}

// GetScoreboard returns the scoreboard for a sport, tagged with its source.
// Fresh cache wins; otherwise the upstream is fetched with a bounded timeout
// and cached on success. Any fetch failure, timeout, or empty normalized
// result degrades to the static fallback, which is never cached so the next
// request retries upstream. Only an unsupported sport key is an error.
func (s *Service) GetScoreboard(ctx context.Context, sport domain.SportKey) (domain.Scoreboard, error) {
	if !sport.Valid() {
		return domain.Scoreboard{}, &domain.InvalidSportError{Sport: string(sport)}
	}

	logger := logging.FromContext(ctx, s.logger)

	if events, fetchedAt, ok := s.cache.Get(sport); ok {
		return s.serve(logger, sport, events, domain.SourceCache, fetchedAt), nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := s.now()
	events, err := s.provider.FetchScoreboard(fetchCtx, sport)
	if s.metrics != nil {
		s.metrics.RecordProviderAttempt(s.providerName, time.Since(start), err)
	}

	if err != nil || len(events) == 0 {
		if err != nil {
			logging.Warn(logger, "upstream fetch failed, serving fallback",
				logging.FieldSport, string(sport),
				logging.FieldProvider, s.providerName,
				"error", err,
			)
		} else {
			logging.Warn(logger, "upstream returned no usable events, serving fallback",
				logging.FieldSport, string(sport),
				logging.FieldProvider, s.providerName,
			)
		}
		return s.serve(logger, sport, FallbackEvents(sport), domain.SourceFallback, s.now()), nil
	}

	fetchedAt := s.cache.Set(sport, events)
	return s.serve(logger, sport, events, domain.SourceLive, fetchedAt), nil
}

// CacheSummary reports cache state per supported sport. Read-only.
func (s *Service) CacheSummary() map[domain.SportKey]EntrySummary {
	return s.cache.Summary()
}

func (s *Service) serve(logger *slog.Logger, sport domain.SportKey, events []domain.Event, source domain.Source, fetchedAt time.Time) domain.Scoreboard {
	if s.metrics != nil {
		s.metrics.RecordScoreboardServe(string(sport), string(source))
	}
	logging.Info(logger, "served scoreboard",
		logging.FieldSport, string(sport),
		logging.FieldSource, string(source),
		logging.FieldCount, len(events),
	)
	return domain.Scoreboard{
		Sport:     sport,
		Events:    events,
		Source:    source,
		FetchedAt: fetchedAt,
	}
}
