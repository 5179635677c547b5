package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// DefaultSweepInterval is how often expired sessions are purged.
const DefaultSweepInterval = 10 * time.Minute

// SessionSweeper periodically deletes expired session records. Expired
// sessions are already rejected on lookup; sweeping only reclaims storage.
type SessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	ctx = s.logger.WithContext(ctx)

	purged, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("func", "*SessionSweeper.sweep").Msg("error purging expired sessions")
		}
		return
	}
	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("expired sessions purged")
	}
}
