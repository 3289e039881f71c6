package patient

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Autosaver debounces snapshot writes. Mutations signal it through Notify;
// after a quiet delay it persists one snapshot covering every change since
// the last save. A failed save is logged and retried on the next signal.
type Autosaver struct {
	collection *Collection
	repo       SnapshotRepository
	delay      time.Duration
	logger     zerolog.Logger
	dirty      chan struct{}
}

func NewAutosaver(collection *Collection, repo SnapshotRepository, delay time.Duration, logger zerolog.Logger) *Autosaver {
	if delay <= 0 {
		delay = 5 * time.Second
	}
	return &Autosaver{
		collection: collection,
		repo:       repo,
		delay:      delay,
		logger:     logger,
		dirty:      make(chan struct{}, 1),
	}
}

// Notify marks the collection dirty. Never blocks; coalesces with a pending
// signal.
func (a *Autosaver) Notify() {
	select {
	case a.dirty <- struct{}{}:
	default:
	}
}

// Run drives the debounce loop until ctx is cancelled. A pending dirty state
// is flushed before returning.
func (a *Autosaver) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-a.dirty:
			if timer == nil {
				timer = time.NewTimer(a.delay)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(a.delay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			a.save(ctx)

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			if fire != nil || len(a.dirty) > 0 {
				a.Flush(context.Background())
			}
			return
		}
	}
}

// Flush persists a snapshot immediately, regardless of the debounce timer.
func (a *Autosaver) Flush(ctx context.Context) {
	a.save(ctx)
}

func (a *Autosaver) save(ctx context.Context) {
	snap := a.collection.Snapshot()
	if err := a.repo.Save(ctx, snap); err != nil {
		a.logger.Error().Err(err).Msg("autosave failed")
		// Re-arm so the next quiet window retries.
		a.Notify()
		return
	}
	a.logger.Debug().Int("patients", len(snap.Patients)).Msg("snapshot saved")
}
