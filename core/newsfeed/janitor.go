// ABOUTME: Retention janitor deleting feed entries older than the configured window
// ABOUTME: Runs on a cron schedule; the only path that ever deletes feed entries

package newsfeed

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"newsfeed-app-api/core/interfaces"
)

// janitorSchedule runs the sweep nightly, off the busy hours.
const janitorSchedule = "17 3 * * *"

// janitorSweepTimeout bounds a single sweep.
const janitorSweepTimeout = 10 * time.Minute

// Janitor deletes feed entries older than the retention window. The
// cached slices hold only the newest entries per recipient, so removing
// old tail rows never breaks the cached prefix and no invalidation is
// issued.
type Janitor struct {
	deps      interfaces.Dependencies
	retention time.Duration
	cron      *cron.Cron
}

// NewJanitor creates a retention janitor. retention must be positive;
// callers disable retention by not constructing a janitor at all.
func NewJanitor(deps interfaces.Dependencies, retention time.Duration) *Janitor {
	return &Janitor{
		deps:      deps,
		retention: retention,
		cron:      cron.New(),
	}
}

// Start schedules the nightly sweep
func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc(janitorSchedule, j.sweep); err != nil {
		return err
	}

	j.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// sweep deletes all entries older than the retention window
func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), janitorSweepTimeout)
	defer cancel()

	cutoff := time.Now().UTC().Add(-j.retention)

	deleted, err := j.deps.FeedStore.DeleteEntriesBefore(ctx, cutoff)
	if err != nil {
		j.deps.Logger.Error("feed retention sweep failed", map[string]interface{}{
			"cutoff": cutoff.Format(time.RFC3339),
			"error":  err.Error(),
		})
		return
	}

	j.deps.Logger.Info("feed retention sweep completed", map[string]interface{}{
		"cutoff":  cutoff.Format(time.RFC3339),
		"deleted": deleted,
	})
}
