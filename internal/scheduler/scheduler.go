package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

type categoryRefresher interface {
	RefreshCategoryCache(ctx context.Context) error
}

// CreateScheduler registers the background jobs. The caller starts and
// shuts down the returned scheduler.
func CreateScheduler(categories categoryRefresher, refreshInterval time.Duration) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			refreshInterval,
		),
		gocron.NewTask(
			func() {
				refreshCategories(categories, refreshInterval)
			},
		),
		gocron.WithName("refresh-category-cache"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func refreshCategories(categories categoryRefresher, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ctx = log.Logger.With().Str("job", "refresh-category-cache").Logger().WithContext(ctx)

	if err := categories.RefreshCategoryCache(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "refreshCategories").Msg("")
	}
}
