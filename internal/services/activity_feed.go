package services

import (
	"context"
	"sort"
	"time"

	"github.com/tuchonga/tuchonga-api/internal/logger"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const DefaultFeedLimit = 50

// FeedFilters narrows the computed feed. A nil ItemType means both kinds;
// an empty ActivityTypes list means all kinds.
type FeedFilters struct {
	ItemType      *models.ItemType
	ActivityTypes []models.ActivityType
	Page          int
	Limit         int
}

// ActivityFeedService derives feed activities from reviews, comments,
// quick ratings and the item tables. It never writes; every request
// recomputes the feed from scratch.
type ActivityFeedService struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

func NewActivityFeedService(db *gorm.DB, log *logger.Logger) *ActivityFeedService {
	return &ActivityFeedService{db: db, log: log, now: time.Now}
}

// Feed is the process-wide instance used by handlers.
var Feed *ActivityFeedService

func InitFeed(db *gorm.DB, log *logger.Logger) {
	Feed = NewActivityFeedService(db, log)
}

type generator func(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error)

// GetActivityFeed runs every generator, merges their output, applies the
// activity-type filter, ranks by priority then recency, and paginates.
// A failure in any generator fails the whole computation.
func (s *ActivityFeedService) GetActivityFeed(ctx context.Context, filters FeedFilters) (*models.FeedResult, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = DefaultFeedLimit
	}

	// Every generator runs regardless of the requested activity types;
	// the type filter trims the response, not the computation.
	generators := []generator{
		s.positiveReviewStreaks,
		s.negativeReviewStreaks,
		s.trendingUp,
		s.trendingDown,
		s.newItems,
		s.highEngagement,
		s.controversialItems,
		s.risingStars,
		s.ratingMilestones,
		s.activitySpikes,
		s.mostDiscussed,
		s.sentimentSwings,
	}

	// Fixed result slots keep the flattened order independent of
	// goroutine scheduling, so equal (priority, timestamp) pairs sort
	// reproducibly.
	results := make([][]models.Activity, len(generators))
	g, gctx := errgroup.WithContext(ctx)
	for i, gen := range generators {
		i, gen := i, gen
		g.Go(func() error {
			activities, err := gen(gctx, filters.ItemType)
			if err != nil {
				return err
			}
			results[i] = activities
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]models.Activity, 0, 64)
	for _, r := range results {
		all = append(all, r...)
	}

	if len(filters.ActivityTypes) > 0 {
		allowed := make(map[models.ActivityType]bool, len(filters.ActivityTypes))
		for _, t := range filters.ActivityTypes {
			allowed[t] = true
		}
		filtered := all[:0]
		for _, a := range all {
			if allowed[a.Type] {
				filtered = append(filtered, a)
			}
		}
		all = filtered
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Priority != all[j].Priority {
			return all[i].Priority > all[j].Priority
		}
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	total := len(all)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &models.FeedResult{
		Activities: all[start:end],
		Meta: models.FeedMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}
