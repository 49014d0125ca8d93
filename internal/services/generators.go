package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Feed policy constants. The weights are load-bearing for ranking
// compatibility with existing clients; do not tweak casually.
const (
	reviewStreakWindow = 7 * 24 * time.Hour
	minStreakLength    = 3
	streakPriorityStep = 10
	positiveStreakBase = 50
	negativeStreakBase = 40

	trendRecentWindow  = 7 * 24 * time.Hour
	trendHistoryWindow = 30 * 24 * time.Hour
	trendThreshold     = 15.0
	trendPriorityBase  = 60

	newItemWindow   = 3 * 24 * time.Hour
	newItemPriority = 30

	engagementWindow         = 7 * 24 * time.Hour
	engagementCommentWeight  = 0.5
	engagementThreshold      = 5.0
	engagementPriorityFactor = 5

	controversialMinReviews = 10
	controversialMinRatio   = 0.2
	// Controversy scans only the head of each table; a full catalog
	// scan is not worth it at the expected table sizes.
	controversialScanLimit = 100
	controversialPriority  = 45

	discussedWindow         = 7 * 24 * time.Hour
	discussedMinComments    = 10
	discussedTopGroups      = 10
	discussedPriorityFactor = 2

	milestoneSpan            = 10
	milestonePriorityDivisor = 10
)

var ratingMilestoneSteps = []int{50, 100, 250, 500, 1000}

// itemRef is the common shape of a product or service row, tagged with
// which table it came from.
type itemRef struct {
	ID               uuid.UUID
	Kind             models.ItemType
	Name             string
	Image            string
	CreatedAt        time.Time
	TotalReviews     int
	PositiveReviews  int
	NegativeReviews  int
	QuickRatingTotal int
}

func productRef(p *models.Product) *itemRef {
	return &itemRef{
		ID:               p.ID,
		Kind:             models.ItemTypeProduct,
		Name:             p.ProductName,
		Image:            p.MainImage,
		CreatedAt:        p.CreatedAt,
		TotalReviews:     p.TotalReviews,
		PositiveReviews:  p.PositiveReviews,
		NegativeReviews:  p.NegativeReviews,
		QuickRatingTotal: p.QuickRatingTotal,
	}
}

func serviceRef(sv *models.Service) *itemRef {
	return &itemRef{
		ID:               sv.ID,
		Kind:             models.ItemTypeService,
		Name:             sv.ServiceName,
		Image:            sv.MainImage,
		CreatedAt:        sv.CreatedAt,
		TotalReviews:     sv.TotalReviews,
		PositiveReviews:  sv.PositiveReviews,
		NegativeReviews:  sv.NegativeReviews,
		QuickRatingTotal: sv.QuickRatingTotal,
	}
}

// findActiveItem resolves an ambiguous item id by probing the product
// table first, then services. Missing or inactive items resolve to nil
// rather than an error.
func (s *ActivityFeedService) findActiveItem(ctx context.Context, id uuid.UUID) (*itemRef, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&p).Error
	if err == nil {
		return productRef(&p), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var sv models.Service
	err = s.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&sv).Error
	if err == nil {
		return serviceRef(&sv), nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

// activeItems loads active rows from the product and/or service tables
// into the common item shape. limit 0 means no cap per table.
func (s *ActivityFeedService) activeItems(ctx context.Context, itemType *models.ItemType, limit int, scope func(*gorm.DB) *gorm.DB) ([]*itemRef, error) {
	var items []*itemRef
	if itemType == nil || *itemType == models.ItemTypeProduct {
		q := s.db.WithContext(ctx).Where("is_active = ?", true)
		if scope != nil {
			q = scope(q)
		}
		if limit > 0 {
			q = q.Limit(limit)
		}
		var products []models.Product
		if err := q.Find(&products).Error; err != nil {
			return nil, err
		}
		for i := range products {
			items = append(items, productRef(&products[i]))
		}
	}
	if itemType == nil || *itemType == models.ItemTypeService {
		q := s.db.WithContext(ctx).Where("is_active = ?", true)
		if scope != nil {
			q = scope(q)
		}
		if limit > 0 {
			q = q.Limit(limit)
		}
		var svcs []models.Service
		if err := q.Find(&svcs).Error; err != nil {
			return nil, err
		}
		for i := range svcs {
			items = append(items, serviceRef(&svcs[i]))
		}
	}
	return items, nil
}

// itemScope restricts a review/comment query to one item kind. No filter
// means one unscoped query covering both kinds, not two scoped ones.
func itemScope(q *gorm.DB, itemType *models.ItemType) *gorm.DB {
	switch {
	case itemType == nil:
		return q
	case *itemType == models.ItemTypeProduct:
		return q.Where("product_id IS NOT NULL")
	default:
		return q.Where("service_id IS NOT NULL")
	}
}

// groupReviewsByItem buckets reviews by item id. Bucket contents keep
// the query order and the returned ids keep first-seen order, which the
// streak scan and tie-breaking depend on.
func groupReviewsByItem(reviews []models.Review) (map[uuid.UUID][]models.Review, []uuid.UUID) {
	grouped := make(map[uuid.UUID][]models.Review)
	var order []uuid.UUID
	for _, r := range reviews {
		id := r.ItemID()
		if id == uuid.Nil {
			continue
		}
		if _, seen := grouped[id]; !seen {
			order = append(order, id)
		}
		grouped[id] = append(grouped[id], r)
	}
	return grouped, order
}

func countCommentsByItem(comments []models.Comment) (map[uuid.UUID]int, []uuid.UUID) {
	counts := make(map[uuid.UUID]int)
	var order []uuid.UUID
	for i := range comments {
		id := comments[i].ItemID()
		if id == uuid.Nil {
			continue
		}
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		counts[id]++
	}
	return counts, order
}

func newActivity(t models.ActivityType, item *itemRef, title, description string, ts time.Time, priority int, metadata map[string]float64) models.Activity {
	return models.Activity{
		ID:          uuid.NewString(),
		Type:        t,
		Title:       title,
		Description: description,
		ItemID:      item.ID,
		ItemType:    item.Kind,
		ItemName:    item.Name,
		ItemImage:   item.Image,
		Timestamp:   ts,
		Metadata:    metadata,
		Priority:    priority,
	}
}

// retype relabels delegated activities under their own kind so each kind
// stays independently filterable. Fresh ids keep the entries distinct
// from their originals in the merged feed.
func retype(activities []models.Activity, t models.ActivityType) []models.Activity {
	out := make([]models.Activity, len(activities))
	for i, a := range activities {
		a.ID = uuid.NewString()
		a.Type = t
		out[i] = a
	}
	return out
}

func (s *ActivityFeedService) positiveReviewStreaks(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	return s.reviewStreaks(ctx, itemType, true)
}

func (s *ActivityFeedService) negativeReviewStreaks(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	return s.reviewStreaks(ctx, itemType, false)
}

// reviewStreaks emits one activity per item whose newest reviews within
// the window form a run of at least minStreakLength matching reviews.
// Only the run at the head counts; the first non-matching review ends it.
func (s *ActivityFeedService) reviewStreaks(ctx context.Context, itemType *models.ItemType, positive bool) ([]models.Activity, error) {
	since := s.now().Add(-reviewStreakWindow)

	var reviews []models.Review
	q := itemScope(s.db.WithContext(ctx).Where("created_at >= ?", since), itemType)
	if err := q.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}

	grouped, order := groupReviewsByItem(reviews)
	var activities []models.Activity
	for _, id := range order {
		bucket := grouped[id]
		run := 0
		for _, r := range bucket {
			match := r.Sentiment.Positive()
			if !positive {
				match = r.Sentiment.Negative()
			}
			if !match {
				break
			}
			run++
		}
		if run < minStreakLength {
			continue
		}

		item, err := s.findActiveItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}

		kind := models.ActivityReviewStreakPositive
		base := positiveStreakBase
		title := fmt.Sprintf("%s is on a roll", item.Name)
		description := fmt.Sprintf("%d positive reviews in a row this week", run)
		if !positive {
			kind = models.ActivityReviewStreakNegative
			base = negativeStreakBase
			title = fmt.Sprintf("Rough patch for %s", item.Name)
			description = fmt.Sprintf("%d negative reviews in a row this week", run)
		}

		activities = append(activities, newActivity(kind, item, title, description,
			bucket[0].CreatedAt, run*streakPriorityStep+base,
			map[string]float64{"streakCount": float64(run)}))
	}
	return activities, nil
}

func (s *ActivityFeedService) trendingUp(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	return s.trendingItems(ctx, itemType, true)
}

func (s *ActivityFeedService) trendingDown(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	return s.trendingItems(ctx, itemType, false)
}

type sentimentWindow struct {
	positive int
	total    int
}

func sentimentWindows(reviews []models.Review) (map[uuid.UUID]sentimentWindow, []uuid.UUID) {
	stats := make(map[uuid.UUID]sentimentWindow)
	var order []uuid.UUID
	for _, r := range reviews {
		id := r.ItemID()
		if id == uuid.Nil {
			continue
		}
		w, seen := stats[id]
		if !seen {
			order = append(order, id)
		}
		w.total++
		if r.Sentiment.Positive() {
			w.positive++
		}
		stats[id] = w
	}
	return stats, order
}

// trendingItems compares the positive-review ratio of the last week
// against the preceding 23 days and surfaces items whose ratio moved by
// more than trendThreshold points. Items without reviews in both windows
// are skipped.
func (s *ActivityFeedService) trendingItems(ctx context.Context, itemType *models.ItemType, up bool) ([]models.Activity, error) {
	now := s.now()
	recentSince := now.Add(-trendRecentWindow)
	historySince := now.Add(-trendHistoryWindow)

	var recent, older []models.Review
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := itemScope(s.db.WithContext(gctx).Where("created_at >= ?", recentSince), itemType)
		return q.Order("created_at DESC").Find(&recent).Error
	})
	g.Go(func() error {
		q := itemScope(s.db.WithContext(gctx).Where("created_at >= ? AND created_at < ?", historySince, recentSince), itemType)
		return q.Order("created_at DESC").Find(&older).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recentStats, order := sentimentWindows(recent)
	olderStats, _ := sentimentWindows(older)

	var activities []models.Activity
	for _, id := range order {
		rs := recentStats[id]
		os, ok := olderStats[id]
		if !ok || os.total == 0 || rs.total == 0 {
			continue
		}

		recentScore := float64(rs.positive) / float64(rs.total) * 100
		olderScore := float64(os.positive) / float64(os.total) * 100
		change := recentScore - olderScore
		if up && change <= trendThreshold {
			continue
		}
		if !up && change >= -trendThreshold {
			continue
		}

		item, err := s.findActiveItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}

		kind := models.ActivityTrendingUp
		title := fmt.Sprintf("%s is trending up", item.Name)
		description := fmt.Sprintf("Positive sentiment up %d points over the last week", int(math.Round(change)))
		if !up {
			kind = models.ActivityTrendingDown
			title = fmt.Sprintf("%s is losing steam", item.Name)
			description = fmt.Sprintf("Positive sentiment down %d points over the last week", int(math.Round(-change)))
		}

		priority := int(math.Round(math.Abs(change)*2)) + trendPriorityBase
		activities = append(activities, newActivity(kind, item, title, description, now, priority,
			map[string]float64{"sentimentChange": math.Round(change)}))
	}
	return activities, nil
}

func (s *ActivityFeedService) newItems(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	cutoff := s.now().Add(-newItemWindow)

	var activities []models.Activity
	if itemType == nil || *itemType == models.ItemTypeProduct {
		var products []models.Product
		if err := s.db.WithContext(ctx).
			Where("is_active = ? AND created_at >= ?", true, cutoff).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			return nil, err
		}
		for i := range products {
			item := productRef(&products[i])
			activities = append(activities, newActivity(models.ActivityNewProduct, item,
				fmt.Sprintf("New product: %s", item.Name),
				"Just added to the marketplace",
				item.CreatedAt, newItemPriority, map[string]float64{}))
		}
	}
	if itemType == nil || *itemType == models.ItemTypeService {
		var svcs []models.Service
		if err := s.db.WithContext(ctx).
			Where("is_active = ? AND created_at >= ?", true, cutoff).
			Order("created_at DESC").
			Find(&svcs).Error; err != nil {
			return nil, err
		}
		for i := range svcs {
			item := serviceRef(&svcs[i])
			activities = append(activities, newActivity(models.ActivityNewService, item,
				fmt.Sprintf("New service: %s", item.Name),
				"Just added to the marketplace",
				item.CreatedAt, newItemPriority, map[string]float64{}))
		}
	}
	return activities, nil
}

// highEngagement scores items that got reviews this week, weighting
// comments at half a review, and surfaces those at or above the
// threshold.
func (s *ActivityFeedService) highEngagement(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	now := s.now()
	since := now.Add(-engagementWindow)

	var reviews []models.Review
	var comments []models.Comment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := itemScope(s.db.WithContext(gctx).Where("created_at >= ?", since), itemType)
		return q.Order("created_at DESC").Find(&reviews).Error
	})
	g.Go(func() error {
		q := itemScope(s.db.WithContext(gctx).Where("created_at >= ? AND is_deleted = ?", since, false), itemType)
		return q.Order("created_at DESC").Find(&comments).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reviewStats, order := sentimentWindows(reviews)
	commentCounts, _ := countCommentsByItem(comments)

	var activities []models.Activity
	for _, id := range order {
		reviewCount := reviewStats[id].total
		commentCount := commentCounts[id]
		score := float64(reviewCount) + engagementCommentWeight*float64(commentCount)
		if score < engagementThreshold {
			continue
		}

		item, err := s.findActiveItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}

		activities = append(activities, newActivity(models.ActivityHighEngagement, item,
			fmt.Sprintf("%s is buzzing", item.Name),
			fmt.Sprintf("%d reviews and %d comments this week", reviewCount, commentCount),
			now, int(math.Round(score*engagementPriorityFactor)),
			map[string]float64{
				"engagementScore": score,
				"reviewCount":     float64(reviewCount),
				"commentCount":    float64(commentCount),
			}))
	}
	return activities, nil
}

// controversialItems surfaces items with enough reviews where neither
// camp is a landslide: both the positive and negative share exceed the
// minimum ratio.
func (s *ActivityFeedService) controversialItems(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	now := s.now()
	items, err := s.activeItems(ctx, itemType, controversialScanLimit, nil)
	if err != nil {
		return nil, err
	}

	var activities []models.Activity
	for _, item := range items {
		if item.TotalReviews < controversialMinReviews {
			continue
		}
		positive := float64(item.PositiveReviews) / float64(item.TotalReviews)
		negative := float64(item.NegativeReviews) / float64(item.TotalReviews)
		if positive <= controversialMinRatio || negative <= controversialMinRatio {
			continue
		}

		positivePct := math.Round(positive * 100)
		negativePct := math.Round(negative * 100)
		activities = append(activities, newActivity(models.ActivityControversial, item,
			fmt.Sprintf("%s is dividing opinions", item.Name),
			fmt.Sprintf("Reviewers are split: %d%% positive, %d%% negative", int(positivePct), int(negativePct)),
			now, controversialPriority,
			map[string]float64{
				"positiveRatio": positivePct,
				"negativeRatio": negativePct,
				"totalReviews":  float64(item.TotalReviews),
			}))
	}
	return activities, nil
}

func (s *ActivityFeedService) risingStars(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	activities, err := s.trendingItems(ctx, itemType, true)
	if err != nil {
		return nil, err
	}
	return retype(activities, models.ActivityRisingStar), nil
}

// ratingMilestones emits an activity for items whose cumulative quick
// rating count sits just past a milestone. Milestones are checked in
// ascending order and only the lowest match fires.
func (s *ActivityFeedService) ratingMilestones(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	now := s.now()
	items, err := s.activeItems(ctx, itemType, 0, func(q *gorm.DB) *gorm.DB {
		return q.Where("quick_rating_total >= ?", ratingMilestoneSteps[0])
	})
	if err != nil {
		return nil, err
	}

	var activities []models.Activity
	for _, item := range items {
		for _, milestone := range ratingMilestoneSteps {
			if item.QuickRatingTotal < milestone || item.QuickRatingTotal >= milestone+milestoneSpan {
				continue
			}
			activities = append(activities, newActivity(models.ActivityRatingMilestone, item,
				fmt.Sprintf("%s reached %d quick ratings", item.Name, milestone),
				fmt.Sprintf("%d shoppers have rated it so far", item.QuickRatingTotal),
				now, milestone/milestonePriorityDivisor,
				map[string]float64{
					"ratingCount": float64(item.QuickRatingTotal),
					"milestone":   float64(milestone),
				}))
			break
		}
	}
	return activities, nil
}

func (s *ActivityFeedService) activitySpikes(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	activities, err := s.highEngagement(ctx, itemType)
	if err != nil {
		return nil, err
	}
	return retype(activities, models.ActivitySpike), nil
}

// mostDiscussed ranks items by live comment volume over the last week
// and keeps the top groups that clear the minimum.
func (s *ActivityFeedService) mostDiscussed(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	now := s.now()
	since := now.Add(-discussedWindow)

	var comments []models.Comment
	q := itemScope(s.db.WithContext(ctx).Where("created_at >= ? AND is_deleted = ?", since, false), itemType)
	if err := q.Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}

	counts, order := countCommentsByItem(comments)
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > discussedTopGroups {
		order = order[:discussedTopGroups]
	}

	var activities []models.Activity
	for _, id := range order {
		commentCount := counts[id]
		if commentCount < discussedMinComments {
			continue
		}

		item, err := s.findActiveItem(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}

		activities = append(activities, newActivity(models.ActivityMostDiscussed, item,
			fmt.Sprintf("Everyone is talking about %s", item.Name),
			fmt.Sprintf("%d comments in the last week", commentCount),
			now, commentCount*discussedPriorityFactor,
			map[string]float64{"commentCount": float64(commentCount)}))
	}
	return activities, nil
}

// sentimentSwings is the union of both trending directions under its own
// labels. It intentionally duplicates trending output; the ranking step
// does not deduplicate.
func (s *ActivityFeedService) sentimentSwings(ctx context.Context, itemType *models.ItemType) ([]models.Activity, error) {
	ups, err := s.trendingItems(ctx, itemType, true)
	if err != nil {
		return nil, err
	}
	downs, err := s.trendingItems(ctx, itemType, false)
	if err != nil {
		return nil, err
	}

	swings := retype(ups, models.ActivitySentimentSwingUp)
	swings = append(swings, retype(downs, models.ActivitySentimentSwingDown)...)
	return swings, nil
}
