package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuchonga/tuchonga-api/internal/logger"
	"github.com/tuchonga/tuchonga-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var feedNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

var feedUserID = uuid.MustParse("3f1a6a1e-59a7-4a4a-9c80-7d62f1b5a001")

func daysAgo(days float64) time.Time {
	return feedNow.Add(-time.Duration(days * float64(24*time.Hour)))
}

func newFeedService(t *testing.T) *ActivityFeedService {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Business{},
		&models.Product{},
		&models.Service{},
		&models.Review{},
		&models.Comment{},
		&models.QuickRating{},
		&models.Favorite{},
	))

	user := models.User{ID: feedUserID, Email: "reviewer@example.com", Name: "Reviewer"}
	require.NoError(t, db.Create(&user).Error)

	svc := NewActivityFeedService(db, logger.Nop())
	svc.now = func() time.Time { return feedNow }
	return svc
}

func seedProduct(t *testing.T, db *gorm.DB, name string, mutate ...func(*models.Product)) models.Product {
	t.Helper()
	p := models.Product{ProductName: name, IsActive: true, CreatedAt: daysAgo(60)}
	for _, m := range mutate {
		m(&p)
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedService(t *testing.T, db *gorm.DB, name string, mutate ...func(*models.Service)) models.Service {
	t.Helper()
	sv := models.Service{ServiceName: name, IsActive: true, CreatedAt: daysAgo(60)}
	for _, m := range mutate {
		m(&sv)
	}
	require.NoError(t, db.Create(&sv).Error)
	return sv
}

func addProductReview(t *testing.T, db *gorm.DB, productID uuid.UUID, sentiment models.Sentiment, at time.Time) {
	t.Helper()
	r := models.Review{UserID: feedUserID, ProductID: &productID, Sentiment: sentiment, CreatedAt: at}
	require.NoError(t, db.Create(&r).Error)
}

func addServiceReview(t *testing.T, db *gorm.DB, serviceID uuid.UUID, sentiment models.Sentiment, at time.Time) {
	t.Helper()
	r := models.Review{UserID: feedUserID, ServiceID: &serviceID, Sentiment: sentiment, CreatedAt: at}
	require.NoError(t, db.Create(&r).Error)
}

func addProductComment(t *testing.T, db *gorm.DB, productID uuid.UUID, deleted bool, at time.Time) {
	t.Helper()
	cm := models.Comment{UserID: feedUserID, ProductID: &productID, Text: "a comment", IsDeleted: deleted, CreatedAt: at}
	require.NoError(t, db.Create(&cm).Error)
}

func activitiesFor(activities []models.Activity, itemID uuid.UUID) []models.Activity {
	var out []models.Activity
	for _, a := range activities {
		if a.ItemID == itemID {
			out = append(out, a)
		}
	}
	return out
}

func ofType(activities []models.Activity, t models.ActivityType) []models.Activity {
	var out []models.Activity
	for _, a := range activities {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

func TestReviewStreakThreshold(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	p := seedProduct(t, svc.db, "Solar Lamp")
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(1))
	addProductReview(t, svc.db, p.ID, models.SentimentWouldRecommend, daysAgo(2))

	// Two consecutive matching reviews are not a streak.
	activities, err := svc.positiveReviewStreaks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, activities)

	// The third one is.
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(3))
	activities, err = svc.positiveReviewStreaks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityReviewStreakPositive, activities[0].Type)
	assert.Equal(t, p.ID, activities[0].ItemID)
	assert.Equal(t, models.ItemTypeProduct, activities[0].ItemType)
	assert.Equal(t, float64(3), activities[0].Metadata["streakCount"])
	assert.Equal(t, 80, activities[0].Priority)
	assert.True(t, activities[0].Timestamp.Equal(daysAgo(1)), "streak timestamp should be the newest review time")
}

func TestReviewStreakCountsOnlyHeadRun(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	p := seedProduct(t, svc.db, "Clay Pot")
	// Newest three positive, then a negative break, then three more positive.
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(0.5))
	addProductReview(t, svc.db, p.ID, models.SentimentWouldRecommend, daysAgo(1))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(1.5))
	addProductReview(t, svc.db, p.ID, models.SentimentItsBad, daysAgo(2))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(2.5))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(3))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(3.5))

	activities, err := svc.positiveReviewStreaks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, float64(3), activities[0].Metadata["streakCount"])

	// The lone negative review is not a negative streak either.
	negative, err := svc.negativeReviewStreaks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, negative)
}

func TestReviewStreakIgnoresReviewsOutsideWindow(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	p := seedProduct(t, svc.db, "Old Timer")
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(1))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(2))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(8))

	activities, err := svc.positiveReviewStreaks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestNegativeReviewStreak(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	sv := seedService(t, svc.db, "Moving Help")
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsBad, daysAgo(1))
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsBad, daysAgo(2))
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsBad, daysAgo(3))
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsBad, daysAgo(4))

	activities, err := svc.negativeReviewStreaks(ctx, nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityReviewStreakNegative, activities[0].Type)
	assert.Equal(t, models.ItemTypeService, activities[0].ItemType)
	assert.Equal(t, float64(4), activities[0].Metadata["streakCount"])
	assert.Equal(t, 80, activities[0].Priority) // 4*10 + 40
}

func TestInactiveItemExcluded(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	p := seedProduct(t, svc.db, "Ghost Product", func(p *models.Product) {
		p.IsActive = false
		p.TotalReviews = 20
		p.PositiveReviews = 9
		p.NegativeReviews = 8
		p.QuickRatingTotal = 100
	})
	for i := 1; i <= 6; i++ {
		addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(float64(i)*0.5))
	}
	for i := 0; i < 12; i++ {
		addProductComment(t, svc.db, p.ID, false, daysAgo(1))
	}

	feed, err := svc.GetActivityFeed(ctx, FeedFilters{})
	require.NoError(t, err)
	assert.Empty(t, activitiesFor(feed.Activities, p.ID))
	assert.Equal(t, 0, feed.Meta.Total)
}

func TestRatingMilestoneBoundaries(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	exact := seedProduct(t, svc.db, "At Hundred", func(p *models.Product) { p.QuickRatingTotal = 100 })
	inside := seedProduct(t, svc.db, "Inside Window", func(p *models.Product) { p.QuickRatingTotal = 109 })
	outside := seedProduct(t, svc.db, "Past Window", func(p *models.Product) { p.QuickRatingTotal = 110 })
	first := seedProduct(t, svc.db, "First Step", func(p *models.Product) { p.QuickRatingTotal = 50 })
	top := seedProduct(t, svc.db, "Top Step", func(p *models.Product) { p.QuickRatingTotal = 1004 })

	activities, err := svc.ratingMilestones(ctx, nil)
	require.NoError(t, err)

	byItem := make(map[uuid.UUID]models.Activity)
	for _, a := range activities {
		byItem[a.ItemID] = a
	}

	require.Contains(t, byItem, exact.ID)
	assert.Equal(t, float64(100), byItem[exact.ID].Metadata["ratingCount"])
	assert.Equal(t, float64(100), byItem[exact.ID].Metadata["milestone"])
	assert.Equal(t, 10, byItem[exact.ID].Priority)

	require.Contains(t, byItem, inside.ID)
	assert.Equal(t, float64(109), byItem[inside.ID].Metadata["ratingCount"])
	assert.Equal(t, float64(100), byItem[inside.ID].Metadata["milestone"])

	assert.NotContains(t, byItem, outside.ID)

	require.Contains(t, byItem, first.ID)
	assert.Equal(t, 5, byItem[first.ID].Priority)

	require.Contains(t, byItem, top.ID)
	assert.Equal(t, float64(1000), byItem[top.ID].Metadata["milestone"])
	assert.Equal(t, 100, byItem[top.ID].Priority)
}

func TestTrendingDirection(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	p := seedProduct(t, svc.db, "Comeback Kid")
	// Recent week: 4 positive, 1 negative (80% positive).
	addProductReview(t, svc.db, p.ID, models.SentimentWouldRecommend, daysAgo(1))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(2))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(3))
	addProductReview(t, svc.db, p.ID, models.SentimentWouldRecommend, daysAgo(4))
	addProductReview(t, svc.db, p.ID, models.SentimentItsBad, daysAgo(5))
	// Older window: 2 positive, 2 negative (50% positive).
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(10))
	addProductReview(t, svc.db, p.ID, models.SentimentWouldRecommend, daysAgo(12))
	addProductReview(t, svc.db, p.ID, models.SentimentItsBad, daysAgo(14))
	addProductReview(t, svc.db, p.ID, models.SentimentItsBad, daysAgo(16))

	up, err := svc.trendingUp(ctx, nil)
	require.NoError(t, err)
	require.Len(t, up, 1)
	assert.Equal(t, models.ActivityTrendingUp, up[0].Type)
	assert.Equal(t, p.ID, up[0].ItemID)
	assert.Equal(t, float64(30), up[0].Metadata["sentimentChange"])
	assert.Equal(t, 120, up[0].Priority) // |30|*2 + 60

	down, err := svc.trendingDown(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, down)
}

func TestTrendingSkipsItemsWithoutHistory(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	p := seedProduct(t, svc.db, "No History")
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(1))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(2))

	up, err := svc.trendingUp(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, up)
}

func TestTrendingDown(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	sv := seedService(t, svc.db, "Slipping Service")
	// Recent week: 1 positive, 3 negative (25% positive).
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsGood, daysAgo(1))
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsBad, daysAgo(2))
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsBad, daysAgo(3))
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsBad, daysAgo(4))
	// Older window: 3 positive, 1 negative (75% positive).
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsGood, daysAgo(10))
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsGood, daysAgo(12))
	addServiceReview(t, svc.db, sv.ID, models.SentimentWouldRecommend, daysAgo(14))
	addServiceReview(t, svc.db, sv.ID, models.SentimentItsBad, daysAgo(16))

	down, err := svc.trendingDown(ctx, nil)
	require.NoError(t, err)
	require.Len(t, down, 1)
	assert.Equal(t, models.ActivityTrendingDown, down[0].Type)
	assert.Equal(t, float64(-50), down[0].Metadata["sentimentChange"])
	assert.Equal(t, 160, down[0].Priority) // |-50|*2 + 60

	up, err := svc.trendingUp(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, up)
}

func TestStreakScenarioProducesNoEngagement(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	x := seedProduct(t, svc.db, "Item X")
	addProductReview(t, svc.db, x.ID, models.SentimentItsGood, daysAgo(0))
	addProductReview(t, svc.db, x.ID, models.SentimentItsGood, daysAgo(1))
	addProductReview(t, svc.db, x.ID, models.SentimentItsGood, daysAgo(2))

	feed, err := svc.GetActivityFeed(ctx, FeedFilters{})
	require.NoError(t, err)

	forX := activitiesFor(feed.Activities, x.ID)
	streaks := ofType(forX, models.ActivityReviewStreakPositive)
	require.Len(t, streaks, 1)
	assert.Equal(t, float64(3), streaks[0].Metadata["streakCount"])
	assert.Equal(t, 80, streaks[0].Priority)

	// engagementScore = 3 + 0*0.5 = 3, below the threshold.
	assert.Empty(t, ofType(forX, models.ActivityHighEngagement))
	assert.Empty(t, ofType(forX, models.ActivitySpike))
}

func TestControversialScenario(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	y := seedProduct(t, svc.db, "Item Y", func(p *models.Product) {
		p.TotalReviews = 20
		p.PositiveReviews = 9
		p.NegativeReviews = 8
	})
	// A landslide item never qualifies.
	seedProduct(t, svc.db, "Beloved", func(p *models.Product) {
		p.TotalReviews = 50
		p.PositiveReviews = 45
		p.NegativeReviews = 2
	})
	// Too few reviews to judge.
	seedProduct(t, svc.db, "Unknown", func(p *models.Product) {
		p.TotalReviews = 9
		p.PositiveReviews = 4
		p.NegativeReviews = 4
	})

	activities, err := svc.controversialItems(ctx, nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, y.ID, activities[0].ItemID)
	assert.Equal(t, 45, activities[0].Priority)
	assert.Equal(t, float64(45), activities[0].Metadata["positiveRatio"])
	assert.Equal(t, float64(40), activities[0].Metadata["negativeRatio"])
}

func TestHighEngagementScore(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	p := seedProduct(t, svc.db, "Busy Product")
	for i := 1; i <= 4; i++ {
		addProductReview(t, svc.db, p.ID, models.SentimentDontMindIt, daysAgo(float64(i)))
	}
	addProductComment(t, svc.db, p.ID, false, daysAgo(1))
	addProductComment(t, svc.db, p.ID, false, daysAgo(2))
	// Deleted comments don't count.
	addProductComment(t, svc.db, p.ID, true, daysAgo(2))

	activities, err := svc.highEngagement(ctx, nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, float64(5), activities[0].Metadata["engagementScore"]) // 4 + 2*0.5
	assert.Equal(t, float64(4), activities[0].Metadata["reviewCount"])
	assert.Equal(t, float64(2), activities[0].Metadata["commentCount"])
	assert.Equal(t, 25, activities[0].Priority)
}

func TestMostDiscussed(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	hot := seedProduct(t, svc.db, "Hot Topic")
	for i := 0; i < 10; i++ {
		addProductComment(t, svc.db, hot.ID, false, daysAgo(1))
	}

	quiet := seedProduct(t, svc.db, "Quiet One")
	// Nine live comments plus three tombstones stay under the threshold.
	for i := 0; i < 9; i++ {
		addProductComment(t, svc.db, quiet.ID, false, daysAgo(1))
	}
	for i := 0; i < 3; i++ {
		addProductComment(t, svc.db, quiet.ID, true, daysAgo(1))
	}

	activities, err := svc.mostDiscussed(ctx, nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, hot.ID, activities[0].ItemID)
	assert.Equal(t, float64(10), activities[0].Metadata["commentCount"])
	assert.Equal(t, 20, activities[0].Priority)
}

func TestDelegatesRelabelAndDuplicate(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	p := seedProduct(t, svc.db, "Double Billed")
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(1))
	addProductReview(t, svc.db, p.ID, models.SentimentItsGood, daysAgo(2))
	addProductReview(t, svc.db, p.ID, models.SentimentItsBad, daysAgo(10))
	addProductReview(t, svc.db, p.ID, models.SentimentItsBad, daysAgo(12))

	feed, err := svc.GetActivityFeed(ctx, FeedFilters{})
	require.NoError(t, err)

	forP := activitiesFor(feed.Activities, p.ID)
	trending := ofType(forP, models.ActivityTrendingUp)
	rising := ofType(forP, models.ActivityRisingStar)
	swings := ofType(forP, models.ActivitySentimentSwingUp)
	require.Len(t, trending, 1)
	require.Len(t, rising, 1)
	require.Len(t, swings, 1)
	assert.Equal(t, trending[0].Priority, rising[0].Priority)
	assert.Equal(t, trending[0].Priority, swings[0].Priority)
	assert.NotEqual(t, trending[0].ID, rising[0].ID)
	assert.Empty(t, ofType(forP, models.ActivitySentimentSwingDown))
}

func TestFeedRankingOrder(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	streaky := seedProduct(t, svc.db, "Streaky")
	addProductReview(t, svc.db, streaky.ID, models.SentimentItsGood, daysAgo(1))
	addProductReview(t, svc.db, streaky.ID, models.SentimentItsGood, daysAgo(2))
	addProductReview(t, svc.db, streaky.ID, models.SentimentItsGood, daysAgo(3))

	seedProduct(t, svc.db, "Fresh Product", func(p *models.Product) { p.CreatedAt = daysAgo(1) })
	seedService(t, svc.db, "Fresh Service", func(sv *models.Service) { sv.CreatedAt = daysAgo(2) })
	seedProduct(t, svc.db, "Milestoned", func(p *models.Product) { p.QuickRatingTotal = 250 })

	feed, err := svc.GetActivityFeed(ctx, FeedFilters{})
	require.NoError(t, err)
	require.Greater(t, feed.Meta.Total, 3)

	for i := 1; i < len(feed.Activities); i++ {
		prev, cur := feed.Activities[i-1], feed.Activities[i]
		if prev.Priority == cur.Priority {
			assert.False(t, cur.Timestamp.After(prev.Timestamp),
				"equal priority must order by recency: %s before %s", prev.Type, cur.Type)
		} else {
			assert.Greater(t, prev.Priority, cur.Priority)
		}
	}

	// The two fixed-priority new-item entries tie on priority and must
	// order newest first.
	newItems := append(ofType(feed.Activities, models.ActivityNewProduct),
		ofType(feed.Activities, models.ActivityNewService)...)
	require.Len(t, newItems, 2)
}

type feedKey struct {
	Type     models.ActivityType
	ItemID   uuid.UUID
	Priority int
}

func feedKeys(activities []models.Activity) []feedKey {
	keys := make([]feedKey, 0, len(activities))
	for _, a := range activities {
		keys = append(keys, feedKey{Type: a.Type, ItemID: a.ItemID, Priority: a.Priority})
	}
	return keys
}

func TestFeedPagination(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedProduct(t, svc.db, fmt.Sprintf("New Product %d", i), func(p *models.Product) {
			p.CreatedAt = daysAgo(float64(i) * 0.2)
		})
		seedService(t, svc.db, fmt.Sprintf("New Service %d", i), func(sv *models.Service) {
			sv.CreatedAt = daysAgo(float64(i)*0.2 + 0.1)
		})
	}

	full, err := svc.GetActivityFeed(ctx, FeedFilters{Limit: 100})
	require.NoError(t, err)
	require.Equal(t, 10, full.Meta.Total)
	require.Equal(t, 1, full.Meta.TotalPages)

	var collected []feedKey
	limit := 3
	page := 1
	for {
		res, err := svc.GetActivityFeed(ctx, FeedFilters{Page: page, Limit: limit})
		require.NoError(t, err)
		assert.Equal(t, 10, res.Meta.Total)
		assert.Equal(t, 4, res.Meta.TotalPages)
		collected = append(collected, feedKeys(res.Activities)...)
		if page >= res.Meta.TotalPages {
			break
		}
		page++
	}

	assert.Equal(t, feedKeys(full.Activities), collected)

	// A page past the end is empty but keeps the metadata.
	past, err := svc.GetActivityFeed(ctx, FeedFilters{Page: 9, Limit: limit})
	require.NoError(t, err)
	assert.Empty(t, past.Activities)
	assert.Equal(t, 10, past.Meta.Total)
}

func TestFeedFilters(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	seedProduct(t, svc.db, "New Product", func(p *models.Product) { p.CreatedAt = daysAgo(1) })
	newSvc := seedService(t, svc.db, "New Service", func(sv *models.Service) { sv.CreatedAt = daysAgo(1) })
	seedService(t, svc.db, "Old Service") // outside the 3-day window

	serviceType := models.ItemTypeService
	feed, err := svc.GetActivityFeed(ctx, FeedFilters{
		ItemType:      &serviceType,
		ActivityTypes: []models.ActivityType{models.ActivityNewService},
		Page:          1,
		Limit:         10,
	})
	require.NoError(t, err)

	require.Equal(t, 1, feed.Meta.Total)
	require.Len(t, feed.Activities, 1)
	assert.Equal(t, models.ActivityNewService, feed.Activities[0].Type)
	assert.Equal(t, newSvc.ID, feed.Activities[0].ItemID)
	assert.Empty(t, ofType(feed.Activities, models.ActivityNewProduct))
}

func TestFeedEmptyData(t *testing.T) {
	svc := newFeedService(t)

	feed, err := svc.GetActivityFeed(context.Background(), FeedFilters{})
	require.NoError(t, err)
	assert.NotNil(t, feed.Activities)
	assert.Empty(t, feed.Activities)
	assert.Equal(t, models.FeedMeta{Total: 0, Page: 1, Limit: 50, TotalPages: 0}, feed.Meta)
}

func TestFeedDefaultsPagination(t *testing.T) {
	svc := newFeedService(t)

	feed, err := svc.GetActivityFeed(context.Background(), FeedFilters{Page: -2, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, feed.Meta.Page)
	assert.Equal(t, DefaultFeedLimit, feed.Meta.Limit)
}

func TestStreakSkipsMissingItem(t *testing.T) {
	svc := newFeedService(t)
	ctx := context.Background()

	orphan := uuid.New()
	for i := 1; i <= 3; i++ {
		addProductReview(t, svc.db, orphan, models.SentimentItsGood, daysAgo(float64(i)))
	}

	activities, err := svc.positiveReviewStreaks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, activities)
}
