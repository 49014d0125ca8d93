package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemType tags which table an activity's item came from.
type ItemType string

const (
	ItemTypeProduct ItemType = "PRODUCT"
	ItemTypeService ItemType = "SERVICE"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeProduct || t == ItemTypeService
}

// ActivityType enumerates the kinds of feed activities.
type ActivityType string

const (
	ActivityReviewStreakPositive ActivityType = "REVIEW_STREAK_POSITIVE"
	ActivityReviewStreakNegative ActivityType = "REVIEW_STREAK_NEGATIVE"
	ActivityTrendingUp           ActivityType = "TRENDING_UP"
	ActivityTrendingDown         ActivityType = "TRENDING_DOWN"
	ActivityNewProduct           ActivityType = "NEW_PRODUCT"
	ActivityNewService           ActivityType = "NEW_SERVICE"
	ActivityHighEngagement       ActivityType = "HIGH_ENGAGEMENT"
	ActivityControversial        ActivityType = "CONTROVERSIAL"
	ActivityRisingStar           ActivityType = "RISING_STAR"
	ActivityRatingMilestone      ActivityType = "RATING_MILESTONE"
	ActivitySpike                ActivityType = "ACTIVITY_SPIKE"
	ActivityMostDiscussed        ActivityType = "MOST_DISCUSSED"
	ActivitySentimentSwingUp     ActivityType = "SENTIMENT_SWING_UP"
	ActivitySentimentSwingDown   ActivityType = "SENTIMENT_SWING_DOWN"
	// Declared for client compatibility; no generator emits it today.
	ActivityReviewMilestone ActivityType = "REVIEW_MILESTONE"
)

var activityTypes = map[ActivityType]bool{
	ActivityReviewStreakPositive: true,
	ActivityReviewStreakNegative: true,
	ActivityTrendingUp:           true,
	ActivityTrendingDown:         true,
	ActivityNewProduct:           true,
	ActivityNewService:           true,
	ActivityHighEngagement:       true,
	ActivityControversial:        true,
	ActivityRisingStar:           true,
	ActivityRatingMilestone:      true,
	ActivitySpike:                true,
	ActivityMostDiscussed:        true,
	ActivitySentimentSwingUp:     true,
	ActivitySentimentSwingDown:   true,
	ActivityReviewMilestone:      true,
}

func (t ActivityType) Valid() bool {
	return activityTypes[t]
}

// Activity is a derived feed entry. It is computed per request and never
// persisted; Priority only orders the feed.
type Activity struct {
	ID          string             `json:"id"`
	Type        ActivityType       `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ItemID      uuid.UUID          `json:"itemId"`
	ItemType    ItemType           `json:"itemType"`
	ItemName    string             `json:"itemName"`
	ItemImage   string             `json:"itemImage,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
	Metadata    map[string]float64 `json:"metadata"`
	Priority    int                `json:"priority"`
}

type FeedMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type FeedResult struct {
	Activities []Activity `json:"activities"`
	Meta       FeedMeta   `json:"meta"`
}
