package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sentiment is the categorical outcome of a review.
type Sentiment string

const (
	SentimentWouldRecommend Sentiment = "WOULD_RECOMMEND"
	SentimentItsGood        Sentiment = "ITS_GOOD"
	SentimentDontMindIt     Sentiment = "DONT_MIND_IT"
	SentimentItsBad         Sentiment = "ITS_BAD"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentWouldRecommend, SentimentItsGood, SentimentDontMindIt, SentimentItsBad:
		return true
	}
	return false
}

// Positive covers WOULD_RECOMMEND and ITS_GOOD; DONT_MIND_IT is neutral.
func (s Sentiment) Positive() bool {
	return s == SentimentWouldRecommend || s == SentimentItsGood
}

func (s Sentiment) Negative() bool {
	return s == SentimentItsBad
}

// Review targets exactly one of ProductID/ServiceID.
type Review struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	ProductID *uuid.UUID     `json:"productId" gorm:"type:uuid;index"`
	ServiceID *uuid.UUID     `json:"serviceId" gorm:"type:uuid;index"`
	Sentiment Sentiment      `json:"sentiment" gorm:"not null"`
	Text      string         `json:"text" gorm:"type:text"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ItemID returns the id of whichever item the review targets.
func (r *Review) ItemID() uuid.UUID {
	if r.ProductID != nil {
		return *r.ProductID
	}
	if r.ServiceID != nil {
		return *r.ServiceID
	}
	return uuid.Nil
}

type CreateReviewRequest struct {
	UserID    uuid.UUID  `json:"userId"`
	ProductID *uuid.UUID `json:"productId"`
	ServiceID *uuid.UUID `json:"serviceId"`
	Sentiment Sentiment  `json:"sentiment"`
	Text      string     `json:"text"`
}
