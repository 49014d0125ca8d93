package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuickRating struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	ProductID *uuid.UUID     `json:"productId" gorm:"type:uuid;index"`
	ServiceID *uuid.UUID     `json:"serviceId" gorm:"type:uuid;index"`
	Rating    int            `json:"rating" gorm:"not null"` // 1-5
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (q *QuickRating) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

type CreateQuickRatingRequest struct {
	UserID    uuid.UUID  `json:"userId"`
	ProductID *uuid.UUID `json:"productId"`
	ServiceID *uuid.UUID `json:"serviceId"`
	Rating    int        `json:"rating"`
}
