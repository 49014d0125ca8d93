package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment targets exactly one of ProductID/ServiceID. IsDeleted is a
// moderation tombstone: the row stays but the comment no longer counts
// anywhere (listings, engagement, most-discussed).
type Comment struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	ProductID *uuid.UUID     `json:"productId" gorm:"type:uuid;index"`
	ServiceID *uuid.UUID     `json:"serviceId" gorm:"type:uuid;index"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	IsDeleted bool           `json:"isDeleted" gorm:"default:false"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ItemID returns the id of whichever item the comment targets.
func (c *Comment) ItemID() uuid.UUID {
	if c.ProductID != nil {
		return *c.ProductID
	}
	if c.ServiceID != nil {
		return *c.ServiceID
	}
	return uuid.Nil
}

type CreateCommentRequest struct {
	UserID    uuid.UUID  `json:"userId"`
	ProductID *uuid.UUID `json:"productId"`
	ServiceID *uuid.UUID `json:"serviceId"`
	Text      string     `json:"text"`
}
