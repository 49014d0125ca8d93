package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Business struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID      `json:"ownerId" gorm:"type:uuid;index;not null"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Logo        string         `json:"logo"`
	IsVerified  bool           `json:"isVerified" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Owner User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type CreateBusinessRequest struct {
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
}
