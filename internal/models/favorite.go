package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Favorite struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index:idx_fav_user_product,unique;index:idx_fav_user_service,unique;not null"`
	ProductID *uuid.UUID     `json:"productId" gorm:"type:uuid;index:idx_fav_user_product,unique"`
	ServiceID *uuid.UUID     `json:"serviceId" gorm:"type:uuid;index:idx_fav_user_service,unique"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type CreateFavoriteRequest struct {
	UserID    uuid.UUID  `json:"userId"`
	ProductID *uuid.UUID `json:"productId"`
	ServiceID *uuid.UUID `json:"serviceId"`
}
