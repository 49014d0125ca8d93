package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ServiceName      string         `json:"serviceName" gorm:"not null"`
	Description      string         `json:"description"`
	MainImage        string         `json:"mainImage"`
	Price            float64        `json:"price"`
	IsActive         bool           `json:"isActive" gorm:"default:true;index"`
	CategoryID       *uuid.UUID     `json:"categoryId" gorm:"type:uuid;index"`
	BusinessID       *uuid.UUID     `json:"businessId" gorm:"type:uuid;index"`
	TotalViews       int            `json:"totalViews" gorm:"default:0"`
	TotalReviews     int            `json:"totalReviews" gorm:"default:0"`
	PositiveReviews  int            `json:"positiveReviews" gorm:"default:0"`
	NegativeReviews  int            `json:"negativeReviews" gorm:"default:0"`
	QuickRatingTotal int            `json:"quickRatingTotal" gorm:"default:0"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Business *Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type CreateServiceRequest struct {
	ServiceName string     `json:"serviceName"`
	Description string     `json:"description"`
	MainImage   string     `json:"mainImage"`
	Price       float64    `json:"price"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	BusinessID  *uuid.UUID `json:"businessId"`
}

type UpdateServiceRequest struct {
	ServiceName *string    `json:"serviceName"`
	Description *string    `json:"description"`
	MainImage   *string    `json:"mainImage"`
	Price       *float64   `json:"price"`
	IsActive    *bool      `json:"isActive"`
	CategoryID  *uuid.UUID `json:"categoryId"`
}
