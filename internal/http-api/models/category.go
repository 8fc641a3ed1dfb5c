package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a fixed taxonomy label. Seeded at startup, immutable afterwards;
// prompts reference it but never own it.
type Category struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Icon        *string   `json:"icon,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate hook to set UUID before creating a Category
func (category *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	return
}

func (Category) TableName() string {
	return "categories"
}
