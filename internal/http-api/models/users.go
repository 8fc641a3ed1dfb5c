package models

import "time"

// User mirrors an identity-provider account. The ID is the provider's id, so
// there is no BeforeCreate hook here - rows are only ever written by the
// sync-on-access path and the account webhook.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      *string   `json:"name,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
