package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is one user's 1-5 score for a prompt, attributed to a single model
// identifier. The composite unique index on (prompt_id, user_id) is the
// storage-level guarantee behind the one-rating-per-user-per-prompt invariant:
// the service's check-then-act upsert is not atomic, so concurrent first
// submissions race and the loser hits this index instead of inserting a
// duplicate. Llm is deliberately not part of the key - re-rating under a
// different model overwrites.
//
// UserID is nullable: deleting a user orphans their ratings rather than
// removing them, so prompt aggregates never shift on account deletion. The
// orphaned rater renders as anonymous. Postgres treats NULLs as distinct, so
// the composite index still only guards live (prompt, user) pairs.
type Rating struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	PromptID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_prompt_user" json:"prompt_id"`
	UserID    *string   `gorm:"uniqueIndex:idx_ratings_prompt_user" json:"user_id,omitempty"`
	Llm       string    `gorm:"not null" json:"llm"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment   *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;" json:"user,omitempty"`
	Prompt Prompt `gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE;" json:"prompt,omitempty"`
}

// BeforeCreate hook to set UUID before creating a Rating
func (rating *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	return
}

func (Rating) TableName() string {
	return "ratings"
}
