package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Prompt is a user-submitted text for a language model. Tags and Llms are
// unordered sets stored as jsonb arrays; Llms values are displayed against the
// static catalog, not a relation. AuthorID is nullable - anonymous submissions
// are allowed, and author references degrade to anonymous when the user row
// disappears.
type Prompt struct {
	ID         string                      `gorm:"primaryKey;type:uuid" json:"id"`
	Title      string                      `gorm:"not null" json:"title"`
	Text       string                      `gorm:"not null;type:text" json:"text"`
	Tags       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Llms       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"llms"`
	CategoryID *string                     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	AuthorID   *string                     `gorm:"index" json:"author_id,omitempty"`
	CreatedAt  time.Time                   `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author   *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL;" json:"author,omitempty"`
	Ratings  []Rating  `gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE;" json:"ratings,omitempty"`
}

// BeforeCreate hook to set UUID before creating a Prompt
func (prompt *Prompt) BeforeCreate(tx *gorm.DB) (err error) {
	if prompt.ID == "" {
		prompt.ID = uuid.New().String()
	}
	return
}

func (Prompt) TableName() string {
	return "prompts"
}
